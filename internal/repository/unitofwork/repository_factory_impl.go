package unitofwork

import (
	"context"

	"abhi-advisor-be/internal/pkg/logger"

	"gorm.io/gorm"
)

type RepositoryFactoryImpl struct {
	db  *gorm.DB
	log logger.ILogger
}

func NewRepositoryFactory(db *gorm.DB, log logger.ILogger) RepositoryFactory {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &RepositoryFactoryImpl{
		db:  db,
		log: log,
	}
}

// NewUnitOfWork is cheap; create one per request or per transaction.
func (f *RepositoryFactoryImpl) NewUnitOfWork(ctx context.Context) UnitOfWork {
	return NewUnitOfWork(f.db.WithContext(ctx), f.log)
}
