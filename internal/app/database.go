package app

import (
	"context"
	"fmt"

	"abhi-advisor-be/internal/config"
	"abhi-advisor-be/internal/model"
	"abhi-advisor-be/internal/pkg/logger"
	"abhi-advisor-be/internal/repository/unitofwork"
	"abhi-advisor-be/internal/seed"
	"abhi-advisor-be/pkg/database"

	"gorm.io/gorm"
)

// OpenDatabase connects with the configured driver.
func OpenDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	return database.NewGormDB(database.GormConfig{
		Driver: cfg.Driver,
		DSN:    cfg.Connection,
	})
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// SeedIfEmpty loads the demo catalog when the customers table has no rows.
// It returns nil summary when nothing was done.
func SeedIfEmpty(ctx context.Context, db *gorm.DB, log logger.ILogger) (*seed.Summary, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Customer{}).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("count customers: %w", err)
	}
	if count > 0 {
		return nil, nil
	}
	return Seed(ctx, db, log)
}

func Seed(ctx context.Context, db *gorm.DB, log logger.ILogger) (*seed.Summary, error) {
	catalog, err := seed.LoadCatalog()
	if err != nil {
		return nil, err
	}
	return seed.NewSeeder(unitofwork.NewRepositoryFactory(db, log), catalog, log).Run(ctx)
}
