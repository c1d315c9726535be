package contract

import (
	"context"

	"abhi-advisor-be/internal/entity"
	"abhi-advisor-be/internal/repository/specification"
)

// InteractionLogRepository is append-only. There is no Update or Delete.
type InteractionLogRepository interface {
	Create(ctx context.Context, log *entity.InteractionLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InteractionLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
