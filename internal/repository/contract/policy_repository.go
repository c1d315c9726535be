package contract

import (
	"context"

	"abhi-advisor-be/internal/entity"
	"abhi-advisor-be/internal/repository/specification"
)

type PolicyRepository interface {
	Create(ctx context.Context, policy *entity.Policy) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Policy, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Policy, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type CompetitorPolicyRepository interface {
	Create(ctx context.Context, policy *entity.CompetitorPolicy) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CompetitorPolicy, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
