package contract

import (
	"context"

	"abhi-advisor-be/internal/entity"
	"abhi-advisor-be/internal/repository/specification"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type UserExemptionRepository interface {
	Create(ctx context.Context, exemption *entity.UserExemption) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.UserExemption, error)
}
