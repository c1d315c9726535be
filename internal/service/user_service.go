package service

import (
	"context"

	"abhi-advisor-be/internal/dto"
	"abhi-advisor-be/internal/entity"
	"abhi-advisor-be/internal/pkg/apperror"
	"abhi-advisor-be/internal/repository/specification"
	"abhi-advisor-be/internal/repository/unitofwork"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId string) (*dto.UserProfileResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{uowFactory: uowFactory}
}

func (s *userService) GetProfile(ctx context.Context, userId string) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperror.Internal("failed to load user", err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	exemptions, err := uow.UserExemptionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "product_type"},
	)
	if err != nil {
		return nil, apperror.Internal("failed to load exemptions", err)
	}

	res := &dto.UserProfileResponse{
		User:       toUserResponse(user),
		Exemptions: make([]dto.UserExemptionResponse, 0, len(exemptions)),
	}
	for _, e := range exemptions {
		res.Exemptions = append(res.Exemptions, toExemptionResponse(e))
	}
	return res, nil
}

func toExemptionResponse(e *entity.UserExemption) dto.UserExemptionResponse {
	return dto.UserExemptionResponse{
		Id:                e.Id,
		UserId:            e.UserId,
		ProductType:       e.ProductType,
		ExemptionLimit:    e.ExemptionLimit.InexactFloat64(),
		CertificationType: e.CertificationType,
		ValidTill:         e.ValidTill,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}
