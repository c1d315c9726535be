package service

import (
	"context"

	"abhi-advisor-be/internal/dto"
	"abhi-advisor-be/internal/entity"
	"abhi-advisor-be/internal/pkg/apperror"
	"abhi-advisor-be/internal/repository/specification"
	"abhi-advisor-be/internal/repository/unitofwork"

	"github.com/shopspring/decimal"
)

type IPolicyService interface {
	GetAll(ctx context.Context) ([]dto.PolicyResponse, error)
	GetByType(ctx context.Context, policyType string) ([]dto.PolicyResponse, error)
	GetCompetitors(ctx context.Context, provider string) ([]dto.CompetitorPolicyResponse, error)
}

type policyService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewPolicyService(uowFactory unitofwork.RepositoryFactory) IPolicyService {
	return &policyService{uowFactory: uowFactory}
}

func (s *policyService) GetAll(ctx context.Context) ([]dto.PolicyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	policies, err := uow.PolicyRepository().FindAll(ctx,
		specification.OrderBy{Field: "type"},
		specification.OrderBy{Field: "name"},
	)
	if err != nil {
		return nil, apperror.Internal("failed to list policies", err)
	}
	return toPolicyResponses(policies), nil
}

func (s *policyService) GetByType(ctx context.Context, policyType string) ([]dto.PolicyResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	policies, err := uow.PolicyRepository().FindAll(ctx,
		specification.ByPolicyType{Type: policyType},
		specification.OrderBy{Field: "name"},
	)
	if err != nil {
		return nil, apperror.Internal("failed to list policies", err)
	}
	return toPolicyResponses(policies), nil
}

// GetCompetitors lists every competitor policy, or one provider's when provider is set.
func (s *policyService) GetCompetitors(ctx context.Context, provider string) ([]dto.CompetitorPolicyResponse, error) {
	specs := []specification.Specification{}
	if provider != "" {
		specs = append(specs, specification.ByProvider{Provider: provider}, specification.OrderBy{Field: "policy_name"})
	} else {
		specs = append(specs, specification.OrderBy{Field: "provider"}, specification.OrderBy{Field: "policy_name"})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	competitors, err := uow.CompetitorPolicyRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.Internal("failed to list competitor policies", err)
	}

	res := make([]dto.CompetitorPolicyResponse, 0, len(competitors))
	for _, c := range competitors {
		res = append(res, dto.CompetitorPolicyResponse{
			Id:                   c.Id,
			Provider:             c.Provider,
			PolicyName:           c.PolicyName,
			Type:                 string(c.Type),
			CoverageAmount:       c.CoverageAmount.InexactFloat64(),
			Premium:              c.Premium.InexactFloat64(),
			PolicyTerm:           c.PolicyTerm,
			ClaimSettlementRatio: c.ClaimSettlementRatio,
			Features:             nonNil(c.Features),
			Pros:                 nonNil(c.Pros),
			Cons:                 nonNil(c.Cons),
			FetchedFrom:          c.FetchedFrom,
			LastChecked:          c.LastChecked,
		})
	}
	return res, nil
}

func toPolicyResponses(policies []*entity.Policy) []dto.PolicyResponse {
	res := make([]dto.PolicyResponse, 0, len(policies))
	for _, p := range policies {
		criteria := p.EligibilityCriteria
		if criteria == nil {
			criteria = map[string]interface{}{}
		}
		res = append(res, dto.PolicyResponse{
			Id:                   p.Id,
			Name:                 p.Name,
			Type:                 string(p.Type),
			EligibilityCriteria:  criteria,
			CoverageAmounts:      toFloats(p.CoverageAmounts),
			TermRange:            p.TermRange,
			PremiumRange:         toFloats(p.PremiumRange),
			TaxBenefits:          p.TaxBenefits,
			ClaimSettlementRatio: p.ClaimSettlementRatio,
			RidersAvailable:      nonNil(p.RidersAvailable),
			Features:             nonNil(p.Features),
			DocumentsRequired:    nonNil(p.DocumentsRequired),
			LastUpdated:          p.LastUpdated,
		})
	}
	return res
}

func toFloats(values []decimal.Decimal) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		out = append(out, v.InexactFloat64())
	}
	return out
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
