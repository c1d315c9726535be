package service

import (
	"context"
	"strings"

	"abhi-advisor-be/internal/dto"
	"abhi-advisor-be/internal/entity"
	"abhi-advisor-be/internal/pkg/apperror"
	"abhi-advisor-be/internal/pkg/logger"
	"abhi-advisor-be/internal/repository/specification"
	"abhi-advisor-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const customerSearchLimit = 10

type ICustomerService interface {
	GetAll(ctx context.Context) ([]dto.CustomerResponse, error)
	GetById(ctx context.Context, id string) (*dto.CustomerResponse, error)
	Search(ctx context.Context, query string) ([]dto.CustomerResponse, error)
	Create(ctx context.Context, req *dto.CreateCustomerRequest) (*dto.CustomerResponse, error)
	GetInteractions(ctx context.Context, customerId string) ([]dto.InteractionLogResponse, error)
}

type customerService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewCustomerService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) ICustomerService {
	return &customerService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *customerService) GetAll(ctx context.Context) ([]dto.CustomerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	customers, err := uow.CustomerRepository().FindAll(ctx, specification.OrderBy{Field: "name"})
	if err != nil {
		return nil, apperror.Internal("failed to list customers", err)
	}
	return toCustomerResponses(customers), nil
}

func (s *customerService) GetById(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.Internal("failed to load customer", err)
	}
	if customer == nil {
		return nil, apperror.NotFound("Customer not found")
	}
	res := toCustomerResponse(customer)
	return &res, nil
}

func (s *customerService) Search(ctx context.Context, query string) ([]dto.CustomerResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperror.Validation("Search query is required")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	customers, err := uow.CustomerRepository().FindAll(ctx,
		specification.CustomerSearchQuery{Query: query},
		specification.OrderBy{Field: "name"},
		specification.Pagination{Limit: customerSearchLimit},
	)
	if err != nil {
		return nil, apperror.Internal("failed to search customers", err)
	}
	return toCustomerResponses(customers), nil
}

func (s *customerService) Create(ctx context.Context, req *dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	customer := customerFromRequest(req)
	if customer.Id == "" {
		customer.Id = uuid.NewString()
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Internal("failed to begin transaction", err)
	}
	defer uow.Rollback()

	count, err := uow.CustomerRepository().Count(ctx, specification.ByID{ID: customer.Id})
	if err != nil {
		return nil, apperror.Internal("failed to check customer", err)
	}
	if count > 0 {
		return nil, apperror.Conflict("customer %s already exists", customer.Id)
	}

	if err := uow.CustomerRepository().Create(ctx, customer); err != nil {
		return nil, apperror.Internal("failed to create customer", err)
	}
	if err := uow.Commit(); err != nil {
		return nil, apperror.Internal("failed to commit customer", err)
	}

	s.logger.Info("CUSTOMER", "Customer created", map[string]interface{}{"customer_id": customer.Id})
	res := toCustomerResponse(customer)
	return &res, nil
}

func (s *customerService) GetInteractions(ctx context.Context, customerId string) ([]dto.InteractionLogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	logs, err := uow.InteractionLogRepository().FindAll(ctx,
		specification.ByCustomerID{CustomerID: customerId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, apperror.Internal("failed to load interactions", err)
	}
	return toInteractionLogResponses(logs), nil
}

func customerFromRequest(req *dto.CreateCustomerRequest) *entity.Customer {
	health := entity.HealthConditions{}
	for k, v := range req.HealthConditions {
		health[k] = v
	}
	goals := append([]string{}, req.FinancialGoals...)
	policies := make([]entity.ExistingPolicy, 0, len(req.ExistingPolicies))
	for _, p := range req.ExistingPolicies {
		policies = append(policies, entity.ExistingPolicy{
			Provider: p.Provider,
			Type:     p.Type,
			Premium:  decimal.NewFromFloat(p.Premium),
			Coverage: p.Coverage,
			Term:     p.Term,
		})
	}

	return &entity.Customer{
		Id:               strings.TrimSpace(req.Id),
		Name:             req.Name,
		Age:              req.Age,
		Gender:           req.Gender,
		MaritalStatus:    req.MaritalStatus,
		Profession:       req.Profession,
		IncomeBracket:    req.IncomeBracket,
		AnnualIncome:     decimal.NewFromFloat(req.AnnualIncome),
		City:             req.City,
		State:            req.State,
		DependentsCount:  req.DependentsCount,
		HealthConditions: health,
		FinancialGoals:   goals,
		RiskAppetite:     req.RiskAppetite,
		Lifestyle:        req.Lifestyle,
		ExistingPolicies: policies,
		LeadSource:       req.LeadSource,
		Phone:            req.Phone,
		Email:            req.Email,
	}
}

func toCustomerResponse(c *entity.Customer) dto.CustomerResponse {
	policies := make([]dto.ExistingPolicyDto, 0, len(c.ExistingPolicies))
	for _, p := range c.ExistingPolicies {
		policies = append(policies, dto.ExistingPolicyDto{
			Provider: p.Provider,
			Type:     p.Type,
			Premium:  p.Premium.InexactFloat64(),
			Coverage: p.Coverage,
			Term:     p.Term,
		})
	}
	goals := c.FinancialGoals
	if goals == nil {
		goals = []string{}
	}
	health := map[string]bool(c.HealthConditions)
	if health == nil {
		health = map[string]bool{}
	}

	return dto.CustomerResponse{
		Id:               c.Id,
		Name:             c.Name,
		Age:              c.Age,
		Gender:           c.Gender,
		MaritalStatus:    c.MaritalStatus,
		Profession:       c.Profession,
		IncomeBracket:    c.IncomeBracket,
		AnnualIncome:     c.AnnualIncome.InexactFloat64(),
		City:             c.City,
		State:            c.State,
		DependentsCount:  c.DependentsCount,
		HealthConditions: health,
		FinancialGoals:   goals,
		RiskAppetite:     c.RiskAppetite,
		Lifestyle:        c.Lifestyle,
		ExistingPolicies: policies,
		LeadSource:       c.LeadSource,
		LastLogin:        c.LastLogin,
		Phone:            c.Phone,
		Email:            c.Email,
	}
}

func toCustomerResponses(customers []*entity.Customer) []dto.CustomerResponse {
	res := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		res = append(res, toCustomerResponse(c))
	}
	return res
}

func toInteractionLogResponse(l *entity.InteractionLog) dto.InteractionLogResponse {
	messages := make([]dto.ChatMessageDto, 0, len(l.Messages))
	for _, m := range l.Messages {
		messages = append(messages, dto.ChatMessageDto{Role: m.Role, Content: m.Content, Timestamp: m.Timestamp})
	}
	return dto.InteractionLogResponse{
		Id:                l.Id,
		ChatId:            l.ChatId,
		UserId:            l.UserId,
		CustomerId:        l.CustomerId,
		Messages:          messages,
		CreatedAt:         l.CreatedAt,
		RecommendedPolicy: l.RecommendedPolicy,
		ConversionStatus:  l.ConversionStatus,
		FeedbackRating:    l.FeedbackRating,
	}
}

func toInteractionLogResponses(logs []*entity.InteractionLog) []dto.InteractionLogResponse {
	res := make([]dto.InteractionLogResponse, 0, len(logs))
	for _, l := range logs {
		res = append(res, toInteractionLogResponse(l))
	}
	return res
}
