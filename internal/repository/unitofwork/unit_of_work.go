package unitofwork

import (
	"context"

	"abhi-advisor-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	CustomerRepository() contract.CustomerRepository
	PolicyRepository() contract.PolicyRepository
	CompetitorPolicyRepository() contract.CompetitorPolicyRepository
	UserRepository() contract.UserRepository
	UserExemptionRepository() contract.UserExemptionRepository
	ChatSessionRepository() contract.ChatSessionRepository
	InteractionLogRepository() contract.InteractionLogRepository
}
