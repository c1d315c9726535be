package seed

import (
	"context"
	"fmt"
	"time"

	"abhi-advisor-be/internal/entity"
	"abhi-advisor-be/internal/pkg/logger"
	"abhi-advisor-be/internal/repository/specification"
	"abhi-advisor-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const GeneratedCustomerCount = 100

// Summary counts the rows inserted by one run. Rows that already existed
// are counted in Skipped.
type Summary struct {
	Users       int
	Exemptions  int
	Policies    int
	Competitors int
	Customers   int
	Skipped     int
}

type Seeder struct {
	uowFactory unitofwork.RepositoryFactory
	catalog    *Catalog
	logger     logger.ILogger
	now        func() time.Time
}

func NewSeeder(uowFactory unitofwork.RepositoryFactory, catalog *Catalog, log logger.ILogger) *Seeder {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Seeder{
		uowFactory: uowFactory,
		catalog:    catalog,
		logger:     log,
		now:        time.Now,
	}
}

// Run inserts everything in a single transaction. Existing ids are left
// untouched so the seeder can run on every start.
func (s *Seeder) Run(ctx context.Context) (*Summary, error) {
	now := s.now()
	summary := &Summary{}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := s.seedAdvisor(ctx, uow, now, summary); err != nil {
		return nil, err
	}

	for _, p := range s.catalog.Policies {
		exists, err := uow.PolicyRepository().Count(ctx, specification.ByID{ID: p.Id})
		if err != nil {
			return nil, err
		}
		if exists > 0 {
			summary.Skipped++
			continue
		}
		if err := uow.PolicyRepository().Create(ctx, p.toEntity(now)); err != nil {
			return nil, fmt.Errorf("seed policy %s: %w", p.Id, err)
		}
		summary.Policies++
	}

	for _, c := range s.catalog.Competitors {
		exists, err := uow.CompetitorPolicyRepository().Count(ctx, specification.ByID{ID: c.Id})
		if err != nil {
			return nil, err
		}
		if exists > 0 {
			summary.Skipped++
			continue
		}
		if err := uow.CompetitorPolicyRepository().Create(ctx, c.toEntity(now)); err != nil {
			return nil, fmt.Errorf("seed competitor %s: %w", c.Id, err)
		}
		summary.Competitors++
	}

	customers := GenerateCustomers(GeneratedCustomerCount, DefaultGeneratorSeed, now)
	for _, c := range s.catalog.Customers {
		customers = append(customers, c.toEntity(now))
	}
	for _, c := range customers {
		exists, err := uow.CustomerRepository().Count(ctx, specification.ByID{ID: c.Id})
		if err != nil {
			return nil, err
		}
		if exists > 0 {
			summary.Skipped++
			continue
		}
		if err := uow.CustomerRepository().Create(ctx, c); err != nil {
			return nil, fmt.Errorf("seed customer %s: %w", c.Id, err)
		}
		summary.Customers++
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("SEED", "Seed completed", map[string]interface{}{
		"users":       summary.Users,
		"exemptions":  summary.Exemptions,
		"policies":    summary.Policies,
		"competitors": summary.Competitors,
		"customers":   summary.Customers,
		"skipped":     summary.Skipped,
	})
	return summary, nil
}

// Exemptions are only written together with a newly created advisor.
func (s *Seeder) seedAdvisor(ctx context.Context, uow unitofwork.UnitOfWork, now time.Time, summary *Summary) error {
	a := s.catalog.Advisor
	exists, err := uow.UserRepository().Count(ctx, specification.ByUsername{Username: a.Username})
	if err != nil {
		return err
	}
	if exists > 0 {
		summary.Skipped++
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash advisor password: %w", err)
	}
	id := a.Id
	if id == "" {
		id = uuid.NewString()
	}
	level := a.Level
	if level == "" {
		level = entity.DefaultUserLevel
	}
	role := a.Role
	if role == "" {
		role = entity.UserRoleSalesAdvisor
	}

	if err := uow.UserRepository().Create(ctx, &entity.User{
		Id:           id,
		Username:     a.Username,
		PasswordHash: string(hash),
		Name:         a.Name,
		Email:        a.Email,
		Role:         role,
		Level:        level,
		CreatedAt:    now,
	}); err != nil {
		return fmt.Errorf("seed advisor: %w", err)
	}
	summary.Users++

	for _, rec := range a.Exemptions {
		exemption, err := rec.toEntity(id, now)
		if err != nil {
			return err
		}
		exemption.Id = uuid.NewString()
		if err := uow.UserExemptionRepository().Create(ctx, exemption); err != nil {
			return fmt.Errorf("seed exemption %s: %w", rec.ProductType, err)
		}
		summary.Exemptions++
	}
	return nil
}
