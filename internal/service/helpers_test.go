package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"abhi-advisor-be/internal/entity"
	"abhi-advisor-be/internal/repository/unitofwork"
	"abhi-advisor-be/internal/testutil"
	"abhi-advisor-be/pkg/events"
	"abhi-advisor-be/pkg/llm"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type logEntry struct {
	Level   string
	Module  string
	Message string
	Details map[string]interface{}
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) record(level, module, message string, details map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{Level: level, Module: module, Message: message, Details: details})
}

func (l *recordingLogger) Debug(module, message string, details map[string]interface{}) {
	l.record("debug", module, message, details)
}
func (l *recordingLogger) Info(module, message string, details map[string]interface{}) {
	l.record("info", module, message, details)
}
func (l *recordingLogger) Warn(module, message string, details map[string]interface{}) {
	l.record("warn", module, message, details)
}
func (l *recordingLogger) Error(module, message string, details map[string]interface{}) {
	l.record("error", module, message, details)
}
func (l *recordingLogger) Sync() error { return nil }

func (l *recordingLogger) Entries() []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]logEntry(nil), l.entries...)
}

type fakeProvider struct {
	reply string
	err   error
	calls atomic.Int32
	last  []llm.Message
	mu    sync.Mutex
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) Chat(ctx context.Context, history []llm.Message, _ ...llm.Option) (string, error) {
	p.calls.Add(1)
	p.mu.Lock()
	p.last = history
	p.mu.Unlock()
	return p.reply, p.err
}

func (p *fakeProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts...)
}

type fakePublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *fakePublisher) Events() []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]events.Event(nil), p.events...)
}

func newTestFactory(t *testing.T) unitofwork.RepositoryFactory {
	t.Helper()
	return unitofwork.NewRepositoryFactory(testutil.NewSQLiteDB(t), nil)
}

func testAdvisor() *entity.User {
	return &entity.User{
		Id:        "adv-1",
		Username:  "sales.adv001",
		Name:      "Sales Advisor 001",
		Email:     "sales.adv001@example.com",
		Role:      entity.UserRoleSalesAdvisor,
		Level:     "level-2",
		CreatedAt: time.Now(),
	}
}

func testCustomer(id, name string) *entity.Customer {
	return &entity.Customer{
		Id:               id,
		Name:             name,
		Age:              35,
		Gender:           "M",
		MaritalStatus:    "Married",
		Profession:       "Engineer",
		IncomeBracket:    "10-25L",
		AnnualIncome:     decimal.NewFromInt(1200000),
		City:             "Pune",
		State:            "Maharashtra",
		DependentsCount:  2,
		HealthConditions: entity.HealthConditions{"hypertension": true, "diabetes": false},
		FinancialGoals:   []string{"Retirement Planning"},
		RiskAppetite:     "Medium",
		ExistingPolicies: []entity.ExistingPolicy{},
		Phone:            "+919800000000",
		Email:            "customer@example.com",
	}
}

// seedAdvisor stores the advisor with a Health exemption of 5 lakh.
func seedAdvisor(t *testing.T, f unitofwork.RepositoryFactory, passwordHash string) *entity.User {
	t.Helper()
	ctx := context.Background()
	u := testAdvisor()
	u.PasswordHash = passwordHash
	uow := f.NewUnitOfWork(ctx)
	require.NoError(t, uow.UserRepository().Create(ctx, u))
	require.NoError(t, uow.UserExemptionRepository().Create(ctx, &entity.UserExemption{
		Id:                "ex-health",
		UserId:            u.Id,
		ProductType:       "Health",
		ExemptionLimit:    decimal.NewFromInt(500000),
		CertificationType: "IRDAI Agent",
		ValidTill:         time.Date(2027, 3, 31, 0, 0, 0, 0, time.UTC),
	}))
	return u
}

func seedCustomer(t *testing.T, f unitofwork.RepositoryFactory, c *entity.Customer) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.NewUnitOfWork(ctx).CustomerRepository().Create(ctx, c))
}
