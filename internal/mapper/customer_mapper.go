package mapper

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"abhi-advisor-be/internal/entity"
	"abhi-advisor-be/internal/model"
	"abhi-advisor-be/internal/pkg/logger"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// CustomerMapper converts between the customers table and the entity.
// The three JSON columns are validated here: a value that does not match
// its documented shape is replaced with an empty collection and logged.
type CustomerMapper struct {
	log logger.ILogger
}

func NewCustomerMapper(log logger.ILogger) *CustomerMapper {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &CustomerMapper{log: log}
}

func (m *CustomerMapper) CustomerToEntity(c *model.Customer) *entity.Customer {
	if c == nil {
		return nil
	}

	health, err := DecodeHealthConditions(c.HealthConditions)
	if err != nil {
		m.shapeError(c.Id, "health_conditions", err)
	}
	goals, err := DecodeFinancialGoals(c.FinancialGoals)
	if err != nil {
		m.shapeError(c.Id, "financial_goals", err)
	}
	policies, err := DecodeExistingPolicies(c.ExistingPolicies)
	if err != nil {
		m.shapeError(c.Id, "existing_policies", err)
	}

	return &entity.Customer{
		Id:               c.Id,
		Name:             c.Name,
		Age:              c.Age,
		Gender:           c.Gender,
		MaritalStatus:    c.MaritalStatus,
		Profession:       c.Profession,
		IncomeBracket:    c.IncomeBracket,
		AnnualIncome:     c.AnnualIncome,
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

func (m *CustomerMapper) CustomersToEntities(models []*model.Customer) []*entity.Customer {
	entities := make([]*entity.Customer, len(models))
	for i, c := range models {
		entities[i] = m.CustomerToEntity(c)
	}
	return entities
}

func (m *CustomerMapper) CustomerToModel(c *entity.Customer) (*model.Customer, error) {
	if c == nil {
		return nil, nil
	}

	health := c.HealthConditions
	if health == nil {
		health = entity.HealthConditions{}
	}
	goals := c.FinancialGoals
	if goals == nil {
		goals = []string{}
	}
	policies := c.ExistingPolicies
	if policies == nil {
		policies = []entity.ExistingPolicy{}
	}

	healthJSON, err := json.Marshal(health)
	if err != nil {
		return nil, fmt.Errorf("marshal health_conditions: %w", err)
	}
	goalsJSON, err := json.Marshal(goals)
	if err != nil {
		return nil, fmt.Errorf("marshal financial_goals: %w", err)
	}
	policiesJSON, err := json.Marshal(policies)
	if err != nil {
		return nil, fmt.Errorf("marshal existing_policies: %w", err)
	}

	return &model.Customer{
		Id:               c.Id,
		Name:             c.Name,
		Age:              c.Age,
		Gender:           c.Gender,
		MaritalStatus:    c.MaritalStatus,
		Profession:       c.Profession,
		IncomeBracket:    c.IncomeBracket,
		AnnualIncome:     c.AnnualIncome,
		City:             c.City,
		State:            c.State,
		DependentsCount:  c.DependentsCount,
		HealthConditions: datatypes.JSON(healthJSON),
		FinancialGoals:   datatypes.JSON(goalsJSON),
		RiskAppetite:     c.RiskAppetite,
		Lifestyle:        c.Lifestyle,
		ExistingPolicies: datatypes.JSON(policiesJSON),
		LeadSource:       c.LeadSource,
		LastLogin:        c.LastLogin,
		Phone:            c.Phone,
		Email:            c.Email,
	}, nil
}

func (m *CustomerMapper) shapeError(customerId, field string, err error) {
	m.log.Warn("MAPPER", "malformed customer field replaced with empty default", map[string]interface{}{
		"customer_id": customerId,
		"field":       field,
		"error":       err.Error(),
	})
}

// DecodeHealthConditions expects a JSON object of booleans. Empty input is
// an empty map without error.
func DecodeHealthConditions(raw []byte) (entity.HealthConditions, error) {
	out := entity.HealthConditions{}
	if isBlankJSON(raw) {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return entity.HealthConditions{}, err
	}
	return out, nil
}

// DecodeFinancialGoals expects a JSON array of strings.
func DecodeFinancialGoals(raw []byte) ([]string, error) {
	out := []string{}
	if isBlankJSON(raw) {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return []string{}, err
	}
	if out == nil {
		out = []string{}
	}
	return out, nil
}

type existingPolicyRecord struct {
	Provider string          `json:"provider"`
	Type     string          `json:"type"`
	Premium  json.Number     `json:"premium"`
	Coverage json.RawMessage `json:"coverage"`
	Term     json.RawMessage `json:"term"`
}

// DecodeExistingPolicies expects a JSON array of
// {provider, type, premium, coverage, term}. Coverage and term may be a
// string or a number in stored data; both are kept as text.
func DecodeExistingPolicies(raw []byte) ([]entity.ExistingPolicy, error) {
	out := []entity.ExistingPolicy{}
	if isBlankJSON(raw) {
		return out, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var records []existingPolicyRecord
	if err := dec.Decode(&records); err != nil {
		return []entity.ExistingPolicy{}, err
	}

	for i, r := range records {
		premium := decimal.Zero
		if r.Premium != "" {
			p, err := decimal.NewFromString(r.Premium.String())
			if err != nil {
				return []entity.ExistingPolicy{}, fmt.Errorf("policy %d premium: %w", i, err)
			}
			premium = p
		}
		out = append(out, entity.ExistingPolicy{
			Provider: r.Provider,
			Type:     r.Type,
			Premium:  premium,
			Coverage: scalarText(r.Coverage),
			Term:     scalarText(r.Term),
		})
	}
	return out, nil
}

func isBlankJSON(raw []byte) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null"
}

func scalarText(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}
