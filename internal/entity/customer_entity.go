package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// HealthConditions maps a condition key (e.g. "heart_disease") to whether
// the customer reported it.
type HealthConditions map[string]bool

type ExistingPolicy struct {
	Provider string          `json:"provider"`
	Type     string          `json:"type"`
	Premium  decimal.Decimal `json:"premium"`
	Coverage string          `json:"coverage"` // free-form, e.g. "5,00,000" or "Market Linked"
	Term     string          `json:"term"`
}

type Customer struct {
	Id               string
	Name             string
	Age              int
	Gender           string
	MaritalStatus    string
	Profession       string
	IncomeBracket    string
	AnnualIncome     decimal.Decimal
	City             string
	State            string
	DependentsCount  int
	HealthConditions HealthConditions
	FinancialGoals   []string
	RiskAppetite     string
	Lifestyle        string
	ExistingPolicies []ExistingPolicy
	LeadSource       string
	LastLogin        *time.Time
	Phone            string
	Email            string
}
