package dto

import "time"

type ExistingPolicyDto struct {
	Provider string  `json:"provider" validate:"required"`
	Type     string  `json:"type" validate:"required"`
	Premium  float64 `json:"premium" validate:"gte=0"`
	Coverage string  `json:"coverage"`
	Term     string  `json:"term"`
}

type CustomerResponse struct {
	Id               string              `json:"id"`
	Name             string              `json:"name"`
	Age              int                 `json:"age"`
	Gender           string              `json:"gender"`
	MaritalStatus    string              `json:"marital_status"`
	Profession       string              `json:"profession"`
	IncomeBracket    string              `json:"income_bracket"`
	AnnualIncome     float64             `json:"annual_income"`
	City             string              `json:"city"`
	State            string              `json:"state"`
	DependentsCount  int                 `json:"dependents_count"`
	HealthConditions map[string]bool     `json:"health_conditions"`
	FinancialGoals   []string            `json:"financial_goals"`
	RiskAppetite     string              `json:"risk_appetite"`
	Lifestyle        string              `json:"lifestyle"`
	ExistingPolicies []ExistingPolicyDto `json:"existing_policies"`
	LeadSource       string              `json:"lead_source"`
	LastLogin        *time.Time          `json:"last_login"`
	Phone            string              `json:"phone"`
	Email            string              `json:"email"`
}

type CreateCustomerRequest struct {
	Id               string              `json:"id" validate:"omitempty,max=64"` // generated when empty
	Name             string              `json:"name" validate:"required"`
	Age              int                 `json:"age" validate:"required,gt=0,lt=130"`
	Gender           string              `json:"gender"`
	MaritalStatus    string              `json:"marital_status"`
	Profession       string              `json:"profession"`
	IncomeBracket    string              `json:"income_bracket"`
	AnnualIncome     float64             `json:"annual_income" validate:"gte=0"`
	City             string              `json:"city"`
	State            string              `json:"state"`
	DependentsCount  int                 `json:"dependents_count" validate:"gte=0"`
	HealthConditions map[string]bool     `json:"health_conditions"`
	FinancialGoals   []string            `json:"financial_goals"`
	RiskAppetite     string              `json:"risk_appetite" validate:"omitempty,oneof=Low Medium High"`
	Lifestyle        string              `json:"lifestyle"`
	ExistingPolicies []ExistingPolicyDto `json:"existing_policies" validate:"dive"`
	LeadSource       string              `json:"lead_source"`
	Phone            string              `json:"phone"`
	Email            string              `json:"email" validate:"omitempty,email"`
}
