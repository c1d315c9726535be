package seed

import (
	_ "embed"
	"fmt"
	"time"

	"abhi-advisor-be/internal/entity"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

const validTillLayout = "2006-01-02"

type Catalog struct {
	Advisor     AdvisorRecord      `yaml:"advisor"`
	Policies    []PolicyRecord     `yaml:"policies"`
	Competitors []CompetitorRecord `yaml:"competitors"`
	Customers   []CustomerRecord   `yaml:"customers"`
}

type AdvisorRecord struct {
	Id         string            `yaml:"id"`
	Username   string            `yaml:"username"`
	Password   string            `yaml:"password"`
	Name       string            `yaml:"name"`
	Email      string            `yaml:"email"`
	Role       string            `yaml:"role"`
	Level      string            `yaml:"level"`
	Exemptions []ExemptionRecord `yaml:"exemptions"`
}

type ExemptionRecord struct {
	ProductType       string  `yaml:"product_type"`
	ExemptionLimit    float64 `yaml:"exemption_limit"`
	CertificationType string  `yaml:"certification_type"`
	ValidTill         string  `yaml:"valid_till"`
}

type PolicyRecord struct {
	Id                   string                 `yaml:"id"`
	Name                 string                 `yaml:"name"`
	Type                 string                 `yaml:"type"`
	EligibilityCriteria  map[string]interface{} `yaml:"eligibility_criteria"`
	CoverageAmounts      []float64              `yaml:"coverage_amounts"`
	TermRange            string                 `yaml:"term_range"`
	PremiumRange         []float64              `yaml:"premium_range"`
	TaxBenefits          string                 `yaml:"tax_benefits"`
	ClaimSettlementRatio float64                `yaml:"claim_settlement_ratio"`
	RidersAvailable      []string               `yaml:"riders_available"`
	Features             []string               `yaml:"features"`
	DocumentsRequired    []string               `yaml:"documents_required"`
}

type CompetitorRecord struct {
	Id                   string   `yaml:"id"`
	Provider             string   `yaml:"provider"`
	PolicyName           string   `yaml:"policy_name"`
	Type                 string   `yaml:"type"`
	CoverageAmount       float64  `yaml:"coverage_amount"`
	Premium              float64  `yaml:"premium"`
	PolicyTerm           string   `yaml:"policy_term"`
	ClaimSettlementRatio float64  `yaml:"claim_settlement_ratio"`
	Features             []string `yaml:"features"`
	Pros                 []string `yaml:"pros"`
	Cons                 []string `yaml:"cons"`
	FetchedFrom          string   `yaml:"fetched_from"`
}

type CustomerRecord struct {
	Id               string                 `yaml:"id"`
	Name             string                 `yaml:"name"`
	Age              int                    `yaml:"age"`
	Gender           string                 `yaml:"gender"`
	MaritalStatus    string                 `yaml:"marital_status"`
	Profession       string                 `yaml:"profession"`
	IncomeBracket    string                 `yaml:"income_bracket"`
	AnnualIncome     float64                `yaml:"annual_income"`
	City             string                 `yaml:"city"`
	State            string                 `yaml:"state"`
	DependentsCount  int                    `yaml:"dependents_count"`
	HealthConditions map[string]bool        `yaml:"health_conditions"`
	FinancialGoals   []string               `yaml:"financial_goals"`
	RiskAppetite     string                 `yaml:"risk_appetite"`
	Lifestyle        string                 `yaml:"lifestyle"`
	ExistingPolicies []ExistingPolicyRecord `yaml:"existing_policies"`
	LeadSource       string                 `yaml:"lead_source"`
	Phone            string                 `yaml:"phone"`
	Email            string                 `yaml:"email"`
}

type ExistingPolicyRecord struct {
	Provider string  `yaml:"provider"`
	Type     string  `yaml:"type"`
	Premium  float64 `yaml:"premium"`
	Coverage string  `yaml:"coverage"`
	Term     string  `yaml:"term"`
}

// LoadCatalog parses the catalog compiled into the binary.
func LoadCatalog() (*Catalog, error) {
	return ParseCatalog(catalogYAML)
}

func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse seed catalog: %w", err)
	}
	if c.Advisor.Username == "" {
		return nil, fmt.Errorf("parse seed catalog: advisor username is empty")
	}
	return &c, nil
}

func (r ExemptionRecord) toEntity(userId string, now time.Time) (*entity.UserExemption, error) {
	validTill, err := time.Parse(validTillLayout, r.ValidTill)
	if err != nil {
		return nil, fmt.Errorf("exemption %s valid_till: %w", r.ProductType, err)
	}
	return &entity.UserExemption{
		UserId:            userId,
		ProductType:       r.ProductType,
		ExemptionLimit:    decimal.NewFromFloat(r.ExemptionLimit),
		CertificationType: r.CertificationType,
		ValidTill:         validTill,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

func (r PolicyRecord) toEntity(now time.Time) *entity.Policy {
	return &entity.Policy{
		Id:                   r.Id,
		Name:                 r.Name,
		Type:                 entity.PolicyType(r.Type),
		EligibilityCriteria:  r.EligibilityCriteria,
		CoverageAmounts:      decimals(r.CoverageAmounts),
		TermRange:            r.TermRange,
		PremiumRange:         decimals(r.PremiumRange),
		TaxBenefits:          r.TaxBenefits,
		ClaimSettlementRatio: r.ClaimSettlementRatio,
		RidersAvailable:      r.RidersAvailable,
		Features:             r.Features,
		DocumentsRequired:    r.DocumentsRequired,
		LastUpdated:          now,
	}
}

func (r CompetitorRecord) toEntity(now time.Time) *entity.CompetitorPolicy {
	return &entity.CompetitorPolicy{
		Id:                   r.Id,
		Provider:             r.Provider,
		PolicyName:           r.PolicyName,
		Type:                 entity.PolicyType(r.Type),
		CoverageAmount:       decimal.NewFromFloat(r.CoverageAmount),
		Premium:              decimal.NewFromFloat(r.Premium),
		PolicyTerm:           r.PolicyTerm,
		ClaimSettlementRatio: r.ClaimSettlementRatio,
		Features:             r.Features,
		Pros:                 r.Pros,
		Cons:                 r.Cons,
		FetchedFrom:          r.FetchedFrom,
		LastChecked:          now,
	}
}

func (r CustomerRecord) toEntity(now time.Time) *entity.Customer {
	policies := make([]entity.ExistingPolicy, len(r.ExistingPolicies))
	for i, p := range r.ExistingPolicies {
		policies[i] = entity.ExistingPolicy{
			Provider: p.Provider,
			Type:     p.Type,
			Premium:  decimal.NewFromFloat(p.Premium),
			Coverage: p.Coverage,
			Term:     p.Term,
		}
	}
	lastLogin := now
	return &entity.Customer{
		Id:               r.Id,
		Name:             r.Name,
		Age:              r.Age,
		Gender:           r.Gender,
		MaritalStatus:    r.MaritalStatus,
		Profession:       r.Profession,
		IncomeBracket:    r.IncomeBracket,
		AnnualIncome:     decimal.NewFromFloat(r.AnnualIncome),
		City:             r.City,
		State:            r.State,
		DependentsCount:  r.DependentsCount,
		HealthConditions: entity.HealthConditions(r.HealthConditions),
		FinancialGoals:   r.FinancialGoals,
		RiskAppetite:     r.RiskAppetite,
		Lifestyle:        r.Lifestyle,
		ExistingPolicies: policies,
		LeadSource:       r.LeadSource,
		LastLogin:        &lastLogin,
		Phone:            r.Phone,
		Email:            r.Email,
	}
}

func decimals(values []float64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.NewFromFloat(v)
	}
	return out
}
