package dto

import "time"

type PolicyResponse struct {
	Id                   string                 `json:"id"`
	Name                 string                 `json:"name"`
	Type                 string                 `json:"type"`
	EligibilityCriteria  map[string]interface{} `json:"eligibility_criteria"`
	CoverageAmounts      []float64              `json:"coverage_amounts"`
	TermRange            string                 `json:"term_range"`
	PremiumRange         []float64              `json:"premium_range"`
	TaxBenefits          string                 `json:"tax_benefits"`
	ClaimSettlementRatio float64                `json:"claim_settlement_ratio"`
	RidersAvailable      []string               `json:"riders_available"`
	Features             []string               `json:"features"`
	DocumentsRequired    []string               `json:"documents_required"`
	LastUpdated          time.Time              `json:"last_updated"`
}

type CompetitorPolicyResponse struct {
	Id                   string    `json:"id"`
	Provider             string    `json:"provider"`
	PolicyName           string    `json:"policy_name"`
	Type                 string    `json:"type"`
	CoverageAmount       float64   `json:"coverage_amount"`
	Premium              float64   `json:"premium"`
	PolicyTerm           string    `json:"policy_term"`
	ClaimSettlementRatio float64   `json:"claim_settlement_ratio"`
	Features             []string  `json:"features"`
	Pros                 []string  `json:"pros"`
	Cons                 []string  `json:"cons"`
	FetchedFrom          string    `json:"fetched_from"`
	LastChecked          time.Time `json:"last_checked"`
}
