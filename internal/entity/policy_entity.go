package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type PolicyType string

const (
	PolicyTypeHealth     PolicyType = "Health"
	PolicyTypeTerm       PolicyType = "Term"
	PolicyTypeULIP       PolicyType = "ULIP"
	PolicyTypeChild      PolicyType = "Child"
	PolicyTypeRetirement PolicyType = "Retirement"
)

// Policy is an entry in the own-provider product catalog.
type Policy struct {
	Id                   string
	Name                 string
	Type                 PolicyType
	EligibilityCriteria  map[string]interface{}
	CoverageAmounts      []decimal.Decimal
	TermRange            string
	PremiumRange         []decimal.Decimal // [min, max]
	TaxBenefits          string
	ClaimSettlementRatio float64
	RidersAvailable      []string
	Features             []string
	DocumentsRequired    []string
	LastUpdated          time.Time
}

type CompetitorPolicy struct {
	Id                   string
	Provider             string
	PolicyName           string
	Type                 PolicyType
	CoverageAmount       decimal.Decimal
	Premium              decimal.Decimal
	PolicyTerm           string
	ClaimSettlementRatio float64
	Features             []string
	Pros                 []string
	Cons                 []string
	FetchedFrom          string
	LastChecked          time.Time
}
