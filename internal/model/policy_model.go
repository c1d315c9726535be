package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Policy struct {
	Id                   string         `gorm:"type:varchar(64);primaryKey"`
	Name                 string         `gorm:"type:varchar(255);not null"`
	Type                 string         `gorm:"type:varchar(32);not null;index"`
	EligibilityCriteria  datatypes.JSON `gorm:"not null"`
	CoverageAmounts      datatypes.JSON `gorm:"not null"`
	TermRange            string         `gorm:"type:varchar(128)"`
	PremiumRange         datatypes.JSON `gorm:"not null"`
	TaxBenefits          string         `gorm:"type:text"`
	ClaimSettlementRatio float64
	RidersAvailable      datatypes.JSON `gorm:"not null"`
	Features             datatypes.JSON `gorm:"not null"`
	DocumentsRequired    datatypes.JSON `gorm:"not null"`
	LastUpdated          time.Time      `gorm:"autoUpdateTime"`
}

func (Policy) TableName() string {
	return "policies"
}

type CompetitorPolicy struct {
	Id                   string          `gorm:"type:varchar(64);primaryKey"`
	Provider             string          `gorm:"type:varchar(128);not null;index"`
	PolicyName           string          `gorm:"type:varchar(255);not null"`
	Type                 string          `gorm:"type:varchar(32);not null"`
	CoverageAmount       decimal.Decimal `gorm:"type:numeric(15,2)"`
	Premium              decimal.Decimal `gorm:"type:numeric(15,2)"`
	PolicyTerm           string          `gorm:"type:varchar(64)"`
	ClaimSettlementRatio float64
	Features             datatypes.JSON `gorm:"not null"`
	Pros                 datatypes.JSON `gorm:"not null"`
	Cons                 datatypes.JSON `gorm:"not null"`
	FetchedFrom          string         `gorm:"type:varchar(255)"`
	LastChecked          time.Time
}

func (CompetitorPolicy) TableName() string {
	return "competitor_policies"
}
