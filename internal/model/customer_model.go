package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Customer struct {
	Id               string          `gorm:"type:varchar(64);primaryKey"`
	Name             string          `gorm:"type:varchar(255);not null;index"`
	Age              int             `gorm:"not null"`
	Gender           string          `gorm:"type:varchar(16)"`
	MaritalStatus    string          `gorm:"type:varchar(32)"`
	Profession       string          `gorm:"type:varchar(128)"`
	IncomeBracket    string          `gorm:"type:varchar(32)"`
	AnnualIncome     decimal.Decimal `gorm:"type:numeric(15,2)"`
	City             string          `gorm:"type:varchar(128)"`
	State            string          `gorm:"type:varchar(128)"`
	DependentsCount  int             `gorm:"default:0"`
	HealthConditions datatypes.JSON  `gorm:"not null"`
	FinancialGoals   datatypes.JSON  `gorm:"not null"`
	RiskAppetite     string          `gorm:"type:varchar(32)"`
	Lifestyle        string          `gorm:"type:varchar(128)"`
	ExistingPolicies datatypes.JSON  `gorm:"not null"`
	LeadSource       string          `gorm:"type:varchar(128)"`
	LastLogin        *time.Time
	Phone            string `gorm:"type:varchar(32);index"`
	Email            string `gorm:"type:varchar(255);index"`
}

func (Customer) TableName() string {
	return "customers"
}
