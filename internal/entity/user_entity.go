// FILE: internal/entity/user_entity.go
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	UserRoleSalesAdvisor = "sales_advisor"
	UserRoleAdmin        = "admin"

	DefaultUserLevel = "level-1"
)

// User is a sales advisor account.
type User struct {
	Id           string
	Username     string
	PasswordHash string
	Name         string
	Email        string
	Role         string
	Level        string
	CreatedAt    time.Time
}

// UserExemption is the maximum coverage an advisor may sell for a product
// type without sending the case to full underwriting.
type UserExemption struct {
	Id                string
	UserId            string
	ProductType       string // Health, Life, Term, ULIP
	ExemptionLimit    decimal.Decimal
	CertificationType string // POSP, IRDAI Agent, Corporate Agent, Group Insurance
	ValidTill         time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
