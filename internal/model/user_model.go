package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	Id           string    `gorm:"type:varchar(64);primaryKey"`
	Username     string    `gorm:"type:varchar(128);uniqueIndex;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(50);not null;default:'sales_advisor'"`
	Level        string    `gorm:"type:varchar(50);not null;default:'level-1'"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}

type UserExemption struct {
	Id                string          `gorm:"type:varchar(64);primaryKey"`
	UserId            string          `gorm:"type:varchar(64);not null;index"`
	ProductType       string          `gorm:"type:varchar(32);not null"`
	ExemptionLimit    decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	CertificationType string          `gorm:"type:varchar(64);not null"`
	ValidTill         time.Time       `gorm:"not null"`
	CreatedAt         time.Time       `gorm:"autoCreateTime"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime"`
}

func (UserExemption) TableName() string {
	return "user_exemptions"
}
