package specification

import (
	"gorm.io/gorm"
)

type ByUsername struct {
	Username string
}

func (s ByUsername) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("username = ?", s.Username)
}

type UserOwnedBy struct {
	UserID string
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type ByProductType struct {
	ProductType string
}

func (s ByProductType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(product_type) = LOWER(?)", s.ProductType)
}
