package specification

import "gorm.io/gorm"

type ByPolicyType struct {
	Type string
}

func (s ByPolicyType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("LOWER(type) = LOWER(?)", s.Type)
}

type ByProvider struct {
	Provider string
}

func (s ByProvider) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("provider = ?", s.Provider)
}
