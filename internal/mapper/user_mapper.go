package mapper

import (
	"abhi-advisor-be/internal/entity"
	"abhi-advisor-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:           u.Id,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		Level:        u.Level,
		CreatedAt:    u.CreatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	role := u.Role
	if role == "" {
		role = entity.UserRoleSalesAdvisor
	}
	level := u.Level
	if level == "" {
		level = entity.DefaultUserLevel
	}
	return &model.User{
		Id:           u.Id,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		Email:        u.Email,
		Role:         role,
		Level:        level,
		CreatedAt:    u.CreatedAt,
	}
}

func (m *UserMapper) ExemptionToEntity(e *model.UserExemption) *entity.UserExemption {
	if e == nil {
		return nil
	}
	return &entity.UserExemption{
		Id:                e.Id,
		UserId:            e.UserId,
		ProductType:       e.ProductType,
		ExemptionLimit:    e.ExemptionLimit,
		CertificationType: e.CertificationType,
		ValidTill:         e.ValidTill,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func (m *UserMapper) ExemptionsToEntities(models []*model.UserExemption) []*entity.UserExemption {
	entities := make([]*entity.UserExemption, len(models))
	for i, e := range models {
		entities[i] = m.ExemptionToEntity(e)
	}
	return entities
}

func (m *UserMapper) ExemptionToModel(e *entity.UserExemption) *model.UserExemption {
	if e == nil {
		return nil
	}
	return &model.UserExemption{
		Id:                e.Id,
		UserId:            e.UserId,
		ProductType:       e.ProductType,
		ExemptionLimit:    e.ExemptionLimit,
		CertificationType: e.CertificationType,
		ValidTill:         e.ValidTill,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}
