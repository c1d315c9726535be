package model

import (
	"time"
)

type ChatSession struct {
	Id         string    `gorm:"type:varchar(64);primaryKey"`
	UserId     string    `gorm:"type:varchar(64);not null;index"`
	CustomerId *string   `gorm:"type:varchar(64);index"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
	IsActive   bool      `gorm:"not null;default:true"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
