package model

import (
	"time"

	"gorm.io/datatypes"
)

type InteractionLog struct {
	Id                string         `gorm:"type:varchar(64);primaryKey"`
	ChatId            string         `gorm:"type:varchar(64);not null;index"`
	UserId            string         `gorm:"type:varchar(64);not null;index"`
	CustomerId        *string        `gorm:"type:varchar(64);index"`
	Messages          datatypes.JSON `gorm:"not null"`
	CreatedAt         time.Time      `gorm:"autoCreateTime"`
	RecommendedPolicy *string        `gorm:"type:varchar(255)"`
	ConversionStatus  *string        `gorm:"type:varchar(64)"`
	FeedbackRating    *int
}

func (InteractionLog) TableName() string {
	return "interaction_logs"
}
