package entity

import (
	"time"
)

type ChatSession struct {
	Id         string
	UserId     string
	CustomerId *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	IsActive   bool
}
