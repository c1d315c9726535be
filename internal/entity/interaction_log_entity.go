package entity

import "time"

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

type ChatMessage struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// InteractionLog is one advisor message and the assistant reply. Rows are
// append-only. The outcome fields are reserved and stay nil.
type InteractionLog struct {
	Id                string
	ChatId            string
	UserId            string
	CustomerId        *string
	Messages          []ChatMessage
	CreatedAt         time.Time
	RecommendedPolicy *string
	ConversionStatus  *string
	FeedbackRating    *int
}
