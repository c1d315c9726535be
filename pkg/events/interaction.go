package events

import "time"

const InteractionRecordedType = "interaction.recorded"

// InteractionRecorded is emitted after an interaction log row commits.
type InteractionRecorded struct {
	LogID         string    `json:"log_id"`
	ChatID        string    `json:"chat_id"`
	UserID        string    `json:"user_id"`
	CustomerID    string    `json:"customer_id,omitempty"`
	UserText      string    `json:"user_text"`
	AssistantText string    `json:"assistant_text"`
	Source        string    `json:"source,omitempty"`
	RecordedAt    time.Time `json:"recorded_at"`
}

var _ Event = InteractionRecorded{}

func (e InteractionRecorded) EventType() string {
	return InteractionRecordedType
}

func (e InteractionRecorded) Payload() map[string]interface{} {
	return map[string]interface{}{
		"log_id":         e.LogID,
		"chat_id":        e.ChatID,
		"user_id":        e.UserID,
		"customer_id":    e.CustomerID,
		"user_text":      e.UserText,
		"assistant_text": e.AssistantText,
		"source":         e.Source,
		"recorded_at":    e.RecordedAt.Format(time.RFC3339Nano),
	}
}

func (e InteractionRecorded) Timestamp() time.Time {
	return e.RecordedAt
}
