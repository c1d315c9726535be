package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInteractionRecordedPayload(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	e := InteractionRecorded{LogID: "log-1", ChatID: "chat-1", UserID: "user-1", UserText: "hi", AssistantText: "hello", Source: "fallback", RecordedAt: at}

	var ev Event = e
	assert.Equal(t, "interaction.recorded", ev.EventType())
	assert.Equal(t, at, ev.Timestamp())
	assert.Equal(t, "chat-1", ev.Payload()["chat_id"])
	assert.Equal(t, "2025-03-01T10:00:00Z", ev.Payload()["recorded_at"])
}
