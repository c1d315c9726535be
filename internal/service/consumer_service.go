package service

import (
	"context"
	"encoding/json"

	"abhi-advisor-be/internal/pkg/logger"
	"abhi-advisor-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

// EventMirror forwards events to an external bus. *nats.Publisher satisfies it.
type EventMirror interface {
	Publish(ctx context.Context, event events.Event) error
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	transcript logger.ILogger
	mirror     EventMirror
	logger     logger.ILogger
}

// NewConsumerService writes every recorded interaction to the transcript
// log and mirrors it when mirror is not nil.
func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	transcript logger.ILogger,
	mirror EventMirror,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		transcript: transcript,
		mirror:     mirror,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var event events.InteractionRecorded
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.logger.Error("CONSUMER", "Failed to unmarshal interaction event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		// Ack invalid messages to prevent infinite redelivery
		msg.Ack()
		return
	}

	cs.transcript.Info("TRANSCRIPT", "interaction recorded", event.Payload())

	if cs.mirror != nil {
		if err := cs.mirror.Publish(ctx, event); err != nil {
			// The transcript line is already written; a mirror outage must not replay it.
			cs.logger.Warn("CONSUMER", "Failed to mirror interaction event", map[string]interface{}{
				"log_id": event.LogID,
				"error":  err.Error(),
			})
		}
	}

	msg.Ack()
}
