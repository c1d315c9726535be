package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"abhi-advisor-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTopic = "interaction.recorded"

func newTestPubSub(t *testing.T) *gochannel.GoChannel {
	t.Helper()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { _ = pubSub.Close() })
	return pubSub
}

func TestConsumerWritesTranscriptAndMirrors(t *testing.T) {
	pubSub := newTestPubSub(t)
	transcript := &recordingLogger{}
	mirror := &fakePublisher{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := NewConsumerService(pubSub, testTopic, transcript, mirror, &recordingLogger{})
	require.NoError(t, consumer.Consume(ctx))

	publisher := NewPublisherService(testTopic, pubSub)
	require.NoError(t, publisher.Publish(ctx, events.InteractionRecorded{
		LogID:         "log-1",
		ChatID:        "chat-1",
		UserID:        "adv-1",
		UserText:      "term plans?",
		AssistantText: "Protect@Ease",
		Source:        SourceFallback,
		RecordedAt:    time.Now(),
	}))

	require.Eventually(t, func() bool { return len(transcript.Entries()) == 1 }, 2*time.Second, 10*time.Millisecond)
	entry := transcript.Entries()[0]
	assert.Equal(t, "TRANSCRIPT", entry.Module)
	assert.Equal(t, "log-1", entry.Details["log_id"])
	assert.Equal(t, "term plans?", entry.Details["user_text"])

	require.Eventually(t, func() bool { return len(mirror.Events()) == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, events.InteractionRecordedType, mirror.Events()[0].EventType())
}

func TestConsumerAcksMalformedPayload(t *testing.T) {
	pubSub := newTestPubSub(t)
	transcript := &recordingLogger{}
	sysLog := &recordingLogger{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, NewConsumerService(pubSub, testTopic, transcript, nil, sysLog).Consume(ctx))
	require.NoError(t, pubSub.Publish(testTopic, message.NewMessage(watermill.NewUUID(), []byte("not json"))))

	require.Eventually(t, func() bool { return len(sysLog.Entries()) == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "error", sysLog.Entries()[0].Level)
	assert.Empty(t, transcript.Entries())
}

func TestConsumerMirrorFailureIsLogged(t *testing.T) {
	pubSub := newTestPubSub(t)
	transcript := &recordingLogger{}
	sysLog := &recordingLogger{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mirror := &fakePublisher{err: errors.New("nats down")}
	require.NoError(t, NewConsumerService(pubSub, testTopic, transcript, mirror, sysLog).Consume(ctx))
	require.NoError(t, NewPublisherService(testTopic, pubSub).Publish(ctx, events.InteractionRecorded{LogID: "log-2", RecordedAt: time.Now()}))

	require.Eventually(t, func() bool { return len(sysLog.Entries()) == 1 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "warn", sysLog.Entries()[0].Level)
	assert.Len(t, transcript.Entries(), 1)
}
