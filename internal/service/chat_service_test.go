package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"abhi-advisor-be/internal/dto"
	"abhi-advisor-be/internal/entity"
	"abhi-advisor-be/internal/pkg/apperror"
	"abhi-advisor-be/internal/repository/specification"
	"abhi-advisor-be/internal/repository/unitofwork"
	"abhi-advisor-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chatFixture struct {
	factory   unitofwork.RepositoryFactory
	provider  *fakeProvider
	publisher *fakePublisher
	log       *recordingLogger
	svc       IChatService
}

func newChatFixture(t *testing.T, provider *fakeProvider) *chatFixture {
	t.Helper()
	f := &chatFixture{
		factory:   newTestFactory(t),
		provider:  provider,
		publisher: &fakePublisher{},
		log:       &recordingLogger{},
	}
	var recommendation IRecommendationService
	if provider != nil {
		recommendation = NewRecommendationService(provider, time.Second, f.log)
	} else {
		recommendation = NewRecommendationService(nil, time.Second, f.log)
	}
	f.svc = NewChatService(f.factory, recommendation, f.publisher, f.log)
	return f
}

func (f *chatFixture) interactionCount(t *testing.T) int64 {
	t.Helper()
	n, err := f.factory.NewUnitOfWork(context.Background()).InteractionLogRepository().Count(context.Background())
	require.NoError(t, err)
	return n
}

func strPtr(s string) *string { return &s }

func TestCreateSession(t *testing.T) {
	f := newChatFixture(t, nil)
	ctx := context.Background()

	_, err := f.svc.CreateSession(ctx, &dto.CreateSessionRequest{UserId: "  "})
	assert.True(t, apperror.Is(err, apperror.KindValidation))

	res, err := f.svc.CreateSession(ctx, &dto.CreateSessionRequest{UserId: "adv-1", CustomerId: strPtr("")})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Id)
	assert.Equal(t, "adv-1", res.UserId)
	assert.Nil(t, res.CustomerId)
	assert.True(t, res.IsActive)
}

func TestUpdateSessionMergesFields(t *testing.T) {
	f := newChatFixture(t, nil)
	ctx := context.Background()

	created, err := f.svc.CreateSession(ctx, &dto.CreateSessionRequest{UserId: "adv-1"})
	require.NoError(t, err)

	inactive := false
	updated, err := f.svc.UpdateSession(ctx, created.Id, &dto.UpdateSessionRequest{CustomerId: strPtr("cust-101")})
	require.NoError(t, err)
	require.NotNil(t, updated.CustomerId)
	assert.Equal(t, "cust-101", *updated.CustomerId)
	assert.True(t, updated.IsActive)

	updated, err = f.svc.UpdateSession(ctx, created.Id, &dto.UpdateSessionRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	require.NotNil(t, updated.CustomerId, "customer survives an update that omits it")

	stored, err := f.factory.NewUnitOfWork(ctx).ChatSessionRepository().FindOne(ctx, specification.ByID{ID: created.Id})
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
	assert.Equal(t, "cust-101", *stored.CustomerId)
}

func TestUpdateSessionUnknownIdIsNotFound(t *testing.T) {
	f := newChatFixture(t, nil)
	ctx := context.Background()

	_, err := f.svc.UpdateSession(ctx, "missing", &dto.UpdateSessionRequest{CustomerId: strPtr("cust-1")})
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	n, err := f.factory.NewUnitOfWork(ctx).ChatSessionRepository().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSendMessageRequiresMessage(t *testing.T) {
	f := newChatFixture(t, &fakeProvider{reply: "hi"})
	ctx := context.Background()
	session, err := f.svc.CreateSession(ctx, &dto.CreateSessionRequest{UserId: "adv-1"})
	require.NoError(t, err)

	_, err = f.svc.SendMessage(ctx, &dto.SendMessageRequest{Message: "   ", ChatSessionId: &session.Id, UserId: "adv-1"})

	assert.True(t, apperror.Is(err, apperror.KindValidation))
	assert.Zero(t, f.interactionCount(t))
	assert.Zero(t, f.provider.calls.Load())
}

func TestSendMessageRecordsInteraction(t *testing.T) {
	f := newChatFixture(t, nil)
	ctx := context.Background()
	adv := seedAdvisor(t, f.factory, "hash")
	seedCustomer(t, f.factory, testCustomer("cust-101", "Ramesh Patel"))

	session, err := f.svc.CreateSession(ctx, &dto.CreateSessionRequest{UserId: adv.Id, CustomerId: strPtr("cust-101")})
	require.NoError(t, err)

	res, err := f.svc.SendMessage(ctx, &dto.SendMessageRequest{
		Message:       "customer wants 15 lakh health cover",
		CustomerId:    strPtr("cust-101"),
		ChatSessionId: &session.Id,
		UserId:        adv.Id,
	})
	require.NoError(t, err)

	assert.Equal(t, SourceFallback, res.Source)
	assert.Contains(t, res.Response, "Underwriting Alert for Sales Advisor 001")
	_, err = time.Parse(time.RFC3339, res.Timestamp)
	assert.NoError(t, err)

	logs, err := f.factory.NewUnitOfWork(ctx).InteractionLogRepository().FindAll(ctx, specification.ByChatID{ChatID: session.Id})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	log := logs[0]
	assert.Equal(t, adv.Id, log.UserId)
	require.NotNil(t, log.CustomerId)
	assert.Equal(t, "cust-101", *log.CustomerId)
	require.Len(t, log.Messages, 2)
	assert.Equal(t, entity.ChatRoleUser, log.Messages[0].Role)
	assert.Equal(t, "customer wants 15 lakh health cover", log.Messages[0].Content)
	assert.Equal(t, entity.ChatRoleAssistant, log.Messages[1].Role)
	assert.Equal(t, res.Response, log.Messages[1].Content)

	published := f.publisher.Events()
	require.Len(t, published, 1)
	event, ok := published[0].(events.InteractionRecorded)
	require.True(t, ok)
	assert.Equal(t, log.Id, event.LogID)
	assert.Equal(t, "cust-101", event.CustomerID)
	assert.Equal(t, SourceFallback, event.Source)
}

func TestSendMessageWithoutSessionIsNotRecorded(t *testing.T) {
	f := newChatFixture(t, &fakeProvider{reply: "Consider Protect@Ease."})
	ctx := context.Background()

	res, err := f.svc.SendMessage(ctx, &dto.SendMessageRequest{Message: "term plan options?", UserId: "adv-1"})
	require.NoError(t, err)

	assert.Equal(t, SourceLLM, res.Source)
	assert.Equal(t, "Consider Protect@Ease.", res.Response)
	assert.EqualValues(t, 1, f.provider.calls.Load())
	assert.Zero(t, f.interactionCount(t))
	assert.Empty(t, f.publisher.Events())
}

func TestSendMessageUnknownSessionIsNotFound(t *testing.T) {
	f := newChatFixture(t, &fakeProvider{reply: "x"})

	_, err := f.svc.SendMessage(context.Background(), &dto.SendMessageRequest{
		Message:       "hello",
		ChatSessionId: strPtr("nope"),
		UserId:        "adv-1",
	})

	assert.True(t, apperror.Is(err, apperror.KindNotFound))
	assert.Zero(t, f.provider.calls.Load())
}

func TestSendMessageUnknownCustomerStillAnswers(t *testing.T) {
	f := newChatFixture(t, &fakeProvider{reply: "General advice."})

	res, err := f.svc.SendMessage(context.Background(), &dto.SendMessageRequest{
		Message:    "what should I pitch?",
		CustomerId: strPtr("cust-999"),
	})
	require.NoError(t, err)
	assert.Equal(t, "General advice.", res.Response)

	require.Len(t, f.provider.last, 2)
	assert.NotContains(t, f.provider.last[0].Content, "Customer Profile:")
}

func TestSendMessageIncludesContextsInPrompt(t *testing.T) {
	f := newChatFixture(t, &fakeProvider{reply: "ok"})
	adv := seedAdvisor(t, f.factory, "hash")
	seedCustomer(t, f.factory, testCustomer("cust-101", "Ramesh Patel"))

	_, err := f.svc.SendMessage(context.Background(), &dto.SendMessageRequest{
		Message:    "health options",
		CustomerId: strPtr("cust-101"),
		UserId:     adv.Id,
	})
	require.NoError(t, err)

	system := f.provider.last[0].Content
	assert.Contains(t, system, "Customer Profile:")
	assert.Contains(t, system, "Ramesh Patel")
	assert.Contains(t, system, "Sales Advisor Context:")
	assert.Contains(t, system, "Underwriting Exemption Limits:")
}

func TestRecordInteractionConcurrent(t *testing.T) {
	f := newChatFixture(t, nil)
	ctx := context.Background()
	const writers = 20

	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := f.svc.RecordInteraction(ctx, RecordInteractionInput{
				SessionId:     "chat-1",
				UserId:        "adv-1",
				UserText:      fmt.Sprintf("question %d", i),
				AssistantText: fmt.Sprintf("answer %d", i),
				Source:        SourceFallback,
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.EqualValues(t, writers, f.interactionCount(t))
	assert.Len(t, f.publisher.Events(), writers)
}

func TestRecordInteractionRequiresSessionAndUser(t *testing.T) {
	f := newChatFixture(t, nil)

	_, err := f.svc.RecordInteraction(context.Background(), RecordInteractionInput{UserId: "adv-1"})
	assert.True(t, apperror.Is(err, apperror.KindValidation))
	assert.Zero(t, f.interactionCount(t))
}

func TestGetSessionInteractions(t *testing.T) {
	f := newChatFixture(t, nil)
	ctx := context.Background()

	_, err := f.svc.GetSessionInteractions(ctx, "missing")
	assert.True(t, apperror.Is(err, apperror.KindNotFound))

	session, err := f.svc.CreateSession(ctx, &dto.CreateSessionRequest{UserId: "adv-1"})
	require.NoError(t, err)
	for _, msg := range []string{"first", "second"} {
		_, err := f.svc.SendMessage(ctx, &dto.SendMessageRequest{Message: msg, ChatSessionId: &session.Id, UserId: "adv-1"})
		require.NoError(t, err)
	}

	logs, err := f.svc.GetSessionInteractions(ctx, session.Id)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "first", logs[0].Messages[0].Content)
	assert.Equal(t, "second", logs[1].Messages[0].Content)
}
