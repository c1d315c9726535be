package service

import (
	"context"
	"strings"
	"time"

	"abhi-advisor-be/internal/dto"
	"abhi-advisor-be/internal/entity"
	"abhi-advisor-be/internal/pkg/apperror"
	"abhi-advisor-be/internal/pkg/logger"
	"abhi-advisor-be/internal/repository/specification"
	"abhi-advisor-be/internal/repository/unitofwork"
	"abhi-advisor-be/pkg/advisor"
	"abhi-advisor-be/pkg/events"

	"github.com/google/uuid"
)

type IChatService interface {
	SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.ChatSessionResponse, error)
	UpdateSession(ctx context.Context, id string, req *dto.UpdateSessionRequest) (*dto.ChatSessionResponse, error)
	GetSessionInteractions(ctx context.Context, sessionId string) ([]dto.InteractionLogResponse, error)
	RecordInteraction(ctx context.Context, in RecordInteractionInput) (*entity.InteractionLog, error)
}

// RecordInteractionInput is one advisor message and the reply it got.
type RecordInteractionInput struct {
	SessionId     string
	UserId        string
	CustomerId    *string
	UserText      string
	UserAt        time.Time
	AssistantText string
	AssistantAt   time.Time
	Source        string
}

type chatService struct {
	uowFactory     unitofwork.RepositoryFactory
	recommendation IRecommendationService
	publisher      IPublisherService
	logger         logger.ILogger
	now            func() time.Time
}

// NewChatService accepts a nil publisher; interactions are then stored
// without emitting events.
func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	recommendation IRecommendationService,
	publisher IPublisherService,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:     uowFactory,
		recommendation: recommendation,
		publisher:      publisher,
		logger:         log,
		now:            time.Now,
	}
}

func (s *chatService) SendMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, apperror.Validation("Message is required")
	}
	receivedAt := s.now()
	customerId := optionalID(req.CustomerId)
	sessionId := optionalID(req.ChatSessionId)

	uow := s.uowFactory.NewUnitOfWork(ctx)

	if sessionId != nil {
		session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: *sessionId})
		if err != nil {
			return nil, apperror.Internal("failed to load chat session", err)
		}
		if session == nil {
			return nil, apperror.NotFound("Chat session not found")
		}
	}

	var customer *entity.Customer
	if customerId != nil {
		found, err := uow.CustomerRepository().FindOne(ctx, specification.ByID{ID: *customerId})
		if err != nil {
			return nil, apperror.Internal("failed to load customer", err)
		}
		if found == nil {
			s.logger.Warn("CHAT", "Unknown customer, answering without profile", map[string]interface{}{"customer_id": *customerId})
		}
		customer = found
	}

	var (
		user       *entity.User
		exemptions []*entity.UserExemption
	)
	if req.UserId != "" {
		found, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: req.UserId})
		if err != nil {
			return nil, apperror.Internal("failed to load advisor", err)
		}
		user = found
		if user != nil {
			exemptions, err = uow.UserExemptionRepository().FindAll(ctx,
				specification.UserOwnedBy{UserID: user.Id},
				specification.OrderBy{Field: "product_type"},
			)
			if err != nil {
				return nil, apperror.Internal("failed to load exemptions", err)
			}
		}
	}

	customerContext := advisor.BuildCustomerContext(customer)
	prompt := advisor.AssemblePrompt(advisor.PromptInput{
		AdvisorContext:  advisor.BuildAdvisorContext(user, exemptions),
		CustomerContext: customerContext,
		Message:         req.Message,
	})
	rec := s.recommendation.Recommend(ctx, prompt, advisor.ResponseContext{
		Message:         req.Message,
		CustomerContext: customerContext,
		Advisor:         user,
		Exemptions:      exemptions,
	})
	repliedAt := s.now()

	s.logger.Info("CHAT", "Message answered", map[string]interface{}{
		"source":       rec.Source,
		"has_customer": customerContext != "",
		"has_advisor":  user != nil,
	})

	if sessionId != nil && req.UserId != "" {
		_, err := s.RecordInteraction(ctx, RecordInteractionInput{
			SessionId:     *sessionId,
			UserId:        req.UserId,
			CustomerId:    customerId,
			UserText:      req.Message,
			UserAt:        receivedAt,
			AssistantText: rec.Text,
			AssistantAt:   repliedAt,
			Source:        rec.Source,
		})
		if err != nil {
			// The advisor still gets the answer; the failure is logged.
			s.logger.Error("CHAT", "Failed to record interaction", map[string]interface{}{
				"chat_id": *sessionId,
				"error":   err.Error(),
			})
		}
	}

	return &dto.SendMessageResponse{
		Response:  rec.Text,
		Timestamp: repliedAt.UTC().Format(time.RFC3339),
		Source:    rec.Source,
	}, nil
}

// RecordInteraction appends one log row inside its own transaction and
// publishes an event once the row is committed.
func (s *chatService) RecordInteraction(ctx context.Context, in RecordInteractionInput) (*entity.InteractionLog, error) {
	if in.SessionId == "" || in.UserId == "" {
		return nil, apperror.Validation("chat_session_id and user_id are required to record an interaction")
	}
	if in.UserAt.IsZero() {
		in.UserAt = s.now()
	}
	if in.AssistantAt.IsZero() {
		in.AssistantAt = s.now()
	}

	log := &entity.InteractionLog{
		Id:         uuid.NewString(),
		ChatId:     in.SessionId,
		UserId:     in.UserId,
		CustomerId: in.CustomerId,
		Messages: []entity.ChatMessage{
			{Role: entity.ChatRoleUser, Content: in.UserText, Timestamp: in.UserAt},
			{Role: entity.ChatRoleAssistant, Content: in.AssistantText, Timestamp: in.AssistantAt},
		},
		CreatedAt: in.AssistantAt,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Internal("failed to begin transaction", err)
	}
	defer uow.Rollback()

	if err := uow.InteractionLogRepository().Create(ctx, log); err != nil {
		return nil, apperror.Internal("failed to save interaction", err)
	}
	if err := uow.Commit(); err != nil {
		return nil, apperror.Internal("failed to commit interaction", err)
	}

	if s.publisher != nil {
		event := events.InteractionRecorded{
			LogID:         log.Id,
			ChatID:        log.ChatId,
			UserID:        log.UserId,
			UserText:      in.UserText,
			AssistantText: in.AssistantText,
			Source:        in.Source,
			RecordedAt:    log.CreatedAt,
		}
		if log.CustomerId != nil {
			event.CustomerID = *log.CustomerId
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Warn("CHAT", "Failed to publish interaction event", map[string]interface{}{"log_id": log.Id, "error": err.Error()})
		}
	}

	return log, nil
}

func (s *chatService) CreateSession(ctx context.Context, req *dto.CreateSessionRequest) (*dto.ChatSessionResponse, error) {
	if strings.TrimSpace(req.UserId) == "" {
		return nil, apperror.Validation("User ID is required")
	}

	now := s.now()
	session := &entity.ChatSession{
		Id:         uuid.NewString(),
		UserId:     req.UserId,
		CustomerId: optionalID(req.CustomerId),
		CreatedAt:  now,
		UpdatedAt:  now,
		IsActive:   true,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return nil, apperror.Internal("failed to create chat session", err)
	}

	res := toChatSessionResponse(session)
	return &res, nil
}

// UpdateSession merges the non-nil request fields. An empty customer_id
// detaches the customer.
func (s *chatService) UpdateSession(ctx context.Context, id string, req *dto.UpdateSessionRequest) (*dto.ChatSessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.Internal("failed to begin transaction", err)
	}
	defer uow.Rollback()

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.Internal("failed to load chat session", err)
	}
	if session == nil {
		return nil, apperror.NotFound("Chat session not found")
	}

	if req.CustomerId != nil {
		session.CustomerId = optionalID(req.CustomerId)
	}
	if req.IsActive != nil {
		session.IsActive = *req.IsActive
	}
	session.UpdatedAt = s.now()

	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, apperror.Internal("failed to update chat session", err)
	}
	if err := uow.Commit(); err != nil {
		return nil, apperror.Internal("failed to commit chat session", err)
	}

	res := toChatSessionResponse(session)
	return &res, nil
}

func (s *chatService) GetSessionInteractions(ctx context.Context, sessionId string) ([]dto.InteractionLogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, apperror.Internal("failed to load chat session", err)
	}
	if session == nil {
		return nil, apperror.NotFound("Chat session not found")
	}

	logs, err := uow.InteractionLogRepository().FindAll(ctx,
		specification.ByChatID{ChatID: sessionId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, apperror.Internal("failed to load interactions", err)
	}
	return toInteractionLogResponses(logs), nil
}

func optionalID(id *string) *string {
	if id == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*id)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func toChatSessionResponse(s *entity.ChatSession) dto.ChatSessionResponse {
	return dto.ChatSessionResponse{
		Id:         s.Id,
		UserId:     s.UserId,
		CustomerId: s.CustomerId,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
		IsActive:   s.IsActive,
	}
}
