package mapper

import (
	"encoding/json"
	"fmt"

	"abhi-advisor-be/internal/entity"
	"abhi-advisor-be/internal/model"

	"gorm.io/datatypes"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// Session Mappers

func (m *ChatMapper) ChatSessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}
	return &entity.ChatSession{
		Id:         s.Id,
		UserId:     s.UserId,
		CustomerId: s.CustomerId,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
		IsActive:   s.IsActive,
	}
}

func (m *ChatMapper) ChatSessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}
	return &model.ChatSession{
		Id:         s.Id,
		UserId:     s.UserId,
		CustomerId: s.CustomerId,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
		IsActive:   s.IsActive,
	}
}

// Interaction Log Mappers

func (m *ChatMapper) InteractionLogToEntity(l *model.InteractionLog) *entity.InteractionLog {
	if l == nil {
		return nil
	}

	messages := []entity.ChatMessage{}
	if err := json.Unmarshal(l.Messages, &messages); err != nil || messages == nil {
		messages = []entity.ChatMessage{}
	}

	return &entity.InteractionLog{
		Id:                l.Id,
		ChatId:            l.ChatId,
		UserId:            l.UserId,
		CustomerId:        l.CustomerId,
		Messages:          messages,
		CreatedAt:         l.CreatedAt,
		RecommendedPolicy: l.RecommendedPolicy,
		ConversionStatus:  l.ConversionStatus,
		FeedbackRating:    l.FeedbackRating,
	}
}

func (m *ChatMapper) InteractionLogsToEntities(models []*model.InteractionLog) []*entity.InteractionLog {
	entities := make([]*entity.InteractionLog, len(models))
	for i, l := range models {
		entities[i] = m.InteractionLogToEntity(l)
	}
	return entities
}

func (m *ChatMapper) InteractionLogToModel(l *entity.InteractionLog) (*model.InteractionLog, error) {
	if l == nil {
		return nil, nil
	}

	messages := l.Messages
	if messages == nil {
		messages = []entity.ChatMessage{}
	}
	raw, err := json.Marshal(messages)
	if err != nil {
		return nil, fmt.Errorf("marshal interaction messages: %w", err)
	}

	return &model.InteractionLog{
		Id:                l.Id,
		ChatId:            l.ChatId,
		UserId:            l.UserId,
		CustomerId:        l.CustomerId,
		Messages:          datatypes.JSON(raw),
		CreatedAt:         l.CreatedAt,
		RecommendedPolicy: l.RecommendedPolicy,
		ConversionStatus:  l.ConversionStatus,
		FeedbackRating:    l.FeedbackRating,
	}, nil
}
