package service

import (
	"context"
	"fmt"
	"time"

	"abhi-advisor-be/internal/dto"
	"abhi-advisor-be/internal/pkg/apperror"
	"abhi-advisor-be/internal/pkg/logger"
	"abhi-advisor-be/pkg/advisor"
	"abhi-advisor-be/pkg/llm"
)

const (
	SourceLLM      = "llm"
	SourceFallback = "fallback"

	defaultLLMTimeout = 20 * time.Second
)

type Recommendation struct {
	Text   string
	Source string
}

type IRecommendationService interface {
	// Recommend never fails: provider problems fall back to the rule-based responder.
	Recommend(ctx context.Context, prompt advisor.Prompt, rc advisor.ResponseContext) Recommendation
	RecommendPolicies(ctx context.Context, req *dto.RecommendPolicyRequest) (*dto.RecommendPolicyResponse, error)
}

type recommendationService struct {
	provider  llm.LLMProvider
	responder *advisor.Responder
	timeout   time.Duration
	logger    logger.ILogger
}

// NewRecommendationService accepts a nil provider; every message is then
// answered by the rule-based responder.
func NewRecommendationService(provider llm.LLMProvider, timeout time.Duration, log logger.ILogger) IRecommendationService {
	if timeout <= 0 {
		timeout = defaultLLMTimeout
	}
	return &recommendationService{
		provider:  provider,
		responder: advisor.NewResponder(),
		timeout:   timeout,
		logger:    log,
	}
}

func (s *recommendationService) Recommend(ctx context.Context, prompt advisor.Prompt, rc advisor.ResponseContext) Recommendation {
	if s.provider != nil {
		text, err := s.callProvider(ctx, prompt)
		if err == nil {
			alert := advisor.CheckUnderwriting(rc.Message, rc.Advisor, rc.Exemptions)
			return Recommendation{Text: advisor.AppendAlert(text, alert), Source: SourceLLM}
		}
		s.logger.Warn("RECOMMEND", "Provider call failed, using fallback", map[string]interface{}{
			"provider": s.provider.Name(),
			"error":    err.Error(),
		})
	}

	return Recommendation{Text: s.responder.Respond(rc), Source: SourceFallback}
}

// callProvider makes exactly one attempt bounded by the configured timeout.
func (s *recommendationService) callProvider(ctx context.Context, prompt advisor.Prompt) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	text, err := s.provider.Chat(callCtx, []llm.Message{
		{Role: llm.RoleSystem, Content: prompt.System},
		{Role: llm.RoleUser, Content: prompt.User},
	})
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", llm.ErrEmptyResponse
	}

	s.logger.Debug("RECOMMEND", "Provider answered", map[string]interface{}{
		"provider":    s.provider.Name(),
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return text, nil
}

func (s *recommendationService) RecommendPolicies(ctx context.Context, req *dto.RecommendPolicyRequest) (*dto.RecommendPolicyResponse, error) {
	if req == nil || req.Customer == nil {
		return nil, apperror.Validation("Customer data is required")
	}
	c := req.Customer

	return &dto.RecommendPolicyResponse{
		Recommendations: []dto.PolicyRecommendation{
			{
				PolicyName:       "Activ Health Enhanced",
				PolicyType:       "Health Insurance",
				CoverageAmount:   "₹10,00,000",
				PremiumEstimate:  "₹15,000/year",
				KeyBenefits:      []string{"No room rent capping", "Global coverage", "Wellness rewards", "6,500+ cashless hospitals"},
				SuitabilityScore: 95,
				Reasoning: fmt.Sprintf("Ideal for %d-year-old professionals with %s risk appetite. Comprehensive coverage aligns with financial goals.",
					c.Age, c.RiskAppetite),
			},
			{
				PolicyName:       "Protect@Ease Term Plan",
				PolicyType:       "Term Life Insurance",
				CoverageAmount:   "₹1,00,00,000",
				PremiumEstimate:  "₹25,000/year",
				KeyBenefits:      []string{"High coverage", "Tax benefits", "Flexible terms", "Critical illness rider"},
				SuitabilityScore: 90,
				Reasoning: fmt.Sprintf("Perfect life coverage for someone in %s income bracket with %d dependents.",
					c.IncomeBracket, c.DependentsCount),
			},
			{
				PolicyName:       "Vision LifeWealth Plan",
				PolicyType:       "ULIP",
				CoverageAmount:   "₹50,00,000",
				PremiumEstimate:  "₹50,000/year",
				KeyBenefits:      []string{"Investment + Insurance", "Tax benefits", "Flexible premiums", "Wealth creation"},
				SuitabilityScore: 85,
				Reasoning:        "Combines investment and insurance, suitable for long-term wealth creation goals matching the customer's financial objectives.",
			},
		},
	}, nil
}
