package dto

import "time"

type SendMessageRequest struct {
	Message       string  `json:"message" validate:"required"`
	CustomerId    *string `json:"customer_id"`
	ChatSessionId *string `json:"chat_session_id"`
	UserId        string  `json:"user_id"`
}

type SendMessageResponse struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
	Source    string `json:"source"`
}

type CreateSessionRequest struct {
	UserId     string  `json:"user_id" validate:"required"`
	CustomerId *string `json:"customer_id"`
}

// UpdateSessionRequest fields are optional; nil leaves the column as is.
type UpdateSessionRequest struct {
	CustomerId *string `json:"customer_id"`
	IsActive   *bool   `json:"is_active"`
}

type ChatSessionResponse struct {
	Id         string    `json:"id"`
	UserId     string    `json:"user_id"`
	CustomerId *string   `json:"customer_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	IsActive   bool      `json:"is_active"`
}

type ChatMessageDto struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type InteractionLogResponse struct {
	Id                string           `json:"id"`
	ChatId            string           `json:"chat_id"`
	UserId            string           `json:"user_id"`
	CustomerId        *string          `json:"customer_id"`
	Messages          []ChatMessageDto `json:"messages"`
	CreatedAt         time.Time        `json:"created_at"`
	RecommendedPolicy *string          `json:"recommended_policy"`
	ConversionStatus  *string          `json:"conversion_status"`
	FeedbackRating    *int             `json:"feedback_rating"`
}

type RecommendCustomerDto struct {
	Age             int    `json:"age"`
	RiskAppetite    string `json:"risk_appetite"`
	IncomeBracket   string `json:"income_bracket"`
	DependentsCount int    `json:"dependents_count"`
}

type RecommendPolicyRequest struct {
	Customer *RecommendCustomerDto `json:"customer"`
}

type PolicyRecommendation struct {
	PolicyName       string   `json:"policy_name"`
	PolicyType       string   `json:"policy_type"`
	CoverageAmount   string   `json:"coverage_amount"`
	PremiumEstimate  string   `json:"premium_estimate"`
	KeyBenefits      []string `json:"key_benefits"`
	SuitabilityScore int      `json:"suitability_score"`
	Reasoning        string   `json:"reasoning"`
}

type RecommendPolicyResponse struct {
	Recommendations []PolicyRecommendation `json:"recommendations"`
}
