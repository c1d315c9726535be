package llm

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyResponse is returned when the provider answers without any text.
var ErrEmptyResponse = errors.New("empty response from provider")

// ProviderError wraps any failure talking to a model backend.
type ProviderError struct {
	Provider   string
	Model      string
	StatusCode int // HTTP status code if known
	Message    string
	Cause      error
}

func (e *ProviderError) Error() string {
	parts := []string{e.Provider}
	if e.StatusCode > 0 {
		parts = append(parts, fmt.Sprintf("HTTP %d", e.StatusCode))
	}
	if e.Model != "" {
		parts = append(parts, fmt.Sprintf("model=%s", e.Model))
	}
	parts = append(parts, e.Message)

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", strings.Join(parts, " "), e.Cause)
	}
	return strings.Join(parts, " ")
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

func NewProviderError(provider, model, message string, statusCode int, cause error) *ProviderError {
	return &ProviderError{
		Provider:   provider,
		Model:      model,
		StatusCode: statusCode,
		Message:    message,
		Cause:      cause,
	}
}

// IsProviderError reports whether err came from a model backend.
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}
