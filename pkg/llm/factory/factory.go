package factory

import (
	"fmt"
	"strings"

	"abhi-advisor-be/pkg/llm"
	"abhi-advisor-be/pkg/llm/anthropic"
	"abhi-advisor-be/pkg/llm/ollama"
	"abhi-advisor-be/pkg/llm/openai"
)

type Config struct {
	Provider    string
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float64
	MaxTokens   int
}

// NewLLMProvider returns nil, nil when no provider is configured or the
// hosted provider has no credential. Callers then answer from rules only.
func NewLLMProvider(cfg Config) (llm.LLMProvider, error) {
	providerType := strings.ToLower(strings.TrimSpace(cfg.Provider))

	switch providerType {
	case "", "none":
		return nil, nil
	case "ollama":
		return ollama.NewOllamaProvider(cfg.BaseURL, cfg.Model, cfg.Temperature, cfg.MaxTokens), nil
	}

	if cfg.APIKey == "" {
		return nil, nil
	}

	switch providerType {
	case "groq", "openai", "huggingface":
		baseURL := cfg.BaseURL
		if baseURL == "" {
			switch providerType {
			case "groq":
				baseURL = openai.GroqBaseURL
			case "huggingface":
				baseURL = openai.HuggingFaceBaseURL
			}
		}
		return openai.NewProvider(openai.Config{
			Name:        providerType,
			APIKey:      cfg.APIKey,
			BaseURL:     baseURL,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
		}), nil
	case "anthropic":
		return anthropic.NewProvider(anthropic.Config{
			APIKey:      cfg.APIKey,
			BaseURL:     cfg.BaseURL,
			Model:       cfg.Model,
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
