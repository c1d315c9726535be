package anthropic

import (
	"context"
	"errors"

	"abhi-advisor-be/pkg/llm"

	sdk "github.com/liushuangls/go-anthropic/v2"
)

const DefaultModel = "claude-3-5-haiku-latest"

type Provider struct {
	client   *sdk.Client
	defaults llm.Options
}

var _ llm.LLMProvider = (*Provider)(nil)

type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
}

func NewProvider(cfg Config) *Provider {
	var opts []sdk.ClientOption
	if cfg.BaseURL != "" {
		opts = append(opts, sdk.WithBaseURL(cfg.BaseURL))
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 1000
	}
	return &Provider{
		client: sdk.NewClient(cfg.APIKey, opts...),
		defaults: llm.Options{
			Model:       model,
			Temperature: cfg.Temperature,
			MaxTokens:   maxTokens,
		},
	}
}

func (p *Provider) Name() string {
	return "anthropic"
}

// Chat sends system messages in the System field; the Messages API rejects
// a "system" role inside the conversation.
func (p *Provider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := llm.ApplyOptions(p.defaults, opts...)
	system, turns := llm.SplitSystem(history)

	messages := make([]sdk.Message, 0, len(turns))
	for _, m := range turns {
		text := m.Content
		role := sdk.RoleUser
		if m.Role == llm.RoleAssistant || m.Role == "model" {
			role = sdk.RoleAssistant
		}
		messages = append(messages, sdk.Message{
			Role:    role,
			Content: []sdk.MessageContent{{Type: "text", Text: &text}},
		})
	}

	temperature := float32(options.Temperature)
	resp, err := p.client.CreateMessages(ctx, sdk.MessagesRequest{
		Model:       sdk.Model(options.Model),
		MaxTokens:   options.MaxTokens,
		System:      system,
		Messages:    messages,
		Temperature: &temperature,
	})
	if err != nil {
		return "", llm.NewProviderError(p.Name(), options.Model, "create message failed", statusCode(err), err)
	}

	for _, block := range resp.Content {
		if block.Type == "text" && block.Text != nil && *block.Text != "" {
			return *block.Text, nil
		}
	}
	return "", llm.NewProviderError(p.Name(), options.Model, "no text content", 0, llm.ErrEmptyResponse)
}

func (p *Provider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts...)
}

func statusCode(err error) int {
	var reqErr *sdk.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode
	}
	return 0
}
