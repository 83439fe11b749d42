package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrMissingAPIKey = errors.New("llm: missing API key")

type Request struct {
	Prompt      string
	Temperature float64
	MaxTokens   int64
}

// Completer sends a single user prompt to a chat-completion model.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
	Name() string
}

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// New builds the completer for provider. An empty apiKey yields a completer
// whose every call fails with ErrMissingAPIKey.
func New(ctx context.Context, provider, apiKey, model string) (Completer, error) {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if provider == "" {
		provider = ProviderOpenAI
	}
	if apiKey == "" {
		return Unconfigured{Provider: provider}, nil
	}

	switch provider {
	case ProviderOpenAI:
		c := NewOpenAIClient(apiKey)
		if model != "" {
			c.SetModel(model)
		}
		return c, nil
	case ProviderAnthropic:
		c := NewAnthropicClient(apiKey)
		if model != "" {
			c.SetModel(model)
		}
		return c, nil
	case ProviderGemini:
		return NewGeminiClient(ctx, apiKey, model)
	}
	return nil, fmt.Errorf("unknown llm provider %q", provider)
}

type Unconfigured struct {
	Provider string
}

func (u Unconfigured) Complete(context.Context, Request) (string, error) {
	return "", fmt.Errorf("%s: %w", u.Provider, ErrMissingAPIKey)
}

func (u Unconfigured) Name() string {
	return u.Provider
}
