package utils

import (
	"context"
	"fmt"
	"strings"
)

const (
	RoleSystem    = "system"
	RoleHuman     = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn sent to or received from a text generation endpoint.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// TextGenerationClientInterface turns a list of chat messages into a single text reply.
type TextGenerationClientInterface interface {
	GenerateText(ctx context.Context, messages []ChatMessage) (string, error)
	Close() error
}

// ProviderDefaults holds the base URL and model used when none is configured.
type ProviderDefaults struct {
	BaseURL string
	Model   string
	EnvKey  string
}

var providerDefaults = map[string]ProviderDefaults{
	"groq": {
		BaseURL: "https://api.groq.com/openai/v1",
		Model:   "mixtral-8x7b-32768",
		EnvKey:  "GROQ_API_KEY",
	},
	"openai": {
		Model:  "gpt-4o-mini",
		EnvKey: "OPENAI_API_KEY",
	},
	"gemini": {
		Model:  "gemini-1.5-flash",
		EnvKey: "GEMINI_API_KEY",
	},
}

// DefaultsFor returns the defaults registered for provider.
func DefaultsFor(provider string) (ProviderDefaults, error) {
	d, ok := providerDefaults[strings.ToLower(provider)]
	if !ok {
		return ProviderDefaults{}, fmt.Errorf("%w: %q (use groq, openai or gemini)", ErrUnknownProvider, provider)
	}
	return d, nil
}

// NewTextGenerationClient builds the client for provider. Empty baseURL and
// model fall back to the provider defaults.
func NewTextGenerationClient(ctx context.Context, provider, apiKey, baseURL, model string) (TextGenerationClientInterface, error) {
	defaults, err := DefaultsFor(provider)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w for provider %s", ErrMissingCredential, provider)
	}
	if baseURL == "" {
		baseURL = defaults.BaseURL
	}
	if model == "" {
		model = defaults.Model
	}

	switch strings.ToLower(provider) {
	case "groq", "openai":
		return NewOpenAICompatibleClient(apiKey, baseURL, model), nil
	case "gemini":
		return NewGeminiTextClient(ctx, apiKey, model)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, provider)
	}
}

// splitSystemPrompt separates the system instruction from the remaining turns.
func splitSystemPrompt(messages []ChatMessage) (string, []ChatMessage) {
	var system []string
	rest := make([]ChatMessage, 0, len(messages))
	for _, m := range messages {
		if m.Role == RoleSystem {
			system = append(system, m.Content)
			continue
		}
		rest = append(rest, m)
	}
	return strings.Join(system, "\n"), rest
}
