package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Shubham07badgujar/AI-Wellness-Assistant/pkg/config"
)

// Provider represents the LLM provider type
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOpenAI Provider = "openai"
	ProviderClaude Provider = "claude"
)

var keyEnv = map[Provider]string{
	ProviderGemini: "GEMINI_API_KEY",
	ProviderOpenAI: "OPENAI_API_KEY",
	ProviderClaude: "ANTHROPIC_API_KEY",
}

// Factory creates LLM instances based on provider
type Factory struct{}

// NewFactory creates a new LLM factory
func NewFactory() *Factory {
	return &Factory{}
}

// Create builds the client cfg describes. An empty provider is an error;
// callers that treat the model as optional check cfg.Provider first.
func (f *Factory) Create(ctx context.Context, cfg config.LLMConfig) (LLM, error) {
	provider := Provider(strings.ToLower(cfg.Provider))
	if _, ok := keyEnv[provider]; !ok {
		return nil, fmt.Errorf("unsupported LLM provider: %q (supported: gemini, openai, claude)", cfg.Provider)
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s: %w (set %s)", provider, ErrNoAPIKey, keyEnv[provider])
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	switch provider {
	case ProviderGemini:
		g, err := newGemini(ctx, cfg.APIKey, cfg.Model, cfg.BaseURL, timeout)
		if err != nil {
			return nil, err
		}
		return g, nil

	case ProviderOpenAI:
		model := cfg.Model
		if model == "" {
			model = DefaultOpenAIModel
		}
		return newOpenAI(cfg.APIKey, model, cfg.BaseURL, timeout), nil

	case ProviderClaude:
		c := NewClaude(cfg.APIKey)
		if cfg.Model != "" {
			c.model = cfg.Model
		}
		if cfg.BaseURL != "" {
			c.baseURL = strings.TrimRight(cfg.BaseURL, "/")
		}
		c.client.Timeout = timeout
		return c, nil

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %q (supported: gemini, openai, claude)", cfg.Provider)
	}
}

// GetAvailableProviders returns a list of available LLM providers
func (f *Factory) GetAvailableProviders() []Provider {
	return []Provider{ProviderGemini, ProviderOpenAI, ProviderClaude}
}

// CreateFromEnv resolves the provider from the environment the same way
// config.Load does, then applies the overrides.
func CreateFromEnv(ctx context.Context, providerOverride, modelOverride string) (LLM, error) {
	cfg := config.Default()
	cfg.ApplyEnv()
	if providerOverride != "" {
		p := Provider(strings.ToLower(providerOverride))
		cfg.LLM.Provider = string(p)
		cfg.LLM.APIKey = os.Getenv(keyEnv[p])
	}
	if modelOverride != "" {
		cfg.LLM.Model = modelOverride
	}
	if cfg.LLM.Provider == "" {
		return nil, fmt.Errorf("no LLM provider configured: %w (set GEMINI_API_KEY, OPENAI_API_KEY or ANTHROPIC_API_KEY)", ErrNoAPIKey)
	}
	return NewFactory().Create(ctx, cfg.LLM)
}
