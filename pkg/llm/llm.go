package llm

import (
	"context"
	"errors"
)

// LLM sends a single prompt to a hosted model and returns its text reply.
type LLM interface {
	Chat(ctx context.Context, prompt string) (string, error)
	Model() string
	Provider() Provider
}

// ErrNoAPIKey is returned when a provider is selected without credentials.
var ErrNoAPIKey = errors.New("LLM API key is required")

const (
	defaultMaxTokens   = 1024
	defaultTemperature = 0.7
)
