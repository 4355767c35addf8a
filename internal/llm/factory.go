package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/catprep/internal/store"
)

// NewProvider builds the planning provider stack from configuration:
// caller → retry → model fallback → logging → base.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	if cfg.Provider == "mock" {
		return NewMockProvider(), nil
	}

	primary, err := newBase(ctx, cfg, cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}
	primary = WithLogging(primary, eventRepo)

	var fallback Provider
	if cfg.FallbackModel != "" && cfg.FallbackModel != cfg.Model {
		fb, err := newBase(ctx, cfg, cfg.FallbackModel)
		if err != nil {
			return nil, fmt.Errorf("initializing %s fallback model: %w", cfg.Provider, err)
		}
		fallback = WithLogging(fb, eventRepo)
	}

	return WithRetry(WithModelFallback(primary, fallback), cfg.Retry), nil
}

func newBase(ctx context.Context, cfg Config, model string) (Provider, error) {
	switch cfg.Provider {
	case "anthropic":
		return NewAnthropicProvider(cfg.APIKey, model)
	case "openai":
		return NewOpenAIProvider(cfg.APIKey, model, cfg.BaseURL)
	case "gemini":
		return NewGeminiProvider(ctx, cfg.APIKey, model)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
}
