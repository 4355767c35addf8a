package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds LLM boundary configuration. The planner consumes a
// primary/fallback model pair plus timeout and retry parameters; any
// provider capable of constrained JSON generation can satisfy it.
type Config struct {
	// Provider selects the backend: "anthropic", "openai", "gemini", "mock".
	Provider string

	// Model is the primary model identifier (friendly name or raw ID).
	Model string

	// FallbackModel, when set, is tried after the primary model's retries
	// are exhausted on a transient failure.
	FallbackModel string

	// APIKey authenticates against the selected provider.
	APIKey string

	// BaseURL overrides the provider endpoint (OpenAI-compatible APIs).
	BaseURL string

	Retry RetryConfig

	// Timeout is the hard wall-clock bound on a single planning call,
	// retries included. The planner must never block its caller longer.
	Timeout time.Duration
}

// RetryConfig bounds retries of transient failures. Planning permits at
// most one retry, so retries never compound latency beyond roughly twice
// the single-call timeout.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns planning defaults: a 15s timeout and a single retry.
func DefaultConfig() Config {
	return Config{
		Provider: "anthropic",
		Model:    "claude-haiku",
		Retry: RetryConfig{
			MaxAttempts: 2,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     2 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 15 * time.Second,
	}
}

// ConfigFromEnv builds a Config from CATPREP_* environment variables,
// falling back to defaults for unset values.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("CATPREP_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}
	if m := os.Getenv("CATPREP_LLM_MODEL"); m != "" {
		cfg.Model = m
	}
	if m := os.Getenv("CATPREP_LLM_FALLBACK_MODEL"); m != "" {
		cfg.FallbackModel = m
	}
	if k := os.Getenv("CATPREP_LLM_API_KEY"); k != "" {
		cfg.APIKey = k
	}
	if u := os.Getenv("CATPREP_LLM_BASE_URL"); u != "" {
		cfg.BaseURL = u
	}
	if d := os.Getenv("CATPREP_LLM_TIMEOUT"); d != "" {
		if parsed, err := time.ParseDuration(d); err == nil && parsed > 0 {
			cfg.Timeout = parsed
		}
	}

	return cfg
}

// Validate checks that the selected provider has its required key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic", "openai", "gemini":
		if c.APIKey == "" {
			return fmt.Errorf("CATPREP_LLM_API_KEY is required for the %s provider", c.Provider)
		}
	case "mock":
		// No key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
