package llm

import (
	"testing"
	"time"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("CATPREP_LLM_PROVIDER", "openai")
	t.Setenv("CATPREP_LLM_MODEL", "gpt-4o-mini")
	t.Setenv("CATPREP_LLM_FALLBACK_MODEL", "gpt-4o")
	t.Setenv("CATPREP_LLM_API_KEY", "sk-test")
	t.Setenv("CATPREP_LLM_TIMEOUT", "20s")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("model = %q", cfg.Model)
	}
	if cfg.FallbackModel != "gpt-4o" {
		t.Errorf("fallback model = %q", cfg.FallbackModel)
	}
	if cfg.Timeout != 20*time.Second {
		t.Errorf("timeout = %v", cfg.Timeout)
	}
	if cfg.Retry.MaxAttempts != 2 {
		t.Errorf("retry attempts = %d, want the default 2", cfg.Retry.MaxAttempts)
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("CATPREP_LLM_PROVIDER", "")
	t.Setenv("CATPREP_LLM_MODEL", "")
	t.Setenv("CATPREP_LLM_TIMEOUT", "not-a-duration")

	cfg := ConfigFromEnv()
	def := DefaultConfig()
	if cfg.Provider != def.Provider {
		t.Errorf("provider = %q, want default %q", cfg.Provider, def.Provider)
	}
	if cfg.Timeout != def.Timeout {
		t.Errorf("unparseable timeout should keep the default, got %v", cfg.Timeout)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("expected error: anthropic without an API key")
	}

	cfg.APIKey = "key"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg.Provider = "mock"
	cfg.APIKey = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("mock provider needs no key: %v", err)
	}

	cfg.Provider = "carrier-pigeon"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}
}
