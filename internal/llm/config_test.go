package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("QUIZDECK_LLM_PROVIDER", "openrouter")
	t.Setenv("QUIZDECK_OPENROUTER_API_KEY", "or-key")
	t.Setenv("QUIZDECK_OPENROUTER_MODEL", "meta/llama")
	t.Setenv("QUIZDECK_LLM_TIMEOUT", "45s")

	cfg := ConfigFromEnv()
	if cfg.Provider != "openrouter" {
		t.Errorf("expected openrouter, got %q", cfg.Provider)
	}
	if cfg.OpenRouter.APIKey != "or-key" || cfg.OpenRouter.Model != "meta/llama" {
		t.Errorf("unexpected openrouter config: %+v", cfg.OpenRouter)
	}
	if cfg.Timeout != 45*time.Second {
		t.Errorf("expected 45s timeout, got %s", cfg.Timeout)
	}
	if cfg.Anthropic.Model != "claude-haiku" {
		t.Errorf("expected default anthropic model, got %q", cfg.Anthropic.Model)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestDiscoverConfig(t *testing.T) {
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected nothing discovered")
	}

	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("OPENAI_API_KEY", "o-key")
	cfg, ok := DiscoverConfig()
	if !ok || cfg.Provider != ProviderOpenAI || cfg.OpenAI.APIKey != "o-key" {
		t.Fatalf("expected openai to win over gemini, got %q ok=%v", cfg.Provider, ok)
	}
	if cfg.Gemini.APIKey != "" {
		t.Error("only the chosen provider's key is copied")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: ProviderAnthropic}, true},
		{"anthropic with key", Config{Provider: ProviderAnthropic, Anthropic: AnthropicConfig{APIKey: "k"}}, false},
		{"openrouter with key", Config{Provider: ProviderOpenRouter, OpenRouter: OpenRouterConfig{APIKey: "k"}}, false},
		{"mock needs no key", Config{Provider: ProviderMock}, false},
		{"unknown provider", Config{Provider: "acme"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateNamesVariable(t *testing.T) {
	err := Config{Provider: "gemini"}.Validate()
	if err == nil || !strings.Contains(err.Error(), "QUIZDECK_GEMINI_API_KEY") {
		t.Fatalf("expected error naming QUIZDECK_GEMINI_API_KEY, got %v", err)
	}
}

func TestNewProviderFromEnv(t *testing.T) {
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY", "QUIZDECK_LLM_PROVIDER"} {
		t.Setenv(k, "")
	}

	if _, err := NewProviderFromEnv(context.Background(), nil); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}

	t.Setenv("QUIZDECK_LLM_PROVIDER", "mock")
	p, err := NewProviderFromEnv(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() == "" {
		t.Error("expected a model id")
	}
}
