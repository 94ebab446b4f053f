package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config selects and configures one provider.
type Config struct {
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds one Generate call including its retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig is exponential backoff with jitter.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns the defaults every other constructor starts from.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderAnthropic,
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.5-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 45 * time.Second,
	}
}

const envPrefix = "QUIZDECK_"

// settings returns pointers to the key, model and base URL fields of a
// provider. base is nil for providers without an endpoint override.
func (c *Config) settings(provider string) (key, model, base *string, ok bool) {
	switch provider {
	case ProviderAnthropic:
		return &c.Anthropic.APIKey, &c.Anthropic.Model, nil, true
	case ProviderOpenAI:
		return &c.OpenAI.APIKey, &c.OpenAI.Model, &c.OpenAI.BaseURL, true
	case ProviderGemini:
		return &c.Gemini.APIKey, &c.Gemini.Model, &c.Gemini.BaseURL, true
	case ProviderOpenRouter:
		return &c.OpenRouter.APIKey, &c.OpenRouter.Model, &c.OpenRouter.BaseURL, true
	}
	return nil, nil, nil, false
}

// keyed lists the providers that take an API key, in discovery order.
var keyed = []string{ProviderAnthropic, ProviderOpenAI, ProviderGemini, ProviderOpenRouter}

// ConfigFromEnv reads QUIZDECK_LLM_PROVIDER and, for every provider,
// QUIZDECK_<NAME>_API_KEY, _MODEL and _BASE_URL. QUIZDECK_LLM_TIMEOUT
// takes a Go duration.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	setFromEnv(&cfg.Provider, envPrefix+"LLM_PROVIDER")

	for _, name := range keyed {
		key, model, base, _ := cfg.settings(name)
		prefix := envPrefix + strings.ToUpper(name) + "_"
		setFromEnv(key, prefix+"API_KEY")
		setFromEnv(model, prefix+"MODEL")
		if base != nil {
			setFromEnv(base, prefix+"BASE_URL")
		}
	}

	if v := os.Getenv(envPrefix + "LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	return cfg
}

func setFromEnv(dst *string, name string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}

// DiscoverConfig picks the first provider whose vendor-standard key
// variable (ANTHROPIC_API_KEY and so on) is set.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	for _, name := range keyed {
		v := os.Getenv(strings.ToUpper(name) + "_API_KEY")
		if v == "" {
			continue
		}
		key, _, _, _ := cfg.settings(name)
		*key = v
		cfg.Provider = name
		return cfg, true
	}
	return Config{}, false
}

// Validate checks that the selected provider exists and has a key.
func (c Config) Validate() error {
	if c.Provider == ProviderMock {
		return nil
	}
	key, _, _, ok := c.settings(c.Provider)
	if !ok {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if *key == "" {
		return fmt.Errorf("%s%s_API_KEY is required for the %s provider", envPrefix, strings.ToUpper(c.Provider), c.Provider)
	}
	return nil
}
