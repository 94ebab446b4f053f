package llm

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/abhisek/quizdeck/internal/store"
)

// ErrNotConfigured means neither QUIZDECK_LLM_PROVIDER nor any vendor
// API key variable is set.
var ErrNotConfigured = errors.New("no LLM provider configured")

// NewProvider builds the provider cfg selects. Calls flow
// timeout -> retry -> journal -> provider, so each attempt is journaled
// and the timeout covers all of them. A nil events repo skips the journal.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo) (Provider, error) {
	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("%s provider: %w", cfg.Provider, err)
	}

	if events != nil {
		base = WithLogging(base, cfg.Provider, events)
	}
	return WithTimeout(WithRetry(base, cfg.Retry), cfg.Timeout), nil
}

// NewProviderFromEnv uses QUIZDECK_LLM_PROVIDER when set and otherwise
// falls back to DiscoverConfig.
func NewProviderFromEnv(ctx context.Context, events store.EventRepo) (Provider, error) {
	cfg, ok := ConfigFromEnv(), true
	if os.Getenv(envPrefix+"LLM_PROVIDER") == "" {
		cfg, ok = DiscoverConfig()
	}
	if !ok {
		return nil, ErrNotConfigured
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, events)
}
