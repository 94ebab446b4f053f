package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/config"
	"github.com/abhisek/quizdeck/internal/draft"
	"github.com/abhisek/quizdeck/internal/llm"
	"github.com/abhisek/quizdeck/internal/logging"
	"github.com/abhisek/quizdeck/internal/remote"
	"github.com/abhisek/quizdeck/internal/screens/home"
	"github.com/abhisek/quizdeck/internal/store"
	"github.com/abhisek/quizdeck/internal/ui/widgets"
)

// textLimit caps typed answers.
const textLimit = 500

// env is everything a command needs, built from config and flags.
type env struct {
	cfg    config.Config
	logger *slog.Logger
	store  *store.Store

	// service is nil when no API URL is configured.
	service remote.Service

	// provider and drafter are nil when no LLM is configured.
	provider llm.Provider
	drafter  draft.Generator

	closers []func() error
}

type envOptions struct {
	requireAPI bool
	withLLM    bool
}

// loadEnv resolves configuration, flags, logging, the journal and the
// platform client.
func loadEnv(cmd *cobra.Command, opts envOptions) (*env, error) {
	files, _ := cmd.Flags().GetStringSlice("env")
	cfg, err := config.Load(files...)
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, &cfg)

	e := &env{cfg: cfg}

	logger, closeLog, err := logging.Setup(logging.Options{
		Path:   cfg.LogPath,
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("setup logging: %w", err)
	}
	e.logger = logger
	e.closers = append(e.closers, closeLog)

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	e.store = st
	e.closers = append(e.closers, st.Close)

	if cfg.APIBaseURL != "" || opts.requireAPI {
		if err := cfg.Validate(); err != nil {
			e.Close()
			return nil, err
		}
		client, err := remote.New(remote.Config{
			BaseURL:      cfg.APIBaseURL,
			Token:        cfg.Token,
			TokenURL:     cfg.TokenURL,
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Timeout:      cfg.RequestTimeout,
			Logger:       logger,
		})
		if err != nil {
			e.Close()
			return nil, err
		}
		e.service = client
	}

	if opts.withLLM {
		provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
		switch {
		case errors.Is(err, llm.ErrNotConfigured):
			logger.Info("LLM drafting disabled", "reason", err)
		case err != nil:
			logger.Warn("LLM provider unavailable", "error", err)
		default:
			e.provider = provider
			e.drafter = draft.New(provider, draft.DefaultConfig())
		}
	}

	logger.Debug("environment ready",
		"db", dbPath,
		"api", cfg.APIBaseURL != "",
		"llm", e.provider != nil)
	return e, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if v, _ := flags.GetString("api"); v != "" {
		cfg.APIBaseURL = v
	}
	if v, _ := flags.GetString("token"); v != "" {
		cfg.Token = v
	}
	if v, _ := flags.GetString("log"); v != "" {
		cfg.LogPath = v
	}
	if v, _ := flags.GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
}

// Close releases the store and log file in reverse order.
func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		_ = e.closers[i]()
	}
	e.closers = nil
}

func (e *env) homeDeps() home.Deps {
	return home.Deps{
		Service:        e.service,
		Journal:        e.store.JournalRepo(),
		Drafter:        e.drafter,
		Factory:        widgets.Factory{TextLimit: textLimit},
		MaxAutoRetries: e.cfg.MaxAutoRetries,
		RetryBackoff:   e.cfg.RetryBackoff,
		Logger:         e.logger,
	}
}

// openStore opens the journal alone, for commands that never touch the
// platform.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	files, _ := cmd.Flags().GetStringSlice("env")
	cfg, err := config.Load(files...)
	if err != nil {
		return nil, err
	}
	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
