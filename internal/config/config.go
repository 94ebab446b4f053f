// Package config resolves quizdeck settings from an optional .env file and
// QUIZDECK_* environment variables. Command-line flags are applied on top
// by the cmd package.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/abhisek/quizdeck/internal/session"
)

// Defaults.
const (
	DefaultRequestTimeout = 15 * time.Second
	DefaultRetryBackoff   = 2 * time.Second
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
)

// Config holds every runtime setting.
type Config struct {
	// APIBaseURL is the root of the assessment platform API.
	APIBaseURL string

	// Token is a static bearer token. When TokenURL is set the client
	// credentials flow is used instead.
	Token        string
	TokenURL     string
	ClientID     string
	ClientSecret string

	RequestTimeout time.Duration

	// DBPath is empty to use store.ResolvePath.
	DBPath string

	// LogPath is empty to discard logs; the terminal belongs to the TUI.
	LogPath   string
	LogLevel  string
	LogFormat string

	// MaxAutoRetries bounds automatic resubmissions after the timer forces
	// a submission that fails.
	MaxAutoRetries int
	RetryBackoff   time.Duration
}

// Default returns a Config with no platform configured.
func Default() Config {
	return Config{
		RequestTimeout: DefaultRequestTimeout,
		LogLevel:       DefaultLogLevel,
		LogFormat:      DefaultLogFormat,
		MaxAutoRetries: session.DefaultMaxAutoRetries,
		RetryBackoff:   DefaultRetryBackoff,
	}
}

// Load reads the given .env files (".env" when none are given) into the
// process environment, then builds a Config from it. Missing files are not
// an error; variables already set in the environment win over the files.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from QUIZDECK_* environment variables.
func FromEnv() (Config, error) {
	cfg := Default()

	cfg.APIBaseURL = os.Getenv("QUIZDECK_API_URL")
	cfg.Token = os.Getenv("QUIZDECK_API_TOKEN")
	cfg.TokenURL = os.Getenv("QUIZDECK_TOKEN_URL")
	cfg.ClientID = os.Getenv("QUIZDECK_CLIENT_ID")
	cfg.ClientSecret = os.Getenv("QUIZDECK_CLIENT_SECRET")
	cfg.DBPath = os.Getenv("QUIZDECK_DB")
	cfg.LogPath = os.Getenv("QUIZDECK_LOG")
	if v := os.Getenv("QUIZDECK_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("QUIZDECK_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}

	if v := os.Getenv("QUIZDECK_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("QUIZDECK_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = d
	}
	if v := os.Getenv("QUIZDECK_MAX_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("QUIZDECK_MAX_RETRIES: %w", err)
		}
		cfg.MaxAutoRetries = n
	}
	if v := os.Getenv("QUIZDECK_RETRY_BACKOFF"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("QUIZDECK_RETRY_BACKOFF: %w", err)
		}
		cfg.RetryBackoff = d
	}

	return cfg, nil
}

// Validate checks the settings needed to talk to the platform.
func (c Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("QUIZDECK_API_URL (or --api) is required")
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid API URL %q", c.APIBaseURL)
	}
	if c.TokenURL != "" && (c.ClientID == "" || c.ClientSecret == "") {
		return fmt.Errorf("QUIZDECK_CLIENT_ID and QUIZDECK_CLIENT_SECRET are required with QUIZDECK_TOKEN_URL")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.MaxAutoRetries < 0 {
		return fmt.Errorf("max retries must not be negative, got %d", c.MaxAutoRetries)
	}
	if c.RetryBackoff < 0 {
		return fmt.Errorf("retry backoff must not be negative, got %s", c.RetryBackoff)
	}
	return nil
}
