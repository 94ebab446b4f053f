package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"QUIZDECK_API_URL", "QUIZDECK_API_TOKEN", "QUIZDECK_TOKEN_URL",
		"QUIZDECK_CLIENT_ID", "QUIZDECK_CLIENT_SECRET", "QUIZDECK_DB",
		"QUIZDECK_LOG", "QUIZDECK_LOG_LEVEL", "QUIZDECK_LOG_FORMAT",
		"QUIZDECK_TIMEOUT", "QUIZDECK_MAX_RETRIES", "QUIZDECK_RETRY_BACKOFF",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 3, cfg.MaxAutoRetries)
}

func TestFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("QUIZDECK_API_URL", "https://lms.example.com/api")
	t.Setenv("QUIZDECK_API_TOKEN", "secret")
	t.Setenv("QUIZDECK_TIMEOUT", "5s")
	t.Setenv("QUIZDECK_MAX_RETRIES", "1")
	t.Setenv("QUIZDECK_RETRY_BACKOFF", "250ms")
	t.Setenv("QUIZDECK_LOG_LEVEL", "debug")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "https://lms.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, "secret", cfg.Token)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 1, cfg.MaxAutoRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.RetryBackoff)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestFromEnvRejectsBadNumbers(t *testing.T) {
	clearEnv(t)
	t.Setenv("QUIZDECK_MAX_RETRIES", "many")

	_, err := FromEnv()
	assert.ErrorContains(t, err, "QUIZDECK_MAX_RETRIES")
}

func TestLoadReadsDotEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("QUIZDECK_API_URL=http://localhost:8080\nQUIZDECK_DB=/tmp/q.db\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("QUIZDECK_API_URL")
		os.Unsetenv("QUIZDECK_DB")
	})

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/q.db", cfg.DBPath)
}

func TestLoadEnvironmentWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("QUIZDECK_API_URL", "https://from-env.example.com")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("QUIZDECK_API_URL=http://from-file\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://from-env.example.com", cfg.APIBaseURL)
}

func TestLoadMissingFileIsFine(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}

func TestValidate(t *testing.T) {
	base := Default()
	base.APIBaseURL = "https://lms.example.com"

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"ok", func(*Config) {}, ""},
		{"missing url", func(c *Config) { c.APIBaseURL = "" }, "is required"},
		{"bad scheme", func(c *Config) { c.APIBaseURL = "ftp://x" }, "invalid API URL"},
		{"client credentials incomplete", func(c *Config) { c.TokenURL = "https://auth/token" }, "QUIZDECK_CLIENT_ID"},
		{"negative retries", func(c *Config) { c.MaxAutoRetries = -1 }, "must not be negative"},
		{"zero timeout", func(c *Config) { c.RequestTimeout = 0 }, "must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
