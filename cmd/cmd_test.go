package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/store"
)

// seededDB writes a journal with two sessions and three LLM events.
func seededDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cmd.db")
	s, err := store.Open(path)
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	for _, e := range []store.LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku-4-5-20251001", Purpose: "question-draft", QuizID: "geo-1", InputTokens: 900, OutputTokens: 300, LatencyMs: 1200, Success: true},
		{Provider: "anthropic", Model: "claude-haiku-4-5-20251001", Purpose: "question-draft", QuizID: "geo-1", LatencyMs: 80, ErrorMessage: "llm rate_limited"},
		{Provider: "openai", Model: "acme-unpriced", Purpose: "connectivity-check", InputTokens: 12, OutputTokens: 2, LatencyMs: 300, Success: true},
	} {
		require.NoError(t, s.EventRepo().AppendLLMRequest(ctx, e))
	}

	repo := s.JournalRepo()
	require.NoError(t, repo.StartSession(ctx, store.SessionRecord{ID: "sess-done", QuizID: "geo-1", QuizTitle: "Capitals", Status: store.SessionInProgress, Total: 5}))
	require.NoError(t, repo.FinishSession(ctx, "sess-done", store.SessionOutcome{
		Status: store.SessionCompleted, Answered: 5, Total: 5, Result: &quiz.SubmissionResult{Score: 80, Passed: true},
	}))
	require.NoError(t, repo.StartSession(ctx, store.SessionRecord{ID: "sess-pending", QuizID: "geo-2", Status: store.SessionInProgress, Total: 3}))
	require.NoError(t, repo.SavePending(ctx, store.PendingSubmission{SessionID: "sess-pending", QuizID: "geo-2"}))
	return path
}

// run executes the root command and returns its plain-text output. Every
// flag the tests touch is passed explicitly since cobra keeps flag values
// between runs.
func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.ExecuteContext(context.Background()), out.String())
	return ansi.Strip(out.String())
}

func TestLLMList(t *testing.T) {
	db := seededDB(t)

	out := run(t, "llm", "list", "--db", db, "--purpose=", "--quiz=", "--failed=false")
	assert.Contains(t, out, "connectivity-check")
	assert.Contains(t, out, "question-draft")
	assert.Contains(t, out, "1.2s")

	out = run(t, "llm", "list", "--db", db, "--purpose=", "--quiz=geo-1", "--failed=true")
	assert.Contains(t, out, "✗")
	assert.NotContains(t, out, "✓")
	assert.NotContains(t, out, "connectivity-check")

	out = run(t, "llm", "list", "--db", db, "--purpose=nothing", "--quiz=", "--failed=false")
	assert.Contains(t, out, "No LLM events found.")
}

func TestLLMStats(t *testing.T) {
	out := run(t, "llm", "stats", "--db", seededDB(t))
	assert.Contains(t, out, "question-draft")
	assert.Contains(t, out, "total (partial)")
	assert.Contains(t, out, "No price known for: acme-unpriced")
}

func TestLLMView(t *testing.T) {
	db := seededDB(t)
	out := run(t, "llm", "view", "2", "--db", db)
	assert.Contains(t, out, "geo-1")
	assert.Contains(t, out, "llm rate_limited")
	assert.Contains(t, out, "(not captured)")

	rootCmd.SetArgs([]string{"llm", "view", "99", "--db", db})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	assert.ErrorContains(t, rootCmd.Execute(), "event 99 not found")
}

func TestHistoryList(t *testing.T) {
	out := run(t, "history", "--db", seededDB(t))
	assert.Contains(t, out, "Capitals")
	assert.Contains(t, out, "geo-2", "untitled sessions show the quiz id")
	assert.Contains(t, out, "80")
	assert.Contains(t, out, "quizdeck resubmit")
}

func TestClip(t *testing.T) {
	assert.Equal(t, "short", clip("short", 10))
	assert.Equal(t, "abcd…", clip("abcdefgh", 5))
}

func TestVersionString(t *testing.T) {
	platform := runtime.GOOS + "/" + runtime.GOARCH

	assert.Equal(t, "quizdeck (devel) "+platform, versionString(nil))

	info := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.modified", Value: "true"},
		},
	}
	assert.Equal(t, "quizdeck v0.3.0 (0123456789ab+dirty) "+platform, versionString(info))

	version = "v9.9.9"
	t.Cleanup(func() { version = "" })
	assert.Equal(t, "quizdeck v9.9.9 "+platform, versionString(&debug.BuildInfo{}))
}
