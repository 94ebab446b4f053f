package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProvider(t *testing.T) {
	boom := errors.New("boom")
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"n":1}`), Usage: Usage{InputTokens: 3, OutputTokens: 2}},
		MockResponse{Err: boom},
	)
	mock.AddResponse(MockResponse{Content: json.RawMessage(`{"n":3}`)})
	assert.Equal(t, "mock", mock.ModelID())

	ctx := context.Background()
	resp, err := mock.Generate(ctx, Request{System: "first"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":1}`, string(resp.Content))
	assert.Equal(t, 5, resp.Usage.Total())
	assert.Equal(t, StopEnd, resp.StopReason)

	_, err = mock.Generate(ctx, Request{System: "second"})
	assert.ErrorIs(t, err, boom)

	resp, err = mock.Generate(ctx, Request{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"n":3}`, string(resp.Content))

	_, err = mock.Generate(ctx, Request{})
	code, _ := CodeOf(err)
	assert.Equal(t, CodeUnavailable, code)

	assert.Equal(t, 4, mock.CallCount())
	assert.Equal(t, "second", mock.Calls[1].System)
}

func TestContextLabels(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "unknown", PurposeFrom(ctx))
	assert.Empty(t, QuizFrom(ctx))

	ctx = WithQuiz(WithPurpose(ctx, "question-draft"), "q-7")
	assert.Equal(t, "question-draft", PurposeFrom(ctx))
	assert.Equal(t, "q-7", QuizFrom(ctx))
}

func TestErrorClassification(t *testing.T) {
	cause := errors.New("raw")
	tests := []struct {
		status    int
		code      Code
		retryable bool
	}{
		{0, CodeUnavailable, true},
		{http.StatusTooManyRequests, CodeRateLimited, true},
		{http.StatusUnauthorized, CodeAuth, false},
		{http.StatusForbidden, CodeAuth, false},
		{http.StatusServiceUnavailable, CodeUnavailable, true},
	}
	for _, tt := range tests {
		err := fromStatus(tt.status, cause)
		var e *Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, tt.code, e.Code, "status %d", tt.status)
		assert.Equal(t, tt.retryable, e.Retryable(), "status %d", tt.status)
		assert.ErrorIs(t, err, cause)
	}

	_, ok := CodeOf(errors.New("plain"))
	assert.False(t, ok)

	wrapped := errors.Join(errors.New("ctx"), &Error{Code: CodeTruncated})
	code, ok := CodeOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, CodeTruncated, code)
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "llm rate limited (retry after 2s): slow",
		(&Error{Code: CodeRateLimited, RetryAfter: 2 * time.Second, Err: errors.New("slow")}).Error())
	assert.Equal(t, "llm response truncated: max tokens reached", (&Error{Code: CodeTruncated}).Error())
	assert.Equal(t, "llm unavailable", (&Error{Code: CodeUnavailable}).Error())
	assert.Equal(t, "llm auth: denied", (&Error{Code: CodeAuth, Err: errors.New("denied")}).Error())
}

func TestPriceOf(t *testing.T) {
	p, ok := PriceOf("gpt-4.1-mini")
	require.True(t, ok)
	assert.InDelta(t, 0.4*2+1.6*0.5, p.Cost(Usage{InputTokens: 2_000_000, OutputTokens: 500_000}), 1e-9)

	p, ok = PriceOf("google/gemini-2.5-flash")
	require.True(t, ok, "vendor prefix is stripped")
	assert.Equal(t, Price{Input: 0.3, Output: 2.5}, p)

	_, ok = PriceOf("acme/unknown")
	assert.False(t, ok)
}
