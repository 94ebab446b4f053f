package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// instantRetry returns a RetryProvider that records waits instead of sleeping.
func instantRetry(p Provider, attempts int) (*RetryProvider, *[]time.Duration) {
	r := WithRetry(p, RetryConfig{
		MaxAttempts: attempts,
		InitialWait: 100 * time.Millisecond,
		MaxWait:     time.Second,
		Multiplier:  2,
	})
	var waits []time.Duration
	r.sleep = func(ctx context.Context, d time.Duration) error {
		waits = append(waits, d)
		return ctx.Err()
	}
	return r, &waits
}

var okReply = MockResponse{Content: json.RawMessage(`{"ok":true}`)}

func TestRetry(t *testing.T) {
	unavailable := &Error{Code: CodeUnavailable, Err: errors.New("down")}
	invalid := &Error{Code: CodeInvalidOutput, Err: errors.New("bad")}

	tests := []struct {
		name      string
		script    []MockResponse
		wantCalls int
		wantErr   Code
	}{
		{"first attempt", []MockResponse{okReply}, 1, -1},
		{"transient then success", []MockResponse{{Err: unavailable}, okReply}, 2, -1},
		{"all attempts fail", []MockResponse{{Err: unavailable}, {Err: unavailable}, {Err: unavailable}}, 3, CodeUnavailable},
		{"auth is final", []MockResponse{{Err: &Error{Code: CodeAuth}}, okReply}, 1, CodeAuth},
		{"truncation is final", []MockResponse{{Err: &Error{Code: CodeTruncated}}, okReply}, 1, CodeTruncated},
		{"invalid output retried once", []MockResponse{{Err: invalid}, {Err: invalid}, okReply}, 2, CodeInvalidOutput},
		{"invalid output then success", []MockResponse{{Err: invalid}, okReply}, 2, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.script...)
			r, _ := instantRetry(mock, 3)

			resp, err := r.Generate(context.Background(), Request{})
			assert.Equal(t, tt.wantCalls, mock.CallCount())
			if tt.wantErr < 0 {
				require.NoError(t, err)
				assert.JSONEq(t, `{"ok":true}`, string(resp.Content))
				return
			}
			code, isLLM := CodeOf(err)
			require.True(t, isLLM, "got %v", err)
			assert.Equal(t, tt.wantErr, code)
		})
	}
}

func TestRetry_BackoffGrowsAndCaps(t *testing.T) {
	down := MockResponse{Err: &Error{Code: CodeUnavailable}}
	r, waits := instantRetry(NewMockProvider(down, down, down, down, down), 5)
	r.config.MaxWait = 300 * time.Millisecond

	_, err := r.Generate(context.Background(), Request{})
	require.Error(t, err)
	require.Len(t, *waits, 4)

	// 100ms, 200ms, then capped at 300ms; each within 20% jitter.
	for i, base := range []time.Duration{100, 200, 300, 300} {
		base *= time.Millisecond
		assert.InDelta(t, float64(base), float64((*waits)[i]), float64(base)*0.2+1, "wait %d", i)
	}
}

func TestRetry_HonoursRetryAfter(t *testing.T) {
	limited := MockResponse{Err: &Error{Code: CodeRateLimited, RetryAfter: 3 * time.Second}}
	r, waits := instantRetry(NewMockProvider(limited, okReply), 3)

	_, err := r.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{3 * time.Second}, *waits)
}

func TestRetry_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := NewMockProvider(MockResponse{Err: context.Canceled}, okReply)
	r, waits := instantRetry(mock, 3)

	_, err := r.Generate(ctx, Request{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, mock.CallCount())
	assert.Empty(t, *waits)
}

func TestRetry_SleepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := NewMockProvider(MockResponse{Err: &Error{Code: CodeUnavailable}}, okReply)
	r, _ := instantRetry(mock, 3)

	_, err := r.Generate(ctx, Request{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, mock.CallCount())
}

type slowProvider struct{}

func (slowProvider) ModelID() string { return "slow" }
func (slowProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestWithTimeout(t *testing.T) {
	p := WithTimeout(slowProvider{}, 10*time.Millisecond)
	assert.Equal(t, "slow", p.ModelID())

	_, err := p.Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	assert.Equal(t, Provider(slowProvider{}), WithTimeout(slowProvider{}, 0))
}
