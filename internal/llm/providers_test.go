package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func answerSchema() *Schema {
	return &Schema{
		Name: "test-answer",
		Definition: map[string]any{
			"type":                 "object",
			"properties":           map[string]any{"answer": map[string]any{"type": "string"}},
			"required":             []any{"answer"},
			"additionalProperties": false,
		},
	}
}

func draftRequest(schema *Schema) Request {
	return Request{
		System:    "You write quiz questions.",
		Messages:  []Message{{Role: RoleUser, Content: "Draft one."}},
		Schema:    schema,
		MaxTokens: 256,
	}
}

// fakeAPI serves a fixed status and JSON body. The returned func yields
// the last request body.
func fakeAPI(t *testing.T, status int, header http.Header, body any) (*httptest.Server, func() []byte) {
	t.Helper()
	var (
		mu  sync.Mutex
		got []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		got = b
		mu.Unlock()
		for k, v := range header {
			w.Header()[k] = v
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)
	return srv, func() []byte {
		mu.Lock()
		defer mu.Unlock()
		return got
	}
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_1",
		"type":        "message",
		"role":        "assistant",
		"model":       "claude-haiku-4-5-20251001",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 40, "output_tokens": 12},
	}
}

func newAnthropicAt(t *testing.T, url string) *AnthropicProvider {
	t.Helper()
	p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "k", Model: "claude-haiku"}, option.WithBaseURL(url))
	require.NoError(t, err)
	return p
}

func TestAnthropicProvider_StructuredOutput(t *testing.T) {
	srv, body := fakeAPI(t, http.StatusOK, nil, anthropicMessage(`{"answer":"Madrid"}`, "end_turn"))
	p := newAnthropicAt(t, srv.URL)

	resp, err := p.Generate(context.Background(), draftRequest(answerSchema()))
	require.NoError(t, err)
	assert.JSONEq(t, `{"answer":"Madrid"}`, string(resp.Content))
	assert.Equal(t, Usage{InputTokens: 40, OutputTokens: 12}, resp.Usage)
	assert.Equal(t, StopEnd, resp.StopReason)
	assert.Equal(t, "claude-haiku-4-5-20251001", resp.Model)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(body(), &sent))
	assert.Equal(t, "claude-haiku-4-5-20251001", sent["model"])
	assert.Contains(t, sent, "output_config")
}

func TestAnthropicProvider_ReplyFailures(t *testing.T) {
	tests := []struct {
		name string
		text string
		stop string
		want Code
	}{
		{"schema mismatch", `{"answer":1}`, "end_turn", CodeInvalidOutput},
		{"not json", `Madrid`, "end_turn", CodeInvalidOutput},
		{"truncated", `{"answ`, "max_tokens", CodeTruncated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := fakeAPI(t, http.StatusOK, nil, anthropicMessage(tt.text, tt.stop))
			_, err := newAnthropicAt(t, srv.URL).Generate(context.Background(), draftRequest(answerSchema()))
			code, ok := CodeOf(err)
			require.True(t, ok, "got %v", err)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestAnthropicProvider_StatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   Code
	}{
		{http.StatusTooManyRequests, CodeRateLimited},
		{http.StatusUnauthorized, CodeAuth},
		{http.StatusInternalServerError, CodeUnavailable},
		{529, CodeUnavailable},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			header := http.Header{"Retry-After": {"7"}}
			srv, _ := fakeAPI(t, tt.status, header, map[string]any{
				"type":  "error",
				"error": map[string]any{"type": "api_error", "message": "nope"},
			})
			_, err := newAnthropicAt(t, srv.URL).Generate(context.Background(), draftRequest(nil))

			var e *Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, tt.want, e.Code)
			if tt.want == CodeRateLimited {
				assert.Equal(t, 7*time.Second, e.RetryAfter)
			}
		})
	}
}

func openAICompletion(content, finish string) map[string]any {
	return map[string]any{
		"id":     "cmpl-1",
		"object": "chat.completion",
		"model":  "gpt-4.1-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 30, "completion_tokens": 9, "total_tokens": 39},
	}
}

func TestOpenAIProvider_StructuredOutput(t *testing.T) {
	srv, body := fakeAPI(t, http.StatusOK, nil, openAICompletion(`{"answer":"Paris"}`, "stop"))
	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k", Model: "gpt-mini", BaseURL: srv.URL + "/v1"})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4.1-mini", p.ModelID())

	resp, err := p.Generate(context.Background(), draftRequest(answerSchema()))
	require.NoError(t, err)
	assert.JSONEq(t, `{"answer":"Paris"}`, string(resp.Content))
	assert.Equal(t, 39, resp.Usage.Total())

	var sent struct {
		Messages []struct {
			Role string `json:"role"`
		} `json:"messages"`
		ResponseFormat struct {
			Type       string `json:"type"`
			JSONSchema struct {
				Name string `json:"name"`
			} `json:"json_schema"`
		} `json:"response_format"`
	}
	require.NoError(t, json.Unmarshal(body(), &sent))
	require.Len(t, sent.Messages, 2)
	assert.Equal(t, "system", sent.Messages[0].Role)
	assert.Equal(t, "json_schema", sent.ResponseFormat.Type)
	assert.Equal(t, "test-answer", sent.ResponseFormat.JSONSchema.Name)
}

func TestOpenAIProvider_LengthIsTruncation(t *testing.T) {
	srv, _ := fakeAPI(t, http.StatusOK, nil, openAICompletion(`{"ans`, "length"))
	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k", BaseURL: srv.URL + "/v1"})
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), draftRequest(answerSchema()))
	code, _ := CodeOf(err)
	assert.Equal(t, CodeTruncated, code)
}

func TestOpenAIProvider_StatusMapping(t *testing.T) {
	for status, want := range map[int]Code{
		http.StatusTooManyRequests: CodeRateLimited,
		http.StatusForbidden:       CodeAuth,
		http.StatusBadGateway:      CodeUnavailable,
	} {
		srv, _ := fakeAPI(t, status, nil, map[string]any{
			"error": map[string]any{"message": "nope", "type": "server_error"},
		})
		p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "k", BaseURL: srv.URL + "/v1"})
		require.NoError(t, err)

		_, err = p.Generate(context.Background(), draftRequest(nil))
		code, ok := CodeOf(err)
		require.True(t, ok, "status %d: %v", status, err)
		assert.Equal(t, want, code, "status %d", status)
	}
}

func TestOpenRouterProvider(t *testing.T) {
	_, err := NewOpenRouterProvider(OpenRouterConfig{})
	assert.Error(t, err)

	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "k", Model: "google/gemini-2.5-flash"})
	require.NoError(t, err)
	assert.Equal(t, "google/gemini-2.5-flash", p.ModelID())

	srv, _ := fakeAPI(t, http.StatusOK, nil, openAICompletion("ready", "stop"))
	p, err = NewOpenRouterProvider(OpenRouterConfig{APIKey: "k", Model: "x/y", BaseURL: srv.URL})
	require.NoError(t, err)
	resp, err := p.Generate(context.Background(), draftRequest(nil))
	require.NoError(t, err)
	assert.Equal(t, "ready", string(resp.Content))
}

func TestGeminiProvider(t *testing.T) {
	srv, body := fakeAPI(t, http.StatusOK, nil, map[string]any{
		"candidates": []map[string]any{{
			"content":      map[string]any{"role": "model", "parts": []map[string]any{{"text": `{"answer":"Rome"}`}}},
			"finishReason": "STOP",
		}},
		"usageMetadata": map[string]any{"promptTokenCount": 11, "candidatesTokenCount": 4, "totalTokenCount": 15},
		"modelVersion":  "gemini-2.5-flash",
	})
	p, err := NewGeminiProvider(context.Background(), GeminiConfig{APIKey: "k", Model: "gemini-flash", BaseURL: srv.URL})
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-flash", p.ModelID())

	resp, err := p.Generate(context.Background(), draftRequest(answerSchema()))
	require.NoError(t, err)
	assert.JSONEq(t, `{"answer":"Rome"}`, string(resp.Content))
	assert.Equal(t, Usage{InputTokens: 11, OutputTokens: 4}, resp.Usage)

	assert.Contains(t, string(body()), "responseJsonSchema")
}

func TestGeminiProvider_RateLimit(t *testing.T) {
	srv, _ := fakeAPI(t, http.StatusTooManyRequests, nil, map[string]any{
		"error": map[string]any{"code": 429, "message": "quota", "status": "RESOURCE_EXHAUSTED"},
	})
	p, err := NewGeminiProvider(context.Background(), GeminiConfig{APIKey: "k", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), draftRequest(nil))
	code, _ := CodeOf(err)
	assert.Equal(t, CodeRateLimited, code)
}

func TestModelAliases(t *testing.T) {
	assert.Equal(t, "claude-sonnet-4-5-20250929", resolveModel("claude-sonnet", anthropicModels))
	assert.Equal(t, "gemini-2.5-pro", resolveModel("gemini-pro", geminiModels))
	assert.Equal(t, "gpt-4.1", resolveModel("gpt", openaiModels))
	assert.Equal(t, "my-finetune", resolveModel("my-finetune", openaiModels))

	for _, aliases := range []map[string]string{anthropicModels, openaiModels, geminiModels} {
		for alias, id := range aliases {
			_, ok := PriceOf(id)
			assert.True(t, ok, "alias %s resolves to unpriced %s", alias, id)
		}
	}
}
