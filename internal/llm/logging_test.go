package llm

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/abhisek/quizdeck/internal/store"
)

func TestLoggingProvider_RecordsEvents(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "llm.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()

	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"text":"ok"}`), Usage: Usage{InputTokens: 12, OutputTokens: 7}},
		MockResponse{Err: errors.New("boom")},
	)
	p := WithLogging(mock, "mock", st.EventRepo())

	ctx := WithQuiz(WithPurpose(context.Background(), "question-draft"), "q-9")
	req := Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
		Schema:   &Schema{Name: "s", Definition: map[string]any{"type": "object"}},
	}
	if _, err := p.Generate(ctx, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.Generate(ctx, req); err == nil {
		t.Fatal("expected error from second call")
	}

	events, err := st.EventRepo().QueryLLMEvents(ctx, store.QueryOpts{}, store.LLMFilter{})
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	var ok, failed *store.LLMRequestEventRecord
	for i := range events {
		if events[i].Success {
			ok = &events[i]
		} else {
			failed = &events[i]
		}
	}
	if ok == nil || failed == nil {
		t.Fatalf("expected one success and one failure: %+v", events)
	}
	if ok.Provider != "mock" || ok.Purpose != "question-draft" || ok.QuizID != "q-9" {
		t.Errorf("unexpected event: %+v", ok.LLMRequestEventData)
	}
	if ok.InputTokens != 12 || ok.OutputTokens != 7 {
		t.Errorf("unexpected tokens: in=%d out=%d", ok.InputTokens, ok.OutputTokens)
	}
	for _, want := range []string{"[system]\nsys", "[user]\nhello", "[schema: s]"} {
		if !strings.Contains(ok.RequestBody, want) {
			t.Errorf("request body missing %q: %q", want, ok.RequestBody)
		}
	}
	if ok.ResponseBody != `{"text":"ok"}` {
		t.Errorf("unexpected response body: %q", ok.ResponseBody)
	}
	if failed.ErrorMessage != "boom" {
		t.Errorf("expected error message boom, got %q", failed.ErrorMessage)
	}
}

func TestLoggingProvider_KeepsRejectedOutput(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "llm.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()

	bad := &Error{Code: CodeInvalidOutput, Content: json.RawMessage(`{"nope":1}`), Err: errors.New("schema")}
	p := WithLogging(NewMockProvider(MockResponse{Err: bad}), "mock", st.EventRepo())

	// A cancelled caller must still leave a journal entry.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected error")
	}

	events, err := st.EventRepo().QueryLLMEvents(context.Background(), store.QueryOpts{}, store.LLMFilter{})
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].ResponseBody != `{"nope":1}` || events[0].Purpose != "unknown" {
		t.Errorf("unexpected event: %+v", events[0].LLMRequestEventData)
	}
}
