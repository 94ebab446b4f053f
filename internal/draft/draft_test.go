package draft

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/quizdeck/internal/llm"
	"github.com/abhisek/quizdeck/internal/quiz"
)

func singleChoiceJSON() json.RawMessage {
	return json.RawMessage(`{
		"text": "Which gas do plants absorb for photosynthesis?",
		"payload": {"options": [
			{"id": "a", "text": "Oxygen"},
			{"id": "b", "text": "Carbon dioxide", "isCorrect": true},
			{"id": "c", "text": "Nitrogen"}
		]}
	}`)
}

func orderingJSON() json.RawMessage {
	return json.RawMessage(`{
		"text": "Order the planets by distance from the Sun",
		"payload": {"items": [
			{"id": "m", "text": "Mars", "correctPosition": 2},
			{"id": "v", "text": "Venus", "correctPosition": 0},
			{"id": "e", "text": "Earth", "correctPosition": 1}
		]}
	}`)
}

func fixedID(g *LLMGenerator) *LLMGenerator {
	g.newID = func() string { return "draft-1" }
	return g
}

func TestDraft_SingleChoice(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: singleChoiceJSON()})
	gen := fixedID(New(mock, DefaultConfig()))

	q, err := gen.Draft(context.Background(), Input{Kind: quiz.KindSingleChoice, Topic: "Photosynthesis"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.ID != "draft-1" {
		t.Errorf("expected generated id, got %q", q.ID)
	}
	if q.Kind != quiz.KindSingleChoice {
		t.Errorf("expected single_choice, got %q", q.Kind)
	}
	p, ok := q.Payload.(quiz.SingleChoicePayload)
	if !ok {
		t.Fatalf("unexpected payload type %T", q.Payload)
	}
	if len(p.Options) != 3 || !p.Options[1].IsCorrect {
		t.Errorf("unexpected options: %+v", p.Options)
	}
}

func TestDraft_Ordering(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: orderingJSON()})
	gen := New(mock, DefaultConfig())

	q, err := gen.Draft(context.Background(), Input{Kind: quiz.KindOrdering, Topic: "Solar system"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := q.Payload.(quiz.OrderingPayload); !ok {
		t.Fatalf("unexpected payload type %T", q.Payload)
	}
	if q.ID == "" {
		t.Error("expected a generated id")
	}
}

func TestDraft_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: singleChoiceJSON()})
	gen := New(mock, DefaultConfig())

	_, err := gen.Draft(context.Background(), Input{
		Kind:           quiz.KindSingleChoice,
		Topic:          "Photosynthesis",
		Audience:       "grade 7",
		Notes:          "avoid trick questions",
		PriorQuestions: []string{"What is chlorophyll?"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "quiz-question-single_choice" {
		t.Errorf("unexpected schema: %+v", req.Schema)
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"Topic: Photosynthesis", "Audience: grade 7", "- What is chlorophyll?", "avoid trick questions"} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q:\n%s", want, msg)
		}
	}
}

func TestDraft_UnsupportedKind(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := New(mock, DefaultConfig())

	_, err := gen.Draft(context.Background(), Input{Kind: "essay", Topic: "x"})
	if !errors.Is(err, quiz.ErrUnsupportedKind) {
		t.Fatalf("expected ErrUnsupportedKind, got %v", err)
	}
	if len(mock.Calls) != 0 {
		t.Error("provider must not be called for unsupported kinds")
	}
}

func TestDraft_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.Error{Code: llm.CodeRateLimited}})
	gen := New(mock, DefaultConfig())

	_, err := gen.Draft(context.Background(), Input{Kind: quiz.KindSingleChoice, Topic: "x"})
	if code, ok := llm.CodeOf(err); !ok || code != llm.CodeRateLimited {
		t.Fatalf("expected rate limit error, got %v", err)
	}
}

func TestDraft_InvalidAnswerKey(t *testing.T) {
	raw := json.RawMessage(`{
		"text": "Pick one",
		"payload": {"options": [
			{"id": "a", "text": "x", "isCorrect": true},
			{"id": "b", "text": "y", "isCorrect": true}
		]}
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw}, llm.MockResponse{Content: raw})
	gen := New(mock, DefaultConfig())

	_, err := gen.Draft(context.Background(), Input{Kind: quiz.KindSingleChoice, Topic: "x"})
	var rerr *RejectedError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected RejectedError, got %v", err)
	}
	if rerr.Check != "question" || rerr.Attempts != 2 {
		t.Errorf("unexpected rejection: %+v", rerr)
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected a redraft, got %d calls", mock.CallCount())
	}
}

func TestDraft_RedraftAfterRejection(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: singleChoiceJSON()},
		llm.MockResponse{Content: orderingJSON()},
	)
	gen := New(mock, DefaultConfig())

	// The first reply repeats a prior question; the second is of the
	// not a usable single choice question.
	_, err := gen.Draft(context.Background(), Input{
		Kind:           quiz.KindSingleChoice,
		Topic:          "x",
		PriorQuestions: []string{"Which gas do plants absorb for photosynthesis?"},
	})
	if err == nil {
		t.Fatal("expected the second draft to fail")
	}

	if len(mock.Calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(mock.Calls))
	}
	retry := mock.Calls[1].Messages
	if len(retry) != 3 || retry[1].Role != llm.RoleAssistant {
		t.Fatalf("unexpected redraft messages: %+v", retry)
	}
	if !strings.Contains(retry[2].Content, "question already in the quiz") {
		t.Errorf("redraft should carry the reason, got %q", retry[2].Content)
	}
}

func TestDraft_RedraftSucceeds(t *testing.T) {
	second := json.RawMessage(`{
		"text": "Which organelle holds chlorophyll?",
		"payload": {"options": [
			{"id": "a", "text": "Nucleus"},
			{"id": "b", "text": "Chloroplast", "isCorrect": true}
		]}
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: singleChoiceJSON()}, llm.MockResponse{Content: second})
	gen := New(mock, DefaultConfig())

	q, err := gen.Draft(context.Background(), Input{
		Kind:           quiz.KindSingleChoice,
		Topic:          "x",
		PriorQuestions: []string{"Which gas do plants absorb for photosynthesis?"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Text != "Which organelle holds chlorophyll?" {
		t.Errorf("got %q", q.Text)
	}
}

func TestDraft_Duplicate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Attempts = 1
	mock := llm.NewMockProvider(llm.MockResponse{Content: singleChoiceJSON()})
	gen := New(mock, cfg)

	_, err := gen.Draft(context.Background(), Input{
		Kind:           quiz.KindSingleChoice,
		Topic:          "x",
		PriorQuestions: []string{"  which gas do plants absorb for photosynthesis?"},
	})
	var rerr *RejectedError
	if !errors.As(err, &rerr) || rerr.Check != "duplicate" {
		t.Fatalf("expected duplicate rejection, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected one call, got %d", mock.CallCount())
	}
}

func TestDraft_MalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"text":`)})
	gen := New(mock, DefaultConfig())

	if _, err := gen.Draft(context.Background(), Input{Kind: quiz.KindSingleChoice, Topic: "x"}); err == nil {
		t.Fatal("expected parse error")
	}
	if mock.CallCount() != 1 {
		t.Error("unparseable replies are not redrafted")
	}
}

func TestRejectUnfit(t *testing.T) {
	in := Input{Kind: quiz.KindSingleChoice}

	long := quiz.NewQuestion("a", strings.Repeat("x", 501), quiz.SingleChoicePayload{})
	if rejectUnfit(long, in) == "" {
		t.Error("expected long text to fail")
	}

	var opts []quiz.Option
	for i := range 9 {
		opts = append(opts, quiz.Option{ID: string(rune('a' + i)), Text: "o"})
	}
	wide := quiz.NewQuestion("a", "Pick", quiz.SingleChoicePayload{Options: opts})
	if got := rejectUnfit(wide, in); !strings.Contains(got, "9 elements") {
		t.Errorf("expected too many options to fail, got %q", got)
	}

	wrongKind := quiz.NewQuestion("a", "Order", quiz.OrderingPayload{})
	if rejectUnfit(wrongKind, in) == "" {
		t.Error("expected kind mismatch to fail")
	}

	ok := quiz.NewQuestion("a", "Pick", quiz.SingleChoicePayload{Options: opts[:3]})
	if got := rejectUnfit(ok, in); got != "" {
		t.Errorf("unexpected rejection %q", got)
	}
}

func TestAvoidList(t *testing.T) {
	tests := []struct {
		name  string
		prior []string
		limit int
		want  string
	}{
		{"empty", nil, 5, "(none yet)"},
		{"blank only", []string{"  ", ""}, 5, "(none yet)"},
		{"keeps the latest", []string{"a", "b", "c"}, 2, "- b\n- c"},
		{"no limit", []string{"a", "b"}, 0, "- a\n- b"},
		{"drops repeats", []string{"Capital of France?", "Longest river?", "  capital of france? "}, 5, "- Longest river?\n- capital of france?"},
		{"collapses whitespace", []string{"Which   ocean\nis largest?"}, 5, "- Which ocean is largest?"},
		{"cuts long prompts", []string{strings.Repeat("x", 200)}, 5, "- " + strings.Repeat("x", 159) + "…"},
	}
	for _, tt := range tests {
		if got := avoidList(tt.prior, tt.limit); got != tt.want {
			t.Errorf("%s: avoidList() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestSchemaFor(t *testing.T) {
	for _, k := range quiz.Kinds() {
		if SchemaFor(k) == nil {
			t.Errorf("expected schema for %s", k)
		}
	}
	if SchemaFor("essay") != nil {
		t.Error("expected nil schema for unsupported kind")
	}
}
