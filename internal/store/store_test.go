package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/quizdeck/ent"
	"github.com/abhisek/quizdeck/ent/migrate"
	"github.com/abhisek/quizdeck/internal/quiz"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range migrate.Tables {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table.Name,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table.Name, err)
		}
	}
}

func TestSequenceSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seq.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	for want := int64(1); want <= 3; want++ {
		got, err := s.seq.Next(ctx)
		if err != nil || got != want {
			t.Fatalf("Next() = %d, %v; want %d", got, err, want)
		}
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	if got, err := s.seq.Next(ctx); err != nil || got != 4 {
		t.Errorf("after reopen Next() = %d, %v; want 4", got, err)
	}

	other, err := newSequence(ctx, s.client, "other")
	if err != nil {
		t.Fatalf("new sequence: %v", err)
	}
	if got, _ := other.Next(ctx); got != 1 {
		t.Errorf("independent sequence started at %d", got)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.JournalRepo().StartSession(ctx, SessionRecord{ID: "s1", QuizID: "q1"}); err != nil {
		t.Fatalf("start session: %v", err)
	}
	s.Close()

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	if _, err := s.JournalRepo().GetSession(ctx, "s1"); err != nil {
		t.Fatalf("get session after reopen: %v", err)
	}
}

func TestJournalAndLLMEventsShareSequence(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.JournalRepo().AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: ActionStart}); err != nil {
		t.Fatalf("append session event: %v", err)
	}
	if err := s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{Provider: "mock", Purpose: "check"}); err != nil {
		t.Fatalf("append llm event: %v", err)
	}
	if err := s.JournalRepo().AppendSessionEvent(ctx, SessionEventData{SessionID: "s1", Action: ActionAbandoned}); err != nil {
		t.Fatalf("append session event: %v", err)
	}

	events, err := s.JournalRepo().SessionEvents(ctx, "s1")
	if err != nil {
		t.Fatalf("session events: %v", err)
	}
	llmEvents, err := s.EventRepo().QueryLLMEvents(ctx, QueryOpts{}, LLMFilter{})
	if err != nil {
		t.Fatalf("llm events: %v", err)
	}
	if len(events) != 2 || len(llmEvents) != 1 {
		t.Fatalf("got %d session and %d llm events", len(events), len(llmEvents))
	}
	got := []int64{events[0].Sequence, llmEvents[0].Sequence, events[1].Sequence}
	for i, want := range []int64{1, 2, 3} {
		if got[i] != want {
			t.Errorf("sequence %d = %d, want %d", i, got[i], want)
		}
	}
}

func TestResolvePath(t *testing.T) {
	dir := t.TempDir()
	flag := filepath.Join(dir, "flag", "q.db")
	env := filepath.Join(dir, "env", "q.db")

	got, err := ResolvePath(flag, env)
	if err != nil || got != flag {
		t.Fatalf("ResolvePath(flag, env) = %q, %v", got, err)
	}
	if _, err := os.Stat(filepath.Dir(flag)); err != nil {
		t.Errorf("parent dir not created: %v", err)
	}

	got, _ = ResolvePath("", env)
	if got != env {
		t.Errorf("ResolvePath(\"\", env) = %q", got)
	}

	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "xdg"))
	got, _ = ResolvePath("", "")
	if want := filepath.Join(dir, "xdg", "quizdeck", "quizdeck.db"); got != want {
		t.Errorf("ResolvePath() = %q, want %q", got, want)
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.JournalRepo()
	ctx := context.Background()

	started := time.Now().UTC().Truncate(time.Second)
	err := repo.StartSession(ctx, SessionRecord{
		ID:        "s1",
		QuizID:    "q1",
		QuizTitle: "Capitals",
		Total:     4,
		StartedAt: started,
	})
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	rec, err := repo.GetSession(ctx, "s1")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if rec.Status != SessionInProgress {
		t.Errorf("status = %q, want %q", rec.Status, SessionInProgress)
	}
	if rec.Score != nil || rec.EndedAt != nil {
		t.Error("expected no score or end time before finishing")
	}

	err = repo.FinishSession(ctx, "s1", SessionOutcome{
		Status:   SessionCompleted,
		Trigger:  "manual",
		Answered: 3,
		Total:    4,
		Result:   &quiz.SubmissionResult{Score: 75, Passed: true},
		EndedAt:  started.Add(2 * time.Minute),
	})
	if err != nil {
		t.Fatalf("finish session: %v", err)
	}

	rec, err = repo.GetSession(ctx, "s1")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if rec.Status != SessionCompleted || rec.Trigger != "manual" {
		t.Errorf("status/trigger = %q/%q", rec.Status, rec.Trigger)
	}
	if rec.Answered != 3 {
		t.Errorf("answered = %d, want 3", rec.Answered)
	}
	if rec.Score == nil || *rec.Score != 75 {
		t.Errorf("score = %v, want 75", rec.Score)
	}
	if rec.Passed == nil || !*rec.Passed {
		t.Errorf("passed = %v, want true", rec.Passed)
	}
	if rec.EndedAt == nil || !rec.EndedAt.Equal(started.Add(2*time.Minute)) {
		t.Errorf("ended_at = %v", rec.EndedAt)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.JournalRepo().GetSession(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListSessionsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.JournalRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i, id := range []string{"a", "b", "c"} {
		err := repo.StartSession(ctx, SessionRecord{
			ID:        id,
			QuizID:    "q",
			StartedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("start %s: %v", id, err)
		}
	}

	sessions, err := repo.ListSessions(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("len = %d, want 2", len(sessions))
	}
	if sessions[0].ID != "c" || sessions[1].ID != "b" {
		t.Errorf("order = %s,%s, want c,b", sessions[0].ID, sessions[1].ID)
	}
}

func TestSessionEventsInSequenceOrder(t *testing.T) {
	s := openTestStore(t)
	repo := s.JournalRepo()
	ctx := context.Background()

	events := []SessionEventData{
		{SessionID: "s1", Action: ActionStart},
		{SessionID: "s2", Action: ActionStart},
		{SessionID: "s1", Action: ActionResponse, QuestionID: "q1"},
		{SessionID: "s1", Action: ActionSubmitAttempt, Detail: "timer"},
	}
	for _, e := range events {
		if err := repo.AppendSessionEvent(ctx, e); err != nil {
			t.Fatalf("append %s: %v", e.Action, err)
		}
	}

	got, err := repo.SessionEvents(ctx, "s1")
	if err != nil {
		t.Fatalf("session events: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	wantActions := []string{ActionStart, ActionResponse, ActionSubmitAttempt}
	for i, e := range got {
		if e.Action != wantActions[i] {
			t.Errorf("event %d action = %q, want %q", i, e.Action, wantActions[i])
		}
		if i > 0 && e.Sequence <= got[i-1].Sequence {
			t.Errorf("sequence not increasing at %d", i)
		}
	}
	if got[1].QuestionID != "q1" || got[2].Detail != "timer" {
		t.Errorf("unexpected event payloads: %+v", got)
	}
}

func TestPendingSubmissionRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.JournalRepo()
	ctx := context.Background()

	p := PendingSubmission{
		SessionID: "s1",
		QuizID:    "q1",
		Responses: []quiz.Response{
			{QuestionID: "a", Value: quiz.SingleValue{ID: "2"}},
			{QuestionID: "b", Value: quiz.TextValue{Text: "Paris"}},
			{QuestionID: "c", Value: quiz.SequenceValue{IDs: []string{"2", "1"}}},
			{QuestionID: "d", Value: quiz.MappingValue{Placements: map[string]string{"7": "t1"}}},
		},
		Kinds: map[string]quiz.Kind{
			"a": quiz.KindSingleChoice,
			"b": quiz.KindTextCompletion,
			"c": quiz.KindOrdering,
			"d": quiz.KindAssociation,
		},
		Attempts:  4,
		LastError: "503 Service Unavailable",
	}
	if err := repo.SavePending(ctx, p); err != nil {
		t.Fatalf("save pending: %v", err)
	}

	got, err := repo.Pending(ctx, "s1")
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if got.QuizID != "q1" || got.Attempts != 4 || got.LastError != p.LastError {
		t.Errorf("unexpected pending: %+v", got)
	}
	if len(got.Responses) != 4 {
		t.Fatalf("responses = %d, want 4", len(got.Responses))
	}
	if v, ok := got.Responses[3].Value.(quiz.MappingValue); !ok || v.Placements["7"] != "t1" {
		t.Errorf("mapping response = %#v", got.Responses[3].Value)
	}
	if v, ok := got.Responses[2].Value.(quiz.SequenceValue); !ok || v.IDs[0] != "2" {
		t.Errorf("sequence response = %#v", got.Responses[2].Value)
	}
}

func TestSavePendingUpserts(t *testing.T) {
	s := openTestStore(t)
	repo := s.JournalRepo()
	ctx := context.Background()

	p := PendingSubmission{
		SessionID: "s1",
		QuizID:    "q1",
		Responses: []quiz.Response{{QuestionID: "a", Value: quiz.SingleValue{ID: "1"}}},
		Kinds:     map[string]quiz.Kind{"a": quiz.KindSingleChoice},
		Attempts:  1,
	}
	if err := repo.SavePending(ctx, p); err != nil {
		t.Fatalf("save pending: %v", err)
	}
	p.Attempts = 2
	p.LastError = "timeout"
	if err := repo.SavePending(ctx, p); err != nil {
		t.Fatalf("save pending again: %v", err)
	}

	all, err := repo.ListPending(ctx)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("len = %d, want 1", len(all))
	}
	if all[0].Attempts != 2 || all[0].LastError != "timeout" {
		t.Errorf("unexpected pending after upsert: %+v", all[0])
	}
}

func TestSavePendingRequiresKinds(t *testing.T) {
	s := openTestStore(t)
	err := s.JournalRepo().SavePending(context.Background(), PendingSubmission{
		SessionID: "s1",
		QuizID:    "q1",
		Responses: []quiz.Response{{QuestionID: "a", Value: quiz.SingleValue{ID: "1"}}},
	})
	if err == nil {
		t.Fatal("expected error for response without kind")
	}
}

func TestResolvePending(t *testing.T) {
	s := openTestStore(t)
	repo := s.JournalRepo()
	ctx := context.Background()

	err := repo.SavePending(ctx, PendingSubmission{SessionID: "s1", QuizID: "q1"})
	if err != nil {
		t.Fatalf("save pending: %v", err)
	}
	if err := repo.ResolvePending(ctx, "s1"); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if _, err := repo.Pending(ctx, "s1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "m1", Purpose: "question-draft", QuizID: "q-1", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true},
		{Provider: "anthropic", Model: "m1", Purpose: "question-draft", InputTokens: 300, OutputTokens: 150, LatencyMs: 400, Success: true},
		{Provider: "openai", Model: "m2", Purpose: "check", InputTokens: 10, OutputTokens: 0, LatencyMs: 50, Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	recent, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2}, LLMFilter{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("len = %d, want 2", len(recent))
	}
	if recent[0].Purpose != "check" || recent[0].Success {
		t.Errorf("newest event = %+v", recent[0])
	}

	filters := []struct {
		filter LLMFilter
		want   int
	}{
		{LLMFilter{Purpose: "question-draft"}, 2},
		{LLMFilter{QuizID: "q-1"}, 1},
		{LLMFilter{FailedOnly: true}, 1},
		{LLMFilter{Purpose: "check", FailedOnly: true}, 1},
		{LLMFilter{Purpose: "question-draft", FailedOnly: true}, 0},
	}
	for _, f := range filters {
		got, err := repo.QueryLLMEvents(ctx, QueryOpts{}, f.filter)
		if err != nil {
			t.Fatalf("query %+v: %v", f.filter, err)
		}
		if len(got) != f.want {
			t.Errorf("filter %+v matched %d, want %d", f.filter, len(got), f.want)
		}
	}

	one, err := repo.GetLLMEvent(ctx, recent[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if one == nil || one.ErrorMessage != "rate limited" || one.QuizID != "" {
		t.Errorf("get = %+v", one)
	}
	missing, err := repo.GetLLMEvent(ctx, 999)
	if err != nil || missing != nil {
		t.Errorf("missing event = %v, %v", missing, err)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	draft := byPurpose[1]
	if draft.Purpose != "question-draft" || draft.Calls != 2 || draft.InputTokens != 400 || draft.AvgLatencyMs != 300 {
		t.Errorf("draft usage = %+v", draft)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 || byModel[0].Model != "m1" || byModel[0].OutputTokens != 200 {
		t.Errorf("model usage = %+v", byModel)
	}
}

func TestGeneratedValidatorsRejectEmptyKeys(t *testing.T) {
	s := openTestStore(t)
	repo := s.JournalRepo()
	ctx := context.Background()

	err := repo.StartSession(ctx, SessionRecord{ID: "s1"})
	if !ent.IsValidationError(err) {
		t.Errorf("start without quiz id: err = %v, want validation error", err)
	}
	err = repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "s1"})
	if !ent.IsValidationError(err) {
		t.Errorf("event without action: err = %v, want validation error", err)
	}
	if _, err := repo.GetSession(ctx, "s1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("rejected session was stored: %v", err)
	}
}
