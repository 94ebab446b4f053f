package session

import (
	"errors"
	"testing"
	"time"

	"github.com/abhisek/quizdeck/internal/quiz"
)

func intPtr(n int) *int { return &n }

func testQuiz(durationMinutes *int) *quiz.Quiz {
	return &quiz.Quiz{
		ID:              "quiz-1",
		Title:           "Geography",
		DurationMinutes: durationMinutes,
		Questions: []quiz.Question{
			quiz.NewQuestion("q1", "Capital of Spain", quiz.SingleChoicePayload{Options: []quiz.Option{
				{ID: "1", Text: "Lisbon"}, {ID: "2", Text: "Madrid", IsCorrect: true},
			}}),
			quiz.NewQuestion("q2", "Type the capital of France", quiz.TextCompletionPayload{Answers: []quiz.ReferenceAnswer{
				{ID: "r", Value: "Paris"},
			}}),
			quiz.NewQuestion("q3", "Order", quiz.OrderingPayload{Items: []quiz.OrderableItem{
				{ID: "a", Text: "A", CorrectPosition: 0}, {ID: "b", Text: "B", CorrectPosition: 1},
			}}),
		},
	}
}

func startedState(t *testing.T, durationMinutes *int) *State {
	t.Helper()
	state := NewState("session-1", DefaultMaxAutoRetries)
	if err := Loaded(state, testQuiz(durationMinutes), time.Now()); err != nil {
		t.Fatalf("Loaded: %v", err)
	}
	return state
}

// fakeSubmitter counts remote calls and fails the first failures calls.
type fakeSubmitter struct {
	calls    int
	failures int
}

func (f *fakeSubmitter) submit() error {
	f.calls++
	if f.calls <= f.failures {
		return errors.New("network down")
	}
	return nil
}

// runSubmission drives the session the way the quiz screen does after
// BeginSubmit succeeded: call, then feed the outcome back, retrying while
// asked to.
func runSubmission(t *testing.T, state *State, f *fakeSubmitter) {
	t.Helper()
	for state.Status == StatusSubmitting {
		if err := f.submit(); err != nil {
			if SubmitFailed(state, err) {
				if rerr := Retry(state); rerr != nil {
					t.Fatalf("Retry: %v", rerr)
				}
			}
			continue
		}
		if err := SubmitSucceeded(state, quiz.SubmissionResult{Score: 80, Passed: true}); err != nil {
			t.Fatalf("SubmitSucceeded: %v", err)
		}
	}
}

func TestLoaded_SeedsTimer(t *testing.T) {
	state := startedState(t, intPtr(2))

	if state.Status != StatusInProgress {
		t.Errorf("Status = %v, want in_progress", state.Status)
	}
	if state.RemainingSeconds == nil || *state.RemainingSeconds != 120 {
		t.Errorf("RemainingSeconds = %v, want 120", state.RemainingSeconds)
	}
	if !state.TimerRunning() {
		t.Error("timer should be running")
	}
}

func TestLoaded_Untimed(t *testing.T) {
	state := startedState(t, nil)
	if state.RemainingSeconds != nil {
		t.Errorf("untimed quiz has RemainingSeconds = %d", *state.RemainingSeconds)
	}
	if Tick(state) {
		t.Error("untimed quiz should never expire")
	}
}

func TestLoadFailed(t *testing.T) {
	state := NewState("s", 0)
	LoadFailed(state, "quiz-1", errors.New("503"))

	if state.Status != StatusFailed {
		t.Errorf("Status = %v, want failed", state.Status)
	}
	var fe *FetchError
	if !errors.As(state.Err, &fe) || fe.QuizID != "quiz-1" {
		t.Errorf("Err = %v, want FetchError", state.Err)
	}
	if state.Message == "" {
		t.Error("expected a user-visible message")
	}
}

func TestLoaded_EmptyQuizFails(t *testing.T) {
	state := NewState("s", 0)
	err := Loaded(state, &quiz.Quiz{ID: "empty"}, time.Now())

	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want FetchError", err)
	}
	if state.Status != StatusFailed {
		t.Errorf("Status = %v", state.Status)
	}
}

func TestNavigate_Clamps(t *testing.T) {
	state := startedState(t, nil)

	tests := []struct {
		index int
		want  int
	}{
		{1, 1},
		{-4, 0},
		{99, 2},
		{2, 2},
	}
	for _, tt := range tests {
		if err := Navigate(state, tt.index); err != nil {
			t.Fatal(err)
		}
		if state.CurrentIndex != tt.want {
			t.Errorf("Navigate(%d) -> %d, want %d", tt.index, state.CurrentIndex, tt.want)
		}
	}
}

func TestRecord_Overwrites(t *testing.T) {
	state := startedState(t, nil)

	_ = Record(state, quiz.Response{QuestionID: "q1", Value: quiz.SingleValue{ID: "1"}})
	_ = Record(state, quiz.Response{QuestionID: "q1", Value: quiz.SingleValue{ID: "2"}})

	if len(state.Responses) != 1 {
		t.Fatalf("len(Responses) = %d, want 1", len(state.Responses))
	}
	if r, _ := state.Response("q1"); r.Value != (quiz.SingleValue{ID: "2"}) {
		t.Errorf("response = %#v", r.Value)
	}
}

func TestRecord_Rejects(t *testing.T) {
	state := startedState(t, nil)

	if err := Record(state, quiz.Response{QuestionID: "nope", Value: quiz.TextValue{Text: "x"}}); err == nil {
		t.Error("expected error for unknown question")
	}
	var shape *quiz.ShapeError
	if err := Record(state, quiz.Response{QuestionID: "q2", Value: quiz.SingleValue{ID: "1"}}); !errors.As(err, &shape) {
		t.Errorf("err = %v, want ShapeError", err)
	}
}

func TestTick_FloorsAtZero(t *testing.T) {
	state := startedState(t, nil)
	state.RemainingSeconds = intPtr(2)

	if Tick(state) {
		t.Error("expired after first tick")
	}
	if !Tick(state) {
		t.Error("expected expiry after second tick")
	}
	Tick(state)
	if *state.RemainingSeconds != 0 {
		t.Errorf("RemainingSeconds = %d, want 0", *state.RemainingSeconds)
	}
}

func TestManualSubmit_BlockedWhileUnanswered(t *testing.T) {
	state := startedState(t, nil)
	_ = Record(state, quiz.Response{QuestionID: "q1", Value: quiz.SingleValue{ID: "2"}})

	err := BeginSubmit(state, TriggerManual)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if len(verr.Unanswered) != 2 || verr.Unanswered[0] != "q2" {
		t.Errorf("Unanswered = %v", verr.Unanswered)
	}
	if state.Status != StatusInProgress || state.Submission.InFlight {
		t.Errorf("validation must not start a submission: %v inflight=%v", state.Status, state.Submission.InFlight)
	}
}

func TestManualSubmit_BlankResponseCountsAsUnanswered(t *testing.T) {
	state := startedState(t, nil)
	_ = Record(state, quiz.Response{QuestionID: "q1", Value: quiz.SingleValue{ID: "2"}})
	_ = Record(state, quiz.Response{QuestionID: "q2", Value: quiz.TextValue{}})
	_ = Record(state, quiz.Response{QuestionID: "q3", Value: quiz.SequenceValue{IDs: []string{"a", "b"}}})

	var verr *ValidationError
	if err := BeginSubmit(state, TriggerManual); !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

func TestManualSubmit_WhitespaceTextCountsAsUnanswered(t *testing.T) {
	state := startedState(t, nil)
	_ = Record(state, quiz.Response{QuestionID: "q1", Value: quiz.SingleValue{ID: "2"}})
	_ = Record(state, quiz.Response{QuestionID: "q2", Value: quiz.TextValue{Text: "   "}})
	_ = Record(state, quiz.Response{QuestionID: "q3", Value: quiz.SequenceValue{IDs: []string{"a", "b"}}})

	if n := AnsweredCount(state); n != 2 {
		t.Errorf("AnsweredCount = %d, want 2", n)
	}
	var verr *ValidationError
	if err := BeginSubmit(state, TriggerManual); !errors.As(err, &verr) || verr.Unanswered[0] != "q2" {
		t.Fatalf("err = %v, want q2 unanswered", err)
	}
}

func TestTimerInvariant_FiveTicks(t *testing.T) {
	state := startedState(t, nil)
	state.RemainingSeconds = intPtr(5)
	f := &fakeSubmitter{}

	for i := 0; i < 5; i++ {
		if Tick(state) {
			if err := BeginSubmit(state, TriggerTimer); err != nil {
				t.Fatalf("BeginSubmit: %v", err)
			}
			runSubmission(t, state, f)
		}
	}

	if f.calls != 1 {
		t.Errorf("submit calls = %d, want 1", f.calls)
	}
	if state.Status != StatusCompleted && state.Status != StatusFailed {
		t.Errorf("Status = %v, want completed or failed", state.Status)
	}
}

func TestTimerInvariant_FailuresEndInFailed(t *testing.T) {
	state := startedState(t, nil)
	state.RemainingSeconds = intPtr(1)
	f := &fakeSubmitter{failures: 100}

	if !Tick(state) {
		t.Fatal("expected expiry")
	}
	if err := BeginSubmit(state, TriggerTimer); err != nil {
		t.Fatal(err)
	}
	runSubmission(t, state, f)

	if state.Status != StatusFailed {
		t.Errorf("Status = %v, want failed", state.Status)
	}
	if f.calls != 1+DefaultMaxAutoRetries {
		t.Errorf("calls = %d, want %d", f.calls, 1+DefaultMaxAutoRetries)
	}
	if state.Submission.InFlight {
		t.Error("guard must be cleared once failed")
	}
	var serr *SubmissionError
	if !errors.As(state.Err, &serr) {
		t.Errorf("Err = %v, want SubmissionError", state.Err)
	}
}

func TestTimerRetry_RecoversBeforeLimit(t *testing.T) {
	state := startedState(t, nil)
	state.RemainingSeconds = intPtr(1)
	f := &fakeSubmitter{failures: 2}

	Tick(state)
	_ = BeginSubmit(state, TriggerTimer)
	runSubmission(t, state, f)

	if state.Status != StatusCompleted {
		t.Errorf("Status = %v, want completed", state.Status)
	}
	if state.Submission.Calls != 3 {
		t.Errorf("Calls = %d, want 3", state.Submission.Calls)
	}
}

func TestSubmissionIdempotency_SameTick(t *testing.T) {
	state := startedState(t, nil)
	state.RemainingSeconds = intPtr(1)
	for _, r := range []quiz.Response{
		{QuestionID: "q1", Value: quiz.SingleValue{ID: "2"}},
		{QuestionID: "q2", Value: quiz.TextValue{Text: "paris"}},
		{QuestionID: "q3", Value: quiz.SequenceValue{IDs: []string{"a", "b"}}},
	} {
		if err := Record(state, r); err != nil {
			t.Fatal(err)
		}
	}

	calls := 0
	if err := BeginSubmit(state, TriggerManual); err == nil {
		calls++
	}
	if Tick(state) {
		t.Error("tick after submission started must not report expiry")
	}
	if err := BeginSubmit(state, TriggerTimer); err == nil {
		calls++
	} else if !errors.Is(err, ErrSubmissionInFlight) {
		t.Errorf("second trigger err = %v, want ErrSubmissionInFlight", err)
	}

	if calls != 1 || state.Submission.Calls != 1 {
		t.Errorf("calls = %d (state %d), want 1", calls, state.Submission.Calls)
	}
}

func TestScenarioD_ForcedSubmitDespiteIncomplete(t *testing.T) {
	state := startedState(t, intPtr(1))
	_ = Record(state, quiz.Response{QuestionID: "q1", Value: quiz.SingleValue{ID: "2"}})
	_ = Record(state, quiz.Response{QuestionID: "q2", Value: quiz.TextValue{Text: "Paris"}})

	entered := 0
	for i := 0; i < 60; i++ {
		if Tick(state) {
			if err := BeginSubmit(state, TriggerTimer); err == nil {
				entered++
			}
		}
	}
	// Extra ticks after expiry must not start a second submission.
	for i := 0; i < 5; i++ {
		if Tick(state) {
			if err := BeginSubmit(state, TriggerTimer); err == nil {
				entered++
			}
		}
	}

	if entered != 1 {
		t.Errorf("entered Submitting %d times, want 1", entered)
	}
	if state.Status != StatusSubmitting {
		t.Errorf("Status = %v, want submitting", state.Status)
	}
	if got := len(ResponseList(state)); got != 2 {
		t.Errorf("responses sent = %d, want 2", got)
	}
}

func TestManualFailure_ReturnsToInProgress(t *testing.T) {
	state := startedState(t, intPtr(1))
	for _, id := range []string{"q1", "q2", "q3"} {
		q, _ := questionByID(state, id)
		var v quiz.Value
		switch q.Kind {
		case quiz.KindSingleChoice:
			v = quiz.SingleValue{ID: "1"}
		case quiz.KindTextCompletion:
			v = quiz.TextValue{Text: "x"}
		case quiz.KindOrdering:
			v = quiz.SequenceValue{IDs: []string{"b", "a"}}
		}
		_ = Record(state, quiz.Response{QuestionID: id, Value: v})
	}

	gen := state.TimerGeneration
	if err := BeginSubmit(state, TriggerManual); err != nil {
		t.Fatal(err)
	}
	if state.TimerGeneration == gen {
		t.Error("submission should stop the timer")
	}
	if SubmitFailed(state, errors.New("500")) {
		t.Error("manual failures are not retried automatically")
	}

	if state.Status != StatusInProgress || state.Submission.InFlight {
		t.Errorf("Status = %v inflight=%v", state.Status, state.Submission.InFlight)
	}
	if !state.TimerRunning() {
		t.Error("timer should resume")
	}
	if len(state.Responses) != 3 {
		t.Error("responses lost")
	}
	if err := BeginSubmit(state, TriggerManual); err != nil {
		t.Errorf("resubmitting after failure: %v", err)
	}
}

func TestResubmitFromFailed(t *testing.T) {
	state := NewState("s", 0)
	_ = Loaded(state, testQuiz(intPtr(1)), time.Now())
	state.RemainingSeconds = intPtr(1)
	Tick(state)
	_ = BeginSubmit(state, TriggerTimer)
	SubmitFailed(state, errors.New("down"))
	if state.Status != StatusFailed {
		t.Fatalf("Status = %v, want failed", state.Status)
	}

	if err := Resubmit(state); err != nil {
		t.Fatal(err)
	}
	if err := SubmitSucceeded(state, quiz.SubmissionResult{Score: 50}); err != nil {
		t.Fatal(err)
	}
	if state.Result == nil || state.Result.Score != 50 {
		t.Errorf("Result = %+v", state.Result)
	}
}

func TestTeardown(t *testing.T) {
	state := startedState(t, intPtr(1))
	gen := state.TimerGeneration
	Teardown(state)

	if state.TimerGeneration == gen || state.TimerRunning() {
		t.Error("teardown must cancel the timer")
	}
	if Tick(state) {
		t.Error("tick after teardown")
	}
	if err := BeginSubmit(state, TriggerTimer); !errors.Is(err, ErrClosed) {
		t.Errorf("BeginSubmit after teardown = %v", err)
	}
}

func TestBuildSummary(t *testing.T) {
	state := startedState(t, nil)
	_ = Record(state, quiz.Response{QuestionID: "q1", Value: quiz.SingleValue{ID: "2"}})

	s := BuildSummary(state, state.StartedAt.Add(90*time.Second))
	if s.QuizTitle != "Geography" || s.Total != 3 || s.Answered != 1 {
		t.Errorf("summary = %+v", s)
	}
	if s.Preview.CorrectCount != 1 {
		t.Errorf("Preview.CorrectCount = %d", s.Preview.CorrectCount)
	}
	if s.Duration != 90*time.Second {
		t.Errorf("Duration = %v", s.Duration)
	}
}
