package exam

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screens/summary"
	"github.com/abhisek/quizdeck/internal/session"
	"github.com/abhisek/quizdeck/internal/store"
	"github.com/abhisek/quizdeck/internal/ui/widgets"
)

// fakeService implements remote.QuizService for testing.
type fakeService struct {
	mu       sync.Mutex
	quiz     *quiz.Quiz
	fetchErr error
	block    bool // FetchQuiz waits for ctx cancellation

	submitErrs []error // consumed one per call; nil entries succeed
	result     quiz.SubmissionResult
	submits    int
	lastSubmit []quiz.Response
}

func (f *fakeService) FetchQuiz(ctx context.Context, _ string) (*quiz.Quiz, error) {
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.quiz, f.fetchErr
}

func (f *fakeService) SubmitResponses(_ context.Context, _ string, responses []quiz.Response) (quiz.SubmissionResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submits++
	f.lastSubmit = responses
	if len(f.submitErrs) > 0 {
		err := f.submitErrs[0]
		f.submitErrs = f.submitErrs[1:]
		if err != nil {
			return quiz.SubmissionResult{}, err
		}
	}
	return f.result, nil
}

func intPtr(n int) *int { return &n }

func testQuiz(duration *int) *quiz.Quiz {
	return &quiz.Quiz{
		ID:              "quiz-1",
		Title:           "Geography",
		DurationMinutes: duration,
		Questions: []quiz.Question{
			quiz.NewQuestion("q1", "Capital of Spain", quiz.SingleChoicePayload{Options: []quiz.Option{
				{ID: "1", Text: "Lisbon"}, {ID: "2", Text: "Madrid", IsCorrect: true},
			}}),
			quiz.NewQuestion("q2", "Type the capital of France", quiz.TextCompletionPayload{Answers: []quiz.ReferenceAnswer{
				{ID: "r", Value: "Paris"},
			}}),
			{ID: "q3", Text: "Draw a map", Kind: "drawing", Payload: quiz.UnsupportedPayload{DeclaredKind: "drawing"}},
		},
	}
}

func openStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "exam.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

// loadedScreen creates a screen and feeds it the fetch result.
func loadedScreen(t *testing.T, svc *fakeService, journal store.JournalRepo) *ExamScreen {
	t.Helper()
	s := New("quiz-1", Deps{
		Service:        svc,
		Journal:        journal,
		MaxAutoRetries: 2,
		RetryBackoff:   time.Millisecond,
	})
	msg := s.Init()()
	s.Update(msg)
	return s
}

func answerAll(s *ExamScreen) {
	s.Update(widgetsChanged("q1", quiz.SingleValue{ID: "2"}))
	s.Update(widgetsChanged("q2", quiz.TextValue{Text: "Paris"}))
}

func ctrl(r rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl} }

func keyPress(r rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: r, Text: string(r)} }

func TestLoad(t *testing.T) {
	s := loadedScreen(t, &fakeService{quiz: testQuiz(nil)}, nil)

	if s.state.Status != session.StatusInProgress {
		t.Fatalf("expected in progress, got %s", s.state.Status)
	}
	if s.Title() != "Geography" {
		t.Errorf("unexpected title %q", s.Title())
	}
	if s.HeaderStatus() != "" {
		t.Errorf("untimed quiz should have no countdown, got %q", s.HeaderStatus())
	}
	if s.widget == nil || s.widget.Question().ID != "q1" {
		t.Fatal("expected widget for first question")
	}
}

func TestLoadFailure(t *testing.T) {
	s := loadedScreen(t, &fakeService{fetchErr: errors.New("503")}, nil)

	if s.state.Status != session.StatusFailed {
		t.Fatalf("expected failed, got %s", s.state.Status)
	}
	var fe *session.FetchError
	if !errors.As(s.state.Err, &fe) {
		t.Errorf("expected FetchError, got %v", s.state.Err)
	}
	if !strings.Contains(s.View(80, 20), "Could not load quiz") {
		t.Error("expected error message in view")
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected esc to pop after a failed load")
	}
}

func TestEmptyQuizFails(t *testing.T) {
	s := loadedScreen(t, &fakeService{quiz: &quiz.Quiz{ID: "quiz-1", Title: "Empty"}}, nil)
	if s.state.Status != session.StatusFailed {
		t.Fatalf("expected failed, got %s", s.state.Status)
	}
}

func TestCloseCancelsFetch(t *testing.T) {
	svc := &fakeService{block: true}
	s := New("quiz-1", Deps{Service: svc})
	cmd := s.Init()

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	s.Close()

	select {
	case msg := <-done:
		s.Update(msg)
	case <-time.After(2 * time.Second):
		t.Fatal("fetch was not cancelled")
	}
	if s.state.Status != session.StatusLoading || !s.state.Closed {
		t.Errorf("closed screen must ignore the fetch result, got %s", s.state.Status)
	}
}

func TestNavigation(t *testing.T) {
	s := loadedScreen(t, &fakeService{quiz: testQuiz(nil)}, nil)

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if s.state.CurrentIndex != 1 {
		t.Fatalf("expected index 1, got %d", s.state.CurrentIndex)
	}

	// The text widget captures arrows, so only page keys move on.
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if s.state.CurrentIndex != 1 {
		t.Fatalf("right must stay in the text field, got index %d", s.state.CurrentIndex)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyPgDown})
	if s.state.CurrentIndex != 2 {
		t.Fatalf("expected index 2, got %d", s.state.CurrentIndex)
	}

	s.Update(keyPress(']'))
	if s.state.CurrentIndex != 2 {
		t.Errorf("navigation must clamp at the last question, got %d", s.state.CurrentIndex)
	}
	s.Update(keyPress('['))
	if s.state.CurrentIndex != 1 {
		t.Errorf("expected index 1, got %d", s.state.CurrentIndex)
	}
}

func TestResponsesSurviveNavigation(t *testing.T) {
	s := loadedScreen(t, &fakeService{quiz: testQuiz(nil)}, nil)
	s.Update(widgetsChanged("q1", quiz.SingleValue{ID: "2"}))

	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	s.Update(tea.KeyPressMsg{Code: tea.KeyPgUp})

	v, ok := s.widget.Value()
	if !ok {
		t.Fatal("expected restored value")
	}
	if sv, _ := v.(quiz.SingleValue); sv.ID != "2" {
		t.Errorf("expected restored selection 2, got %+v", v)
	}
}

func TestManualSubmitBlockedWhenIncomplete(t *testing.T) {
	svc := &fakeService{quiz: testQuiz(nil)}
	s := loadedScreen(t, svc, nil)
	s.Update(widgetsChanged("q1", quiz.SingleValue{ID: "2"}))

	s.Update(ctrl('s'))
	if s.state.Status != session.StatusInProgress {
		t.Fatalf("expected in progress, got %s", s.state.Status)
	}
	if svc.submits != 0 {
		t.Errorf("expected no remote call, got %d", svc.submits)
	}
	if s.state.CurrentIndex != 1 {
		t.Errorf("expected jump to the unanswered question, got index %d", s.state.CurrentIndex)
	}
	if !strings.Contains(s.state.Message, "1 left") {
		t.Errorf("unexpected message %q", s.state.Message)
	}
}

func TestManualSubmitSucceeds(t *testing.T) {
	svc := &fakeService{quiz: testQuiz(nil), result: quiz.SubmissionResult{Score: 100, Passed: true}}
	st := openStore(t)
	s := loadedScreen(t, svc, st.JournalRepo())
	answerAll(s)

	_, cmd := s.Update(ctrl('s'))
	if s.state.Status != session.StatusSubmitting {
		t.Fatalf("expected submitting, got %s", s.state.Status)
	}

	// A second trigger before the result arrives is refused.
	_, second := s.Update(ctrl('s'))
	if second != nil {
		t.Error("expected no second submission")
	}

	_, next := s.Update(cmd())
	if svc.submits != 1 {
		t.Fatalf("expected exactly 1 remote call, got %d", svc.submits)
	}
	if len(svc.lastSubmit) != 2 {
		t.Errorf("expected 2 responses, got %d", len(svc.lastSubmit))
	}
	if s.state.Status != session.StatusCompleted {
		t.Fatalf("expected completed, got %s", s.state.Status)
	}

	replace, ok := next().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected redirect to the result screen")
	}
	if _, ok := replace.Screen.(*summary.SummaryScreen); !ok {
		t.Errorf("unexpected screen %T", replace.Screen)
	}

	rec, err := st.JournalRepo().GetSession(context.Background(), s.state.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if rec.Status != store.SessionCompleted || rec.Score == nil || *rec.Score != 100 {
		t.Errorf("unexpected journal record: %+v", rec)
	}
}

func TestManualSubmitFailureReturnsToInProgress(t *testing.T) {
	svc := &fakeService{quiz: testQuiz(intPtr(5)), submitErrs: []error{errors.New("offline")}}
	s := loadedScreen(t, svc, nil)
	answerAll(s)

	_, cmd := s.Update(ctrl('s'))
	_, next := s.Update(cmd())

	if s.state.Status != session.StatusInProgress {
		t.Fatalf("expected in progress, got %s", s.state.Status)
	}
	if s.state.Submission.InFlight {
		t.Error("guard must be cleared after a manual failure")
	}
	if next == nil {
		t.Error("expected the countdown to restart")
	}
	if len(s.state.Responses) != 2 {
		t.Errorf("responses must be kept, got %d", len(s.state.Responses))
	}
}

func TestTimerTicks(t *testing.T) {
	s := loadedScreen(t, &fakeService{quiz: testQuiz(intPtr(1))}, nil)

	if s.HeaderStatus() != "⏱ 01:00" {
		t.Errorf("unexpected countdown %q", s.HeaderStatus())
	}

	gen := s.state.TimerGeneration
	_, cmd := s.Update(tickMsg{generation: gen})
	if *s.state.RemainingSeconds != 59 {
		t.Errorf("expected 59s left, got %d", *s.state.RemainingSeconds)
	}
	if cmd == nil {
		t.Error("expected the next tick to be scheduled")
	}

	// A stale tick is dropped.
	s.Update(tickMsg{generation: gen - 1})
	if *s.state.RemainingSeconds != 59 {
		t.Errorf("stale tick changed the countdown: %d", *s.state.RemainingSeconds)
	}
}

func TestTimerExpirySubmitsIncomplete(t *testing.T) {
	svc := &fakeService{quiz: testQuiz(intPtr(1)), result: quiz.SubmissionResult{Score: 50}}
	s := loadedScreen(t, svc, nil)
	s.Update(widgetsChanged("q1", quiz.SingleValue{ID: "2"}))
	*s.state.RemainingSeconds = 1

	_, cmd := s.Update(tickMsg{generation: s.state.TimerGeneration})
	if s.state.Status != session.StatusSubmitting {
		t.Fatalf("expected submitting, got %s", s.state.Status)
	}
	if s.state.Submission.Trigger != session.TriggerTimer {
		t.Errorf("expected timer trigger, got %s", s.state.Submission.Trigger)
	}

	s.Update(cmd())
	if s.state.Status != session.StatusCompleted {
		t.Fatalf("expected completed, got %s", s.state.Status)
	}
	if svc.submits != 1 {
		t.Errorf("expected 1 remote call, got %d", svc.submits)
	}
}

func TestTimerExpiryRetriesThenFails(t *testing.T) {
	down := errors.New("offline")
	svc := &fakeService{quiz: testQuiz(intPtr(1)), submitErrs: []error{down, down, down}}
	st := openStore(t)
	s := loadedScreen(t, svc, st.JournalRepo())
	answerAll(s)
	*s.state.RemainingSeconds = 1

	_, cmd := s.Update(tickMsg{generation: s.state.TimerGeneration})
	for i := 0; i < 10 && cmd != nil; i++ {
		_, cmd = s.Update(cmd())
	}

	if s.state.Status != session.StatusFailed {
		t.Fatalf("expected failed, got %s", s.state.Status)
	}
	// One initial call plus MaxAutoRetries.
	if svc.submits != 3 {
		t.Errorf("expected 3 remote calls, got %d", svc.submits)
	}
	if len(s.state.Responses) != 2 {
		t.Errorf("responses must be kept, got %d", len(s.state.Responses))
	}

	p, err := st.JournalRepo().Pending(context.Background(), s.state.ID)
	if err != nil {
		t.Fatalf("expected pending submission: %v", err)
	}
	if len(p.Responses) != 2 {
		t.Errorf("expected 2 pending responses, got %d", len(p.Responses))
	}

	// The learner resubmits from Failed.
	_, cmd = s.Update(keyPress('r'))
	if cmd == nil {
		t.Fatal("expected resubmission")
	}
	_, next := s.Update(cmd())
	if s.state.Status != session.StatusCompleted {
		t.Fatalf("expected completed after resubmit, got %s", s.state.Status)
	}
	if _, ok := next().(router.ReplaceScreenMsg); !ok {
		t.Error("expected redirect after resubmit")
	}
	if _, err := st.JournalRepo().Pending(context.Background(), s.state.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("pending submission must be resolved, got %v", err)
	}
}

func TestLeaveConfirm(t *testing.T) {
	st := openStore(t)
	s := loadedScreen(t, &fakeService{quiz: testQuiz(nil)}, st.JournalRepo())

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if !s.confirmLeave {
		t.Fatal("expected leave confirmation")
	}
	s.Update(keyPress('n'))
	if s.confirmLeave {
		t.Fatal("expected confirmation dismissed")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	_, cmd := s.Update(keyPress('y'))
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatal("expected pop on confirm")
	}

	rec, err := st.JournalRepo().GetSession(context.Background(), s.state.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if rec.Status != store.SessionAbandoned {
		t.Errorf("expected abandoned, got %s", rec.Status)
	}
}

func TestCloseAbandonsUnfinishedSession(t *testing.T) {
	st := openStore(t)
	s := loadedScreen(t, &fakeService{quiz: testQuiz(nil)}, st.JournalRepo())

	s.Close()
	s.Close()

	ctx := context.Background()
	rec, err := st.JournalRepo().GetSession(ctx, s.state.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if rec.Status != store.SessionAbandoned {
		t.Errorf("expected abandoned, got %s", rec.Status)
	}
	events, err := st.JournalRepo().SessionEvents(ctx, s.state.ID)
	if err != nil {
		t.Fatalf("events: %v", err)
	}
	n := 0
	for _, e := range events {
		if e.Action == store.ActionAbandoned {
			n++
		}
	}
	if n != 1 {
		t.Errorf("expected one abandoned event, got %d", n)
	}
}

func TestSubmitAcceptsUntouchedOrdering(t *testing.T) {
	svc := &fakeService{
		quiz: &quiz.Quiz{ID: "quiz-1", Title: "Planets", Questions: []quiz.Question{
			quiz.NewQuestion("o1", "Order by distance from the Sun", quiz.OrderingPayload{Items: []quiz.OrderableItem{
				{ID: "v", Text: "Venus", CorrectPosition: 0},
				{ID: "e", Text: "Earth", CorrectPosition: 1},
			}}),
		}},
		result: quiz.SubmissionResult{Score: 100, Passed: true},
	}
	s := loadedScreen(t, svc, nil)

	_, cmd := s.Update(ctrl('s'))
	if s.state.Status != session.StatusSubmitting {
		t.Fatalf("status = %s, message %q", s.state.Status, s.state.Message)
	}
	s.Update(cmd())

	if svc.submits != 1 || len(svc.lastSubmit) != 1 {
		t.Fatalf("submitted %v in %d call(s)", svc.lastSubmit, svc.submits)
	}
	got, ok := svc.lastSubmit[0].Value.(quiz.SequenceValue)
	if !ok || len(got.IDs) != 2 || got.IDs[0] != "v" || got.IDs[1] != "e" {
		t.Errorf("submitted %#v, want the order shown", svc.lastSubmit[0].Value)
	}
}

func TestCloseStopsTimer(t *testing.T) {
	s := loadedScreen(t, &fakeService{quiz: testQuiz(intPtr(1))}, nil)
	gen := s.state.TimerGeneration
	s.Close()

	_, cmd := s.Update(tickMsg{generation: gen})
	if cmd != nil {
		t.Error("no tick may be scheduled after teardown")
	}
	if *s.state.RemainingSeconds != 60 {
		t.Errorf("countdown changed after teardown: %d", *s.state.RemainingSeconds)
	}
}

func TestKeyHints(t *testing.T) {
	s := loadedScreen(t, &fakeService{quiz: testQuiz(nil)}, nil)
	var submit bool
	for _, h := range s.KeyHints() {
		if h.Key == "Ctrl+S" {
			submit = true
		}
	}
	if !submit {
		t.Error("expected submit hint")
	}
}

func widgetsChanged(id string, v quiz.Value) tea.Msg {
	return widgets.ResponseChangedMsg{QuestionID: id, Value: v}
}
