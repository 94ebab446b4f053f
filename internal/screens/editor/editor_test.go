package editor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/authoring"
	"github.com/abhisek/quizdeck/internal/draft"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/router"
)

// fakeService implements remote.Service for testing.
type fakeService struct {
	mu       sync.Mutex
	quiz     *quiz.Quiz
	fetchErr error
	saveErr  error
	calls    []string
}

func (f *fakeService) record(call string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
	return f.saveErr
}

func (f *fakeService) FetchQuiz(context.Context, string) (*quiz.Quiz, error) {
	return f.quiz, f.fetchErr
}

func (f *fakeService) SubmitResponses(context.Context, string, []quiz.Response) (quiz.SubmissionResult, error) {
	return quiz.SubmissionResult{}, errors.New("not used")
}

func (f *fakeService) CreateQuestion(_ context.Context, _ string, q quiz.Question) (quiz.Question, error) {
	return q, f.record("create " + q.ID)
}

func (f *fakeService) UpdateQuestion(_ context.Context, _ string, q quiz.Question) error {
	return f.record("update " + q.ID)
}

func (f *fakeService) DeleteQuestion(_ context.Context, _, id string) error {
	return f.record("delete " + id)
}

func (f *fakeService) ReorderQuestions(context.Context, string, []string) error {
	return f.record("reorder")
}

// fakeDrafter implements draft.Generator.
type fakeDrafter struct {
	got draft.Input
	err error
}

func (f *fakeDrafter) Draft(_ context.Context, in draft.Input) (quiz.Question, error) {
	f.got = in
	if f.err != nil {
		return quiz.Question{}, f.err
	}
	return quiz.NewQuestion("", "Capital of Italy?", quiz.SingleChoicePayload{Options: []quiz.Option{
		{ID: "a", Text: "Rome", IsCorrect: true}, {ID: "b", Text: "Milan"},
	}}), nil
}

func testQuiz() *quiz.Quiz {
	return &quiz.Quiz{
		ID:    "quiz-1",
		Title: "Geography",
		Questions: []quiz.Question{
			quiz.NewQuestion("q1", "Capital of Spain", quiz.SingleChoicePayload{Options: []quiz.Option{
				{ID: "1", Text: "Lisbon"}, {ID: "2", Text: "Madrid", IsCorrect: true},
			}}),
			quiz.NewQuestion("q2", "Type the capital of France", quiz.TextCompletionPayload{Answers: []quiz.ReferenceAnswer{
				{ID: "r", Value: "Paris"},
			}}),
			{ID: "q3", Text: "Draw a map", Kind: "drawing", Payload: quiz.UnsupportedPayload{DeclaredKind: "drawing", Raw: []byte(`{}`)}},
		},
	}
}

func sequentialIDs() authoring.Option {
	n := 0
	return authoring.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("new-%d", n)
	})
}

func loadedScreen(t *testing.T, svc *fakeService, drafter draft.Generator) *EditorScreen {
	t.Helper()
	deps := Deps{Service: svc, EditorOptions: []authoring.Option{sequentialIDs()}}
	if drafter != nil {
		deps.Drafter = drafter
	}
	s := New("quiz-1", deps)
	s.Update(s.Init()())
	return s
}

func keyPress(r rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: r, Text: string(r)} }

func ctrl(r rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl} }

var (
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
	esc   = tea.KeyPressMsg{Code: tea.KeyEscape}
	down  = tea.KeyPressMsg{Code: tea.KeyDown}
)

// run executes cmd and feeds its message back, as the runtime would.
func run(s *EditorScreen, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	s.Update(cmd())
}

func ids(s *EditorScreen) []string {
	var out []string
	for _, q := range s.Editor().Questions() {
		out = append(out, q.ID)
	}
	return out
}

func TestLoad(t *testing.T) {
	s := loadedScreen(t, &fakeService{quiz: testQuiz()}, nil)

	if s.mode != modeList {
		t.Fatalf("expected list mode, got %d", s.mode)
	}
	if s.Editor().Len() != 3 {
		t.Fatalf("expected 3 questions, got %d", s.Editor().Len())
	}
	if s.Title() != "Edit: Geography" {
		t.Errorf("unexpected title %q", s.Title())
	}
	if s.HeaderStatus() != "saved" {
		t.Errorf("fresh draft should be saved, got %q", s.HeaderStatus())
	}
	if !strings.Contains(s.View(100, 30), "Capital of Spain") {
		t.Error("expected question list in view")
	}
}

func TestLoadFailure(t *testing.T) {
	s := loadedScreen(t, &fakeService{fetchErr: errors.New("quiz not found")}, nil)

	if s.mode != modeFailed {
		t.Fatalf("expected failed mode, got %d", s.mode)
	}
	if !strings.Contains(s.View(80, 20), "quiz not found") {
		t.Error("expected error in view")
	}
	_, cmd := s.Update(esc)
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected esc to pop")
	}
}

func TestAddQuestion(t *testing.T) {
	s := loadedScreen(t, &fakeService{quiz: testQuiz()}, nil)

	s.Update(keyPress('a'))
	if s.mode != modePickKind {
		t.Fatalf("expected kind picker, got %d", s.mode)
	}
	s.Update(down) // multi choice
	s.Update(enter)

	if s.mode != modeEditText {
		t.Fatalf("expected text input after choosing kind, got %d", s.mode)
	}
	s.input.SetValue("Pick the primes")
	s.Update(enter)

	q, ok := s.Editor().Question("new-1")
	if !ok {
		t.Fatal("expected new question")
	}
	if q.Kind != quiz.KindMultiChoice || q.Text != "Pick the primes" {
		t.Errorf("unexpected question %+v", q)
	}
	if s.selected != 3 {
		t.Errorf("expected new question selected, got %d", s.selected)
	}
	if s.HeaderStatus() != "● unsaved" {
		t.Errorf("expected unsaved marker, got %q", s.HeaderStatus())
	}
}

func TestChangeKindCreatesNewID(t *testing.T) {
	s := loadedScreen(t, &fakeService{quiz: testQuiz()}, nil)

	s.Update(keyPress('c'))
	if s.kinds.Cursor != 0 {
		t.Fatalf("picker should start on the current kind, got %d", s.kinds.Cursor)
	}
	for range 4 {
		s.Update(down)
	}
	s.Update(enter)

	got := ids(s)
	if got[0] != "new-1" {
		t.Fatalf("expected re-created question in place, got %v", got)
	}
	q, _ := s.Editor().Question("new-1")
	if q.Kind != quiz.KindOrdering || q.Text != "Capital of Spain" {
		t.Errorf("unexpected question %+v", q)
	}
	if !strings.Contains(s.message, "authored again") {
		t.Errorf("expected kind change notice, got %q", s.message)
	}
}

func TestUnsupportedQuestionIsNotEditable(t *testing.T) {
	s := loadedScreen(t, &fakeService{quiz: testQuiz()}, nil)
	s.selected = 2

	s.Update(keyPress('e'))
	s.Update(keyPress('c'))

	if s.mode != modeList {
		t.Errorf("expected list mode, got %d", s.mode)
	}
}

func TestMoveAndDelete(t *testing.T) {
	s := loadedScreen(t, &fakeService{quiz: testQuiz()}, nil)

	s.Update(keyPress('J'))
	if got := ids(s); got[0] != "q2" || got[1] != "q1" || s.selected != 1 {
		t.Fatalf("unexpected order %v selected %d", got, s.selected)
	}
	s.Update(keyPress('K'))
	if got := ids(s); got[0] != "q1" || s.selected != 0 {
		t.Fatalf("unexpected order %v selected %d", got, s.selected)
	}

	s.selected = 2
	s.Update(keyPress('d'))
	if got := ids(s); len(got) != 2 || s.selected != 1 {
		t.Errorf("unexpected order after delete %v selected %d", got, s.selected)
	}
}

func TestSaveBlockedByInvalidQuestion(t *testing.T) {
	svc := &fakeService{quiz: testQuiz()}
	s := loadedScreen(t, svc, nil)

	s.Update(keyPress('a'))
	s.Update(enter) // single choice with no options
	s.Update(esc)   // leave the text empty

	_, cmd := s.Update(ctrl('s'))
	if cmd != nil {
		run(s, cmd)
	}
	if len(svc.calls) != 0 {
		t.Errorf("nothing may reach the platform, got %v", svc.calls)
	}
	if !strings.Contains(s.message, "need fixing") {
		t.Errorf("expected validation message, got %q", s.message)
	}
	if s.selected != 3 {
		t.Errorf("expected invalid question selected, got %d", s.selected)
	}
}

func TestSave(t *testing.T) {
	svc := &fakeService{quiz: testQuiz()}
	s := loadedScreen(t, svc, nil)

	s.selected = 1
	s.Update(keyPress('d'))
	_, cmd := s.Update(ctrl('s'))
	if !s.saving {
		t.Fatal("expected saving flag")
	}
	run(s, cmd)

	if s.saving {
		t.Error("saving flag should clear")
	}
	if len(svc.calls) != 1 || svc.calls[0] != "delete q2" {
		t.Errorf("unexpected calls %v", svc.calls)
	}
	if !strings.Contains(s.message, "1 deleted") {
		t.Errorf("unexpected message %q", s.message)
	}
	if s.Editor().Dirty() {
		t.Error("draft should be clean after save")
	}
}

func TestSaveFailureKeepsDraft(t *testing.T) {
	svc := &fakeService{quiz: testQuiz(), saveErr: errors.New("503")}
	s := loadedScreen(t, svc, nil)

	s.Update(keyPress('d'))
	_, cmd := s.Update(ctrl('s'))
	run(s, cmd)

	if !strings.Contains(s.message, "Save failed") {
		t.Errorf("unexpected message %q", s.message)
	}
	if !s.Editor().Dirty() {
		t.Error("draft should still be dirty")
	}
}

func TestPreviewToggle(t *testing.T) {
	s := loadedScreen(t, &fakeService{quiz: testQuiz()}, nil)

	s.Update(keyPress('p'))
	if s.preview == nil {
		t.Fatal("expected preview")
	}
	if s.preview.Question().ID != "q1" {
		t.Errorf("preview shows %q", s.preview.Question().ID)
	}
	if v, ok := s.preview.Value(); !ok || v != (quiz.SingleValue{ID: "2"}) {
		t.Errorf("preview should show the correct answer, got %v %v", v, ok)
	}
	if !strings.Contains(s.View(120, 30), "Preview") {
		t.Error("expected preview pane")
	}

	s.Update(down)
	if s.preview.Question().ID != "q2" {
		t.Errorf("preview should follow the selection, got %q", s.preview.Question().ID)
	}

	s.Update(keyPress('p'))
	if s.preview != nil {
		t.Error("expected preview hidden")
	}
}

func TestDraftQuestion(t *testing.T) {
	drafter := &fakeDrafter{}
	s := loadedScreen(t, &fakeService{quiz: testQuiz()}, drafter)

	s.Update(keyPress('g'))
	s.Update(enter) // single choice
	if s.mode != modeDraftTopic {
		t.Fatalf("expected topic input, got %d", s.mode)
	}
	s.input.SetValue("European capitals")
	_, cmd := s.Update(enter)
	if !s.drafting {
		t.Fatal("expected drafting flag")
	}
	run(s, cmd)

	if drafter.got.Topic != "European capitals" || drafter.got.Kind != quiz.KindSingleChoice {
		t.Errorf("unexpected draft input %+v", drafter.got)
	}
	if len(drafter.got.PriorQuestions) != 3 {
		t.Errorf("expected prior questions for dedup, got %v", drafter.got.PriorQuestions)
	}

	q, ok := s.Editor().Question("new-1")
	if !ok || q.Text != "Capital of Italy?" {
		t.Fatalf("expected drafted question in editor, got %v", ids(s))
	}
	if s.preview == nil || s.preview.Question().ID != "new-1" {
		t.Error("expected drafted question previewed")
	}
}

func TestDraftFailure(t *testing.T) {
	s := loadedScreen(t, &fakeService{quiz: testQuiz()}, &fakeDrafter{err: errors.New("rate limited")})

	s.Update(keyPress('g'))
	s.Update(enter)
	s.input.SetValue("Rivers")
	_, cmd := s.Update(enter)
	run(s, cmd)

	if s.Editor().Len() != 3 {
		t.Error("nothing should be added")
	}
	if !strings.Contains(s.message, "rate limited") {
		t.Errorf("unexpected message %q", s.message)
	}
}

func TestDraftWithoutProvider(t *testing.T) {
	s := loadedScreen(t, &fakeService{quiz: testQuiz()}, nil)

	s.Update(keyPress('g'))
	if s.mode != modeList {
		t.Errorf("expected list mode, got %d", s.mode)
	}
	if !strings.Contains(s.message, "LLM provider") {
		t.Errorf("unexpected message %q", s.message)
	}
}

func TestEscapeConfirmsDiscard(t *testing.T) {
	s := loadedScreen(t, &fakeService{quiz: testQuiz()}, nil)

	s.Update(keyPress('d'))
	_, cmd := s.Update(esc)
	if cmd != nil || s.mode != modeConfirmDiscard {
		t.Fatalf("expected discard confirmation, mode %d", s.mode)
	}
	s.Update(keyPress('n'))
	if s.mode != modeList {
		t.Fatal("expected back to list")
	}

	s.Update(esc)
	_, cmd = s.Update(keyPress('y'))
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected pop after discard")
	}
}

func TestEscapeWithoutChangesPops(t *testing.T) {
	s := loadedScreen(t, &fakeService{quiz: testQuiz()}, nil)

	_, cmd := s.Update(esc)
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected pop")
	}
}

func TestCloseCancelsContext(t *testing.T) {
	s := New("quiz-1", Deps{Service: &fakeService{quiz: testQuiz()}})
	s.Close()
	if s.ctx.Err() == nil {
		t.Error("expected cancelled context")
	}
}
