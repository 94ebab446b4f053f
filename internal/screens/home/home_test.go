package home

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screens/editor"
	"github.com/abhisek/quizdeck/internal/screens/exam"
	"github.com/abhisek/quizdeck/internal/screens/history"
	"github.com/abhisek/quizdeck/internal/store"
)

// nopService satisfies remote.Service; the home screen never calls it.
type nopService struct{}

func (nopService) FetchQuiz(context.Context, string) (*quiz.Quiz, error) { return nil, nil }
func (nopService) SubmitResponses(context.Context, string, []quiz.Response) (quiz.SubmissionResult, error) {
	return quiz.SubmissionResult{}, nil
}
func (nopService) CreateQuestion(_ context.Context, _ string, q quiz.Question) (quiz.Question, error) {
	return q, nil
}
func (nopService) UpdateQuestion(context.Context, string, quiz.Question) error { return nil }
func (nopService) DeleteQuestion(context.Context, string, string) error        { return nil }
func (nopService) ReorderQuestions(context.Context, string, []string) error    { return nil }

func openStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "home.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func keyPress(r rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: r, Text: string(r)} }

var (
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
	esc   = tea.KeyPressMsg{Code: tea.KeyEscape}
	down  = tea.KeyPressMsg{Code: tea.KeyDown}
)

func typeText(h *HomeScreen, s string) {
	for _, r := range s {
		h.Update(keyPress(r))
	}
}

func pushed(t *testing.T, cmd tea.Cmd) any {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	return msg.Screen
}

func TestTakeQuizPromptsForID(t *testing.T) {
	h := New(Deps{Service: nopService{}})

	h.Update(enter)
	if !h.HandlesEscape() {
		t.Fatal("expected prompt open")
	}

	_, cmd := h.Update(enter)
	if cmd != nil {
		t.Error("empty id must not open a screen")
	}
	if h.prompt.errMsg == "" {
		t.Error("expected an error for the empty id")
	}

	typeText(h, "quiz-1")
	_, cmd = h.Update(enter)
	if _, ok := pushed(t, cmd).(*exam.ExamScreen); !ok {
		t.Error("expected the exam screen")
	}
	if h.HandlesEscape() {
		t.Error("prompt should close after opening")
	}
}

func TestEditQuizOpensEditor(t *testing.T) {
	h := New(Deps{Service: nopService{}})

	h.Update(down)
	h.Update(enter)
	typeText(h, "quiz-1")
	_, cmd := h.Update(enter)
	if _, ok := pushed(t, cmd).(*editor.EditorScreen); !ok {
		t.Error("expected the editor screen")
	}
}

func TestDigitOpensHistory(t *testing.T) {
	h := New(Deps{Service: nopService{}, Journal: openStore(t).JournalRepo()})

	_, cmd := h.Update(keyPress('3'))
	if _, ok := pushed(t, cmd).(*history.HistoryScreen); !ok {
		t.Error("expected the history screen")
	}
	if !strings.Contains(h.View(120, 40), "Past sessions") {
		t.Error("expected the hint of the selected item")
	}
}

func TestEscapeClosesPrompt(t *testing.T) {
	h := New(Deps{Service: nopService{}})
	h.Update(enter)
	h.Update(esc)
	if h.HandlesEscape() {
		t.Error("expected prompt closed")
	}
}

func TestWithoutServiceQuizItemsDisabled(t *testing.T) {
	h := New(Deps{Journal: openStore(t).JournalRepo()})

	if h.menu.Selected != 2 {
		t.Fatalf("expected HISTORY selected first, got %d", h.menu.Selected)
	}
	_, cmd := h.Update(enter)
	if _, ok := pushed(t, cmd).(*history.HistoryScreen); !ok {
		t.Error("expected the history screen")
	}
	if !strings.Contains(h.View(120, 40), "QUIZDECK_API_URL") {
		t.Error("expected configuration notice")
	}
}

func TestStatsFromJournal(t *testing.T) {
	st := openStore(t)
	repo := st.JournalRepo()
	ctx := context.Background()

	now := time.Now()
	if err := repo.StartSession(ctx, store.SessionRecord{
		ID: "s-1", QuizID: "quiz-1", QuizTitle: "Geography", Status: store.SessionInProgress, Total: 2, StartedAt: now,
	}); err != nil {
		t.Fatal(err)
	}
	if err := repo.FinishSession(ctx, "s-1", store.SessionOutcome{
		Status: store.SessionCompleted, Trigger: "manual", Answered: 2, Total: 2,
		Result: &quiz.SubmissionResult{Score: 80, Passed: true}, EndedAt: now,
	}); err != nil {
		t.Fatal(err)
	}
	if err := repo.SavePending(ctx, store.PendingSubmission{SessionID: "s-2", QuizID: "quiz-1"}); err != nil {
		t.Fatal(err)
	}

	h := New(Deps{Journal: repo})
	h.Update(h.Init()())

	if h.stats.taken != 1 || h.stats.pending != 1 {
		t.Errorf("unexpected stats %+v", h.stats)
	}
	if h.stats.lastScore == nil || *h.stats.lastScore != 80 {
		t.Errorf("unexpected last score %v", h.stats.lastScore)
	}
}
