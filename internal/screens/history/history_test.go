package history

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/store"
)

type fakeService struct {
	err   error
	calls int
}

func (f *fakeService) FetchQuiz(context.Context, string) (*quiz.Quiz, error) {
	return nil, errors.New("not used")
}

func (f *fakeService) SubmitResponses(context.Context, string, []quiz.Response) (quiz.SubmissionResult, error) {
	f.calls++
	if f.err != nil {
		return quiz.SubmissionResult{}, f.err
	}
	return quiz.SubmissionResult{Score: 90, Passed: true}, nil
}

var (
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
	down  = tea.KeyPressMsg{Code: tea.KeyDown}
	esc   = tea.KeyPressMsg{Code: tea.KeyEscape}
)

func keyPress(r rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: r, Text: string(r)} }

// journal seeds one completed session and one with a pending submission.
func journal(t *testing.T) store.JournalRepo {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	ctx := context.Background()
	repo := s.JournalRepo()
	require.NoError(t, repo.StartSession(ctx, store.SessionRecord{ID: "done", QuizID: "geo-1", QuizTitle: "Capitals", Status: store.SessionInProgress, Total: 2}))
	require.NoError(t, repo.FinishSession(ctx, "done", store.SessionOutcome{
		Status: store.SessionCompleted, Answered: 2, Total: 2, Result: &quiz.SubmissionResult{Score: 50},
	}))
	require.NoError(t, repo.AppendSessionEvent(ctx, store.SessionEventData{SessionID: "done", Action: store.ActionSubmitted, Detail: "score=50"}))

	require.NoError(t, repo.StartSession(ctx, store.SessionRecord{ID: "stuck", QuizID: "geo-2", QuizTitle: "Rivers", Status: store.SessionInProgress, Total: 1}))
	require.NoError(t, repo.SavePending(ctx, store.PendingSubmission{SessionID: "stuck", QuizID: "geo-2", Attempts: 3, LastError: "platform returned 503"}))
	return repo
}

// settle runs cmd and feeds every message it yields back into s.
func settle(t *testing.T, s *HistoryScreen, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			settle(t, s, c)
		}
		return
	}
	_, next := s.Update(msg)
	settle(t, s, next)
}

func row(s *HistoryScreen, id string) int {
	for i, sess := range s.sessions {
		if sess.ID == id {
			return i
		}
	}
	return -1
}

func TestHistory_ListsSessions(t *testing.T) {
	s := New(journal(t), nil)
	assert.Contains(t, ansi.Strip(s.View(100, 30)), "Loading")

	settle(t, s, s.Init())
	view := ansi.Strip(s.View(100, 30))
	assert.Contains(t, view, "Capitals")
	assert.Contains(t, view, "Rivers")
	assert.Contains(t, view, "pending")
	assert.Equal(t, "1 pending", s.HeaderStatus())
}

func TestHistory_Empty(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	defer s.Close()

	h := New(s.JournalRepo(), nil)
	settle(t, h, h.Init())
	assert.Contains(t, ansi.Strip(h.View(100, 30)), "No sessions yet")
	assert.Empty(t, h.HeaderStatus())
}

func TestHistory_JournalToggle(t *testing.T) {
	s := New(journal(t), nil)
	settle(t, s, s.Init())
	s.list.SetCursor(row(s, "done"))

	_, cmd := s.Update(enter)
	settle(t, s, cmd)
	assert.Equal(t, "done", s.open)
	assert.Contains(t, ansi.Strip(s.View(100, 30)), "score=50")

	_, cmd = s.Update(enter)
	assert.Nil(t, cmd, "the journal is cached")
	assert.Empty(t, s.open)
}

func TestHistory_Resend(t *testing.T) {
	svc := &fakeService{}
	s := New(journal(t), svc)
	settle(t, s, s.Init())
	s.list.SetCursor(row(s, "stuck"))
	assert.Contains(t, keys(s), "r")

	_, cmd := s.Update(keyPress('r'))
	require.NotNil(t, cmd)
	assert.Equal(t, "Resending...", s.notice)
	settle(t, s, cmd)

	assert.Equal(t, 1, svc.calls)
	assert.Equal(t, "Submission delivered", s.notice)
	assert.Empty(t, s.pending)
	assert.NotContains(t, keys(s), "r")
}

func TestHistory_ResendFailureKeepsPending(t *testing.T) {
	svc := &fakeService{err: errors.New("still down")}
	s := New(journal(t), svc)
	settle(t, s, s.Init())
	s.list.SetCursor(row(s, "stuck"))

	_, cmd := s.Update(keyPress('r'))
	settle(t, s, cmd)
	assert.Contains(t, s.notice, "Resend failed")
	require.Contains(t, s.pending, "stuck")
	assert.Equal(t, 4, s.pending["stuck"].Attempts)
}

func TestHistory_NoResendWithoutService(t *testing.T) {
	s := New(journal(t), nil)
	settle(t, s, s.Init())
	s.list.SetCursor(row(s, "stuck"))

	_, cmd := s.Update(keyPress('r'))
	assert.Nil(t, cmd)
	assert.NotContains(t, keys(s), "r")
}

func TestHistory_MovingClosesJournal(t *testing.T) {
	s := New(journal(t), nil)
	settle(t, s, s.Init())
	s.list.SetCursor(0)

	_, cmd := s.Update(enter)
	settle(t, s, cmd)
	require.NotEmpty(t, s.open)

	s.Update(down)
	assert.Equal(t, 1, s.list.Cursor)
	assert.Empty(t, s.open)
}

func TestHistory_EscPops(t *testing.T) {
	s := New(journal(t), nil)
	_, cmd := s.Update(esc)
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestWindow(t *testing.T) {
	lines := []string{"0", "1", "2", "3", "4", "5"}
	assert.Equal(t, lines, window(lines, 3, 10))
	assert.Equal(t, []string{"0", "1", "2"}, window(lines, 0, 3))
	assert.Equal(t, []string{"2", "3", "4"}, window(lines, 3, 3))
	assert.Equal(t, []string{"3", "4", "5"}, window(lines, 5, 3))
}

func keys(s *HistoryScreen) []string {
	var out []string
	for _, h := range s.KeyHints() {
		out = append(out, h.Key)
	}
	return out
}
