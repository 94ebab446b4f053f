package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/session"
)

func testSummary() *session.Summary {
	return &session.Summary{
		SessionID: "s-1",
		QuizID:    "quiz-1",
		QuizTitle: "Geography",
		Duration:  3*time.Minute + 5*time.Second,
		Total:     4,
		Answered:  3,
		Result:    &quiz.SubmissionResult{Score: 75, Passed: true},
		Trigger:   session.TriggerTimer,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Result" {
		t.Errorf("Title = %q, want %q", s.Title(), "Result")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)
	for _, want := range []string{"Geography", "Passed", "75 / 100", "3:05", "3 of 4", "time ran out", "Done"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_NotPassed(t *testing.T) {
	sum := testSummary()
	sum.Result = &quiz.SubmissionResult{Score: 20}
	view := New(sum).View(80, 24)
	if !strings.Contains(view, "Not passed") {
		t.Error("expected not passed verdict")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testSummary())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary())
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
