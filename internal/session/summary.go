package session

import (
	"time"

	"github.com/abhisek/quizdeck/internal/evaluator"
	"github.com/abhisek/quizdeck/internal/quiz"
)

// Summary holds the data displayed on the result screen.
type Summary struct {
	SessionID string
	QuizID    string
	QuizTitle string

	Duration time.Duration
	Total    int
	Answered int

	// Result is the authoritative outcome; nil if the session never
	// completed.
	Result *quiz.SubmissionResult

	// Preview is the client-side estimate, for display only.
	Preview evaluator.Score

	Trigger Trigger
}

// BuildSummary creates a Summary from the current session state.
func BuildSummary(state *State, now time.Time) *Summary {
	s := &Summary{
		SessionID: state.ID,
		Total:     len(state.Questions),
		Answered:  AnsweredCount(state),
		Result:    state.Result,
		Preview:   evaluator.AggregateScore(state.Questions, state.Responses),
		Trigger:   state.Submission.Trigger,
	}
	if state.Quiz != nil {
		s.QuizID = state.Quiz.ID
		s.QuizTitle = state.Quiz.Title
	}
	if !state.StartedAt.IsZero() {
		s.Duration = now.Sub(state.StartedAt)
	}
	return s
}
