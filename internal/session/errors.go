package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/quizdeck/internal/quiz"
)

var (
	// ErrSubmissionInFlight is returned when a second submission is
	// attempted while one is already in flight.
	ErrSubmissionInFlight = errors.New("submission already in flight")

	// ErrNotInProgress is returned for transitions that need a different
	// status than the session currently has.
	ErrNotInProgress = errors.New("session is not in progress")

	// ErrClosed is returned after the session was torn down.
	ErrClosed = errors.New("session closed")

	// ErrUnsupportedKind marks questions that render as placeholders.
	ErrUnsupportedKind = quiz.ErrUnsupportedKind
)

// FetchError means the quiz or its questions could not be loaded.
type FetchError struct {
	QuizID string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("load quiz %s: %v", e.QuizID, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ValidationError blocks a manual submission while questions are
// unanswered.
type ValidationError struct {
	Unanswered []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%d question(s) unanswered: %s", len(e.Unanswered), strings.Join(e.Unanswered, ", "))
}

// SubmissionError wraps a failed remote submission.
type SubmissionError struct {
	Trigger Trigger
	Attempt int
	Err     error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submit (%s, attempt %d): %v", e.Trigger, e.Attempt, e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }
