package session

import (
	"time"

	"github.com/abhisek/quizdeck/internal/quiz"
)

// DefaultMaxAutoRetries bounds the automatic resubmissions attempted after
// a timer-forced submission fails.
const DefaultMaxAutoRetries = 3

// Status is the lifecycle stage of a session.
type Status int

const (
	StatusLoading    Status = iota // Fetching the quiz
	StatusInProgress               // Learner is answering
	StatusSubmitting               // Exactly one submission in flight
	StatusCompleted                // Remote acknowledged the submission
	StatusFailed                   // Fetch failed or submission retries exhausted
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusInProgress:
		return "in_progress"
	case StatusSubmitting:
		return "submitting"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Trigger records what started a submission.
type Trigger int

const (
	TriggerManual   Trigger = iota // Learner pressed submit
	TriggerTimer                   // Countdown reached zero
	TriggerResubmit                // Learner retried from Failed
)

func (t Trigger) String() string {
	switch t {
	case TriggerManual:
		return "manual"
	case TriggerTimer:
		return "timer"
	case TriggerResubmit:
		return "resubmit"
	default:
		return "unknown"
	}
}

// Submission is the submission guard plus bookkeeping for retries.
type Submission struct {
	// InFlight is set synchronously before the remote call is issued and
	// cleared only when the session leaves Submitting.
	InFlight bool

	Trigger Trigger

	// Attempts counts remote calls made for the current trigger.
	Attempts int

	// Calls counts every remote submission call over the session.
	Calls int

	LastErr error
}

// State is the in-memory state of one learner's attempt at one quiz. It is
// owned by a single screen and never shared.
type State struct {
	ID string

	Quiz      *quiz.Quiz
	Questions []quiz.Question

	// CurrentIndex is always a valid index into Questions while InProgress.
	CurrentIndex int

	// Responses holds at most one response per question id.
	Responses map[string]quiz.Response

	// RemainingSeconds is nil for untimed quizzes.
	RemainingSeconds *int

	Status     Status
	Submission Submission
	Result     *quiz.SubmissionResult

	// Message is the human-readable outcome of the last failed transition.
	Message string
	Err     error

	// TimerGeneration changes whenever the countdown is stopped or
	// restarted. Ticks stamped with an older generation are stale.
	TimerGeneration int

	// MaxAutoRetries bounds retries after a timer-forced submission fails.
	MaxAutoRetries int

	// Closed is set on teardown; every later transition is refused.
	Closed bool

	StartedAt time.Time
}

// NewState creates a session waiting for its quiz.
func NewState(id string, maxAutoRetries int) *State {
	if maxAutoRetries < 0 {
		maxAutoRetries = 0
	}
	return &State{
		ID:             id,
		Responses:      make(map[string]quiz.Response),
		Status:         StatusLoading,
		MaxAutoRetries: maxAutoRetries,
	}
}

// CurrentQuestion returns the question under the cursor.
func (s *State) CurrentQuestion() (quiz.Question, bool) {
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(s.Questions) {
		return quiz.Question{}, false
	}
	return s.Questions[s.CurrentIndex], true
}

// Response returns the recorded response for questionID.
func (s *State) Response(questionID string) (quiz.Response, bool) {
	r, ok := s.Responses[questionID]
	return r, ok
}

// TimerRunning reports whether the countdown should keep ticking.
func (s *State) TimerRunning() bool {
	return !s.Closed &&
		s.Status == StatusInProgress &&
		s.RemainingSeconds != nil &&
		*s.RemainingSeconds > 0
}

// Expired reports whether a timed quiz has run out of time.
func (s *State) Expired() bool {
	return s.RemainingSeconds != nil && *s.RemainingSeconds == 0
}
