package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/quizdeck/internal/quiz"
)

// Loaded moves a loading session into progress with the fetched quiz. A
// timed quiz seeds RemainingSeconds with its duration. A quiz without
// questions fails the session.
func Loaded(state *State, q *quiz.Quiz, now time.Time) error {
	if err := checkOpen(state, StatusLoading); err != nil {
		return err
	}
	if q == nil || len(q.Questions) == 0 {
		id := ""
		if q != nil {
			id = q.ID
		}
		LoadFailed(state, id, errors.New("quiz has no questions"))
		return state.Err
	}

	state.Quiz = q
	state.Questions = q.Questions
	state.CurrentIndex = 0
	state.StartedAt = now
	state.Status = StatusInProgress
	state.Message = ""
	state.Err = nil

	if q.Timed() {
		secs := *q.DurationMinutes * 60
		state.RemainingSeconds = &secs
	}
	state.TimerGeneration++
	return nil
}

// LoadFailed records a fetch failure. The session is terminal; the learner
// reloads by reopening the quiz.
func LoadFailed(state *State, quizID string, err error) {
	if state.Closed {
		return
	}
	fe := &FetchError{QuizID: quizID, Err: err}
	state.Status = StatusFailed
	state.Err = fe
	state.Message = fmt.Sprintf("Could not load quiz: %v", err)
}

// Navigate moves the cursor to index, clamped to the question range.
func Navigate(state *State, index int) error {
	if err := checkOpen(state, StatusInProgress); err != nil {
		return err
	}
	state.CurrentIndex = max(0, min(index, len(state.Questions)-1))
	return nil
}

// Record stores r, replacing any earlier response for the same question.
func Record(state *State, r quiz.Response) error {
	if err := checkOpen(state, StatusInProgress); err != nil {
		return err
	}
	q, ok := questionByID(state, r.QuestionID)
	if !ok {
		return fmt.Errorf("unknown question %q", r.QuestionID)
	}
	if err := quiz.CheckResponse(q, r); err != nil {
		return err
	}
	state.Responses[r.QuestionID] = r
	return nil
}

// Tick advances the countdown by one second, flooring at zero, and reports
// whether time has now run out. Ticks outside InProgress or on untimed
// quizzes do nothing.
func Tick(state *State) (expired bool) {
	if state.Closed || state.Status != StatusInProgress || state.RemainingSeconds == nil {
		return false
	}
	if *state.RemainingSeconds > 0 {
		*state.RemainingSeconds--
	}
	return *state.RemainingSeconds == 0
}

// Unanswered returns the ids of answerable questions without a non-blank
// response, in question order. Placeholder questions never block.
func Unanswered(state *State) []string {
	var ids []string
	for _, q := range state.Questions {
		if !q.Kind.Supported() {
			continue
		}
		if r, ok := state.Responses[q.ID]; !ok || quiz.IsBlank(r.Value) {
			ids = append(ids, q.ID)
		}
	}
	return ids
}

// AnsweredCount returns how many questions have a non-blank response.
func AnsweredCount(state *State) int {
	n := 0
	for _, q := range state.Questions {
		if r, ok := state.Responses[q.ID]; ok && !quiz.IsBlank(r.Value) {
			n++
		}
	}
	return n
}

// BeginSubmit moves the session into Submitting. It must be called
// synchronously before the remote call is issued: the guard is checked and
// set here, so a second trigger in the same tick gets
// ErrSubmissionInFlight. A manual trigger is refused with a
// *ValidationError while questions are unanswered; a timer trigger always
// proceeds. The countdown is stopped.
func BeginSubmit(state *State, trigger Trigger) error {
	if state.Closed {
		return ErrClosed
	}
	if state.Submission.InFlight || state.Status == StatusSubmitting {
		return ErrSubmissionInFlight
	}
	if state.Status != StatusInProgress {
		return fmt.Errorf("%w: %s", ErrNotInProgress, state.Status)
	}

	if trigger == TriggerManual {
		if missing := Unanswered(state); len(missing) > 0 {
			err := &ValidationError{Unanswered: missing}
			state.Message = fmt.Sprintf("Answer every question before submitting (%d left)", len(missing))
			return err
		}
	}

	startSubmission(state, trigger)
	return nil
}

// Resubmit retries a submission from Failed once the quiz was loaded. The
// responses recorded before the failure are sent unchanged.
func Resubmit(state *State) error {
	if state.Closed {
		return ErrClosed
	}
	if state.Submission.InFlight {
		return ErrSubmissionInFlight
	}
	if state.Status != StatusFailed || state.Quiz == nil {
		return fmt.Errorf("%w: cannot resubmit from %s", ErrNotInProgress, state.Status)
	}
	startSubmission(state, TriggerResubmit)
	return nil
}

func startSubmission(state *State, trigger Trigger) {
	state.Submission.InFlight = true
	state.Submission.Trigger = trigger
	state.Submission.Attempts = 1
	state.Submission.Calls++
	state.Submission.LastErr = nil
	state.Status = StatusSubmitting
	state.Message = ""
	state.Err = nil
	state.TimerGeneration++
}

// SubmitSucceeded completes the session with the authoritative result.
func SubmitSucceeded(state *State, result quiz.SubmissionResult) error {
	if err := checkOpen(state, StatusSubmitting); err != nil {
		return err
	}
	state.Status = StatusCompleted
	state.Result = &result
	state.Submission.InFlight = false
	state.Message = ""
	state.Err = nil
	return nil
}

// SubmitFailed handles a failed remote submission and reports whether the
// caller should schedule an automatic Retry.
//
// Manual submissions, and any submission while time remains, go back to
// InProgress with the guard cleared and the countdown restarted. A
// timer-forced submission is retried up to MaxAutoRetries times before the
// session fails. Responses are kept in every case.
func SubmitFailed(state *State, err error) (retry bool) {
	if state.Closed || state.Status != StatusSubmitting {
		return false
	}
	sub := &state.Submission
	serr := &SubmissionError{Trigger: sub.Trigger, Attempt: sub.Attempts, Err: err}
	sub.LastErr = serr
	state.Err = serr

	switch {
	case sub.Trigger == TriggerResubmit:
		sub.InFlight = false
		state.Status = StatusFailed
		state.Message = fmt.Sprintf("Submission failed again: %v. Your answers are kept.", err)
		return false

	case sub.Trigger == TriggerTimer && state.Expired():
		if sub.Attempts <= state.MaxAutoRetries {
			state.Message = fmt.Sprintf("Submission failed (attempt %d), retrying...", sub.Attempts)
			return true
		}
		sub.InFlight = false
		state.Status = StatusFailed
		state.Message = fmt.Sprintf("Time is up and submission failed after %d attempts: %v. Your answers are kept.", sub.Attempts, err)
		return false

	default:
		sub.InFlight = false
		state.Status = StatusInProgress
		state.Message = fmt.Sprintf("Submission failed: %v", err)
		state.TimerGeneration++
		return false
	}
}

// Retry records another automatic attempt of a timer-forced submission.
// The guard stays set throughout.
func Retry(state *State) error {
	if err := checkOpen(state, StatusSubmitting); err != nil {
		return err
	}
	if state.Submission.Trigger != TriggerTimer {
		return fmt.Errorf("retry is only automatic for timer submissions, got %s", state.Submission.Trigger)
	}
	state.Submission.Attempts++
	state.Submission.Calls++
	return nil
}

// Teardown closes the session. The countdown is cancelled and every later
// transition is refused.
func Teardown(state *State) {
	state.Closed = true
	state.TimerGeneration++
}

// ResponseList returns the recorded responses in question order.
func ResponseList(state *State) []quiz.Response {
	out := make([]quiz.Response, 0, len(state.Responses))
	for _, q := range state.Questions {
		if r, ok := state.Responses[q.ID]; ok {
			out = append(out, r)
		}
	}
	return out
}

func questionByID(state *State, id string) (quiz.Question, bool) {
	for _, q := range state.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return quiz.Question{}, false
}

func checkOpen(state *State, want Status) error {
	if state.Closed {
		return ErrClosed
	}
	if state.Status != want {
		if want == StatusInProgress {
			return fmt.Errorf("%w: %s", ErrNotInProgress, state.Status)
		}
		return fmt.Errorf("session is %s, want %s", state.Status, want)
	}
	return nil
}
