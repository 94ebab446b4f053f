package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/remote"
	"github.com/abhisek/quizdeck/internal/store"
)

// Journal writes session progress to the local store. A Journal with a nil
// repo records nothing. Write failures are logged and never change the
// session.
type Journal struct {
	repo   store.JournalRepo
	logger *slog.Logger
}

// NewJournal returns a Journal backed by repo.
func NewJournal(repo store.JournalRepo, logger *slog.Logger) *Journal {
	if logger == nil {
		logger = slog.Default()
	}
	return &Journal{repo: repo, logger: logger}
}

func (j *Journal) enabled() bool { return j != nil && j.repo != nil }

func (j *Journal) warn(msg string, state *State, err error) {
	j.warnSession(msg, state.ID, err)
}

func (j *Journal) warnSession(msg, sessionID string, err error) {
	if err != nil {
		j.logger.Warn(msg, "session", sessionID, "error", err)
	}
}

// event appends to a session's journal when only its id is known.
func (j *Journal) event(ctx context.Context, sessionID, action, detail string) {
	err := j.repo.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID: sessionID,
		Action:    action,
		Detail:    detail,
	})
	j.warnSession("journal event failed", sessionID, err)
}

// Started records a session that has just loaded its quiz.
func (j *Journal) Started(ctx context.Context, state *State) {
	if !j.enabled() || state.Quiz == nil {
		return
	}
	err := j.repo.StartSession(ctx, store.SessionRecord{
		ID:        state.ID,
		QuizID:    state.Quiz.ID,
		QuizTitle: state.Quiz.Title,
		Status:    store.SessionInProgress,
		Total:     len(state.Questions),
		StartedAt: state.StartedAt,
	})
	j.warn("journal start failed", state, err)
	j.Event(ctx, state, store.ActionStart, "", "")
}

// Event appends one entry to the session's journal.
func (j *Journal) Event(ctx context.Context, state *State, action, questionID, detail string) {
	if !j.enabled() {
		return
	}
	err := j.repo.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:  state.ID,
		Action:     action,
		QuestionID: questionID,
		Detail:     detail,
	})
	j.warn("journal event failed", state, err)
}

// Finished stores the final status of a session. Sessions that never loaded
// are not journaled.
func (j *Journal) Finished(ctx context.Context, state *State, status string, now time.Time) {
	if !j.enabled() || state.Quiz == nil {
		return
	}
	err := j.repo.FinishSession(ctx, state.ID, store.SessionOutcome{
		Status:   status,
		Trigger:  state.Submission.Trigger.String(),
		Answered: AnsweredCount(state),
		Total:    len(state.Questions),
		Result:   state.Result,
		EndedAt:  now,
	})
	j.warn("journal finish failed", state, err)
}

// SavePending keeps the session's responses so they can be resubmitted
// later.
func (j *Journal) SavePending(ctx context.Context, state *State, lastErr error) {
	if !j.enabled() || state.Quiz == nil {
		return
	}
	p := store.PendingSubmission{
		SessionID: state.ID,
		QuizID:    state.Quiz.ID,
		Responses: ResponseList(state),
		Kinds:     make(map[string]quiz.Kind, len(state.Questions)),
		Attempts:  state.Submission.Calls,
	}
	for _, q := range state.Questions {
		p.Kinds[q.ID] = q.Kind
	}
	if lastErr != nil {
		p.LastError = lastErr.Error()
	}
	j.warn("saving pending submission failed", state, j.repo.SavePending(ctx, p))
}

// ErrNothingPending is returned by ResendPending when a session has no
// stored submission.
var ErrNothingPending = errors.New("no pending submission for session")

// ResendPending submits the stored responses of a failed session again.
// On success the pending entry is resolved and the session completed; on
// failure the attempt is counted and the entry kept. Journal write failures
// are logged to the default logger.
func ResendPending(ctx context.Context, svc remote.QuizService, repo store.JournalRepo, sessionID string) (quiz.SubmissionResult, error) {
	p, err := repo.Pending(ctx, sessionID)
	if errors.Is(err, store.ErrNotFound) {
		return quiz.SubmissionResult{}, ErrNothingPending
	}
	if err != nil {
		return quiz.SubmissionResult{}, err
	}

	j := NewJournal(repo, nil)
	j.event(ctx, sessionID, store.ActionSubmitAttempt, TriggerResubmit.String())

	result, err := svc.SubmitResponses(remote.WithIdempotencyKey(ctx, sessionID), p.QuizID, p.Responses)
	if err != nil {
		p.Attempts++
		p.LastError = err.Error()
		if serr := repo.SavePending(ctx, *p); serr != nil {
			return quiz.SubmissionResult{}, errors.Join(err, serr)
		}
		j.event(ctx, sessionID, store.ActionSubmitFailed, err.Error())
		return quiz.SubmissionResult{}, &SubmissionError{Trigger: TriggerResubmit, Attempt: p.Attempts, Err: err}
	}

	j.event(ctx, sessionID, store.ActionSubmitted, fmt.Sprintf("score=%.2f passed=%t", result.Score, result.Passed))
	outcome := store.SessionOutcome{
		Status:   store.SessionCompleted,
		Trigger:  TriggerResubmit.String(),
		Answered: len(p.Responses),
		Result:   &result,
	}
	if rec, gerr := repo.GetSession(ctx, sessionID); gerr == nil {
		outcome.Total = rec.Total
	}
	if err := repo.FinishSession(ctx, sessionID, outcome); err != nil {
		return result, err
	}
	return result, repo.ResolvePending(ctx, sessionID)
}

// Resolved drops the pending submission of a session once delivered.
func (j *Journal) Resolved(ctx context.Context, state *State) {
	if !j.enabled() {
		return
	}
	err := j.repo.ResolvePending(ctx, state.ID)
	if errors.Is(err, store.ErrNotFound) {
		return
	}
	j.warn("resolving pending submission failed", state, err)
}
