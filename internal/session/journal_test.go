package session

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/store"
)

type stubQuizService struct {
	err    error
	result quiz.SubmissionResult
	got    []quiz.Response
}

func (s *stubQuizService) FetchQuiz(context.Context, string) (*quiz.Quiz, error) {
	return nil, errors.New("not used")
}

func (s *stubQuizService) SubmitResponses(_ context.Context, _ string, responses []quiz.Response) (quiz.SubmissionResult, error) {
	s.got = responses
	return s.result, s.err
}

func openJournal(t *testing.T) store.JournalRepo {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st.JournalRepo()
}

func failedSession(t *testing.T, repo store.JournalRepo) *State {
	t.Helper()
	ctx := context.Background()
	state := startedState(t, nil)
	j := NewJournal(repo, nil)
	j.Started(ctx, state)

	require.NoError(t, Record(state, quiz.Response{QuestionID: "q1", Value: quiz.SingleValue{ID: "2"}}))
	require.NoError(t, Record(state, quiz.Response{QuestionID: "q2", Value: quiz.TextValue{Text: "Paris"}}))
	require.NoError(t, Record(state, quiz.Response{QuestionID: "q3", Value: quiz.SequenceValue{IDs: []string{"a", "b"}}}))

	state.Status = StatusFailed
	j.SavePending(ctx, state, errors.New("network down"))
	j.Finished(ctx, state, store.SessionFailed, time.Now())
	return state
}

func TestJournal_StartedAndFinished(t *testing.T) {
	repo := openJournal(t)
	ctx := context.Background()
	state := failedSession(t, repo)

	rec, err := repo.GetSession(ctx, state.ID)
	require.NoError(t, err)
	assert.Equal(t, store.SessionFailed, rec.Status)
	assert.Equal(t, "Geography", rec.QuizTitle)
	assert.Equal(t, 3, rec.Answered)
	assert.Equal(t, 3, rec.Total)

	events, err := repo.SessionEvents(ctx, state.ID)
	require.NoError(t, err)
	require.NotEmpty(t, events)
	assert.Equal(t, store.ActionStart, events[0].Action)
}

func TestJournal_NilRepoIsNoop(t *testing.T) {
	state := startedState(t, nil)
	var j *Journal
	j.Started(context.Background(), state)
	NewJournal(nil, nil).Finished(context.Background(), state, store.SessionCompleted, time.Now())
}

func TestResendPending_Success(t *testing.T) {
	repo := openJournal(t)
	ctx := context.Background()
	state := failedSession(t, repo)

	svc := &stubQuizService{result: quiz.SubmissionResult{Score: 1, Passed: true}}
	result, err := ResendPending(ctx, svc, repo, state.ID)
	require.NoError(t, err)
	assert.True(t, result.Passed)
	assert.Len(t, svc.got, 3)

	_, err = repo.Pending(ctx, state.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	rec, err := repo.GetSession(ctx, state.ID)
	require.NoError(t, err)
	assert.Equal(t, store.SessionCompleted, rec.Status)
	require.NotNil(t, rec.Passed)
	assert.True(t, *rec.Passed)
}

func TestResendPending_FailureKeepsEntry(t *testing.T) {
	repo := openJournal(t)
	ctx := context.Background()
	state := failedSession(t, repo)

	svc := &stubQuizService{err: errors.New("still down")}
	_, err := ResendPending(ctx, svc, repo, state.ID)
	var serr *SubmissionError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, TriggerResubmit, serr.Trigger)

	p, err := repo.Pending(ctx, state.ID)
	require.NoError(t, err)
	assert.Equal(t, "still down", p.LastError)
	assert.Len(t, p.Responses, 3)
}

type failingEvents struct {
	store.JournalRepo
}

func (failingEvents) AppendSessionEvent(context.Context, store.SessionEventData) error {
	return errors.New("disk full")
}

func TestResendPending_LogsJournalWriteFailures(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	repo := openJournal(t)
	state := failedSession(t, repo)

	svc := &stubQuizService{result: quiz.SubmissionResult{Score: 1, Passed: true}}
	result, err := ResendPending(context.Background(), svc, failingEvents{repo}, state.ID)
	require.NoError(t, err)
	assert.True(t, result.Passed)

	out := buf.String()
	assert.Contains(t, out, "journal event failed")
	assert.Contains(t, out, "disk full")
	assert.Contains(t, out, state.ID)
}

func TestResendPending_NothingPending(t *testing.T) {
	repo := openJournal(t)
	_, err := ResendPending(context.Background(), &stubQuizService{}, repo, "missing")
	assert.ErrorIs(t, err, ErrNothingPending)
}
