package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/quizdeck/ent"
	"github.com/abhisek/quizdeck/ent/pendingsubmission"
	"github.com/abhisek/quizdeck/ent/predicate"
	"github.com/abhisek/quizdeck/ent/quizsession"
	"github.com/abhisek/quizdeck/ent/sessionevent"
	"github.com/abhisek/quizdeck/internal/quiz"
)

// journalRepo implements JournalRepo on the generated ent client. Events
// take their numbers from the shared journal sequence.
type journalRepo struct {
	client *ent.Client
	seq    *sequence
}

func (r *journalRepo) StartSession(ctx context.Context, rec SessionRecord) error {
	if rec.Status == "" {
		rec.Status = SessionInProgress
	}
	if rec.StartedAt.IsZero() {
		rec.StartedAt = time.Now()
	}
	err := r.client.QuizSession.Create().
		SetID(rec.ID).
		SetQuizID(rec.QuizID).
		SetQuizTitle(rec.QuizTitle).
		SetStatus(rec.Status).
		SetSubmitTrigger(rec.Trigger).
		SetAnswered(rec.Answered).
		SetTotal(rec.Total).
		SetStartedAt(rec.StartedAt.UTC()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *journalRepo) FinishSession(ctx context.Context, sessionID string, outcome SessionOutcome) error {
	if outcome.EndedAt.IsZero() {
		outcome.EndedAt = time.Now()
	}
	upd := r.client.QuizSession.Update().
		Where(quizsession.ID(sessionID)).
		SetStatus(outcome.Status).
		SetSubmitTrigger(outcome.Trigger).
		SetAnswered(outcome.Answered).
		SetTotal(outcome.Total).
		SetEndedAt(outcome.EndedAt.UTC())
	if outcome.Result != nil {
		upd = upd.SetScore(outcome.Result.Score).SetPassed(outcome.Result.Passed)
	}
	if err := upd.Exec(ctx); err != nil {
		return fmt.Errorf("finish session: %w", err)
	}
	return nil
}

func (r *journalRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(time.Now().UTC()).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetQuestionID(data.QuestionID).
		SetDetail(data.Detail).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *journalRepo) SessionEvents(ctx context.Context, sessionID string) ([]SessionEventRecord, error) {
	rows, err := r.client.SessionEvent.Query().
		Where(sessionevent.SessionID(sessionID)).
		Order(sessionevent.BySequence()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}

	events := make([]SessionEventRecord, 0, len(rows))
	for _, e := range rows {
		events = append(events, SessionEventRecord{
			ID:        e.ID,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			SessionEventData: SessionEventData{
				SessionID:  e.SessionID,
				Action:     e.Action,
				QuestionID: e.QuestionID,
				Detail:     e.Detail,
			},
		})
	}
	return events, nil
}

func (r *journalRepo) ListSessions(ctx context.Context, opts QueryOpts) ([]SessionRecord, error) {
	var preds []predicate.QuizSession
	if !opts.From.IsZero() {
		preds = append(preds, quizsession.StartedAtGTE(opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, quizsession.StartedAtLTE(opts.To.UTC()))
	}
	q := r.client.QuizSession.Query().
		Where(preds...).
		Order(quizsession.ByStartedAt(entsql.OrderDesc()))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	out := make([]SessionRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, sessionRecord(row))
	}
	return out, nil
}

func (r *journalRepo) GetSession(ctx context.Context, sessionID string) (*SessionRecord, error) {
	row, err := r.client.QuizSession.Get(ctx, sessionID)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query session: %w", err)
	}
	rec := sessionRecord(row)
	return &rec, nil
}

func sessionRecord(row *ent.QuizSession) SessionRecord {
	return SessionRecord{
		ID:        row.ID,
		QuizID:    row.QuizID,
		QuizTitle: row.QuizTitle,
		Status:    row.Status,
		Trigger:   row.SubmitTrigger,
		Answered:  row.Answered,
		Total:     row.Total,
		Score:     row.Score,
		Passed:    row.Passed,
		StartedAt: row.StartedAt,
		EndedAt:   row.EndedAt,
	}
}

// pendingEntry is the stored form of one response. The kind travels with
// the value because values are only decodable against a kind.
type pendingEntry struct {
	QuestionID string          `json:"questionId"`
	Kind       quiz.Kind       `json:"kind"`
	Value      json.RawMessage `json:"value"`
}

func encodePending(p PendingSubmission) (string, error) {
	entries := make([]pendingEntry, 0, len(p.Responses))
	for _, resp := range p.Responses {
		kind, ok := p.Kinds[resp.QuestionID]
		if !ok {
			return "", fmt.Errorf("no kind for question %s", resp.QuestionID)
		}
		raw, err := json.Marshal(quiz.EncodeValue(resp.Value))
		if err != nil {
			return "", fmt.Errorf("encode response %s: %w", resp.QuestionID, err)
		}
		entries = append(entries, pendingEntry{QuestionID: resp.QuestionID, Kind: kind, Value: raw})
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodePending(data string, p *PendingSubmission) error {
	var entries []pendingEntry
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		return err
	}
	p.Responses = make([]quiz.Response, 0, len(entries))
	p.Kinds = make(map[string]quiz.Kind, len(entries))
	for _, e := range entries {
		v, err := quiz.DecodeValue(e.Kind, e.Value)
		if err != nil {
			return fmt.Errorf("decode response %s: %w", e.QuestionID, err)
		}
		p.Responses = append(p.Responses, quiz.Response{QuestionID: e.QuestionID, Value: v})
		p.Kinds[e.QuestionID] = e.Kind
	}
	return nil
}

// SavePending inserts the pending submission or, when the session already
// has one, replaces its responses and delivery state.
func (r *journalRepo) SavePending(ctx context.Context, p PendingSubmission) error {
	responses, err := encodePending(p)
	if err != nil {
		return fmt.Errorf("encode pending submission: %w", err)
	}
	now := time.Now().UTC()

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("save pending submission: %w", err)
	}
	exists, err := tx.PendingSubmission.Query().
		Where(pendingsubmission.ID(p.SessionID)).
		Exist(ctx)
	if err == nil && exists {
		err = tx.PendingSubmission.UpdateOneID(p.SessionID).
			SetResponses(responses).
			SetAttempts(p.Attempts).
			SetLastError(p.LastError).
			SetUpdatedAt(now).
			Exec(ctx)
	} else if err == nil {
		err = tx.PendingSubmission.Create().
			SetID(p.SessionID).
			SetQuizID(p.QuizID).
			SetResponses(responses).
			SetAttempts(p.Attempts).
			SetLastError(p.LastError).
			SetCreatedAt(now).
			SetUpdatedAt(now).
			Exec(ctx)
	}
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("save pending submission: %w", err)
	}
	return tx.Commit()
}

func pendingSubmission(row *ent.PendingSubmission) (PendingSubmission, error) {
	p := PendingSubmission{
		SessionID: row.ID,
		QuizID:    row.QuizID,
		Attempts:  row.Attempts,
		LastError: row.LastError,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if err := decodePending(row.Responses, &p); err != nil {
		return p, fmt.Errorf("pending submission %s: %w", p.SessionID, err)
	}
	return p, nil
}

func (r *journalRepo) Pending(ctx context.Context, sessionID string) (*PendingSubmission, error) {
	row, err := r.client.PendingSubmission.Get(ctx, sessionID)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("pending submission %s: %w", sessionID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query pending submission: %w", err)
	}
	p, err := pendingSubmission(row)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *journalRepo) ListPending(ctx context.Context) ([]PendingSubmission, error) {
	rows, err := r.client.PendingSubmission.Query().
		Order(pendingsubmission.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query pending submissions: %w", err)
	}

	out := make([]PendingSubmission, 0, len(rows))
	for _, row := range rows {
		p, err := pendingSubmission(row)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *journalRepo) ResolvePending(ctx context.Context, sessionID string) error {
	_, err := r.client.PendingSubmission.Delete().
		Where(pendingsubmission.ID(sessionID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("resolve pending submission: %w", err)
	}
	return nil
}
