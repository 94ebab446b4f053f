package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/quizdeck/ent"
	"github.com/abhisek/quizdeck/ent/llmrequestevent"
	"github.com/abhisek/quizdeck/ent/predicate"
)

// eventRepo implements EventRepo on the generated ent client and the
// global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequence
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetTimestamp(time.Now().UTC()).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetQuizID(data.QuizID).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func llmEventRecord(e *ent.LLMRequestEvent) LLMRequestEventRecord {
	return LLMRequestEventRecord{
		ID:        e.ID,
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		LLMRequestEventData: LLMRequestEventData{
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			QuizID:       e.QuizID,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
			RequestBody:  e.RequestBody,
			ResponseBody: e.ResponseBody,
		},
	}
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts, filter LLMFilter) ([]LLMRequestEventRecord, error) {
	var preds []predicate.LLMRequestEvent
	if filter.Purpose != "" {
		preds = append(preds, llmrequestevent.Purpose(filter.Purpose))
	}
	if filter.QuizID != "" {
		preds = append(preds, llmrequestevent.QuizID(filter.QuizID))
	}
	if filter.FailedOnly {
		preds = append(preds, llmrequestevent.Success(false))
	}
	if opts.After > 0 {
		preds = append(preds, llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		preds = append(preds, llmrequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		preds = append(preds, llmrequestevent.TimestampGTE(opts.From.UTC()))
	}
	if !opts.To.IsZero() {
		preds = append(preds, llmrequestevent.TimestampLTE(opts.To.UTC()))
	}

	q := r.client.LLMRequestEvent.Query().
		Where(preds...).
		Order(llmrequestevent.BySequence(entsql.OrderDesc()))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	out := make([]LLMRequestEventRecord, 0, len(rows))
	for _, e := range rows {
		out = append(out, llmEventRecord(e))
	}
	return out, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error) {
	e, err := r.client.LLMRequestEvent.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM event: %w", err)
	}
	rec := llmEventRecord(e)
	return &rec, nil
}

// usageRow is one group of the usage aggregates. Aggregates are aliased
// because the scanner keys columns by the name before any parenthesis.
type usageRow struct {
	Purpose      string  `json:"purpose"`
	Model        string  `json:"model"`
	Calls        int     `json:"calls"`
	InputTokens  int     `json:"input_tokens"`
	OutputTokens int     `json:"output_tokens"`
	AvgLatency   float64 `json:"avg_latency"`
}

func usageAggregates() []ent.AggregateFunc {
	return []ent.AggregateFunc{
		ent.As(ent.Count(), "calls"),
		ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "input_tokens"),
		ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "output_tokens"),
	}
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error) {
	var rows []usageRow
	err := r.client.LLMRequestEvent.Query().
		Order(llmrequestevent.ByPurpose()).
		GroupBy(llmrequestevent.FieldPurpose).
		Aggregate(append(usageAggregates(),
			ent.As(ent.Mean(llmrequestevent.FieldLatencyMs), "avg_latency"))...).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("query LLM usage by purpose: %w", err)
	}

	out := make([]LLMUsageStats, 0, len(rows))
	for _, row := range rows {
		out = append(out, LLMUsageStats{
			Purpose:      row.Purpose,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			AvgLatencyMs: int64(row.AvgLatency),
		})
	}
	return out, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	var rows []usageRow
	err := r.client.LLMRequestEvent.Query().
		Order(llmrequestevent.ByModel()).
		GroupBy(llmrequestevent.FieldModel).
		Aggregate(usageAggregates()...).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("query LLM usage by model: %w", err)
	}

	out := make([]LLMModelUsage, 0, len(rows))
	for _, row := range rows {
		out = append(out, LLMModelUsage{
			Model:        row.Model,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
		})
	}
	return out, nil
}
