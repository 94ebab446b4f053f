package llm

import "context"

type contextKey int

const (
	purposeKey contextKey = iota
	quizKey
)

// WithPurpose labels requests made with ctx in the LLM event log.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok && v != "" {
		return v
	}
	return "unknown"
}

// WithQuiz records which quiz a request was made for.
func WithQuiz(ctx context.Context, quizID string) context.Context {
	return context.WithValue(ctx, quizKey, quizID)
}

// QuizFrom returns the quiz id set by WithQuiz, or "".
func QuizFrom(ctx context.Context) string {
	v, _ := ctx.Value(quizKey).(string)
	return v
}
