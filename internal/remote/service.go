// Package remote talks to the education platform's quiz API. Only the
// request/response contracts live here; grading and persistence are the
// platform's concern.
package remote

import (
	"context"

	"github.com/abhisek/quizdeck/internal/quiz"
)

// QuizService is the learner-facing collaborator.
type QuizService interface {
	// FetchQuiz returns the quiz with its questions. Failures are
	// retryable by reloading.
	FetchQuiz(ctx context.Context, quizID string) (*quiz.Quiz, error)

	// SubmitResponses hands the learner's responses to the platform, which
	// returns the authoritative score.
	SubmitResponses(ctx context.Context, quizID string, responses []quiz.Response) (quiz.SubmissionResult, error)
}

// AuthoringService is the CRUD collaborator used by the editor.
type AuthoringService interface {
	CreateQuestion(ctx context.Context, quizID string, q quiz.Question) (quiz.Question, error)
	UpdateQuestion(ctx context.Context, quizID string, q quiz.Question) error
	DeleteQuestion(ctx context.Context, quizID, questionID string) error
	ReorderQuestions(ctx context.Context, quizID string, orderedIDs []string) error
}

// Service is both collaborators, as served by the platform API.
type Service interface {
	QuizService
	AuthoringService
}

type idempotencyKey struct{}

// WithIdempotencyKey attaches a key sent with submissions so the platform
// can drop duplicates of the same session.
func WithIdempotencyKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, idempotencyKey{}, key)
}

func idempotencyKeyFrom(ctx context.Context) string {
	key, _ := ctx.Value(idempotencyKey{}).(string)
	return key
}
