// Package draft asks an LLM to write a question of a requested kind. The
// result is validated like any hand-written question before the author
// sees it.
package draft

import (
	"context"

	"github.com/abhisek/quizdeck/internal/quiz"
)

// Generator produces draft questions.
type Generator interface {
	// Draft produces a single question for input that has passed every
	// configured check.
	Draft(ctx context.Context, input Input) (quiz.Question, error)
}

// Input describes the question wanted.
type Input struct {
	// QuizID tags the request in the LLM event log.
	QuizID string

	Kind  quiz.Kind
	Topic string

	// Audience is a free-form description of the learners, e.g.
	// "first-year chemistry students".
	Audience string

	// Notes are extra instructions from the author.
	Notes string

	// PriorQuestions are prompts already in the quiz, to avoid repeats.
	PriorQuestions []string
}
