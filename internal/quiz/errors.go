package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedKind is matched by every UnsupportedKindError.
var ErrUnsupportedKind = errors.New("unsupported question kind")

// UnsupportedKindError marks a question whose kind this client cannot
// render or evaluate. It never aborts a quiz.
type UnsupportedKindError struct {
	Kind Kind
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("unsupported question kind %q", e.Kind)
}

func (e *UnsupportedKindError) Is(target error) bool {
	return target == ErrUnsupportedKind
}

// ShapeError indicates a response value that does not fit the question kind.
type ShapeError struct {
	QuestionID string
	Kind       Kind
	Value      Value
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("question %q (%s): response of type %T does not match kind", e.QuestionID, e.Kind, e.Value)
}

// InvalidQuestionError collects every problem found while validating an
// authored question.
type InvalidQuestionError struct {
	QuestionID string
	Problems   []string
}

func (e *InvalidQuestionError) Error() string {
	id := e.QuestionID
	if id == "" {
		id = "(new)"
	}
	return fmt.Sprintf("invalid question %s: %s", id, strings.Join(e.Problems, "; "))
}
