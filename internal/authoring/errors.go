package authoring

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrKindMismatch     = errors.New("payload kind does not match question kind")
	ErrUnsupportedKind  = errors.New("question kind cannot be authored")
)

// InvalidDraftError lists every draft question that failed validation.
// Nothing is sent to the platform while one exists.
type InvalidDraftError struct {
	// QuestionIDs is in draft order; Errs is keyed by question id.
	QuestionIDs []string
	Errs        map[string]error
}

func (e *InvalidDraftError) Error() string {
	parts := make([]string, 0, len(e.QuestionIDs))
	for _, id := range e.QuestionIDs {
		parts = append(parts, e.Errs[id].Error())
	}
	return fmt.Sprintf("%d invalid question(s): %s", len(e.QuestionIDs), strings.Join(parts, "; "))
}

// SaveError reports the remote call that stopped a save.
type SaveError struct {
	Op         string // create, update, delete, reorder
	QuestionID string
	Err        error
}

func (e *SaveError) Error() string {
	if e.QuestionID == "" {
		return fmt.Sprintf("%s questions: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s question %s: %v", e.Op, e.QuestionID, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }
