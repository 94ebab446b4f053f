package authoring

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/quizdeck/internal/quiz"
)

// ErrEmptyImport is returned when an import document holds no questions.
var ErrEmptyImport = errors.New("no questions to import")

// ParseImport reads questions from a JSON document holding a single
// question, an array of questions, or a whole quiz. Every question is
// checked against the question schema before it is decoded.
func ParseImport(data []byte) ([]quiz.Question, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrEmptyImport
	}

	var docs []json.RawMessage
	switch data[0] {
	case '[':
		if err := json.Unmarshal(data, &docs); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
	case '{':
		var envelope struct {
			Questions json.RawMessage `json:"questions"`
		}
		if err := json.Unmarshal(data, &envelope); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		if envelope.Questions == nil {
			docs = []json.RawMessage{data}
			break
		}
		if err := quiz.ValidateQuizDocument(data); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(envelope.Questions, &docs); err != nil {
			return nil, fmt.Errorf("invalid questions: %w", err)
		}
	default:
		return nil, fmt.Errorf("expected a JSON object or array")
	}

	if len(docs) == 0 {
		return nil, ErrEmptyImport
	}

	questions := make([]quiz.Question, 0, len(docs))
	for i, doc := range docs {
		if err := quiz.ValidateQuestionDocument(doc); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
		var q quiz.Question
		if err := json.Unmarshal(doc, &q); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
		if !q.Kind.Supported() {
			return nil, fmt.Errorf("question %d: %w: %s", i+1, ErrUnsupportedKind, q.Kind)
		}
		questions = append(questions, q)
	}
	return questions, nil
}
