package draft

import (
	"github.com/abhisek/quizdeck/internal/llm"
	"github.com/abhisek/quizdeck/internal/quiz"
)

// SchemaFor returns the structured-output schema for a drafted question of
// kind: the prompt text plus the kind's payload. It returns nil for kinds
// that cannot be drafted.
func SchemaFor(kind quiz.Kind) *llm.Schema {
	payload := quiz.PayloadSchema(kind)
	if payload == nil {
		return nil
	}
	return &llm.Schema{
		// Compiled schemas are cached by name, so the kind is part of it.
		Name:        "quiz-question-" + string(kind),
		Description: "A single " + kind.Label() + " quiz question with its answer key",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text": map[string]any{
					"type":        "string",
					"description": "The question prompt shown to the learner",
				},
				"payload": payload,
			},
			"required": []any{"text", "payload"},
		},
	}
}
