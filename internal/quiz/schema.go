package quiz

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiledSchemas caches compiled schemas by name.
var compiledSchemas sync.Map // map[string]*jsonschema.Schema

func idString() map[string]any {
	return map[string]any{"type": "string", "minLength": 1}
}

func objectOf(required []any, props map[string]any) map[string]any {
	return map[string]any{
		"type":       "object",
		"required":   required,
		"properties": props,
	}
}

func arrayOf(item map[string]any, minItems int) map[string]any {
	return map[string]any{
		"type":     "array",
		"minItems": minItems,
		"items":    item,
	}
}

func optionSchema() map[string]any {
	return objectOf([]any{"id", "text"}, map[string]any{
		"id":        idString(),
		"text":      map[string]any{"type": "string"},
		"isCorrect": map[string]any{"type": "boolean"},
	})
}

// PayloadSchema returns the JSON Schema of the payload object for kind,
// or nil for unsupported kinds.
func PayloadSchema(kind Kind) map[string]any {
	switch kind {
	case KindSingleChoice, KindMultiChoice:
		return objectOf([]any{"options"}, map[string]any{
			"options": arrayOf(optionSchema(), 2),
		})
	case KindTrueFalse:
		opts := arrayOf(optionSchema(), 2)
		opts["maxItems"] = 2
		return objectOf([]any{"options"}, map[string]any{"options": opts})
	case KindTextCompletion:
		return objectOf([]any{"answers"}, map[string]any{
			"answers": arrayOf(objectOf([]any{"id", "value"}, map[string]any{
				"id":    idString(),
				"value": map[string]any{"type": "string"},
			}), 1),
		})
	case KindOrdering:
		return objectOf([]any{"items"}, map[string]any{
			"items": arrayOf(objectOf([]any{"id", "text"}, map[string]any{
				"id":              idString(),
				"text":            map[string]any{"type": "string"},
				"correctPosition": map[string]any{"type": "integer", "minimum": 0},
			}), 2),
		})
	case KindAssociation:
		return objectOf([]any{"items", "targets"}, map[string]any{
			"items": arrayOf(objectOf([]any{"id", "text"}, map[string]any{
				"id":   idString(),
				"text": map[string]any{"type": "string"},
			}), 1),
			"targets": arrayOf(objectOf([]any{"id", "text"}, map[string]any{
				"id":             idString(),
				"text":           map[string]any{"type": "string"},
				"expectedItemId": map[string]any{"type": "string"},
			}), 1),
		})
	}
	return nil
}

func questionEnvelopeSchema() map[string]any {
	return objectOf([]any{"id", "text", "kind", "payload"}, map[string]any{
		"id":      idString(),
		"text":    map[string]any{"type": "string"},
		"kind":    map[string]any{"type": "string", "minLength": 1},
		"payload": map[string]any{"type": "object"},
	})
}

func quizSchema() map[string]any {
	return objectOf([]any{"id", "title", "questions"}, map[string]any{
		"id":              idString(),
		"title":           map[string]any{"type": "string"},
		"description":     map[string]any{"type": "string"},
		"durationMinutes": map[string]any{"type": []any{"integer", "null"}, "minimum": 0},
		"questions":       map[string]any{"type": "array"},
	})
}

// ValidateQuizDocument checks a raw quiz document: the envelope, every
// question envelope, and the payload of every supported question.
// Questions of unknown kinds pass so they can render as placeholders.
func ValidateQuizDocument(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := validateAgainst("quiz", quizSchema(), doc); err != nil {
		return err
	}
	obj, _ := doc.(map[string]any)
	questions, _ := obj["questions"].([]any)
	for i, q := range questions {
		if err := validateQuestionValue(q); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return nil
}

// ValidateQuestionDocument checks a single raw question document.
func ValidateQuestionDocument(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return validateQuestionValue(doc)
}

func validateQuestionValue(doc any) error {
	if err := validateAgainst("question", questionEnvelopeSchema(), doc); err != nil {
		return err
	}
	obj := doc.(map[string]any)
	kindStr, _ := obj["kind"].(string)
	kind := Kind(kindStr)
	if !kind.Supported() {
		return nil
	}
	return validateAgainst("payload-"+kindStr, PayloadSchema(kind), obj["payload"])
}

func validateAgainst(name string, definition map[string]any, doc any) error {
	compiled, err := compiledSchema(name, definition)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", name, err)
	}
	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("schema %s: %w", name, err)
	}
	return nil
}

func compiledSchema(name string, definition map[string]any) (*jsonschema.Schema, error) {
	if cached, ok := compiledSchemas.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants plain decoded JSON values, not Go maps of typed
	// slices, so round-trip the definition.
	defBytes, err := json.Marshal(definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://quizdeck/%s.json", name)
	if err := c.AddResource(url, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	compiledSchemas.Store(name, compiled)
	return compiled, nil
}
