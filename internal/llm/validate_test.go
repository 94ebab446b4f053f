package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func optionListSchema() *Schema {
	return &Schema{
		Name: "test-options",
		Definition: map[string]any{
			"type":     "object",
			"required": []any{"text", "options"},
			"properties": map[string]any{
				"text": map[string]any{"type": "string", "minLength": 1},
				"options": map[string]any{
					"type":     "array",
					"minItems": 2,
					"items": map[string]any{
						"type":     "object",
						"required": []any{"id", "isCorrect"},
						"properties": map[string]any{
							"id":        map[string]any{"type": "string"},
							"isCorrect": map[string]any{"type": "boolean"},
						},
					},
				},
				"difficulty": map[string]any{"type": "string", "enum": []any{"easy", "hard"}},
			},
		},
	}
}

func TestSchemaCheck(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		valid bool
	}{
		{"valid", `{"text":"Pick","options":[{"id":"a","isCorrect":true},{"id":"b","isCorrect":false}]}`, true},
		{"optional enum", `{"text":"Pick","difficulty":"easy","options":[{"id":"a","isCorrect":true},{"id":"b","isCorrect":false}]}`, true},
		{"bad enum", `{"text":"Pick","difficulty":"medium","options":[{"id":"a","isCorrect":true},{"id":"b","isCorrect":false}]}`, false},
		{"too few options", `{"text":"Pick","options":[{"id":"a","isCorrect":true}]}`, false},
		{"nested type", `{"text":"Pick","options":[{"id":"a","isCorrect":"yes"},{"id":"b","isCorrect":false}]}`, false},
		{"missing text", `{"options":[{"id":"a","isCorrect":true},{"id":"b","isCorrect":false}]}`, false},
		{"malformed", `{"text":`, false},
		{"empty", ``, false},
	}
	schema := optionListSchema()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schema.Check(json.RawMessage(tt.raw))
			if tt.valid {
				assert.NoError(t, err)
				return
			}
			var e *Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, CodeInvalidOutput, e.Code)
			assert.Equal(t, tt.raw, string(e.Content))
		})
	}
}

func TestSchemaCheck_CachesByName(t *testing.T) {
	s := optionListSchema()
	require.NoError(t, s.Check(json.RawMessage(`{"text":"x","options":[{"id":"a","isCorrect":true},{"id":"b","isCorrect":true}]}`)))

	first, ok := compiled.Load(s.Name)
	require.True(t, ok)
	again, err := s.compile()
	require.NoError(t, err)
	assert.Same(t, first, again)
}

func TestComplete(t *testing.T) {
	req := Request{Schema: optionListSchema()}

	_, err := complete(req, json.RawMessage(`{"text":"x"}`), StopMaxTokens, Usage{}, "m")
	code, _ := CodeOf(err)
	assert.Equal(t, CodeTruncated, code, "truncation wins over schema errors")

	_, err = complete(req, json.RawMessage(`{"text":"x"}`), StopEnd, Usage{}, "m")
	code, _ = CodeOf(err)
	assert.Equal(t, CodeInvalidOutput, code)

	resp, err := complete(Request{}, json.RawMessage(`plain words`), StopEnd, Usage{InputTokens: 2}, "m")
	require.NoError(t, err)
	assert.Equal(t, "plain words", string(resp.Content))
	assert.Equal(t, "m", resp.Model)
}
