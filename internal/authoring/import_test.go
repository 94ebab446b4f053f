package authoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizdeck/internal/quiz"
)

const importQuestion = `{"id": "a", "text": "Capital of Spain?", "kind": "single_choice",
  "payload": {"options": [{"id": "1", "text": "Lisbon"}, {"id": "2", "text": "Madrid", "isCorrect": true}]}}`

func TestParseImport(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		count int
	}{
		{"single question", importQuestion, 1},
		{"array", "[" + importQuestion + "," + importQuestion + "]", 2},
		{"quiz", `{"id": "q", "title": "Capitals", "questions": [` + importQuestion + `]}`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qs, err := ParseImport([]byte(tt.doc))
			require.NoError(t, err)
			require.Len(t, qs, tt.count)
			assert.Equal(t, quiz.KindSingleChoice, qs[0].Kind)
			assert.IsType(t, quiz.SingleChoicePayload{}, qs[0].Payload)
		})
	}
}

func TestParseImportErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", "  "},
		{"empty array", "[]"},
		{"scalar", `"question"`},
		{"bad payload", `{"id": "a", "text": "Order", "kind": "ordering", "payload": {"items": []}}`},
		{"unsupported kind", `{"id": "a", "text": "Essay", "kind": "essay", "payload": {}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseImport([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}
