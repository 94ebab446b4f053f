package quiz

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleQuiz = `{
  "id": "q-1",
  "title": "Capitals",
  "durationMinutes": 1,
  "questions": [
    {"id": "a", "text": "Capital of Spain?", "kind": "single_choice",
     "payload": {"options": [{"id": "1", "text": "Lisbon"}, {"id": "2", "text": "Madrid", "isCorrect": true}]}},
    {"id": "b", "text": "Type the capital of France", "kind": "text_completion",
     "payload": {"answers": [{"id": "r1", "value": "Paris"}]}},
    {"id": "c", "text": "Order by size", "kind": "ordering",
     "payload": {"items": [{"id": "1", "text": "Mouse", "correctPosition": 1}, {"id": "2", "text": "Ant", "correctPosition": 0}]}},
    {"id": "d", "text": "Match", "kind": "association",
     "payload": {"items": [{"id": "7", "text": "Rome"}, {"id": "9", "text": "Oslo"}],
                 "targets": [{"id": "t1", "text": "Italy", "expectedItemId": "7"}]}},
    {"id": "e", "text": "Write an essay", "kind": "essay", "payload": {"words": 300}}
  ]
}`

func TestDecodeQuiz(t *testing.T) {
	require.NoError(t, ValidateQuizDocument([]byte(sampleQuiz)))

	var q Quiz
	require.NoError(t, json.Unmarshal([]byte(sampleQuiz), &q))

	assert.Equal(t, "Capitals", q.Title)
	require.NotNil(t, q.DurationMinutes)
	assert.Equal(t, 1, *q.DurationMinutes)
	assert.True(t, q.Timed())
	require.Len(t, q.Questions, 5)

	single, ok := q.Questions[0].Payload.(SingleChoicePayload)
	require.True(t, ok, "payload type %T", q.Questions[0].Payload)
	assert.True(t, single.Options[1].IsCorrect)

	ordering := q.Questions[2].Payload.(OrderingPayload)
	assert.Equal(t, 1, ordering.Items[0].CorrectPosition)

	unsupported, ok := q.Questions[4].Payload.(UnsupportedPayload)
	require.True(t, ok)
	assert.Equal(t, Kind("essay"), unsupported.Kind())
	assert.JSONEq(t, `{"words": 300}`, string(unsupported.Raw))
}

func TestQuestionJSONKeepsUnsupportedPayload(t *testing.T) {
	var q Question
	require.NoError(t, json.Unmarshal([]byte(`{"id":"x","text":"t","kind":"hotspot","payload":{"x":1}}`), &q))

	out, err := json.Marshal(q)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"x","text":"t","kind":"hotspot","payload":{"x":1}}`, string(out))
}

func TestValidateQuizDocument_RejectsMismatchedPayload(t *testing.T) {
	doc := `{"id":"q","title":"t","questions":[
		{"id":"a","text":"?","kind":"ordering","payload":{"options":[{"id":"1","text":"x"}]}}]}`
	err := ValidateQuizDocument([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "question 1")
}

func TestValidateQuizDocument_TrueFalseNeedsTwoOptions(t *testing.T) {
	doc := `{"id":"q","title":"t","questions":[
		{"id":"a","text":"?","kind":"true_false","payload":{"options":[
			{"id":"1","text":"a"},{"id":"2","text":"b"},{"id":"3","text":"c"}]}}]}`
	assert.Error(t, ValidateQuizDocument([]byte(doc)))
}

func TestResponseJSON(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		resp Response
		want string
	}{
		{"single", KindSingleChoice, Response{QuestionID: "a", Value: SingleValue{ID: "2"}}, `{"questionId":"a","value":"2"}`},
		{"set", KindMultiChoice, Response{QuestionID: "b", Value: SetValue{IDs: []string{"1", "3"}}}, `{"questionId":"b","value":["1","3"]}`},
		{"text", KindTextCompletion, Response{QuestionID: "c", Value: TextValue{Text: " Madrid "}}, `{"questionId":"c","value":" Madrid "}`},
		{"sequence", KindOrdering, Response{QuestionID: "d", Value: SequenceValue{IDs: []string{"2", "1"}}}, `{"questionId":"d","value":["2","1"]}`},
		{"mapping", KindAssociation, Response{QuestionID: "e", Value: MappingValue{Placements: map[string]string{"7": "t1"}}}, `{"questionId":"e","value":{"7":"t1"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := json.Marshal(tt.resp)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(out))

			back, err := DecodeResponse(tt.kind, out)
			require.NoError(t, err)
			assert.Equal(t, tt.resp, back)
		})
	}
}

func TestDecodeValue_UnsupportedKind(t *testing.T) {
	_, err := DecodeValue("essay", json.RawMessage(`"x"`))
	assert.ErrorIs(t, err, ErrUnsupportedKind)
}

func TestCheckResponse(t *testing.T) {
	q := NewQuestion("a", "Pick", SingleChoicePayload{Options: []Option{{ID: "1", Text: "x", IsCorrect: true}, {ID: "2", Text: "y"}}})

	assert.NoError(t, CheckResponse(q, Response{QuestionID: "a", Value: SingleValue{ID: "1"}}))

	var shapeErr *ShapeError
	assert.ErrorAs(t, CheckResponse(q, Response{QuestionID: "a", Value: TextValue{Text: "x"}}), &shapeErr)
	assert.Error(t, CheckResponse(q, Response{QuestionID: "b", Value: SingleValue{ID: "1"}}))

	essay := Question{ID: "e", Text: "Essay", Kind: "essay", Payload: UnsupportedPayload{DeclaredKind: "essay"}}
	assert.True(t, errors.Is(CheckResponse(essay, Response{QuestionID: "e", Value: TextValue{}}), ErrUnsupportedKind))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		q       Question
		wantErr string
	}{
		{
			name: "valid single choice",
			q: NewQuestion("a", "Pick one", SingleChoicePayload{Options: []Option{
				{ID: "1", Text: "A"}, {ID: "2", Text: "B", IsCorrect: true},
			}}),
		},
		{
			name: "single choice with two correct",
			q: NewQuestion("a", "Pick one", SingleChoicePayload{Options: []Option{
				{ID: "1", Text: "A", IsCorrect: true}, {ID: "2", Text: "B", IsCorrect: true},
			}}),
			wantErr: "exactly 1 option must be correct",
		},
		{
			name: "multi choice without correct",
			q: NewQuestion("a", "Pick", MultiChoicePayload{Options: []Option{
				{ID: "1", Text: "A"}, {ID: "2", Text: "B"},
			}}),
			wantErr: "at least 1 option must be correct",
		},
		{
			name:    "payload does not match kind",
			q:       Question{ID: "a", Text: "Order", Kind: KindOrdering, Payload: SingleChoicePayload{}},
			wantErr: "payload is single_choice but question kind is ordering",
		},
		{
			name: "ordering positions not a permutation",
			q: NewQuestion("a", "Order", OrderingPayload{Items: []OrderableItem{
				{ID: "1", Text: "x", CorrectPosition: 0}, {ID: "2", Text: "y", CorrectPosition: 0},
			}}),
			wantErr: "correct position 0 used twice",
		},
		{
			name: "association expects unknown item",
			q: NewQuestion("a", "Match", AssociationPayload{
				Items:   []DraggableItem{{ID: "7", Text: "Rome"}},
				Targets: []DropTarget{{ID: "t1", Text: "Italy", ExpectedItemID: "8"}},
			}),
			wantErr: `expects unknown item "8"`,
		},
		{
			name:    "missing text",
			q:       NewQuestion("a", "", TextCompletionPayload{Answers: []ReferenceAnswer{{ID: "r", Value: "x"}}}),
			wantErr: "Text is required",
		},
		{
			name:    "blank reference answer",
			q:       NewQuestion("a", "Fill", TextCompletionPayload{Answers: []ReferenceAnswer{{ID: "r", Value: "   "}}}),
			wantErr: "is blank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.q.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var invalid *InvalidQuestionError
			require.ErrorAs(t, err, &invalid)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_UnsupportedKind(t *testing.T) {
	q := Question{ID: "x", Text: "?", Kind: "hotspot", Payload: UnsupportedPayload{DeclaredKind: "hotspot"}}
	assert.ErrorIs(t, q.Validate(), ErrUnsupportedKind)
}

func TestWithKindCreatesNewQuestion(t *testing.T) {
	q := NewQuestion("a", "Pick", SingleChoicePayload{Options: []Option{{ID: "1", Text: "x", IsCorrect: true}}})
	changed := q.WithKind("b", KindOrdering)

	assert.Equal(t, "b", changed.ID)
	assert.Equal(t, KindOrdering, changed.Kind)
	assert.IsType(t, OrderingPayload{}, changed.Payload)
	assert.Equal(t, KindSingleChoice, q.Kind, "original must be untouched")
}

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(nil))
	assert.True(t, IsBlank(SingleValue{}))
	assert.True(t, IsBlank(MappingValue{}))
	assert.True(t, IsBlank(TextValue{Text: " \t\n"}), "whitespace can never match a reference answer")
	assert.False(t, IsBlank(TextValue{Text: " Paris "}))
	assert.False(t, IsBlank(SequenceValue{IDs: []string{"1"}}))
}
