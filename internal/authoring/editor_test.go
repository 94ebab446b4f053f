package authoring

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/ui/widgets"
)

// fakeService records authoring calls and can fail one operation.
type fakeService struct {
	calls  []string
	order  []string
	failOp string
	rename map[string]string
}

func (f *fakeService) fail(op string) error {
	if op == f.failOp {
		return errors.New("platform unavailable")
	}
	return nil
}

func (f *fakeService) CreateQuestion(_ context.Context, _ string, q quiz.Question) (quiz.Question, error) {
	f.calls = append(f.calls, "create "+q.ID)
	if err := f.fail("create"); err != nil {
		return quiz.Question{}, err
	}
	if id, ok := f.rename[q.ID]; ok {
		q.ID = id
	}
	return q, nil
}

func (f *fakeService) UpdateQuestion(_ context.Context, _ string, q quiz.Question) error {
	f.calls = append(f.calls, "update "+q.ID)
	return f.fail("update")
}

func (f *fakeService) DeleteQuestion(_ context.Context, _, id string) error {
	f.calls = append(f.calls, "delete "+id)
	return f.fail("delete")
}

func (f *fakeService) ReorderQuestions(_ context.Context, _ string, ids []string) error {
	f.calls = append(f.calls, "reorder")
	f.order = ids
	return f.fail("reorder")
}

func sequentialIDs() Option {
	n := 0
	return WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("new-%d", n)
	})
}

func singleChoice(id string) quiz.Question {
	return quiz.NewQuestion(id, "Capital of Spain?", quiz.SingleChoicePayload{Options: []quiz.Option{
		{ID: "1", Text: "Lisbon"}, {ID: "2", Text: "Madrid", IsCorrect: true},
	}})
}

func textQuestion(id string) quiz.Question {
	return quiz.NewQuestion(id, "Capital of France?", quiz.TextCompletionPayload{
		Answers: []quiz.ReferenceAnswer{{ID: "r1", Value: "Paris"}},
	})
}

func TestAddUsesBlankPayload(t *testing.T) {
	e := NewEditor("quiz", nil, sequentialIDs())

	q, err := e.Add(quiz.KindOrdering, "Order these")
	require.NoError(t, err)
	assert.Equal(t, "new-1", q.ID)
	assert.IsType(t, quiz.OrderingPayload{}, q.Payload)
	assert.Equal(t, 1, e.Len())

	_, err = e.Add("essay", "Write")
	assert.ErrorIs(t, err, ErrUnsupportedKind)
}

func TestChangeKindCreatesNewID(t *testing.T) {
	e := NewEditor("quiz", []quiz.Question{singleChoice("a"), textQuestion("b")}, sequentialIDs())

	q, err := e.ChangeKind("a", quiz.KindAssociation)
	require.NoError(t, err)
	assert.Equal(t, "new-1", q.ID)
	assert.Equal(t, quiz.KindAssociation, q.Kind)
	assert.Equal(t, "Capital of Spain?", q.Text)

	qs := e.Questions()
	assert.Equal(t, "new-1", qs[0].ID, "position is kept")
	_, found := e.Question("a")
	assert.False(t, found)

	plan := e.Plan()
	assert.Equal(t, []string{"a"}, plan.Deletes)
	assert.Equal(t, []string{"new-1"}, plan.Creates)
}

func TestChangeKindSameKindIsNoop(t *testing.T) {
	e := NewEditor("quiz", []quiz.Question{singleChoice("a")}, sequentialIDs())
	q, err := e.ChangeKind("a", quiz.KindSingleChoice)
	require.NoError(t, err)
	assert.Equal(t, "a", q.ID)
	assert.False(t, e.Dirty())
}

func TestSetPayloadRejectsOtherKind(t *testing.T) {
	e := NewEditor("quiz", []quiz.Question{singleChoice("a")})

	err := e.SetPayload("a", quiz.OrderingPayload{})
	assert.ErrorIs(t, err, ErrKindMismatch)

	err = e.SetPayload("missing", quiz.SingleChoicePayload{})
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestMoveBoundaries(t *testing.T) {
	e := NewEditor("quiz", []quiz.Question{singleChoice("a"), textQuestion("b")})

	assert.False(t, e.MoveUp("a"))
	assert.False(t, e.MoveDown("b"))
	assert.True(t, e.MoveDown("a"))
	assert.Equal(t, "b", e.Questions()[0].ID)
	assert.True(t, e.Plan().Reorder)
	assert.True(t, e.MoveUp("a"))
	assert.False(t, e.Dirty())
}

func TestValidateCollectsEveryInvalidQuestion(t *testing.T) {
	e := NewEditor("quiz", []quiz.Question{singleChoice("a")}, sequentialIDs())
	_, err := e.Add(quiz.KindMultiChoice, "Pick")
	require.NoError(t, err)
	_, err = e.Add(quiz.KindTextCompletion, "")
	require.NoError(t, err)

	err = e.Validate()
	var invalid *InvalidDraftError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, []string{"new-1", "new-2"}, invalid.QuestionIDs)
}

func TestSaveRefusesInvalidDraft(t *testing.T) {
	e := NewEditor("quiz", nil, sequentialIDs())
	_, err := e.Add(quiz.KindSingleChoice, "Pick")
	require.NoError(t, err)

	svc := &fakeService{}
	_, err = e.Save(context.Background(), svc)
	var invalid *InvalidDraftError
	require.ErrorAs(t, err, &invalid)
	assert.Empty(t, svc.calls, "nothing may reach the platform")
}

func TestSaveSyncsInOrder(t *testing.T) {
	e := NewEditor("quiz", []quiz.Question{singleChoice("a"), textQuestion("b"), textQuestion("c")}, sequentialIDs())

	require.NoError(t, e.Delete("b"))
	require.NoError(t, e.SetText("c", "Capital of Italy?"))
	require.NoError(t, e.SetPayload("c", quiz.TextCompletionPayload{Answers: []quiz.ReferenceAnswer{{ID: "r1", Value: "Rome"}}}))
	_, err := e.Insert(singleChoice(""))
	require.NoError(t, err)
	assert.True(t, e.MoveUp("new-1"))

	svc := &fakeService{}
	plan, err := e.Save(context.Background(), svc)
	require.NoError(t, err)

	assert.Equal(t, []string{"delete b", "create new-1", "update c", "reorder"}, svc.calls)
	assert.Equal(t, []string{"a", "new-1", "c"}, svc.order)
	assert.Equal(t, []string{"b"}, plan.Deletes)
	assert.False(t, e.Dirty())
}

func TestSaveNoChanges(t *testing.T) {
	e := NewEditor("quiz", []quiz.Question{singleChoice("a")})
	svc := &fakeService{}

	plan, err := e.Save(context.Background(), svc)
	require.NoError(t, err)
	assert.True(t, plan.Empty())
	assert.Empty(t, svc.calls)
}

func TestSaveStopsAtFirstErrorAndResumes(t *testing.T) {
	e := NewEditor("quiz", []quiz.Question{singleChoice("a")}, sequentialIDs())
	_, err := e.Insert(textQuestion(""))
	require.NoError(t, err)
	require.NoError(t, e.SetText("a", "Capital of Portugal?"))

	svc := &fakeService{failOp: "update"}
	_, err = e.Save(context.Background(), svc)
	var saveErr *SaveError
	require.ErrorAs(t, err, &saveErr)
	assert.Equal(t, "update", saveErr.Op)
	assert.Equal(t, "a", saveErr.QuestionID)
	assert.Equal(t, []string{"create new-1", "update a"}, svc.calls)

	svc.failOp = ""
	svc.calls = nil
	_, err = e.Save(context.Background(), svc)
	require.NoError(t, err)
	assert.Equal(t, []string{"update a"}, svc.calls, "the create is not repeated")
}

func TestSaveAdoptsPlatformIDs(t *testing.T) {
	e := NewEditor("quiz", nil, sequentialIDs())
	_, err := e.Insert(textQuestion(""))
	require.NoError(t, err)

	svc := &fakeService{rename: map[string]string{"new-1": "srv-9"}}
	_, err = e.Save(context.Background(), svc)
	require.NoError(t, err)

	_, ok := e.Question("srv-9")
	assert.True(t, ok)
	assert.False(t, e.Dirty())
}

func TestInsertReplacesClashingID(t *testing.T) {
	e := NewEditor("quiz", []quiz.Question{singleChoice("a")}, sequentialIDs())
	q, err := e.Insert(singleChoice("a"))
	require.NoError(t, err)
	assert.Equal(t, "new-1", q.ID)

	_, err = e.Insert(quiz.Question{ID: "x", Text: "?", Kind: quiz.KindOrdering, Payload: quiz.SingleChoicePayload{}})
	assert.ErrorIs(t, err, ErrKindMismatch)
}

func TestCorrectResponse(t *testing.T) {
	tests := []struct {
		name string
		q    quiz.Question
		want quiz.Value
		ok   bool
	}{
		{"single", singleChoice("a"), quiz.SingleValue{ID: "2"}, true},
		{"text", textQuestion("b"), quiz.TextValue{Text: "Paris"}, true},
		{
			"ordering",
			quiz.NewQuestion("c", "Order", quiz.OrderingPayload{Items: []quiz.OrderableItem{
				{ID: "1", Text: "Mouse", CorrectPosition: 1}, {ID: "2", Text: "Ant", CorrectPosition: 0},
			}}),
			quiz.SequenceValue{IDs: []string{"2", "1"}},
			true,
		},
		{
			"association",
			quiz.NewQuestion("d", "Match", quiz.AssociationPayload{
				Items:   []quiz.DraggableItem{{ID: "7", Text: "Rome"}, {ID: "9", Text: "Oslo"}},
				Targets: []quiz.DropTarget{{ID: "t1", Text: "Italy", ExpectedItemID: "7"}},
			}),
			quiz.MappingValue{Placements: map[string]string{"7": "t1"}},
			true,
		},
		{"blank multi", quiz.NewQuestion("e", "Pick", quiz.MultiChoicePayload{}), nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, ok := CorrectResponse(tt.q)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, resp.Value)
				assert.NoError(t, quiz.CheckResponse(tt.q, resp))
			}
		})
	}
}

func TestPreviewIsReadonlyWithAnswer(t *testing.T) {
	e := NewEditor("quiz", []quiz.Question{singleChoice("a")})

	w, err := e.Preview("a", widgets.Factory{})
	require.NoError(t, err)
	v, ok := w.Value()
	require.True(t, ok)
	assert.Equal(t, quiz.SingleValue{ID: "2"}, v)

	_, err = e.Preview("missing", widgets.Factory{})
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestValidateKeepsUntouchedUnsupportedQuestion(t *testing.T) {
	essay := quiz.Question{ID: "e", Text: "Write", Kind: "essay", Payload: quiz.UnsupportedPayload{DeclaredKind: "essay", Raw: []byte(`{}`)}}
	e := NewEditor("quiz", []quiz.Question{singleChoice("a"), essay})

	assert.NoError(t, e.Validate())

	require.NoError(t, e.SetText("e", "Write more"))
	assert.Error(t, e.Validate())
}
