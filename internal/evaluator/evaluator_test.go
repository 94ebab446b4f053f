package evaluator

import (
	"testing"

	"github.com/abhisek/quizdeck/internal/engine"
	"github.com/abhisek/quizdeck/internal/quiz"
)

func singleChoiceQuestion() quiz.Question {
	return quiz.NewQuestion("q1", "Pick B", quiz.SingleChoicePayload{Options: []quiz.Option{
		{ID: "1", Text: "A", IsCorrect: false},
		{ID: "2", Text: "B", IsCorrect: true},
	}})
}

func TestEvaluate_ScenarioA(t *testing.T) {
	q := singleChoiceQuestion()
	choices := engine.NewChoiceSet(quiz.Options(q.Payload), false)

	_ = choices.Select("2")
	if res := Evaluate(q, &quiz.Response{QuestionID: q.ID, Value: choices.Value()}); !res.Correct {
		t.Error("selecting 2 should be correct")
	}

	_ = choices.Select("1")
	if res := Evaluate(q, &quiz.Response{QuestionID: q.ID, Value: choices.Value()}); res.Correct {
		t.Error("selecting 1 should be incorrect")
	}
}

func TestEvaluate(t *testing.T) {
	multi := quiz.NewQuestion("m", "Primes", quiz.MultiChoicePayload{Options: []quiz.Option{
		{ID: "2", Text: "2", IsCorrect: true},
		{ID: "3", Text: "3", IsCorrect: true},
		{ID: "4", Text: "4"},
	}})
	text := quiz.NewQuestion("t", "Capital of Spain", quiz.TextCompletionPayload{Answers: []quiz.ReferenceAnswer{{ID: "r", Value: "madrid"}}})
	ordering := quiz.NewQuestion("o", "Order", quiz.OrderingPayload{Items: []quiz.OrderableItem{
		{ID: "1", Text: "x", CorrectPosition: 1},
		{ID: "2", Text: "y", CorrectPosition: 0},
	}})
	assoc := quiz.NewQuestion("a", "Match", quiz.AssociationPayload{
		Items:   []quiz.DraggableItem{{ID: "7", Text: "Rome"}, {ID: "9", Text: "Oslo"}},
		Targets: []quiz.DropTarget{{ID: "t1", Text: "Italy", ExpectedItemID: "7"}},
	})
	unsupported := quiz.Question{ID: "u", Text: "Essay", Kind: "essay", Payload: quiz.UnsupportedPayload{DeclaredKind: "essay"}}

	tests := []struct {
		name         string
		q            quiz.Question
		value        quiz.Value
		wantCorrect  bool
		wantAnswered bool
	}{
		{"multi exact set any order", multi, quiz.SetValue{IDs: []string{"3", "2"}}, true, true},
		{"multi subset", multi, quiz.SetValue{IDs: []string{"2"}}, false, true},
		{"multi superset", multi, quiz.SetValue{IDs: []string{"2", "3", "4"}}, false, true},
		{"multi empty", multi, quiz.SetValue{}, false, false},
		{"text normalized", text, quiz.TextValue{Text: "  Madrid "}, true, true},
		{"text wrong", text, quiz.TextValue{Text: "Barcelona"}, false, true},
		{"ordering correct", ordering, quiz.SequenceValue{IDs: []string{"2", "1"}}, true, true},
		{"ordering authored order", ordering, quiz.SequenceValue{IDs: []string{"1", "2"}}, false, true},
		{"ordering short", ordering, quiz.SequenceValue{IDs: []string{"2"}}, false, true},
		{"association correct", assoc, quiz.MappingValue{Placements: map[string]string{"7": "t1"}}, true, true},
		{"association displaced", assoc, quiz.MappingValue{Placements: map[string]string{"9": "t1"}}, false, true},
		{"wrong shape", text, quiz.SingleValue{ID: "madrid"}, false, true},
		{"unsupported", unsupported, quiz.TextValue{Text: "x"}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Evaluate(tt.q, &quiz.Response{QuestionID: tt.q.ID, Value: tt.value})
			if res.Correct != tt.wantCorrect {
				t.Errorf("Correct = %v, want %v", res.Correct, tt.wantCorrect)
			}
			if res.Answered != tt.wantAnswered {
				t.Errorf("Answered = %v, want %v", res.Answered, tt.wantAnswered)
			}
		})
	}
}

func TestEvaluate_ScenarioC(t *testing.T) {
	q := quiz.NewQuestion("a", "Match", quiz.AssociationPayload{
		Items:   []quiz.DraggableItem{{ID: "7", Text: "Rome"}, {ID: "9", Text: "Oslo"}},
		Targets: []quiz.DropTarget{{ID: "t1", Text: "Italy", ExpectedItemID: "7"}},
	})
	p := q.Payload.(quiz.AssociationPayload)
	b := engine.NewBoard(p.Items, p.Targets)
	_ = b.Place("7", "t1")
	_ = b.Place("9", "t1")

	res := Evaluate(q, &quiz.Response{QuestionID: q.ID, Value: b.Value()})
	if res.Correct || res.Targets["t1"] {
		t.Errorf("target should be incorrect: %+v", res)
	}
	if avail := b.Available(); len(avail) != 1 || avail[0] != "7" {
		t.Errorf("available = %v, want [7]", avail)
	}
}

func TestEvaluate_NilResponse(t *testing.T) {
	res := Evaluate(singleChoiceQuestion(), nil)
	if res.Correct || res.Answered {
		t.Errorf("nil response: %+v", res)
	}
}

func TestEvaluate_UnsupportedFlagged(t *testing.T) {
	q := quiz.Question{ID: "u", Text: "?", Kind: "hotspot", Payload: quiz.UnsupportedPayload{DeclaredKind: "hotspot"}}
	if res := Evaluate(q, nil); !res.Unsupported {
		t.Error("expected Unsupported")
	}
}

func TestAggregateScore(t *testing.T) {
	q1 := singleChoiceQuestion()
	q2 := quiz.NewQuestion("q2", "Say hi", quiz.TextCompletionPayload{Answers: []quiz.ReferenceAnswer{{ID: "r", Value: "hi"}}})
	q3 := quiz.NewQuestion("q3", "Pick A", quiz.TrueFalsePayload{Options: []quiz.Option{{ID: "t", Text: "True", IsCorrect: true}, {ID: "f", Text: "False"}}})
	q4 := quiz.NewQuestion("q4", "Unanswered", quiz.TextCompletionPayload{Answers: []quiz.ReferenceAnswer{{ID: "r", Value: "x"}}})

	responses := map[string]quiz.Response{
		"q1": {QuestionID: "q1", Value: quiz.SingleValue{ID: "2"}},
		"q2": {QuestionID: "q2", Value: quiz.TextValue{Text: "HI "}},
		"q3": {QuestionID: "q3", Value: quiz.SingleValue{ID: "f"}},
	}

	s := AggregateScore([]quiz.Question{q1, q2, q3, q4}, responses)
	if s.AnsweredCount != 3 || s.CorrectCount != 2 || s.Total != 4 {
		t.Errorf("score = %+v", s)
	}
	if s.Percentage != 50 {
		t.Errorf("Percentage = %v, want 50", s.Percentage)
	}

	if empty := AggregateScore(nil, nil); empty.Percentage != 0 || empty.Total != 0 {
		t.Errorf("empty quiz score = %+v", empty)
	}
}
