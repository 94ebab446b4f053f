package widgets

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/quiz"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// recorder captures OnResponseChanged calls.
type recorder struct {
	values []quiz.Value
}

func (r *recorder) options() Options {
	return Options{OnResponseChanged: func(_ string, v quiz.Value) tea.Cmd {
		r.values = append(r.values, v)
		return nil
	}}
}

func (r *recorder) last() quiz.Value {
	if len(r.values) == 0 {
		return nil
	}
	return r.values[len(r.values)-1]
}

var (
	singleQ = quiz.NewQuestion("s", "Pick B", quiz.SingleChoicePayload{Options: []quiz.Option{
		{ID: "1", Text: "A"}, {ID: "2", Text: "B", IsCorrect: true},
	}})
	multiQ = quiz.NewQuestion("m", "Primes", quiz.MultiChoicePayload{Options: []quiz.Option{
		{ID: "2", Text: "two", IsCorrect: true}, {ID: "3", Text: "three", IsCorrect: true}, {ID: "4", Text: "four"},
	}})
	tfQ = quiz.NewQuestion("tf", "Sky is blue", quiz.TrueFalsePayload{Options: []quiz.Option{
		{ID: "t", Text: "True", IsCorrect: true}, {ID: "f", Text: "False"},
	}})
	textQ = quiz.NewQuestion("t", "Capital of Spain", quiz.TextCompletionPayload{Answers: []quiz.ReferenceAnswer{
		{ID: "r", Value: "Madrid"},
	}})
	orderQ = quiz.NewQuestion("o", "Order", quiz.OrderingPayload{Items: []quiz.OrderableItem{
		{ID: "1", Text: "second", CorrectPosition: 1}, {ID: "2", Text: "first", CorrectPosition: 0},
	}})
	assocQ = quiz.NewQuestion("a", "Match", quiz.AssociationPayload{
		Items:   []quiz.DraggableItem{{ID: "7", Text: "Rome"}, {ID: "9", Text: "Oslo"}},
		Targets: []quiz.DropTarget{{ID: "it", Text: "Italy", ExpectedItemID: "7"}, {ID: "no", Text: "Norway", ExpectedItemID: "9"}},
	})
	essayQ = quiz.Question{ID: "e", Text: "Write an essay", Kind: "essay", Payload: quiz.UnsupportedPayload{DeclaredKind: "essay"}}
)

func TestFactory_Dispatch(t *testing.T) {
	f := Factory{}
	tests := []struct {
		q    quiz.Question
		want string
	}{
		{singleQ, "*widgets.ChoiceWidget"},
		{multiQ, "*widgets.ChoiceWidget"},
		{tfQ, "*widgets.ChoiceWidget"},
		{textQ, "*widgets.TextWidget"},
		{orderQ, "*widgets.OrderingWidget"},
		{assocQ, "*widgets.AssociationWidget"},
		{essayQ, "*widgets.Placeholder"},
		{quiz.Question{ID: "x", Text: "bad", Kind: quiz.KindOrdering, Payload: quiz.SingleChoicePayload{}}, "*widgets.Placeholder"},
	}
	for _, tt := range tests {
		w := f.New(tt.q, nil, Options{})
		if got := typeName(w); got != tt.want {
			t.Errorf("New(%s) = %s, want %s", tt.q.Kind, got, tt.want)
		}
	}
}

func typeName(w Widget) string {
	switch w.(type) {
	case *ChoiceWidget:
		return "*widgets.ChoiceWidget"
	case *TextWidget:
		return "*widgets.TextWidget"
	case *OrderingWidget:
		return "*widgets.OrderingWidget"
	case *AssociationWidget:
		return "*widgets.AssociationWidget"
	case *Placeholder:
		return "*widgets.Placeholder"
	}
	return "unknown"
}

func TestPlaceholder_IsInert(t *testing.T) {
	w := Factory{}.New(essayQ, nil, Options{})
	p := w.(*Placeholder)

	if !errors.Is(p.Err(), quiz.ErrUnsupportedKind) {
		t.Errorf("Err = %v", p.Err())
	}
	if _, cmd := w.Update(specialKey(tea.KeyEnter)); cmd != nil {
		t.Error("placeholder should not emit")
	}
	if _, ok := w.Value(); ok {
		t.Error("placeholder has no value")
	}
	if !strings.Contains(w.View(60), "not supported") {
		t.Error("placeholder should explain itself")
	}
}

func TestChoiceWidget_DefaultEmitsMessage(t *testing.T) {
	w := Factory{}.New(singleQ, nil, Options{})
	w, _ = w.Update(specialKey(tea.KeyDown))
	_, cmd := w.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(ResponseChangedMsg)
	if !ok {
		t.Fatalf("msg = %T, want ResponseChangedMsg", cmd())
	}
	if msg.QuestionID != "s" || msg.Value != (quiz.SingleValue{ID: "2"}) {
		t.Errorf("msg = %+v", msg)
	}
}

func TestChoiceWidget_MultiToggles(t *testing.T) {
	rec := &recorder{}
	w := Factory{}.New(multiQ, nil, rec.options())

	w, _ = w.Update(keyPress('1'))
	w, _ = w.Update(keyPress('2'))
	w, _ = w.Update(keyPress('1'))

	v, ok := w.Value()
	if !ok {
		t.Fatal("expected a value")
	}
	set := v.(quiz.SetValue)
	if len(set.IDs) != 1 || set.IDs[0] != "3" {
		t.Errorf("selection = %v, want [3]", set.IDs)
	}
	if len(rec.values) != 3 {
		t.Errorf("callbacks = %d, want 3", len(rec.values))
	}
}

func TestChoiceWidget_RestoresResponse(t *testing.T) {
	w := Factory{}.New(tfQ, &quiz.Response{QuestionID: "tf", Value: quiz.SingleValue{ID: "f"}}, Options{})
	if v, ok := w.Value(); !ok || v != (quiz.SingleValue{ID: "f"}) {
		t.Errorf("Value = %#v, %v", v, ok)
	}
}

func TestFactory_DropsMismatchedResponse(t *testing.T) {
	w := Factory{}.New(singleQ, &quiz.Response{QuestionID: "s", Value: quiz.TextValue{Text: "B"}}, Options{})
	if _, ok := w.Value(); ok {
		t.Error("a response of the wrong shape must not be restored")
	}
}

func TestReadonlyIgnoresInput(t *testing.T) {
	rec := &recorder{}
	opts := rec.options()
	opts.Readonly = true

	for _, q := range []quiz.Question{singleQ, textQ, orderQ, assocQ} {
		w := Factory{}.New(q, nil, opts)
		w, _ = w.Update(keyPress('1'))
		w, _ = w.Update(keyPress('K'))
		w, _ = w.Update(specialKey(tea.KeyEnter))
		if _, ok := w.Value(); ok {
			t.Errorf("%s: readonly widget produced a value", q.Kind)
		}
	}
	if len(rec.values) != 0 {
		t.Errorf("readonly widgets emitted %d values", len(rec.values))
	}
}

func TestTextWidget_Typing(t *testing.T) {
	rec := &recorder{}
	w := Factory{}.New(textQ, nil, rec.options())
	for _, r := range "Madrid" {
		w, _ = w.Update(keyPress(r))
	}

	if got := rec.last(); got != (quiz.TextValue{Text: "Madrid"}) {
		t.Errorf("last value = %#v", got)
	}
	if tc, ok := w.(TextCapturer); !ok || !tc.CapturesText() {
		t.Error("text widget should capture text")
	}
}

func TestTextWidget_Reveal(t *testing.T) {
	w := Factory{}.New(textQ, &quiz.Response{QuestionID: "t", Value: quiz.TextValue{Text: " madrid "}}, Options{Readonly: true, RevealCorrectness: true})
	view := w.View(80)
	if !strings.Contains(view, "✓") || !strings.Contains(view, "Accepted: Madrid") {
		t.Errorf("view does not reveal correctness:\n%s", view)
	}
}

func TestOrderingWidget_UntouchedHasValue(t *testing.T) {
	w := Factory{}.New(orderQ, nil, Options{})
	v, ok := w.Value()
	if !ok {
		t.Fatal("the order shown is an answer")
	}
	if ids := v.(quiz.SequenceValue).IDs; len(ids) != 2 || ids[0] != "1" {
		t.Errorf("order = %v, want authored order", ids)
	}
}

func TestOrderingWidget_MoveUp(t *testing.T) {
	rec := &recorder{}
	w := Factory{}.New(orderQ, nil, rec.options())

	w, _ = w.Update(specialKey(tea.KeyDown))
	w, _ = w.Update(keyPress('K'))

	v, ok := w.Value()
	if !ok {
		t.Fatal("expected a value after moving")
	}
	ids := v.(quiz.SequenceValue).IDs
	if len(ids) != 2 || ids[0] != "2" || ids[1] != "1" {
		t.Errorf("order = %v, want [2 1]", ids)
	}

	// Already at the top: no-op, no emission.
	before := len(rec.values)
	w, _ = w.Update(keyPress('K'))
	if len(rec.values) != before {
		t.Error("boundary move should not emit")
	}

	w, _ = w.Update(keyPress('r'))
	if got := rec.last().(quiz.SequenceValue).IDs; got[0] != "1" {
		t.Errorf("after reset order = %v", got)
	}
}

func TestAssociationWidget_PlaceAndDisplace(t *testing.T) {
	rec := &recorder{}
	w := Factory{}.New(assocQ, nil, rec.options())
	aw := w.(*AssociationWidget)

	if aw.Held() != "7" {
		t.Fatalf("Held = %q, want 7", aw.Held())
	}
	w, _ = w.Update(specialKey(tea.KeyEnter)) // 7 -> Italy, held moves to 9
	if aw.Held() != "9" {
		t.Fatalf("Held = %q, want 9", aw.Held())
	}
	w, _ = w.Update(specialKey(tea.KeyEnter)) // 9 -> Italy, 7 displaced

	m := rec.last().(quiz.MappingValue)
	if m.Placements["9"] != "it" {
		t.Errorf("placements = %v", m.Placements)
	}
	if _, ok := m.Placements["7"]; ok {
		t.Errorf("7 should have been displaced: %v", m.Placements)
	}

	w, _ = w.Update(keyPress('x'))
	if m := rec.last().(quiz.MappingValue); len(m.Placements) != 0 {
		t.Errorf("after unplace placements = %v", m.Placements)
	}
}

func TestAssociationWidget_RevealShowsExpected(t *testing.T) {
	r := &quiz.Response{QuestionID: "a", Value: quiz.MappingValue{Placements: map[string]string{"9": "it"}}}
	w := Factory{}.New(assocQ, r, Options{Readonly: true, RevealCorrectness: true})
	if view := w.View(80); !strings.Contains(view, "expected: Rome") {
		t.Errorf("view:\n%s", view)
	}
}
