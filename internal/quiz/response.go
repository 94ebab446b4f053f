package quiz

import (
	"fmt"
	"sort"
	"strings"
)

// Value is a learner's answer, shaped according to the question kind.
type Value interface {
	isValue()
}

// SingleValue selects one option (single-choice, true/false).
type SingleValue struct {
	ID string
}

// SetValue selects any number of options (multi-choice). Order is not
// significant.
type SetValue struct {
	IDs []string
}

// TextValue is free text typed by the learner (text-completion).
type TextValue struct {
	Text string
}

// SequenceValue is the current order of item ids (ordering).
type SequenceValue struct {
	IDs []string
}

// MappingValue maps draggable item ids to drop target ids (association).
type MappingValue struct {
	Placements map[string]string
}

func (SingleValue) isValue()   {}
func (SetValue) isValue()      {}
func (TextValue) isValue()     {}
func (SequenceValue) isValue() {}
func (MappingValue) isValue()  {}

// Response is the recorded answer for one question. A session keeps at
// most one per question id.
type Response struct {
	QuestionID string
	Value      Value
}

// ValueMatchesKind reports whether v has the shape expected for kind.
func ValueMatchesKind(kind Kind, v Value) bool {
	switch v.(type) {
	case SingleValue:
		return kind == KindSingleChoice || kind == KindTrueFalse
	case SetValue:
		return kind == KindMultiChoice
	case TextValue:
		return kind == KindTextCompletion
	case SequenceValue:
		return kind == KindOrdering
	case MappingValue:
		return kind == KindAssociation
	}
	return false
}

// CheckResponse verifies that r belongs to q and has the right shape.
func CheckResponse(q Question, r Response) error {
	if r.QuestionID != q.ID {
		return fmt.Errorf("response for %q recorded against question %q", r.QuestionID, q.ID)
	}
	if !q.Kind.Supported() {
		return &UnsupportedKindError{Kind: q.Kind}
	}
	if r.Value == nil {
		return fmt.Errorf("question %q: empty response", q.ID)
	}
	if !ValueMatchesKind(q.Kind, r.Value) {
		return &ShapeError{QuestionID: q.ID, Kind: q.Kind, Value: r.Value}
	}
	return nil
}

// IsBlank reports whether v carries no actual answer (no selection, empty
// or whitespace-only text, nothing placed).
func IsBlank(v Value) bool {
	switch v := v.(type) {
	case nil:
		return true
	case SingleValue:
		return v.ID == ""
	case SetValue:
		return len(v.IDs) == 0
	case TextValue:
		return strings.TrimSpace(v.Text) == ""
	case SequenceValue:
		return len(v.IDs) == 0
	case MappingValue:
		return len(v.Placements) == 0
	}
	return true
}

// SortedIDs returns a sorted copy of ids.
func SortedIDs(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	sort.Strings(out)
	return out
}
