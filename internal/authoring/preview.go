package authoring

import (
	"fmt"
	"slices"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/ui/widgets"
)

// CorrectResponse synthesizes the response an author expects for q. It
// returns false when the payload does not define a complete answer yet.
func CorrectResponse(q quiz.Question) (quiz.Response, bool) {
	resp := quiz.Response{QuestionID: q.ID}

	switch p := q.Payload.(type) {
	case quiz.SingleChoicePayload:
		return singleCorrect(resp, p.Options)
	case quiz.TrueFalsePayload:
		return singleCorrect(resp, p.Options)
	case quiz.MultiChoicePayload:
		var ids []string
		for _, o := range p.Options {
			if o.IsCorrect {
				ids = append(ids, o.ID)
			}
		}
		if len(ids) == 0 {
			return resp, false
		}
		resp.Value = quiz.SetValue{IDs: ids}
	case quiz.TextCompletionPayload:
		if len(p.Answers) == 0 {
			return resp, false
		}
		resp.Value = quiz.TextValue{Text: p.Answers[0].Value}
	case quiz.OrderingPayload:
		if len(p.Items) == 0 {
			return resp, false
		}
		items := slices.Clone(p.Items)
		slices.SortStableFunc(items, func(a, b quiz.OrderableItem) int {
			return a.CorrectPosition - b.CorrectPosition
		})
		ids := make([]string, len(items))
		for i, it := range items {
			ids[i] = it.ID
		}
		resp.Value = quiz.SequenceValue{IDs: ids}
	case quiz.AssociationPayload:
		placements := make(map[string]string)
		for _, t := range p.Targets {
			if t.ExpectedItemID != "" {
				placements[t.ExpectedItemID] = t.ID
			}
		}
		if len(placements) == 0 {
			return resp, false
		}
		resp.Value = quiz.MappingValue{Placements: placements}
	default:
		return resp, false
	}
	return resp, true
}

func singleCorrect(resp quiz.Response, options []quiz.Option) (quiz.Response, bool) {
	for _, o := range options {
		if o.IsCorrect {
			resp.Value = quiz.SingleValue{ID: o.ID}
			return resp, true
		}
	}
	return resp, false
}

// Preview renders a draft question the way a learner would see it, with
// the expected answer filled in and correctness revealed. The widget is
// readonly.
func (e *Editor) Preview(id string, f widgets.Factory) (widgets.Widget, error) {
	q, ok := e.Question(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrQuestionNotFound, id)
	}
	return PreviewQuestion(q, f), nil
}

// PreviewQuestion is Preview for a question outside any editor.
func PreviewQuestion(q quiz.Question, f widgets.Factory) widgets.Widget {
	opts := widgets.Options{Readonly: true, RevealCorrectness: true}
	if resp, ok := CorrectResponse(q); ok {
		return f.New(q, &resp, opts)
	}
	return f.New(q, nil, opts)
}
