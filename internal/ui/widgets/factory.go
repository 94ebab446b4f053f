package widgets

import (
	"github.com/abhisek/quizdeck/internal/quiz"
)

// Factory builds the widget matching a question's payload.
type Factory struct {
	// TextLimit caps the length of text-completion answers; 0 means no
	// limit.
	TextLimit int
}

// New returns the widget for q, restoring r when present. Questions whose
// payload does not agree with their kind, or whose kind is unknown, get a
// Placeholder.
func (f Factory) New(q quiz.Question, r *quiz.Response, opts Options) Widget {
	if r != nil && (r.QuestionID != q.ID || !quiz.ValueMatchesKind(q.Kind, r.Value)) {
		r = nil
	}
	if q.Payload == nil || q.Payload.Kind() != q.Kind {
		return newPlaceholder(q)
	}

	switch p := q.Payload.(type) {
	case quiz.SingleChoicePayload:
		return newChoiceWidget(q, p.Options, false, r, opts)
	case quiz.MultiChoicePayload:
		return newChoiceWidget(q, p.Options, true, r, opts)
	case quiz.TrueFalsePayload:
		return newChoiceWidget(q, p.Options, false, r, opts)
	case quiz.TextCompletionPayload:
		return newTextWidget(q, p, r, opts, f.TextLimit)
	case quiz.OrderingPayload:
		return newOrderingWidget(q, p, r, opts)
	case quiz.AssociationPayload:
		return newAssociationWidget(q, p, r, opts)
	case quiz.UnsupportedPayload:
		return newPlaceholder(q)
	}
	return newPlaceholder(q)
}
