package quiz

// Kind selects the answer shape and widget a question uses.
type Kind string

const (
	KindSingleChoice   Kind = "single_choice"
	KindMultiChoice    Kind = "multi_choice"
	KindTrueFalse      Kind = "true_false"
	KindTextCompletion Kind = "text_completion"
	KindOrdering       Kind = "ordering"
	KindAssociation    Kind = "association"
)

// Kinds returns every kind the engine can render and evaluate.
func Kinds() []Kind {
	return []Kind{
		KindSingleChoice,
		KindMultiChoice,
		KindTrueFalse,
		KindTextCompletion,
		KindOrdering,
		KindAssociation,
	}
}

// Supported reports whether k is one of the known kinds.
func (k Kind) Supported() bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}
	return false
}

// Label returns a short human-readable name for the kind.
func (k Kind) Label() string {
	switch k {
	case KindSingleChoice:
		return "Single choice"
	case KindMultiChoice:
		return "Multiple choice"
	case KindTrueFalse:
		return "True / False"
	case KindTextCompletion:
		return "Fill in the blank"
	case KindOrdering:
		return "Ordering"
	case KindAssociation:
		return "Matching"
	default:
		return "Unsupported (" + string(k) + ")"
	}
}

// Question is a single assessment item. The Payload variant must agree
// with Kind; a question never changes kind after creation.
type Question struct {
	ID      string  `validate:"required"`
	Text    string  `validate:"required"`
	Kind    Kind    `validate:"required"`
	Payload Payload `validate:"-"`
}

// NewQuestion builds a question whose kind is taken from the payload.
func NewQuestion(id, text string, payload Payload) Question {
	return Question{
		ID:      id,
		Text:    text,
		Kind:    payload.Kind(),
		Payload: payload,
	}
}

// WithKind re-creates the question under newID with an empty payload of
// the requested kind. The original is left untouched.
func (q Question) WithKind(newID string, kind Kind) Question {
	return Question{
		ID:      newID,
		Text:    q.Text,
		Kind:    kind,
		Payload: EmptyPayload(kind),
	}
}

// Payload is the kind-specific part of a question. The set of
// implementations is closed to this package.
type Payload interface {
	Kind() Kind
	isPayload()
}

// Option is one selectable answer of a choice question.
type Option struct {
	ID        string `json:"id" validate:"required"`
	Text      string `json:"text" validate:"required"`
	IsCorrect bool   `json:"isCorrect"`
}

// ReferenceAnswer is an author-supplied acceptable value for a
// text-completion question.
type ReferenceAnswer struct {
	ID    string `json:"id" validate:"required"`
	Value string `json:"value" validate:"required"`
}

// OrderableItem is an entry of an ordering question. CorrectPosition is
// zero-based.
type OrderableItem struct {
	ID              string `json:"id" validate:"required"`
	Text            string `json:"text" validate:"required"`
	CorrectPosition int    `json:"correctPosition" validate:"gte=0"`
}

// DraggableItem is a source item of an association question.
type DraggableItem struct {
	ID   string `json:"id" validate:"required"`
	Text string `json:"text" validate:"required"`
}

// DropTarget is a slot that accepts exactly one draggable item.
type DropTarget struct {
	ID             string `json:"id" validate:"required"`
	Text           string `json:"text" validate:"required"`
	ExpectedItemID string `json:"expectedItemId"`
}

// SingleChoicePayload has exactly one correct option.
type SingleChoicePayload struct {
	Options []Option `json:"options" validate:"min=2,dive"`
}

// MultiChoicePayload has one or more correct options.
type MultiChoicePayload struct {
	Options []Option `json:"options" validate:"min=2,dive"`
}

// TrueFalsePayload carries exactly two options.
type TrueFalsePayload struct {
	Options []Option `json:"options" validate:"len=2,dive"`
}

// TextCompletionPayload accepts any one of its reference answers.
type TextCompletionPayload struct {
	Answers []ReferenceAnswer `json:"answers" validate:"min=1,dive"`
}

// OrderingPayload lists items in their initial (authored) order.
type OrderingPayload struct {
	Items []OrderableItem `json:"items" validate:"min=2,dive"`
}

// AssociationPayload pairs draggable items with drop targets.
type AssociationPayload struct {
	Items   []DraggableItem `json:"items" validate:"min=1,dive"`
	Targets []DropTarget    `json:"targets" validate:"min=1,dive"`
}

// UnsupportedPayload keeps the raw payload of a kind this client does not
// understand so the rest of the quiz can still be taken.
type UnsupportedPayload struct {
	DeclaredKind Kind
	Raw          []byte
}

func (SingleChoicePayload) Kind() Kind   { return KindSingleChoice }
func (MultiChoicePayload) Kind() Kind    { return KindMultiChoice }
func (TrueFalsePayload) Kind() Kind      { return KindTrueFalse }
func (TextCompletionPayload) Kind() Kind { return KindTextCompletion }
func (OrderingPayload) Kind() Kind       { return KindOrdering }
func (AssociationPayload) Kind() Kind    { return KindAssociation }
func (p UnsupportedPayload) Kind() Kind  { return p.DeclaredKind }

func (SingleChoicePayload) isPayload()   {}
func (MultiChoicePayload) isPayload()    {}
func (TrueFalsePayload) isPayload()      {}
func (TextCompletionPayload) isPayload() {}
func (OrderingPayload) isPayload()       {}
func (AssociationPayload) isPayload()    {}
func (UnsupportedPayload) isPayload()    {}

// EmptyPayload returns a blank payload for kind, used by the authoring
// editor when a question is created or re-created.
func EmptyPayload(kind Kind) Payload {
	switch kind {
	case KindSingleChoice:
		return SingleChoicePayload{}
	case KindMultiChoice:
		return MultiChoicePayload{}
	case KindTrueFalse:
		return TrueFalsePayload{Options: []Option{
			{ID: "true", Text: "True", IsCorrect: true},
			{ID: "false", Text: "False"},
		}}
	case KindTextCompletion:
		return TextCompletionPayload{}
	case KindOrdering:
		return OrderingPayload{}
	case KindAssociation:
		return AssociationPayload{}
	default:
		return UnsupportedPayload{DeclaredKind: kind}
	}
}

// Options returns the options of a choice-style payload, or nil.
func Options(p Payload) []Option {
	switch p := p.(type) {
	case SingleChoicePayload:
		return p.Options
	case MultiChoicePayload:
		return p.Options
	case TrueFalsePayload:
		return p.Options
	}
	return nil
}

// Quiz is the learner-facing assessment fetched from the remote platform.
type Quiz struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	// DurationMinutes is nil for untimed quizzes.
	DurationMinutes *int `json:"durationMinutes,omitempty"`

	Questions []Question `json:"questions"`
}

// Timed reports whether the quiz declares a positive duration.
func (q *Quiz) Timed() bool {
	return q.DurationMinutes != nil && *q.DurationMinutes > 0
}

// QuestionByID returns the question with id, if present.
func (q *Quiz) QuestionByID(id string) (Question, bool) {
	for _, question := range q.Questions {
		if question.ID == id {
			return question, true
		}
	}
	return Question{}, false
}

// SubmissionResult is the authoritative outcome returned by the remote
// submission endpoint.
type SubmissionResult struct {
	Score  float64 `json:"score"`
	Passed bool    `json:"passed"`
}
