// Package authoring holds the draft model behind the question editor: an
// ordered list of questions that is validated locally and then synced to
// the platform.
package authoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/remote"
)

// Editor is the authoring draft of one quiz. It is not safe for
// concurrent use.
type Editor struct {
	QuizID string

	questions []quiz.Question

	// saved mirrors what the platform holds after the last successful
	// remote call, in platform order.
	saved      map[string]quiz.Question
	savedOrder []string

	newID  func() string
	logger *slog.Logger
}

// Option configures an Editor.
type Option func(*Editor)

// WithIDGenerator replaces uuid generation for new questions.
func WithIDGenerator(fn func() string) Option {
	return func(e *Editor) { e.newID = fn }
}

// WithLogger sets the logger used while saving.
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) { e.logger = l }
}

// NewEditor starts a draft from the questions currently on the platform.
func NewEditor(quizID string, existing []quiz.Question, opts ...Option) *Editor {
	e := &Editor{
		QuizID:    quizID,
		questions: slices.Clone(existing),
		saved:     make(map[string]quiz.Question, len(existing)),
		newID:     uuid.NewString,
		logger:    slog.Default(),
	}
	for _, q := range existing {
		e.saved[q.ID] = q
		e.savedOrder = append(e.savedOrder, q.ID)
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Questions returns the draft in order.
func (e *Editor) Questions() []quiz.Question {
	return slices.Clone(e.questions)
}

// Len returns the number of draft questions.
func (e *Editor) Len() int { return len(e.questions) }

// Question returns the draft question with id.
func (e *Editor) Question(id string) (quiz.Question, bool) {
	i := e.index(id)
	if i < 0 {
		return quiz.Question{}, false
	}
	return e.questions[i], true
}

func (e *Editor) index(id string) int {
	return slices.IndexFunc(e.questions, func(q quiz.Question) bool { return q.ID == id })
}

// Add appends a new question of kind with a blank payload.
func (e *Editor) Add(kind quiz.Kind, text string) (quiz.Question, error) {
	if !kind.Supported() {
		return quiz.Question{}, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}
	q := quiz.Question{
		ID:      e.newID(),
		Text:    text,
		Kind:    kind,
		Payload: quiz.EmptyPayload(kind),
	}
	e.questions = append(e.questions, q)
	return q, nil
}

// Insert appends a complete question, e.g. one imported from a file or
// drafted by a model. A missing or clashing ID is replaced.
func (e *Editor) Insert(q quiz.Question) (quiz.Question, error) {
	if q.Payload == nil || !q.Kind.Supported() {
		return quiz.Question{}, fmt.Errorf("%w: %s", ErrUnsupportedKind, q.Kind)
	}
	if q.Payload.Kind() != q.Kind {
		return quiz.Question{}, ErrKindMismatch
	}
	if _, clash := e.saved[q.ID]; q.ID == "" || clash || e.index(q.ID) >= 0 {
		q.ID = e.newID()
	}
	e.questions = append(e.questions, q)
	return q, nil
}

// ChangeKind re-creates the question under a new ID with a blank payload
// of kind, keeping its text and position. Responses recorded against the
// old ID are never read against the new shape.
func (e *Editor) ChangeKind(id string, kind quiz.Kind) (quiz.Question, error) {
	i := e.index(id)
	if i < 0 {
		return quiz.Question{}, fmt.Errorf("%w: %s", ErrQuestionNotFound, id)
	}
	if !kind.Supported() {
		return quiz.Question{}, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}
	if e.questions[i].Kind == kind {
		return e.questions[i], nil
	}
	q := e.questions[i].WithKind(e.newID(), kind)
	e.questions[i] = q
	return q, nil
}

// SetText replaces the prompt of a question.
func (e *Editor) SetText(id, text string) error {
	i := e.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrQuestionNotFound, id)
	}
	e.questions[i].Text = text
	return nil
}

// SetPayload replaces the payload of a question. The payload must be of
// the question's kind; use ChangeKind to switch kinds.
func (e *Editor) SetPayload(id string, p quiz.Payload) error {
	i := e.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrQuestionNotFound, id)
	}
	if p == nil || p.Kind() != e.questions[i].Kind {
		return ErrKindMismatch
	}
	e.questions[i].Payload = p
	return nil
}

// MoveUp swaps the question with its predecessor. It reports whether
// anything moved.
func (e *Editor) MoveUp(id string) bool {
	i := e.index(id)
	if i <= 0 {
		return false
	}
	e.questions[i-1], e.questions[i] = e.questions[i], e.questions[i-1]
	return true
}

// MoveDown swaps the question with its successor.
func (e *Editor) MoveDown(id string) bool {
	i := e.index(id)
	if i < 0 || i >= len(e.questions)-1 {
		return false
	}
	e.questions[i+1], e.questions[i] = e.questions[i], e.questions[i+1]
	return true
}

// Delete removes a question from the draft.
func (e *Editor) Delete(id string) error {
	i := e.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrQuestionNotFound, id)
	}
	e.questions = slices.Delete(e.questions, i, i+1)
	return nil
}

// ValidateQuestion runs the struct, per-kind and JSON schema checks for a
// single question.
func ValidateQuestion(q quiz.Question) error {
	if err := q.Validate(); err != nil {
		return err
	}
	doc, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("question %s: %w", q.ID, err)
	}
	if err := quiz.ValidateQuestionDocument(doc); err != nil {
		return fmt.Errorf("question %s: %w", q.ID, err)
	}
	return nil
}

// Validate checks every draft question and returns *InvalidDraftError
// listing the failures, or nil. Questions of kinds this client cannot
// author pass as long as they are unchanged from the platform copy.
func (e *Editor) Validate() error {
	var invalid *InvalidDraftError
	for _, q := range e.questions {
		if prev, ok := e.saved[q.ID]; ok && !q.Kind.Supported() && sameQuestion(prev, q) {
			continue
		}
		if err := ValidateQuestion(q); err != nil {
			if invalid == nil {
				invalid = &InvalidDraftError{Errs: make(map[string]error)}
			}
			invalid.QuestionIDs = append(invalid.QuestionIDs, q.ID)
			invalid.Errs[q.ID] = err
		}
	}
	if invalid == nil {
		return nil
	}
	return invalid
}

// Plan is the set of remote calls a save would make.
type Plan struct {
	Deletes []string
	Creates []string
	Updates []string
	Reorder bool
}

// Empty reports whether the draft matches the platform.
func (p Plan) Empty() bool {
	return len(p.Deletes) == 0 && len(p.Creates) == 0 && len(p.Updates) == 0 && !p.Reorder
}

// Plan compares the draft with the last saved state.
func (e *Editor) Plan() Plan {
	var p Plan
	current := make(map[string]bool, len(e.questions))
	for _, q := range e.questions {
		current[q.ID] = true
		prev, ok := e.saved[q.ID]
		switch {
		case !ok:
			p.Creates = append(p.Creates, q.ID)
		case !sameQuestion(prev, q):
			p.Updates = append(p.Updates, q.ID)
		}
	}
	for _, id := range e.savedOrder {
		if !current[id] {
			p.Deletes = append(p.Deletes, id)
		}
	}
	p.Reorder = !slices.Equal(e.orderAfter(p), e.ids())
	return p
}

// orderAfter is the platform order once the planned deletes and creates
// have been applied: survivors keep their order, creations are appended.
func (e *Editor) orderAfter(p Plan) []string {
	var order []string
	for _, id := range e.savedOrder {
		if !slices.Contains(p.Deletes, id) {
			order = append(order, id)
		}
	}
	return append(order, p.Creates...)
}

func (e *Editor) ids() []string {
	ids := make([]string, len(e.questions))
	for i, q := range e.questions {
		ids[i] = q.ID
	}
	return ids
}

// Dirty reports whether there is anything to save.
func (e *Editor) Dirty() bool {
	return !e.Plan().Empty()
}

func sameQuestion(a, b quiz.Question) bool {
	ja, errA := json.Marshal(a)
	jb, errB := json.Marshal(b)
	return errA == nil && errB == nil && bytes.Equal(ja, jb)
}

// Save validates the whole draft and then syncs it: deletes, creates,
// updates and finally the order. It stops at the first remote error; what
// succeeded before it is remembered, so calling Save again resumes.
func (e *Editor) Save(ctx context.Context, svc remote.AuthoringService) (Plan, error) {
	if err := e.Validate(); err != nil {
		return Plan{}, err
	}
	plan := e.Plan()
	if plan.Empty() {
		return plan, nil
	}
	e.logger.Info("saving quiz draft",
		"quiz_id", e.QuizID,
		"deletes", len(plan.Deletes),
		"creates", len(plan.Creates),
		"updates", len(plan.Updates),
		"reorder", plan.Reorder)

	for _, id := range plan.Deletes {
		if err := svc.DeleteQuestion(ctx, e.QuizID, id); err != nil {
			return plan, e.saveFailed("delete", id, err)
		}
		delete(e.saved, id)
		e.savedOrder = slices.DeleteFunc(e.savedOrder, func(s string) bool { return s == id })
	}

	for _, id := range plan.Creates {
		i := e.index(id)
		created, err := svc.CreateQuestion(ctx, e.QuizID, e.questions[i])
		if err != nil {
			return plan, e.saveFailed("create", id, err)
		}
		// The platform may assign its own id.
		if created.ID != "" && created.ID != id {
			e.questions[i].ID = created.ID
		}
		e.saved[e.questions[i].ID] = e.questions[i]
		e.savedOrder = append(e.savedOrder, e.questions[i].ID)
	}

	for _, id := range plan.Updates {
		q, _ := e.Question(id)
		if err := svc.UpdateQuestion(ctx, e.QuizID, q); err != nil {
			return plan, e.saveFailed("update", id, err)
		}
		e.saved[id] = q
	}

	if ids := e.ids(); !slices.Equal(e.savedOrder, ids) {
		if err := svc.ReorderQuestions(ctx, e.QuizID, ids); err != nil {
			return plan, e.saveFailed("reorder", "", err)
		}
		e.savedOrder = ids
	}

	e.logger.Info("quiz draft saved", "quiz_id", e.QuizID, "questions", len(e.questions))
	return plan, nil
}

func (e *Editor) saveFailed(op, id string, err error) error {
	e.logger.Warn("saving quiz draft failed",
		"quiz_id", e.QuizID,
		"op", op,
		"question_id", id,
		"error", err)
	return &SaveError{Op: op, QuestionID: id, Err: err}
}
