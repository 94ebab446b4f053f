package quiz

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			return fld.Name
		}
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks that the question is well formed: the payload variant
// matches the declared kind and satisfies the per-kind rules. Unsupported
// kinds yield an *UnsupportedKindError.
func (q Question) Validate() error {
	if !q.Kind.Supported() {
		return &UnsupportedKindError{Kind: q.Kind}
	}

	var problems []string
	if err := structValidator.Struct(q); err != nil {
		problems = append(problems, describeValidation(err)...)
	}

	switch {
	case q.Payload == nil:
		problems = append(problems, "payload is required")
	case q.Payload.Kind() != q.Kind:
		problems = append(problems, fmt.Sprintf("payload is %s but question kind is %s", q.Payload.Kind(), q.Kind))
	default:
		if err := structValidator.Struct(q.Payload); err != nil {
			problems = append(problems, describeValidation(err)...)
		}
		problems = append(problems, payloadProblems(q.Payload)...)
	}

	if len(problems) > 0 {
		return &InvalidQuestionError{QuestionID: q.ID, Problems: problems}
	}
	return nil
}

func describeValidation(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		switch fe.Tag() {
		case "required":
			out = append(out, field+" is required")
		case "min":
			out = append(out, fmt.Sprintf("%s needs at least %s entries", field, fe.Param()))
		case "len":
			out = append(out, fmt.Sprintf("%s needs exactly %s entries", field, fe.Param()))
		default:
			out = append(out, fmt.Sprintf("%s fails %s=%s", field, fe.Tag(), fe.Param()))
		}
	}
	return out
}

func payloadProblems(p Payload) []string {
	switch p := p.(type) {
	case SingleChoicePayload:
		return choiceProblems(p.Options, 1, 1)
	case MultiChoicePayload:
		return choiceProblems(p.Options, 1, len(p.Options))
	case TrueFalsePayload:
		return choiceProblems(p.Options, 1, 1)
	case TextCompletionPayload:
		var problems []string
		ids := make([]string, 0, len(p.Answers))
		for _, a := range p.Answers {
			ids = append(ids, a.ID)
			if a.Value != "" && strings.TrimSpace(a.Value) == "" {
				problems = append(problems, fmt.Sprintf("answer %q is blank", a.ID))
			}
		}
		return append(problems, duplicateIDs("answer", ids)...)
	case OrderingPayload:
		return orderingProblems(p.Items)
	case AssociationPayload:
		return associationProblems(p)
	}
	return nil
}

func choiceProblems(options []Option, minCorrect, maxCorrect int) []string {
	var problems []string
	ids := make([]string, 0, len(options))
	correct := 0
	for _, o := range options {
		ids = append(ids, o.ID)
		if o.IsCorrect {
			correct++
		}
	}
	problems = append(problems, duplicateIDs("option", ids)...)
	if correct < minCorrect || correct > maxCorrect {
		if minCorrect == maxCorrect {
			problems = append(problems, fmt.Sprintf("exactly %d option must be correct, got %d", minCorrect, correct))
		} else {
			problems = append(problems, fmt.Sprintf("at least %d option must be correct", minCorrect))
		}
	}
	return problems
}

func orderingProblems(items []OrderableItem) []string {
	var problems []string
	ids := make([]string, 0, len(items))
	seen := make(map[int]bool, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
		if it.CorrectPosition < 0 || it.CorrectPosition >= len(items) {
			problems = append(problems, fmt.Sprintf("item %q: correct position %d out of range", it.ID, it.CorrectPosition))
			continue
		}
		if seen[it.CorrectPosition] {
			problems = append(problems, fmt.Sprintf("correct position %d used twice", it.CorrectPosition))
		}
		seen[it.CorrectPosition] = true
	}
	return append(problems, duplicateIDs("item", ids)...)
}

func associationProblems(p AssociationPayload) []string {
	var problems []string
	items := make(map[string]bool, len(p.Items))
	itemIDs := make([]string, 0, len(p.Items))
	for _, it := range p.Items {
		items[it.ID] = true
		itemIDs = append(itemIDs, it.ID)
	}
	problems = append(problems, duplicateIDs("item", itemIDs)...)

	targetIDs := make([]string, 0, len(p.Targets))
	expected := make(map[string]string, len(p.Targets))
	for _, t := range p.Targets {
		targetIDs = append(targetIDs, t.ID)
		switch {
		case t.ExpectedItemID == "":
			problems = append(problems, fmt.Sprintf("target %q has no expected item", t.ID))
		case !items[t.ExpectedItemID]:
			problems = append(problems, fmt.Sprintf("target %q expects unknown item %q", t.ID, t.ExpectedItemID))
		default:
			if other, dup := expected[t.ExpectedItemID]; dup {
				problems = append(problems, fmt.Sprintf("targets %q and %q expect the same item", other, t.ID))
			}
			expected[t.ExpectedItemID] = t.ID
		}
	}
	return append(problems, duplicateIDs("target", targetIDs)...)
}

func duplicateIDs(what string, ids []string) []string {
	var problems []string
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if seen[id] {
			problems = append(problems, fmt.Sprintf("duplicate %s id %q", what, id))
		}
		seen[id] = true
	}
	return problems
}
