package draft

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/quizdeck/internal/engine"
	"github.com/abhisek/quizdeck/internal/quiz"
)

const (
	maxTextLen  = 500
	maxElements = 8
)

// Check inspects a draft. Reject returns a non-empty reason when the
// draft must not reach the author.
type Check struct {
	Name   string
	Reject func(q quiz.Question, in Input) string
}

// RejectedError is returned when every attempt failed a check. It reports
// the last rejection.
type RejectedError struct {
	Check    string
	Reason   string
	Attempts int
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("draft rejected by %s check after %d attempt(s): %s", e.Check, e.Attempts, e.Reason)
}

// StandardChecks keeps drafts displayable, valid as questions and new to
// the quiz.
func StandardChecks() []Check {
	return []Check{
		{Name: "fit", Reject: rejectUnfit},
		{Name: "question", Reject: rejectInvalid},
		{Name: "duplicate", Reject: rejectDuplicate},
	}
}

// runChecks returns the first rejection, if any.
func runChecks(checks []Check, q quiz.Question, in Input) (name, reason string) {
	for _, c := range checks {
		if r := c.Reject(q, in); r != "" {
			return c.Name, r
		}
	}
	return "", ""
}

// rejectUnfit bounds what a terminal screen can show: prompt length and
// the number of options, items or targets.
func rejectUnfit(q quiz.Question, in Input) string {
	switch {
	case strings.TrimSpace(q.Text) == "":
		return "text is empty"
	case len(q.Text) > maxTextLen:
		return fmt.Sprintf("text exceeds %d characters", maxTextLen)
	case q.Kind != in.Kind:
		return fmt.Sprintf("drafted kind %s was not requested", q.Kind)
	}

	var n int
	switch p := q.Payload.(type) {
	case quiz.SingleChoicePayload:
		n = len(p.Options)
	case quiz.MultiChoicePayload:
		n = len(p.Options)
	case quiz.TrueFalsePayload:
		n = len(p.Options)
	case quiz.TextCompletionPayload:
		n = len(p.Answers)
	case quiz.OrderingPayload:
		n = len(p.Items)
	case quiz.AssociationPayload:
		n = max(len(p.Items), len(p.Targets))
	}
	if n > maxElements {
		return fmt.Sprintf("%d elements do not fit on one screen (max %d)", n, maxElements)
	}
	return ""
}

// rejectInvalid applies the rules a hand-written question must pass:
// struct tags, per-kind answer keys and the payload JSON schema.
func rejectInvalid(q quiz.Question, _ Input) string {
	if err := q.Validate(); err != nil {
		return err.Error()
	}
	doc, err := json.Marshal(q)
	if err != nil {
		return err.Error()
	}
	if err := quiz.ValidateQuestionDocument(doc); err != nil {
		return err.Error()
	}
	return ""
}

func rejectDuplicate(q quiz.Question, in Input) string {
	text := engine.NormalizeText(q.Text)
	for _, prior := range in.PriorQuestions {
		if engine.NormalizeText(prior) == text {
			return "question already in the quiz"
		}
	}
	return ""
}
