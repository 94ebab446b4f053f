// Package evaluator computes advisory correctness and scores for quiz
// responses. The remote submission result is always authoritative; these
// numbers only drive previews and local feedback.
package evaluator

import (
	"slices"

	"github.com/abhisek/quizdeck/internal/engine"
	"github.com/abhisek/quizdeck/internal/quiz"
)

// Result is the outcome of evaluating one response.
type Result struct {
	Correct  bool
	Answered bool

	// Targets holds per-target correctness for association questions.
	Targets map[string]bool

	// Unsupported is set for questions of a kind the client cannot grade.
	Unsupported bool
}

// Evaluate grades r against q. A nil response, a response of the wrong
// shape, or an unsupported kind is never correct.
func Evaluate(q quiz.Question, r *quiz.Response) Result {
	var res Result
	if r != nil && r.QuestionID == q.ID && !quiz.IsBlank(r.Value) {
		res.Answered = true
	}

	var value quiz.Value
	if res.Answered {
		value = r.Value
	}

	switch p := q.Payload.(type) {
	case quiz.SingleChoicePayload:
		res.Correct = choiceCorrect(p.Options, value)
	case quiz.MultiChoicePayload:
		res.Correct = choiceCorrect(p.Options, value)
	case quiz.TrueFalsePayload:
		res.Correct = choiceCorrect(p.Options, value)
	case quiz.TextCompletionPayload:
		if v, ok := value.(quiz.TextValue); ok {
			res.Correct = engine.MatchText(v.Text, p.Answers)
		}
	case quiz.OrderingPayload:
		if v, ok := value.(quiz.SequenceValue); ok {
			res.Correct = orderingCorrect(p.Items, v.IDs)
		}
	case quiz.AssociationPayload:
		v, _ := value.(quiz.MappingValue)
		res.Targets, res.Correct = associationCorrect(p, v)
	case quiz.UnsupportedPayload:
		res.Unsupported = true
	case nil:
		res.Unsupported = true
	}
	return res
}

// choiceCorrect requires the selected set to equal the set of correct
// options, ignoring order.
func choiceCorrect(options []quiz.Option, v quiz.Value) bool {
	var selected []string
	switch v := v.(type) {
	case quiz.SingleValue:
		selected = []string{v.ID}
	case quiz.SetValue:
		selected = v.IDs
	default:
		return false
	}

	var correct []string
	for _, o := range options {
		if o.IsCorrect {
			correct = append(correct, o.ID)
		}
	}
	got := quiz.SortedIDs(selected)
	got = slices.Compact(got)
	return len(correct) > 0 && slices.Equal(got, quiz.SortedIDs(correct))
}

func orderingCorrect(items []quiz.OrderableItem, ids []string) bool {
	if len(ids) != len(items) {
		return false
	}
	position := make(map[string]int, len(items))
	for _, it := range items {
		position[it.ID] = it.CorrectPosition
	}
	for p, id := range ids {
		want, ok := position[id]
		if !ok || want != p {
			return false
		}
	}
	return true
}

func associationCorrect(p quiz.AssociationPayload, v quiz.MappingValue) (map[string]bool, bool) {
	occupant := make(map[string]string, len(v.Placements))
	for item, target := range v.Placements {
		occupant[target] = item
	}

	targets := make(map[string]bool, len(p.Targets))
	all := len(p.Targets) > 0
	for _, t := range p.Targets {
		item, ok := occupant[t.ID]
		ok = ok && item == t.ExpectedItemID
		targets[t.ID] = ok
		all = all && ok
	}
	return targets, all
}

// Score aggregates results over a whole quiz.
type Score struct {
	AnsweredCount int
	CorrectCount  int
	Total         int

	// Percentage is CorrectCount over Total, 0-100. An empty quiz scores 0.
	Percentage float64
}

// AggregateScore evaluates every question against its response, if any.
func AggregateScore(questions []quiz.Question, responses map[string]quiz.Response) Score {
	s := Score{Total: len(questions)}
	for _, q := range questions {
		var r *quiz.Response
		if resp, ok := responses[q.ID]; ok {
			r = &resp
		}
		res := Evaluate(q, r)
		if res.Answered {
			s.AnsweredCount++
		}
		if res.Correct {
			s.CorrectCount++
		}
	}
	if s.Total > 0 {
		s.Percentage = float64(s.CorrectCount) * 100 / float64(s.Total)
	}
	return s
}
