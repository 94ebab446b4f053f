package draft

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizdeck/internal/quiz"
)

const systemPrompt = `You are an assessment author writing quiz questions for an education platform.

Rules:
- Write a single question of the requested kind about the given topic.
- The question text must be clear, self-contained and unambiguous.
- Every option, item and target needs a short unique id such as "a", "b", "c".
- Choice questions: 3 to 5 options. Distractors should reflect common misconceptions.
- Text completion: list every acceptable answer; matching ignores case and surrounding spaces.
- Ordering: give each item its zero-based correctPosition; positions must be 0..n-1 with no gaps.
- Matching: each target names the expectedItemId of the item that belongs there.
- Do not repeat any question from the "already in the quiz" list.`

// kindRules adds the constraints specific to one kind.
func kindRules(kind quiz.Kind) string {
	switch kind {
	case quiz.KindSingleChoice:
		return "Exactly one option has isCorrect true."
	case quiz.KindMultiChoice:
		return "At least two options have isCorrect true."
	case quiz.KindTrueFalse:
		return `Exactly two options, "True" and "False"; exactly one is correct.`
	case quiz.KindTextCompletion:
		return "Provide 1 to 4 reference answers."
	case quiz.KindOrdering:
		return "Provide 3 to 6 items listed in a shuffled order."
	case quiz.KindAssociation:
		return "Provide 3 to 5 items and one target per item."
	}
	return ""
}

// buildUserMessage constructs the user message from Input and Config limits.
func buildUserMessage(input Input, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Kind: %s (%s)\n", input.Kind, input.Kind.Label())
	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	if input.Audience != "" {
		fmt.Fprintf(&b, "Audience: %s\n", input.Audience)
	}
	fmt.Fprintf(&b, "Constraints: %s\n", kindRules(input.Kind))

	b.WriteString("\nAlready in the quiz:\n")
	b.WriteString(avoidList(input.PriorQuestions, cfg.PriorLimit))

	if input.Notes != "" {
		b.WriteString("\n\nAuthor notes:\n")
		b.WriteString(input.Notes)
	}

	return b.String()
}
