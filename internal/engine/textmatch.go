package engine

import (
	"strings"

	"github.com/abhisek/quizdeck/internal/quiz"
)

// NormalizeText trims surrounding whitespace and folds case.
func NormalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// MatchText reports whether input equals any reference answer after
// normalization. Blank input never matches.
func MatchText(input string, answers []quiz.ReferenceAnswer) bool {
	in := NormalizeText(input)
	if in == "" {
		return false
	}
	for _, a := range answers {
		if strings.EqualFold(in, strings.TrimSpace(a.Value)) {
			return true
		}
	}
	return false
}
