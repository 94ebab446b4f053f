package draft

import (
	"slices"
	"strings"

	"github.com/abhisek/quizdeck/internal/engine"
)

// avoidList renders the prompts already in the quiz as a bullet list for
// the model to steer clear of. Blank and repeated prompts are dropped and
// only the last limit are kept; limit <= 0 keeps all. Prompts longer than
// 160 runes are cut.
func avoidList(prior []string, limit int) string {
	seen := make(map[string]bool, len(prior))
	var keep []string
	for _, p := range slices.Backward(prior) {
		key := engine.NormalizeText(p)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		keep = append(keep, strings.Join(strings.Fields(p), " "))
		if limit > 0 && len(keep) == limit {
			break
		}
	}
	if len(keep) == 0 {
		return "(none yet)"
	}
	slices.Reverse(keep)

	var b strings.Builder
	for i, p := range keep {
		if r := []rune(p); len(r) > 160 {
			p = string(r[:159]) + "…"
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("- " + p)
	}
	return b.String()
}
