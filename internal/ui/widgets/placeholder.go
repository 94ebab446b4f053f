package widgets

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// Placeholder is the inert widget for question kinds this client cannot
// render. It never produces a value.
type Placeholder struct {
	question quiz.Question
	err      error
}

func newPlaceholder(q quiz.Question) *Placeholder {
	return &Placeholder{
		question: q,
		err:      &quiz.UnsupportedKindError{Kind: q.Kind},
	}
}

// Err returns the *quiz.UnsupportedKindError explaining the fallback.
func (p *Placeholder) Err() error { return p.err }

func (p *Placeholder) Init() tea.Cmd { return nil }

func (p *Placeholder) Update(tea.Msg) (Widget, tea.Cmd) { return p, nil }

func (p *Placeholder) Question() quiz.Question { return p.question }

func (p *Placeholder) Value() (quiz.Value, bool) { return nil, false }

func (p *Placeholder) View(width int) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.TextDim).
		Padding(0, 1)
	if width > 4 {
		box = box.Width(width - 2)
	}
	return renderPrompt(p.question, width) +
		box.Render("This question type ("+string(p.question.Kind)+") is not supported here. It will not count against you; continue with the others.") + "\n"
}

func (p *Placeholder) KeyHints() []string { return nil }
