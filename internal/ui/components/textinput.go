package components

import (
	"fmt"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// TextInput is a single-line bubbles input in the quizdeck palette. With a
// limit set it shows how many characters are left once 80% are used.
type TextInput struct {
	Model textinput.Model

	// mark is "", "ok" or "wrong".
	mark string
}

func NewTextInput(placeholder string, limit int) TextInput {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = placeholder
	ti.CharLimit = max(limit, 0)
	ti.SetStyles(inputStyles())
	ti.Focus()
	return TextInput{Model: ti}
}

func inputStyles() textinput.Styles {
	s := textinput.DefaultDarkStyles()
	s.Focused.Prompt = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	s.Focused.Text = lipgloss.NewStyle().Foreground(theme.Text)
	s.Focused.Placeholder = lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)
	s.Blurred.Prompt = lipgloss.NewStyle().Foreground(theme.Border)
	s.Blurred.Text = lipgloss.NewStyle().Foreground(theme.TextDim)
	s.Blurred.Placeholder = s.Focused.Placeholder
	s.Cursor.Color = theme.Accent
	return s
}

// Init starts the cursor blinking.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextInput) View() string {
	view := t.Model.View()
	switch t.mark {
	case "ok":
		view += " " + theme.Correct.Render("✓")
	case "wrong":
		view += " " + theme.Incorrect.Render("✗")
	}
	if left, ok := t.Remaining(); ok && left*5 <= t.Model.CharLimit {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if left == 0 {
			style = style.Foreground(theme.Warning)
		}
		view += "  " + style.Render(fmt.Sprintf("%d left", left))
	}
	return view
}

// Remaining returns how many characters may still be typed, and false when
// the input has no limit.
func (t TextInput) Remaining() (int, bool) {
	if t.Model.CharLimit <= 0 {
		return 0, false
	}
	return max(t.Model.CharLimit-len([]rune(t.Model.Value())), 0), true
}

func (t TextInput) Value() string { return t.Model.Value() }

func (t *TextInput) SetValue(s string) { t.Model.SetValue(s) }

// Blur makes the input read-only.
func (t *TextInput) Blur() { t.Model.Blur() }

// Mark appends a check or a cross after the input.
func (t *TextInput) Mark(correct bool) {
	t.mark = "wrong"
	if correct {
		t.mark = "ok"
	}
}
