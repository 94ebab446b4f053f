// Package widgets renders one answer widget per question kind. Widgets
// never talk to the network; their only side effect is the command
// returned from Options.OnResponseChanged.
package widgets

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// ResponseChangedMsg is emitted by default whenever a widget's value
// changes.
type ResponseChangedMsg struct {
	QuestionID string
	Value      quiz.Value
}

// Options configure how a widget behaves.
type Options struct {
	// Readonly ignores all input.
	Readonly bool

	// RevealCorrectness marks correct and incorrect parts of the answer.
	RevealCorrectness bool

	// OnResponseChanged is called with every new value. When nil the
	// widget emits a ResponseChangedMsg.
	OnResponseChanged func(questionID string, value quiz.Value) tea.Cmd
}

func (o Options) emit(questionID string, v quiz.Value) tea.Cmd {
	if o.Readonly {
		return nil
	}
	if o.OnResponseChanged != nil {
		return o.OnResponseChanged(questionID, v)
	}
	return func() tea.Msg {
		return ResponseChangedMsg{QuestionID: questionID, Value: v}
	}
}

// Widget is the capability set every answer widget implements.
type Widget interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Widget, tea.Cmd)
	View(width int) string

	// Question returns the question being answered.
	Question() quiz.Question

	// Value returns the current answer and whether there is one to record.
	Value() (quiz.Value, bool)

	// KeyHints lists the keys the widget handles, for the footer.
	KeyHints() []string
}

// TextCapturer is implemented by widgets that consume printable keys, so
// the host screen must not bind them.
type TextCapturer interface {
	CapturesText() bool
}

func renderPrompt(q quiz.Question, width int) string {
	style := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if width > 0 {
		style = style.Width(width)
	}
	kind := theme.Hint.Render(q.Kind.Label())
	return style.Render(q.Text) + "\n" + kind + "\n\n"
}
