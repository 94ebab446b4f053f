package widgets

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/engine"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// TextWidget answers text-completion questions.
type TextWidget struct {
	question quiz.Question
	answers  []quiz.ReferenceAnswer
	opts     Options
	input    components.TextInput
	touched  bool
}

func newTextWidget(q quiz.Question, p quiz.TextCompletionPayload, r *quiz.Response, opts Options, maxLen int) *TextWidget {
	w := &TextWidget{
		question: q,
		answers:  p.Answers,
		opts:     opts,
		input:    components.NewTextInput("type your answer", maxLen),
	}
	if r != nil {
		if v, ok := r.Value.(quiz.TextValue); ok {
			w.input.SetValue(v.Text)
			w.touched = true
		}
	}
	if opts.Readonly {
		w.input.Blur()
	}
	if opts.RevealCorrectness {
		w.input.Mark(engine.MatchText(w.input.Value(), w.answers))
	}
	return w
}

func (w *TextWidget) Init() tea.Cmd {
	if w.opts.Readonly {
		return nil
	}
	return w.input.Init()
}

func (w *TextWidget) Question() quiz.Question { return w.question }

// CapturesText is true while the widget accepts typing.
func (w *TextWidget) CapturesText() bool { return !w.opts.Readonly }

func (w *TextWidget) Update(msg tea.Msg) (Widget, tea.Cmd) {
	if w.opts.Readonly {
		return w, nil
	}
	before := w.input.Value()
	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	if w.input.Value() == before {
		return w, cmd
	}
	w.touched = true
	return w, tea.Batch(cmd, w.opts.emit(w.question.ID, quiz.TextValue{Text: w.input.Value()}))
}

func (w *TextWidget) Value() (quiz.Value, bool) {
	return quiz.TextValue{Text: w.input.Value()}, w.touched
}

func (w *TextWidget) View(width int) string {
	s := renderPrompt(w.question, width) + "  " + w.input.View() + "\n"
	if w.opts.RevealCorrectness {
		accepted := make([]string, 0, len(w.answers))
		for _, a := range w.answers {
			accepted = append(accepted, strings.TrimSpace(a.Value))
		}
		s += "\n" + theme.Hint.Render("Accepted: "+strings.Join(accepted, ", ")) + "\n"
	}
	return s
}

func (w *TextWidget) KeyHints() []string {
	if w.opts.Readonly {
		return nil
	}
	return []string{"type answer"}
}
