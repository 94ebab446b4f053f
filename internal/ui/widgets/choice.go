package widgets

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/engine"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/ui/components"
)

// ChoiceWidget answers single-choice, multi-choice and true/false
// questions.
type ChoiceWidget struct {
	question quiz.Question
	opts     Options
	set      *engine.ChoiceSet
	list     components.List
	touched  bool
}

func newChoiceWidget(q quiz.Question, options []quiz.Option, multi bool, r *quiz.Response, opts Options) *ChoiceWidget {
	w := &ChoiceWidget{
		question: q,
		opts:     opts,
		set:      engine.NewChoiceSet(options, multi),
	}
	if r != nil {
		w.set.Restore(r.Value)
		w.touched = true
	}
	w.list = components.NewList(nil, true)
	w.list.Inactive = opts.Readonly
	w.refresh()
	return w
}

func (w *ChoiceWidget) Init() tea.Cmd { return nil }

func (w *ChoiceWidget) Question() quiz.Question { return w.question }

// Multi reports whether the widget toggles several options.
func (w *ChoiceWidget) Multi() bool { return w.set.Multi() }

func (w *ChoiceWidget) Update(msg tea.Msg) (Widget, tea.Cmd) {
	if w.opts.Readonly {
		return w, nil
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return w, nil
	}

	switch key := kmsg.String(); key {
	case "enter", "space", "x":
		return w, w.choose(w.list.Cursor)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			idx := int(key[0] - '1')
			if idx < len(w.set.Options()) {
				w.list.SetCursor(idx)
				return w, w.choose(idx)
			}
			return w, nil
		}
	}

	w.list, _ = w.list.Update(msg)
	return w, nil
}

func (w *ChoiceWidget) choose(idx int) tea.Cmd {
	opts := w.set.Options()
	if idx < 0 || idx >= len(opts) {
		return nil
	}
	if err := w.set.Select(opts[idx].ID); err != nil {
		return nil
	}
	w.touched = true
	w.refresh()
	return w.opts.emit(w.question.ID, w.set.Value())
}

func (w *ChoiceWidget) Value() (quiz.Value, bool) {
	return w.set.Value(), w.touched
}

func (w *ChoiceWidget) refresh() {
	options := w.set.Options()
	items := make([]components.ListItem, len(options))
	for i, o := range options {
		selected := w.set.IsSelected(o.ID)
		item := components.ListItem{Label: o.Text, Marker: w.marker(selected)}
		switch {
		case w.opts.RevealCorrectness && o.IsCorrect:
			item.State = components.ItemCorrect
		case w.opts.RevealCorrectness && selected:
			item.State = components.ItemIncorrect
		case w.opts.RevealCorrectness:
			item.State = components.ItemDim
		case selected:
			item.State = components.ItemSelected
		}
		items[i] = item
	}
	w.list.Items = items
}

func (w *ChoiceWidget) marker(selected bool) string {
	if w.set.Multi() {
		if selected {
			return "[x]"
		}
		return "[ ]"
	}
	if selected {
		return "(•)"
	}
	return "( )"
}

func (w *ChoiceWidget) View(width int) string {
	return renderPrompt(w.question, width) + w.list.View(width)
}

func (w *ChoiceWidget) KeyHints() []string {
	if w.opts.Readonly {
		return nil
	}
	if w.set.Multi() {
		return []string{"↑↓ move", "enter toggle", "1-9 toggle"}
	}
	return []string{"↑↓ move", "enter select", "1-9 select"}
}
