package widgets

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/engine"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/ui/components"
)

// OrderingWidget answers ordering questions. The cursor picks an entry;
// shift+↑/↓ (or K/J) swap it with its neighbour.
type OrderingWidget struct {
	question quiz.Question
	opts     Options
	seq      *engine.Sequence
	list     components.List
}

func newOrderingWidget(q quiz.Question, p quiz.OrderingPayload, r *quiz.Response, opts Options) *OrderingWidget {
	w := &OrderingWidget{
		question: q,
		opts:     opts,
		seq:      engine.NewSequence(p.Items),
	}
	if r != nil {
		if v, ok := r.Value.(quiz.SequenceValue); ok {
			w.seq.Restore(v)
		}
	}
	w.list = components.NewList(nil, false)
	w.list.Inactive = opts.Readonly
	w.refresh()
	return w
}

func (w *OrderingWidget) Init() tea.Cmd { return nil }

func (w *OrderingWidget) Question() quiz.Question { return w.question }

func (w *OrderingWidget) Update(msg tea.Msg) (Widget, tea.Cmd) {
	if w.opts.Readonly {
		return w, nil
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return w, nil
	}

	cursor := w.list.Cursor
	switch kmsg.String() {
	case "shift+up", "K":
		if w.seq.MoveUp(cursor) {
			w.list.Cursor--
			return w, w.changed()
		}
		return w, nil
	case "shift+down", "J":
		if w.seq.MoveDown(cursor) {
			w.list.Cursor++
			return w, w.changed()
		}
		return w, nil
	case "r":
		w.seq.Reset()
		return w, w.changed()
	}

	w.list, _ = w.list.Update(msg)
	return w, nil
}

func (w *OrderingWidget) changed() tea.Cmd {
	w.refresh()
	return w.opts.emit(w.question.ID, w.seq.Value())
}

// Value is the order shown, so a learner who agrees with it has answered.
func (w *OrderingWidget) Value() (quiz.Value, bool) {
	return w.seq.Value(), true
}

func (w *OrderingWidget) refresh() {
	items := make([]components.ListItem, w.seq.Len())
	for p := range items {
		it := w.seq.Item(p)
		item := components.ListItem{Label: it.Text, Marker: fmt.Sprintf("%d.", p+1)}
		if w.opts.RevealCorrectness {
			if it.CorrectPosition == p {
				item.State = components.ItemCorrect
			} else {
				item.State = components.ItemIncorrect
				item.Note = fmt.Sprintf("belongs at %d", it.CorrectPosition+1)
			}
		}
		items[p] = item
	}
	w.list.Items = items
}

func (w *OrderingWidget) View(width int) string {
	return renderPrompt(w.question, width) + w.list.View(width)
}

func (w *OrderingWidget) KeyHints() []string {
	if w.opts.Readonly {
		return nil
	}
	return []string{"↑↓ move cursor", "K/J shift item", "r reset"}
}
