package widgets

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/engine"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// AssociationWidget answers association questions with the keyboard: tab
// picks the held item, enter places it on the target under the cursor,
// backspace empties the target.
type AssociationWidget struct {
	question quiz.Question
	opts     Options
	board    *engine.Board
	targets  components.List
	held     int // index into board.Items(), -1 when nothing is held
	touched  bool
}

func newAssociationWidget(q quiz.Question, p quiz.AssociationPayload, r *quiz.Response, opts Options) *AssociationWidget {
	w := &AssociationWidget{
		question: q,
		opts:     opts,
		board:    engine.NewBoard(p.Items, p.Targets),
		held:     -1,
	}
	if r != nil {
		if v, ok := r.Value.(quiz.MappingValue); ok {
			w.board.Restore(v)
			w.touched = true
		}
	}
	if len(p.Items) > 0 {
		w.held = 0
	}
	w.targets = components.NewList(nil, false)
	w.targets.Inactive = opts.Readonly
	w.refresh()
	return w
}

func (w *AssociationWidget) Init() tea.Cmd { return nil }

func (w *AssociationWidget) Question() quiz.Question { return w.question }

// Held returns the id of the item that enter would place.
func (w *AssociationWidget) Held() string {
	items := w.board.Items()
	if w.held < 0 || w.held >= len(items) {
		return ""
	}
	return items[w.held].ID
}

func (w *AssociationWidget) Update(msg tea.Msg) (Widget, tea.Cmd) {
	if w.opts.Readonly {
		return w, nil
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return w, nil
	}

	targets := w.board.Targets()
	switch kmsg.String() {
	case "tab":
		w.cycleHeld(1)
		w.refresh()
		return w, nil
	case "shift+tab":
		w.cycleHeld(-1)
		w.refresh()
		return w, nil
	case "enter", "space":
		item := w.Held()
		if item == "" || len(targets) == 0 {
			return w, nil
		}
		if err := w.board.Place(item, targets[w.targets.Cursor].ID); err != nil {
			return w, nil
		}
		w.cycleHeld(1)
		return w, w.changed()
	case "backspace", "delete", "x":
		if len(targets) == 0 {
			return w, nil
		}
		if _, placed := w.board.Occupant(targets[w.targets.Cursor].ID); !placed {
			return w, nil
		}
		_ = w.board.Unplace(targets[w.targets.Cursor].ID)
		return w, w.changed()
	case "r":
		w.board.Reset()
		return w, w.changed()
	}

	w.targets, _ = w.targets.Update(msg)
	return w, nil
}

// cycleHeld moves the held item, preferring unplaced items.
func (w *AssociationWidget) cycleHeld(step int) {
	items := w.board.Items()
	n := len(items)
	if n == 0 {
		w.held = -1
		return
	}
	available := make(map[string]bool)
	for _, id := range w.board.Available() {
		available[id] = true
	}
	start := max(w.held, 0)
	for i := 1; i <= n; i++ {
		idx := ((start+step*i)%n + n) % n
		if available[items[idx].ID] {
			w.held = idx
			return
		}
	}
	w.held = ((start+step)%n + n) % n
}

func (w *AssociationWidget) changed() tea.Cmd {
	w.touched = true
	w.refresh()
	return w.opts.emit(w.question.ID, w.board.Value())
}

func (w *AssociationWidget) Value() (quiz.Value, bool) {
	return w.board.Value(), w.touched
}

func (w *AssociationWidget) itemText(id string) string {
	for _, it := range w.board.Items() {
		if it.ID == id {
			return it.Text
		}
	}
	return id
}

func (w *AssociationWidget) refresh() {
	targets := w.board.Targets()
	rows := make([]components.ListItem, len(targets))
	for i, t := range targets {
		row := components.ListItem{Label: t.Text, Marker: "→", Note: "(empty)"}
		if id, ok := w.board.Occupant(t.ID); ok {
			row.Note = w.itemText(id)
			row.State = components.ItemSelected
		}
		if w.opts.RevealCorrectness {
			if w.board.TargetCorrect(t.ID) {
				row.State = components.ItemCorrect
			} else {
				row.State = components.ItemIncorrect
				row.Note += "  expected: " + w.itemText(t.ExpectedItemID)
			}
		}
		rows[i] = row
	}
	w.targets.Items = rows
}

func (w *AssociationWidget) View(width int) string {
	var b strings.Builder
	b.WriteString(renderPrompt(w.question, width))

	var pool []string
	for _, id := range w.board.Available() {
		text := w.itemText(id)
		if id == w.Held() && !w.opts.Readonly {
			text = theme.Selected.Render("[" + text + "]")
		}
		pool = append(pool, text)
	}
	if len(pool) == 0 {
		pool = append(pool, theme.Hint.Render("all items placed"))
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Items: "))
	b.WriteString(strings.Join(pool, "  "))
	b.WriteString("\n")
	if held := w.Held(); held != "" && !w.opts.Readonly {
		if _, placed := w.board.TargetOf(held); placed {
			b.WriteString(theme.Hint.Render("Holding " + w.itemText(held) + " (placed; enter moves it)"))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(w.targets.View(width))
	return b.String()
}

func (w *AssociationWidget) KeyHints() []string {
	if w.opts.Readonly {
		return nil
	}
	return []string{"tab pick item", "enter place", "x remove", "r reset"}
}
