package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// ItemState selects how a list row is styled.
type ItemState int

const (
	ItemNormal ItemState = iota
	ItemSelected
	ItemCorrect
	ItemIncorrect
	ItemDim
)

// ListItem is one row of a List.
type ListItem struct {
	Label  string
	Marker string // e.g. "[x]" or "(•)", rendered before the label
	Note   string // trailing dim text
	State  ItemState
}

// List is a vertical cursor list shared by the answer widgets.
type List struct {
	Items    []ListItem
	Cursor   int
	Lettered bool // prefix rows with A), B), ...
	Inactive bool // hide the cursor
}

// NewList creates a list with the cursor on the first row.
func NewList(items []ListItem, lettered bool) List {
	return List{Items: items, Lettered: lettered}
}

// Update moves the cursor on up/down (k/j). It reports whether the cursor
// moved.
func (l List) Update(msg tea.Msg) (List, bool) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || l.Inactive {
		return l, false
	}

	switch kmsg.String() {
	case "up", "k":
		if l.Cursor > 0 {
			l.Cursor--
			return l, true
		}
	case "down", "j":
		if l.Cursor < len(l.Items)-1 {
			l.Cursor++
			return l, true
		}
	case "home", "g":
		if l.Cursor != 0 {
			l.Cursor = 0
			return l, true
		}
	}
	return l, false
}

// SetCursor places the cursor, clamped to the list.
func (l *List) SetCursor(i int) {
	l.Cursor = max(0, min(i, len(l.Items)-1))
}

// View renders the list. Long labels wrap within width.
func (l List) View(width int) string {
	var b strings.Builder
	for i, item := range l.Items {
		prefix := "  "
		if i == l.Cursor && !l.Inactive {
			prefix = "▸ "
		}
		label := item.Label
		if l.Lettered {
			label = fmt.Sprintf("%s)  %s", letter(i), label)
		}
		if item.Marker != "" {
			label = item.Marker + " " + label
		}
		line := prefix + label
		if item.Note != "" {
			line += "  " + theme.Hint.Render(item.Note)
		}

		style := itemStyle(item.State)
		if i == l.Cursor && !l.Inactive && item.State == ItemNormal {
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		if width > 0 {
			style = style.MaxWidth(width)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func itemStyle(s ItemState) lipgloss.Style {
	switch s {
	case ItemSelected:
		return theme.Selected
	case ItemCorrect:
		return theme.Correct
	case ItemIncorrect:
		return theme.Incorrect
	case ItemDim:
		return lipgloss.NewStyle().Foreground(theme.TextDim)
	default:
		return theme.Unselected
	}
}

func letter(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	return fmt.Sprintf("%d", i+1)
}
