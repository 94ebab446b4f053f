package components

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// MenuItem is one entry of a Menu. Hint is shown under the menu while the
// item is selected.
type MenuItem struct {
	Label    string
	Hint     string
	Disabled bool
	Action   func() tea.Cmd
}

// Menu is a vertical list of actions. The cursor skips disabled items and
// wraps around; digits 1-9 pick an item directly.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu selects the first enabled item. Selected is -1 when every item is
// disabled.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.Selected = m.next(-1, 1)
	return m
}

// next returns the first enabled index after from in direction dir,
// wrapping around, or -1.
func (m Menu) next(from, dir int) int {
	n := len(m.Items)
	for step := 1; step <= n; step++ {
		i := ((from+dir*step)%n + n) % n
		if !m.Items[i].Disabled {
			return i
		}
	}
	return -1
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || m.Selected < 0 {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k", "shift+tab":
		m.Selected = m.next(m.Selected, -1)
	case "down", "j", "tab":
		m.Selected = m.next(m.Selected, 1)
	case "enter":
		return m, m.activate()
	default:
		n, err := strconv.Atoi(key)
		if err != nil || n < 1 || n > len(m.Items) || m.Items[n-1].Disabled {
			return m, nil
		}
		m.Selected = n - 1
		return m, m.activate()
	}
	return m, nil
}

func (m Menu) activate() tea.Cmd {
	if m.Selected < 0 || m.Items[m.Selected].Action == nil {
		return nil
	}
	return m.Items[m.Selected].Action()
}

// Hint returns the hint of the selected item.
func (m Menu) Hint() string {
	if m.Selected < 0 {
		return ""
	}
	return m.Items[m.Selected].Hint
}

// View renders the items as numbered text lines.
func (m Menu) View() string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	lines := make([]string, 0, len(m.Items))
	for i, item := range m.Items {
		label := strconv.Itoa(i+1) + ". " + item.Label
		switch {
		case i == m.Selected:
			lines = append(lines, theme.Selected.Render("▸ "+label))
		case item.Disabled:
			lines = append(lines, dim.Render("  "+label))
		default:
			lines = append(lines, theme.Unselected.Render("  "+label))
		}
	}
	return strings.Join(lines, "\n")
}
