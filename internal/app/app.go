// Package app hosts the root Bubble Tea model: a screen stack framed by a
// header and a key-hint footer.
package app

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

var (
	backHints = []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "F1", Description: "Keys"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	rootHints = []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "F1", Description: "Keys"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
)

// Model frames the active screen of a router. F1 toggles a panel listing
// every key the active screen accepts, for when the footer is too narrow
// to show them.
type Model struct {
	router   *router.Router
	width    int
	height   int
	showKeys bool
}

// NewModel returns a Model with initial at the bottom of the stack.
func NewModel(initial screen.Screen) Model {
	return Model{router: router.New(initial)}
}

func (m Model) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case router.PopScreenMsg:
		if m.router.Depth() <= 1 {
			return m.quit()
		}
	case tea.KeyPressMsg:
		if next, cmd, done := m.handleKey(msg); done {
			return next, cmd
		}
	}
	return m, m.router.Update(msg)
}

// handleKey deals with the keys the frame owns. done is false when the key
// belongs to the active screen.
func (m Model) handleKey(msg tea.KeyPressMsg) (Model, tea.Cmd, bool) {
	key := msg.String()
	if key == "ctrl+c" {
		next, cmd := m.quit()
		return next, cmd, true
	}
	if m.showKeys {
		m.showKeys = false
		return m, nil, true
	}

	switch key {
	case "f1":
		m.showKeys = true
		return m, nil, true
	case "esc":
		if h, ok := m.router.Active().(screen.EscapeHandler); ok && h.HandlesEscape() {
			return m, nil, false
		}
		if m.router.Depth() > 1 {
			return m, func() tea.Msg { return router.PopScreenMsg{} }, true
		}
		return m, nil, true
	}
	return m, nil, false
}

// quit closes every screen so timers stop and pending work is saved.
func (m Model) quit() (Model, tea.Cmd) {
	m.router.CloseAll()
	return m, tea.Quit
}

func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m Model) render() string {
	active := m.router.Active()
	switch {
	case active == nil, m.width == 0 || m.height == 0:
		return ""
	case layout.IsTooSmall(m.width, m.height):
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	hints := m.hints(active)
	header := layout.RenderHeader(active.Title(), headerStatus(active), m.width)
	footer := layout.RenderFooter(hints, m.width)
	body := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	var content string
	if m.showKeys {
		content = lipgloss.Place(m.width, body, lipgloss.Center, lipgloss.Center, keysPanel(hints))
	} else {
		content = m.router.View(m.width, body)
	}
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// headerStatus prefers a running countdown over the screen's own status.
func headerStatus(s screen.Screen) string {
	if cd, ok := s.(screen.Countdown); ok {
		if secs, running := cd.RemainingSeconds(); running {
			return layout.Countdown(secs)
		}
	}
	if sp, ok := s.(screen.StatusProvider); ok {
		return lipgloss.NewStyle().Foreground(theme.Accent).Render(sp.HeaderStatus())
	}
	return ""
}

func (m Model) hints(s screen.Screen) []layout.KeyHint {
	if kp, ok := s.(screen.KeyHintProvider); ok {
		return kp.KeyHints()
	}
	if m.router.Depth() > 1 {
		return backHints
	}
	return rootHints
}

func keysPanel(hints []layout.KeyHint) string {
	keyW := 0
	for _, h := range hints {
		keyW = max(keyW, lipgloss.Width(h.Key))
	}
	keyStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Width(keyW + 2)

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("Keys") + "\n\n")
	for _, h := range hints {
		b.WriteString(keyStyle.Render(h.Key) + theme.Unselected.Render(h.Description) + "\n")
	}
	b.WriteString("\n" + theme.Hint.Render("any key to close"))
	return theme.Card.Render(b.String())
}

// Run starts the program with initial as the first screen. Cancelling ctx
// stops it.
func Run(ctx context.Context, initial screen.Screen) error {
	_, err := tea.NewProgram(NewModel(initial), tea.WithContext(ctx)).Run()
	return err
}
