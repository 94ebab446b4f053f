package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/ui/layout"
)

type stubScreen struct {
	title    string
	escapes  bool
	received []tea.Msg
	initRan  bool
	closed   bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.received = append(s.received, msg)
	return s, nil
}

func (s *stubScreen) View(int, int) string { return "body of " + s.title }
func (s *stubScreen) Title() string        { return s.title }
func (s *stubScreen) HandlesEscape() bool  { return s.escapes }
func (s *stubScreen) HeaderStatus() string { return "⏱ 01:00" }
func (s *stubScreen) Close()               { s.closed = true }
func (s *stubScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Ctrl+S", Description: "Submit"}}
}

var (
	esc = tea.KeyPressMsg{Code: tea.KeyEscape}
	f1  = tea.KeyPressMsg{Code: tea.KeyF1}
)

func sized(m Model) Model {
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model)
}

func TestInitRunsFirstScreen(t *testing.T) {
	s := &stubScreen{title: "home"}
	NewModel(s).Init()
	assert.True(t, s.initRan)
}

func TestEscape(t *testing.T) {
	t.Run("pops a nested screen", func(t *testing.T) {
		m := NewModel(&stubScreen{title: "home"})
		m.router.Push(&stubScreen{title: "history"})

		_, cmd := m.Update(esc)
		require.NotNil(t, cmd)
		assert.IsType(t, router.PopScreenMsg{}, cmd())
	})

	t.Run("is forwarded to a screen that handles it", func(t *testing.T) {
		m := NewModel(&stubScreen{title: "home"})
		top := &stubScreen{title: "quiz", escapes: true}
		m.router.Push(top)

		_, cmd := m.Update(esc)
		assert.Nil(t, cmd)
		assert.Len(t, top.received, 1)
	})

	t.Run("is ignored at the root", func(t *testing.T) {
		root := &stubScreen{title: "home"}
		_, cmd := NewModel(root).Update(esc)
		assert.Nil(t, cmd)
		assert.Empty(t, root.received)
	})
}

func TestRenderUsesScreenStatusAndHints(t *testing.T) {
	view := sized(NewModel(&stubScreen{title: "Geography"})).render()
	for _, want := range []string{"Geography", "01:00", "Submit", "body of Geography"} {
		assert.Contains(t, view, want)
	}
}

func TestRenderTooSmall(t *testing.T) {
	next, _ := NewModel(&stubScreen{title: "x"}).Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, next.(Model).render(), "too small")
	assert.Empty(t, NewModel(&stubScreen{}).render(), "nothing before the first size")
}

func TestKeysPanel(t *testing.T) {
	root := &stubScreen{title: "Geography"}
	m := sized(NewModel(root))

	next, cmd := m.Update(f1)
	assert.Nil(t, cmd)
	m = next.(Model)
	view := ansi.Strip(m.render())
	assert.Contains(t, view, "Ctrl+S")
	assert.Contains(t, view, "any key to close")
	assert.NotContains(t, view, "body of Geography")

	next, _ = m.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	m = next.(Model)
	assert.Contains(t, m.render(), "body of Geography")
	assert.Empty(t, root.received, "keys that close the panel are not forwarded")
}

func TestQuitClosesScreens(t *testing.T) {
	for name, msg := range map[string]tea.Msg{
		"pop at root": router.PopScreenMsg{},
		"ctrl+c":      tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl},
	} {
		t.Run(name, func(t *testing.T) {
			s := &stubScreen{title: "quiz"}
			_, cmd := NewModel(s).Update(msg)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.True(t, s.closed)
		})
	}
}
