package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyPress(r rune) tea.KeyPressMsg { return tea.KeyPressMsg{Code: r, Text: string(r)} }

var (
	up    = tea.KeyPressMsg{Code: tea.KeyUp}
	down  = tea.KeyPressMsg{Code: tea.KeyDown}
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
	space = tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
)

type picked string

func pick(label string) func() tea.Cmd {
	return func() tea.Cmd { return func() tea.Msg { return picked(label) } }
}

func TestMenu_SkipsDisabledAndWraps(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "A", Disabled: true},
		{Label: "B", Action: pick("B")},
		{Label: "C", Disabled: true},
		{Label: "D", Action: pick("D"), Hint: "last"},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(down)
	assert.Equal(t, 3, m.Selected)
	assert.Equal(t, "last", m.Hint())

	m, _ = m.Update(down)
	assert.Equal(t, 1, m.Selected, "wraps to the first enabled item")

	m, _ = m.Update(up)
	assert.Equal(t, 3, m.Selected)

	_, cmd := m.Update(enter)
	require.NotNil(t, cmd)
	assert.Equal(t, picked("D"), cmd())
}

func TestMenu_DigitShortcut(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "A", Action: pick("A")},
		{Label: "B", Disabled: true, Action: pick("B")},
		{Label: "C", Action: pick("C")},
	})

	m, cmd := m.Update(keyPress('3'))
	assert.Equal(t, 2, m.Selected)
	require.NotNil(t, cmd)
	assert.Equal(t, picked("C"), cmd())

	m, cmd = m.Update(keyPress('2'))
	assert.Nil(t, cmd, "disabled items ignore their digit")
	assert.Equal(t, 2, m.Selected)

	_, cmd = m.Update(keyPress('9'))
	assert.Nil(t, cmd)
}

func TestMenu_AllDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "A", Disabled: true}})
	assert.Equal(t, -1, m.Selected)
	m, cmd := m.Update(enter)
	assert.Nil(t, cmd)
	assert.Empty(t, m.Hint())
	assert.Contains(t, ansi.Strip(m.View()), "1. A")
}

func TestMenu_View(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "TAKE"}, {Label: "EDIT"}})
	lines := strings.Split(ansi.Strip(m.View()), "\n")
	assert.Equal(t, []string{"▸ 1. TAKE", "  2. EDIT"}, lines)
}

func TestButton(t *testing.T) {
	b := NewButton("Done", pick("done"))
	for _, k := range []tea.KeyPressMsg{enter, space} {
		_, cmd := b.Update(k)
		require.NotNil(t, cmd)
		assert.Equal(t, picked("done"), cmd())
	}

	_, cmd := b.Update(keyPress('x'))
	assert.Nil(t, cmd)

	b = b.Blur()
	_, cmd = b.Update(enter)
	assert.Nil(t, cmd, "blurred buttons ignore keys")
	assert.Contains(t, ansi.Strip(b.View()), "Done")
	assert.True(t, b.Focus().Focused)
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name      string
		bar       ProgressBar
		wantLabel string
		wantWidth int
	}{
		{"count", NewProgressBar(3, 10, 30, LabelCount), " 3/10", 30},
		{"percent", NewProgressBar(75, 100, 30, LabelPercent), "  75%", 30},
		{"none", NewProgressBar(1, 2, 20, LabelNone), "", 20},
		{"over max clamps", NewProgressBar(12, 10, 20, LabelPercent), " 100%", 20},
		{"zero max", NewProgressBar(0, 0, 20, LabelPercent), "   0%", 20},
		{"narrow keeps a minimum bar", NewProgressBar(1, 2, 2, LabelNone), "", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ansi.Strip(tt.bar.View())
			assert.True(t, strings.HasSuffix(out, tt.wantLabel), "got %q", out)
			assert.Equal(t, tt.wantWidth, ansi.StringWidth(out))
		})
	}
}

func TestTextInput(t *testing.T) {
	in := NewTextInput("answer", 10)
	for _, r := range "Par" {
		in, _ = in.Update(keyPress(r))
	}
	assert.Equal(t, "Par", in.Value())
	left, ok := in.Remaining()
	assert.True(t, ok)
	assert.Equal(t, 7, left)
	assert.NotContains(t, ansi.Strip(in.View()), "left")

	in.SetValue("Paris, Fra")
	assert.Contains(t, ansi.Strip(in.View()), "0 left")

	in.Mark(true)
	assert.Contains(t, ansi.Strip(in.View()), "✓")
	in.Mark(false)
	assert.Contains(t, ansi.Strip(in.View()), "✗")

	in.Blur()
	in, _ = in.Update(keyPress('x'))
	assert.Equal(t, "Paris, Fra", in.Value(), "blurred input ignores typing")

	_, ok = NewTextInput("id", 0).Remaining()
	assert.False(t, ok)
}
