package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// Button fires OnPress on enter or space while focused.
type Button struct {
	Label   string
	Focused bool
	OnPress func() tea.Cmd
}

func NewButton(label string, onPress func() tea.Cmd) Button {
	return Button{Label: label, Focused: true, OnPress: onPress}
}

func (b Button) Focus() Button { b.Focused = true; return b }
func (b Button) Blur() Button  { b.Focused = false; return b }

func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || !b.Focused || b.OnPress == nil {
		return b, nil
	}
	switch kmsg.String() {
	case "enter", "space":
		return b, b.OnPress()
	}
	return b, nil
}

func (b Button) View() string {
	if b.Focused {
		return theme.ButtonFocused.Render(b.Label)
	}
	return theme.ButtonBlurred.Render(b.Label)
}
