package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is an optional interface for screens that show live
// status, such as a countdown, on the right of the header.
type StatusProvider interface {
	HeaderStatus() string
}

// Countdown is implemented by screens with a running timer. The header
// colors it as time runs out; ok is false when no timer is running.
type Countdown interface {
	RemainingSeconds() (secs int, ok bool)
}

// Closer is implemented by screens that own background work (timers,
// requests) which must stop when the screen leaves the stack.
type Closer interface {
	Close()
}

// EscapeHandler is implemented by screens that handle esc themselves
// instead of letting the app pop them.
type EscapeHandler interface {
	HandlesEscape() bool
}
