// Package theme holds the quizdeck palette and the shared lipgloss styles.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette. Chalkboard greens with an amber accent; red and green carry
// grading meaning and are not used decoratively.
var (
	Primary   = lipgloss.Color("#38BDF8") // Sky
	Secondary = lipgloss.Color("#2DD4BF") // Teal
	Accent    = lipgloss.Color("#FBBF24") // Amber
	Success   = lipgloss.Color("#4ADE80") // Green
	Warning   = lipgloss.Color("#FB923C") // Orange
	Error     = lipgloss.Color("#F87171") // Red
	Text      = lipgloss.Color("#E2E8F0")
	TextDim   = lipgloss.Color("#8893A6")
	BgDark    = lipgloss.Color("#0B1F1A") // Chalkboard
	BgCard    = lipgloss.Color("#13302A")
	Border    = lipgloss.Color("#2F4F46")
)

var (
	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Bar = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border)
)

// Grading and selection.
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Buttons.
var (
	ButtonFocused = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonBlurred = lipgloss.NewStyle().
			Foreground(TextDim).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)

// Countdown styles the remaining time of a timed quiz: plain while there
// is more than a minute, orange in the last minute, red in the last ten
// seconds.
func Countdown(seconds int) lipgloss.Style {
	switch {
	case seconds <= 10:
		return lipgloss.NewStyle().Foreground(Error).Bold(true)
	case seconds <= 60:
		return lipgloss.NewStyle().Foreground(Warning).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(Accent)
	}
}
