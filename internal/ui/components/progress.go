package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// ProgressLabel selects the text drawn after the bar.
type ProgressLabel int

const (
	LabelNone    ProgressLabel = iota
	LabelCount                 // "3/10"
	LabelPercent               // "30%"
)

// ProgressBar draws Value out of Max as a filled bar.
type ProgressBar struct {
	Value, Max float64
	Width      int
	Label      ProgressLabel
	Fill       lipgloss.Style
}

// NewProgressBar returns a bar filled in the secondary color.
func NewProgressBar(value, maxValue float64, width int, label ProgressLabel) ProgressBar {
	return ProgressBar{
		Value: value,
		Max:   maxValue,
		Width: width,
		Label: label,
		Fill:  lipgloss.NewStyle().Background(theme.Secondary),
	}
}

func (p ProgressBar) ratio() float64 {
	if p.Max <= 0 {
		return 0
	}
	return min(max(p.Value/p.Max, 0), 1)
}

func (p ProgressBar) label() string {
	switch p.Label {
	case LabelCount:
		return fmt.Sprintf(" %g/%g", p.Value, p.Max)
	case LabelPercent:
		return fmt.Sprintf(" %3.0f%%", p.ratio()*100)
	}
	return ""
}

func (p ProgressBar) View() string {
	label := p.label()
	bar := max(p.Width-lipgloss.Width(label), 4)
	filled := int(float64(bar) * p.ratio())

	track := lipgloss.NewStyle().Background(theme.Border)
	return p.Fill.Render(strings.Repeat(" ", filled)) +
		track.Render(strings.Repeat(" ", bar-filled)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)
}
