package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24
)

const brand = "  quizdeck"

// KeyHint is a key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks the learner to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"The terminal is too small for quizdeck.\n\nResize to at least %d x %d\n(now %d x %d)",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader draws the top bar: brand on the left, the screen title
// centered and status on the right. status is rendered as given so callers
// can style it. A title that does not fit is cut with an ellipsis.
func RenderHeader(title, status string, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(brand)

	inner := max(width-4, 0)
	room := inner - lipgloss.Width(left) - lipgloss.Width(status) - 2
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(ansi.Truncate(title, max(room, 0), "…"))

	leftGap := max((inner-lipgloss.Width(center))/2-lipgloss.Width(left), 1)
	rightGap := max(inner-lipgloss.Width(left)-leftGap-lipgloss.Width(center)-lipgloss.Width(status), 1)

	line := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + status
	return theme.Bar.Width(width).Render(line)
}

// RenderFooter draws the key hints. When they overflow the bar the
// descriptions are dropped, and whatever still does not fit is cut.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	full := make([]string, 0, len(hints))
	keys := make([]string, 0, len(hints))
	for _, h := range hints {
		full = append(full, key.Render(h.Key)+" "+desc.Render(h.Description))
		keys = append(keys, key.Render(h.Key))
	}

	inner := max(width-4, 0)
	line := " " + strings.Join(full, "   ")
	if lipgloss.Width(line) > inner {
		line = ansi.Truncate(" "+strings.Join(keys, desc.Render(" · ")), inner, "…")
	}
	return theme.Bar.Width(width).Render(line)
}

// RenderFrame stacks header, content and footer, padding the content to
// fill the space between them.
func RenderFrame(header, content, footer string, width, height int) string {
	body := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	padded := lipgloss.NewStyle().Width(width).Height(body).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, padded, footer)
}

// FormatCountdown renders seconds as MM:SS. Negative values clamp to zero.
func FormatCountdown(seconds int) string {
	seconds = max(seconds, 0)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Countdown is the styled header status for a timed quiz.
func Countdown(seconds int) string {
	return theme.Countdown(seconds).Render("⏱ " + FormatCountdown(seconds))
}
