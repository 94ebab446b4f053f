package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

const titleFull = ` ██████╗ ██╗   ██╗██╗███████╗██████╗ ███████╗ ██████╗██╗  ██╗
██╔═══██╗██║   ██║██║╚══███╔╝██╔══██╗██╔════╝██╔════╝██║ ██╔╝
██║   ██║██║   ██║██║  ███╔╝ ██║  ██║█████╗  ██║     █████╔╝
██║▄▄ ██║██║   ██║██║ ███╔╝  ██║  ██║██╔══╝  ██║     ██╔═██╗
╚██████╔╝╚██████╔╝██║███████╗██████╔╝███████╗╚██████╗██║  ██╗
 ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝╚═════╝ ╚══════╝ ╚═════╝╚═╝  ╚═╝`

const titleCompact = "Q · U · I · Z · D · E · C · K"

// titleFullWidth is the column width of titleFull.
const titleFullWidth = 61

// contentWidth returns the uniform inner width used for all sections.
// All boxes are rendered at this width so they visually align.
func contentWidth(frameWidth int) int {
	// Leave room for frame border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	title := titleFull
	if compact || cw < titleFullWidth {
		title = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderStatsBar renders the journal stats in a bordered box matching
// content width.
func renderStatsBar(st stats, cw int, compact bool) string {
	takenStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	scoreStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	pendingStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	last := dimStyle.Render("no score yet")
	if st.lastScore != nil {
		last = scoreStyle.Render(fmt.Sprintf("LAST %.0f", *st.lastScore))
	}

	pending := dimStyle.Render("NOTHING PENDING")
	if st.pending > 0 {
		pending = pendingStyle.Render(fmt.Sprintf("%d PENDING", st.pending))
	}

	sep := "  "
	if compact {
		sep = " "
	}
	content := strings.Join([]string{
		takenStyle.Render(fmt.Sprintf("%d TAKEN", st.taken)),
		last,
		pending,
	}, sep)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw-2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(content)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenu draws the menu as bordered buttons, or as the menu's own text
// list when the terminal is compact. The selected item's hint goes below.
func renderMenu(m components.Menu, cw int, compact bool) string {
	body := m.View()
	if !compact {
		btn := lipgloss.NewStyle().
			Width(buttonWidth).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

		buttons := make([]string, 0, len(m.Items))
		for i, item := range m.Items {
			switch {
			case i == m.Selected:
				buttons = append(buttons, btn.Bold(true).
					Foreground(theme.BgDark).
					Background(theme.Primary).
					BorderForeground(theme.Primary).
					Render("▸ "+item.Label))
			case item.Disabled:
				buttons = append(buttons, btn.Foreground(theme.TextDim).BorderForeground(theme.BgCard).Render(item.Label))
			default:
				buttons = append(buttons, btn.Foreground(theme.Text).BorderForeground(theme.Border).Render(item.Label))
			}
		}
		body = strings.Join(buttons, "\n")
	}
	if hint := m.Hint(); hint != "" {
		body += "\n\n" + theme.Hint.Render(hint)
	}
	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(body)
}

// renderPrompt renders the quiz id prompt in place of the menu.
func renderPrompt(label, input, errMsg string, cw int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(label))
	b.WriteString("\n\n")
	b.WriteString(input)
	if errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(errMsg))
	}
	return theme.Card.Width(cw).Render(b.String())
}

// renderNotice renders a dim one-line note, e.g. a missing API config.
func renderNotice(text string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}

// renderFrame wraps content in a double-border frame, centered vertically
// and horizontally within the given dimensions.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).   // account for border chars
		Height(height-2). // account for border chars
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
