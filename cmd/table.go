package cmd

import (
	"io"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// newTable returns a table with a rule under the header and no outer
// border. Columns whose index is in right are right-aligned.
func newTable(headers []string, right ...int) *table.Table {
	alignRight := make(map[int]bool, len(right))
	for _, c := range right {
		alignRight[c] = true
	}

	cell := lipgloss.NewStyle().Padding(0, 1)
	head := cell.Foreground(theme.Primary).Bold(true)
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := cell
			if row == table.HeaderRow {
				s = head
			}
			if alignRight[col] {
				s = s.Align(lipgloss.Right)
			}
			return s
		})
}

// printTable writes t, downsampling colors to what w supports.
func printTable(w io.Writer, t *table.Table) {
	lipgloss.Fprintln(w, t.String())
}

// clip cuts s to n display columns, marking the cut with an ellipsis.
func clip(s string, n int) string {
	return ansi.Truncate(s, n, "…")
}
