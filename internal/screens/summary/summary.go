// Package summary shows the outcome of a submitted quiz.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/session"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// SummaryScreen displays the result of a completed session.
type SummaryScreen struct {
	summary *session.Summary
	done    components.Button
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.Summary) *SummaryScreen {
	return &SummaryScreen{
		summary: summary,
		done:    components.NewButton("Done", popCmd),
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Result"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "esc", "q":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	var cmd tea.Cmd
	s.done, cmd = s.done.Update(msg)
	return s, cmd
}

func popCmd() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text) + "\n"
	}

	var b strings.Builder

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), sum.QuizTitle))
	b.WriteString("\n")

	if sum.Result != nil {
		verdict, style := "Passed", theme.Correct
		if !sum.Result.Passed {
			verdict, style = "Not passed", theme.Incorrect
		}
		b.WriteString(center(style, verdict))
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text).Bold(true),
			fmt.Sprintf("Score: %.0f / 100", sum.Result.Score)))
		bar := components.NewProgressBar(sum.Result.Score, 100, min(width-4, 40), components.LabelNone)
		bar.Fill = lipgloss.NewStyle().Background(style.GetForeground())
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()) + "\n")
	} else {
		b.WriteString(center(theme.Incorrect, "No result received"))
	}
	b.WriteString("\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("Time taken: %d:%02d", mins, secs)))

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text),
		fmt.Sprintf("Answered: %d of %d", sum.Answered, sum.Total)))

	if sum.Trigger == session.TriggerTimer {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Accent),
			"Submitted automatically when time ran out"))
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.done.View()))

	return b.String()
}
