package exam

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/session"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

func (s *ExamScreen) KeyHints() []layout.KeyHint {
	if s.confirmLeave {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}

	switch s.state.Status {
	case session.StatusLoading:
		return []layout.KeyHint{{Key: "Esc", Description: "Cancel"}}
	case session.StatusSubmitting:
		return []layout.KeyHint{{Key: "Esc", Description: "Leave"}}
	case session.StatusFailed:
		if s.state.Quiz != nil {
			return []layout.KeyHint{
				{Key: "R", Description: "Resubmit"},
				{Key: "Esc", Description: "Leave"},
			}
		}
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}

	hints := []layout.KeyHint{}
	if s.capturesText() {
		hints = append(hints, layout.KeyHint{Key: "PgUp/PgDn", Description: "Prev/Next"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "←/→", Description: "Prev/Next"})
	}
	if s.widget != nil {
		for _, h := range s.widget.KeyHints() {
			key, desc, _ := strings.Cut(h, " ")
			hints = append(hints, layout.KeyHint{Key: key, Description: desc})
		}
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+S", Description: "Submit"},
		layout.KeyHint{Key: "Esc", Description: "Leave"},
	)
}

func (s *ExamScreen) View(width, height int) string {
	if s.confirmLeave {
		return renderLeaveConfirm(width, height, s.state.Status == session.StatusSubmitting)
	}

	switch s.state.Status {
	case session.StatusLoading:
		return renderCentered(width, height, theme.Hint.Render("Loading quiz..."))
	case session.StatusFailed:
		if s.state.Quiz == nil {
			return renderError(width, height, s.state.Message, "Press Esc to go back")
		}
		return renderError(width, height, s.state.Message, "Press R to resubmit or Esc to leave")
	}

	return s.renderQuestionView(width)
}

func (s *ExamScreen) renderQuestionView(width int) string {
	state := s.state
	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", state.CurrentIndex+1, len(state.Questions)))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Answered %d/%d", session.AnsweredCount(state), len(state.Questions)))

	infoLine := infoLeft
	if pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4; pad > 0 {
		infoLine += strings.Repeat(" ", pad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	if n := len(state.Questions); n > 0 && width >= 40 {
		progress := components.NewProgressBar(float64(session.AnsweredCount(state)), float64(n), width-4, components.LabelCount)
		b.WriteString("  " + progress.View() + "\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if s.widget != nil {
		body := lipgloss.NewStyle().PaddingLeft(2).Render(s.widget.View(max(width-6, 0)))
		b.WriteString(body)
		b.WriteString("\n")
	}

	switch {
	case state.Status == session.StatusSubmitting:
		b.WriteString("\n  ")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render("Submitting..."))
		if state.Message != "" {
			b.WriteString("  " + theme.Hint.Render(state.Message))
		}
	case state.Message != "":
		b.WriteString("\n  ")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(state.Message))
	}

	return b.String()
}

func renderCentered(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderError(width, height int, message, hint string) string {
	content := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(message) +
		"\n\n" + theme.Hint.Render(hint)
	return renderCentered(width, height, lipgloss.NewStyle().Width(min(width-4, 70)).Align(lipgloss.Center).Render(content))
}

func renderLeaveConfirm(width, height int, submitting bool) string {
	msg := "Leave this quiz? Your answers will not be submitted."
	if submitting {
		msg = "Leave while submitting? Your answers are kept for `quizdeck resubmit`."
	}
	box := theme.Card.Render(
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(msg) +
			"\n\n" + theme.Hint.Render("Y to leave, N to keep going"))
	return renderCentered(width, height, box)
}
