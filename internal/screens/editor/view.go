package editor

import (
	"fmt"
	"slices"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/authoring"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

func (s *EditorScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeLoading:
		return []layout.KeyHint{{Key: "Esc", Description: "Cancel"}}
	case modeFailed:
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	case modeConfirmDiscard:
		return []layout.KeyHint{
			{Key: "Y", Description: "Discard"},
			{Key: "N", Description: "Keep editing"},
		}
	case modePickKind:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Kind"},
			{Key: "Enter", Description: "Choose"},
			{Key: "Esc", Description: "Cancel"},
		}
	case modeEditText, modeDraftTopic:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
			{Key: "Esc", Description: "Cancel"},
		}
	}

	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "P", Description: "Preview"},
		{Key: "A", Description: "Add"},
		{Key: "E", Description: "Text"},
		{Key: "C", Description: "Kind"},
		{Key: "J/K", Description: "Move"},
		{Key: "D", Description: "Delete"},
	}
	if s.deps.Drafter != nil {
		hints = append(hints, layout.KeyHint{Key: "G", Description: "Draft"})
	}
	return append(hints,
		layout.KeyHint{Key: "Ctrl+S", Description: "Save"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
}

func (s *EditorScreen) View(width, height int) string {
	switch s.mode {
	case modeLoading:
		return renderCentered(width, height, theme.Hint.Render("Loading quiz..."))
	case modeFailed:
		content := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(s.errMsg) +
			"\n\n" + theme.Hint.Render("Press Esc to go back")
		return renderCentered(width, height, content)
	case modeConfirmDiscard:
		box := theme.Card.Render(
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Discard unsaved changes?") +
				"\n\n" + theme.Hint.Render("Y to discard, N to keep editing"))
		return renderCentered(width, height, box)
	}

	listWidth := width
	if s.preview != nil && width >= 80 {
		listWidth = width / 2
	}

	left := s.renderList(listWidth)
	switch s.mode {
	case modePickKind:
		left += "\n" + theme.Subtitle.Render(s.kindPrompt()) + "\n" + s.kinds.View(listWidth-4)
	case modeEditText:
		left += "\n" + theme.Subtitle.Render("Question text") + "\n  " + s.input.View()
	case modeDraftTopic:
		left += "\n" + theme.Subtitle.Render("Draft a "+s.draftKind.Label()+" question about") + "\n  " + s.input.View()
	}
	if s.message != "" {
		left += "\n\n  " + lipgloss.NewStyle().Foreground(theme.Accent).Render(s.message)
	}

	if s.preview == nil {
		return left
	}

	previewBox := theme.Card.Width(max(width-listWidth-4, 20)).Render(
		theme.Hint.Render("Preview") + "\n\n" + s.preview.View(max(width-listWidth-10, 10)))
	if listWidth == width {
		return left + "\n\n" + previewBox
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, previewBox)
}

func (s *EditorScreen) kindPrompt() string {
	switch s.kindPurpose {
	case pickForChange:
		return "Change kind (creates a new question id)"
	case pickForDraft:
		return "Kind of question to draft"
	default:
		return "Kind of new question"
	}
}

func (s *EditorScreen) renderList(width int) string {
	qs := s.editor.Questions()

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("  %d question(s)", len(qs))))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n")

	if len(qs) == 0 {
		b.WriteString(theme.Hint.Render("  No questions yet. Press A to add one."))
		b.WriteString("\n")
		return b.String()
	}

	plan := s.editor.Plan()
	for i, q := range qs {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "▸ "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		if !q.Kind.Supported() {
			style = style.Foreground(theme.TextDim)
		}

		text := q.Text
		if text == "" {
			text = "(no text)"
		}
		line := fmt.Sprintf("%s%2d. %s", prefix, i+1, text)
		tag := theme.Hint.Render(" " + q.Kind.Label() + changeMarker(plan, q))
		b.WriteString(style.MaxWidth(max(width-lipgloss.Width(tag), 10)).Render(line))
		b.WriteString(tag)
		b.WriteString("\n")
	}
	return b.String()
}

// changeMarker flags questions that differ from the platform copy.
func changeMarker(p authoring.Plan, q quiz.Question) string {
	switch {
	case slices.Contains(p.Creates, q.ID):
		return "  new"
	case slices.Contains(p.Updates, q.ID):
		return "  edited"
	}
	return ""
}

func renderCentered(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
