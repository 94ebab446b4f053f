// Package history lists the sessions recorded in the local journal and
// lets the learner resend submissions that never reached the platform.
package history

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/quizdeck/internal/remote"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/session"
	"github.com/abhisek/quizdeck/internal/store"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

const listLimit = 50

type loadedMsg struct {
	sessions []store.SessionRecord
	pending  []store.PendingSubmission
	err      error
}

type journalMsg struct {
	sessionID string
	events    []store.SessionEventRecord
	err       error
}

type resentMsg struct {
	sessionID string
	err       error
}

// HistoryScreen shows recent sessions in a list. Enter opens the journal
// of the highlighted session below the list; r resends its pending
// submission.
type HistoryScreen struct {
	repo store.JournalRepo
	svc  remote.QuizService

	sessions []store.SessionRecord
	pending  map[string]store.PendingSubmission
	list     components.List

	// open is the session whose journal is shown, "" for none.
	open    string
	journal map[string][]store.SessionEventRecord

	sending string
	loaded  bool
	notice  string
	err     error
}

var (
	_ screen.Screen          = (*HistoryScreen)(nil)
	_ screen.KeyHintProvider = (*HistoryScreen)(nil)
	_ screen.StatusProvider  = (*HistoryScreen)(nil)
)

// New returns the screen. With a nil svc pending submissions are shown
// but cannot be resent.
func New(repo store.JournalRepo, svc remote.QuizService) *HistoryScreen {
	return &HistoryScreen{
		repo:    repo,
		svc:     svc,
		pending: map[string]store.PendingSubmission{},
		journal: map[string][]store.SessionEventRecord{},
	}
}

func (s *HistoryScreen) Init() tea.Cmd { return s.load() }

func (s *HistoryScreen) Title() string { return "History" }

func (s *HistoryScreen) HeaderStatus() string {
	if n := len(s.pending); n > 0 {
		return fmt.Sprintf("%d pending", n)
	}
	return ""
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Journal"},
	}
	if s.canResend() {
		hints = append(hints, layout.KeyHint{Key: "r", Description: "Resend"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *HistoryScreen) load() tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		ctx := context.Background()
		sessions, err := repo.ListSessions(ctx, store.QueryOpts{Limit: listLimit})
		if err != nil {
			return loadedMsg{err: err}
		}
		pending, err := repo.ListPending(ctx)
		return loadedMsg{sessions: sessions, pending: pending, err: err}
	}
}

func (s *HistoryScreen) loadJournal(id string) tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		events, err := repo.SessionEvents(context.Background(), id)
		return journalMsg{sessionID: id, events: events, err: err}
	}
}

func (s *HistoryScreen) resend(id string) tea.Cmd {
	svc, repo := s.svc, s.repo
	return func() tea.Msg {
		_, err := session.ResendPending(context.Background(), svc, repo, id)
		return resentMsg{sessionID: id, err: err}
	}
}

func (s *HistoryScreen) selected() (store.SessionRecord, bool) {
	i := s.list.Cursor
	if i < 0 || i >= len(s.sessions) {
		return store.SessionRecord{}, false
	}
	return s.sessions[i], true
}

func (s *HistoryScreen) canResend() bool {
	sess, ok := s.selected()
	if !ok || s.svc == nil || s.sending != "" {
		return false
	}
	_, pending := s.pending[sess.ID]
	return pending
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loaded = true
		s.err = msg.err
		if msg.err != nil {
			return s, nil
		}
		s.sessions = msg.sessions
		s.pending = make(map[string]store.PendingSubmission, len(msg.pending))
		for _, p := range msg.pending {
			s.pending[p.SessionID] = p
		}
		cursor := s.list.Cursor
		s.list = components.NewList(s.rows(), false)
		s.list.SetCursor(cursor)
		return s, nil

	case journalMsg:
		if msg.err == nil {
			s.journal[msg.sessionID] = msg.events
		}
		return s, nil

	case resentMsg:
		s.sending = ""
		switch {
		case msg.err == nil:
			s.notice = "Submission delivered"
		case errors.Is(msg.err, session.ErrNothingPending):
			s.notice = "Nothing left to resend"
		default:
			s.notice = "Resend failed: " + msg.err.Error()
		}
		delete(s.journal, msg.sessionID)
		cmds := []tea.Cmd{s.load()}
		if s.open == msg.sessionID {
			cmds = append(cmds, s.loadJournal(msg.sessionID))
		}
		return s, tea.Batch(cmds...)

	case tea.KeyPressMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

func (s *HistoryScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return func() tea.Msg { return router.PopScreenMsg{} }
	case "enter":
		sess, ok := s.selected()
		if !ok {
			return nil
		}
		if s.open == sess.ID {
			s.open = ""
			return nil
		}
		s.open = sess.ID
		if _, ok := s.journal[sess.ID]; !ok {
			return s.loadJournal(sess.ID)
		}
	case "r":
		if !s.canResend() {
			return nil
		}
		sess, _ := s.selected()
		s.sending = sess.ID
		s.notice = "Resending..."
		return s.resend(sess.ID)
	default:
		var moved bool
		if s.list, moved = s.list.Update(msg); moved && s.open != "" {
			s.open = ""
		}
	}
	return nil
}

func (s *HistoryScreen) rows() []components.ListItem {
	items := make([]components.ListItem, len(s.sessions))
	for i, sess := range s.sessions {
		item := components.ListItem{Label: sessionLine(sess), State: rowState(sess.Status)}
		if _, ok := s.pending[sess.ID]; ok {
			item.Note = "pending"
		}
		items[i] = item
	}
	return items
}

func rowState(status string) components.ItemState {
	switch status {
	case store.SessionCompleted:
		return components.ItemCorrect
	case store.SessionFailed:
		return components.ItemIncorrect
	case store.SessionAbandoned:
		return components.ItemDim
	}
	return components.ItemNormal
}

func sessionLine(sess store.SessionRecord) string {
	title := sess.QuizTitle
	if title == "" {
		title = sess.QuizID
	}
	score := "  -  "
	if sess.Score != nil {
		score = fmt.Sprintf("%3.0f%%", *sess.Score)
	}
	return fmt.Sprintf("%s  %-24s  %-11s  %s  %d/%d",
		sess.StartedAt.Local().Format("Jan 02 15:04"), ansi.Truncate(title, 24, "…"),
		sess.Status, score, sess.Answered, sess.Total)
}

func (s *HistoryScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	switch {
	case s.err != nil:
		return center.Foreground(theme.Error).Render("\n\nCould not read the journal: " + s.err.Error())
	case !s.loaded:
		return center.Foreground(theme.TextDim).Render("\n\nLoading history...")
	case len(s.sessions) == 0:
		return center.Foreground(theme.TextDim).Italic(true).Render("\n\nNo sessions yet. Take a quiz!")
	}

	cw := min(width-4, 96)
	var bottom []string
	if s.open != "" {
		bottom = append(bottom, "", theme.Card.Width(cw).Render(s.journalView(cw-4)))
	}
	if s.notice != "" {
		bottom = append(bottom, "", lipgloss.NewStyle().Foreground(theme.Accent).Render(s.notice))
	}

	room := max(height-1-lipgloss.Height(strings.Join(bottom, "\n")), 3)
	rows := window(strings.Split(strings.TrimSuffix(s.list.View(cw), "\n"), "\n"), s.list.Cursor, room)

	body := lipgloss.JoinVertical(lipgloss.Left, append([]string{"", strings.Join(rows, "\n")}, bottom...)...)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}

// window returns at most n lines of lines, keeping line cursor in view.
func window(lines []string, cursor, n int) []string {
	if len(lines) <= n {
		return lines
	}
	start := min(max(cursor-n/2, 0), len(lines)-n)
	return lines[start : start+n]
}

func (s *HistoryScreen) journalView(width int) string {
	var lines []string
	if p, ok := s.pending[s.open]; ok {
		lines = append(lines, theme.Incorrect.Render(fmt.Sprintf("Pending: %d responses after %d attempt(s)", len(p.Responses), p.Attempts)))
		if p.LastError != "" {
			lines = append(lines, theme.Hint.Render(ansi.Truncate("Last error: "+p.LastError, width, "…")))
		}
	}

	events, ok := s.journal[s.open]
	switch {
	case !ok:
		lines = append(lines, theme.Hint.Render("Loading journal..."))
	case len(events) == 0:
		lines = append(lines, theme.Hint.Render("No journal entries"))
	}
	for _, ev := range events {
		line := ev.Timestamp.Local().Format("15:04:05") + "  " + ev.Action
		if ev.QuestionID != "" {
			line += "  " + ev.QuestionID
		}
		if ev.Detail != "" {
			line += "  " + ev.Detail
		}
		lines = append(lines, ansi.Truncate(line, width, "…"))
	}
	return strings.Join(lines, "\n")
}
