// Package home is the start screen: a menu to take or edit a quiz and to
// browse the local history.
package home

import (
	"context"
	"log/slog"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/draft"
	"github.com/abhisek/quizdeck/internal/remote"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/editor"
	"github.com/abhisek/quizdeck/internal/screens/exam"
	"github.com/abhisek/quizdeck/internal/screens/history"
	"github.com/abhisek/quizdeck/internal/store"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/widgets"
)

// Deps are the collaborators shared by every screen reachable from home.
type Deps struct {
	// Service is nil when no API is configured; taking and editing quizzes
	// is then disabled.
	Service remote.Service
	Journal store.JournalRepo

	// Drafter is nil when no LLM provider is configured.
	Drafter draft.Generator

	Factory        widgets.Factory
	MaxAutoRetries int
	RetryBackoff   time.Duration
	Logger         *slog.Logger
}

// ExamDeps returns the dependencies of the exam screen.
func (d Deps) ExamDeps() exam.Deps {
	return exam.Deps{
		Service:        d.Service,
		Journal:        d.Journal,
		Factory:        d.Factory,
		MaxAutoRetries: d.MaxAutoRetries,
		RetryBackoff:   d.RetryBackoff,
		Logger:         d.Logger,
	}
}

// EditorDeps returns the dependencies of the editor screen.
func (d Deps) EditorDeps() editor.Deps {
	return editor.Deps{
		Service: d.Service,
		Drafter: d.Drafter,
		Factory: d.Factory,
		Logger:  d.Logger,
	}
}

type stats struct {
	taken     int
	pending   int
	lastScore *float64
}

type statsLoadedMsg struct {
	stats stats
}

// prompt asks for a quiz id before opening a screen.
type prompt struct {
	label  string
	input  components.TextInput
	open   func(quizID string) screen.Screen
	errMsg string
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	deps   Deps
	menu   components.Menu
	stats  stats
	prompt *prompt
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.EscapeHandler = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}

	items := []components.MenuItem{
		{Label: "TAKE QUIZ", Hint: "Answer a quiz from the server", Disabled: deps.Service == nil, Action: func() tea.Cmd {
			return h.ask("Quiz to take", func(id string) screen.Screen {
				return exam.New(id, deps.ExamDeps())
			})
		}},
		{Label: "EDIT QUIZ", Hint: "Author questions, with LLM drafts when configured", Disabled: deps.Service == nil, Action: func() tea.Cmd {
			return h.ask("Quiz to edit", func(id string) screen.Screen {
				return editor.New(id, deps.EditorDeps())
			})
		}},
		{Label: "HISTORY", Hint: "Past sessions and pending submissions", Disabled: deps.Journal == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(deps.Journal, deps.Service)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) ask(label string, open func(string) screen.Screen) tea.Cmd {
	h.prompt = &prompt{
		label: label,
		input: components.NewTextInput("quiz id", 64),
		open:  open,
	}
	return h.prompt.input.Init()
}

// Init loads the journal stats shown in the panel.
func (h *HomeScreen) Init() tea.Cmd {
	repo := h.deps.Journal
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		ctx := context.Background()
		var st stats
		if sessions, err := repo.ListSessions(ctx, store.QueryOpts{}); err == nil {
			st.taken = len(sessions)
			for _, s := range sessions {
				if s.Score != nil {
					st.lastScore = s.Score
					break
				}
			}
		}
		if pending, err := repo.ListPending(ctx); err == nil {
			st.pending = len(pending)
		}
		return statsLoadedMsg{stats: st}
	}
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// HandlesEscape is true while the quiz id prompt is open.
func (h *HomeScreen) HandlesEscape() bool { return h.prompt != nil }

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.prompt != nil {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Open"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "1-4", Description: "Jump"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(statsLoadedMsg); ok {
		h.stats = m.stats
		return h, nil
	}

	if h.prompt != nil {
		return h.updatePrompt(msg)
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) updatePrompt(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "esc":
			h.prompt = nil
			return h, nil
		case "enter":
			id := strings.TrimSpace(h.prompt.input.Value())
			if id == "" {
				h.prompt.errMsg = "Enter a quiz id"
				return h, nil
			}
			next := h.prompt.open(id)
			h.prompt = nil
			return h, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
	}

	var cmd tea.Cmd
	h.prompt.input, cmd = h.prompt.input.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100
	cw := contentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderStatsBar(h.stats, cw, compact),
	}

	if h.prompt != nil {
		sections = append(sections, renderPrompt(h.prompt.label, h.prompt.input.View(), h.prompt.errMsg, cw))
	} else {
		sections = append(sections, renderMenu(h.menu, cw, compact))
	}

	if h.deps.Service == nil {
		sections = append(sections, renderNotice("Set QUIZDECK_API_URL to take and edit quizzes (see quizdeck --help)", cw))
	}

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}
