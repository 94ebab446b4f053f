// Package editor is the authoring screen: it loads a quiz, lets the author
// add, re-kind, reorder and delete questions, previews them as a learner
// would see them, and saves the draft back to the platform.
package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/authoring"
	"github.com/abhisek/quizdeck/internal/draft"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/remote"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/widgets"
)

// Deps are the editor's collaborators.
type Deps struct {
	Service remote.Service

	// Drafter is optional; without it the draft key is disabled.
	Drafter draft.Generator

	Factory widgets.Factory
	Logger  *slog.Logger

	// EditorOptions are passed to authoring.NewEditor.
	EditorOptions []authoring.Option
}

type mode int

const (
	modeLoading mode = iota
	modeList
	modePickKind
	modeEditText
	modeDraftTopic
	modeConfirmDiscard
	modeFailed
)

// kindPurpose is what the kind picker was opened for.
type kindPurpose int

const (
	pickForAdd kindPurpose = iota
	pickForChange
	pickForDraft
)

// EditorScreen edits the questions of one quiz.
type EditorScreen struct {
	deps   Deps
	quizID string
	title  string
	editor *authoring.Editor
	logger *slog.Logger

	mode     mode
	selected int

	kinds       components.List
	kindPurpose kindPurpose
	draftKind   quiz.Kind
	input       components.TextInput

	preview widgets.Widget

	saving   bool
	drafting bool
	message  string
	errMsg   string

	ctx    context.Context
	cancel context.CancelFunc
}

var _ screen.Screen = (*EditorScreen)(nil)
var _ screen.KeyHintProvider = (*EditorScreen)(nil)
var _ screen.StatusProvider = (*EditorScreen)(nil)
var _ screen.Closer = (*EditorScreen)(nil)
var _ screen.EscapeHandler = (*EditorScreen)(nil)

// New creates an editor for quizID.
func New(quizID string, deps Deps) *EditorScreen {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())

	items := make([]components.ListItem, 0, len(quiz.Kinds()))
	for _, k := range quiz.Kinds() {
		items = append(items, components.ListItem{Label: k.Label(), Note: string(k)})
	}

	return &EditorScreen{
		deps:   deps,
		quizID: quizID,
		logger: logger.With("quiz_id", quizID),
		mode:   modeLoading,
		kinds:  components.NewList(items, false),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Editor returns the draft once the quiz has loaded.
func (s *EditorScreen) Editor() *authoring.Editor { return s.editor }

func (s *EditorScreen) Init() tea.Cmd {
	svc, ctx, id := s.deps.Service, s.ctx, s.quizID
	return func() tea.Msg {
		q, err := svc.FetchQuiz(ctx, id)
		return quizLoadedMsg{Quiz: q, Err: err}
	}
}

func (s *EditorScreen) Title() string {
	if s.title != "" {
		return "Edit: " + s.title
	}
	return "Edit quiz"
}

func (s *EditorScreen) HeaderStatus() string {
	if s.editor == nil {
		return ""
	}
	if s.editor.Dirty() {
		return "● unsaved"
	}
	return "saved"
}

// HandlesEscape is always true: the screen confirms before discarding
// unsaved work and pops itself.
func (s *EditorScreen) HandlesEscape() bool { return true }

func (s *EditorScreen) Close() {
	s.cancel()
}

func (s *EditorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizLoadedMsg:
		return s, s.handleLoaded(msg)
	case saveDoneMsg:
		return s, s.handleSaved(msg)
	case draftDoneMsg:
		return s, s.handleDrafted(msg)
	case tea.KeyPressMsg:
		return s, s.handleKey(msg)
	}

	if s.preview != nil {
		var cmd tea.Cmd
		s.preview, cmd = s.preview.Update(msg)
		return s, cmd
	}
	if s.mode == modeEditText || s.mode == modeDraftTopic {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *EditorScreen) handleLoaded(msg quizLoadedMsg) tea.Cmd {
	if s.mode != modeLoading {
		return nil
	}
	if msg.Err != nil {
		if errors.Is(msg.Err, context.Canceled) {
			return nil
		}
		s.mode = modeFailed
		s.errMsg = msg.Err.Error()
		s.logger.Warn("loading quiz for editing failed", "error", msg.Err)
		return nil
	}

	opts := append([]authoring.Option{authoring.WithLogger(s.logger)}, s.deps.EditorOptions...)
	s.editor = authoring.NewEditor(msg.Quiz.ID, msg.Quiz.Questions, opts...)
	s.title = msg.Quiz.Title
	s.mode = modeList
	return nil
}

func (s *EditorScreen) current() (quiz.Question, bool) {
	if s.editor == nil {
		return quiz.Question{}, false
	}
	qs := s.editor.Questions()
	if s.selected < 0 || s.selected >= len(qs) {
		return quiz.Question{}, false
	}
	return qs[s.selected], true
}

func (s *EditorScreen) selectID(id string) {
	for i, q := range s.editor.Questions() {
		if q.ID == id {
			s.selected = i
			return
		}
	}
}

func (s *EditorScreen) clampSelection() {
	s.selected = max(0, min(s.selected, s.editor.Len()-1))
}

// refreshPreview rebuilds the preview after the selected question changed.
func (s *EditorScreen) refreshPreview() tea.Cmd {
	if s.preview == nil {
		return nil
	}
	q, ok := s.current()
	if !ok {
		s.preview = nil
		return nil
	}
	s.preview = authoring.PreviewQuestion(q, s.deps.Factory)
	return s.preview.Init()
}

func (s *EditorScreen) togglePreview() tea.Cmd {
	if s.preview != nil {
		s.preview = nil
		return nil
	}
	q, ok := s.current()
	if !ok {
		return nil
	}
	s.preview = authoring.PreviewQuestion(q, s.deps.Factory)
	return s.preview.Init()
}

func (s *EditorScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch s.mode {
	case modeLoading:
		if msg.String() == "esc" {
			return pop
		}
		return nil
	case modeFailed:
		switch msg.String() {
		case "esc", "q", "enter":
			return pop
		}
		return nil
	case modeConfirmDiscard:
		switch msg.String() {
		case "y":
			return pop
		case "n", "esc":
			s.mode = modeList
		}
		return nil
	case modePickKind:
		return s.handleKindKey(msg)
	case modeEditText, modeDraftTopic:
		return s.handleInputKey(msg)
	}
	return s.handleListKey(msg)
}

func (s *EditorScreen) handleListKey(msg tea.KeyPressMsg) tea.Cmd {
	key := msg.String()
	if key == "esc" {
		if s.editor.Dirty() {
			s.mode = modeConfirmDiscard
			return nil
		}
		return pop
	}
	if s.saving {
		return nil
	}

	s.message = ""
	q, hasCurrent := s.current()

	switch key {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
			return s.refreshPreview()
		}
		return nil
	case "down", "j":
		if s.selected < s.editor.Len()-1 {
			s.selected++
			return s.refreshPreview()
		}
		return nil
	case "enter", "p":
		return s.togglePreview()
	case "a":
		s.openKindPicker(pickForAdd, "")
		return nil
	case "c":
		if hasCurrent && q.Kind.Supported() {
			s.openKindPicker(pickForChange, q.Kind)
		}
		return nil
	case "g":
		if s.deps.Drafter == nil {
			s.message = "Drafting needs an LLM provider (see quizdeck llm)"
			return nil
		}
		if s.drafting {
			return nil
		}
		s.openKindPicker(pickForDraft, "")
		return nil
	case "e":
		if !hasCurrent || !q.Kind.Supported() {
			return nil
		}
		s.mode = modeEditText
		s.input = components.NewTextInput("question text", 500)
		s.input.SetValue(q.Text)
		return s.input.Init()
	case "shift+up", "K":
		if hasCurrent && s.editor.MoveUp(q.ID) {
			s.selected--
		}
		return nil
	case "shift+down", "J":
		if hasCurrent && s.editor.MoveDown(q.ID) {
			s.selected++
		}
		return nil
	case "d", "delete":
		if !hasCurrent {
			return nil
		}
		if err := s.editor.Delete(q.ID); err != nil {
			s.message = err.Error()
			return nil
		}
		s.clampSelection()
		return s.refreshPreview()
	case "ctrl+s":
		return s.save()
	}

	if s.preview != nil {
		var cmd tea.Cmd
		s.preview, cmd = s.preview.Update(msg)
		return cmd
	}
	return nil
}

func (s *EditorScreen) openKindPicker(purpose kindPurpose, current quiz.Kind) {
	s.mode = modePickKind
	s.kindPurpose = purpose
	cursor := 0
	for i, k := range quiz.Kinds() {
		if k == current {
			cursor = i
		}
	}
	s.kinds.SetCursor(cursor)
}

func (s *EditorScreen) handleKindKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		s.mode = modeList
		return nil
	case "enter":
		kind := quiz.Kinds()[s.kinds.Cursor]
		s.mode = modeList
		return s.applyKind(kind)
	}
	s.kinds, _ = s.kinds.Update(msg)
	return nil
}

func (s *EditorScreen) applyKind(kind quiz.Kind) tea.Cmd {
	switch s.kindPurpose {
	case pickForAdd:
		q, err := s.editor.Add(kind, "")
		if err != nil {
			s.message = err.Error()
			return nil
		}
		s.selectID(q.ID)
		s.mode = modeEditText
		s.input = components.NewTextInput("question text", 500)
		return s.input.Init()

	case pickForChange:
		cur, ok := s.current()
		if !ok {
			return nil
		}
		q, err := s.editor.ChangeKind(cur.ID, kind)
		if err != nil {
			s.message = err.Error()
			return nil
		}
		if q.ID != cur.ID {
			s.message = fmt.Sprintf("Now %s; answers must be authored again", kind.Label())
		}
		return s.refreshPreview()

	case pickForDraft:
		s.draftKind = kind
		s.mode = modeDraftTopic
		s.input = components.NewTextInput("topic, e.g. European capitals", 200)
		return s.input.Init()
	}
	return nil
}

func (s *EditorScreen) handleInputKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		s.mode = modeList
		return nil
	case "enter":
		value := strings.TrimSpace(s.input.Value())
		if s.mode == modeDraftTopic {
			if value == "" {
				return nil
			}
			s.mode = modeList
			return s.startDraft(value)
		}
		s.mode = modeList
		if q, ok := s.current(); ok {
			if err := s.editor.SetText(q.ID, value); err != nil {
				s.message = err.Error()
			}
		}
		return s.refreshPreview()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *EditorScreen) save() tea.Cmd {
	if !s.editor.Dirty() {
		s.message = "Nothing to save"
		return nil
	}
	if err := s.editor.Validate(); err != nil {
		var invalid *authoring.InvalidDraftError
		if errors.As(err, &invalid) && len(invalid.QuestionIDs) > 0 {
			s.selectID(invalid.QuestionIDs[0])
			s.message = fmt.Sprintf("%d question(s) need fixing: %v", len(invalid.QuestionIDs), invalid.Errs[invalid.QuestionIDs[0]])
			return s.refreshPreview()
		}
		s.message = err.Error()
		return nil
	}

	s.saving = true
	s.message = "Saving..."
	ed, svc, ctx := s.editor, s.deps.Service, s.ctx
	return func() tea.Msg {
		plan, err := ed.Save(ctx, svc)
		return saveDoneMsg{Plan: plan, Err: err}
	}
}

func (s *EditorScreen) handleSaved(msg saveDoneMsg) tea.Cmd {
	s.saving = false
	if msg.Err != nil {
		s.message = "Save failed: " + msg.Err.Error()
		return nil
	}
	p := msg.Plan
	s.message = fmt.Sprintf("Saved: %d created, %d updated, %d deleted", len(p.Creates), len(p.Updates), len(p.Deletes))
	// Created questions may have been renamed by the platform.
	s.clampSelection()
	return s.refreshPreview()
}

func (s *EditorScreen) startDraft(topic string) tea.Cmd {
	var prior []string
	for _, q := range s.editor.Questions() {
		prior = append(prior, q.Text)
	}
	in := draft.Input{QuizID: s.quizID, Kind: s.draftKind, Topic: topic, PriorQuestions: prior}

	s.drafting = true
	s.message = "Drafting a " + s.draftKind.Label() + " question..."
	gen, ctx := s.deps.Drafter, s.ctx
	return func() tea.Msg {
		q, err := gen.Draft(ctx, in)
		return draftDoneMsg{Question: q, Err: err}
	}
}

func (s *EditorScreen) handleDrafted(msg draftDoneMsg) tea.Cmd {
	s.drafting = false
	if msg.Err != nil {
		if errors.Is(msg.Err, context.Canceled) {
			return nil
		}
		s.logger.Warn("drafting question failed", "error", msg.Err)
		s.message = "Draft failed: " + msg.Err.Error()
		return nil
	}

	q, err := s.editor.Insert(msg.Question)
	if err != nil {
		s.message = err.Error()
		return nil
	}
	s.selectID(q.ID)
	s.message = "Drafted question added; review it before saving"
	s.preview = nil
	return s.togglePreview()
}

func pop() tea.Msg {
	return router.PopScreenMsg{}
}
