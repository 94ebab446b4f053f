// Package exam is the screen a learner takes a quiz on: it loads the quiz,
// runs the countdown, hosts one answer widget at a time and submits the
// responses exactly once.
package exam

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/remote"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/summary"
	"github.com/abhisek/quizdeck/internal/session"
	"github.com/abhisek/quizdeck/internal/store"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/widgets"
)

// DefaultRetryBackoff is the wait before the first automatic retry of a
// timer-forced submission. Later retries wait proportionally longer.
const DefaultRetryBackoff = 2 * time.Second

// Deps are the collaborators of an ExamScreen.
type Deps struct {
	Service remote.QuizService

	// Journal may be nil, in which case nothing is recorded locally.
	Journal store.JournalRepo

	Factory        widgets.Factory
	MaxAutoRetries int
	RetryBackoff   time.Duration
	Logger         *slog.Logger
}

// ExamScreen implements screen.Screen for one attempt at one quiz.
type ExamScreen struct {
	deps    Deps
	quizID  string
	state   *session.State
	journal *session.Journal
	widget  widgets.Widget
	logger  *slog.Logger

	// ctx is cancelled on teardown, aborting the fetch or submission.
	ctx    context.Context
	cancel context.CancelFunc

	confirmLeave bool
	abandoned    bool
	now          func() time.Time
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)
var _ screen.StatusProvider = (*ExamScreen)(nil)
var _ screen.Closer = (*ExamScreen)(nil)
var _ screen.EscapeHandler = (*ExamScreen)(nil)

// New creates an ExamScreen for quizID.
func New(quizID string, deps Deps) *ExamScreen {
	if deps.RetryBackoff <= 0 {
		deps.RetryBackoff = DefaultRetryBackoff
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	state := session.NewState(uuid.NewString(), deps.MaxAutoRetries)
	return &ExamScreen{
		deps:    deps,
		quizID:  quizID,
		state:   state,
		journal: session.NewJournal(deps.Journal, logger),
		logger:  logger.With("session", state.ID, "quiz", quizID),
		ctx:     ctx,
		cancel:  cancel,
		now:     time.Now,
	}
}

// State exposes the session for inspection.
func (s *ExamScreen) State() *session.State { return s.state }

func (s *ExamScreen) Init() tea.Cmd {
	return s.fetchCmd()
}

func (s *ExamScreen) Title() string {
	if s.state.Quiz != nil {
		return s.state.Quiz.Title
	}
	return "Quiz"
}

// HeaderStatus shows the countdown of timed quizzes.
func (s *ExamScreen) HeaderStatus() string {
	if s.state.RemainingSeconds == nil {
		return ""
	}
	return "⏱ " + layout.FormatCountdown(*s.state.RemainingSeconds)
}

// RemainingSeconds lets the header color the countdown as time runs low.
func (s *ExamScreen) RemainingSeconds() (int, bool) {
	if s.state.RemainingSeconds == nil {
		return 0, false
	}
	return *s.state.RemainingSeconds, true
}

// HandlesEscape is true: leaving a quiz goes through a confirmation.
func (s *ExamScreen) HandlesEscape() bool { return true }

// Close records a quiz left unfinished, e.g. on ctrl+c, then stops the
// timer and any request in flight.
func (s *ExamScreen) Close() {
	s.abandon()
	session.Teardown(s.state)
	s.cancel()
}

func (s *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizLoadedMsg:
		return s.handleLoaded(msg)

	case tickMsg:
		return s.handleTick(msg)

	case submitDoneMsg:
		return s.handleSubmitDone(msg)

	case retrySubmitMsg:
		return s.handleRetry()

	case widgets.ResponseChangedMsg:
		s.record(msg.QuestionID, msg.Value)
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Cursor blinks and the like belong to the widget.
	if s.widget != nil && s.state.Status == session.StatusInProgress {
		var cmd tea.Cmd
		s.widget, cmd = s.widget.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ExamScreen) fetchCmd() tea.Cmd {
	ctx, svc, id := s.ctx, s.deps.Service, s.quizID
	return func() tea.Msg {
		q, err := svc.FetchQuiz(ctx, id)
		return quizLoadedMsg{Quiz: q, Err: err}
	}
}

func (s *ExamScreen) handleLoaded(msg quizLoadedMsg) (screen.Screen, tea.Cmd) {
	if s.state.Closed {
		return s, nil
	}
	if msg.Err != nil {
		session.LoadFailed(s.state, s.quizID, msg.Err)
		s.logger.Error("quiz fetch failed", "error", msg.Err)
		return s, nil
	}
	if err := session.Loaded(s.state, msg.Quiz, s.now()); err != nil {
		s.logger.Error("quiz rejected", "error", err)
		return s, nil
	}

	s.logger.Info("quiz loaded", "questions", len(s.state.Questions), "timed", msg.Quiz.Timed())
	s.journal.Started(context.Background(), s.state)
	return s, tea.Batch(s.buildWidget(), s.startTimer())
}

// buildWidget creates the widget of the current question, restoring its
// recorded response.
func (s *ExamScreen) buildWidget() tea.Cmd {
	q, ok := s.state.CurrentQuestion()
	if !ok {
		s.widget = nil
		return nil
	}
	var r *quiz.Response
	if resp, ok := s.state.Response(q.ID); ok {
		r = &resp
	}
	s.widget = s.deps.Factory.New(q, r, widgets.Options{})
	return s.widget.Init()
}

// startTimer schedules the next tick of the current timer generation.
func (s *ExamScreen) startTimer() tea.Cmd {
	if !s.state.TimerRunning() {
		return nil
	}
	gen := s.state.TimerGeneration
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{generation: gen}
	})
}

func (s *ExamScreen) handleTick(msg tickMsg) (screen.Screen, tea.Cmd) {
	if msg.generation != s.state.TimerGeneration {
		return s, nil
	}
	if session.Tick(s.state) {
		s.logger.Info("time is up, submitting")
		return s.submit(session.TriggerTimer)
	}
	return s, s.startTimer()
}

// record stores a widget value in the session.
func (s *ExamScreen) record(questionID string, v quiz.Value) {
	if err := session.Record(s.state, quiz.Response{QuestionID: questionID, Value: v}); err != nil {
		s.logger.Debug("response not recorded", "question", questionID, "error", err)
	}
}

// persistDraft records the widget's current value before the question is
// left or the quiz is submitted.
func (s *ExamScreen) persistDraft() {
	if s.widget == nil || s.state.Status != session.StatusInProgress {
		return
	}
	if v, ok := s.widget.Value(); ok {
		s.record(s.widget.Question().ID, v)
	}
}

func (s *ExamScreen) navigate(delta int) (screen.Screen, tea.Cmd) {
	s.persistDraft()
	from := s.state.CurrentIndex
	if err := session.Navigate(s.state, from+delta); err != nil || s.state.CurrentIndex == from {
		return s, nil
	}
	s.journalResponse(from)
	return s, s.buildWidget()
}

// journalResponse records the response of the question at index, if any.
func (s *ExamScreen) journalResponse(index int) {
	q := s.state.Questions[index]
	r, ok := s.state.Response(q.ID)
	if !ok || quiz.IsBlank(r.Value) {
		return
	}
	s.journal.Event(context.Background(), s.state, store.ActionResponse, q.ID, "")
}

// submit issues a submission for trigger. The guard is set synchronously by
// BeginSubmit, so a second trigger before the result arrives is refused.
func (s *ExamScreen) submit(trigger session.Trigger) (screen.Screen, tea.Cmd) {
	s.persistDraft()
	if s.state.Status == session.StatusInProgress {
		s.journalResponse(s.state.CurrentIndex)
	}

	if err := session.BeginSubmit(s.state, trigger); err != nil {
		var verr *session.ValidationError
		if errors.As(err, &verr) {
			return s.jumpTo(verr.Unanswered[0])
		}
		s.logger.Debug("submission refused", "trigger", trigger, "error", err)
		return s, nil
	}

	s.logger.Info("submitting", "trigger", trigger, "answered", session.AnsweredCount(s.state))
	s.journal.Event(context.Background(), s.state, store.ActionSubmitAttempt, "", trigger.String())
	return s, s.submitCmd()
}

// jumpTo moves the cursor to the question with id.
func (s *ExamScreen) jumpTo(id string) (screen.Screen, tea.Cmd) {
	for i, q := range s.state.Questions {
		if q.ID == id && i != s.state.CurrentIndex {
			_ = session.Navigate(s.state, i)
			return s, s.buildWidget()
		}
	}
	return s, nil
}

func (s *ExamScreen) submitCmd() tea.Cmd {
	ctx := remote.WithIdempotencyKey(s.ctx, s.state.ID)
	svc := s.deps.Service
	quizID := s.state.Quiz.ID
	responses := session.ResponseList(s.state)
	return func() tea.Msg {
		res, err := svc.SubmitResponses(ctx, quizID, responses)
		return submitDoneMsg{Result: res, Err: err}
	}
}

func (s *ExamScreen) handleSubmitDone(msg submitDoneMsg) (screen.Screen, tea.Cmd) {
	if s.state.Closed || s.state.Status != session.StatusSubmitting {
		return s, nil
	}
	ctx := context.Background()
	trigger := s.state.Submission.Trigger

	if msg.Err != nil {
		s.logger.Warn("submission failed", "trigger", trigger, "attempt", s.state.Submission.Attempts, "error", msg.Err)
		s.journal.Event(ctx, s.state, store.ActionSubmitFailed, "", msg.Err.Error())

		if session.SubmitFailed(s.state, msg.Err) {
			wait := s.deps.RetryBackoff * time.Duration(s.state.Submission.Attempts)
			return s, tea.Tick(wait, func(time.Time) tea.Msg { return retrySubmitMsg{} })
		}
		if s.state.Status == session.StatusFailed {
			s.journal.SavePending(ctx, s.state, msg.Err)
			s.journal.Finished(ctx, s.state, store.SessionFailed, s.now())
			return s, nil
		}
		return s, s.startTimer()
	}

	if err := session.SubmitSucceeded(s.state, msg.Result); err != nil {
		return s, nil
	}
	s.logger.Info("submitted", "score", msg.Result.Score, "passed", msg.Result.Passed)
	s.journal.Event(ctx, s.state, store.ActionSubmitted, "",
		fmt.Sprintf("score=%.2f passed=%t", msg.Result.Score, msg.Result.Passed))
	s.journal.Finished(ctx, s.state, store.SessionCompleted, s.now())
	if trigger == session.TriggerResubmit {
		s.journal.Resolved(ctx, s.state)
	}

	result := summary.New(session.BuildSummary(s.state, s.now()))
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: result} }
}

func (s *ExamScreen) handleRetry() (screen.Screen, tea.Cmd) {
	if err := session.Retry(s.state); err != nil {
		return s, nil
	}
	s.journal.Event(context.Background(), s.state, store.ActionSubmitAttempt, "", "retry")
	return s, s.submitCmd()
}

func (s *ExamScreen) resubmit() (screen.Screen, tea.Cmd) {
	if err := session.Resubmit(s.state); err != nil {
		return s, nil
	}
	s.journal.Event(context.Background(), s.state, store.ActionSubmitAttempt, "", session.TriggerResubmit.String())
	return s, s.submitCmd()
}

// leave abandons the attempt. A submission cut short keeps its responses
// for a later resubmit.
func (s *ExamScreen) leave() (screen.Screen, tea.Cmd) {
	s.abandon()
	s.confirmLeave = false
	return s, func() tea.Msg { return router.PopScreenMsg{} }
}

// abandon journals an unfinished session once. Responses of a submission
// still in flight are kept as pending.
func (s *ExamScreen) abandon() {
	if s.abandoned || s.state.Closed {
		return
	}
	ctx := context.Background()
	switch s.state.Status {
	case session.StatusSubmitting:
		s.journal.SavePending(ctx, s.state, errors.New("left while submitting"))
		fallthrough
	case session.StatusInProgress:
		s.abandoned = true
		s.journal.Event(ctx, s.state, store.ActionAbandoned, "", "")
		s.journal.Finished(ctx, s.state, store.SessionAbandoned, s.now())
	}
}

func (s *ExamScreen) capturesText() bool {
	c, ok := s.widget.(widgets.TextCapturer)
	return ok && c.CapturesText()
}

func (s *ExamScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmLeave {
		switch key {
		case "y", "Y":
			return s.leave()
		case "n", "N", "esc":
			s.confirmLeave = false
		}
		return s, nil
	}

	switch s.state.Status {
	case session.StatusLoading:
		if key == "esc" {
			return s.leave()
		}
		return s, nil

	case session.StatusFailed:
		switch key {
		case "r":
			if s.state.Quiz != nil {
				return s.resubmit()
			}
		case "esc", "q", "enter":
			return s.leave()
		}
		return s, nil

	case session.StatusSubmitting:
		if key == "esc" {
			s.confirmLeave = true
		}
		return s, nil

	case session.StatusInProgress:
		switch key {
		case "esc":
			s.persistDraft()
			s.confirmLeave = true
			return s, nil
		case "ctrl+s":
			return s.submit(session.TriggerManual)
		case "ctrl+n", "pgdown":
			return s.navigate(1)
		case "ctrl+p", "pgup":
			return s.navigate(-1)
		}
		if !s.capturesText() {
			switch key {
			case "right", "]":
				return s.navigate(1)
			case "left", "[":
				return s.navigate(-1)
			}
		}
		if s.widget != nil {
			var cmd tea.Cmd
			s.widget, cmd = s.widget.Update(msg)
			return s, cmd
		}
	}
	return s, nil
}
