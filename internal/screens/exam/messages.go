package exam

import "github.com/abhisek/quizdeck/internal/quiz"

// quizLoadedMsg carries the outcome of the quiz fetch.
type quizLoadedMsg struct {
	Quiz *quiz.Quiz
	Err  error
}

// tickMsg is sent every second while the countdown runs. Ticks from an
// older generation are dropped.
type tickMsg struct {
	generation int
}

// submitDoneMsg carries the outcome of one remote submission call.
type submitDoneMsg struct {
	Result quiz.SubmissionResult
	Err    error
}

// retrySubmitMsg fires when the backoff before an automatic retry ends.
type retrySubmitMsg struct{}
