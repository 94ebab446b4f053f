package editor

import (
	"github.com/abhisek/quizdeck/internal/authoring"
	"github.com/abhisek/quizdeck/internal/quiz"
)

type quizLoadedMsg struct {
	Quiz *quiz.Quiz
	Err  error
}

type saveDoneMsg struct {
	Plan authoring.Plan
	Err  error
}

type draftDoneMsg struct {
	Question quiz.Question
	Err      error
}
