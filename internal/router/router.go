// Package router keeps the stack of screens the app draws from. A screen
// leaving the stack for any reason is closed if it implements screen.Closer.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/screen"
)

// PushScreenMsg opens Screen on top of the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg closes the active screen.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the active screen for Screen, e.g. a finished quiz
// for its result.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// PopToRootMsg closes every screen above the first.
type PopToRootMsg struct{}

type Router struct {
	stack []screen.Screen
}

func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Push opens s and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop closes the active screen. The root is never popped; the app decides
// what popping it means.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) > 1 {
		r.truncate(len(r.stack) - 1)
	}
	return nil
}

// PopToRoot closes everything above the root.
func (r *Router) PopToRoot() tea.Cmd {
	r.truncate(1)
	return nil
}

// Replace swaps the active screen for s and returns its Init command. On an
// empty stack s becomes the root.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if n := len(r.stack); n > 0 {
		if old := r.stack[n-1]; old != s {
			closeScreen(old)
		}
		r.stack[n-1] = s
	} else {
		r.stack = []screen.Screen{s}
	}
	return s.Init()
}

// CloseAll closes every screen, top first, and empties the stack. Used on
// quit so timers and in-flight requests stop.
func (r *Router) CloseAll() {
	r.truncate(0)
}

// truncate closes screens from the top until n remain.
func (r *Router) truncate(n int) {
	for len(r.stack) > n {
		top := r.stack[len(r.stack)-1]
		r.stack[len(r.stack)-1] = nil
		r.stack = r.stack[:len(r.stack)-1]
		closeScreen(top)
	}
}

func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

func (r *Router) Depth() int { return len(r.stack) }

// Update applies navigation messages and hands everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case PopToRootMsg:
		return r.PopToRoot()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	active := r.Active()
	if active == nil {
		return nil
	}
	next, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = next
	return cmd
}

func (r *Router) View(width, height int) string {
	if active := r.Active(); active != nil {
		return active.View(width, height)
	}
	return ""
}

func closeScreen(s screen.Screen) {
	if c, ok := s.(screen.Closer); ok {
		c.Close()
	}
}
