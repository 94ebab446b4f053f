package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/quizdeck/internal/screen"
)

// fakeScreen records Init and Close calls.
type fakeScreen struct {
	name   string
	inits  int
	closed bool
}

func (s *fakeScreen) Init() tea.Cmd                           { s.inits++; return nil }
func (s *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *fakeScreen) View(int, int) string                    { return s.name }
func (s *fakeScreen) Title() string                           { return s.name }
func (s *fakeScreen) Close()                                  { s.closed = true }

func titles(r *Router) []string {
	out := make([]string, 0, len(r.stack))
	for _, s := range r.stack {
		out = append(out, s.Title())
	}
	return out
}

func TestNavigation(t *testing.T) {
	home := &fakeScreen{name: "home"}
	exam := &fakeScreen{name: "exam"}
	result := &fakeScreen{name: "result"}
	r := New(home)

	r.Update(PushScreenMsg{Screen: exam})
	assert.Equal(t, []string{"home", "exam"}, titles(r))
	assert.Equal(t, 1, exam.inits)

	r.Update(ReplaceScreenMsg{Screen: result})
	assert.Equal(t, []string{"home", "result"}, titles(r))
	assert.True(t, exam.closed, "replaced screen is closed")
	assert.Equal(t, 1, result.inits)

	r.Update(PopScreenMsg{})
	assert.Equal(t, []string{"home"}, titles(r))
	assert.True(t, result.closed)

	r.Update(PopScreenMsg{})
	assert.Equal(t, 1, r.Depth(), "the root stays")
	assert.False(t, home.closed)
	assert.Equal(t, "home", r.View(80, 24))
}

func TestReplaceSameScreen(t *testing.T) {
	s := &fakeScreen{name: "quiz"}
	r := New(s)
	r.Replace(s)
	assert.False(t, s.closed)
	assert.Equal(t, 1, s.inits)
}

func TestReplaceOnEmptyStack(t *testing.T) {
	r := New(&fakeScreen{name: "home"})
	r.CloseAll()
	assert.Nil(t, r.Active())
	assert.Nil(t, r.Update(tea.KeyPressMsg{}))
	assert.Empty(t, r.View(80, 24))

	r.Replace(&fakeScreen{name: "again"})
	assert.Equal(t, []string{"again"}, titles(r))
}

func TestPopToRoot(t *testing.T) {
	home := &fakeScreen{name: "home"}
	a, b := &fakeScreen{name: "history"}, &fakeScreen{name: "detail"}
	r := New(home)
	r.Push(a)
	r.Push(b)

	r.Update(PopToRootMsg{})
	assert.Equal(t, []string{"home"}, titles(r))
	assert.True(t, a.closed)
	assert.True(t, b.closed)
	assert.False(t, home.closed)
}

func TestCloseAll(t *testing.T) {
	home, top := &fakeScreen{name: "home"}, &fakeScreen{name: "exam"}
	r := New(home)
	r.Push(top)

	r.CloseAll()
	assert.Zero(t, r.Depth())
	assert.True(t, home.closed)
	assert.True(t, top.closed)
}
