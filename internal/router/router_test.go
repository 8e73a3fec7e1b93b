package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/campusterm/campus/internal/screen"
)

// fakeScreen is a minimal screen for testing.
type fakeScreen struct {
	title   string
	initRan bool
}

func (s *fakeScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *fakeScreen) View(int, int) string                    { return s.title }
func (s *fakeScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	home := &fakeScreen{title: "Campus"}
	r := New(home)

	quiz := &fakeScreen{title: "Quiz"}
	r.Push(quiz)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "Quiz" {
		t.Errorf("expected active 'Quiz', got %q", r.Active().Title())
	}
	if !quiz.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	home := &fakeScreen{title: "Campus"}
	r := New(home)

	r.Push(&fakeScreen{title: "Quiz"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "Campus" {
		t.Errorf("expected active 'Campus', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&fakeScreen{title: "Campus"})

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestPushScreenMsg(t *testing.T) {
	r := New(&fakeScreen{title: "Campus"})

	hist := &fakeScreen{title: "History"}
	r.Update(PushScreenMsg{Screen: hist})

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if !hist.initRan {
		t.Error("expected Init() to run via PushScreenMsg")
	}
}

func TestReplace(t *testing.T) {
	r := New(&fakeScreen{title: "Threads"})

	thread := &fakeScreen{title: "Thread"}
	r.Replace(thread)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "Thread" {
		t.Errorf("expected active 'Thread', got %q", r.Active().Title())
	}
	if !thread.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	r := New(&fakeScreen{title: "Threads"})

	thread := &fakeScreen{title: "Thread"}
	r.Update(ReplaceScreenMsg{Screen: thread})

	if r.Active().Title() != "Thread" {
		t.Errorf("expected active 'Thread', got %q", r.Active().Title())
	}
	if !thread.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	r := New(&fakeScreen{title: "Campus"})
	r.Push(&fakeScreen{title: "Threads"})

	thread := &fakeScreen{title: "Thread"}
	r.Replace(thread)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "Thread" {
		t.Errorf("expected active 'Thread', got %q", r.Active().Title())
	}
}
