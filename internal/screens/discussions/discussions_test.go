package discussions

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/campusterm/campus/internal/api"
)

type stubLister struct {
	threads []api.Discussion
	err     error
	calls   int
}

func (s *stubLister) ListDiscussions(_ context.Context, _ string) ([]api.Discussion, error) {
	s.calls++
	return s.threads, s.err
}

type stubPoster struct {
	calls   int
	title   string
	content string
	err     error
}

func (s *stubPoster) PostDiscussion(_ context.Context, _, title, content string) error {
	s.calls++
	s.title = title
	s.content = content
	return s.err
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func sampleThreads() []api.Discussion {
	return []api.Discussion{
		{ID: "1", Title: "Week 1 homework", Author: "dana", Content: "Anyone stuck on problem 3?"},
		{ID: "2", Title: "Exam dates", Author: "mo", Replies: []api.Reply{{ID: "5", Author: "kim", Content: "June 10th."}}},
	}
}

func testDiscussionsScreen() (*DiscussionsScreen, *stubLister, *stubPoster) {
	client := &stubLister{threads: sampleThreads()}
	coord := &stubPoster{}
	s := New("course-9", client, coord)
	return s, client, coord
}

func TestDiscussionsScreen_LoadsThreads(t *testing.T) {
	s, _, _ := testDiscussionsScreen()

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected fetch command")
	}
	s.Update(cmd())

	if s.loading {
		t.Error("expected loading cleared")
	}
	if len(s.threads) != 2 {
		t.Fatalf("threads = %d, want 2", len(s.threads))
	}
}

func TestDiscussionsScreen_FetchErrorShown(t *testing.T) {
	s, client, _ := testDiscussionsScreen()
	client.err = errors.New("connection refused")

	cmd := s.Init()
	s.Update(cmd())

	if s.errMsg == "" {
		t.Error("expected fetch error recorded")
	}
	if s.View(80, 24) == "" {
		t.Error("expected non-empty error view")
	}
}

func TestDiscussionsScreen_OpenThread(t *testing.T) {
	s, _, _ := testDiscussionsScreen()
	cmd := s.Init()
	s.Update(cmd())

	s.Update(keyPress('j'))
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if s.mode != modeThread {
		t.Fatalf("mode = %v, want thread", s.mode)
	}
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}
	if s.View(80, 24) == "" {
		t.Error("expected non-empty thread view")
	}
}

func TestDiscussionsScreen_ComposeAndPost(t *testing.T) {
	s, client, coord := testDiscussionsScreen()
	cmd := s.Init()
	s.Update(cmd())

	s.Update(keyPress('n'))
	if s.mode != modeCompose {
		t.Fatalf("mode = %v, want compose", s.mode)
	}

	s.titleInput.Model.SetValue("Office hours")
	s.contentInput.Model.SetValue("Are they moving this week?")
	_, postCmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if postCmd == nil {
		t.Fatal("expected post command")
	}
	_, refreshCmd := s.Update(postCmd())

	if coord.calls != 1 {
		t.Fatalf("post calls = %d, want 1", coord.calls)
	}
	if coord.title != "Office hours" {
		t.Errorf("title = %q", coord.title)
	}
	if s.mode != modeList {
		t.Error("expected return to list after posting")
	}
	// Successful posts refresh the list.
	if refreshCmd == nil {
		t.Fatal("expected refresh command")
	}
	s.Update(refreshCmd())
	if client.calls != 2 {
		t.Errorf("list calls = %d, want 2", client.calls)
	}
}

func TestDiscussionsScreen_EmptyComposeRejected(t *testing.T) {
	s, _, coord := testDiscussionsScreen()
	cmd := s.Init()
	s.Update(cmd())

	s.Update(keyPress('n'))
	_, postCmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if postCmd != nil {
		t.Error("expected no post command for empty fields")
	}
	if coord.calls != 0 {
		t.Errorf("post calls = %d, want 0", coord.calls)
	}
	if s.banner == "" || !s.bannerErr {
		t.Error("expected validation banner")
	}
}

func TestDiscussionsScreen_FailedPostShowsQueuedBanner(t *testing.T) {
	s, _, coord := testDiscussionsScreen()
	coord.err = errors.New("connection refused")
	cmd := s.Init()
	s.Update(cmd())

	s.Update(keyPress('n'))
	s.titleInput.Model.SetValue("Office hours")
	s.contentInput.Model.SetValue("Are they moving this week?")
	_, postCmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s.Update(postCmd())

	if s.mode != modeList {
		t.Error("expected return to list")
	}
	if s.banner == "" || !s.bannerErr {
		t.Error("expected a queued-post banner")
	}
}
