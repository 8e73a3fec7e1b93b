package lesson

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/campusterm/campus/internal/clock"
	"github.com/campusterm/campus/internal/store"
)

// stubCompleter records completion reports.
type stubCompleter struct {
	calls   int
	lesson  string
	minutes int
	err     error
}

func (s *stubCompleter) CompleteLesson(_ context.Context, lessonID string, minutes int) error {
	s.calls++
	s.lesson = lessonID
	s.minutes = minutes
	return s.err
}

// stubEventRepo implements store.EventRepo for testing.
type stubEventRepo struct {
	engagement []store.EngagementEventData
}

func (s *stubEventRepo) AppendAnswer(_ context.Context, _ store.AnswerEventData) error  { return nil }
func (s *stubEventRepo) AppendSession(_ context.Context, _ store.SessionEventData) error { return nil }
func (s *stubEventRepo) AppendSubmission(_ context.Context, _ store.SubmissionEventData) error {
	return nil
}
func (s *stubEventRepo) AppendEngagement(_ context.Context, data store.EngagementEventData) error {
	s.engagement = append(s.engagement, data)
	return nil
}
func (s *stubEventRepo) QuizAnswers(_ context.Context, _ string) (map[int]int, error) {
	return nil, nil
}
func (s *stubEventRepo) RecentSessions(_ context.Context, _ int) ([]store.SessionRecord, error) {
	return nil, nil
}
func (s *stubEventRepo) RecentSubmissions(_ context.Context, _ int) ([]store.SubmissionRecord, error) {
	return nil, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testLessonScreen() (*LessonScreen, *stubCompleter, *stubEventRepo, *clock.Fake) {
	clk := clock.NewFake(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	coord := &stubCompleter{}
	events := &stubEventRepo{}
	s := New("lesson-42", "Derivatives", coord, events, clk)
	return s, coord, events, clk
}

func TestLessonScreen_StartsPaused(t *testing.T) {
	s, _, _, clk := testLessonScreen()
	clk.Advance(5 * time.Minute)
	if s.tracker.WatchTime() != 0 {
		t.Errorf("watch time = %v, want 0 before resume", s.tracker.WatchTime())
	}
}

func TestLessonScreen_SpaceTogglesPlayback(t *testing.T) {
	s, _, events, clk := testLessonScreen()

	s.Update(keyPress(' '))
	if !s.tracker.Resumed() {
		t.Fatal("expected playback resumed")
	}
	clk.Advance(90 * time.Second)

	s.Update(keyPress(' '))
	if s.tracker.Resumed() {
		t.Fatal("expected playback paused")
	}
	clk.Advance(10 * time.Minute)

	if got := s.tracker.WatchTime(); got != 90*time.Second {
		t.Errorf("watch time = %v, want 90s", got)
	}

	if len(events.engagement) != 2 {
		t.Fatalf("engagement events = %d, want 2", len(events.engagement))
	}
	if events.engagement[0].Action != "resume" || events.engagement[1].Action != "pause" {
		t.Errorf("actions = %s,%s, want resume,pause",
			events.engagement[0].Action, events.engagement[1].Action)
	}
	if events.engagement[1].WatchSecs != 90 {
		t.Errorf("WatchSecs = %d, want 90", events.engagement[1].WatchSecs)
	}
}

func TestLessonScreen_CompleteReportsFlooredMinutes(t *testing.T) {
	s, coord, _, clk := testLessonScreen()

	s.Update(keyPress(' '))
	clk.Advance(179 * time.Second)

	s.Update(keyPress('c'))
	if !s.confirmComplete {
		t.Fatal("expected completion confirmation")
	}
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected completion command")
	}
	s.Update(cmd())

	if coord.calls != 1 {
		t.Fatalf("coordinator calls = %d, want 1", coord.calls)
	}
	if coord.lesson != "lesson-42" {
		t.Errorf("lesson = %q, want lesson-42", coord.lesson)
	}
	if coord.minutes != 2 {
		t.Errorf("minutes = %d, want 2 (floored)", coord.minutes)
	}
	if !s.done {
		t.Error("expected done view after completion")
	}
}

func TestLessonScreen_FreezeStopsAccumulation(t *testing.T) {
	s, coord, _, clk := testLessonScreen()

	s.Update(keyPress(' '))
	clk.Advance(4 * time.Minute)

	s.Update(keyPress('c'))
	_, cmd := s.Update(keyPress('y'))

	// Time passing between freeze and delivery must not change the report.
	clk.Advance(30 * time.Minute)
	s.Update(cmd())

	if coord.minutes != 4 {
		t.Errorf("minutes = %d, want 4", coord.minutes)
	}
}

func TestLessonScreen_FailedCompleteShowsQueuedBanner(t *testing.T) {
	s, coord, _, clk := testLessonScreen()
	coord.err = errors.New("connection refused")

	s.Update(keyPress(' '))
	clk.Advance(2 * time.Minute)
	s.Update(keyPress('c'))
	_, cmd := s.Update(keyPress('y'))
	s.Update(cmd())

	if !s.done {
		t.Error("expected done view; the report is queued locally")
	}
	if s.banner == "" || !s.bannerErr {
		t.Error("expected a queued-report banner")
	}
}

func TestLessonScreen_CompleteLogsEngagement(t *testing.T) {
	s, _, events, clk := testLessonScreen()

	s.Update(keyPress(' '))
	clk.Advance(time.Minute)
	s.Update(keyPress('c'))
	_, cmd := s.Update(keyPress('y'))
	s.Update(cmd())

	last := events.engagement[len(events.engagement)-1]
	if last.Action != "complete" {
		t.Errorf("last action = %s, want complete", last.Action)
	}
	if last.WatchSecs != 60 {
		t.Errorf("WatchSecs = %d, want 60", last.WatchSecs)
	}
}

func TestLessonScreen_View(t *testing.T) {
	s, _, _, _ := testLessonScreen()
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view")
	}
}
