package lesson

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/campusterm/campus/internal/clock"
	"github.com/campusterm/campus/internal/engagement"
	"github.com/campusterm/campus/internal/router"
	"github.com/campusterm/campus/internal/screen"
	"github.com/campusterm/campus/internal/store"
	"github.com/campusterm/campus/internal/ui/layout"
	"github.com/campusterm/campus/internal/ui/theme"
)

// completer is the slice of the coordinator the lesson screen uses.
type completer interface {
	CompleteLesson(ctx context.Context, lessonID string, minutes int) error
}

// timerTickMsg drives the watch-time readout.
type timerTickMsg time.Time

// completeResultMsg is sent when the completion report resolves.
type completeResultMsg struct {
	Minutes int
	Err     error
}

// LessonScreen implements screen.Screen for watching a lesson. The tracker
// accumulates watch time only while playback is resumed.
type LessonScreen struct {
	lessonID string
	title    string
	tracker  *engagement.Tracker
	coord    completer
	events   store.EventRepo
	clk      clock.Clock

	confirmComplete bool
	completing      bool
	done            bool
	reportedMinutes int
	banner          string
	bannerErr       bool
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates a lesson screen. Playback starts paused.
func New(lessonID, title string, coord completer, events store.EventRepo, clk clock.Clock) *LessonScreen {
	return &LessonScreen{
		lessonID: lessonID,
		title:    title,
		tracker:  engagement.NewTracker(clk),
		coord:    coord,
		events:   events,
		clk:      clk,
	}
}

func (s *LessonScreen) Init() tea.Cmd {
	return tickCmd()
}

func (s *LessonScreen) Title() string {
	return s.title
}

func (s *LessonScreen) KeyHints() []layout.KeyHint {
	if s.confirmComplete {
		return []layout.KeyHint{
			{Key: "Y", Description: "Confirm"},
			{Key: "N", Description: "Cancel"},
		}
	}
	if s.done {
		return []layout.KeyHint{
			{Key: "any key", Description: "Back"},
		}
	}
	play := "Play"
	if s.tracker.Resumed() {
		play = "Pause"
	}
	return []layout.KeyHint{
		{Key: "Space", Description: play},
		{Key: "C", Description: "Complete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if s.done {
			return s, nil
		}
		return s, tickCmd()

	case completeResultMsg:
		return s.handleCompleteResult(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *LessonScreen) handleCompleteResult(msg completeResultMsg) (screen.Screen, tea.Cmd) {
	s.completing = false
	s.logEngagement("complete")
	s.reportedMinutes = msg.Minutes
	s.done = true
	if msg.Err != nil {
		// The coordinator queued the report; campus sync delivers it.
		s.banner = "Could not reach the server. The report is saved and will be sent by campus sync."
		s.bannerErr = true
	} else {
		s.banner = fmt.Sprintf("Lesson completed. %d minutes reported.", msg.Minutes)
		s.bannerErr = false
	}
	return s, nil
}

func (s *LessonScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.done {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.confirmComplete {
		switch key {
		case "y", "Y", "enter":
			s.confirmComplete = false
			return s, s.beginComplete()
		case "n", "N", "esc":
			s.confirmComplete = false
		}
		return s, nil
	}

	if s.completing {
		return s, nil
	}

	switch key {
	case " ", "space":
		if s.tracker.Resumed() {
			s.tracker.Pause()
			s.logEngagement("pause")
		} else {
			s.tracker.Resume()
			s.logEngagement("resume")
		}
	case "c", "C":
		s.confirmComplete = true
	case "esc":
		s.tracker.Pause()
		s.logEngagement("pause")
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

// beginComplete freezes the tracker and reports the measured minutes. The
// total is read once so the report and the result view agree.
func (s *LessonScreen) beginComplete() tea.Cmd {
	s.tracker.Freeze()
	minutes := s.tracker.WatchTimeMinutes()
	s.completing = true

	coord := s.coord
	lessonID := s.lessonID
	return func() tea.Msg {
		err := coord.CompleteLesson(context.Background(), lessonID, minutes)
		return completeResultMsg{Minutes: minutes, Err: err}
	}
}

func (s *LessonScreen) logEngagement(action string) {
	if s.events == nil {
		return
	}
	_ = s.events.AppendEngagement(context.Background(), store.EngagementEventData{
		LessonID:  s.lessonID,
		Action:    action,
		WatchSecs: int(s.tracker.WatchTime().Seconds()),
	})
}

func (s *LessonScreen) View(width, height int) string {
	if s.confirmComplete {
		return renderConfirm(width, s.tracker.WatchTimeMinutes())
	}

	var b strings.Builder
	b.WriteString("\n")

	state := "Paused"
	stateStyle := lipgloss.NewStyle().Foreground(theme.Warning).Bold(true)
	if s.done {
		state = "Completed"
		stateStyle = lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	} else if s.completing {
		state = "Reporting..."
		stateStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
	} else if s.tracker.Resumed() {
		state = "Playing"
		stateStyle = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(stateStyle.Render(state)))
	b.WriteString("\n\n")

	watched := s.tracker.WatchTime()
	mins := int(watched.Minutes())
	secs := int(watched.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("Watch time  %02d:%02d", mins, secs)))
	b.WriteString("\n\n")

	if s.banner != "" {
		style := theme.BannerSuccess
		if s.bannerErr {
			style = theme.BannerError
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(style.Render(s.banner)))
		b.WriteString("\n")
	}

	return b.String()
}

func renderConfirm(width, minutes int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Warning).
		Bold(true).
		Render("Mark this lesson complete?"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d minutes of watch time will be reported.", minutes)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("[Y]es    [N]o"))
	return b.String()
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
