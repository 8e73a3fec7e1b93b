package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/campusterm/campus/internal/router"
	"github.com/campusterm/campus/internal/screen"
	"github.com/campusterm/campus/internal/store"
	"github.com/campusterm/campus/internal/ui/layout"
	"github.com/campusterm/campus/internal/ui/theme"
)

type historyLoadedMsg struct {
	Sessions    []store.SessionRecord
	Submissions []store.SubmissionRecord
	Err         error
}

// tab selects between the two history views.
type tab int

const (
	tabSessions tab = iota
	tabSubmissions
)

// HistoryScreen displays past quiz sessions and submission attempts.
type HistoryScreen struct {
	events      store.EventRepo
	sessions    []store.SessionRecord
	submissions []store.SubmissionRecord
	active      tab
	selected    int
	loaded      bool
	errMsg      string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(events store.EventRepo) *HistoryScreen {
	return &HistoryScreen{events: events}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		sessions, err := s.events.RecentSessions(ctx, 50)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		submissions, err := s.events.RecentSubmissions(ctx, 50)
		if err != nil {
			return historyLoadedMsg{Sessions: sessions}
		}
		return historyLoadedMsg{Sessions: sessions, Submissions: submissions}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch view"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			s.submissions = msg.Submissions
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			if s.active == tabSessions {
				s.active = tabSubmissions
			} else {
				s.active = tabSessions
			}
			s.selected = 0
			return s, nil
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < s.rowCount()-1 {
				s.selected++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) rowCount() int {
	if s.active == tabSessions {
		return len(s.sessions)
	}
	return len(s.submissions)
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.renderTabs())
	b.WriteString("\n\n")

	if s.active == tabSessions {
		b.WriteString(s.renderSessions())
	} else {
		b.WriteString(s.renderSubmissions())
	}
	return b.String()
}

func (s *HistoryScreen) renderTabs() string {
	activeStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	sessionsTab := "  Quizzes"
	submissionsTab := "Submissions"
	if s.active == tabSessions {
		return activeStyle.Render(sessionsTab) + "   " + dimStyle.Render(submissionsTab)
	}
	return dimStyle.Render(sessionsTab) + "   " + activeStyle.Render(submissionsTab)
}

func (s *HistoryScreen) renderSessions() string {
	if len(s.sessions) == 0 {
		return theme.Hint.PaddingLeft(2).Render("No quiz sessions yet.")
	}

	var b strings.Builder
	for i, rec := range s.sessions {
		dateStr := rec.Timestamp.Format("Jan 02 15:04")
		line := fmt.Sprintf("%s  %-22s %-8s %d/%d answered",
			dateStr, rec.QuizID, rec.Action, rec.QuestionsAnswered, rec.QuestionCount)
		if rec.AttemptID != "" {
			line += "  attempt " + rec.AttemptID
		}
		b.WriteString(s.renderRow(i, line, actionColor(rec.Action)))
	}
	return b.String()
}

func (s *HistoryScreen) renderSubmissions() string {
	if len(s.submissions) == 0 {
		return theme.Hint.PaddingLeft(2).Render("No submissions yet.")
	}

	var b strings.Builder
	for i, rec := range s.submissions {
		dateStr := rec.Timestamp.Format("Jan 02 15:04")
		outcome := "ok"
		c := theme.Success
		if !rec.Success {
			outcome = "failed"
			c = theme.Error
		}
		line := fmt.Sprintf("%s  %-12s %-22s %-7s %dms",
			dateStr, rec.Kind, rec.Target, outcome, rec.LatencyMs)
		b.WriteString(s.renderRow(i, line, c))
	}
	return b.String()
}

func (s *HistoryScreen) renderRow(i int, line string, c color.Color) string {
	if i == s.selected {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  > "+line) + "\n"
	}
	return lipgloss.NewStyle().Foreground(c).Render("    "+line) + "\n"
}

func actionColor(action string) color.Color {
	switch action {
	case "submit":
		return theme.Success
	case "expire":
		return theme.Warning
	case "abandon":
		return theme.TextDim
	}
	return theme.Text
}
