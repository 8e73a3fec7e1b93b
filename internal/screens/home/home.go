package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/campusterm/campus/internal/router"
	"github.com/campusterm/campus/internal/screen"
	"github.com/campusterm/campus/internal/screens/discussions"
	"github.com/campusterm/campus/internal/screens/history"
	"github.com/campusterm/campus/internal/store"
	"github.com/campusterm/campus/internal/ui/components"
)

// Deps carries the collaborators the home menu hands to child screens.
// Optional entries are hidden when their dependency is missing.
type Deps struct {
	Events  store.EventRepo
	Pending store.PendingRepo

	// CourseID enables the discussions entry when set.
	CourseID          string
	DiscussionsClient discussions.Client
	DiscussionsPoster discussions.Poster
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu         components.Menu
	quizCount    int
	pendingCount int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	ctx := context.Background()

	var quizCount int
	if deps.Events != nil {
		if recs, err := deps.Events.RecentSessions(ctx, 50); err == nil {
			for _, rec := range recs {
				if rec.Action == "submit" {
					quizCount++
				}
			}
		}
	}

	var pendingCount int
	if deps.Pending != nil {
		if queued, err := deps.Pending.List(ctx); err == nil {
			pendingCount = len(queued)
		}
	}

	var items []components.MenuItem
	if deps.CourseID != "" && deps.DiscussionsClient != nil {
		courseID := deps.CourseID
		client := deps.DiscussionsClient
		poster := deps.DiscussionsPoster
		items = append(items, components.MenuItem{
			Label:  "DISCUSSIONS",
			Detail: courseID,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: discussions.New(courseID, client, poster)}
				}
			},
		})
	}
	events := deps.Events
	items = append(items,
		components.MenuItem{
			Label:    "HISTORY",
			Disabled: events == nil,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: history.New(events)}
				}
			},
		},
		components.MenuItem{
			Label: "EXIT",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	)

	return &HomeScreen{
		menu:         components.NewMenu(items),
		quizCount:    quizCount,
		pendingCount: pendingCount,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(renderTitle(width))
	b.WriteString("\n\n")
	b.WriteString(renderStats(h.quizCount, h.pendingCount, width))
	b.WriteString("\n\n")
	b.WriteString(h.menu.View())
	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func renderTitle(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(banner(width))
}

func renderStats(quizCount, pendingCount, width int) string {
	stats := fmt.Sprintf("%d quizzes submitted", quizCount)
	if pendingCount > 0 {
		stats += fmt.Sprintf("   %d reports waiting for sync", pendingCount)
	}
	return statsStyle.Width(width).Render(stats)
}
