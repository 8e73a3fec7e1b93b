package discussions

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/campusterm/campus/internal/api"
	"github.com/campusterm/campus/internal/screen"
	"github.com/campusterm/campus/internal/ui/components"
	"github.com/campusterm/campus/internal/ui/layout"
	"github.com/campusterm/campus/internal/ui/theme"
)

// Client fetches discussion threads for a course.
type Client interface {
	ListDiscussions(ctx context.Context, courseID string) ([]api.Discussion, error)
}

// Poster is the slice of the coordinator the composer uses.
type Poster interface {
	PostDiscussion(ctx context.Context, courseID, title, content string) error
}

// threadsMsg is sent when the thread list has been fetched.
type threadsMsg struct {
	Threads []api.Discussion
	Err     error
}

// postResultMsg is sent when a new thread post resolves.
type postResultMsg struct {
	Err error
}

// mode selects between the list, a thread detail, and the composer.
type mode int

const (
	modeList mode = iota
	modeThread
	modeCompose
)

// DiscussionsScreen implements screen.Screen for course discussion threads.
type DiscussionsScreen struct {
	courseID string
	client   Client
	coord    Poster

	mode     mode
	loading  bool
	threads  []api.Discussion
	selected int

	titleInput   components.TextInput
	contentInput components.TextInput
	focusContent bool
	posting      bool

	banner    string
	bannerErr bool
	errMsg    string
}

var _ screen.Screen = (*DiscussionsScreen)(nil)
var _ screen.KeyHintProvider = (*DiscussionsScreen)(nil)

// New creates a discussions screen for one course.
func New(courseID string, client Client, coord Poster) *DiscussionsScreen {
	return &DiscussionsScreen{
		courseID:     courseID,
		client:       client,
		coord:        coord,
		loading:      true,
		titleInput:   components.NewTextInput("Thread title...", 60),
		contentInput: components.NewTextInput("Write your post...", 200),
	}
}

func (s *DiscussionsScreen) Init() tea.Cmd {
	return s.fetchCmd()
}

func (s *DiscussionsScreen) Title() string {
	return "Discussions"
}

func (s *DiscussionsScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeCompose:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Next field"},
			{Key: "Enter", Description: "Post"},
			{Key: "Esc", Description: "Cancel"},
		}
	case modeThread:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Select"},
		{Key: "Enter", Description: "Open"},
		{Key: "N", Description: "New thread"},
		{Key: "R", Description: "Refresh"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DiscussionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case threadsMsg:
		s.loading = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.threads = msg.Threads
		if s.selected >= len(s.threads) {
			s.selected = 0
		}
		return s, nil

	case postResultMsg:
		s.posting = false
		if msg.Err != nil {
			// The coordinator queued the post; campus sync delivers it.
			s.banner = "Could not reach the server. The post is saved and will be sent by campus sync."
			s.bannerErr = true
			s.mode = modeList
			return s, nil
		}
		s.banner = "Posted."
		s.bannerErr = false
		s.mode = modeList
		s.loading = true
		return s, s.fetchCmd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *DiscussionsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.mode {
	case modeCompose:
		return s.handleComposeKey(msg, key)

	case modeThread:
		if key == "esc" || key == "q" {
			s.mode = modeList
		}
		return s, nil
	}

	// List mode.
	switch key {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(s.threads)-1 {
			s.selected++
		}
	case "enter":
		if len(s.threads) > 0 {
			s.mode = modeThread
		}
	case "n", "N":
		s.mode = modeCompose
		s.banner = ""
		s.titleInput = components.NewTextInput("Thread title...", 60)
		s.contentInput = components.NewTextInput("Write your post...", 200)
		s.focusContent = false
		s.titleInput.Focus()
		s.contentInput.Blur()
		return s, s.titleInput.Init()
	case "r", "R":
		s.loading = true
		return s, s.fetchCmd()
	}
	return s, nil
}

func (s *DiscussionsScreen) handleComposeKey(msg tea.KeyMsg, key string) (screen.Screen, tea.Cmd) {
	if s.posting {
		return s, nil
	}

	switch key {
	case "esc":
		s.mode = modeList
		return s, nil
	case "tab":
		s.focusContent = !s.focusContent
		if s.focusContent {
			s.titleInput.Blur()
			s.contentInput.Focus()
		} else {
			s.contentInput.Blur()
			s.titleInput.Focus()
		}
		return s, nil
	case "enter":
		title := strings.TrimSpace(s.titleInput.Value())
		content := strings.TrimSpace(s.contentInput.Value())
		if title == "" || content == "" {
			s.banner = "Both a title and a post body are required."
			s.bannerErr = true
			return s, nil
		}
		s.posting = true
		s.banner = ""
		return s, s.postCmd(title, content)
	}

	var cmd tea.Cmd
	if s.focusContent {
		s.contentInput, cmd = s.contentInput.Update(msg)
	} else {
		s.titleInput, cmd = s.titleInput.Update(msg)
	}
	return s, cmd
}

func (s *DiscussionsScreen) fetchCmd() tea.Cmd {
	client := s.client
	courseID := s.courseID
	return func() tea.Msg {
		threads, err := client.ListDiscussions(context.Background(), courseID)
		return threadsMsg{Threads: threads, Err: err}
	}
}

func (s *DiscussionsScreen) postCmd(title, content string) tea.Cmd {
	coord := s.coord
	courseID := s.courseID
	return func() tea.Msg {
		err := coord.PostDiscussion(context.Background(), courseID, title, content)
		return postResultMsg{Err: err}
	}
}

func (s *DiscussionsScreen) View(width, height int) string {
	switch s.mode {
	case modeCompose:
		return s.renderCompose(width)
	case modeThread:
		return s.renderThread(width)
	}
	return s.renderList(width)
}

func (s *DiscussionsScreen) renderList(width int) string {
	var b strings.Builder
	b.WriteString("\n")

	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Error).
			PaddingLeft(2).
			Render("Could not load discussions: " + s.errMsg))
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.PaddingLeft(2).Render("Press R to retry."))
		return b.String()
	}

	if s.loading {
		return theme.Hint.PaddingLeft(2).Render("\nLoading discussions...")
	}

	if len(s.threads) == 0 {
		b.WriteString(theme.Hint.PaddingLeft(2).Render("No discussions yet. Press N to start one."))
	}

	for i, thread := range s.threads {
		line := fmt.Sprintf("%s  %s", thread.Title,
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("by %s, %d replies", thread.Author, len(thread.Replies))))
		if i == s.selected {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("  > "+line) + "\n")
		} else {
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    "+line) + "\n")
		}
	}

	if s.banner != "" {
		style := theme.BannerSuccess
		if s.bannerErr {
			style = theme.BannerError
		}
		b.WriteString("\n")
		b.WriteString(style.PaddingLeft(2).Render(s.banner))
	}

	return b.String()
}

func (s *DiscussionsScreen) renderThread(width int) string {
	if s.selected >= len(s.threads) {
		return ""
	}
	thread := s.threads[s.selected]

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		PaddingLeft(2).
		Render(thread.Title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		PaddingLeft(2).
		Render(fmt.Sprintf("%s, %s", thread.Author, thread.CreatedAt)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(width - 4).
		PaddingLeft(2).
		Render(thread.Content))
	b.WriteString("\n")

	for _, reply := range thread.Replies {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Secondary).
			PaddingLeft(4).
			Render(reply.Author))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(width - 6).
			PaddingLeft(4).
			Render(reply.Content))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *DiscussionsScreen) renderCompose(width int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		PaddingLeft(2).
		Render("New thread"))
	b.WriteString("\n\n")
	b.WriteString("  Title:   " + s.titleInput.View() + "\n\n")
	b.WriteString("  Post:    " + s.contentInput.View() + "\n")

	if s.posting {
		b.WriteString("\n")
		b.WriteString(theme.Hint.PaddingLeft(2).Render("Posting..."))
	}

	if s.banner != "" && s.bannerErr {
		b.WriteString("\n")
		b.WriteString(theme.BannerError.PaddingLeft(2).Render(s.banner))
	}

	return b.String()
}
