package quiz

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/campusterm/campus/internal/api"
	"github.com/campusterm/campus/internal/api/quizfile"
	"github.com/campusterm/campus/internal/assessment"
	"github.com/campusterm/campus/internal/clock"
	"github.com/campusterm/campus/internal/router"
	"github.com/campusterm/campus/internal/screen"
	"github.com/campusterm/campus/internal/screens/history"
	"github.com/campusterm/campus/internal/store"
	"github.com/campusterm/campus/internal/submit"
	"github.com/campusterm/campus/internal/ui/components"
	"github.com/campusterm/campus/internal/ui/layout"

	"github.com/google/uuid"
)

// submitter is the slice of the coordinator the quiz screen uses.
type submitter interface {
	SubmitQuiz(ctx context.Context, quizID string, sub *assessment.Submission) (string, error)
}

// QuizScreen implements screen.Screen for a timed quiz attempt.
type QuizScreen struct {
	quiz    quizfile.Quiz
	sess    *assessment.Session
	coord   submitter
	events  store.EventRepo
	clk     clock.Clock
	options components.OptionList

	resume    bool
	startedAt time.Time

	confirmSubmit bool
	confirmQuit   bool
	banner        string
	bannerErr     bool
	done          bool
	errMsg        string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen over a parsed quiz definition. Each run gets
// its own session id; resume picks up answers committed by an earlier run
// of the same quiz.
func New(q quizfile.Quiz, coord submitter, events store.EventRepo, clk clock.Clock, resume bool) (*QuizScreen, error) {
	sess, err := assessment.New(uuid.New().String(), q.Questions, q.TimeLimit(), clk)
	if err != nil {
		return nil, err
	}
	s := &QuizScreen{
		quiz:      q,
		sess:      sess,
		coord:     coord,
		events:    events,
		clk:       clk,
		resume:    resume,
		startedAt: clk.Now(),
	}
	s.syncOptions()
	return s, nil
}

func (s *QuizScreen) Init() tea.Cmd {
	ctx := context.Background()
	if s.events != nil {
		_ = s.events.AppendSession(ctx, store.SessionEventData{
			SessionID:     s.sess.ID(),
			QuizID:        s.quiz.ID,
			Action:        "start",
			QuestionCount: s.sess.Len(),
		})
	}

	cmds := []tea.Cmd{tickCmd()}
	if s.resume {
		cmds = append(cmds, s.restoreCmd())
	}
	return tea.Batch(cmds...)
}

func (s *QuizScreen) Title() string {
	return s.quiz.Title
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit || s.confirmSubmit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Confirm"},
			{Key: "N", Description: "Cancel"},
		}
	}
	if s.done {
		return []layout.KeyHint{
			{Key: "H", Description: "History"},
			{Key: "any key", Description: "Exit"},
		}
	}
	if s.sess.Status() == assessment.StatusSubmitting {
		return nil
	}
	return []layout.KeyHint{
		{Key: "1-9", Description: "Answer"},
		{Key: "←/→", Description: "Question"},
		{Key: "S", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTick()

	case restoredMsg:
		return s.handleRestored(msg)

	case submitResultMsg:
		return s.handleSubmitResult(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleTick() (screen.Screen, tea.Cmd) {
	if s.sess.Tick() {
		s.logSessionEvent("expire", "")
		s.banner = "Time is up. Submitting your answers..."
		s.bannerErr = false
		s.confirmSubmit = false
		s.confirmQuit = false
		return s, s.beginSubmit()
	}
	if s.sess.Status() == assessment.StatusActive {
		return s, tickCmd()
	}
	return s, nil
}

func (s *QuizScreen) handleRestored(msg restoredMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil || len(msg.Answers) == 0 {
		return s, nil
	}
	if err := s.sess.Restore(msg.Answers, s.sess.Current()); err == nil {
		s.banner = "Restored answers from your previous attempt."
		s.bannerErr = false
	}
	s.syncOptions()
	return s, nil
}

func (s *QuizScreen) handleSubmitResult(msg submitResultMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.sess.FailFinalize()
		s.banner = submitErrorMessage(msg.Err)
		s.bannerErr = true
		if s.sess.Status() == assessment.StatusActive {
			return s, tickCmd()
		}
		return s, nil
	}

	s.sess.CompleteFinalize(msg.AttemptID)
	s.logSessionEvent("submit", msg.AttemptID)
	s.banner = ""
	s.done = true
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" || s.done {
		if s.done && (key == "h" || key == "H") && s.events != nil {
			// Swap in place; from `campus quiz` this screen is the stack
			// root and popping would quit before the attempt is seen.
			events := s.events
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: history.New(events)}
			}
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.confirmQuit = false
			s.logSessionEvent("abandon", "")
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if s.confirmSubmit {
		switch key {
		case "y", "Y", "enter":
			s.confirmSubmit = false
			return s, s.beginSubmit()
		case "n", "N", "esc":
			s.confirmSubmit = false
		}
		return s, nil
	}

	if s.sess.Status() == assessment.StatusSubmitting {
		return s, nil
	}

	switch key {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "s", "S":
		s.confirmSubmit = true
		return s, nil
	case "enter":
		s.commitCursor()
		if s.sess.Next() {
			s.confirmSubmit = true
			return s, nil
		}
		s.syncOptions()
		return s, nil
	case "right", "l":
		s.commitPending()
		if s.sess.Next() {
			s.confirmSubmit = true
			return s, nil
		}
		s.syncOptions()
		return s, nil
	case "left", "h":
		s.commitPending()
		s.sess.Prev()
		s.syncOptions()
		return s, nil
	}

	// Number keys commit directly; arrows just move the cursor.
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		var cmd tea.Cmd
		s.options, cmd = s.options.Update(msg)
		s.commitCursor()
		return s, cmd
	}

	var cmd tea.Cmd
	s.options, cmd = s.options.Update(msg)
	return s, cmd
}

// commitPending commits a highlight the user moved to but never pressed
// Enter or a number key on. Leaving the question and finalizing are
// commit points; an untouched cursor commits nothing.
func (s *QuizScreen) commitPending() {
	if s.options.Touched && s.options.Cursor != s.options.Committed {
		s.commitCursor()
	}
}

// commitCursor records the highlighted option as the answer for the
// current question.
func (s *QuizScreen) commitCursor() {
	if err := s.sess.SelectAnswer(s.options.Cursor); err != nil {
		return
	}
	s.options.Committed = s.options.Cursor
	if s.events != nil {
		_ = s.events.AppendAnswer(context.Background(), store.AnswerEventData{
			SessionID:     s.sess.ID(),
			QuizID:        s.quiz.ID,
			QuestionIndex: s.sess.Current(),
			OptionIndex:   s.options.Cursor,
		})
	}
}

// syncOptions rebuilds the option list for the current question.
func (s *QuizScreen) syncOptions() {
	committed := -1
	if a, ok := s.sess.Answer(s.sess.Current()); ok {
		committed = a
	}
	s.options = components.NewOptionList(s.sess.Question().Options, committed)
}

// beginSubmit latches the session and dispatches the submission. A nil
// command means another finalize is already running.
func (s *QuizScreen) beginSubmit() tea.Cmd {
	s.commitPending()
	sub, ok := s.sess.BeginFinalize()
	if !ok {
		return nil
	}
	coord := s.coord
	quizID := s.quiz.ID
	return func() tea.Msg {
		attemptID, err := coord.SubmitQuiz(context.Background(), quizID, sub)
		return submitResultMsg{AttemptID: attemptID, Err: err}
	}
}

func (s *QuizScreen) restoreCmd() tea.Cmd {
	quizID := s.quiz.ID
	events := s.events
	return func() tea.Msg {
		if events == nil {
			return restoredMsg{}
		}
		answers, err := events.QuizAnswers(context.Background(), quizID)
		return restoredMsg{Answers: answers, Err: err}
	}
}

func (s *QuizScreen) logSessionEvent(action, attemptID string) {
	if s.events == nil {
		return
	}
	_ = s.events.AppendSession(context.Background(), store.SessionEventData{
		SessionID:         s.sess.ID(),
		QuizID:            s.quiz.ID,
		Action:            action,
		QuestionCount:     s.sess.Len(),
		QuestionsAnswered: s.sess.Answered(),
		DurationSecs:      int(s.clk.Now().Sub(s.startedAt).Seconds()),
		AttemptID:         attemptID,
	})
}

// submitErrorMessage maps a submission failure to a one-line banner.
func submitErrorMessage(err error) string {
	if errors.Is(err, submit.ErrInProgress) {
		return "A submission is already in progress."
	}
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("The server rejected the submission (HTTP %d). Your answers are kept.", statusErr.Code)
	}
	var transportErr *api.TransportError
	if errors.As(err, &transportErr) {
		return "Could not reach the server. Your answers are kept; press S to retry."
	}
	return "Submission failed: " + err.Error()
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
