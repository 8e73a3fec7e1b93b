package quiz

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/campusterm/campus/internal/api"
	"github.com/campusterm/campus/internal/api/quizfile"
	"github.com/campusterm/campus/internal/assessment"
	"github.com/campusterm/campus/internal/clock"
	"github.com/campusterm/campus/internal/router"
	"github.com/campusterm/campus/internal/store"
)

// stubSubmitter counts coordinator calls and returns a canned result.
type stubSubmitter struct {
	calls     int
	attemptID string
	err       error
	lastSub   *assessment.Submission
}

func (s *stubSubmitter) SubmitQuiz(_ context.Context, _ string, sub *assessment.Submission) (string, error) {
	s.calls++
	s.lastSub = sub
	if s.err != nil {
		return "", s.err
	}
	return s.attemptID, nil
}

// stubEventRepo implements store.EventRepo for testing.
type stubEventRepo struct {
	answers  []store.AnswerEventData
	sessions []store.SessionEventData
}

func (s *stubEventRepo) AppendAnswer(_ context.Context, data store.AnswerEventData) error {
	s.answers = append(s.answers, data)
	return nil
}
func (s *stubEventRepo) AppendSession(_ context.Context, data store.SessionEventData) error {
	s.sessions = append(s.sessions, data)
	return nil
}
func (s *stubEventRepo) AppendSubmission(_ context.Context, _ store.SubmissionEventData) error {
	return nil
}
func (s *stubEventRepo) AppendEngagement(_ context.Context, _ store.EngagementEventData) error {
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

func (s *stubEventRepo) sessionActions() []string {
	var actions []string
	for _, ev := range s.sessions {
		actions = append(actions, ev.Action)
	}
	return actions
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuiz() quizfile.Quiz {
	return quizfile.Quiz{
		ID:               "algebra-101",
		Title:            "Algebra Basics",
		TimeLimitMinutes: 10,
		Questions: []assessment.Question{
			{Text: "2 + 2?", Options: []string{"3", "4", "5"}},
			{Text: "3 * 3?", Options: []string{"6", "9", "12"}},
		},
	}
}

func testQuizScreen(t *testing.T) (*QuizScreen, *stubSubmitter, *stubEventRepo, *clock.Fake) {
	t.Helper()
	clk := clock.NewFake(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	coord := &stubSubmitter{attemptID: "att-7"}
	events := &stubEventRepo{}

	s, err := New(testQuiz(), coord, events, clk, false)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s.Init()
	return s, coord, events, clk
}

func TestQuizScreen_Title(t *testing.T) {
	s, _, _, _ := testQuizScreen(t)
	if s.Title() != "Algebra Basics" {
		t.Errorf("Title = %q, want %q", s.Title(), "Algebra Basics")
	}
}

func TestQuizScreen_InitLogsStart(t *testing.T) {
	_, _, events, _ := testQuizScreen(t)
	if len(events.sessions) != 1 || events.sessions[0].Action != "start" {
		t.Fatalf("session events = %v, want one start", events.sessionActions())
	}
	if events.sessions[0].QuestionCount != 2 {
		t.Errorf("QuestionCount = %d, want 2", events.sessions[0].QuestionCount)
	}
}

func TestQuizScreen_NumberKeyCommitsAnswer(t *testing.T) {
	s, _, events, _ := testQuizScreen(t)

	s.Update(keyPress('2'))

	if a, ok := s.sess.Answer(0); !ok || a != 1 {
		t.Errorf("answer = %d,%v, want 1,true", a, ok)
	}
	if len(events.answers) != 1 {
		t.Fatalf("answer events = %d, want 1", len(events.answers))
	}
	if events.answers[0].OptionIndex != 1 || events.answers[0].QuestionIndex != 0 {
		t.Errorf("answer event = %+v", events.answers[0])
	}
}

func TestQuizScreen_UpDownBrowsesWithoutCommitting(t *testing.T) {
	s, _, events, _ := testQuizScreen(t)

	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyDown))

	if _, ok := s.sess.Answer(0); ok {
		t.Error("browsing with up/down must not commit an answer")
	}
	if len(events.answers) != 0 {
		t.Errorf("answer events = %d, want 0", len(events.answers))
	}
	if s.options.Cursor != 2 {
		t.Errorf("cursor = %d, want 2", s.options.Cursor)
	}
}

func TestQuizScreen_NextQuestionCommitsHighlight(t *testing.T) {
	s, _, events, _ := testQuizScreen(t)

	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyRight))

	if a, ok := s.sess.Answer(0); !ok || a != 1 {
		t.Errorf("answer = %d,%v, want 1,true (highlight committed on leave)", a, ok)
	}
	if len(events.answers) != 1 {
		t.Errorf("answer events = %d, want 1", len(events.answers))
	}
	if s.sess.Current() != 1 {
		t.Errorf("current = %d, want 1", s.sess.Current())
	}
}

func TestQuizScreen_UntouchedCursorNotCommittedOnLeave(t *testing.T) {
	s, _, events, _ := testQuizScreen(t)

	s.Update(specialKey(tea.KeyRight))
	s.Update(specialKey(tea.KeyLeft))

	if _, ok := s.sess.Answer(0); ok {
		t.Error("navigating an untouched question must not commit an answer")
	}
	if _, ok := s.sess.Answer(1); ok {
		t.Error("navigating an untouched question must not commit an answer")
	}
	if len(events.answers) != 0 {
		t.Errorf("answer events = %d, want 0", len(events.answers))
	}
}

func TestQuizScreen_NavigationPreservesAnswers(t *testing.T) {
	s, _, _, _ := testQuizScreen(t)

	s.Update(keyPress('3'))
	s.Update(specialKey(tea.KeyRight))
	if s.sess.Current() != 1 {
		t.Fatalf("current = %d, want 1", s.sess.Current())
	}
	s.Update(specialKey(tea.KeyLeft))

	if s.options.Committed != 2 {
		t.Errorf("committed marker = %d, want 2", s.options.Committed)
	}
	if a, _ := s.sess.Answer(0); a != 2 {
		t.Errorf("answer = %d, want 2", a)
	}
}

func TestQuizScreen_EnterOnLastShowsSubmitConfirm(t *testing.T) {
	s, _, _, _ := testQuizScreen(t)

	s.Update(keyPress('1'))
	s.Update(specialKey(tea.KeyRight))
	s.Update(keyPress('2'))
	s.Update(specialKey(tea.KeyEnter))

	if !s.confirmSubmit {
		t.Error("expected submit confirmation on the last question")
	}
	if s.sess.Current() != 1 {
		t.Errorf("current = %d, want 1 (no wrap)", s.sess.Current())
	}
}

func TestQuizScreen_SubmitSuccess(t *testing.T) {
	s, coord, events, _ := testQuizScreen(t)

	s.Update(keyPress('2'))
	s.Update(keyPress('s'))
	if !s.confirmSubmit {
		t.Fatal("expected submit confirmation")
	}
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected submission command")
	}
	if s.sess.Status() != assessment.StatusSubmitting {
		t.Fatalf("status = %v, want submitting", s.sess.Status())
	}

	s.Update(cmd())

	if coord.calls != 1 {
		t.Errorf("coordinator calls = %d, want 1", coord.calls)
	}
	if s.sess.Status() != assessment.StatusSubmitted {
		t.Errorf("status = %v, want submitted", s.sess.Status())
	}
	if s.sess.AttemptID() != "att-7" {
		t.Errorf("attempt id = %q, want att-7", s.sess.AttemptID())
	}
	if !s.done {
		t.Error("expected result view after accepted submission")
	}

	actions := events.sessionActions()
	if len(actions) != 2 || actions[1] != "submit" {
		t.Errorf("session actions = %v, want [start submit]", actions)
	}
}

func TestQuizScreen_ResultOffersHistory(t *testing.T) {
	s, _, _, _ := testQuizScreen(t)

	s.Update(keyPress('s'))
	_, cmd := s.Update(keyPress('y'))
	s.Update(cmd())
	if !s.done {
		t.Fatal("expected result view")
	}

	_, hcmd := s.Update(keyPress('h'))
	if hcmd == nil {
		t.Fatal("expected a navigation command")
	}
	msg, ok := hcmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("msg = %T, want router.ReplaceScreenMsg", hcmd())
	}
	if msg.Screen.Title() != "History" {
		t.Errorf("replacement screen = %q, want History", msg.Screen.Title())
	}

	// Any other key exits.
	_, pcmd := s.Update(keyPress('q'))
	if pcmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := pcmd().(router.PopScreenMsg); !ok {
		t.Errorf("msg = %T, want router.PopScreenMsg", pcmd())
	}
}

func TestQuizScreen_DoubleSubmitMakesOneCall(t *testing.T) {
	s, coord, _, _ := testQuizScreen(t)

	s.Update(keyPress('s'))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected submission command")
	}

	// A second submit attempt while the first is unresolved is ignored.
	s.Update(keyPress('s'))
	if s.confirmSubmit {
		t.Error("submit confirmation must not open while submitting")
	}
	_, cmd2 := s.Update(keyPress('y'))
	if cmd2 != nil {
		t.Error("expected no second submission command")
	}

	s.Update(cmd())
	if coord.calls != 1 {
		t.Errorf("coordinator calls = %d, want 1", coord.calls)
	}
}

func TestQuizScreen_TickExpiryAutoSubmits(t *testing.T) {
	s, coord, events, clk := testQuizScreen(t)

	s.Update(keyPress('2'))
	clk.Advance(11 * time.Minute)
	_, cmd := s.Update(timerTickMsg(clk.Now()))
	if cmd == nil {
		t.Fatal("expected auto-submission command on expiry")
	}
	if s.sess.Status() != assessment.StatusSubmitting {
		t.Fatalf("status = %v, want submitting", s.sess.Status())
	}

	actions := events.sessionActions()
	if len(actions) != 2 || actions[1] != "expire" {
		t.Fatalf("session actions = %v, want [start expire]", actions)
	}

	s.Update(cmd())
	if coord.calls != 1 {
		t.Errorf("coordinator calls = %d, want 1", coord.calls)
	}
	if s.sess.Status() != assessment.StatusSubmitted {
		t.Errorf("status = %v, want submitted", s.sess.Status())
	}
}

func TestQuizScreen_ExpirySubmitsHighlightedOption(t *testing.T) {
	s, coord, _, clk := testQuizScreen(t)

	// Highlighted but never committed with Enter or a number key.
	s.Update(specialKey(tea.KeyDown))

	clk.Advance(11 * time.Minute)
	_, cmd := s.Update(timerTickMsg(clk.Now()))
	if cmd == nil {
		t.Fatal("expected auto-submission command on expiry")
	}
	s.Update(cmd())

	if coord.lastSub == nil {
		t.Fatal("expected a submission")
	}
	if a, ok := coord.lastSub.Answers[0]; !ok || a != 1 {
		t.Errorf("submitted answers = %v, want map[0:1]", coord.lastSub.Answers)
	}
}

func TestQuizScreen_ExpiryThenUserSubmitMakesOneCall(t *testing.T) {
	s, coord, _, clk := testQuizScreen(t)

	// The tick that detects expiry and the user's submit keystrokes land
	// in the same update batch; only the tick's finalize may win.
	clk.Advance(11 * time.Minute)
	_, cmd := s.Update(timerTickMsg(clk.Now()))
	if cmd == nil {
		t.Fatal("expected auto-submission command")
	}

	s.Update(keyPress('s'))
	_, cmd2 := s.Update(keyPress('y'))
	if cmd2 != nil {
		t.Error("expected user submit to lose the finalize race")
	}

	s.Update(cmd())
	if coord.calls != 1 {
		t.Errorf("coordinator calls = %d, want 1", coord.calls)
	}
}

func TestQuizScreen_FailedSubmitKeepsAnswersAndRetries(t *testing.T) {
	s, coord, _, _ := testQuizScreen(t)
	coord.err = &api.TransportError{Err: errors.New("connection refused")}

	s.Update(keyPress('2'))
	s.Update(keyPress('s'))
	_, cmd := s.Update(keyPress('y'))
	_, tick := s.Update(cmd())

	if s.sess.Status() != assessment.StatusActive {
		t.Fatalf("status = %v, want active after failure with time left", s.sess.Status())
	}
	if a, _ := s.sess.Answer(0); a != 1 {
		t.Errorf("answer = %d, want 1 (kept after failure)", a)
	}
	if s.banner == "" || !s.bannerErr {
		t.Error("expected an error banner")
	}
	if tick == nil {
		t.Error("expected the countdown to resume after a failed submission")
	}

	// An explicit retry is accepted once the first attempt resolved.
	coord.err = nil
	s.Update(keyPress('s'))
	_, cmd2 := s.Update(keyPress('y'))
	if cmd2 == nil {
		t.Fatal("expected retry command")
	}
	s.Update(cmd2())

	if coord.calls != 2 {
		t.Errorf("coordinator calls = %d, want 2", coord.calls)
	}
	if s.sess.Status() != assessment.StatusSubmitted {
		t.Errorf("status = %v, want submitted", s.sess.Status())
	}
}

func TestQuizScreen_FailedSubmitAfterExpiryStaysExpired(t *testing.T) {
	s, coord, _, clk := testQuizScreen(t)
	coord.err = &api.StatusError{Code: 503}

	clk.Advance(11 * time.Minute)
	_, cmd := s.Update(timerTickMsg(clk.Now()))
	_, tick := s.Update(cmd())

	if s.sess.Status() != assessment.StatusExpired {
		t.Fatalf("status = %v, want expired after failure past the deadline", s.sess.Status())
	}
	if tick != nil {
		t.Error("expected no tick re-arm once expired")
	}
}

func TestQuizScreen_QuitConfirm(t *testing.T) {
	s, _, events, _ := testQuizScreen(t)

	s.Update(specialKey(tea.KeyEscape))
	if !s.confirmQuit {
		t.Fatal("expected quit confirmation")
	}

	s.Update(keyPress('n'))
	if s.confirmQuit {
		t.Fatal("expected quit confirmation dismissed")
	}

	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Error("expected a pop command after quit confirmation")
	}
	actions := events.sessionActions()
	if len(actions) != 2 || actions[1] != "abandon" {
		t.Errorf("session actions = %v, want [start abandon]", actions)
	}
}

func TestQuizScreen_RestoreAppliesSavedAnswers(t *testing.T) {
	s, _, _, _ := testQuizScreen(t)

	s.Update(restoredMsg{Answers: map[int]int{0: 2, 1: 1}})

	if s.sess.Answered() != 2 {
		t.Fatalf("answered = %d, want 2", s.sess.Answered())
	}
	if s.options.Committed != 2 {
		t.Errorf("committed marker = %d, want 2", s.options.Committed)
	}
}

func TestQuizScreen_View(t *testing.T) {
	s, _, _, _ := testQuizScreen(t)
	if s.View(80, 24) == "" {
		t.Error("expected non-empty question view")
	}

	s.confirmSubmit = true
	if s.View(80, 24) == "" {
		t.Error("expected non-empty confirm view")
	}
}
