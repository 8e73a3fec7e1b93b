// Package assessment implements the timed quiz attempt: a state machine
// owning the question cursor, the per-question answer map, and the countdown
// deadline. It is pure domain logic; the quiz screen drives it from the
// event loop and the submission coordinator performs the network side.
package assessment

import (
	"errors"
	"fmt"
	"time"

	"github.com/campusterm/campus/internal/clock"
)

var (
	// ErrInvalidConfig indicates the session cannot start (no questions or
	// non-positive time limit). Fatal for the attempt.
	ErrInvalidConfig = errors.New("invalid session configuration")

	// ErrInvalidInput indicates a rejected answer or navigation input.
	// Recoverable: session state is unchanged.
	ErrInvalidInput = errors.New("invalid input")
)

// Status is the lifecycle state of a session.
type Status int

const (
	StatusActive     Status = iota // accepting answers, timer running
	StatusSubmitting               // finalize in flight
	StatusSubmitted                // terminal: remote attempt recorded
	StatusExpired                  // deadline passed, not yet submitting
)

func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusSubmitting:
		return "submitting"
	case StatusSubmitted:
		return "submitted"
	case StatusExpired:
		return "expired"
	}
	return "unknown"
}

// Question is one quiz question as served to the client. The correct answer
// never reaches the client; grading is server-side.
type Question struct {
	Text    string
	Options []string
}

// Submission is the read-only snapshot handed to the submission coordinator.
// The answers map is a copy: the session may be mutated after a failed
// submission, and the coordinator must not observe that.
type Submission struct {
	SessionID string
	Answers   map[int]int
}

// Session is one timed attempt at a quiz. Not safe for concurrent use; the
// event loop interleaves ticks and key events on one goroutine, and the
// status field doubles as the single-finalize latch at that boundary.
type Session struct {
	id        string
	questions []Question
	current   int
	answers   map[int]int
	deadline  time.Time
	status    Status
	attemptID string
	clk       clock.Clock
}

// New starts a session over qs with the given time limit.
func New(id string, qs []Question, limit time.Duration, clk clock.Clock) (*Session, error) {
	if len(qs) == 0 {
		return nil, fmt.Errorf("%w: no questions", ErrInvalidConfig)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: time limit %s", ErrInvalidConfig, limit)
	}
	return &Session{
		id:        id,
		questions: qs,
		answers:   make(map[int]int),
		deadline:  clk.Now().Add(limit),
		status:    StatusActive,
		clk:       clk,
	}, nil
}

// ID returns the server-issued session identifier.
func (s *Session) ID() string { return s.id }

// Status returns the current lifecycle state.
func (s *Session) Status() Status { return s.status }

// Len returns the number of questions.
func (s *Session) Len() int { return len(s.questions) }

// Current returns the index of the question on display.
func (s *Session) Current() int { return s.current }

// Question returns the question at the cursor.
func (s *Session) Question() Question { return s.questions[s.current] }

// Answer returns the recorded option for question index i, if any.
func (s *Session) Answer(i int) (int, bool) {
	opt, ok := s.answers[i]
	return opt, ok
}

// Answered returns how many questions have a recorded answer.
func (s *Session) Answered() int { return len(s.answers) }

// AttemptID returns the remote attempt identifier once Submitted.
func (s *Session) AttemptID() string { return s.attemptID }

// Remaining returns the time left before the deadline, floored at zero.
func (s *Session) Remaining() time.Duration {
	d := s.deadline.Sub(s.clk.Now())
	if d < 0 {
		return 0
	}
	return d
}

// SelectAnswer records option for the current question, overwriting any
// prior choice. Valid while Active or Expired (before finalization starts).
func (s *Session) SelectAnswer(option int) error {
	if s.status != StatusActive && s.status != StatusExpired {
		return fmt.Errorf("%w: session is %s", ErrInvalidInput, s.status)
	}
	if option < 0 || option >= len(s.questions[s.current].Options) {
		return fmt.Errorf("%w: option %d out of range", ErrInvalidInput, option)
	}
	s.answers[s.current] = option
	return nil
}

// Next advances the cursor. On the last question it does not move and
// returns true: the caller should finalize instead.
func (s *Session) Next() (finished bool) {
	if s.current >= len(s.questions)-1 {
		return true
	}
	s.current++
	return false
}

// Prev moves the cursor back, clamped at the first question.
func (s *Session) Prev() {
	if s.current > 0 {
		s.current--
	}
}

// Tick is invoked once per second by the scheduler. When the deadline has
// passed while Active it moves the session to Expired and returns true,
// exactly once; the caller then begins finalization.
func (s *Session) Tick() (expired bool) {
	if s.status != StatusActive {
		return false
	}
	if s.clk.Now().Before(s.deadline) {
		return false
	}
	s.status = StatusExpired
	return true
}

// BeginFinalize claims the finalize latch. The first caller — whether the
// tick handler on expiry or an explicit user submission — receives the
// answers snapshot and moves the session to Submitting; every later caller
// gets (nil, false) and must do nothing. This is the mutual exclusion the
// timer/user race depends on.
func (s *Session) BeginFinalize() (*Submission, bool) {
	if s.status != StatusActive && s.status != StatusExpired {
		return nil, false
	}
	s.status = StatusSubmitting

	answers := make(map[int]int, len(s.answers))
	for q, opt := range s.answers {
		answers[q] = opt
	}
	return &Submission{SessionID: s.id, Answers: answers}, true
}

// CompleteFinalize records the remote attempt id and moves to Submitted.
func (s *Session) CompleteFinalize(attemptID string) {
	if s.status != StatusSubmitting {
		return
	}
	s.attemptID = attemptID
	s.status = StatusSubmitted
}

// FailFinalize releases the latch after a failed submission. The session
// returns to Active when time remains, otherwise to Expired; answers are
// untouched, so a second finalize attempt submits the same state.
func (s *Session) FailFinalize() {
	if s.status != StatusSubmitting {
		return
	}
	if s.clk.Now().Before(s.deadline) {
		s.status = StatusActive
	} else {
		s.status = StatusExpired
	}
}

// Restore loads previously recorded answers and a cursor position, used
// when resuming an interrupted attempt. Entries whose question or option
// index does not fit the current question set are dropped and reported as
// ErrInvalidInput; valid entries are always kept.
func (s *Session) Restore(answers map[int]int, current int) error {
	var stale int
	for q, opt := range answers {
		if q < 0 || q >= len(s.questions) || opt < 0 || opt >= len(s.questions[q].Options) {
			stale++
			continue
		}
		s.answers[q] = opt
	}

	cursorOK := current >= 0 && current < len(s.questions)
	if cursorOK {
		s.current = current
	}

	if stale > 0 || !cursorOK {
		return fmt.Errorf("%w: %d stale answers, cursor %d", ErrInvalidInput, stale, current)
	}
	return nil
}
