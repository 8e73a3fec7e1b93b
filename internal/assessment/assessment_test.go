package assessment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusterm/campus/internal/clock"
)

func threeQuestions() []Question {
	return []Question{
		{Text: "Q1", Options: []string{"a", "b", "c"}},
		{Text: "Q2", Options: []string{"a", "b"}},
		{Text: "Q3", Options: []string{"a", "b", "c", "d"}},
	}
}

func newTestSession(t *testing.T, limit time.Duration) (*Session, *clock.Fake) {
	t.Helper()
	clk := clock.NewFake(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	s, err := New("sess-1", threeQuestions(), limit, clk)
	require.NoError(t, err)
	return s, clk
}

func TestNew_InvalidConfig(t *testing.T) {
	clk := clock.NewFake(time.Now())

	tests := []struct {
		name  string
		qs    []Question
		limit time.Duration
	}{
		{"no questions", nil, time.Minute},
		{"zero limit", threeQuestions(), 0},
		{"negative limit", threeQuestions(), -time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("s", tt.qs, tt.limit, clk)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestSelectAnswer(t *testing.T) {
	s, _ := newTestSession(t, time.Minute)

	require.NoError(t, s.SelectAnswer(1))
	opt, ok := s.Answer(0)
	require.True(t, ok)
	assert.Equal(t, 1, opt)

	// Overwrite for the same index is allowed.
	require.NoError(t, s.SelectAnswer(2))
	opt, _ = s.Answer(0)
	assert.Equal(t, 2, opt)

	// Out-of-range option is rejected without a state change.
	err := s.SelectAnswer(3)
	assert.ErrorIs(t, err, ErrInvalidInput)
	opt, _ = s.Answer(0)
	assert.Equal(t, 2, opt)
}

func TestSelectAnswer_WhileExpired(t *testing.T) {
	s, clk := newTestSession(t, time.Second)
	clk.Advance(2 * time.Second)
	require.True(t, s.Tick())
	require.Equal(t, StatusExpired, s.Status())

	// Expired-not-yet-submitting still accepts answers.
	assert.NoError(t, s.SelectAnswer(0))

	_, ok := s.BeginFinalize()
	require.True(t, ok)
	assert.ErrorIs(t, s.SelectAnswer(0), ErrInvalidInput)
}

func TestNavigation_PreservesAnswers(t *testing.T) {
	s, _ := newTestSession(t, time.Minute)

	require.NoError(t, s.SelectAnswer(1))
	require.False(t, s.Next())
	require.NoError(t, s.SelectAnswer(0))
	require.False(t, s.Next())
	s.Prev()
	s.Prev()
	assert.Equal(t, 0, s.Current())

	opt, ok := s.Answer(0)
	require.True(t, ok)
	assert.Equal(t, 1, opt)
	opt, ok = s.Answer(1)
	require.True(t, ok)
	assert.Equal(t, 0, opt)

	// Prev clamps at the first question.
	s.Prev()
	assert.Equal(t, 0, s.Current())
}

func TestNext_OnLastQuestionSignalsFinish(t *testing.T) {
	s, _ := newTestSession(t, time.Minute)
	require.False(t, s.Next())
	require.False(t, s.Next())
	assert.Equal(t, 2, s.Current())

	assert.True(t, s.Next())
	assert.Equal(t, 2, s.Current(), "cursor must not move past the last question")
}

func TestTick_ExpiresExactlyOnce(t *testing.T) {
	s, clk := newTestSession(t, 3*time.Second)

	clk.Advance(time.Second)
	assert.False(t, s.Tick())
	clk.Advance(time.Second)
	assert.False(t, s.Tick())
	clk.Advance(time.Second)
	assert.True(t, s.Tick())
	assert.Equal(t, StatusExpired, s.Status())

	// Further ticks never re-fire expiry.
	clk.Advance(time.Second)
	assert.False(t, s.Tick())
}

func TestFinalizeLatch_SingleWinner(t *testing.T) {
	s, clk := newTestSession(t, time.Second)
	require.NoError(t, s.SelectAnswer(1))

	// Tick drives expiry and the tick path claims the latch first.
	clk.Advance(time.Second)
	require.True(t, s.Tick())
	sub, ok := s.BeginFinalize()
	require.True(t, ok)
	require.NotNil(t, sub)

	// The racing user submission is a no-op.
	dup, ok := s.BeginFinalize()
	assert.False(t, ok)
	assert.Nil(t, dup)

	s.CompleteFinalize("attempt-9")
	assert.Equal(t, StatusSubmitted, s.Status())
	assert.Equal(t, "attempt-9", s.AttemptID())

	// Terminal: no further finalize.
	_, ok = s.BeginFinalize()
	assert.False(t, ok)
}

func TestFinalize_SnapshotIsolation(t *testing.T) {
	s, _ := newTestSession(t, time.Minute)
	require.NoError(t, s.SelectAnswer(1))

	sub, ok := s.BeginFinalize()
	require.True(t, ok)

	s.FailFinalize()
	require.Equal(t, StatusActive, s.Status())
	require.NoError(t, s.SelectAnswer(2))

	assert.Equal(t, map[int]int{0: 1}, sub.Answers, "snapshot must not observe later mutation")
}

func TestFailFinalize_RevertsByRemainingTime(t *testing.T) {
	t.Run("time remains", func(t *testing.T) {
		s, _ := newTestSession(t, time.Minute)
		_, ok := s.BeginFinalize()
		require.True(t, ok)
		s.FailFinalize()
		assert.Equal(t, StatusActive, s.Status())

		// Retry is accepted, answers intact.
		_, ok = s.BeginFinalize()
		assert.True(t, ok)
	})

	t.Run("deadline passed", func(t *testing.T) {
		s, clk := newTestSession(t, time.Second)
		require.NoError(t, s.SelectAnswer(0))
		clk.Advance(2 * time.Second)
		require.True(t, s.Tick())
		_, ok := s.BeginFinalize()
		require.True(t, ok)
		s.FailFinalize()
		assert.Equal(t, StatusExpired, s.Status())

		sub, ok := s.BeginFinalize()
		require.True(t, ok)
		assert.Equal(t, map[int]int{0: 0}, sub.Answers)
	})
}

func TestAutoFinalize_EmptyAnswers(t *testing.T) {
	s, clk := newTestSession(t, time.Second)
	clk.Advance(time.Second)
	require.True(t, s.Tick())

	sub, ok := s.BeginFinalize()
	require.True(t, ok)
	assert.Equal(t, "sess-1", sub.SessionID)
	assert.Empty(t, sub.Answers)
}

func TestRemaining(t *testing.T) {
	s, clk := newTestSession(t, time.Minute)
	assert.Equal(t, time.Minute, s.Remaining())
	clk.Advance(40 * time.Second)
	assert.Equal(t, 20*time.Second, s.Remaining())
	clk.Advance(time.Hour)
	assert.Equal(t, time.Duration(0), s.Remaining())
}

func TestRestore(t *testing.T) {
	t.Run("valid state", func(t *testing.T) {
		s, _ := newTestSession(t, time.Minute)
		require.NoError(t, s.Restore(map[int]int{0: 2, 2: 3}, 2))
		assert.Equal(t, 2, s.Current())
		assert.Equal(t, 2, s.Answered())
	})

	t.Run("stale entries dropped, valid kept", func(t *testing.T) {
		s, _ := newTestSession(t, time.Minute)
		err := s.Restore(map[int]int{0: 1, 5: 0, 1: 9}, 0)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Equal(t, 1, s.Answered())
		opt, ok := s.Answer(0)
		require.True(t, ok)
		assert.Equal(t, 1, opt)
	})

	t.Run("cursor out of range", func(t *testing.T) {
		s, _ := newTestSession(t, time.Minute)
		err := s.Restore(nil, 7)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Equal(t, 0, s.Current())
	})
}
