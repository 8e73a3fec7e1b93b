package engagement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/campusterm/campus/internal/clock"
)

func TestTracker_AccumulatesOnlyWhileResumed(t *testing.T) {
	clk := clock.NewFake(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))
	tr := NewTracker(clk)

	// Paused: nothing accumulates.
	clk.Advance(time.Minute)
	assert.Equal(t, time.Duration(0), tr.WatchTime())

	tr.Resume()
	clk.Advance(90 * time.Second)
	tr.Pause()
	assert.Equal(t, 90*time.Second, tr.WatchTime())

	// Gap while paused is not counted.
	clk.Advance(10 * time.Minute)
	assert.Equal(t, 90*time.Second, tr.WatchTime())

	tr.Resume()
	clk.Advance(30 * time.Second)
	assert.Equal(t, 2*time.Minute, tr.WatchTime())
}

func TestTracker_PauseIdempotent(t *testing.T) {
	clk := clock.NewFake(time.Now())
	tr := NewTracker(clk)

	tr.Resume()
	clk.Advance(time.Minute)
	tr.Pause()
	got := tr.WatchTimeMinutes()
	tr.Pause()
	assert.Equal(t, got, tr.WatchTimeMinutes())
}

func TestTracker_ResumeIdempotent(t *testing.T) {
	clk := clock.NewFake(time.Now())
	tr := NewTracker(clk)

	tr.Resume()
	clk.Advance(time.Minute)
	tr.Resume() // must not reset the open interval
	clk.Advance(time.Minute)
	tr.Pause()
	assert.Equal(t, 2*time.Minute, tr.WatchTime())
}

func TestTracker_Monotonic(t *testing.T) {
	clk := clock.NewFake(time.Now())
	tr := NewTracker(clk)

	var prev time.Duration
	steps := []func(){
		tr.Resume,
		func() { clk.Advance(20 * time.Second) },
		tr.Pause,
		tr.Resume,
		tr.Resume,
		func() { clk.Advance(45 * time.Second) },
		tr.Pause,
		tr.Pause,
		func() { clk.Advance(5 * time.Minute) },
		tr.Resume,
		func() { clk.Advance(time.Second) },
	}
	for _, step := range steps {
		step()
		got := tr.WatchTime()
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}

func TestTracker_MinutesFloor(t *testing.T) {
	clk := clock.NewFake(time.Now())
	tr := NewTracker(clk)

	tr.Resume()
	clk.Advance(179 * time.Second)
	tr.Pause()
	assert.Equal(t, 2, tr.WatchTimeMinutes())
}

func TestTracker_FreezeKeepsTotalReadable(t *testing.T) {
	clk := clock.NewFake(time.Now())
	tr := NewTracker(clk)

	tr.Resume()
	clk.Advance(3 * time.Minute)
	tr.Freeze()

	assert.False(t, tr.Resumed())
	clk.Advance(time.Hour)
	assert.Equal(t, 3, tr.WatchTimeMinutes())
}
