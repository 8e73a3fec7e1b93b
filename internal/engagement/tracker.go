// Package engagement accumulates active watch time for a learning unit
// across pause/resume boundaries. The tracker knows nothing about
// completion; the caller pauses it and reads the total exactly once when
// the unit is reported complete.
package engagement

import (
	"time"

	"github.com/campusterm/campus/internal/clock"
)

// Tracker counts time only while resumed. The total is monotonically
// non-decreasing for the life of the tracker.
type Tracker struct {
	accumulated time.Duration
	resumeAt    time.Time
	resumed     bool
	clk         clock.Clock
}

// NewTracker creates a paused tracker.
func NewTracker(clk clock.Clock) *Tracker {
	return &Tracker{clk: clk}
}

// Resume starts counting. Idempotent: resuming while resumed is a no-op.
func (t *Tracker) Resume() {
	if t.resumed {
		return
	}
	t.resumed = true
	t.resumeAt = t.clk.Now()
}

// Pause stops counting and folds the open interval into the total.
// Idempotent: pausing while paused is a no-op.
func (t *Tracker) Pause() {
	if !t.resumed {
		return
	}
	t.accumulated += t.clk.Now().Sub(t.resumeAt)
	t.resumed = false
}

// Resumed reports whether the tracker is currently counting.
func (t *Tracker) Resumed() bool { return t.resumed }

// WatchTime returns the total active duration, including the open interval
// when resumed. Pure read; callable in any state.
func (t *Tracker) WatchTime() time.Duration {
	total := t.accumulated
	if t.resumed {
		total += t.clk.Now().Sub(t.resumeAt)
	}
	return total
}

// WatchTimeMinutes returns the total floored to whole minutes, the unit
// the completion endpoint expects.
func (t *Tracker) WatchTimeMinutes() int {
	return int(t.WatchTime() / time.Minute)
}

// Freeze stops accumulation on teardown without discarding it; the total
// stays readable so partial progress can still be reported.
func (t *Tracker) Freeze() {
	t.Pause()
}
