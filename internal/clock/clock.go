// Package clock provides the time source shared by the assessment session
// and the engagement tracker. Both measure durations against a deadline, so
// they read time through this seam instead of calling time.Now directly,
// letting tests drive timeout races deterministically.
package clock

import "time"

// Clock supplies the current instant. Go's time.Time carries a monotonic
// reading when obtained from time.Now, so durations computed between two
// Now() results are immune to wall-clock adjustment.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns the real clock.
func System() Clock {
	return systemClock{}
}

// Fake is a manually advanced clock for tests.
type Fake struct {
	now time.Time
}

// NewFake creates a fake clock starting at t.
func NewFake(t time.Time) *Fake {
	return &Fake{now: t}
}

func (f *Fake) Now() time.Time { return f.now }

// Advance moves the fake clock forward by d.
func (f *Fake) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

// Set jumps the fake clock to t.
func (f *Fake) Set(t time.Time) {
	f.now = t
}
