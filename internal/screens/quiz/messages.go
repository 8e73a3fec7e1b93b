package quiz

import "time"

// timerTickMsg is sent every second to update the countdown.
type timerTickMsg time.Time

// restoredMsg is sent when previously committed answers have been loaded.
type restoredMsg struct {
	Answers map[int]int
	Err     error
}

// submitResultMsg is sent when the submission attempt resolves.
type submitResultMsg struct {
	AttemptID string
	Err       error
}
