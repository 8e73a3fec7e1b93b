package components

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/campusterm/campus/internal/ui/theme"
)

// TimerBar displays the remaining time of a timed session as a shrinking
// bar with a mm:ss readout. The bar turns amber below a quarter left and
// red below a tenth.
type TimerBar struct {
	Remaining time.Duration
	Total     time.Duration
	Width     int
}

// NewTimerBar creates a timer bar.
func NewTimerBar(remaining, total time.Duration, width int) TimerBar {
	return TimerBar{
		Remaining: remaining,
		Total:     total,
		Width:     width,
	}
}

// View renders the timer bar.
func (t TimerBar) View() string {
	frac := 0.0
	if t.Total > 0 {
		frac = float64(t.Remaining) / float64(t.Total)
	}
	if frac > 1 {
		frac = 1
	}
	if frac < 0 {
		frac = 0
	}

	secs := int(t.Remaining / time.Second)
	if secs < 0 {
		secs = 0
	}
	readout := fmt.Sprintf(" %02d:%02d", secs/60, secs%60)

	barWidth := t.Width - lipgloss.Width(readout)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * frac)
	if filled > barWidth {
		filled = barWidth
	}
	empty := barWidth - filled

	fill := theme.Secondary
	switch {
	case frac < 0.1:
		fill = theme.Error
	case frac < 0.25:
		fill = theme.Accent
	}

	filledStr := lipgloss.NewStyle().
		Background(fill).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	readoutStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if frac < 0.1 {
		readoutStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}

	return filledStr + emptyStr + readoutStyle.Render(readout)
}
