package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/campusterm/campus/internal/ui/theme"
)

// OptionList is a selector over the answer options of a single question.
// The committed index marks the option already recorded for the question,
// which may differ from the cursor while the user browses.
type OptionList struct {
	Options   []string
	Cursor    int
	Committed int
	Locked    bool

	// Touched reports whether the user has moved the cursor since the
	// list was built. An untouched cursor is not a selection.
	Touched bool
}

// NewOptionList creates an option list with the cursor on the committed
// option, or the first option when nothing is committed yet.
func NewOptionList(options []string, committed int) OptionList {
	cursor := 0
	if committed >= 0 && committed < len(options) {
		cursor = committed
	}
	return OptionList{
		Options:   options,
		Cursor:    cursor,
		Committed: committed,
	}
}

// Init returns nil.
func (o OptionList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Number keys jump the cursor
// directly to an option.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Locked {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if o.Cursor > 0 {
			o.Cursor--
		}
		o.Touched = true
	case "down", "j":
		if o.Cursor < len(o.Options)-1 {
			o.Cursor++
		}
		o.Touched = true
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			idx := int(key[0] - '1')
			if idx < len(o.Options) {
				o.Cursor = idx
				o.Touched = true
			}
		}
	}

	return o, nil
}

// View renders the option list.
func (o OptionList) View() string {
	var s string
	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Cursor && !o.Locked {
			prefix = "> "
		}

		marker := " "
		if i == o.Committed {
			marker = "*"
		}

		line := fmt.Sprintf("%s%d) %s %s", prefix, i+1, marker, opt)

		switch {
		case o.Locked:
			if i == o.Committed {
				s += lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(line) + "\n"
			} else {
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		case i == o.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case i == o.Committed:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
