package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/campusterm/campus/internal/ui/layout"
)

// Screen is implemented by every campus screen. Screens own their view
// state and the domain objects they were constructed with (a session, a
// tracker); anything durable goes through the store repos instead.
type Screen interface {
	// Init returns the screen's first command, such as arming a tick or
	// kicking off a fetch.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
