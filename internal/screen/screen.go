package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Max-Nicolai/MindPath/internal/ui/layout"
)

// Screen defines the interface for all application pages.
type Screen interface {
	// Init returns an initial command when the screen becomes active.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the page name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is an optional interface for screens that show a
// status fragment (e.g. question progress) on the header's right side.
type StatusProvider interface {
	Status() string
}
