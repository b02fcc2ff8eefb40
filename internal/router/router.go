package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/Max-Nicolai/MindPath/internal/screen"
)

// SwitchScreenMsg requests the router to replace the active page.
// The assessment flow is linear (landing, quiz, loading, results,
// feedback, back to landing), so the router holds exactly one active
// screen instead of a navigation stack.
type SwitchScreenMsg struct {
	Screen screen.Screen
}

// Router holds the active page and forwards messages to it.
type Router struct {
	active screen.Screen
}

// New creates a Router showing the given initial screen.
func New(initial screen.Screen) *Router {
	return &Router{active: initial}
}

// Active returns the current screen.
func (r *Router) Active() screen.Screen {
	return r.active
}

// Switch replaces the active screen and calls its Init().
func (r *Router) Switch(s screen.Screen) tea.Cmd {
	if s == nil {
		return nil
	}
	r.active = s
	return s.Init()
}

// Update forwards a message to the active screen and handles
// navigation messages.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	if sw, ok := msg.(SwitchScreenMsg); ok {
		return r.Switch(sw.Screen)
	}

	if r.active == nil {
		return nil
	}
	updated, cmd := r.active.Update(msg)
	r.active = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if r.active == nil {
		return ""
	}
	return r.active.View(width, height)
}
