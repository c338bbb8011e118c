package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mastermind/internal/ui/layout"
)

// Screen is one page of the terminal front-end. The router owns a stack of
// them and only the top one receives messages.
type Screen interface {
	// Init returns the command to run when the screen becomes active.
	Init() tea.Cmd

	// Update handles a message and returns the (possibly new) screen.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area between header and footer.
	View(width, height int) string

	// Title names the screen in the header.
	Title() string
}

// KeyHintProvider is implemented by screens that want their own footer
// hints instead of the defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is implemented by screens that show game status on the
// right side of the header.
type StatusProvider interface {
	Status() layout.Status
}

// Resumer is implemented by screens that need to restart work when they
// become active again after the screen above them is popped.
type Resumer interface {
	Resume() tea.Cmd
}
