// Package screen declares the contract every view in the application
// satisfies. The router owns a stack of these.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/amahdy/quizdrill/internal/ui/layout"
)

// Screen is one view on the navigation stack.
type Screen interface {
	// Init fires when the screen is pushed.
	Init() tea.Cmd

	// Update handles a message and returns the screen to keep on the
	// stack, usually the receiver.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content region; the frame adds header and
	// footer around it.
	View(width, height int) string

	// Title labels the screen in the header bar.
	Title() string
}

// KeyHintProvider lets a screen put its own key bindings in the
// footer. Screens without it get stack-depth defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Refresher marks a screen that wants to reload its data when a pop
// makes it active again, e.g. after a test session commits below it.
type Refresher interface {
	Refresh() tea.Cmd
}
