package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/tesso57/availnot/internal/domain/account"
	"github.com/tesso57/availnot/internal/domain/page"
	"github.com/tesso57/availnot/internal/infrastructure/identity"
)

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	Screen  Screen
	Help    help.Model
	Spinner spinner.Model
	Keys    KeyMap
	Width   int
	Height  int

	Loading     bool
	LoadingText string

	// Session is nil while signed out.
	Session *account.Session
	// View is the view last rendered by the controller.
	View page.View
	// Data is the payload View was rendered with.
	Data any
	// Focus indexes the focused action across the page regions.
	Focus int

	DeviceCode    *identity.DeviceCode
	CancelSignIn  func()
	StatusMessage string
}
