// Package intent parses user input into UI intents.
package intent

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/availnot/internal/presentation/tui/state"
)

// Type represents a user intent.
type Type int

const (
	None Type = iota
	Quit
	ToggleHelp
	ShowHome
	ShowCalendar
	ShowPresence
	SignIn
	SignOut
	FocusNext
	FocusPrev
	Activate
	Refresh
	OpenBrowser
	Back
)

// Intent represents a parsed user intent.
type Intent struct {
	Type Type
}

// FromKeyMsg maps a key message to an intent.
func FromKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	switch {
	case key.Matches(msg, keys.Quit) || msg.Type == tea.KeyCtrlC:
		return Intent{Type: Quit}
	case key.Matches(msg, keys.Help):
		return Intent{Type: ToggleHelp}
	case key.Matches(msg, keys.Home):
		return Intent{Type: ShowHome}
	case key.Matches(msg, keys.Calendar):
		return Intent{Type: ShowCalendar}
	case key.Matches(msg, keys.Presence):
		return Intent{Type: ShowPresence}
	case key.Matches(msg, keys.SignIn):
		return Intent{Type: SignIn}
	case key.Matches(msg, keys.SignOut):
		return Intent{Type: SignOut}
	case key.Matches(msg, keys.Prev):
		return Intent{Type: FocusPrev}
	case key.Matches(msg, keys.Next):
		return Intent{Type: FocusNext}
	case key.Matches(msg, keys.Activate):
		return Intent{Type: Activate}
	case key.Matches(msg, keys.Refresh):
		return Intent{Type: Refresh}
	case key.Matches(msg, keys.Browser):
		return Intent{Type: OpenBrowser}
	case key.Matches(msg, keys.Back):
		return Intent{Type: Back}
	default:
		return Intent{Type: None}
	}
}
