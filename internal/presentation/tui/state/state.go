// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/tesso57/availnot/internal/application/settings"
)

// Screen represents what currently owns the keyboard.
type Screen int

const (
	PageScreen Screen = iota
	SignInScreen
)

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Home     key.Binding
	Calendar key.Binding
	Presence key.Binding
	SignIn   key.Binding
	SignOut  key.Binding
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Refresh  key.Binding
	Browser  key.Binding
	Back     key.Binding
	Quit     key.Binding
	Help     key.Binding
}

// ShortHelp returns a subset of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit, k.Calendar, k.Presence, k.Activate}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.Calendar, k.Presence, k.Refresh},
		{k.Next, k.Prev, k.Activate},
		{k.SignIn, k.SignOut, k.Browser, k.Back},
		{k.Help, k.Quit},
	}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Home: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Home)...),
			key.WithHelp(cfg.Home, "home"),
		),
		Calendar: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Calendar)...),
			key.WithHelp(cfg.Calendar, "calendar"),
		),
		Presence: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Presence)...),
			key.WithHelp(cfg.Presence, "presence"),
		),
		SignIn: key.NewBinding(
			key.WithKeys(splitKeys(cfg.SignIn)...),
			key.WithHelp(cfg.SignIn, "sign in"),
		),
		SignOut: key.NewBinding(
			key.WithKeys(splitKeys(cfg.SignOut)...),
			key.WithHelp(cfg.SignOut, "sign out"),
		),
		Next: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Next)...),
			key.WithHelp(cfg.Next, "next action"),
		),
		Prev: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Prev)...),
			key.WithHelp(cfg.Prev, "previous action"),
		),
		Activate: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Activate)...),
			key.WithHelp(cfg.Activate, "activate"),
		),
		Refresh: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Refresh)...),
			key.WithHelp(cfg.Refresh, "refresh"),
		),
		Browser: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Browser)...),
			key.WithHelp(cfg.Browser, "open sign-in page"),
		),
		Back: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Back)...),
			key.WithHelp(cfg.Back, "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys(splitKeys(cfg.Quit)...),
			key.WithHelp(cfg.Quit, "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			continue
		}
		out = append(out, keyName)
		switch keyName {
		case "shift+tab":
			out = append(out, "backtab")
		case "backtab":
			out = append(out, "shift+tab")
		}
	}
	return out
}
