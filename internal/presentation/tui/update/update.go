// Package update holds UI update logic for the TUI.
package update

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/availnot/internal/application/usecase"
	"github.com/tesso57/availnot/internal/domain/account"
	"github.com/tesso57/availnot/internal/domain/page"
	"github.com/tesso57/availnot/internal/infrastructure/identity"
	"github.com/tesso57/availnot/internal/presentation/tui/controller"
	"github.com/tesso57/availnot/internal/presentation/tui/intent"
	"github.com/tesso57/availnot/internal/presentation/tui/nav"
)

// Workspace is the application service behind the UI.
type Workspace interface {
	Restore(ctx context.Context) (*account.Session, error)
	StartSignIn(ctx context.Context) (*identity.DeviceCode, error)
	CompleteSignIn(ctx context.Context, code *identity.DeviceCode) (*account.Session, error)
	SignOut() error
	Load(ctx context.Context, view page.View) usecase.Result
}

// Deps groups external dependencies for updates.
type Deps struct {
	Workspace   Workspace
	Controller  *controller.Controller
	OpenBrowser func(string) error
}

// IntentMsg is emitted when a rendered action is activated.
type IntentMsg struct {
	Type intent.Type
}

// SessionRestoredMsg is emitted after looking up the cached session.
type SessionRestoredMsg struct {
	Session *account.Session
	Err     error
}

// DeviceCodeMsg is emitted once a device code was issued.
type DeviceCodeMsg struct {
	Code *identity.DeviceCode
	Err  error
}

// SignedInMsg is emitted when a pending sign-in completes. Code identifies
// the attempt.
type SignedInMsg struct {
	Code    *identity.DeviceCode
	Session *account.Session
	Err     error
}

// SignedOutMsg is emitted after the cached session was removed.
type SignedOutMsg struct {
	Err error
}

// LoadedMsg carries the data of a view.
type LoadedMsg struct {
	Result usecase.Result
}

// Emit returns a command producing an IntentMsg of type t.
func Emit(t intent.Type) tea.Cmd {
	return func() tea.Msg {
		return IntentMsg{Type: t}
	}
}

// Callbacks binds the rendered navigation actions to intents.
func Callbacks() nav.Callbacks {
	return nav.Callbacks{
		SignIn:       Emit(intent.SignIn),
		SignOut:      Emit(intent.SignOut),
		ShowCalendar: Emit(intent.ShowCalendar),
		ShowPresence: Emit(intent.ShowPresence),
	}
}

// RestoreCmd looks up the session left by a previous run.
func RestoreCmd(ws Workspace) tea.Cmd {
	return func() tea.Msg {
		session, err := ws.Restore(context.Background())
		return SessionRestoredMsg{Session: session, Err: err}
	}
}

// StartSignInCmd requests a device code.
func StartSignInCmd(ws Workspace) tea.Cmd {
	return func() tea.Msg {
		code, err := ws.StartSignIn(context.Background())
		return DeviceCodeMsg{Code: code, Err: err}
	}
}

// CompleteSignInCmd waits for the user to approve code.
func CompleteSignInCmd(ctx context.Context, ws Workspace, code *identity.DeviceCode) tea.Cmd {
	return func() tea.Msg {
		session, err := ws.CompleteSignIn(ctx, code)
		return SignedInMsg{Code: code, Session: session, Err: err}
	}
}

// SignOutCmd forgets the cached session.
func SignOutCmd(ws Workspace) tea.Cmd {
	return func() tea.Msg {
		return SignedOutMsg{Err: ws.SignOut()}
	}
}

// LoadCmd fetches the payload of view.
func LoadCmd(ws Workspace, view page.View) tea.Cmd {
	return func() tea.Msg {
		return LoadedMsg{Result: ws.Load(context.Background(), view)}
	}
}
