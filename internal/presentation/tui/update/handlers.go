package update

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/availnot/internal/application/usecase"
	"github.com/tesso57/availnot/internal/domain/page"
	"github.com/tesso57/availnot/internal/presentation/tui/intent"
	"github.com/tesso57/availnot/internal/presentation/tui/state"
)

// HandleKeyMsg routes a key press. It reports whether the key was consumed.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	parsed := intent.FromKeyMsg(msg, s.Keys)
	if parsed.Type == intent.None {
		return nil, false
	}
	if s.Screen == state.SignInScreen {
		return handleSignInScreenIntent(s, parsed, deps)
	}
	return HandleIntent(s, parsed.Type, deps), true
}

func handleSignInScreenIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.Quit, intent.ToggleHelp, intent.OpenBrowser:
		return HandleIntent(s, in.Type, deps), true
	case intent.Back:
		cancelSignIn(s)
		s.Screen = state.PageScreen
		s.DeviceCode = nil
		s.StatusMessage = "Sign in canceled"
		return nil, true
	default:
		return nil, true
	}
}

// HandleIntent applies an intent coming from the keyboard or from an
// activated action.
func HandleIntent(s *state.ModelState, t intent.Type, deps Deps) tea.Cmd {
	switch t {
	case intent.Quit:
		cancelSignIn(s)
		return tea.Quit
	case intent.ToggleHelp:
		s.Help.ShowAll = !s.Help.ShowAll
	case intent.ShowHome:
		Redraw(s, deps, page.Home, nil)
	case intent.ShowCalendar:
		return load(s, deps, page.Calendar)
	case intent.ShowPresence:
		return load(s, deps, page.Presence)
	case intent.Refresh:
		if s.View == page.Calendar || s.View == page.Presence {
			return load(s, deps, s.View)
		}
		Redraw(s, deps, s.View, s.Data)
	case intent.SignIn:
		return startSignIn(s, deps)
	case intent.SignOut:
		if s.Session == nil {
			return nil
		}
		s.Loading = true
		s.LoadingText = "Signing out..."
		return tea.Batch(s.Spinner.Tick, SignOutCmd(deps.Workspace))
	case intent.FocusNext:
		MoveFocus(s, deps, 1)
	case intent.FocusPrev:
		MoveFocus(s, deps, -1)
	case intent.Activate:
		if node := Focused(s, deps); node != nil {
			return node.OnActivate
		}
	case intent.OpenBrowser:
		openVerificationPage(s, deps)
	case intent.Back:
		s.Help.ShowAll = false
	}
	return nil
}

func load(s *state.ModelState, deps Deps, view page.View) tea.Cmd {
	if s.Session == nil {
		s.StatusMessage = "Sign in to see your " + view.String()
		Redraw(s, deps, view, nil)
		return nil
	}
	s.Loading = true
	s.LoadingText = fmt.Sprintf("Loading %s...", view)
	s.StatusMessage = ""
	return tea.Batch(s.Spinner.Tick, LoadCmd(deps.Workspace, view))
}

func startSignIn(s *state.ModelState, deps Deps) tea.Cmd {
	if s.Session != nil {
		s.StatusMessage = "Already signed in as " + s.Session.UserName
		return nil
	}
	if s.Screen == state.SignInScreen {
		return nil
	}
	s.Loading = true
	s.LoadingText = "Requesting sign-in code..."
	s.StatusMessage = ""
	return tea.Batch(s.Spinner.Tick, StartSignInCmd(deps.Workspace))
}

func cancelSignIn(s *state.ModelState) {
	if s.CancelSignIn != nil {
		s.CancelSignIn()
		s.CancelSignIn = nil
	}
}

func openVerificationPage(s *state.ModelState, deps Deps) {
	if s.DeviceCode == nil || deps.OpenBrowser == nil {
		return
	}
	if err := deps.OpenBrowser(s.DeviceCode.VerificationURI); err != nil {
		slog.Warn("open browser failed", "error", err)
		s.StatusMessage = fmt.Sprintf("Open %s in a browser", s.DeviceCode.VerificationURI)
	}
}

// HandleSessionRestoredMsg applies the session found at startup.
func HandleSessionRestoredMsg(s *state.ModelState, msg SessionRestoredMsg, deps Deps) {
	s.Loading = false
	if msg.Err != nil {
		slog.Error("session restore failed", "error", msg.Err)
		s.StatusMessage = fmt.Sprintf("Could not restore session: %v", msg.Err)
	}
	s.Session = msg.Session
	if s.Session != nil {
		s.StatusMessage = "Signed in as " + s.Session.UserName
	}
	Redraw(s, deps, page.Home, nil)
}

// HandleDeviceCodeMsg shows the device code and starts waiting for approval.
func HandleDeviceCodeMsg(s *state.ModelState, msg DeviceCodeMsg, deps Deps) tea.Cmd {
	s.Loading = false
	if msg.Err != nil {
		s.StatusMessage = fmt.Sprintf("Sign in failed: %v", msg.Err)
		Redraw(s, deps, page.Error, usecase.SignInError(msg.Err))
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.Screen = state.SignInScreen
	s.DeviceCode = msg.Code
	s.CancelSignIn = cancel
	return CompleteSignInCmd(ctx, deps.Workspace, msg.Code)
}

// HandleSignedInMsg finishes a sign-in attempt. Results of attempts other
// than the pending one are dropped.
func HandleSignedInMsg(s *state.ModelState, msg SignedInMsg, deps Deps) {
	if s.DeviceCode == nil || msg.Code != s.DeviceCode {
		slog.Debug("stale sign-in result ignored", "error", msg.Err)
		return
	}
	cancelSignIn(s)
	s.Screen = state.PageScreen
	s.DeviceCode = nil

	if msg.Err != nil {
		if errors.Is(msg.Err, context.Canceled) {
			s.StatusMessage = "Sign in canceled"
			return
		}
		s.StatusMessage = fmt.Sprintf("Sign in failed: %v", msg.Err)
		Redraw(s, deps, page.Error, usecase.SignInError(msg.Err))
		return
	}

	s.Session = msg.Session
	s.StatusMessage = "Signed in as " + s.Session.UserName
	Redraw(s, deps, page.Home, nil)
}

// HandleSignedOutMsg returns to the signed-out home view.
func HandleSignedOutMsg(s *state.ModelState, msg SignedOutMsg, deps Deps) {
	s.Loading = false
	if msg.Err != nil {
		s.StatusMessage = fmt.Sprintf("Sign out failed: %v", msg.Err)
		return
	}
	s.Session = nil
	s.StatusMessage = "Signed out"
	Redraw(s, deps, page.Home, nil)
}

// HandleLoadedMsg renders a loaded view.
func HandleLoadedMsg(s *state.ModelState, msg LoadedMsg, deps Deps) {
	s.Loading = false
	Redraw(s, deps, msg.Result.View, msg.Result.Data)
}

// HandleWindowSize records the terminal size.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) {
	s.Width = msg.Width
	s.Height = msg.Height
	s.Help.Width = msg.Width
}

// Redraw dispatches the page for the current session and keeps the focus
// within the rendered actions.
func Redraw(s *state.ModelState, deps Deps, view page.View, data any) {
	s.View = deps.Controller.Dispatch(s.Session, view, data)
	s.Data = data
	if s.Focus >= len(Actions(deps.Controller.Regions())) {
		s.Focus = 0
	}
}
