package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/tesso57/availnot/internal/domain/account"
	"github.com/tesso57/availnot/internal/domain/page"
	"github.com/tesso57/availnot/internal/domain/presence"
	"github.com/tesso57/availnot/internal/domain/schedule"
	"github.com/tesso57/availnot/internal/infrastructure/identity"
)

// User-facing messages of failed loads.
const (
	MsgSignInFailed    = "Error logging in"
	MsgEventsFailed    = "Error getting events"
	MsgPresenceFailed  = "Error getting presence"
	MsgNotSignedIn     = "You are not signed in"
	defaultLoadTimeout = 30 * time.Second
)

// Identity signs the user in and authorizes API clients.
type Identity interface {
	StartSignIn(ctx context.Context) (*identity.DeviceCode, error)
	CompleteSignIn(ctx context.Context, code *identity.DeviceCode) error
	HTTPClient(ctx context.Context) (*http.Client, error)
	SignOut() error
}

// SessionStore caches the display attributes of the signed-in account.
type SessionStore interface {
	LoadSession(key string) (*account.Session, error)
	SaveSession(key string, session *account.Session) error
}

// GraphAPI is the subset of Microsoft Graph the app reads.
type GraphAPI interface {
	Me(ctx context.Context) (*account.Session, error)
	Events(ctx context.Context) (schedule.Page, error)
	Presence(ctx context.Context) (presence.Status, error)
}

// CalendarSource provides events instead of Graph.
type CalendarSource interface {
	Events(ctx context.Context) (schedule.Page, error)
}

// GraphFactory builds a Graph client over an authorized HTTP client.
type GraphFactory func(*http.Client) GraphAPI

// Result is the view to dispatch and its payload.
type Result struct {
	View page.View
	Data any
}

// WorkspaceService coordinates sign-in and the data behind each view.
type WorkspaceService struct {
	identity Identity
	sessions SessionStore
	key      string
	newGraph GraphFactory
	calendar CalendarSource
	timeout  time.Duration
}

// WorkspaceOption configures a WorkspaceService.
type WorkspaceOption func(*WorkspaceService)

// WithCalendarSource reads calendar events from src instead of Graph.
func WithCalendarSource(src CalendarSource) WorkspaceOption {
	return func(s *WorkspaceService) { s.calendar = src }
}

// WithLoadTimeout bounds each data load.
func WithLoadTimeout(d time.Duration) WorkspaceOption {
	return func(s *WorkspaceService) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// NewWorkspaceService constructs a WorkspaceService. key selects the
// session cache entry.
func NewWorkspaceService(id Identity, sessions SessionStore, key string, newGraph GraphFactory, opts ...WorkspaceOption) *WorkspaceService {
	s := &WorkspaceService{
		identity: id,
		sessions: sessions,
		key:      key,
		newGraph: newGraph,
		timeout:  defaultLoadTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restore returns the session left by a previous run, or nil when the user
// is signed out.
func (s *WorkspaceService) Restore(ctx context.Context) (*account.Session, error) {
	if s.identity == nil {
		return nil, nil
	}
	httpClient, err := s.identity.HTTPClient(ctx)
	if errors.Is(err, identity.ErrNoSession) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if cached, err := s.sessions.LoadSession(s.key); err == nil && account.SignedIn(cached) {
		return cached, nil
	}
	return s.profile(ctx, httpClient)
}

// StartSignIn begins a device code sign-in.
func (s *WorkspaceService) StartSignIn(ctx context.Context) (*identity.DeviceCode, error) {
	if s.identity == nil {
		return nil, identity.ErrNotConfigured
	}
	return s.identity.StartSignIn(ctx)
}

// CompleteSignIn waits for the user to approve code and returns the new
// session.
func (s *WorkspaceService) CompleteSignIn(ctx context.Context, code *identity.DeviceCode) (*account.Session, error) {
	if s.identity == nil {
		return nil, identity.ErrNotConfigured
	}
	if err := s.identity.CompleteSignIn(ctx, code); err != nil {
		return nil, err
	}
	httpClient, err := s.identity.HTTPClient(ctx)
	if err != nil {
		return nil, err
	}
	return s.profile(ctx, httpClient)
}

func (s *WorkspaceService) profile(ctx context.Context, httpClient *http.Client) (*account.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	session, err := s.newGraph(httpClient).Me(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.SaveSession(s.key, session); err != nil {
		slog.Warn("session cache write failed", "error", err)
	}
	slog.Info("signed in", "user", session.UserName)
	return session, nil
}

// SignOut forgets the cached token and session.
func (s *WorkspaceService) SignOut() error {
	if s.identity == nil {
		return nil
	}
	if err := s.identity.SignOut(); err != nil {
		return err
	}
	slog.Info("signed out")
	return nil
}

// Load fetches the payload of view. Views without data pass through.
func (s *WorkspaceService) Load(ctx context.Context, view page.View) Result {
	switch view {
	case page.Calendar:
		return s.Calendar(ctx)
	case page.Presence:
		return s.Presence(ctx)
	default:
		return Result{View: view}
	}
}

// Calendar loads the signed-in user's events.
func (s *WorkspaceService) Calendar(ctx context.Context) Result {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var (
		events schedule.Page
		err    error
	)
	if s.calendar != nil {
		events, err = s.calendar.Events(ctx)
	} else {
		var api GraphAPI
		api, err = s.graph(ctx)
		if err == nil {
			events, err = api.Events(ctx)
		}
	}
	if err != nil {
		return failure(MsgEventsFailed, err)
	}
	slog.Debug("events loaded", "count", events.Len())
	return Result{View: page.Calendar, Data: events}
}

// Presence loads the signed-in user's Teams presence.
func (s *WorkspaceService) Presence(ctx context.Context) Result {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	api, err := s.graph(ctx)
	if err != nil {
		return failure(MsgPresenceFailed, err)
	}
	status, err := api.Presence(ctx)
	if err != nil {
		return failure(MsgPresenceFailed, err)
	}
	slog.Debug("presence loaded", "availability", status.Availability)
	return Result{View: page.Presence, Data: status}
}

func (s *WorkspaceService) graph(ctx context.Context) (GraphAPI, error) {
	if s.identity == nil {
		return nil, identity.ErrNotConfigured
	}
	httpClient, err := s.identity.HTTPClient(ctx)
	if err != nil {
		return nil, err
	}
	return s.newGraph(httpClient), nil
}

func failure(message string, err error) Result {
	slog.Error(message, "error", err)
	if errors.Is(err, identity.ErrNoSession) {
		message = MsgNotSignedIn
	}
	return Result{View: page.Error, Data: page.ErrorFrom(message, err)}
}

// SignInError converts a failed sign-in into an error payload.
func SignInError(err error) page.ErrorInfo {
	return page.ErrorFrom(MsgSignInFailed, fmt.Errorf("sign in: %w", err))
}
