package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/tesso57/availnot/internal/application/settings"
	"github.com/tesso57/availnot/internal/application/usecase"
	"github.com/tesso57/availnot/internal/infrastructure/config"
	"github.com/tesso57/availnot/internal/infrastructure/graph"
	"github.com/tesso57/availnot/internal/infrastructure/ics"
	"github.com/tesso57/availnot/internal/infrastructure/identity"
	"github.com/tesso57/availnot/internal/infrastructure/sessioncache"
	"github.com/tesso57/availnot/internal/infrastructure/telemetry"
)

// app holds the wired services shared by every command.
type app struct {
	settings  settings.Settings
	location  *time.Location
	workspace *usecase.WorkspaceService
	closers   []io.Closer
}

func newApp(configPath string, debug bool) (*app, error) {
	store, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := store.Settings

	logCloser, err := telemetry.InitLogger(debug, cfg.LogFile)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	a := &app{settings: cfg, closers: []io.Closer{logCloser}}

	a.location, err = cfg.Location()
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	sessions, err := sessioncache.Open(cfg.SessionFile)
	if err != nil {
		_ = a.Close()
		return nil, fmt.Errorf("open session cache: %w", err)
	}
	a.closers = append(a.closers, sessions)

	a.workspace, err = newWorkspace(cfg, sessions)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	telemetry.LogDebug("app ready", "config", store.Path(), "calendar", cfg.Calendar.Source)
	return a, nil
}

func newWorkspace(cfg settings.Settings, sessions *sessioncache.Store) (*usecase.WorkspaceService, error) {
	key := sessioncache.Key(cfg.Identity.Tenant, cfg.Identity.ClientID)
	httpClient := &http.Client{Timeout: cfg.Graph.Timeout()}

	var id usecase.Identity
	client, err := identity.New(identity.Config{
		ClientID:   cfg.Identity.ClientID,
		Tenant:     cfg.Identity.Tenant,
		Scopes:     cfg.Identity.Scopes,
		HTTPClient: httpClient,
	}, sessions, key)
	switch {
	case errors.Is(err, identity.ErrNotConfigured):
		slog.Warn("identity.client_id is not set; sign in is disabled")
	case err != nil:
		return nil, fmt.Errorf("configure identity: %w", err)
	default:
		id = client
	}

	newGraph := func(c *http.Client) usecase.GraphAPI {
		return graph.New(c,
			graph.WithBaseURL(cfg.Graph.BaseURL),
			graph.WithEventLimit(cfg.Graph.EventLimit),
		)
	}

	opts := []usecase.WorkspaceOption{usecase.WithLoadTimeout(cfg.Graph.Timeout())}
	if cfg.Calendar.UsesICS() {
		opts = append(opts, usecase.WithCalendarSource(ics.New(httpClient, cfg.Calendar.ICSURL, cfg.Graph.EventLimit)))
	}
	return usecase.NewWorkspaceService(id, sessions, key, newGraph, opts...), nil
}

// Close releases the session cache and the log file.
func (a *app) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
