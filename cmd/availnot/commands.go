package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/availnot/internal/domain/page"
	"github.com/tesso57/availnot/internal/domain/presence"
	"github.com/tesso57/availnot/internal/presentation/htmlexport"
	"github.com/tesso57/availnot/internal/presentation/tui"
	"github.com/tesso57/availnot/internal/presentation/tui/controller"
	"github.com/tesso57/availnot/internal/presentation/tui/render"
	"github.com/tesso57/availnot/internal/presentation/tui/update"
)

var errNotSignedIn = errors.New("not signed in: run availnot and sign in first")

// UICmd runs the terminal UI.
type UICmd struct{}

// Run starts the bubbletea program.
func (c *UICmd) Run(_ context.Context, a *app) error {
	p := tea.NewProgram(tui.NewModel(a.settings, a.workspace), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// PresenceCmd prints the current presence.
type PresenceCmd struct {
	JSON bool `help:"Print JSON instead of text"`
}

// Run loads the presence of the cached session.
func (c *PresenceCmd) Run(ctx context.Context, a *app) error {
	return printPresence(ctx, os.Stdout, a.workspace, c.JSON)
}

// SnapshotCmd writes a page as HTML.
type SnapshotCmd struct {
	View   string `help:"View to render" enum:"home,calendar,presence" default:"home"`
	Output string `short:"o" help:"Output file (default stdout)" type:"path"`
}

// Run renders the requested view for the cached session.
func (c *SnapshotCmd) Run(ctx context.Context, a *app) (err error) {
	view, err := page.ParseView(c.View)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if c.Output != "" {
		f, ferr := os.Create(c.Output)
		if ferr != nil {
			return fmt.Errorf("create snapshot: %w", ferr)
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}
	ctrl := controller.New(controller.NewRegions(), update.Callbacks(), a.location)
	return snapshot(ctx, w, a.workspace, ctrl, view)
}

// SignOutCmd removes the cached session.
type SignOutCmd struct{}

// Run signs out.
func (c *SignOutCmd) Run(_ context.Context, a *app) error {
	if err := a.workspace.SignOut(); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, "Signed out")
	return nil
}

func printPresence(ctx context.Context, w io.Writer, ws update.Workspace, asJSON bool) error {
	session, err := ws.Restore(ctx)
	if err != nil {
		return err
	}
	if session == nil {
		return errNotSignedIn
	}

	result := ws.Load(ctx, page.Presence)
	status, ok := result.Data.(presence.Status)
	if !ok {
		return resultError(result.Data)
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			presence.Status
			Color presence.Color `json:"color"`
		}{status, status.Color()})
	}
	_, err = fmt.Fprintf(w, "Availability: %s\nActivity:     %s\nColor:        %s\n",
		status.Availability, status.Activity, status.Color())
	return err
}

func snapshot(ctx context.Context, w io.Writer, ws update.Workspace, ctrl *controller.Controller, view page.View) error {
	session, err := ws.Restore(ctx)
	if err != nil {
		return err
	}

	var data any
	if session != nil && view != page.Home {
		result := ws.Load(ctx, view)
		view, data = result.View, result.Data
	}
	ctrl.Dispatch(session, view, data)
	return htmlexport.Write(w, render.Title, ctrl.Regions())
}

func resultError(data any) error {
	if info, ok := data.(page.ErrorInfo); ok {
		if info.Debug != nil {
			return fmt.Errorf("%s: %v", info.Message, info.Debug)
		}
		return errors.New(info.Message)
	}
	return fmt.Errorf("unexpected result %T", data)
}
