// Package controller selects and renders the page for a given session,
// requested view and payload.
package controller

import (
	"fmt"
	"time"

	"github.com/tesso57/availnot/internal/domain/account"
	"github.com/tesso57/availnot/internal/domain/page"
	"github.com/tesso57/availnot/internal/domain/presence"
	"github.com/tesso57/availnot/internal/domain/schedule"
	"github.com/tesso57/availnot/internal/presentation/tui/nav"
	"github.com/tesso57/availnot/internal/presentation/tui/region"
	"github.com/tesso57/availnot/internal/presentation/tui/render"
)

// Regions are the render targets the controller writes to.
type Regions struct {
	Main             *region.Region
	AccountNav       *region.Region
	AuthenticatedNav *region.Region
}

// NewRegions creates the three empty regions of the page.
func NewRegions() Regions {
	return Regions{
		Main:             region.New(region.MainID),
		AccountNav:       region.New(region.AccountNavID),
		AuthenticatedNav: region.New(region.AuthenticatedNavID),
	}
}

// Controller redraws every region on each dispatch.
type Controller struct {
	regions  Regions
	nav      *nav.Presenter
	renderer *render.Renderer
}

// New wires a controller to its regions. The sign-in callback is shared by
// the account nav and the home view.
func New(regions Regions, cb nav.Callbacks, loc *time.Location) *Controller {
	return &Controller{
		regions:  regions,
		nav:      nav.New(regions.AccountNav, regions.AuthenticatedNav, cb),
		renderer: render.New(regions.Main, cb.SignIn, loc),
	}
}

// Regions returns the regions the controller renders into.
func (c *Controller) Regions() Regions {
	return c.regions
}

// Dispatch resolves the view to show, redraws both navigation regions and
// replaces the main region with the body of that view. It returns the view
// that was rendered.
//
// A payload of the wrong type for the resolved view, or a view outside the
// known set, renders the error view instead.
func (c *Controller) Dispatch(session *account.Session, requested page.View, data any) page.View {
	// The body goes first: a payload it rejects turns the view into Error,
	// and the authenticated nav marks the view actually shown.
	view := c.body(session, page.Resolve(session, requested), data)

	c.nav.Account(session)
	c.nav.Authenticated(session, view)

	return view
}

func (c *Controller) body(session *account.Session, view page.View, data any) page.View {
	switch view {
	case page.Error:
		c.renderer.Error(errorInfo(data))
	case page.Home:
		c.renderer.Home(session)
	case page.Calendar:
		events, ok := data.(schedule.Page)
		if !ok {
			c.renderer.Error(mismatch(view, data))
			return page.Error
		}
		c.renderer.Calendar(events)
	case page.Presence:
		status, ok := data.(presence.Status)
		if !ok {
			c.renderer.Error(mismatch(view, data))
			return page.Error
		}
		c.renderer.Presence(status)
	default:
		c.renderer.Error(page.ErrorInfo{
			Message: fmt.Sprintf("Unknown view %s", view),
			Debug:   map[string]int{"view": int(view)},
		})
		return page.Error
	}
	return view
}

func errorInfo(data any) page.ErrorInfo {
	switch v := data.(type) {
	case page.ErrorInfo:
		return v
	case *page.ErrorInfo:
		if v != nil {
			return *v
		}
	case error:
		return page.ErrorFrom("", v)
	case string:
		return page.ErrorInfo{Message: v}
	}
	return page.ErrorInfo{Message: "An unknown error occurred"}
}

func mismatch(view page.View, data any) page.ErrorInfo {
	return page.ErrorInfo{
		Message: fmt.Sprintf("Cannot display %s", view),
		Debug: map[string]string{
			"view":    view.String(),
			"payload": fmt.Sprintf("%T", data),
		},
	}
}
