package controller

import (
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/availnot/internal/domain/account"
	"github.com/tesso57/availnot/internal/domain/page"
	"github.com/tesso57/availnot/internal/domain/presence"
	"github.com/tesso57/availnot/internal/domain/schedule"
	"github.com/tesso57/availnot/internal/presentation/tui/element"
	"github.com/tesso57/availnot/internal/presentation/tui/nav"
	"github.com/tesso57/availnot/internal/presentation/tui/render"
)

type actionMsg string

func emit(s string) tea.Cmd {
	return func() tea.Msg { return actionMsg(s) }
}

func newTestController() (*Controller, Regions) {
	regions := NewRegions()
	c := New(regions, nav.Callbacks{
		SignIn:       emit("sign-in"),
		SignOut:      emit("sign-out"),
		ShowCalendar: emit("calendar"),
		ShowPresence: emit("presence"),
	}, time.UTC)
	return c, regions
}

var ana = &account.Session{Name: "Ana", UserName: "ana@example.com"}

type debugErr struct{}

func (debugErr) Error() string  { return "boom" }
func (debugErr) DebugInfo() any { return map[string]string{"code": "InvalidAuthenticationToken"} }

func TestDispatch_StartupState(t *testing.T) {
	c, r := newTestController()

	got := c.Dispatch(nil, page.Home, nil)

	assert.Equal(t, page.Home, got)
	assert.Equal(t, "nav-item", r.AccountNav.Class())
	assert.True(t, r.AuthenticatedNav.Empty())

	acts := r.Main.Actionable()
	require.Len(t, acts, 1)
	assert.Equal(t, "Click here to sign in", acts[0].Text())
	assert.Equal(t, actionMsg("sign-in"), acts[0].OnActivate())
}

func TestDispatch_ForcesHomeWithoutSession(t *testing.T) {
	for _, v := range []page.View{page.Error, page.Calendar, page.Presence, page.Unspecified} {
		t.Run(v.String(), func(t *testing.T) {
			c, r := newTestController()
			got := c.Dispatch(nil, v, page.ErrorInfo{Message: "ignored"})
			assert.Equal(t, page.Home, got)
			assert.NotContains(t, r.Main.Outline(), "ignored")
			assert.Contains(t, r.Main.Outline(), "jumbotron")
		})
	}
}

func TestDispatch_UnspecifiedWithSessionIsHome(t *testing.T) {
	c, r := newTestController()

	got := c.Dispatch(ana, page.Unspecified, nil)

	assert.Equal(t, page.Home, got)
	assert.Equal(t, "Welcome Ana!", r.Main.Children()[0].Find(element.ByTag("h4")).Text())
	assert.Equal(t, "nav-item dropdown", r.AccountNav.Class())
	for _, b := range r.AuthenticatedNav.Actionable() {
		assert.False(t, b.HasClass("active"))
	}
}

func TestDispatch_Calendar(t *testing.T) {
	c, r := newTestController()
	events := schedule.Page{Value: []schedule.Event{
		{
			ID:        "e1",
			Organizer: "Bob",
			Subject:   "Standup",
			Start:     time.Date(2024, 3, 5, 14, 0, 0, 0, time.UTC),
			End:       time.Date(2024, 3, 5, 14, 15, 0, 0, time.UTC),
		},
	}}

	got := c.Dispatch(ana, page.Calendar, events)

	assert.Equal(t, page.Calendar, got)
	rows := r.Main.Children()[0].Find(element.ByTag("tbody")).Children()
	require.Len(t, rows, 1)
	key, _ := rows[0].Attr(element.KeyAttr)
	assert.Equal(t, "e1", key)
	assert.Equal(t, "BobStandup3/5/24 2:00 PM3/5/24 2:15 PM", rows[0].Text())

	buttons := r.AuthenticatedNav.Actionable()
	require.Len(t, buttons, 2)
	assert.True(t, buttons[0].HasClass("active"))
	assert.False(t, buttons[1].HasClass("active"))
}

func TestDispatch_CalendarRowCount(t *testing.T) {
	for _, n := range []int{0, 1, 7} {
		t.Run(fmt.Sprintf("%d events", n), func(t *testing.T) {
			c, r := newTestController()
			events := schedule.Page{}
			for i := range n {
				events.Value = append(events.Value, schedule.Event{ID: fmt.Sprintf("e%d", i)})
			}

			c.Dispatch(ana, page.Calendar, events)

			body := r.Main.Children()[0].Find(element.ByTag("tbody"))
			require.NotNil(t, body)
			assert.Len(t, body.Children(), n)
			assert.Len(t, r.Main.Children()[0].FindAll(element.ByTag("th")), len(render.CalendarColumns))
		})
	}
}

func TestDispatch_Presence(t *testing.T) {
	c, r := newTestController()

	got := c.Dispatch(ana, page.Presence, presence.Status{Availability: "Away", Activity: "Away"})

	assert.Equal(t, page.Presence, got)
	light := r.Main.Children()[0].Find(element.ByClass(render.IndicatorClass))
	require.NotNil(t, light)
	assert.Equal(t, "#ffff00", light.Color)

	buttons := r.AuthenticatedNav.Actionable()
	require.Len(t, buttons, 2)
	assert.False(t, buttons[0].HasClass("active"))
	assert.True(t, buttons[1].HasClass("active"))
}

func TestDispatch_Error(t *testing.T) {
	tests := []struct {
		name      string
		data      any
		message   string
		wantDebug bool
	}{
		{name: "error info", data: page.ErrorInfo{Message: "Error getting events"}, message: "Error getting events"},
		{name: "error info with debug", data: page.ErrorInfo{Message: "x", Debug: map[string]int{"a": 1}}, message: "x", wantDebug: true},
		{name: "plain error", data: errors.New("network down"), message: "network down", wantDebug: true},
		{name: "debugger error", data: fmt.Errorf("wrap: %w", debugErr{}), message: "wrap: boom", wantDebug: true},
		{name: "string", data: "oops", message: "oops"},
		{name: "nil", data: nil, message: "An unknown error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, r := newTestController()

			got := c.Dispatch(ana, page.Error, tt.data)

			assert.Equal(t, page.Error, got)
			alert := r.Main.Children()[0]
			assert.True(t, alert.HasClass("alert-danger"))
			assert.Equal(t, tt.message, alert.Find(element.ByTag("p")).Text())
			assert.Equal(t, tt.wantDebug, alert.Find(element.ByTag("code")) != nil)
			for _, b := range r.AuthenticatedNav.Actionable() {
				assert.False(t, b.HasClass("active"))
			}
		})
	}
}

func TestDispatch_MismatchedPayloadRendersError(t *testing.T) {
	tests := []struct {
		name string
		view page.View
		data any
	}{
		{name: "calendar with status", view: page.Calendar, data: presence.Status{}},
		{name: "presence with events", view: page.Presence, data: schedule.Page{}},
		{name: "calendar with nil", view: page.Calendar, data: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, r := newTestController()

			got := c.Dispatch(ana, tt.view, tt.data)

			assert.Equal(t, page.Error, got)
			alert := r.Main.Children()[0]
			assert.True(t, alert.HasClass("alert"))
			assert.Contains(t, alert.Find(element.ByTag("p")).Text(), "Cannot display "+tt.view.String())
			buttons := r.AuthenticatedNav.Actionable()
			require.Len(t, buttons, 2)
			for _, b := range buttons {
				assert.False(t, b.HasClass("active"), "nav follows the error view actually shown")
			}
		})
	}
}

func TestDispatch_UnknownView(t *testing.T) {
	c, r := newTestController()

	got := c.Dispatch(ana, page.View(42), nil)

	assert.Equal(t, page.Error, got)
	assert.Equal(t, "Unknown view view(42)", r.Main.Children()[0].Find(element.ByTag("p")).Text())
}

func TestDispatch_Idempotent(t *testing.T) {
	events := schedule.Page{Value: []schedule.Event{{ID: "a", Subject: "One"}, {ID: "b", Subject: "Two"}}}
	c, r := newTestController()

	c.Dispatch(ana, page.Calendar, events)
	first := [3]string{r.Main.Outline(), r.AccountNav.Outline(), r.AuthenticatedNav.Outline()}
	c.Dispatch(ana, page.Calendar, events)
	second := [3]string{r.Main.Outline(), r.AccountNav.Outline(), r.AuthenticatedNav.Outline()}

	assert.Equal(t, first, second)
}

func TestDispatch_SignOutClearsAuthenticatedNav(t *testing.T) {
	c, r := newTestController()
	c.Dispatch(ana, page.Presence, presence.Status{Availability: "Busy"})

	c.Dispatch(nil, page.Home, nil)

	assert.True(t, r.AuthenticatedNav.Empty())
	acts := r.AccountNav.Actionable()
	require.Len(t, acts, 1)
	assert.Equal(t, "Sign in", acts[0].Text())
}
