package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/availnot/internal/application/usecase"
	"github.com/tesso57/availnot/internal/domain/account"
	"github.com/tesso57/availnot/internal/domain/page"
	"github.com/tesso57/availnot/internal/domain/presence"
	"github.com/tesso57/availnot/internal/domain/schedule"
	"github.com/tesso57/availnot/internal/infrastructure/identity"
	"github.com/tesso57/availnot/internal/presentation/tui/controller"
	"github.com/tesso57/availnot/internal/presentation/tui/update"
)

type fakeWorkspace struct {
	session    *account.Session
	restoreErr error
	results    map[page.View]usecase.Result
	loaded     []page.View
}

func (f *fakeWorkspace) Restore(context.Context) (*account.Session, error) {
	return f.session, f.restoreErr
}

func (f *fakeWorkspace) StartSignIn(context.Context) (*identity.DeviceCode, error) {
	return nil, identity.ErrNotConfigured
}

func (f *fakeWorkspace) CompleteSignIn(context.Context, *identity.DeviceCode) (*account.Session, error) {
	return nil, identity.ErrNotConfigured
}

func (f *fakeWorkspace) SignOut() error { return nil }

func (f *fakeWorkspace) Load(_ context.Context, view page.View) usecase.Result {
	f.loaded = append(f.loaded, view)
	return f.results[view]
}

var lynne = &account.Session{Name: "Lynne Robbins", UserName: "lynne@contoso.example"}

func TestPrintPresence(t *testing.T) {
	ws := &fakeWorkspace{
		session: lynne,
		results: map[page.View]usecase.Result{
			page.Presence: {View: page.Presence, Data: presence.Status{Availability: "DoNotDisturb", Activity: "Presenting"}},
		},
	}

	var text bytes.Buffer
	require.NoError(t, printPresence(context.Background(), &text, ws, false))
	assert.Equal(t, "Availability: DoNotDisturb\nActivity:     Presenting\nColor:        #ff0000\n", text.String())

	var raw bytes.Buffer
	require.NoError(t, printPresence(context.Background(), &raw, ws, true))
	var got map[string]string
	require.NoError(t, json.Unmarshal(raw.Bytes(), &got))
	assert.Equal(t, map[string]string{
		"availability": "DoNotDisturb",
		"activity":     "Presenting",
		"color":        "#ff0000",
	}, got)
}

func TestPrintPresence_Errors(t *testing.T) {
	tests := []struct {
		name string
		ws   *fakeWorkspace
		want string
	}{
		{
			name: "signed out",
			ws:   &fakeWorkspace{},
			want: errNotSignedIn.Error(),
		},
		{
			name: "restore failure",
			ws:   &fakeWorkspace{restoreErr: errors.New("database is locked")},
			want: "database is locked",
		},
		{
			name: "graph failure",
			ws: &fakeWorkspace{
				session: lynne,
				results: map[page.View]usecase.Result{
					page.Presence: {View: page.Error, Data: page.ErrorInfo{Message: usecase.MsgPresenceFailed}},
				},
			},
			want: usecase.MsgPresenceFailed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := printPresence(context.Background(), &out, tt.ws, false)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Empty(t, out.String())
		})
	}
}

func TestSnapshot(t *testing.T) {
	start := time.Date(2026, 10, 21, 8, 0, 0, 0, time.UTC)
	ws := &fakeWorkspace{
		session: lynne,
		results: map[page.View]usecase.Result{
			page.Calendar: {View: page.Calendar, Data: schedule.Page{Value: []schedule.Event{
				{ID: "evt-1", Organizer: "Lee Gu", Subject: "Quarterly planning", Start: start, End: start.Add(time.Hour)},
			}}},
		},
	}
	ctrl := controller.New(controller.NewRegions(), update.Callbacks(), time.UTC)

	var out bytes.Buffer
	require.NoError(t, snapshot(context.Background(), &out, ws, ctrl, page.Calendar))

	html := out.String()
	assert.Contains(t, html, "<!DOCTYPE html>")
	assert.Contains(t, html, `key="evt-1"`)
	assert.Contains(t, html, "Quarterly planning")
	assert.Contains(t, html, "10/21/26 8:00 AM")
	assert.Equal(t, []page.View{page.Calendar}, ws.loaded)
}

func TestSnapshot_SignedOutRendersHome(t *testing.T) {
	ws := &fakeWorkspace{}
	ctrl := controller.New(controller.NewRegions(), update.Callbacks(), time.UTC)

	var out bytes.Buffer
	require.NoError(t, snapshot(context.Background(), &out, ws, ctrl, page.Presence))

	assert.Contains(t, out.String(), "Click here to sign in")
	assert.Empty(t, ws.loaded)
}

func TestResultError(t *testing.T) {
	err := resultError(page.ErrorInfo{Message: "Error getting presence", Debug: map[string]string{"code": "Forbidden"}})
	assert.EqualError(t, err, "Error getting presence: map[code:Forbidden]")

	assert.EqualError(t, resultError(42), "unexpected result int")
}
