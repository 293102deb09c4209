package render

import (
	"strings"
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
	"github.com/tesso57/availnot/internal/presentation/tui/region"
)

type signInMsg struct{}

func newTestRenderer(loc *time.Location) (*Renderer, *region.Region) {
	main := region.New(region.MainID)
	return New(main, func() tea.Msg { return signInMsg{} }, loc), main
}

func root(t *testing.T, r *region.Region) *element.Node {
	t.Helper()
	require.Len(t, r.Children(), 1, "main region should hold exactly one view")
	return r.Children()[0]
}

func TestError_WithoutDebug(t *testing.T) {
	r, main := newTestRenderer(time.UTC)
	r.Error(page.ErrorInfo{Message: "Something failed"})

	alert := root(t, main)
	assert.True(t, alert.HasClass("alert-danger"))
	assert.Equal(t, "Something failed", alert.Find(element.ByTag("p")).Text())
	assert.Nil(t, alert.Find(element.ByTag("pre")))
}

func TestError_WithDebugIsStablePrettyJSON(t *testing.T) {
	r, main := newTestRenderer(time.UTC)
	r.Error(page.ErrorInfo{
		Message: "Error getting events",
		Debug:   map[string]any{"zeta": 1, "alpha": map[string]string{"b": "2", "a": "1"}},
	})

	code := root(t, main).Find(element.ByTag("code"))
	require.NotNil(t, code)
	want := "{\n  \"alpha\": {\n    \"a\": \"1\",\n    \"b\": \"2\"\n  },\n  \"zeta\": 1\n}"
	assert.Equal(t, want, code.Text())
}

func TestDebugDump_KeepsHTMLCharacters(t *testing.T) {
	got := DebugDump(map[string]string{"message": "Access denied <user> & retry"})
	assert.Equal(t, "{\n  \"message\": \"Access denied <user> & retry\"\n}", got)
}

func TestDebugDump_FallsBackForUnmarshalable(t *testing.T) {
	got := DebugDump(map[string]any{"ch": make(chan int)})
	assert.True(t, strings.HasPrefix(got, "map["), got)
}

func TestHome_MutuallyExclusiveContent(t *testing.T) {
	r, main := newTestRenderer(time.UTC)

	r.Home(nil)
	anon := root(t, main)
	assert.NotNil(t, anon.Find(element.ByTag("button")))
	assert.Nil(t, anon.Find(element.ByTag("h4")))
	assert.NotContains(t, anon.Text(), "Welcome")
	require.Len(t, anon.Actionable(), 1)
	assert.IsType(t, signInMsg{}, anon.Actionable()[0].OnActivate())

	r.Home(&account.Session{Name: "Ana", UserName: "ana@example.com"})
	signed := root(t, main)
	assert.Equal(t, "Welcome Ana!", signed.Find(element.ByTag("h4")).Text())
	assert.Nil(t, signed.Find(element.ByTag("button")))
	assert.Empty(t, signed.Actionable())
	assert.Equal(t, Title, signed.Find(element.ByTag("h1")).Text())
}

func TestCalendar_RowsFollowInputOrder(t *testing.T) {
	r, main := newTestRenderer(time.UTC)
	events := schedule.Page{Value: []schedule.Event{
		{ID: "z", Organizer: "Zoe", Subject: "Late", Start: time.Date(2024, 5, 2, 15, 0, 0, 0, time.UTC), End: time.Date(2024, 5, 2, 16, 0, 0, 0, time.UTC)},
		{ID: "a", Organizer: "Al", Subject: "Early", Start: time.Date(2024, 5, 1, 9, 5, 0, 0, time.UTC), End: time.Date(2024, 5, 1, 9, 35, 0, 0, time.UTC)},
		{ID: "m", Organizer: "Mo", Subject: "Mid", Start: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC), End: time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC)},
	}}
	r.Calendar(events)

	div := root(t, main)
	headers := div.FindAll(element.ByTag("th"))
	require.Len(t, headers, 4)
	for i, h := range headers {
		assert.Equal(t, CalendarColumns[i], h.Text())
		scope, _ := h.Attr("scope")
		assert.Equal(t, "col", scope)
	}

	body := div.Find(element.ByTag("tbody"))
	rows := body.Children()
	require.Len(t, rows, 3)
	for i, row := range rows {
		key, ok := row.Attr(element.KeyAttr)
		require.True(t, ok)
		assert.Equal(t, events.Value[i].ID, key)
	}

	cells := rows[1].Children()
	assert.Equal(t, "Al", cells[0].Text())
	assert.Equal(t, "Early", cells[1].Text())
	assert.Equal(t, "5/1/24 9:05 AM", cells[2].Text())
	assert.Equal(t, "5/1/24 9:35 AM", cells[3].Text())
}

func TestCalendar_ConvertsToDisplayZone(t *testing.T) {
	r, main := newTestRenderer(time.FixedZone("PDT", -7*60*60))
	r.Calendar(schedule.Page{Value: []schedule.Event{{
		ID:    "1",
		Start: time.Date(2024, 5, 1, 3, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 5, 1, 19, 30, 0, 0, time.UTC),
	}}})

	cells := root(t, main).Find(element.ByTag("tbody")).Children()[0].Children()
	assert.Equal(t, "4/30/24 8:00 PM", cells[2].Text())
	assert.Equal(t, "5/1/24 12:30 PM", cells[3].Text())
}

func TestCalendar_Empty(t *testing.T) {
	r, main := newTestRenderer(time.UTC)
	r.Calendar(schedule.Page{})
	assert.Empty(t, root(t, main).Find(element.ByTag("tbody")).Children())
}

func TestPresence(t *testing.T) {
	r, main := newTestRenderer(time.UTC)
	r.Presence(presence.Status{Availability: "Busy", Activity: "InAMeeting"})

	div := root(t, main)
	paras := div.FindAll(element.ByTag("p"))
	require.Len(t, paras, 2)
	assert.Equal(t, "Availability : Busy", paras[0].Text())
	assert.Equal(t, "Activity : InAMeeting", paras[1].Text())

	light := div.Find(element.ByClass(IndicatorClass))
	require.NotNil(t, light)
	assert.Equal(t, "#ff0000", light.Color)
}

func TestPresence_UnknownAvailabilityIsPink(t *testing.T) {
	r, main := newTestRenderer(time.UTC)
	r.Presence(presence.Status{Availability: "OutOfOffice"})
	light := root(t, main).Find(element.ByClass(IndicatorClass))
	assert.Equal(t, "#ffc0cb", light.Color)
}
