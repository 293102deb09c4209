package element

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		tag       string
		class     string
		text      string
		wantKids  int
		wantText  string
		wantClass string
	}{
		{name: "tag only", tag: "div", wantKids: 0},
		{name: "with class", tag: "p", class: "lead", wantClass: "lead"},
		{name: "with text", tag: "h1", text: "Calendar", wantKids: 1, wantText: "Calendar"},
		{name: "class and text", tag: "button", class: "btn", text: "Sign in", wantKids: 1, wantText: "Sign in", wantClass: "btn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := New(tt.tag, tt.class, tt.text)
			assert.Equal(t, tt.tag, n.Tag)
			assert.Equal(t, tt.wantClass, n.Class)
			require.Len(t, n.Children(), tt.wantKids)
			assert.Equal(t, tt.wantText, n.Text())
			if tt.wantKids == 1 {
				assert.True(t, n.Children()[0].IsText())
			}
		})
	}
}

func TestAppendSkipsNil(t *testing.T) {
	n := New("div", "", "").Append(nil, New("p", "", "a"), nil)
	assert.Len(t, n.Children(), 1)
}

func TestAttrsAreSorted(t *testing.T) {
	n := New("th", "", "Start").SetAttr("scope", "col").SetAttr("key", "1")
	assert.Equal(t, []string{"key", "scope"}, n.AttrKeys())
	v, ok := n.Attr("scope")
	assert.True(t, ok)
	assert.Equal(t, "col", v)
	_, ok = n.Attr("missing")
	assert.False(t, ok)
}

func TestHasClass(t *testing.T) {
	n := New("button", "btn btn-link nav-link active", "")
	assert.True(t, n.HasClass("active"))
	assert.True(t, n.HasClass("nav-link"))
	assert.False(t, n.HasClass("nav"))
}

func TestFindAndActionable(t *testing.T) {
	cmd := func() tea.Msg { return nil }
	root := New("div", "", "").Append(
		New("h1", "", "Title"),
		New("button", "a", "One").Bind(cmd),
		New("div", "", "").Append(New("button", "b", "Two").Bind(cmd)),
	)

	buttons := root.FindAll(ByTag("button"))
	require.Len(t, buttons, 2)
	assert.Equal(t, "One", buttons[0].Text())

	acts := root.Actionable()
	require.Len(t, acts, 2)
	assert.Equal(t, "Two", acts[1].Text())

	assert.Equal(t, "Title", root.Find(ByTag("h1")).Text())
	assert.Nil(t, root.Find(ByTag("table")))
	assert.Equal(t, "b", root.Find(ByClass("b")).Class)
}

func TestOutlineIsDeterministic(t *testing.T) {
	build := func() *Node {
		return New("tr", "", "").SetAttr(KeyAttr, "e1").SetAttr("a", "b").Append(New("td", "", "x"))
	}
	assert.Equal(t, build().Outline(), build().Outline())
	assert.Equal(t, `tr[a=b][key=e1](td("x"))`, build().Outline())
}
