// Package render builds the body of each page view into the main region.
package render

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/availnot/internal/presentation/tui/element"
	"github.com/tesso57/availnot/internal/presentation/tui/region"
)

// Renderer replaces the content of the main region with one view at a time.
type Renderer struct {
	main   *region.Region
	signIn tea.Cmd
	loc    *time.Location
}

// New constructs a Renderer. signIn is bound to the sign-in affordance of the
// home view; loc is the zone calendar timestamps are displayed in.
func New(main *region.Region, signIn tea.Cmd, loc *time.Location) *Renderer {
	if loc == nil {
		loc = time.Local
	}
	return &Renderer{main: main, signIn: signIn, loc: loc}
}

func (r *Renderer) show(root *element.Node) {
	r.main.Replace(root)
}
