package update

import (
	"github.com/tesso57/availnot/internal/presentation/tui/controller"
	"github.com/tesso57/availnot/internal/presentation/tui/element"
	"github.com/tesso57/availnot/internal/presentation/tui/state"
)

// Actions lists the activatable nodes in focus order: account nav,
// authenticated nav, then the main region.
func Actions(r controller.Regions) []*element.Node {
	var out []*element.Node
	out = append(out, r.AccountNav.Actionable()...)
	out = append(out, r.AuthenticatedNav.Actionable()...)
	out = append(out, r.Main.Actionable()...)
	return out
}

// Focused returns the focused action, if any.
func Focused(s *state.ModelState, deps Deps) *element.Node {
	actions := Actions(deps.Controller.Regions())
	if len(actions) == 0 {
		return nil
	}
	if s.Focus < 0 || s.Focus >= len(actions) {
		s.Focus = 0
	}
	return actions[s.Focus]
}

// MoveFocus cycles the focus by delta, wrapping at both ends.
func MoveFocus(s *state.ModelState, deps Deps, delta int) {
	n := len(Actions(deps.Controller.Regions()))
	if n == 0 {
		s.Focus = 0
		return
	}
	s.Focus = ((s.Focus+delta)%n + n) % n
}
