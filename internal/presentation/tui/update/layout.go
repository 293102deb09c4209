package update

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/availnot/internal/presentation/tui/metrics"
	"github.com/tesso57/availnot/internal/presentation/tui/state"
)

// Layout holds the computed sizes of the page areas.
type Layout struct {
	SidebarWidth int
	MainWidth    int
	BodyHeight   int
}

// ComputeLayout splits the terminal between header, sidebar, main and footer.
func ComputeLayout(s *state.ModelState) Layout {
	if s.Width <= 0 || s.Height <= 0 {
		return Layout{SidebarWidth: metrics.MinSidebarWidth, MainWidth: 1, BodyHeight: 1}
	}

	bodyHeight := clampMin(s.Height-metrics.HeaderLines-footerHeight(s), 1)

	sidebarWidth := clampMin(s.Width/5, metrics.MinSidebarWidth)
	if sidebarWidth > s.Width/2 {
		sidebarWidth = s.Width / 2
	}
	mainWidth := clampMin(s.Width-sidebarWidth-metrics.SidebarRightBorderWidth-metrics.MainPaddingLeft, 1)

	return Layout{
		SidebarWidth: sidebarWidth,
		MainWidth:    mainWidth,
		BodyHeight:   bodyHeight,
	}
}

func footerHeight(s *state.ModelState) int {
	s.Help.Width = s.Width
	return lipgloss.Height(state.FooterText(s.Screen, s.Loading, s.StatusMessage, s.Help.View(&s.Keys)))
}

func clampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}
