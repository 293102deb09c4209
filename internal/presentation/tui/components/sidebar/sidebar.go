// Package sidebar provides the sidebar component.
package sidebar

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the sidebar component.
type Props struct {
	View   string
	Width  int
	Height int
	Title  string
	Active bool
	Accent lipgloss.Color
	Border lipgloss.Color
}

// Render renders the sidebar component.
func Render(p Props) string {
	sidebarStyle := lipgloss.NewStyle().
		Width(p.Width).
		Height(p.Height).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(p.Border)

	if p.Active {
		sidebarStyle = sidebarStyle.BorderForeground(p.Accent)
	}

	titleStyle := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingBottom(1).
		Foreground(p.Accent)

	return sidebarStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(p.Title),
		p.View,
	))
}
