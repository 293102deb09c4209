// Package header provides the title bar with the account navigation.
package header

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the header component.
type Props struct {
	Title  string
	Nav    string
	Width  int
	Accent lipgloss.Color
	Border lipgloss.Color
}

// Render renders the header component. Nav is right aligned when it fits.
func Render(p Props) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent).
		PaddingLeft(1).
		Render(p.Title)

	gap := p.Width - lipgloss.Width(title) - lipgloss.Width(p.Nav)
	if gap < 1 {
		gap = 1
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, title, lipgloss.NewStyle().Width(gap).Render(""), p.Nav)

	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(p.Border)
	if p.Width >= lipgloss.Width(line) {
		style = style.Width(p.Width)
	}
	return style.Render(line)
}
