// Package layout joins the page areas into one screen.
package layout

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the rendered areas of the screen.
type Props struct {
	Header  string
	Sidebar string
	Main    string
	Footer  string
}

// Render stacks the header, the sidebar and main side by side, then the footer.
func Render(p Props) string {
	body := lipgloss.JoinHorizontal(lipgloss.Top, p.Sidebar, p.Main)
	parts := make([]string, 0, 3)
	if p.Header != "" {
		parts = append(parts, p.Header)
	}
	parts = append(parts, body)
	if p.Footer != "" {
		parts = append(parts, p.Footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
