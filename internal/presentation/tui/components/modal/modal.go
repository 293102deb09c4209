// Package modal renders dialogs centered over the screen.
package modal

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/availnot/internal/presentation/tui/metrics"
)

// Kind selects the dialog decoration.
type Kind int

const (
	Help Kind = iota
	DeviceCode
)

// Props defines the properties for the modal component.
type Props struct {
	Visible bool
	Kind    Kind
	Title   string
	Body    string
	Width   int
	Height  int
	Accent  lipgloss.Color
}

// Render renders the dialog. An invisible modal renders nothing.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Accent).
		Padding(1, 2)
	if p.Kind == DeviceCode {
		box = box.Width(metrics.ModalWidth).Border(lipgloss.DoubleBorder())
	}

	content := p.Body
	if p.Title != "" {
		title := lipgloss.NewStyle().Bold(true).Foreground(p.Accent).MarginBottom(1).Render(p.Title)
		content = lipgloss.JoinVertical(lipgloss.Left, title, p.Body)
	}

	if p.Width <= 0 || p.Height <= 0 {
		return box.Render(content)
	}
	return lipgloss.Place(p.Width, p.Height, lipgloss.Center, lipgloss.Center, box.Render(content))
}
