// Package paint draws element trees as styled terminal text.
package paint

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/tesso57/availnot/internal/presentation/tui/element"
)

// Theme holds the colors used when painting.
type Theme struct {
	Accent lipgloss.Color
	Muted  lipgloss.Color
	Border lipgloss.Color
	Danger lipgloss.Color
}

// DefaultTheme returns the built-in colors.
func DefaultTheme() Theme {
	return Theme{
		Accent: lipgloss.Color("205"),
		Muted:  lipgloss.Color("240"),
		Border: lipgloss.Color("63"),
		Danger: lipgloss.Color("#ff0000"),
	}
}

// Painter renders nodes. The zero width disables wrapping.
type Painter struct {
	theme   Theme
	width   int
	focused *element.Node
}

// New creates a Painter. focused, when non-nil, is highlighted.
func New(theme Theme, width int, focused *element.Node) Painter {
	return Painter{theme: theme, width: width, focused: focused}
}

// Block paints nodes one below the other.
func (p Painter) Block(nodes ...*element.Node) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if s := p.block(n); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

// Inline paints nodes on a single line.
func (p Painter) Inline(nodes ...*element.Node) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if s := p.inline(n); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

func (p Painter) block(n *element.Node) string {
	if n == nil {
		return ""
	}
	if n.IsText() {
		return n.Data
	}
	if n.OnActivate != nil {
		return p.action(n)
	}

	switch n.Tag {
	case "h1":
		return lipgloss.NewStyle().Bold(true).Foreground(p.theme.Accent).MarginBottom(1).Render(n.Text())
	case "h4", "h5":
		return lipgloss.NewStyle().Bold(true).Render(n.Text())
	case "p":
		return p.paragraph(n)
	case "i":
		return icon
	case "li":
		return p.Inline(n.Children()...)
	case "pre":
		return lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.theme.Muted).
			Padding(0, 1).
			Render(p.Block(n.Children()...))
	case "code":
		return n.Text()
	case "table":
		return p.table(n)
	}

	switch {
	case n.HasClass("alert"):
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.theme.Danger).
			Padding(0, 1).
			Render(p.Block(n.Children()...))
	case n.HasClass("dropdown-divider"):
		return lipgloss.NewStyle().Foreground(p.theme.Muted).Render(strings.Repeat("─", 12))
	case n.Color != "":
		return p.light(n)
	}
	return p.Block(n.Children()...)
}

func (p Painter) inline(n *element.Node) string {
	if n == nil {
		return ""
	}
	if n.IsText() {
		return n.Data
	}
	if n.OnActivate != nil {
		return p.action(n)
	}
	switch {
	case n.Tag == "i":
		return icon
	case n.Tag == "h4" || n.Tag == "h5":
		return lipgloss.NewStyle().Bold(true).Render(n.Text())
	case n.Tag == "p":
		return p.paragraph(n)
	case n.HasClass("dropdown-divider"):
		return lipgloss.NewStyle().Foreground(p.theme.Muted).Render("│")
	case n.Color != "":
		return p.light(n)
	}
	return p.Inline(n.Children()...)
}

const icon = "◉"

func (p Painter) paragraph(n *element.Node) string {
	style := lipgloss.NewStyle()
	if n.HasClass("text-muted") || n.HasClass("lead") {
		style = style.Foreground(p.theme.Muted)
	}
	if n.HasClass("lead") {
		style = style.Italic(true)
	}
	if p.width > 0 {
		style = style.Width(p.width)
	}
	return style.Render(p.Inline(n.Children()...))
}

func (p Painter) action(n *element.Node) string {
	style := lipgloss.NewStyle().Padding(0, 1)
	if n.HasClass("active") {
		style = style.Bold(true).Underline(true).Foreground(p.theme.Accent)
	}
	if n.HasClass("btn-primary") {
		style = style.Border(lipgloss.RoundedBorder()).BorderForeground(p.theme.Accent)
	}
	if n == p.focused {
		style = style.Reverse(true)
	}
	return style.Render(n.Text())
}

func (p Painter) light(n *element.Node) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(n.Color)).
		Width(12).
		Height(3).
		Render("")
}

func (p Painter) table(n *element.Node) string {
	var headers []string
	if head := n.Find(element.ByTag("thead")); head != nil {
		for _, th := range head.FindAll(element.ByTag("th")) {
			headers = append(headers, th.Text())
		}
	}

	var rows [][]string
	if body := n.Find(element.ByTag("tbody")); body != nil {
		for _, tr := range body.Children() {
			cells := tr.FindAll(element.ByTag("td"))
			row := make([]string, 0, len(cells))
			for _, td := range cells {
				row = append(row, td.Text())
			}
			rows = append(rows, row)
		}
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(p.theme.Accent).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(p.theme.Border)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	if p.width > 0 {
		t = t.Width(p.width)
	}
	return t.String()
}
