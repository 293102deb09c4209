package sidebar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestRender(t *testing.T) {
	got := Render(Props{
		View:   "Calendar\nPresence",
		Width:  16,
		Height: 10,
		Title:  "Navigate",
	})

	plain := ansi.Strip(got)
	for _, want := range []string{"Navigate", "Calendar", "Presence"} {
		if !strings.Contains(plain, want) {
			t.Errorf("Render() = %q, want %q", plain, want)
		}
	}
	if h := lipgloss.Height(got); h != 10 {
		t.Errorf("height = %d, want 10", h)
	}
}

func TestRender_EmptyNavKeepsTitle(t *testing.T) {
	got := ansi.Strip(Render(Props{Width: 16, Height: 4, Title: "Navigate"}))
	if !strings.Contains(got, "Navigate") {
		t.Errorf("Render() = %q, want title", got)
	}
}
