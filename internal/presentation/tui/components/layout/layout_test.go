package layout

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	props := Props{
		Header:  "HEADER",
		Sidebar: "SIDEBAR",
		Main:    "MAIN",
		Footer:  "FOOTER",
	}

	got := Render(props)

	for _, want := range []string{"HEADER", "SIDEBAR", "MAIN", "FOOTER"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %s content", want)
		}
	}

	lines := strings.Split(got, "\n")
	if !strings.Contains(lines[0], "HEADER") {
		t.Errorf("header should be the first line, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "SIDEBAR") || !strings.Contains(lines[1], "MAIN") {
		t.Errorf("sidebar and main should share a line, got %q", lines[1])
	}
	if !strings.Contains(lines[len(lines)-1], "FOOTER") {
		t.Errorf("footer should be the last line, got %q", lines[len(lines)-1])
	}
}

func TestRender_WithoutHeaderOrFooter(t *testing.T) {
	got := Render(Props{Sidebar: "SIDEBAR", Main: "MAIN"})
	if strings.Contains(got, "\n") {
		t.Errorf("Render() = %q, want a single line", got)
	}
}
