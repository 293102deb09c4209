package mainview

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name  string
		props Props
		want  []string
	}{
		{
			name:  "header and body",
			props: Props{Width: 100, Height: 50, Header: "HEADER", Body: "BODY"},
			want:  []string{"HEADER", "BODY"},
		},
		{
			name:  "body only",
			props: Props{Width: 40, Height: 5, Body: "Calendar"},
			want:  []string{"Calendar"},
		},
		{
			name:  "header only",
			props: Props{Width: 40, Height: 5, Header: "Loading"},
			want:  []string{"Loading"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.props)
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("Render() = %q, want %q", got, want)
				}
			}
		})
	}
}
