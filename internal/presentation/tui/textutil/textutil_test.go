package textutil

import "testing"

func TestSingleLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "Sign in failed:\n  invalid_grant", want: "Sign in failed: invalid_grant"},
		{in: "  Signed out\t", want: "Signed out"},
	}
	for _, tt := range tests {
		if got := SingleLine(tt.in); got != tt.want {
			t.Errorf("SingleLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{in: "Adele Vance", width: 0, want: ""},
		{in: "Adele Vance", width: 20, want: "Adele Vance"},
		{in: "Adele Vance", width: 8, want: "Adele..."},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
