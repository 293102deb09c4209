package schedule

import (
	"testing"
	"time"
)

func TestFormatLocal(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	ts := time.Date(2024, 3, 5, 23, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		loc  *time.Location
		want string
	}{
		{name: "utc", loc: time.UTC, want: "3/5/24 11:30 PM"},
		{name: "shifted across midnight", loc: tokyo, want: "3/6/24 8:30 AM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatLocal(ts, tt.loc); got != tt.want {
				t.Fatalf("FormatLocal() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPageLen(t *testing.T) {
	p := Page{Value: []Event{{ID: "a"}, {ID: "b"}}}
	if p.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", p.Len())
	}
	if (Page{}).Len() != 0 {
		t.Fatal("empty page should have zero length")
	}
}
