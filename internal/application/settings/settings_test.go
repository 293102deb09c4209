package settings

import (
	"testing"
	"time"
)

func TestSettings_Location(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		want     string
		wantErr  bool
	}{
		{name: "empty is local", timezone: "", want: time.Local.String()},
		{name: "local keyword", timezone: "Local", want: time.Local.String()},
		{name: "named zone", timezone: "Asia/Tokyo", want: "Asia/Tokyo"},
		{name: "invalid zone", timezone: "Mars/Olympus", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := Settings{Timezone: tt.timezone}.Location()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Location() error = %v", err)
			}
			if loc.String() != tt.want {
				t.Fatalf("Location() = %q, want %q", loc.String(), tt.want)
			}
		})
	}
}

func TestGraphConfig_Timeout(t *testing.T) {
	if got := (GraphConfig{}).Timeout(); got != 30*time.Second {
		t.Fatalf("Timeout() = %v, want 30s", got)
	}
	if got := (GraphConfig{TimeoutSeconds: 5}).Timeout(); got != 5*time.Second {
		t.Fatalf("Timeout() = %v, want 5s", got)
	}
}

func TestCalendarConfig_UsesICS(t *testing.T) {
	tests := []struct {
		cfg  CalendarConfig
		want bool
	}{
		{cfg: CalendarConfig{Source: "graph"}, want: false},
		{cfg: CalendarConfig{Source: "ics"}, want: false},
		{cfg: CalendarConfig{Source: "ICS", ICSURL: "https://example.com/cal.ics"}, want: true},
		{cfg: CalendarConfig{Source: "graph", ICSURL: "https://example.com/cal.ics"}, want: false},
	}
	for _, tt := range tests {
		if got := tt.cfg.UsesICS(); got != tt.want {
			t.Errorf("UsesICS(%+v) = %v, want %v", tt.cfg, got, tt.want)
		}
	}
}
