// Package settings defines application-level configuration data.
package settings

import (
	"fmt"
	"strings"
	"time"
)

// Calendar sources.
const (
	CalendarSourceGraph = "graph"
	CalendarSourceICS   = "ics"
)

// IdentityConfig defines the Microsoft identity platform registration.
type IdentityConfig struct {
	ClientID string   `yaml:"client_id" kong:"help='Application (client) ID of the app registration',env='AVAILNOT_CLIENT_ID'"`
	Tenant   string   `yaml:"tenant" kong:"help='Directory tenant',default='common'"`
	Scopes   []string `yaml:"scopes" kong:"help='Requested scopes',default='openid,profile,offline_access,User.Read,Calendars.Read,Presence.Read'"`
}

// GraphConfig defines the Microsoft Graph client settings.
type GraphConfig struct {
	BaseURL        string `yaml:"base_url" kong:"help='Graph endpoint',default='https://graph.microsoft.com/v1.0'"`
	TimeoutSeconds int    `yaml:"timeout_seconds" kong:"help='Request timeout in seconds',default='30'"`
	EventLimit     int    `yaml:"event_limit" kong:"help='Maximum number of calendar events',default='10'"`
}

// CalendarConfig selects where calendar events come from.
type CalendarConfig struct {
	Source string `yaml:"source" kong:"help='Calendar source (graph/ics)',default='graph'"`
	ICSURL string `yaml:"ics_url" kong:"help='iCalendar feed URL used when source is ics'"`
}

// KeyMapConfig defines the configuration for keybindings.
type KeyMapConfig struct {
	Calendar string `yaml:"calendar" kong:"help='Show calendar key',default='c'"`
	Presence string `yaml:"presence" kong:"help='Show presence key',default='p'"`
	Home     string `yaml:"home" kong:"help='Show home key',default='h'"`
	SignIn   string `yaml:"sign_in" kong:"help='Sign in key',default='i'"`
	SignOut  string `yaml:"sign_out" kong:"help='Sign out key',default='o'"`
	Next     string `yaml:"next" kong:"help='Focus next action key',default='tab'"`
	Prev     string `yaml:"prev" kong:"help='Focus previous action key',default='shift+tab'"`
	Activate string `yaml:"activate" kong:"help='Activate focused action key',default='enter'"`
	Refresh  string `yaml:"refresh" kong:"help='Refresh key',default='r'"`
	Browser  string `yaml:"browser" kong:"help='Open verification page key',default='b'"`
	Back     string `yaml:"back" kong:"help='Close dialog key',default='esc'"`
	Quit     string `yaml:"quit" kong:"help='Quit key',default='q'"`
}

// ThemeConfig defines the color theme configuration.
type ThemeConfig struct {
	Accent string `yaml:"accent" kong:"help='Accent color',default='205'"`
	Muted  string `yaml:"muted" kong:"help='Muted text color',default='240'"`
	Border string `yaml:"border" kong:"help='Border color',default='63'"`
}

// Settings represents the application configuration.
type Settings struct {
	Identity    IdentityConfig `yaml:"identity" kong:"embed,prefix='identity.'"`
	Graph       GraphConfig    `yaml:"graph" kong:"embed,prefix='graph.'"`
	Calendar    CalendarConfig `yaml:"calendar" kong:"embed,prefix='calendar.'"`
	KeyMap      KeyMapConfig   `yaml:"keymap" kong:"embed,prefix='keymap.'"`
	Theme       ThemeConfig    `yaml:"theme" kong:"embed,prefix='theme.'"`
	Timezone    string         `yaml:"timezone" kong:"help='IANA zone for displayed times (empty for local)'"`
	SessionFile string         `yaml:"session_file" kong:"help='Session cache path'"`
	LogFile     string         `yaml:"log_file" kong:"help='Log file path'"`
}

// Location returns the display time zone. An empty Timezone is the local zone.
func (s Settings) Location() (*time.Location, error) {
	name := strings.TrimSpace(s.Timezone)
	if name == "" || strings.EqualFold(name, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", name, err)
	}
	return loc, nil
}

// Timeout returns the Graph request timeout.
func (g GraphConfig) Timeout() time.Duration {
	if g.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(g.TimeoutSeconds) * time.Second
}

// UsesICS reports whether calendar events are read from an iCalendar feed.
func (c CalendarConfig) UsesICS() bool {
	return strings.EqualFold(strings.TrimSpace(c.Source), CalendarSourceICS) && strings.TrimSpace(c.ICSURL) != ""
}
