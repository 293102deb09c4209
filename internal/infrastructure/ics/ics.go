// Package ics reads calendar events from an iCalendar feed.
package ics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/tesso57/availnot/internal/domain/schedule"
)

// Source fetches an iCalendar feed over HTTP.
type Source struct {
	client *http.Client
	url    string
	limit  int
	now    func() time.Time
}

// New creates a Source for url returning at most limit upcoming events.
func New(client *http.Client, url string, limit int) *Source {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Source{client: client, url: strings.TrimSpace(url), limit: limit, now: time.Now}
}

// Events returns events that have not ended yet, ordered by start time.
// Recurring events are expanded up to Horizon ahead.
func (s *Source) Events(ctx context.Context) (schedule.Page, error) {
	if s.url == "" {
		return schedule.Page{}, errors.New("ics: feed URL is empty")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return schedule.Page{}, err
	}
	req.Header.Set("Accept", "text/calendar")

	resp, err := s.client.Do(req)
	if err != nil {
		return schedule.Page{}, fmt.Errorf("ics: fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return schedule.Page{}, fmt.Errorf("ics: fetch: %s", resp.Status)
	}

	entries, err := Parse(resp.Body)
	if err != nil {
		return schedule.Page{}, err
	}
	now := s.now()
	return Upcoming(Expand(entries, now, now.Add(Horizon)), now, s.limit), nil
}

// Entry is a VEVENT before recurrence expansion.
type Entry struct {
	Event schedule.Event
	// RRule is the raw RRULE value, empty for single events.
	RRule   string
	ExDates []time.Time
	// RecurrenceID is set on an edited instance of a recurring event.
	RecurrenceID *time.Time

	zone *time.Location
}

// Parse reads every VEVENT of an iCalendar payload. Events without a UID or
// a readable DTSTART are skipped.
func Parse(r io.Reader) ([]Entry, error) {
	cal, err := ical.ParseCalendar(r)
	if err != nil {
		return nil, fmt.Errorf("ics: parse: %w", err)
	}

	entries := make([]Entry, 0)
	for _, ve := range cal.Events() {
		entry, err := parseEntry(ve)
		if err != nil {
			slog.Debug("ics event skipped", "error", err)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func parseEntry(ve *ical.VEvent) (Entry, error) {
	var out Entry

	uid := ve.GetProperty(ical.ComponentPropertyUniqueId)
	if uid == nil || uid.Value == "" {
		return out, errors.New("missing UID")
	}
	out.Event.ID = uid.Value

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		out.Event.Subject = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyOrganizer); p != nil {
		out.Event.Organizer = organizerName(p)
	}

	start, err := ve.GetStartAt()
	if err != nil {
		return out, fmt.Errorf("event %s: %w", out.Event.ID, err)
	}
	end, err := ve.GetEndAt()
	if err != nil {
		end = start
	}
	out.zone = start.Location()
	out.Event.Start = start.UTC()
	out.Event.End = end.UTC()

	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		out.RRule = strings.TrimSpace(p.Value)
	}
	for _, p := range ve.GetProperties(ical.ComponentPropertyExdate) {
		for _, part := range strings.Split(p.Value, ",") {
			if t, err := parseTime(part, paramZone(p, out.zone)); err == nil {
				out.ExDates = append(out.ExDates, t)
			}
		}
	}
	if p := ve.GetProperty("RECURRENCE-ID"); p != nil {
		if t, err := parseTime(p.Value, paramZone(p, out.zone)); err == nil {
			out.RecurrenceID = &t
		}
	}
	return out, nil
}

func paramZone(p *ical.IANAProperty, fallback *time.Location) *time.Location {
	if tzid, ok := p.ICalParameters["TZID"]; ok && len(tzid) > 0 {
		if loc, err := time.LoadLocation(tzid[0]); err == nil {
			return loc
		}
	}
	return fallback
}

func parseTime(v string, loc *time.Location) (time.Time, error) {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		return time.Time{}, errors.New("empty time value")
	case strings.HasSuffix(v, "Z"):
		return time.Parse("20060102T150405Z", v)
	case strings.Contains(v, "T"):
		return time.ParseInLocation("20060102T150405", v, loc)
	default:
		return time.ParseInLocation("20060102", v, loc)
	}
}

func organizerName(p *ical.IANAProperty) string {
	if cn, ok := p.ICalParameters[string(ical.ParameterCn)]; ok && len(cn) > 0 && cn[0] != "" {
		return strings.Trim(cn[0], `"`)
	}
	value := p.Value
	if len(value) >= len("mailto:") && strings.EqualFold(value[:len("mailto:")], "mailto:") {
		value = value[len("mailto:"):]
	}
	return value
}

// Upcoming keeps events ending after now, sorted by start, capped at limit
// when limit is positive.
func Upcoming(events []schedule.Event, now time.Time, limit int) schedule.Page {
	kept := make([]schedule.Event, 0, len(events))
	for _, ev := range events {
		if ev.End.Before(now) {
			continue
		}
		kept = append(kept, ev)
	}
	slices.SortStableFunc(kept, func(a, b schedule.Event) int {
		return a.Start.Compare(b.Start)
	})
	if limit > 0 && len(kept) > limit {
		kept = kept[:limit]
	}
	return schedule.Page{Value: kept}
}
