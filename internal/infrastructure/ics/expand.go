package ics

import (
	"log/slog"
	"time"

	"github.com/teambition/rrule-go"
	"github.com/tesso57/availnot/internal/domain/schedule"
)

// Horizon is how far ahead recurring events are expanded.
const Horizon = 30 * 24 * time.Hour

const maxOccurrences = 500

// Expand turns entries into concrete events. Single events pass through
// unchanged. Recurring events yield one event per occurrence overlapping
// [from, to), minus EXDATEs and instances replaced by an edited copy.
// Expanded instances are keyed "<uid>@<start in UTC>". An edited instance
// keeps the key of the slot it replaces, its RECURRENCE-ID, even when it was
// moved to another time.
func Expand(entries []Entry, from, to time.Time) []schedule.Event {
	edited := make(map[string][]time.Time)
	for _, e := range entries {
		if e.RecurrenceID != nil {
			edited[e.Event.ID] = append(edited[e.Event.ID], *e.RecurrenceID)
		}
	}

	out := make([]schedule.Event, 0, len(entries))
	for _, e := range entries {
		switch {
		case e.RecurrenceID != nil:
			ev := e.Event
			ev.ID = instanceID(e.Event.ID, *e.RecurrenceID)
			out = append(out, ev)
		case e.RRule != "":
			out = append(out, occurrences(e, edited[e.Event.ID], from, to)...)
		default:
			out = append(out, e.Event)
		}
	}
	return out
}

func occurrences(e Entry, skip []time.Time, from, to time.Time) []schedule.Event {
	r, err := rrule.StrToRRule(e.RRule)
	if err != nil {
		slog.Warn("ics rrule skipped", "uid", e.Event.ID, "rrule", e.RRule, "error", err)
		return nil
	}
	zone := e.zone
	if zone == nil {
		zone = time.UTC
	}
	r.DTStart(e.Event.Start.In(zone))

	var set rrule.Set
	set.RRule(r)
	for _, t := range e.ExDates {
		set.ExDate(t.In(zone))
	}
	for _, t := range skip {
		set.ExDate(t.In(zone))
	}

	duration := e.Event.End.Sub(e.Event.Start)
	starts := set.Between(from.Add(-duration).In(zone), to.In(zone), true)
	if len(starts) > maxOccurrences {
		starts = starts[:maxOccurrences]
	}

	out := make([]schedule.Event, 0, len(starts))
	for _, start := range starts {
		ev := e.Event
		ev.ID = instanceID(e.Event.ID, start)
		ev.Start = start.UTC()
		ev.End = start.Add(duration).UTC()
		out = append(out, ev)
	}
	return out
}

func instanceID(uid string, start time.Time) string {
	return uid + "@" + start.UTC().Format("20060102T150405Z")
}
