// Package schedule defines calendar payloads shown by the calendar view.
package schedule

import "time"

// DisplayLayout renders timestamps as M/D/YY h:mm A.
const DisplayLayout = "1/2/06 3:04 PM"

// Event is a single calendar entry. Start and End are stored in UTC.
type Event struct {
	ID        string
	Organizer string
	Subject   string
	Start     time.Time
	End       time.Time
}

// Page is an ordered list of events as returned by a calendar source.
// Order is preserved by every consumer.
type Page struct {
	Value []Event
}

// Len returns the number of events in the page.
func (p Page) Len() int {
	return len(p.Value)
}

// FormatLocal converts t from UTC into loc and formats it with DisplayLayout.
func FormatLocal(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.UTC().In(loc).Format(DisplayLayout)
}
