package render

import (
	"github.com/tesso57/availnot/internal/domain/schedule"
	"github.com/tesso57/availnot/internal/presentation/tui/element"
)

// CalendarColumns are the header labels of the calendar table.
var CalendarColumns = []string{"Organizer", "Subject", "Start", "End"}

// Calendar renders events as a table, one row per event in input order.
func (r *Renderer) Calendar(events schedule.Page) {
	div := element.New("div", "", "")
	div.Append(element.New("h1", "", "Calendar"))

	table := element.New("table", "table", "")
	div.Append(table)

	headerRow := element.New("tr", "", "")
	for _, label := range CalendarColumns {
		headerRow.Append(element.New("th", "", label).SetAttr("scope", "col"))
	}
	table.Append(element.New("thead", "", "").Append(headerRow))

	tbody := element.New("tbody", "", "")
	for _, ev := range events.Value {
		row := element.New("tr", "", "").SetAttr(element.KeyAttr, ev.ID)
		row.Append(
			element.New("td", "", ev.Organizer),
			element.New("td", "", ev.Subject),
			element.New("td", "", schedule.FormatLocal(ev.Start, r.loc)),
			element.New("td", "", schedule.FormatLocal(ev.End, r.loc)),
		)
		tbody.Append(row)
	}
	table.Append(tbody)

	r.show(div)
}
