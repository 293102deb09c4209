// Package presence defines Teams presence payloads and their indicator colors.
package presence

// Availability values reported by Microsoft Graph.
const (
	Available       = "Available"
	AvailableIdle   = "AvailableIdle"
	Busy            = "Busy"
	BusyIdle        = "BusyIdle"
	DoNotDisturb    = "DoNotDisturb"
	Away            = "Away"
	BeRightBack     = "BeRightBack"
	PresenceUnknown = "PresenceUnknown"
	Offline         = "Offline"
)

// Status is the current presence of the signed-in user.
type Status struct {
	Availability string `json:"availability"`
	Activity     string `json:"activity"`
}

// Color is a hex RGB color used by the presence indicator.
type Color string

// Indicator colors.
const (
	Green  Color = "#008000"
	Red    Color = "#ff0000"
	Yellow Color = "#ffff00"
	Grey   Color = "#808080"
	Purple Color = "#800080"
	Pink   Color = "#ffc0cb"
)

// ColorFor maps an availability value to its indicator color.
// Unknown values map to Pink.
func ColorFor(availability string) Color {
	switch availability {
	case Available, AvailableIdle:
		return Green
	case Busy, BusyIdle, DoNotDisturb:
		return Red
	case Away, BeRightBack:
		return Yellow
	case PresenceUnknown:
		return Grey
	case Offline:
		return Purple
	default:
		return Pink
	}
}

// Color returns the indicator color of s.
func (s Status) Color() Color {
	return ColorFor(s.Availability)
}
