package render

import (
	"github.com/tesso57/availnot/internal/domain/presence"
	"github.com/tesso57/availnot/internal/presentation/tui/element"
)

// IndicatorClass marks the presence light node.
const IndicatorClass = "presence-light"

// Presence renders availability, activity and a colored indicator.
func (r *Renderer) Presence(status presence.Status) {
	div := element.New("div", "", "")
	div.Append(element.New("h1", "", "Teams presence"))
	div.Append(element.New("p", "", "Availability : "+status.Availability))
	div.Append(element.New("p", "", "Activity : "+status.Activity))

	color := string(status.Color())
	light := element.New("div", IndicatorClass, "")
	light.Color = color
	light.SetAttr("data-color", color)
	div.Append(light)

	r.show(div)
}
