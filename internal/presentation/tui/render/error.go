package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tesso57/availnot/internal/domain/page"
	"github.com/tesso57/availnot/internal/presentation/tui/element"
)

// Error renders an alert with the message and, when present, a dump of the
// debug payload.
func (r *Renderer) Error(info page.ErrorInfo) {
	alert := element.New("div", "alert alert-danger", "")
	alert.Append(element.New("p", "mb-3", info.Message))

	if info.Debug != nil {
		pre := element.New("pre", "alert-pre border bg-light p-2", "")
		pre.Append(element.New("code", "text-break text-wrap", DebugDump(info.Debug)))
		alert.Append(pre)
	}

	r.show(alert)
}

// DebugDump pretty prints v as indented JSON. Map keys are sorted and struct
// fields keep declaration order, so the output is stable. HTML characters
// are written as is.
func DebugDump(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
