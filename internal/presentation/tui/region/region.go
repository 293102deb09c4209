// Package region provides the addressable containers views render into.
package region

import (
	"strings"

	"github.com/tesso57/availnot/internal/presentation/tui/element"
)

// Well-known region identifiers.
const (
	MainID             = "main-container"
	AccountNavID       = "account-nav"
	AuthenticatedNavID = "authenticated-nav"
)

// Region is a render target. Every Replace discards the previous content.
// A Region is not safe for concurrent use; the UI loop serializes access.
type Region struct {
	id       string
	class    string
	children []*element.Node
}

// New creates an empty region.
func New(id string) *Region {
	return &Region{id: id}
}

// ID returns the region identifier.
func (r *Region) ID() string {
	return r.id
}

// Class returns the region class list.
func (r *Region) Class() string {
	return r.class
}

// SetClass replaces the region class list.
func (r *Region) SetClass(class string) {
	r.class = class
}

// Replace swaps the entire content of the region for nodes.
func (r *Region) Replace(nodes ...*element.Node) {
	kept := make([]*element.Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			kept = append(kept, n)
		}
	}
	r.children = kept
}

// Clear empties the region.
func (r *Region) Clear() {
	r.children = nil
}

// Children returns the top-level nodes of the region.
func (r *Region) Children() []*element.Node {
	return r.children
}

// Empty reports whether the region holds no nodes.
func (r *Region) Empty() bool {
	return len(r.children) == 0
}

// Actionable returns every node with an activation callback, in document order.
func (r *Region) Actionable() []*element.Node {
	var out []*element.Node
	for _, c := range r.children {
		out = append(out, c.Actionable()...)
	}
	return out
}

// Outline returns a canonical description of the region content.
func (r *Region) Outline() string {
	parts := make([]string, 0, len(r.children))
	for _, c := range r.children {
		parts = append(parts, c.Outline())
	}
	return r.id + "." + r.class + "[" + strings.Join(parts, " ") + "]"
}
