// Package element provides the node tree that views render into.
package element

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// TextTag is the tag of text nodes.
const TextTag = "#text"

// KeyAttr is the attribute that keys repeated rows.
const KeyAttr = "key"

// Node is a detached UI node. It has no effect on any region until attached.
type Node struct {
	Tag   string
	Class string
	// Data holds the content of text nodes.
	Data string
	// Color is an optional fill color hint (hex RGB).
	Color string
	// OnActivate runs when the node is activated (buttons and links).
	OnActivate tea.Cmd

	attrs    map[string]string
	children []*Node
}

// New builds a node of the given tag. A non-empty class is assigned, and
// non-empty text is appended as a single text child.
func New(tag, class, text string) *Node {
	n := &Node{Tag: tag, Class: class}
	if text != "" {
		n.children = append(n.children, Text(text))
	}
	return n
}

// Text builds a text node.
func Text(s string) *Node {
	return &Node{Tag: TextTag, Data: s}
}

// Append attaches children and returns n.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.children = append(n.children, c)
		}
	}
	return n
}

// Children returns the direct children of n.
func (n *Node) Children() []*Node {
	return n.children
}

// SetAttr sets an attribute and returns n.
func (n *Node) SetAttr(key, value string) *Node {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[key] = value
	return n
}

// Attr returns the attribute value for key.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

// AttrKeys returns attribute names in sorted order.
func (n *Node) AttrKeys() []string {
	return slices.Sorted(maps.Keys(n.attrs))
}

// Bind sets the activation callback and returns n.
func (n *Node) Bind(cmd tea.Cmd) *Node {
	n.OnActivate = cmd
	return n
}

// IsText reports whether n is a text node.
func (n *Node) IsText() bool {
	return n.Tag == TextTag
}

// HasClass reports whether the class list of n contains class.
func (n *Node) HasClass(class string) bool {
	return slices.Contains(strings.Fields(n.Class), class)
}

// Text returns the concatenated text content of n and its descendants.
func (n *Node) Text() string {
	if n.IsText() {
		return n.Data
	}
	var b strings.Builder
	for _, c := range n.children {
		b.WriteString(c.Text())
	}
	return b.String()
}

// Walk visits n and its descendants depth-first. Returning false from fn
// skips the children of the visited node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// FindAll returns every node in the subtree that matches pred, in document order.
func (n *Node) FindAll(pred func(*Node) bool) []*Node {
	var out []*Node
	n.Walk(func(c *Node) bool {
		if pred(c) {
			out = append(out, c)
		}
		return true
	})
	return out
}

// Find returns the first node in the subtree that matches pred.
func (n *Node) Find(pred func(*Node) bool) *Node {
	found := n.FindAll(pred)
	if len(found) == 0 {
		return nil
	}
	return found[0]
}

// Actionable returns the nodes with an activation callback, in document order.
func (n *Node) Actionable() []*Node {
	return n.FindAll(func(c *Node) bool { return c.OnActivate != nil })
}

// ByTag matches nodes by tag.
func ByTag(tag string) func(*Node) bool {
	return func(n *Node) bool { return n.Tag == tag }
}

// ByClass matches nodes carrying class.
func ByClass(class string) func(*Node) bool {
	return func(n *Node) bool { return n.HasClass(class) }
}

// Outline returns a canonical one-line description of the subtree.
// Two trees with the same structure, attributes and text have the same outline.
func (n *Node) Outline() string {
	var b strings.Builder
	n.outline(&b)
	return b.String()
}

func (n *Node) outline(b *strings.Builder) {
	if n.IsText() {
		b.WriteString(strconv.Quote(n.Data))
		return
	}
	b.WriteString(n.Tag)
	if n.Class != "" {
		b.WriteString("." + strings.Join(strings.Fields(n.Class), "."))
	}
	for _, k := range n.AttrKeys() {
		b.WriteString("[" + k + "=" + n.attrs[k] + "]")
	}
	if n.Color != "" {
		b.WriteString("{" + n.Color + "}")
	}
	if n.OnActivate != nil {
		b.WriteString("@")
	}
	if len(n.children) == 0 {
		return
	}
	b.WriteString("(")
	for i, c := range n.children {
		if i > 0 {
			b.WriteString(" ")
		}
		c.outline(b)
	}
	b.WriteString(")")
}
