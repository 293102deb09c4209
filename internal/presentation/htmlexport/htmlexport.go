// Package htmlexport writes the rendered page regions as an HTML document.
package htmlexport

import (
	"fmt"
	"io"

	"github.com/tesso57/availnot/internal/presentation/tui/controller"
	"github.com/tesso57/availnot/internal/presentation/tui/element"
	"github.com/tesso57/availnot/internal/presentation/tui/region"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Write renders the regions into a standalone document.
func Write(w io.Writer, title string, regions controller.Regions) error {
	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return fmt.Errorf("write doctype: %w", err)
	}
	if err := html.Render(w, Document(title, regions)); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// Document builds the page: a navbar holding both navigation regions
// followed by the main container.
func Document(title string, regions controller.Regions) *html.Node {
	root := elem("html", "")
	head := elem("head", "")
	head.AppendChild(withAttr(elem("meta", ""), "charset", "utf-8"))
	titleNode := elem("title", "")
	titleNode.AppendChild(text(title))
	head.AppendChild(titleNode)
	root.AppendChild(head)

	body := elem("body", "")
	nav := elem("nav", "navbar navbar-expand-md navbar-dark fixed-top bg-dark")
	brand := elem("span", "navbar-brand")
	brand.AppendChild(text(title))
	nav.AppendChild(brand)

	nav.AppendChild(fromRegion("ul", "navbar-nav mr-auto", regions.AuthenticatedNav))
	account := elem("ul", "navbar-nav justify-content-end")
	account.AppendChild(fromRegion("li", "", regions.AccountNav))
	nav.AppendChild(account)
	body.AppendChild(nav)

	body.AppendChild(fromRegion("main", "container", regions.Main))
	root.AppendChild(body)
	return root
}

func fromRegion(tag, class string, r *region.Region) *html.Node {
	if r.Class() != "" {
		class = r.Class()
	}
	n := withAttr(elem(tag, class), "id", r.ID())
	for _, child := range r.Children() {
		n.AppendChild(Node(child))
	}
	return n
}

// Node converts one element subtree.
func Node(e *element.Node) *html.Node {
	if e.IsText() {
		return text(e.Data)
	}

	n := elem(e.Tag, e.Class)
	for _, key := range e.AttrKeys() {
		v, _ := e.Attr(key)
		withAttr(n, key, v)
	}
	if e.Color != "" {
		withAttr(n, "style", fmt.Sprintf("width: 56px; height: 56px; background-color: %s;", e.Color))
	}
	if e.OnActivate != nil && e.Tag == "button" {
		withAttr(n, "type", "button")
	}
	for _, child := range e.Children() {
		n.AppendChild(Node(child))
	}
	return n
}

func elem(tag, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
	if class != "" {
		withAttr(n, "class", class)
	}
	return n
}

func withAttr(n *html.Node, key, value string) *html.Node {
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
