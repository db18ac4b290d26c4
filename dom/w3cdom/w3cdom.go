/*
Package w3cdom converts between document trees and the node model of
golang.org/x/net/html.

Conversion lets clients parse existing HTML into a document tree, and
hand document trees to tools operating on W3C-style nodes.

See also https://www.w3schools.com/XML/dom_intro.asp

# Status

Early draft, API may change frequently. Please stay patient.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package w3cdom

import (
	"io"

	"github.com/npillmayer/domtree/dom"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer will return a tracer. We are tracing to 'domtree.dom'
func tracer() tracing.Trace {
	return tracing.Select("domtree.dom")
}

// ToHTML converts a document node and its sub-tree to an HTML node.
// Text marked as safe becomes a raw node, which is rendered verbatim by
// html.Render. Children of void elements are dropped.
func ToHTML(n dom.Node) *html.Node {
	switch n := n.(type) {
	case *dom.Text:
		if n.Safe {
			return &html.Node{Type: html.RawNode, Data: n.Content}
		}
		return &html.Node{Type: html.TextNode, Data: n.Content}
	case *dom.Element:
		h := &html.Node{
			Type:     html.ElementNode,
			Data:     n.Tag(),
			DataAtom: atom.Lookup([]byte(n.Tag())),
			Attr:     n.Attrs(),
		}
		if n.IsVoid() {
			return h
		}
		for _, ch := range n.Children() {
			h.AppendChild(ToHTML(ch))
		}
		return h
	}
	return nil
}

// FromHTML converts an HTML node and its sub-tree to document nodes.
// Document nodes contribute their children. Comments and doctype
// declarations are dropped. The text content of raw text elements, like
// script and style, is kept as safe text.
func FromHTML(h *html.Node) []dom.Node {
	switch h.Type {
	case html.TextNode:
		return []dom.Node{dom.NewText(h.Data)}
	case html.RawNode:
		return []dom.Node{dom.Raw(h.Data)}
	case html.DocumentNode:
		return fromChildren(h)
	case html.ElementNode:
		e := dom.NewElement(h.Data)
		for _, a := range h.Attr {
			key := a.Key
			if a.Namespace != "" {
				key = a.Namespace + ":" + a.Key
			}
			e.SetAttr(key, a.Val)
		}
		if isRawText(h) {
			var text []dom.Node
			for c := h.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.TextNode || c.Type == html.RawNode {
					text = append(text, dom.Raw(c.Data))
				}
			}
			return []dom.Node{e.Child(text)}
		}
		return []dom.Node{e.Child(fromChildren(h))}
	}
	tracer().Debugf("w3cdom: dropping HTML node of type %d", h.Type)
	return nil
}

// isRawText is true for elements whose content the HTML parser does not
// unescape.
func isRawText(h *html.Node) bool {
	if h.Namespace != "" {
		return false
	}
	switch h.DataAtom {
	case atom.Script, atom.Style, atom.Xmp, atom.Iframe, atom.Noembed, atom.Noframes:
		return true
	}
	return false
}

func fromChildren(h *html.Node) []dom.Node {
	var nodes []dom.Node
	for c := h.FirstChild; c != nil; c = c.NextSibling {
		nodes = append(nodes, FromHTML(c)...)
	}
	return nodes
}

// Parse reads a complete HTML document. The result has a single html
// element, which includes head and body as created by the HTML5 parsing
// algorithm.
func Parse(r io.Reader) ([]dom.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return FromHTML(doc), nil
}

// ParseFragment reads an HTML fragment as if it were the content of a body
// element.
func ParseFragment(r io.Reader) ([]dom.Node, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	frags, err := html.ParseFragment(r, body)
	if err != nil {
		return nil, err
	}
	var nodes []dom.Node
	for _, f := range frags {
		nodes = append(nodes, FromHTML(f)...)
	}
	return nodes, nil
}

// Render writes nodes using the renderer of golang.org/x/net/html.
func Render(w io.Writer, nodes ...dom.Node) error {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if err := html.Render(w, ToHTML(n)); err != nil {
			return err
		}
	}
	return nil
}
