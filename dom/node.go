package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Node is a node of a document tree. It is either a *Text or an *Element;
// there are no other implementations.
type Node interface {
	fmt.Stringer
	isNode()
}

// --- Text ------------------------------------------------------------------

// Text is a text node. If Safe is set, Content is already escaped and will be
// written by renderers without modification.
type Text struct {
	Content string
	Safe    bool
}

// NewText creates a text node which will be escaped on output.
func NewText(s string) *Text {
	return &Text{Content: s}
}

// Raw creates a pre-escaped text node. Renderers will output s verbatim, so
// s must be trusted markup (e.g., syntax-highlighted code).
func Raw(s string) *Text {
	return &Text{Content: s, Safe: true}
}

func (t *Text) isNode() {}

func (t *Text) String() string {
	if t.Safe {
		return fmt.Sprintf("(raw %q)", t.Content)
	}
	return fmt.Sprintf("(text %q)", t.Content)
}

// --- Element ---------------------------------------------------------------

// Element is an HTML element with a tag name, attributes and children.
//
// Attributes are kept in order of first insertion. Setting an attribute which
// is already present replaces its value in place.
type Element struct {
	tag      string
	attrs    []html.Attribute
	children []Node
}

// NewElement creates an element without attributes and without children.
// The tag name is not validated.
func NewElement(tag string) *Element {
	return &Element{tag: tag}
}

func (e *Element) isNode() {}

func (e *Element) String() string {
	return fmt.Sprintf("(<%s> #attr=%d #ch=%d)", e.tag, len(e.attrs), len(e.children))
}

// Tag returns the tag name of e.
func (e *Element) Tag() string {
	return e.tag
}

// IsVoid returns true if e is a void element (see function IsVoid).
func (e *Element) IsVoid() bool {
	return IsVoid(e.tag)
}

// Get returns the value of attribute name, if present.
func (e *Element) Get(name string) (string, bool) {
	if i := e.attrIndex(name); i >= 0 {
		return e.attrs[i].Val, true
	}
	return "", false
}

// Attrs returns a copy of the attributes of e, in order.
func (e *Element) Attrs() []html.Attribute {
	if len(e.attrs) == 0 {
		return nil
	}
	attrs := make([]html.Attribute, len(e.attrs))
	copy(attrs, e.attrs)
	return attrs
}

// Children returns the children of e. Clients must not modify the returned
// slice; use a MutVisitor to rewrite children.
func (e *Element) Children() []Node {
	return e.children
}

// Len returns the number of children of e.
func (e *Element) Len() int {
	return len(e.children)
}

// TextContent returns the text of all text nodes below e, concatenated in
// document order. Element structure is ignored.
func (e *Element) TextContent() string {
	var sb strings.Builder
	collectText(&sb, e.children)
	return sb.String()
}

func collectText(sb *strings.Builder, nodes []Node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *Text:
			sb.WriteString(n.Content)
		case *Element:
			collectText(sb, n.children)
		}
	}
}

func (e *Element) attrIndex(name string) int {
	for i := range e.attrs {
		if e.attrs[i].Key == name {
			return i
		}
	}
	return -1
}

// --- Void elements ---------------------------------------------------------

var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {}, "img": {},
	"input": {}, "link": {}, "meta": {}, "param": {}, "source": {}, "track": {}, "wbr": {},
}

// IsVoid is a predicate for void elements, i.e. elements which never have
// children and never have a closing tag. Matching is exact (case sensitive).
//
// See https://developer.mozilla.org/en-US/docs/Glossary/Void_element
func IsVoid(tag string) bool {
	_, ok := voidElements[tag]
	return ok
}
