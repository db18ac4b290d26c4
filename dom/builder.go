package dom

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/domtree/maybe"
	"golang.org/x/net/html"
)

// Component is implemented by client types which know how to present
// themselves as an element. Components may be passed to Element.Child.
type Component interface {
	Element() *Element
}

// Attr sets attribute name to the value of v. If v is Nothing, the attribute
// is removed, as it is for a nil v. An attribute which is already present
// keeps its position. It returns e to allow for chaining.
func (e *Element) Attr(name string, v maybe.Maybe[string]) *Element {
	if v == nil {
		return e.RemoveAttr(name)
	}
	if value, ok := v.Get(); ok {
		return e.SetAttr(name, value)
	}
	return e.RemoveAttr(name)
}

// SetAttr sets attribute name to value. An empty value is a valid value and
// renders as a boolean attribute. It returns e to allow for chaining.
func (e *Element) SetAttr(name, value string) *Element {
	if i := e.attrIndex(name); i >= 0 {
		e.attrs[i].Val = value
		return e
	}
	e.attrs = append(e.attrs, html.Attribute{Key: name, Val: value})
	return e
}

// RemoveAttr removes attribute name, if present. The order of the remaining
// attributes is preserved. It returns e to allow for chaining.
func (e *Element) RemoveAttr(name string) *Element {
	if i := e.attrIndex(name); i >= 0 {
		e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
	}
	return e
}

// Child appends children to e. Arguments may be
//
//   - strings, which are appended as (escaped) text nodes,
//   - nodes (*Element or *Text),
//   - slices of nodes,
//   - Components.
//
// nil arguments are ignored. Any other argument type is a programming error
// and Child will panic.
// It returns e to allow for chaining.
func (e *Element) Child(children ...any) *Element {
	for _, c := range children {
		e.children = appendChild(e.children, c)
	}
	return e
}

func appendChild(nodes []Node, c any) []Node {
	switch c := c.(type) {
	case nil:
		return nodes
	case string:
		return append(nodes, NewText(c))
	case *Text:
		if c == nil {
			return nodes
		}
		return append(nodes, c)
	case *Element:
		if c == nil {
			return nodes
		}
		return append(nodes, c)
	case []Node:
		for _, n := range c {
			nodes = appendChild(nodes, n)
		}
		return nodes
	case []*Element:
		for _, n := range c {
			nodes = appendChild(nodes, n)
		}
		return nodes
	case Component:
		return appendChild(nodes, c.Element())
	}
	tracer().Errorf("cannot append child of type %T", c)
	panic(fmt.Sprintf("dom: cannot append child of type %T", c))
}

// With calls f with e and returns e. It is useful for conditional steps
// within a builder chain:
//
//	dom.Pre().With(func(pre *dom.Element) {
//		if lang != "" {
//			pre.Class("language-" + lang)
//		}
//	})
func (e *Element) With(f func(*Element)) *Element {
	if f != nil {
		f(e)
	}
	return e
}

// --- Attribute helpers -----------------------------------------------------

// ID sets attribute "id".
func (e *Element) ID(v string) *Element { return e.SetAttr("id", v) }

// Class sets attribute "class".
func (e *Element) Class(v string) *Element { return e.SetAttr("class", v) }

// Href sets attribute "href".
func (e *Element) Href(v string) *Element { return e.SetAttr("href", v) }

// Src sets attribute "src".
func (e *Element) Src(v string) *Element { return e.SetAttr("src", v) }

// Alt sets attribute "alt".
func (e *Element) Alt(v string) *Element { return e.SetAttr("alt", v) }

// Title sets attribute "title".
func (e *Element) Title(v string) *Element { return e.SetAttr("title", v) }

// Lang sets attribute "lang".
func (e *Element) Lang(v string) *Element { return e.SetAttr("lang", v) }

// Rel sets attribute "rel".
func (e *Element) Rel(v string) *Element { return e.SetAttr("rel", v) }

// Role sets attribute "role".
func (e *Element) Role(v string) *Element { return e.SetAttr("role", v) }

// Name sets attribute "name".
func (e *Element) Name(v string) *Element { return e.SetAttr("name", v) }

// Content sets attribute "content".
func (e *Element) Content(v string) *Element { return e.SetAttr("content", v) }

// Charset sets attribute "charset".
func (e *Element) Charset(v string) *Element { return e.SetAttr("charset", v) }

// Style sets attribute "style".
func (e *Element) Style(v string) *Element { return e.SetAttr("style", v) }

// Translate sets attribute "translate".
func (e *Element) Translate(v string) *Element { return e.SetAttr("translate", v) }

// HTTPEquiv sets attribute "http-equiv".
func (e *Element) HTTPEquiv(v string) *Element { return e.SetAttr("http-equiv", v) }

// Defer sets boolean attribute "defer".
func (e *Element) Defer() *Element { return e.SetAttr("defer", "") }

// Async sets boolean attribute "async".
func (e *Element) Async() *Element { return e.SetAttr("async", "") }

// Start sets attribute "start" of ordered lists.
func (e *Element) Start(n int) *Element { return e.SetAttr("start", strconv.Itoa(n)) }

// TabIndex sets attribute "tabindex".
func (e *Element) TabIndex(n int) *Element { return e.SetAttr("tabindex", strconv.Itoa(n)) }
