package render

import (
	"io"
	"strings"

	"github.com/npillmayer/domtree/dom"
)

// Doctype is written in front of every element named "html".
const Doctype = "<!DOCTYPE html>"

// Renderer writes HTML for document trees. It implements dom.Visitor.
//
// A Renderer either accumulates output in an internal buffer (see New) or
// writes to a client supplied io.Writer (see NewWriter). The first write
// error stops rendering and is returned from Render.
type Renderer struct {
	w   io.Writer
	buf *strings.Builder
	err error
}

var _ dom.Visitor = &Renderer{}

// New creates a renderer which accumulates its output, see HTML.
func New() *Renderer {
	sb := &strings.Builder{}
	return &Renderer{w: sb, buf: sb}
}

// NewWriter creates a renderer which writes to w.
func NewWriter(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Render writes nodes in order. Rendering stops at the first write error.
func (r *Renderer) Render(nodes ...dom.Node) error {
	if r.err != nil {
		return r.err
	}
	err := dom.Accept(r, nodes...)
	if err != nil {
		tracer().Errorf("rendering failed: %v", err)
	}
	return err
}

// HTML returns the accumulated output of a renderer created by New. For
// renderers writing to an external writer, HTML returns the empty string.
func (r *Renderer) HTML() string {
	if r.buf == nil {
		return ""
	}
	return r.buf.String()
}

// Reset clears the accumulated output and any sticky error.
func (r *Renderer) Reset() {
	if r.buf != nil {
		r.buf.Reset()
	}
	r.err = nil
}

// VisitElement writes e with its attributes and children.
func (r *Renderer) VisitElement(e *dom.Element) error {
	tag := e.Tag()
	if tag == "html" {
		r.write(Doctype)
	}
	r.write("<")
	r.write(tag)
	for _, a := range e.Attrs() {
		if err := r.VisitAttr(a.Key, a.Val); err != nil {
			return err
		}
	}
	r.write(">")
	if dom.IsVoid(tag) {
		return r.err
	}
	if err := r.VisitChildren(e.Children()); err != nil {
		return err
	}
	r.write("</")
	r.write(tag)
	r.write(">")
	return r.err
}

// VisitText writes a text node, escaping it unless it is safe.
func (r *Renderer) VisitText(text string, safe bool) error {
	if safe {
		r.write(text)
	} else {
		r.write(EscapeBody(text))
	}
	return r.err
}

// VisitAttr writes a single attribute. An empty value is written without
// '=' and quotes.
func (r *Renderer) VisitAttr(name, value string) error {
	r.write(" ")
	r.write(name)
	if value != "" {
		r.write(`="`)
		r.write(EscapeAttr(value))
		r.write(`"`)
	}
	return r.err
}

// VisitChildren writes children in order.
func (r *Renderer) VisitChildren(children []dom.Node) error {
	return dom.WalkChildren(r, children)
}

func (r *Renderer) write(s string) {
	if r.err != nil {
		return
	}
	_, r.err = io.WriteString(r.w, s)
}

// --- Conveniences ----------------------------------------------------------

// String renders nodes to a string.
func String(nodes ...dom.Node) (string, error) {
	r := New()
	if err := r.Render(nodes...); err != nil {
		return "", err
	}
	return r.HTML(), nil
}

// Write renders nodes to w.
func Write(w io.Writer, nodes ...dom.Node) error {
	return NewWriter(w).Render(nodes...)
}
