package domtree

import (
	"github.com/npillmayer/domtree/dom"
	"github.com/npillmayer/domtree/dom/render"
	"github.com/npillmayer/domtree/markdown"
	"github.com/npillmayer/domtree/markdown/outline"
)

// Render returns the markup for a sequence of nodes.
func Render(nodes ...dom.Node) (string, error) {
	return render.String(nodes...)
}

// RenderMarkdown compiles markdown text and renders the result. Headings
// of the markup carry the ids listed in the table of contents.
func RenderMarkdown(text string, opts ...markdown.Option) (string, *outline.TableOfContents, error) {
	nodes, toc, err := markdown.Render(text, opts...)
	if err != nil {
		return "", nil, err
	}
	s, err := render.String(nodes...)
	if err != nil {
		return "", nil, err
	}
	tracer().Debugf("rendered %d bytes of markdown to %d bytes of HTML", len(text), len(s))
	return s, toc, nil
}
