package markdown

import (
	"github.com/npillmayer/domtree/dom"
	"github.com/npillmayer/domtree/markdown/outline"
)

// Render parses and compiles markdown text and extracts its table of
// contents. Headings of the returned nodes carry id attributes matching
// the table of contents.
func Render(text string, opts ...Option) ([]dom.Node, *outline.TableOfContents, error) {
	src, err := Parse(text, opts...)
	if err != nil {
		return nil, nil, err
	}
	nodes, err := Compile(src, opts...)
	if err != nil {
		return nil, nil, err
	}
	toc, err := outline.Extract(nodes)
	if err != nil {
		return nil, nil, err
	}
	tracer().Debugf("rendered markdown into %d nodes", len(nodes))
	return nodes, toc, nil
}
