/*
Package outline extracts a table of contents from a document tree.

Headings of levels 2 to 6 are collected in document order; level 1 is
reserved for the document title and is never part of the outline. Every
collected heading receives an id attribute derived from its text, unless it
already carries one:

	<h2>Getting Started</h2>   →  <h2 id="getting-started">Getting Started</h2>
	<h2>Getting Started</h2>   →  <h2 id="getting-started-1">Getting Started</h2>

The flat list of headings is then nested: deeper headings become children
of the preceding shallower heading.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package outline

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/gosimple/slug"
	"github.com/npillmayer/domtree/dom"
	"github.com/npillmayer/schuko/tracing"
	"github.com/xlab/treeprint"
)

// tracer will return a tracer. We are tracing to 'domtree.outline'
func tracer() tracing.Trace {
	return tracing.Select("domtree.outline")
}

// Heading is an entry of a table of contents.
type Heading struct {
	Level    int        // 2 … 6
	ID       string     // value of the heading's id attribute
	Title    string     // text of the heading
	Children []*Heading // nested deeper headings
}

func (h *Heading) String() string {
	return fmt.Sprintf("h%d#%s %q", h.Level, h.ID, h.Title)
}

// TableOfContents is the outline of a document.
type TableOfContents struct {
	Headings []*Heading // top-level headings
}

// Extract assigns ids to the headings of a document and returns its table
// of contents. nodes are modified in place.
func Extract(nodes []dom.Node) (*TableOfContents, error) {
	hi := NewHeadingIdentifier()
	if err := dom.AcceptMut(hi, &nodes); err != nil {
		return nil, err
	}
	return FromHeadings(hi.Headings()), nil
}

// FromHeadings nests a flat list of headings. A heading becomes a child of
// the last preceding heading with a lower level, if there is one; otherwise
// it starts a new top-level entry.
func FromHeadings(headings []*Heading) *TableOfContents {
	toc := &TableOfContents{}
	for _, h := range headings {
		n := len(toc.Headings)
		if n == 0 || !insertIntoParent(toc.Headings[n-1], h) {
			toc.Headings = append(toc.Headings, h)
		}
	}
	return toc
}

func insertIntoParent(parent *Heading, h *Heading) bool {
	if parent == nil || h.Level <= parent.Level {
		return false
	}
	if h.Level == parent.Level+1 {
		parent.Children = append(parent.Children, h)
		return true
	}
	var last *Heading
	if n := len(parent.Children); n > 0 {
		last = parent.Children[n-1]
	}
	if !insertIntoParent(last, h) {
		parent.Children = append(parent.Children, h)
	}
	return true
}

// IsEmpty returns true if toc does not contain any heading.
func (toc *TableOfContents) IsEmpty() bool {
	return toc == nil || len(toc.Headings) == 0
}

// Walk calls f for every heading of toc, depth first. Walk stops if f
// returns false.
func (toc *TableOfContents) Walk(f func(h *Heading, depth int) bool) {
	if toc == nil {
		return
	}
	walk(toc.Headings, 0, f)
}

func walk(headings []*Heading, depth int, f func(*Heading, int) bool) bool {
	for _, h := range headings {
		if !f(h, depth) || !walk(h.Children, depth+1, f) {
			return false
		}
	}
	return true
}

// Flatten returns all headings of toc in document order.
func (toc *TableOfContents) Flatten() []*Heading {
	var all []*Heading
	toc.Walk(func(h *Heading, _ int) bool {
		all = append(all, h)
		return true
	})
	return all
}

// String prints toc as a tree.
func (toc *TableOfContents) String() string {
	tp := treeprint.New()
	tp.SetValue("contents")
	if toc != nil {
		addBranch(tp, toc.Headings)
	}
	return tp.String()
}

func addBranch(tp treeprint.Tree, headings []*Heading) {
	for _, h := range headings {
		if len(h.Children) == 0 {
			tp.AddMetaNode(h.ID, h.Title)
			continue
		}
		addBranch(tp.AddMetaBranch(h.ID, h.Title), h.Children)
	}
}

// --- Heading identifier ----------------------------------------------------

// HeadingIdentifier is a mutating visitor which collects the headings of a
// document and sets their id attributes.
type HeadingIdentifier struct {
	headings []*Heading
	idCounts map[string]int
	inside   bool
	hasTitle bool // a text node has been seen within the current heading
	title    strings.Builder
}

var _ dom.MutVisitor = &HeadingIdentifier{}

// NewHeadingIdentifier creates a visitor for a single document. Id
// de-duplication spans all traversals of the visitor.
func NewHeadingIdentifier() *HeadingIdentifier {
	return &HeadingIdentifier{idCounts: make(map[string]int)}
}

// Headings returns the headings collected so far, in document order and
// not nested.
func (hi *HeadingIdentifier) Headings() []*Heading {
	return hi.headings
}

func (hi *HeadingIdentifier) VisitElement(e *dom.Element) error {
	level := headingLevel(e.Tag())
	if level == 0 || hi.inside {
		return dom.WalkElementMut(hi, e)
	}
	hi.inside, hi.hasTitle = true, false
	hi.title.Reset()
	err := dom.WalkElementMut(hi, e)
	hi.inside = false
	if err != nil {
		return err
	}
	if !hi.hasTitle {
		return nil
	}
	title := hi.title.String()
	id := hi.uniqueID(Slugify(title))
	if id != "" {
		if _, ok := e.Get("id"); !ok {
			e.ID(id)
		}
	}
	id, _ = e.Get("id")
	tracer().Debugf("heading h%d id=%q title=%q", level, id, title)
	hi.headings = append(hi.headings, &Heading{
		Level: level,
		ID:    id,
		Title: title,
	})
	return nil
}

func (hi *HeadingIdentifier) VisitText(t *dom.Text) error {
	if hi.inside {
		hi.hasTitle = true
		hi.title.WriteString(t.Content)
	}
	return nil
}

func (hi *HeadingIdentifier) VisitAttr(name string, value *string) error {
	return nil
}

func (hi *HeadingIdentifier) VisitChildren(children *[]dom.Node) error {
	return dom.WalkChildrenMut(hi, children)
}

// uniqueID returns base, followed by "-n" if base has been used n times
// before.
func (hi *HeadingIdentifier) uniqueID(base string) string {
	if base == "" {
		return ""
	}
	count := hi.idCounts[base]
	hi.idCounts[base] = count + 1
	if count > 0 {
		return base + "-" + strconv.Itoa(count)
	}
	return base
}

// Slugify derives a fragment identifier from a heading title: lower case,
// runs of other characters than letters and digits replaced by a single
// '-', no leading or trailing '-'. Letters are transliterated to ASCII.
func Slugify(title string) string {
	title = strings.ReplaceAll(title, "&quot;", "")
	// symbols must not reach slug's word substitutions ('&' => "and")
	title = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) {
			return r
		}
		return ' '
	}, title)
	s := nonAlnum.ReplaceAllString(slug.Make(title), "-")
	return strings.Trim(s, "-")
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

func headingLevel(tag string) int {
	switch tag {
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}
