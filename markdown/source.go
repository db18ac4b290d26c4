package markdown

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Parse parses markdown text and returns its events. Only the parser
// related options are considered (tables, footnotes, strikethrough, task
// lists, heading attributes and linkify).
//
// Parsing markdown never fails; the error return is reserved for failures
// while flattening the syntax tree.
func Parse(source string, opts ...Option) (EventSource, error) {
	o := newOptions(opts)
	src := []byte(source)
	doc := newParser(o).Parser().Parse(text.NewReader(src))
	fl := &flattener{
		source:    src,
		footnotes: make(map[int]string),
	}
	if err := fl.flatten(doc); err != nil {
		return nil, err
	}
	tracer().Debugf("parsed markdown into %d events", len(fl.events))
	return Events(fl.events...), nil
}

func newParser(o *options) goldmark.Markdown {
	var exts []goldmark.Extender
	if o.tables {
		exts = append(exts, extension.Table)
	}
	if o.footnotes {
		exts = append(exts, extension.Footnote)
	}
	if o.strikethrough {
		exts = append(exts, extension.Strikethrough)
	}
	if o.tasklists {
		exts = append(exts, extension.TaskList)
	}
	if o.linkify {
		exts = append(exts, extension.Linkify)
	}
	var popts []parser.Option
	if o.headingAttributes {
		popts = append(popts, parser.WithHeadingAttribute())
	}
	return goldmark.New(
		goldmark.WithExtensions(exts...),
		goldmark.WithParserOptions(popts...),
	)
}

// flattener turns a goldmark syntax tree into a sequence of events, i.e.
// entering a container produces a Start event and leaving it an End event.
type flattener struct {
	source    []byte
	events    []Event
	footnotes map[int]string // footnote index → label
}

func (fl *flattener) emit(ev Event) {
	fl.events = append(fl.events, ev)
}

func (fl *flattener) flatten(doc ast.Node) error {
	// footnote references only know the index of their definition
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if fn, ok := n.(*east.Footnote); ok && entering {
			fl.footnotes[fn.Index] = string(fn.Ref)
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return err
	}
	return ast.Walk(doc, fl.visit)
}

func (fl *flattener) visit(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch n := n.(type) {
	case *ast.Document, *ast.TextBlock, *east.FootnoteList:
		return ast.WalkContinue, nil
	case *east.FootnoteBacklink:
		return ast.WalkSkipChildren, nil
	case *ast.Paragraph:
		fl.container(Tag{Kind: Paragraph}, entering)
	case *ast.Heading:
		tag := Tag{Kind: Heading, Level: n.Level}
		if id, ok := n.AttributeString("id"); ok {
			tag.ID = attrString(id)
		}
		if class, ok := n.AttributeString("class"); ok {
			tag.Classes = strings.Fields(attrString(class))
		}
		fl.container(tag, entering)
	case *ast.Blockquote:
		fl.container(Tag{Kind: BlockQuote}, entering)
	case *ast.ThematicBreak:
		if entering {
			fl.emit(Event{Kind: Rule})
		}
	case *ast.FencedCodeBlock:
		tag := Tag{Kind: CodeBlock, Fenced: true}
		if n.Info != nil {
			tag.Info = string(n.Info.Segment.Value(fl.source))
		}
		fl.codeBlock(tag, n, entering)
		return ast.WalkSkipChildren, nil
	case *ast.CodeBlock:
		fl.codeBlock(Tag{Kind: CodeBlock}, n, entering)
		return ast.WalkSkipChildren, nil
	case *ast.HTMLBlock:
		if entering {
			fl.lines(HTML, n.Lines())
			if n.HasClosure() {
				fl.emit(Event{Kind: HTML, Text: string(n.ClosureLine.Value(fl.source))})
			}
		}
		return ast.WalkSkipChildren, nil
	case *ast.List:
		tag := Tag{Kind: List, Ordered: n.IsOrdered()}
		if tag.Ordered {
			tag.Start = n.Start
		}
		fl.container(tag, entering)
	case *ast.ListItem:
		fl.container(Tag{Kind: Item}, entering)
	case *ast.Text:
		if entering {
			fl.text(n)
		}
	case *ast.String:
		if entering {
			fl.emit(Event{Kind: Text, Text: string(n.Value)})
		}
	case *ast.CodeSpan:
		if entering {
			fl.emit(Event{Kind: Code, Text: fl.plainText(n)})
		}
		return ast.WalkSkipChildren, nil
	case *ast.Emphasis:
		kind := Emphasis
		if n.Level >= 2 {
			kind = Strong
		}
		fl.container(Tag{Kind: kind}, entering)
	case *ast.Link:
		fl.container(Tag{
			Kind:     Link,
			LinkType: LinkInline,
			Dest:     unescape(n.Destination),
			Title:    unescape(n.Title),
		}, entering)
	case *ast.Image:
		fl.container(Tag{
			Kind:     Image,
			LinkType: LinkInline,
			Dest:     unescape(n.Destination),
			Title:    unescape(n.Title),
		}, entering)
	case *ast.AutoLink:
		if entering {
			tag := Tag{Kind: Link, LinkType: LinkAutolink, Dest: string(n.URL(fl.source))}
			if n.AutoLinkType == ast.AutoLinkEmail {
				tag.LinkType = LinkEmail
			}
			fl.emit(StartOf(tag))
			fl.emit(TextOf(string(n.Label(fl.source))))
			fl.emit(EndOf(tag))
		}
		return ast.WalkSkipChildren, nil
	case *ast.RawHTML:
		if entering {
			var b bytes.Buffer
			for i := 0; i < n.Segments.Len(); i++ {
				seg := n.Segments.At(i)
				b.Write(seg.Value(fl.source))
			}
			fl.emit(Event{Kind: HTML, Text: b.String()})
		}
		return ast.WalkSkipChildren, nil
	case *east.Table:
		tag := Tag{Kind: Table}
		for _, a := range n.Alignments {
			tag.Alignments = append(tag.Alignments, alignment(a))
		}
		fl.container(tag, entering)
	case *east.TableHeader:
		fl.container(Tag{Kind: TableHead}, entering)
	case *east.TableRow:
		fl.container(Tag{Kind: TableRow}, entering)
	case *east.TableCell:
		fl.container(Tag{Kind: TableCell}, entering)
	case *east.Strikethrough:
		fl.container(Tag{Kind: Strikethrough}, entering)
	case *east.TaskCheckBox:
		if entering {
			fl.emit(Event{Kind: TaskListMarker, Checked: n.IsChecked})
		}
	case *east.Footnote:
		fl.container(Tag{Kind: FootnoteDefinition, Name: string(n.Ref)}, entering)
	case *east.FootnoteLink:
		if entering {
			name, ok := fl.footnotes[n.Index]
			if !ok {
				name = strconv.Itoa(n.Index)
			}
			fl.emit(Event{Kind: FootnoteReference, Text: name})
		}
	default:
		if entering {
			tracer().Infof("markdown: ignoring node of kind %s", n.Kind())
		}
	}
	return ast.WalkContinue, nil
}

func (fl *flattener) container(tag Tag, entering bool) {
	if entering {
		fl.emit(StartOf(tag))
	} else {
		fl.emit(EndOf(tag))
	}
}

func (fl *flattener) codeBlock(tag Tag, n ast.Node, entering bool) {
	if !entering {
		// children are skipped, so the walker reports the exit right away
		return
	}
	fl.emit(StartOf(tag))
	fl.lines(Text, n.Lines())
	fl.emit(EndOf(tag))
}

func (fl *flattener) lines(kind EventKind, lines *text.Segments) {
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		fl.emit(Event{Kind: kind, Text: string(line.Value(fl.source))})
	}
}

func (fl *flattener) text(n *ast.Text) {
	value := n.Segment.Value(fl.source)
	if n.IsRaw() {
		fl.emit(TextOf(string(value)))
	} else {
		fl.emit(TextOf(unescape(value)))
	}
	if n.HardLineBreak() {
		fl.emit(Event{Kind: HardBreak})
	} else if n.SoftLineBreak() {
		fl.emit(Event{Kind: SoftBreak})
	}
}

// plainText concatenates the raw text segments below n.
func (fl *flattener) plainText(n ast.Node) string {
	var b bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(fl.source))
		case *ast.String:
			b.Write(c.Value)
		}
	}
	return b.String()
}

func unescape(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	b = util.UnescapePunctuations(b)
	b = util.ResolveNumericReferences(b)
	b = util.ResolveEntityNames(b)
	return string(b)
}

func attrString(v interface{}) string {
	switch v := v.(type) {
	case []byte:
		return string(v)
	case string:
		return v
	}
	return ""
}

func alignment(a east.Alignment) Alignment {
	switch a {
	case east.AlignLeft:
		return AlignLeft
	case east.AlignCenter:
		return AlignCenter
	case east.AlignRight:
		return AlignRight
	}
	return AlignNone
}
