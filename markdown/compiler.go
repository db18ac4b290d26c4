package markdown

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/domtree/dom"
	"github.com/npillmayer/domtree/maybe"
	"github.com/npillmayer/schuko/tracing"
)

// ErrUnsupportedEvent is returned if the compiler encounters an event it
// cannot translate, e.g. a task list marker.
var ErrUnsupportedEvent = errors.New("unsupported markdown event")

// ErrUnbalanced is returned for event streams where End events do not
// match Start events, or where containers are left open at the end of the
// stream.
var ErrUnbalanced = errors.New("unbalanced markdown events")

// Compile translates a stream of markdown events into document nodes.
// Elements are created by the components given with WithComponents,
// or by DefaultComponents.
//
// Compile stops at the first error; no nodes are returned in this case.
// Errors wrap either ErrUnsupportedEvent or ErrUnbalanced.
func Compile(src EventSource, opts ...Option) ([]dom.Node, error) {
	cc := newCompiler(src, newOptions(opts))
	if err := cc.run(); err != nil {
		tracer().Errorf("markdown: %v", err)
		tracing.With(tracer()).Dump("open elements", cc.openTags())
		return nil, err
	}
	return cc.out, nil
}

// frame is an open container. The kind of a frame is checked against the
// kind of the End event which closes it.
type frame struct {
	kind TagKind
	el   *dom.Element
}

type compiler struct {
	src        EventSource
	comps      Components
	opts       *options
	out        []dom.Node
	stack      []frame
	inHead     bool        // within a table head
	alignments []Alignment // column alignments of the current table
	cell       int         // column of the next table cell
	footnotes  map[string]int
	html       strings.Builder // consecutive raw HTML
}

func newCompiler(src EventSource, o *options) *compiler {
	return &compiler{
		src:       src,
		comps:     o.components,
		opts:      o,
		footnotes: make(map[string]int),
	}
}

func (cc *compiler) run() error {
	for ev, ok := cc.src.Next(); ok; ev, ok = cc.src.Next() {
		if ev.Kind != HTML {
			cc.flushHTML()
		}
		if err := cc.event(ev); err != nil {
			return err
		}
	}
	cc.flushHTML()
	if n := len(cc.stack); n > 0 {
		return fmt.Errorf("%w: %d element(s) left open at end of input, innermost is %s",
			ErrUnbalanced, n, cc.stack[n-1].kind)
	}
	return nil
}

func (cc *compiler) event(ev Event) error {
	switch ev.Kind {
	case Start:
		return cc.start(ev.Tag)
	case End:
		return cc.end(ev.Tag)
	case Text:
		cc.write(dom.NewText(ev.Text))
	case Code:
		cc.write(cc.comps.Code(CodeProps{Language: maybe.Nothing[string]()}).Child(ev.Text))
	case HTML:
		cc.html.WriteString(ev.Text)
	case SoftBreak:
		cc.write(dom.Raw("\n"))
	case HardBreak:
		cc.write(cc.comps.Br())
	case Rule:
		cc.write(cc.comps.Hr())
	case FootnoteReference:
		name := ev.Text
		n := cc.footnote(name)
		cc.write(cc.comps.Sup().Class("footnote-reference").Child(
			cc.comps.A(AProps{Href: "#" + name, Title: maybe.Nothing[string]()}).
				Child(strconv.Itoa(n)),
		))
	case TaskListMarker:
		return fmt.Errorf("%w: task list marker", ErrUnsupportedEvent)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedEvent, ev)
	}
	return nil
}

func (cc *compiler) start(tag Tag) error {
	c := cc.comps
	switch tag.Kind {
	case Paragraph:
		cc.push(tag.Kind, c.P())
	case Heading:
		h, err := cc.heading(tag.Level)
		if err != nil {
			return err
		}
		if tag.ID != "" {
			h.ID(tag.ID)
		}
		if len(tag.Classes) > 0 {
			h.Class(strings.Join(tag.Classes, " "))
		}
		cc.push(tag.Kind, h)
	case Table:
		cc.alignments = tag.Alignments
		cc.inHead = false
		cc.push(tag.Kind, c.Table())
	case TableHead:
		cc.inHead = true
		cc.cell = 0
		cc.push(tag.Kind, c.Thead())
		cc.push(tag.Kind, c.Tr())
	case TableRow:
		cc.cell = 0
		cc.push(tag.Kind, c.Tr())
	case TableCell:
		props := CellProps{Alignment: cc.alignment(cc.cell), Column: cc.cell}
		if cc.inHead {
			cc.push(tag.Kind, c.Th(props))
		} else {
			cc.push(tag.Kind, c.Td(props))
		}
	case BlockQuote:
		cc.push(tag.Kind, c.Blockquote())
	case CodeBlock:
		lang := maybe.NonZero(tag.Language())
		cc.push(tag.Kind, c.Pre(PreProps{Language: lang}))
		cc.push(tag.Kind, c.Code(CodeProps{Language: lang}))
	case List:
		if !tag.Ordered {
			cc.push(tag.Kind, c.Ul())
		} else if tag.Start == 1 {
			cc.push(tag.Kind, c.Ol())
		} else {
			cc.push(tag.Kind, c.Ol().Start(tag.Start))
		}
	case Item:
		cc.push(tag.Kind, c.Li())
	case Emphasis:
		cc.push(tag.Kind, c.Em())
	case Strong:
		cc.push(tag.Kind, c.Strong())
	case Strikethrough:
		cc.push(tag.Kind, c.Del())
	case Link:
		href := tag.Dest
		if tag.LinkType == LinkEmail {
			href = "mailto:" + href
		}
		cc.push(tag.Kind, c.A(AProps{Href: href, Title: maybe.NonZero(tag.Title)}))
	case Image:
		alt, err := cc.rawText()
		if err != nil {
			return err
		}
		cc.write(c.Img(ImgProps{
			Src:   tag.Dest,
			Alt:   maybe.Filter(notBlank, maybe.Just(alt)),
			Title: maybe.NonZero(tag.Title),
		}))
	case FootnoteDefinition:
		n := cc.footnote(tag.Name)
		cc.push(tag.Kind, c.Div().Class("footnote-definition").ID(tag.Name))
		cc.write(c.Sup().Class("footnote-definition-label").Child(strconv.Itoa(n)))
	default:
		return fmt.Errorf("%w: start of %s", ErrUnsupportedEvent, tag)
	}
	return nil
}

func (cc *compiler) end(tag Tag) error {
	switch tag.Kind {
	case Table:
		if cc.topIs(tagTableBody) {
			if err := cc.popAndWrite(tagTableBody); err != nil {
				return err
			}
		}
		cc.inHead, cc.alignments = false, nil
		return cc.popAndWrite(Table)
	case TableHead:
		if err := cc.popAndWrite(TableHead); err != nil { // tr
			return err
		}
		if err := cc.popAndWrite(TableHead); err != nil { // thead
			return err
		}
		cc.inHead = false
		cc.push(tagTableBody, cc.comps.Tbody())
		return nil
	case TableCell:
		cc.cell++
		return cc.popAndWrite(TableCell)
	case CodeBlock:
		code, err := cc.pop(CodeBlock)
		if err != nil {
			return err
		}
		pre, err := cc.pop(CodeBlock)
		if err != nil {
			return err
		}
		cc.write(cc.comps.OnCodeBlockEnd(pre, code))
		return nil
	case Image:
		// images consume their End event while collecting the alt text
		return fmt.Errorf("%w: end of image without start", ErrUnbalanced)
	}
	return cc.popAndWrite(tag.Kind)
}

func (cc *compiler) heading(level int) (*dom.Element, error) {
	switch level {
	case 1:
		return cc.comps.H1(), nil
	case 2:
		return cc.comps.H2(), nil
	case 3:
		return cc.comps.H3(), nil
	case 4:
		return cc.comps.H4(), nil
	case 5:
		return cc.comps.H5(), nil
	case 6:
		return cc.comps.H6(), nil
	}
	return nil, fmt.Errorf("%w: heading level %d", ErrUnsupportedEvent, level)
}

// rawText consumes events up to the End event matching an Image start and
// returns their text. Nested containers contribute their text only; line
// breaks and rules contribute a single space.
func (cc *compiler) rawText() (string, error) {
	var sb strings.Builder
	nest := 0
	for ev, ok := cc.src.Next(); ok; ev, ok = cc.src.Next() {
		switch ev.Kind {
		case Start:
			nest++
		case End:
			if nest == 0 {
				return sb.String(), nil
			}
			nest--
		case Text, Code:
			sb.WriteString(ev.Text)
		case SoftBreak, HardBreak, Rule:
			sb.WriteByte(' ')
		}
	}
	return "", fmt.Errorf("%w: image description not terminated", ErrUnbalanced)
}

// --- Stack -----------------------------------------------------------------

func (cc *compiler) push(kind TagKind, el *dom.Element) {
	cc.stack = append(cc.stack, frame{kind: kind, el: el})
}

func (cc *compiler) topIs(kind TagKind) bool {
	return len(cc.stack) > 0 && cc.stack[len(cc.stack)-1].kind == kind
}

func (cc *compiler) pop(kind TagKind) (*dom.Element, error) {
	if len(cc.stack) == 0 {
		return nil, fmt.Errorf("%w: end of %s without start", ErrUnbalanced, kind)
	}
	top := cc.stack[len(cc.stack)-1]
	if top.kind != kind {
		return nil, fmt.Errorf("%w: end of %s while %s is open", ErrUnbalanced, kind, top.kind)
	}
	cc.stack = cc.stack[:len(cc.stack)-1]
	return top.el, nil
}

func (cc *compiler) popAndWrite(kind TagKind) error {
	el, err := cc.pop(kind)
	if err != nil {
		return err
	}
	cc.write(el)
	return nil
}

// write appends n to the innermost open element, or to the output if no
// element is open.
func (cc *compiler) write(n dom.Node) {
	if len(cc.stack) > 0 {
		cc.stack[len(cc.stack)-1].el.Child(n)
		return
	}
	cc.out = append(cc.out, n)
}

func (cc *compiler) openTags() []string {
	tags := make([]string, len(cc.stack))
	for i, f := range cc.stack {
		tags[i] = f.kind.String() + " " + f.el.String()
	}
	return tags
}

// --- Helpers ---------------------------------------------------------------

// footnote returns the number of footnote name. Footnotes are numbered in
// order of first occurrence, be it a reference or a definition.
func (cc *compiler) footnote(name string) int {
	if n, ok := cc.footnotes[name]; ok {
		return n
	}
	n := len(cc.footnotes) + 1
	cc.footnotes[name] = n
	return n
}

func (cc *compiler) alignment(column int) Alignment {
	if column < len(cc.alignments) {
		return cc.alignments[column]
	}
	return AlignNone
}

// flushHTML writes pending raw HTML according to the raw HTML policy.
func (cc *compiler) flushHTML() {
	if cc.html.Len() == 0 {
		return
	}
	s := cc.html.String()
	cc.html.Reset()
	switch cc.opts.rawHTML {
	case RawHTMLDrop:
		tracer().Debugf("markdown: dropping raw HTML")
		return
	case RawHTMLSanitize:
		s = cc.opts.sanitizer.Sanitize(s)
	}
	if s != "" {
		cc.write(dom.Raw(s))
	}
}

func notBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}
