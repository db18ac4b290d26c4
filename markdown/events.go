package markdown

import (
	"fmt"
	"strings"
)

// EventKind enumerates the kinds of parser events consumed by the compiler.
type EventKind int8

const (
	Start             EventKind = iota // start of a container, carries a Tag
	End                                // end of a container, carries a Tag
	Text                               // text, carries Text
	Code                               // inline code span, carries Text
	HTML                               // raw HTML, carries Text
	SoftBreak                          // soft line break
	HardBreak                          // hard line break
	Rule                               // thematic break
	FootnoteReference                  // reference to a footnote, carries Text (the label)
	TaskListMarker                     // task list check box, carries Checked
)

var eventKindNames = [...]string{"Start", "End", "Text", "Code", "HTML", "SoftBreak",
	"HardBreak", "Rule", "FootnoteReference", "TaskListMarker"}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// TagKind enumerates the containers of a markdown document.
type TagKind int8

const (
	Paragraph TagKind = iota
	Heading
	Table
	TableHead
	TableRow
	TableCell
	BlockQuote
	CodeBlock
	List
	Item
	Emphasis
	Strong
	Strikethrough
	Link
	Image
	FootnoteDefinition
	tagTableBody // synthesized by the compiler, never produced by a parser
)

var tagKindNames = [...]string{"Paragraph", "Heading", "Table", "TableHead", "TableRow",
	"TableCell", "BlockQuote", "CodeBlock", "List", "Item", "Emphasis", "Strong",
	"Strikethrough", "Link", "Image", "FootnoteDefinition", "tbody"}

func (k TagKind) String() string {
	if int(k) < len(tagKindNames) {
		return tagKindNames[k]
	}
	return fmt.Sprintf("TagKind(%d)", int(k))
}

// Alignment is the alignment of a table column.
type Alignment int8

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return ""
}

// LinkType tells how a link has been written in the source.
type LinkType int8

const (
	LinkInline   LinkType = iota // [text](dest) and reference links
	LinkAutolink                 // <https://…> or linkified URLs
	LinkEmail                    // <name@example.com>
)

// Tag describes a container. Which fields are used depends on Kind:
//
//	Heading             Level, ID, Classes
//	Table               Alignments
//	CodeBlock           Fenced, Info
//	List                Ordered, Start
//	Link, Image         LinkType, Dest, Title
//	FootnoteDefinition  Name
type Tag struct {
	Kind       TagKind
	Level      int
	ID         string
	Classes    []string
	Alignments []Alignment
	Fenced     bool
	Info       string
	Ordered    bool
	Start      int
	LinkType   LinkType
	Dest       string
	Title      string
	Name       string
}

func (t Tag) String() string {
	switch t.Kind {
	case Heading:
		return fmt.Sprintf("Heading(%d)", t.Level)
	case CodeBlock:
		if t.Fenced {
			return fmt.Sprintf("CodeBlock(%q)", t.Info)
		}
	case List:
		if t.Ordered {
			return fmt.Sprintf("List(%d)", t.Start)
		}
	case Link, Image:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Dest)
	case FootnoteDefinition:
		return fmt.Sprintf("FootnoteDefinition(%s)", t.Name)
	}
	return t.Kind.String()
}

// Language returns the first word of the info string of a fenced code
// block, or "" if there is none.
func (t Tag) Language() string {
	if t.Kind != CodeBlock || !t.Fenced {
		return ""
	}
	if f := strings.Fields(t.Info); len(f) > 0 {
		return f[0]
	}
	return ""
}

// Event is a single parser event.
type Event struct {
	Kind    EventKind
	Tag     Tag    // for Start and End
	Text    string // for Text, Code, HTML and FootnoteReference
	Checked bool   // for TaskListMarker
}

func (e Event) String() string {
	switch e.Kind {
	case Start, End:
		return fmt.Sprintf("%s(%s)", e.Kind, e.Tag)
	case Text, Code, HTML, FootnoteReference:
		return fmt.Sprintf("%s(%q)", e.Kind, e.Text)
	case TaskListMarker:
		return fmt.Sprintf("%s(%v)", e.Kind, e.Checked)
	}
	return e.Kind.String()
}

// Convenience constructors, mainly for clients which produce events
// themselves.

// StartOf creates a Start event for tag.
func StartOf(tag Tag) Event { return Event{Kind: Start, Tag: tag} }

// EndOf creates an End event for tag.
func EndOf(tag Tag) Event { return Event{Kind: End, Tag: tag} }

// TextOf creates a Text event.
func TextOf(s string) Event { return Event{Kind: Text, Text: s} }

// --- Event sources ---------------------------------------------------------

// EventSource is a stream of events.
type EventSource interface {
	// Next returns the next event. ok is false when the stream is exhausted.
	Next() (ev Event, ok bool)
}

type sliceSource struct {
	events []Event
	pos    int
}

// Events creates an event source from a list of events.
func Events(events ...Event) EventSource {
	return &sliceSource{events: events}
}

func (s *sliceSource) Next() (Event, bool) {
	if s.pos >= len(s.events) {
		return Event{}, false
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, true
}

// Collect drains src into a slice.
func Collect(src EventSource) []Event {
	var events []Event
	for ev, ok := src.Next(); ok; ev, ok = src.Next() {
		events = append(events, ev)
	}
	return events
}
