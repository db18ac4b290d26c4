package markdown

import (
	"errors"
	"testing"

	"github.com/npillmayer/domtree/dom"
	"github.com/npillmayer/domtree/dom/render"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	para   = Tag{Kind: Paragraph}
	em     = Tag{Kind: Emphasis}
	item   = Tag{Kind: Item}
	bullet = Tag{Kind: List}
	image  = Tag{Kind: Image, Dest: "x.png"}
)

func TestCompileEvents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domtree.markdown")
	defer teardown()
	//
	src := Events(
		StartOf(Tag{Kind: Heading, Level: 2, ID: "intro", Classes: []string{"a", "b"}}),
		TextOf("Intro"),
		EndOf(Tag{Kind: Heading, Level: 2}),
		StartOf(para),
		TextOf("x "),
		StartOf(em),
		TextOf("y"),
		EndOf(em),
		Event{Kind: HardBreak},
		Event{Kind: Code, Text: "z"},
		EndOf(para),
		Event{Kind: Rule},
	)
	nodes, err := Compile(src)
	require.NoError(t, err)
	s, err := render.String(nodes...)
	require.NoError(t, err)
	assert.Equal(t, `<h2 id="intro" class="a b">Intro</h2><p>x <em>y</em><br><code>z</code></p><hr>`, s)
}

func TestTopLevelTextIsKept(t *testing.T) {
	nodes, err := Compile(Events(TextOf("a"), Event{Kind: SoftBreak}, TextOf("b")))
	require.NoError(t, err)
	assert.Len(t, nodes, 3)
}

func TestUnbalancedEvents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domtree.markdown")
	defer teardown()
	//
	streams := map[string][]Event{
		"left open":          {StartOf(para), TextOf("x")},
		"end without start":  {TextOf("x"), EndOf(para)},
		"mismatching end":    {StartOf(para), StartOf(em), EndOf(para), EndOf(em)},
		"alt not terminated": {StartOf(para), StartOf(image), TextOf("alt")},
		"stray image end":    {StartOf(para), EndOf(image), EndOf(para)},
		"code block halves":  {StartOf(Tag{Kind: CodeBlock}), EndOf(para)},
	}
	for name, events := range streams {
		nodes, err := Compile(Events(events...))
		if !errors.Is(err, ErrUnbalanced) {
			t.Errorf("%s: expected ErrUnbalanced, have %v", name, err)
		}
		if nodes != nil {
			t.Errorf("%s: expected no nodes on error, have %v", name, nodes)
		}
	}
}

func TestUnsupportedEvents(t *testing.T) {
	streams := map[string][]Event{
		"task list marker": {StartOf(bullet), StartOf(item), {Kind: TaskListMarker}, EndOf(item), EndOf(bullet)},
		"heading level 7":  {StartOf(Tag{Kind: Heading, Level: 7})},
		"unknown kind":     {{Kind: EventKind(99)}},
	}
	for name, events := range streams {
		_, err := Compile(Events(events...))
		if !errors.Is(err, ErrUnsupportedEvent) {
			t.Errorf("%s: expected ErrUnsupportedEvent, have %v", name, err)
		}
	}
}

func TestImageAltSubLoop(t *testing.T) {
	src := Events(
		StartOf(para),
		StartOf(image),
		TextOf("a "),
		StartOf(Tag{Kind: Strong}),
		TextOf("b"),
		EndOf(Tag{Kind: Strong}),
		Event{Kind: SoftBreak},
		Event{Kind: Code, Text: "c"},
		EndOf(image),
		TextOf(" after"),
		EndOf(para),
	)
	nodes, err := Compile(src)
	require.NoError(t, err)
	p := nodes[0].(*dom.Element)
	require.Equal(t, 2, p.Len())
	img := p.Children()[0].(*dom.Element)
	alt, _ := img.Get("alt")
	assert.Equal(t, "a b c", alt)
	assert.Equal(t, " after", p.Children()[1].(*dom.Text).Content)
}

func TestFootnoteNumberingByOccurrence(t *testing.T) {
	def := func(name string) Tag { return Tag{Kind: FootnoteDefinition, Name: name} }
	src := Events(
		StartOf(def("b")),
		StartOf(para), TextOf("B"), EndOf(para),
		EndOf(def("b")),
		Event{Kind: FootnoteReference, Text: "a"},
		Event{Kind: FootnoteReference, Text: "b"},
		Event{Kind: FootnoteReference, Text: "a"},
	)
	nodes, err := Compile(src)
	require.NoError(t, err)
	require.Len(t, nodes, 4)
	s, err := render.String(nodes...)
	require.NoError(t, err)
	expected := `<div class="footnote-definition" id="b"><sup class="footnote-definition-label">1</sup><p>B</p></div>` +
		`<sup class="footnote-reference"><a href="#a">2</a></sup>` +
		`<sup class="footnote-reference"><a href="#b">1</a></sup>` +
		`<sup class="footnote-reference"><a href="#a">2</a></sup>`
	assert.Equal(t, expected, s)
}

func TestLinkTitles(t *testing.T) {
	src := Events(
		StartOf(Tag{Kind: Link, Dest: "https://a.org", Title: "A"}),
		TextOf("a"),
		EndOf(Tag{Kind: Link}),
		StartOf(Tag{Kind: Link, LinkType: LinkEmail, Dest: "me@a.org"}),
		TextOf("me"),
		EndOf(Tag{Kind: Link}),
	)
	nodes, err := Compile(src)
	require.NoError(t, err)
	s, _ := render.String(nodes...)
	assert.Equal(t, `<a href="https://a.org" title="A">a</a><a href="mailto:me@a.org">me</a>`, s)
}

func TestTagLanguage(t *testing.T) {
	assert.Equal(t, "rust", Tag{Kind: CodeBlock, Fenced: true, Info: "rust ignore"}.Language())
	assert.Equal(t, "", Tag{Kind: CodeBlock, Fenced: true, Info: "   "}.Language())
	assert.Equal(t, "", Tag{Kind: CodeBlock, Info: "go"}.Language())
}

func TestParseEvents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domtree.markdown")
	defer teardown()
	//
	src, err := Parse("*a*")
	require.NoError(t, err)
	events := Collect(src)
	kinds := make([]string, len(events))
	for i, ev := range events {
		kinds[i] = ev.String()
	}
	assert.Equal(t, []string{"Start(Paragraph)", "Start(Emphasis)", `Text("a")`,
		"End(Emphasis)", "End(Paragraph)"}, kinds)
}
