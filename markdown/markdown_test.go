package markdown

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/domtree/dom"
	"github.com/npillmayer/domtree/dom/domdbg"
	"github.com/npillmayer/domtree/dom/render"
	"github.com/npillmayer/domtree/dom/style"
	"github.com/npillmayer/domtree/dom/w3cdom"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadingAndList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domtree.markdown")
	defer teardown()
	//
	nodes, toc, err := Render("# Hello\n\n- A\n- B\n")
	require.NoError(t, err)
	if len(nodes) != 2 {
		t.Fatalf("expected 2 top-level nodes, have %d: %v", len(nodes), nodes)
	}
	h1 := element(t, nodes[0], "h1")
	assert.Equal(t, "Hello", h1.TextContent())
	ul := element(t, nodes[1], "ul")
	if assert.Equal(t, 2, ul.Len()) {
		assert.Equal(t, "A", element(t, ul.Children()[0], "li").TextContent())
		assert.Equal(t, "B", element(t, ul.Children()[1], "li").TextContent())
	}
	assert.True(t, toc.IsEmpty(), "level 1 headings are not part of the outline")
	//
	s, err := render.String(nodes...)
	require.NoError(t, err)
	assert.Equal(t, "<h1>Hello</h1><ul><li>A</li><li>B</li></ul>", s)
}

func TestLink(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domtree.markdown")
	defer teardown()
	//
	nodes, _, err := Render("[link](https://example.com)")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	p := element(t, nodes[0], "p")
	require.Equal(t, 1, p.Len())
	a := element(t, p.Children()[0], "a")
	href, _ := a.Get("href")
	assert.Equal(t, "https://example.com", href)
	assert.Equal(t, "link", a.TextContent())
	_, hasTitle := a.Get("title")
	assert.False(t, hasTitle)
}

func TestFencedCodeBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domtree.markdown")
	defer teardown()
	//
	nodes, _, err := Render("```rust\nfn main() {}\n```\n")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	pre := element(t, nodes[0], "pre")
	require.Equal(t, 1, pre.Len())
	code := element(t, pre.Children()[0], "code")
	lang, _ := code.Get("data-lang")
	class, _ := code.Get("class")
	assert.Equal(t, "rust", lang)
	assert.Equal(t, "language-rust", class)
	lang, _ = pre.Get("data-lang")
	assert.Equal(t, "rust", lang)
	assert.Equal(t, "fn main() {}\n", code.TextContent())
}

func TestIndentedCodeBlockHasNoLanguage(t *testing.T) {
	nodes, _, err := Render("    x := 1\n")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	pre := element(t, nodes[0], "pre")
	assert.Empty(t, pre.Attrs())
	code := element(t, pre.Children()[0], "code")
	assert.Empty(t, code.Attrs())
	assert.Equal(t, "x := 1\n", code.TextContent())
}

func TestEscapingIsLeftToRenderer(t *testing.T) {
	nodes, _, err := Render("```html\n<h1 ng-if=\"x\">Hi</h1>\n```\n\nFish & <Chips>")
	require.NoError(t, err)
	s, err := render.String(nodes...)
	require.NoError(t, err)
	assert.Contains(t, s, `&lt;h1 ng-if="x"&gt;Hi&lt;/h1&gt;`)
	assert.NotContains(t, s, "&amp;lt;")
}

func TestSoftBreak(t *testing.T) {
	nodes, _, err := Render("a\nb")
	require.NoError(t, err)
	p := element(t, nodes[0], "p")
	require.Equal(t, 3, p.Len())
	br, ok := p.Children()[1].(*dom.Text)
	require.True(t, ok)
	assert.True(t, br.Safe)
	assert.Equal(t, "\n", br.Content)
}

func TestInlineCode(t *testing.T) {
	nodes, _, err := Render("- `One`\n- `Two`\n")
	require.NoError(t, err)
	ul := element(t, nodes[0], "ul")
	li := element(t, ul.Children()[0], "li")
	code := element(t, li.Children()[0], "code")
	assert.Equal(t, "One", code.TextContent())
	assert.Empty(t, code.Attrs())
}

func TestImageAlt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domtree.markdown")
	defer teardown()
	//
	text := "![A photo of _Sunflowers_ by `Van Gogh`](https://example.com/sunflowers.png \"Sunflowers\")\n\n" +
		"![](https://example.com/empty.png)\n"
	nodes, _, err := Render(text)
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	img := element(t, element(t, nodes[0], "p").Children()[0], "img")
	src, _ := img.Get("src")
	alt, _ := img.Get("alt")
	title, _ := img.Get("title")
	assert.Equal(t, "https://example.com/sunflowers.png", src)
	assert.Equal(t, "A photo of Sunflowers by Van Gogh", alt)
	assert.Equal(t, "Sunflowers", title)
	//
	img = element(t, element(t, nodes[1], "p").Children()[0], "img")
	_, hasAlt := img.Get("alt")
	assert.False(t, hasAlt, "blank alt text is omitted")
}

func TestOrderedListStart(t *testing.T) {
	nodes, _, err := Render("1. One\n1. Two\n\nText\n\n3. Three\n4. Four\n")
	require.NoError(t, err)
	require.Len(t, nodes, 3)
	ol := element(t, nodes[0], "ol")
	_, hasStart := ol.Get("start")
	assert.False(t, hasStart)
	ol = element(t, nodes[2], "ol")
	start, _ := ol.Get("start")
	assert.Equal(t, "3", start)
}

func TestEmailLink(t *testing.T) {
	nodes, _, err := Render("Write to <jane@example.com>.")
	require.NoError(t, err)
	links := dom.FindAll(dom.HasTag("a"), nodes...)
	require.Len(t, links, 1)
	href, _ := links[0].(*dom.Element).Get("href")
	assert.Equal(t, "mailto:jane@example.com", href)
	assert.Equal(t, "jane@example.com", links[0].(*dom.Element).TextContent())
}

func TestTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domtree.markdown")
	defer teardown()
	//
	text := "| Name | Value |\n| ---- | ----: |\n| A | 1 |\n| B | 2 |\n"
	nodes, _, err := Render(text)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	table := element(t, nodes[0], "table")
	require.Equal(t, 2, table.Len())
	thead := element(t, table.Children()[0], "thead")
	tbody := element(t, table.Children()[1], "tbody")
	headRow := element(t, thead.Children()[0], "tr")
	assert.Equal(t, 2, headRow.Len())
	assert.Equal(t, "Name", strings.TrimSpace(element(t, headRow.Children()[0], "th").TextContent()))
	assert.Equal(t, 2, tbody.Len())
	row := element(t, tbody.Children()[1], "tr")
	assert.Equal(t, "2", strings.TrimSpace(element(t, row.Children()[1], "td").TextContent()))
}

func TestFootnotes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domtree.markdown")
	defer teardown()
	//
	text := "The quick[^fox] brown fox jumped over the lazy[^dog] dog.\n\n" +
		"[^dog]: The dog wasn't all that lazy.\n\n" +
		"[^fox]: The fox wasn't all that quick.\n"
	nodes, _, err := Render(text)
	require.NoError(t, err)
	refs := dom.FindAll(hasClass("footnote-reference"), nodes...)
	require.Len(t, refs, 2)
	a := element(t, refs[0].(*dom.Element).Children()[0], "a")
	href, _ := a.Get("href")
	assert.Equal(t, "#fox", href)
	assert.Equal(t, "1", a.TextContent())
	a = element(t, refs[1].(*dom.Element).Children()[0], "a")
	href, _ = a.Get("href")
	assert.Equal(t, "#dog", href)
	assert.Equal(t, "2", a.TextContent())
	//
	defs := dom.FindAll(hasClass("footnote-definition"), nodes...)
	require.Len(t, defs, 2)
	for _, def := range defs {
		div := def.(*dom.Element)
		id, _ := div.Get("id")
		label := element(t, div.Children()[0], "sup")
		switch id {
		case "fox":
			assert.Equal(t, "1", label.TextContent())
			assert.Contains(t, div.TextContent(), "quick")
		case "dog":
			assert.Equal(t, "2", label.TextContent())
		default:
			t.Errorf("unexpected footnote definition %q", id)
		}
	}
}

func TestHeadingAttributes(t *testing.T) {
	nodes, toc, err := Render("## Title {#custom .a .b}\n\n## Plain\n")
	require.NoError(t, err)
	h2 := element(t, nodes[0], "h2")
	id, _ := h2.Get("id")
	class, _ := h2.Get("class")
	assert.Equal(t, "custom", id)
	assert.Equal(t, "a b", class)
	_, hasClass := element(t, nodes[1], "h2").Get("class")
	assert.False(t, hasClass)
	if assert.Len(t, toc.Headings, 2) {
		assert.Equal(t, "custom", toc.Headings[0].ID)
		assert.Equal(t, "plain", toc.Headings[1].ID)
	}
}

func TestHeadingSlugs(t *testing.T) {
	nodes, _, err := Render("## `code` & \"quoted\"\n\n## snake_case\n\n## Tom @ Home\n")
	require.NoError(t, err)
	var ids []string
	for _, h := range dom.FindAll(dom.HasTag("h2"), nodes...) {
		id, _ := h.(*dom.Element).Get("id")
		ids = append(ids, id)
	}
	assert.Equal(t, []string{"code-quoted", "snake-case", "tom-home"}, ids)
}

func TestOutlineFromMarkdown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domtree.markdown")
	defer teardown()
	//
	text := "# Doc\n\n## Overview\n\n### Details\n\n## Overview\n\n## Overview\n"
	nodes, toc, err := Render(text)
	require.NoError(t, err)
	var ids []string
	for _, h := range dom.FindAll(dom.HasTag("h2", "h3"), nodes...) {
		id, _ := h.(*dom.Element).Get("id")
		ids = append(ids, id)
	}
	assert.Equal(t, []string{"overview", "details", "overview-1", "overview-2"}, ids)
	require.Len(t, toc.Headings, 3)
	require.Len(t, toc.Headings[0].Children, 1)
	assert.Equal(t, "Details", toc.Headings[0].Children[0].Title)
	t.Logf("\n%s", toc)
}

func TestTaskListIsUnsupported(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domtree.markdown")
	defer teardown()
	//
	_, _, err := Render("- [ ] todo\n", WithTaskLists(true))
	if !errors.Is(err, ErrUnsupportedEvent) {
		t.Errorf("expected ErrUnsupportedEvent, have %v", err)
	}
	nodes, _, err := Render("- [ ] todo\n")
	require.NoError(t, err)
	assert.Equal(t, "[ ] todo", element(t, nodes[0], "ul").TextContent())
}

func TestStrikethrough(t *testing.T) {
	nodes, _, err := Render("~~gone~~")
	require.NoError(t, err)
	del := dom.FindAll(dom.HasTag("del"), nodes...)
	require.Len(t, del, 1)
	assert.Equal(t, "gone", del[0].(*dom.Element).TextContent())
}

func TestRawHTMLPolicies(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domtree.markdown")
	defer teardown()
	//
	text := "<div onclick=\"evil()\">hi</div>\n"
	nodes, _, err := Render(text)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	raw, ok := nodes[0].(*dom.Text)
	require.True(t, ok)
	assert.True(t, raw.Safe)
	assert.Contains(t, raw.Content, "onclick")
	//
	nodes, _, err = Render(text, WithRawHTML(RawHTMLSanitize))
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	raw = nodes[0].(*dom.Text)
	assert.Contains(t, raw.Content, "<div>hi</div>")
	assert.NotContains(t, raw.Content, "onclick")
	//
	nodes, _, err = Render(text, WithRawHTML(RawHTMLDrop))
	require.NoError(t, err)
	assert.Empty(t, nodes)
}

func TestOptionsFromConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domtree.markdown")
	defer teardown()
	//
	conf := testconfig.Conf{
		"markdown.tables":  false,
		"markdown.rawhtml": "drop",
	}
	opts := OptionsFromConfig(conf)
	assert.Len(t, opts, 2)
	nodes, _, err := Render("| a |\n| - |\n| 1 |\n\n<div>x</div>\n", opts...)
	require.NoError(t, err)
	assert.Empty(t, dom.FindAll(dom.HasTag("table"), nodes...))
	for _, n := range nodes {
		if txt, ok := n.(*dom.Text); ok && txt.Safe {
			t.Errorf("expected raw HTML to be dropped, found %v", txt)
		}
	}
	conf = testconfig.Conf{"markdown.rawhtml": "bogus"}
	assert.Empty(t, OptionsFromConfig(conf))
	assert.Nil(t, OptionsFromConfig(nil))
}

// --- Custom components -----------------------------------------------------

type fancyComponents struct {
	DefaultComponents
	cells []CellProps
}

func (fc *fancyComponents) Blockquote() *dom.Element {
	return dom.Blockquote().Class("quote")
}

func (fc *fancyComponents) Td(props CellProps) *dom.Element {
	fc.cells = append(fc.cells, props)
	td := dom.Td()
	if props.Alignment != AlignNone {
		td.With(style.Set("text-align", props.Alignment.String()))
	}
	return td
}

func (fc *fancyComponents) OnCodeBlockEnd(pre, code *dom.Element) *dom.Element {
	return dom.Div().Class("code-block").Child(pre.Child(code))
}

func TestCustomComponents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domtree.markdown")
	defer teardown()
	//
	fc := &fancyComponents{}
	text := "> quote\n\n```go\nx\n```\n\n| a | b |\n| :-- | --: |\n| 1 | 2 |\n"
	nodes, _, err := Render(text, WithComponents(fc))
	require.NoError(t, err)
	require.Len(t, nodes, 3)
	class, _ := element(t, nodes[0], "blockquote").Get("class")
	assert.Equal(t, "quote", class)
	div := element(t, nodes[1], "div")
	assert.Equal(t, "pre", element(t, div.Children()[0], "pre").Tag())
	if assert.Len(t, fc.cells, 2) {
		assert.Equal(t, CellProps{Alignment: AlignLeft, Column: 0}, fc.cells[0])
		assert.Equal(t, CellProps{Alignment: AlignRight, Column: 1}, fc.cells[1])
	}
	s, err := render.String(nodes[2])
	require.NoError(t, err)
	assert.Contains(t, s, `<td style="text-align: right;">`)
	t.Logf("\n%s", domdbg.Dump(nodes...))
}

func TestOutputParsesBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "domtree.markdown")
	defer teardown()
	//
	text := "## A *b* & c\n\n- one\n- [two](https://x.org \"T\")\n\n| a |\n| - |\n| 1 |\n"
	nodes, _, err := Render(text)
	require.NoError(t, err)
	s, err := render.String(nodes...)
	require.NoError(t, err)
	parsed, err := w3cdom.ParseFragment(strings.NewReader(s))
	require.NoError(t, err)
	again, err := render.String(parsed...)
	require.NoError(t, err)
	assert.Equal(t, s, again)
}

// ---------------------------------------------------------------------------

func element(t *testing.T, n dom.Node, tag string) *dom.Element {
	t.Helper()
	e, ok := n.(*dom.Element)
	if !ok || e.Tag() != tag {
		t.Fatalf("expected <%s> element, have %v", tag, n)
	}
	return e
}

func hasClass(class string) dom.Predicate {
	return func(n dom.Node) bool {
		if e, ok := n.(*dom.Element); ok {
			c, _ := e.Get("class")
			return c == class
		}
		return false
	}
}
