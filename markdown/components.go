package markdown

import (
	"github.com/npillmayer/domtree/dom"
	"github.com/npillmayer/domtree/maybe"
)

// AProps are the properties of a link.
type AProps struct {
	Href  string              // link target, "mailto:" prefixed for e-mail links
	Title maybe.Maybe[string] // link title
}

// ImgProps are the properties of an image.
type ImgProps struct {
	Src   string
	Alt   maybe.Maybe[string] // flattened text of the image description
	Title maybe.Maybe[string]
}

// PreProps are the properties of the pre element of a code block.
type PreProps struct {
	Language maybe.Maybe[string] // first word of a fenced code block's info string
}

// CodeProps are the properties of code elements, both for code blocks and
// for code spans. Code spans never have a language.
type CodeProps struct {
	Language maybe.Maybe[string]
}

// CellProps are the properties of a table cell.
type CellProps struct {
	Alignment Alignment // alignment of the cell's column
	Column    int       // zero-based column index
}

// Components creates the elements the markdown compiler emits. Clients
// customize the output by embedding DefaultComponents into a type of their
// own and overriding selected methods:
//
//	type myComponents struct {
//		markdown.DefaultComponents
//	}
//
//	func (myComponents) Table() *dom.Element {
//		return dom.Table().Class("table")
//	}
type Components interface {
	Div() *dom.Element
	Span() *dom.Element
	P() *dom.Element
	H1() *dom.Element
	H2() *dom.Element
	H3() *dom.Element
	H4() *dom.Element
	H5() *dom.Element
	H6() *dom.Element
	Table() *dom.Element
	Thead() *dom.Element
	Tbody() *dom.Element
	Tr() *dom.Element
	Th(CellProps) *dom.Element
	Td(CellProps) *dom.Element
	Blockquote() *dom.Element
	Pre(PreProps) *dom.Element
	Code(CodeProps) *dom.Element
	// OnCodeBlockEnd combines pre and code at the end of a code block.
	OnCodeBlockEnd(pre, code *dom.Element) *dom.Element
	Ol() *dom.Element
	Ul() *dom.Element
	Li() *dom.Element
	Em() *dom.Element
	Strong() *dom.Element
	Del() *dom.Element
	A(AProps) *dom.Element
	Img(ImgProps) *dom.Element
	Br() *dom.Element
	Hr() *dom.Element
	Sup() *dom.Element
}

// DefaultComponents creates plain elements without decoration, except for
// code blocks with a language.
type DefaultComponents struct{}

var _ Components = DefaultComponents{}

func (DefaultComponents) Div() *dom.Element         { return dom.Div() }
func (DefaultComponents) Span() *dom.Element        { return dom.Span() }
func (DefaultComponents) P() *dom.Element           { return dom.P() }
func (DefaultComponents) H1() *dom.Element          { return dom.H1() }
func (DefaultComponents) H2() *dom.Element          { return dom.H2() }
func (DefaultComponents) H3() *dom.Element          { return dom.H3() }
func (DefaultComponents) H4() *dom.Element          { return dom.H4() }
func (DefaultComponents) H5() *dom.Element          { return dom.H5() }
func (DefaultComponents) H6() *dom.Element          { return dom.H6() }
func (DefaultComponents) Table() *dom.Element       { return dom.Table() }
func (DefaultComponents) Thead() *dom.Element       { return dom.Thead() }
func (DefaultComponents) Tbody() *dom.Element       { return dom.Tbody() }
func (DefaultComponents) Tr() *dom.Element          { return dom.Tr() }
func (DefaultComponents) Th(CellProps) *dom.Element { return dom.Th() }
func (DefaultComponents) Td(CellProps) *dom.Element { return dom.Td() }
func (DefaultComponents) Blockquote() *dom.Element  { return dom.Blockquote() }
func (DefaultComponents) Ol() *dom.Element          { return dom.Ol() }
func (DefaultComponents) Ul() *dom.Element          { return dom.Ul() }
func (DefaultComponents) Li() *dom.Element          { return dom.Li() }
func (DefaultComponents) Em() *dom.Element          { return dom.Em() }
func (DefaultComponents) Strong() *dom.Element      { return dom.Strong() }
func (DefaultComponents) Del() *dom.Element         { return dom.Del() }
func (DefaultComponents) Br() *dom.Element          { return dom.Br() }
func (DefaultComponents) Hr() *dom.Element          { return dom.Hr() }
func (DefaultComponents) Sup() *dom.Element         { return dom.Sup() }

// Pre creates a pre element. For a code block with a language l it sets
// class "language-l" and attribute "data-lang".
func (DefaultComponents) Pre(props PreProps) *dom.Element {
	return dom.Pre().With(withLanguage(props.Language))
}

// Code creates a code element, decorated like Pre.
func (DefaultComponents) Code(props CodeProps) *dom.Element {
	return dom.Code().With(withLanguage(props.Language))
}

// OnCodeBlockEnd appends code as the only child of pre.
func (DefaultComponents) OnCodeBlockEnd(pre, code *dom.Element) *dom.Element {
	return pre.Child(code)
}

// A creates a link.
func (DefaultComponents) A(props AProps) *dom.Element {
	return dom.A().Href(props.Href).Attr("title", props.Title)
}

// Img creates an image.
func (DefaultComponents) Img(props ImgProps) *dom.Element {
	return dom.Img().Src(props.Src).Attr("alt", props.Alt).Attr("title", props.Title)
}

func withLanguage(lang maybe.Maybe[string]) func(*dom.Element) {
	return func(e *dom.Element) {
		if lang == nil {
			return
		}
		if l, ok := lang.Get(); ok {
			e.Class("language-"+l).SetAttr("data-lang", l)
		}
	}
}
