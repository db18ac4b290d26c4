package dom

import "golang.org/x/net/html/atom"

// A creates an a element.
func A() *Element { return NewElement(atom.A.String()) }

// Abbr creates an abbr element.
func Abbr() *Element { return NewElement(atom.Abbr.String()) }

// Address creates an address element.
func Address() *Element { return NewElement(atom.Address.String()) }

// Area creates an area element.
func Area() *Element { return NewElement(atom.Area.String()) }

// Article creates an article element.
func Article() *Element { return NewElement(atom.Article.String()) }

// Aside creates an aside element.
func Aside() *Element { return NewElement(atom.Aside.String()) }

// Audio creates an audio element.
func Audio() *Element { return NewElement(atom.Audio.String()) }

// B creates a b element.
func B() *Element { return NewElement(atom.B.String()) }

// Base creates a base element.
func Base() *Element { return NewElement(atom.Base.String()) }

// Bdi creates a bdi element.
func Bdi() *Element { return NewElement(atom.Bdi.String()) }

// Bdo creates a bdo element.
func Bdo() *Element { return NewElement(atom.Bdo.String()) }

// Blockquote creates a blockquote element.
func Blockquote() *Element { return NewElement(atom.Blockquote.String()) }

// Body creates a body element.
func Body() *Element { return NewElement(atom.Body.String()) }

// Br creates a br element.
func Br() *Element { return NewElement(atom.Br.String()) }

// Button creates a button element.
func Button() *Element { return NewElement(atom.Button.String()) }

// Canvas creates a canvas element.
func Canvas() *Element { return NewElement(atom.Canvas.String()) }

// Caption creates a caption element.
func Caption() *Element { return NewElement(atom.Caption.String()) }

// Cite creates a cite element.
func Cite() *Element { return NewElement(atom.Cite.String()) }

// Code creates a code element.
func Code() *Element { return NewElement(atom.Code.String()) }

// Col creates a col element.
func Col() *Element { return NewElement(atom.Col.String()) }

// Colgroup creates a colgroup element.
func Colgroup() *Element { return NewElement(atom.Colgroup.String()) }

// Data creates a data element.
func Data() *Element { return NewElement(atom.Data.String()) }

// Datalist creates a datalist element.
func Datalist() *Element { return NewElement(atom.Datalist.String()) }

// Dd creates a dd element.
func Dd() *Element { return NewElement(atom.Dd.String()) }

// Del creates a del element.
func Del() *Element { return NewElement(atom.Del.String()) }

// Details creates a details element.
func Details() *Element { return NewElement(atom.Details.String()) }

// Dfn creates a dfn element.
func Dfn() *Element { return NewElement(atom.Dfn.String()) }

// Dialog creates a dialog element.
func Dialog() *Element { return NewElement(atom.Dialog.String()) }

// Div creates a div element.
func Div() *Element { return NewElement(atom.Div.String()) }

// Dl creates a dl element.
func Dl() *Element { return NewElement(atom.Dl.String()) }

// Dt creates a dt element.
func Dt() *Element { return NewElement(atom.Dt.String()) }

// Em creates an em element.
func Em() *Element { return NewElement(atom.Em.String()) }

// Embed creates an embed element.
func Embed() *Element { return NewElement(atom.Embed.String()) }

// Fieldset creates a fieldset element.
func Fieldset() *Element { return NewElement(atom.Fieldset.String()) }

// Figcaption creates a figcaption element.
func Figcaption() *Element { return NewElement(atom.Figcaption.String()) }

// Figure creates a figure element.
func Figure() *Element { return NewElement(atom.Figure.String()) }

// Footer creates a footer element.
func Footer() *Element { return NewElement(atom.Footer.String()) }

// Form creates a form element.
func Form() *Element { return NewElement(atom.Form.String()) }

// H1 creates a h1 element.
func H1() *Element { return NewElement(atom.H1.String()) }

// H2 creates a h2 element.
func H2() *Element { return NewElement(atom.H2.String()) }

// H3 creates a h3 element.
func H3() *Element { return NewElement(atom.H3.String()) }

// H4 creates a h4 element.
func H4() *Element { return NewElement(atom.H4.String()) }

// H5 creates a h5 element.
func H5() *Element { return NewElement(atom.H5.String()) }

// H6 creates a h6 element.
func H6() *Element { return NewElement(atom.H6.String()) }

// Head creates a head element.
func Head() *Element { return NewElement(atom.Head.String()) }

// Header creates a header element.
func Header() *Element { return NewElement(atom.Header.String()) }

// Hgroup creates a hgroup element.
func Hgroup() *Element { return NewElement(atom.Hgroup.String()) }

// Hr creates a hr element.
func Hr() *Element { return NewElement(atom.Hr.String()) }

// HTML creates an html element.
func HTML() *Element { return NewElement(atom.Html.String()) }

// I creates an i element.
func I() *Element { return NewElement(atom.I.String()) }

// Iframe creates an iframe element.
func Iframe() *Element { return NewElement(atom.Iframe.String()) }

// Img creates an img element.
func Img() *Element { return NewElement(atom.Img.String()) }

// Input creates an input element.
func Input() *Element { return NewElement(atom.Input.String()) }

// Ins creates an ins element.
func Ins() *Element { return NewElement(atom.Ins.String()) }

// Kbd creates a kbd element.
func Kbd() *Element { return NewElement(atom.Kbd.String()) }

// Label creates a label element.
func Label() *Element { return NewElement(atom.Label.String()) }

// Legend creates a legend element.
func Legend() *Element { return NewElement(atom.Legend.String()) }

// Li creates a li element.
func Li() *Element { return NewElement(atom.Li.String()) }

// Link creates a link element.
func Link() *Element { return NewElement(atom.Link.String()) }

// Main creates a main element.
func Main() *Element { return NewElement(atom.Main.String()) }

// Map creates a map element.
func Map() *Element { return NewElement(atom.Map.String()) }

// Mark creates a mark element.
func Mark() *Element { return NewElement(atom.Mark.String()) }

// Math creates a math element.
func Math() *Element { return NewElement(atom.Math.String()) }

// Menu creates a menu element.
func Menu() *Element { return NewElement(atom.Menu.String()) }

// Meta creates a meta element.
func Meta() *Element { return NewElement(atom.Meta.String()) }

// Meter creates a meter element.
func Meter() *Element { return NewElement(atom.Meter.String()) }

// Nav creates a nav element.
func Nav() *Element { return NewElement(atom.Nav.String()) }

// Noscript creates a noscript element.
func Noscript() *Element { return NewElement(atom.Noscript.String()) }

// Object creates an object element.
func Object() *Element { return NewElement(atom.Object.String()) }

// Ol creates an ol element.
func Ol() *Element { return NewElement(atom.Ol.String()) }

// Optgroup creates an optgroup element.
func Optgroup() *Element { return NewElement(atom.Optgroup.String()) }

// Option creates an option element.
func Option() *Element { return NewElement(atom.Option.String()) }

// Output creates an output element.
func Output() *Element { return NewElement(atom.Output.String()) }

// P creates a p element.
func P() *Element { return NewElement(atom.P.String()) }

// Picture creates a picture element.
func Picture() *Element { return NewElement(atom.Picture.String()) }

// Portal creates a portal element.
func Portal() *Element { return NewElement("portal") }

// Pre creates a pre element.
func Pre() *Element { return NewElement(atom.Pre.String()) }

// Progress creates a progress element.
func Progress() *Element { return NewElement(atom.Progress.String()) }

// Q creates a q element.
func Q() *Element { return NewElement(atom.Q.String()) }

// Rp creates a rp element.
func Rp() *Element { return NewElement(atom.Rp.String()) }

// Rt creates a rt element.
func Rt() *Element { return NewElement(atom.Rt.String()) }

// Ruby creates a ruby element.
func Ruby() *Element { return NewElement(atom.Ruby.String()) }

// S creates a s element.
func S() *Element { return NewElement(atom.S.String()) }

// Samp creates a samp element.
func Samp() *Element { return NewElement(atom.Samp.String()) }

// Script creates a script element.
func Script() *Element { return NewElement(atom.Script.String()) }

// Search creates a search element.
func Search() *Element { return NewElement("search") }

// Section creates a section element.
func Section() *Element { return NewElement(atom.Section.String()) }

// Select creates a select element.
func Select() *Element { return NewElement(atom.Select.String()) }

// Slot creates a slot element.
func Slot() *Element { return NewElement(atom.Slot.String()) }

// Small creates a small element.
func Small() *Element { return NewElement(atom.Small.String()) }

// Source creates a source element.
func Source() *Element { return NewElement(atom.Source.String()) }

// Span creates a span element.
func Span() *Element { return NewElement(atom.Span.String()) }

// Strong creates a strong element.
func Strong() *Element { return NewElement(atom.Strong.String()) }

// Style creates a style element.
func Style() *Element { return NewElement(atom.Style.String()) }

// Sub creates a sub element.
func Sub() *Element { return NewElement(atom.Sub.String()) }

// Summary creates a summary element.
func Summary() *Element { return NewElement(atom.Summary.String()) }

// Sup creates a sup element.
func Sup() *Element { return NewElement(atom.Sup.String()) }

// Svg creates a svg element.
func Svg() *Element { return NewElement(atom.Svg.String()) }

// Table creates a table element.
func Table() *Element { return NewElement(atom.Table.String()) }

// Tbody creates a tbody element.
func Tbody() *Element { return NewElement(atom.Tbody.String()) }

// Td creates a td element.
func Td() *Element { return NewElement(atom.Td.String()) }

// Template creates a template element.
func Template() *Element { return NewElement(atom.Template.String()) }

// Textarea creates a textarea element.
func Textarea() *Element { return NewElement(atom.Textarea.String()) }

// Tfoot creates a tfoot element.
func Tfoot() *Element { return NewElement(atom.Tfoot.String()) }

// Th creates a th element.
func Th() *Element { return NewElement(atom.Th.String()) }

// Thead creates a thead element.
func Thead() *Element { return NewElement(atom.Thead.String()) }

// Time creates a time element.
func Time() *Element { return NewElement(atom.Time.String()) }

// Title creates a title element.
func Title() *Element { return NewElement(atom.Title.String()) }

// Tr creates a tr element.
func Tr() *Element { return NewElement(atom.Tr.String()) }

// Track creates a track element.
func Track() *Element { return NewElement(atom.Track.String()) }

// U creates an u element.
func U() *Element { return NewElement(atom.U.String()) }

// Ul creates an ul element.
func Ul() *Element { return NewElement(atom.Ul.String()) }

// Var creates a var element.
func Var() *Element { return NewElement(atom.Var.String()) }

// Video creates a video element.
func Video() *Element { return NewElement(atom.Video.String()) }

// Wbr creates a wbr element.
func Wbr() *Element { return NewElement(atom.Wbr.String()) }
