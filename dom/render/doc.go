/*
Package render serializes document trees to HTML.

The renderer is itself a read-only visitor (dom.Visitor). It writes every
element as start tag, attributes, children and end tag, with two exceptions:
void elements (see dom.IsVoid) are written without children and without
end tag, and any element named "html" is preceded by a doctype declaration.

Text is escaped for HTML body context, attribute values for double-quoted
attribute context. Text nodes flagged as safe are written unchanged.

	s, err := render.String(dom.P().Child("Fish & Chips"))
	// s == "<p>Fish &amp; Chips</p>"

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package render

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'domtree.render'
func tracer() tracing.Trace {
	return tracing.Select("domtree.render")
}
