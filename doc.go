/*
Package domtree builds, transforms and renders HTML document trees.

# Overview

Trees are constructed with the fluent builder API of package dom:

	page := dom.HTML().Lang("en").Child(
		dom.Head().Child(dom.Title().Child("Hello")),
		dom.Body().Child(dom.H1().Child("Hello ", dom.Em().Child("World"))),
	)

Visitors of package dom walk or rewrite a tree, package dom/render turns it
into markup. Package markdown compiles markdown text into the same kind of
tree and extracts a table of contents (package markdown/outline).

This package offers one-call conveniences for the common cases.

# Status

Early draft, API may change frequently. Please stay patient.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package domtree

import "github.com/npillmayer/schuko/tracing"

// tracer will return a tracer. We are tracing to 'domtree'
func tracer() tracing.Trace {
	return tracing.Select("domtree")
}
