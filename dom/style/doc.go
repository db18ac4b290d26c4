/*
Package style handles inline CSS of document trees.

Inline styles are kept as plain style attributes. This package parses them
with github.com/aymerick/douceur and writes them back in a canonical form:

	style="COLOR : red;margin:0"   →   style="color: red; margin: 0;"

Normalize applies this to a whole tree and may restrict the set of allowed
properties. Set merges single declarations into an element's style.

# Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'domtree.style'
func tracer() tracing.Trace {
	return tracing.Select("domtree.style")
}
