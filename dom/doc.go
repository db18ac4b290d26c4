/*
Package dom implements a small, typed document tree for HTML.

# Status

API is stable for element construction and traversal. Conversions to and from
other tree representations live in sub-packages.

# Overview

A document tree consists of exactly two kinds of nodes: elements and text.
Elements carry a tag name, an insertion-ordered set of attributes and an
ordered list of children. Text nodes carry a string and a flag telling
renderers whether the string is already escaped ("safe") or has to be escaped
on output.

Trees are built with a fluent API:

	page := dom.HTML().Child(
		dom.Head().Child(dom.Title().Child("Hello")),
		dom.Body().Child(
			dom.Div().Class("container").Child(
				dom.H1().Child("Hello, world!"),
			),
		),
	)

Builder calls never fail and do not validate tag names or attribute names.
Every node is owned by exactly one parent; there are no parent pointers.
Hence trees may not share sub-trees, and clients must not append the same
node twice.

# Traversal

Package dom defines two visitor interfaces, Visitor for read-only passes and
MutVisitor for passes which rewrite attributes, text or children in place.
Go does not have default method implementations, so the canonical walk is
provided by functions WalkElement, WalkChildren (and their Mut twins).
A visitor "inherits" the default behaviour for a node kind by calling the
walk function with itself as the visitor:

	func (v *myVisitor) VisitElement(e *dom.Element) error {
		if e.Tag() == "a" {
			v.links++
		}
		return dom.WalkElement(v, e)
	}

All walks are fail-fast: the first error returned by a visit method stops the
traversal and is returned unchanged to the caller.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'domtree.dom'
func tracer() tracing.Trace {
	return tracing.Select("domtree.dom")
}
