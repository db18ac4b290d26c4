/*
Package markdown compiles markdown text into document trees.

# Status

Work in progress. Task list items are not supported; task list parsing is
off by default.

# Overview

Compilation is split into two steps. First, markdown text is parsed into a
flat stream of events (see Event), much like a SAX parser would report an
XML document: containers such as paragraphs, lists or links produce a Start
and an End event, leaves such as text or line breaks a single event.
Parse uses goldmark for this step, but clients are free to provide event
streams of their own.

Second, Compile builds a document tree from an event stream. It keeps open
containers on an explicit stack, hence deeply nested documents do not
recurse. Every element is created by a factory method of a Components
implementation, which allows clients to decorate the output:

	type classy struct {
		markdown.DefaultComponents
	}

	func (classy) Blockquote() *dom.Element {
		return dom.Blockquote().Class("quote")
	}

	nodes, toc, err := markdown.Render(text, markdown.WithComponents(classy{}))

Render combines both steps and extracts a table of contents from the
resulting tree (see package outline).

The compiler never escapes text; this is left to the renderer. Raw HTML
contained in markdown documents is embedded as safe text, subject to a
RawHTMLPolicy.

# Configuration

Options may be read from an application configuration with
OptionsFromConfig. Keys are

	markdown.tables             bool
	markdown.footnotes          bool
	markdown.strikethrough      bool
	markdown.tasklists          bool
	markdown.headingattributes  bool
	markdown.linkify            bool
	markdown.rawhtml            keep | sanitize | drop

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package markdown

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'domtree.markdown'
func tracer() tracing.Trace {
	return tracing.Select("domtree.markdown")
}
