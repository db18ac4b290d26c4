package markdown

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/npillmayer/schuko"
)

// RawHTMLPolicy decides what happens to raw HTML contained in markdown
// sources.
type RawHTMLPolicy int8

const (
	RawHTMLKeep     RawHTMLPolicy = iota // embed raw HTML verbatim
	RawHTMLSanitize                      // embed raw HTML after sanitizing it
	RawHTMLDrop                          // drop raw HTML
)

func (p RawHTMLPolicy) String() string {
	switch p {
	case RawHTMLSanitize:
		return "sanitize"
	case RawHTMLDrop:
		return "drop"
	}
	return "keep"
}

// ParseRawHTMLPolicy reads a policy from its name (case insensitive).
// Unknown names yield RawHTMLKeep and false.
func ParseRawHTMLPolicy(name string) (RawHTMLPolicy, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "keep":
		return RawHTMLKeep, true
	case "sanitize":
		return RawHTMLSanitize, true
	case "drop":
		return RawHTMLDrop, true
	}
	return RawHTMLKeep, false
}

// Option configures parsing and compiling of markdown.
type Option func(*options)

type options struct {
	components        Components
	tables            bool
	footnotes         bool
	strikethrough     bool
	tasklists         bool
	headingAttributes bool
	linkify           bool
	rawHTML           RawHTMLPolicy
	sanitizer         *bluemonday.Policy
}

func defaultOptions() *options {
	return &options{
		components:        DefaultComponents{},
		tables:            true,
		footnotes:         true,
		strikethrough:     true,
		headingAttributes: true,
	}
}

func newOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if o.rawHTML == RawHTMLSanitize && o.sanitizer == nil {
		o.sanitizer = bluemonday.UGCPolicy()
	}
	return o
}

// WithComponents sets the element factories used by the compiler.
// nil selects DefaultComponents.
func WithComponents(c Components) Option {
	return func(o *options) {
		if c == nil {
			c = DefaultComponents{}
		}
		o.components = c
	}
}

// WithTables switches GFM tables on or off. Default is on.
func WithTables(on bool) Option {
	return func(o *options) { o.tables = on }
}

// WithFootnotes switches footnotes on or off. Default is on.
func WithFootnotes(on bool) Option {
	return func(o *options) { o.footnotes = on }
}

// WithStrikethrough switches ~~strikethrough~~ on or off. Default is on.
func WithStrikethrough(on bool) Option {
	return func(o *options) { o.strikethrough = on }
}

// WithTaskLists switches task list items on or off. Default is off.
// The compiler does not support task list markers and will fail with
// ErrUnsupportedEvent for any task list item, if switched on.
func WithTaskLists(on bool) Option {
	return func(o *options) { o.tasklists = on }
}

// WithHeadingAttributes switches heading attributes (`## Title {#id .class}`)
// on or off. Default is on.
func WithHeadingAttributes(on bool) Option {
	return func(o *options) { o.headingAttributes = on }
}

// WithLinkify switches auto-detection of bare URLs on or off.
// Default is off.
func WithLinkify(on bool) Option {
	return func(o *options) { o.linkify = on }
}

// WithRawHTML sets the policy for raw HTML. Default is RawHTMLKeep.
func WithRawHTML(policy RawHTMLPolicy) Option {
	return func(o *options) { o.rawHTML = policy }
}

// WithSanitizer sets the policy for RawHTMLSanitize and switches raw HTML
// handling to RawHTMLSanitize. The default sanitizer is bluemonday's
// UGCPolicy.
func WithSanitizer(p *bluemonday.Policy) Option {
	return func(o *options) {
		o.rawHTML = RawHTMLSanitize
		o.sanitizer = p
	}
}

// Configuration keys read by OptionsFromConfig.
const (
	ConfTables            = "markdown.tables"
	ConfFootnotes         = "markdown.footnotes"
	ConfStrikethrough     = "markdown.strikethrough"
	ConfTaskLists         = "markdown.tasklists"
	ConfHeadingAttributes = "markdown.headingattributes"
	ConfLinkify           = "markdown.linkify"
	ConfRawHTML           = "markdown.rawhtml"
)

// OptionsFromConfig creates options from an application configuration.
// Keys which are not set leave the respective default in place.
// An unknown raw HTML policy is ignored (with a trace message).
func OptionsFromConfig(conf schuko.Configuration) []Option {
	if conf == nil {
		return nil
	}
	var opts []Option
	flags := []struct {
		key string
		opt func(bool) Option
	}{
		{ConfTables, WithTables},
		{ConfFootnotes, WithFootnotes},
		{ConfStrikethrough, WithStrikethrough},
		{ConfTaskLists, WithTaskLists},
		{ConfHeadingAttributes, WithHeadingAttributes},
		{ConfLinkify, WithLinkify},
	}
	for _, f := range flags {
		if conf.IsSet(f.key) {
			opts = append(opts, f.opt(conf.GetBool(f.key)))
		}
	}
	if conf.IsSet(ConfRawHTML) {
		name := conf.GetString(ConfRawHTML)
		if p, ok := ParseRawHTMLPolicy(name); ok {
			opts = append(opts, WithRawHTML(p))
		} else {
			tracer().Errorf("unknown raw HTML policy %q, ignored", name)
		}
	}
	return opts
}
