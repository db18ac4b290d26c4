package render

import (
	"strings"

	"golang.org/x/net/html"
)

var bodyEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeBody escapes s for inclusion as text between tags. It replaces
// '&', '<' and '>' by character references. Quotes are left alone.
func EscapeBody(s string) string {
	return bodyEscaper.Replace(s)
}

// EscapeAttr escapes s for inclusion in a double-quoted attribute value.
// Besides the characters escaped by EscapeBody it escapes both kinds of
// quotes and carriage returns.
func EscapeAttr(s string) string {
	return html.EscapeString(s)
}
