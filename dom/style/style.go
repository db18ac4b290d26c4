package style

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/domtree/dom"
)

// ErrInvalidStyle is returned for style attributes which cannot be parsed.
var ErrInvalidStyle = errors.New("invalid inline style")

// Declarations parses the value of a style attribute. Property names are
// converted to lower case.
func Declarations(text string) ([]*css.Declaration, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	if !strings.HasSuffix(text, ";") {
		text += ";" // otherwise douceur drops the value of the last declaration
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidStyle, text, err)
	}
	for _, d := range decls {
		d.Property = strings.ToLower(d.Property)
	}
	return decls, nil
}

// Format writes declarations in canonical form.
func Format(decls []*css.Declaration) string {
	s := make([]string, len(decls))
	for i, d := range decls {
		s[i] = d.String()
	}
	return strings.Join(s, " ")
}

// Set returns a function for dom.Element.With, which sets a single property
// of an element's style. Other properties are kept; an existing
// declaration of the same property is replaced.
//
//	dom.Div().With(style.Set("color", "red"))
//
// Malformed styles already present are overwritten.
func Set(property, value string) func(*dom.Element) {
	property = strings.ToLower(property)
	return func(e *dom.Element) {
		old, _ := e.Get("style")
		decls, err := Declarations(old)
		if err != nil {
			tracer().Errorf("style: replacing %v", err)
			decls = nil
		}
		found := false
		for _, d := range decls {
			if d.Property == property {
				d.Value, found = value, true
			}
		}
		if !found {
			decls = append(decls, &css.Declaration{Property: property, Value: value})
		}
		e.SetAttr("style", Format(decls))
	}
}

// Normalizer is a mutating visitor which rewrites all style attributes of
// a tree in canonical form. Style attributes left without declarations are
// removed.
type Normalizer struct {
	allowed map[string]bool
}

var _ dom.MutVisitor = &Normalizer{}

// NewNormalizer creates a normalizer. If properties are given, all other
// properties are dropped.
func NewNormalizer(properties ...string) *Normalizer {
	n := &Normalizer{}
	if len(properties) > 0 {
		n.allowed = make(map[string]bool, len(properties))
		for _, p := range properties {
			n.allowed[strings.ToLower(p)] = true
		}
	}
	return n
}

// Normalize rewrites the style attributes of a tree. It stops at the first
// malformed style attribute.
func Normalize(nodes *[]dom.Node, properties ...string) error {
	return dom.AcceptMut(NewNormalizer(properties...), nodes)
}

func (n *Normalizer) VisitElement(e *dom.Element) error {
	if s, ok := e.Get("style"); ok {
		decls, err := Declarations(s)
		if err != nil {
			return fmt.Errorf("<%s>: %w", e.Tag(), err)
		}
		decls = n.filter(decls)
		if len(decls) == 0 {
			e.RemoveAttr("style")
		} else {
			e.SetAttr("style", Format(decls))
		}
	}
	return dom.WalkElementMut(n, e)
}

func (n *Normalizer) filter(decls []*css.Declaration) []*css.Declaration {
	if n.allowed == nil {
		return decls
	}
	kept := decls[:0]
	for _, d := range decls {
		if n.allowed[d.Property] {
			kept = append(kept, d)
		} else {
			tracer().Debugf("style: dropping property %q", d.Property)
		}
	}
	return kept
}

func (n *Normalizer) VisitText(t *dom.Text) error {
	return nil
}

func (n *Normalizer) VisitAttr(name string, value *string) error {
	return nil
}

func (n *Normalizer) VisitChildren(children *[]dom.Node) error {
	return dom.WalkChildrenMut(n, children)
}
