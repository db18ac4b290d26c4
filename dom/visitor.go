package dom

import (
	"errors"
	"fmt"
)

// Visitor is the interface for read-only passes over a document tree.
//
// Implementations which want the canonical traversal for a node kind call
// WalkElement or WalkChildren with themselves as the visitor.
type Visitor interface {
	VisitElement(e *Element) error
	VisitText(text string, safe bool) error
	VisitAttr(name, value string) error
	VisitChildren(children []Node) error
}

// MutVisitor is the interface for passes which rewrite a tree in place.
// VisitText may change both the content and the safe-flag of t.
// VisitAttr may change the value of an attribute, VisitChildren may replace
// the children slice wholesale.
type MutVisitor interface {
	VisitElement(e *Element) error
	VisitText(t *Text) error
	VisitAttr(name string, value *string) error
	VisitChildren(children *[]Node) error
}

// --- Default walks ---------------------------------------------------------

// WalkElement is the default behaviour of Visitor.VisitElement: it visits all
// attributes of e in order, then the children of e.
func WalkElement(v Visitor, e *Element) error {
	for _, a := range e.attrs {
		if err := v.VisitAttr(a.Key, a.Val); err != nil {
			return err
		}
	}
	return v.VisitChildren(e.children)
}

// WalkChildren is the default behaviour of Visitor.VisitChildren: text nodes
// are dispatched to VisitText, elements to VisitElement.
func WalkChildren(v Visitor, children []Node) error {
	for _, ch := range children {
		if err := dispatch(v, ch); err != nil {
			return err
		}
	}
	return nil
}

func dispatch(v Visitor, n Node) error {
	switch n := n.(type) {
	case *Text:
		return v.VisitText(n.Content, n.Safe)
	case *Element:
		return v.VisitElement(n)
	}
	panic(fmt.Sprintf("dom: unknown node type %T", n))
}

// WalkElementMut is the default behaviour of MutVisitor.VisitElement.
// Attribute values are handed out by reference into the element.
func WalkElementMut(v MutVisitor, e *Element) error {
	for i := range e.attrs {
		if err := v.VisitAttr(e.attrs[i].Key, &e.attrs[i].Val); err != nil {
			return err
		}
	}
	return v.VisitChildren(&e.children)
}

// WalkChildrenMut is the default behaviour of MutVisitor.VisitChildren.
func WalkChildrenMut(v MutVisitor, children *[]Node) error {
	for _, ch := range *children {
		if err := dispatchMut(v, ch); err != nil {
			return err
		}
	}
	return nil
}

func dispatchMut(v MutVisitor, n Node) error {
	switch n := n.(type) {
	case *Text:
		return v.VisitText(n)
	case *Element:
		return v.VisitElement(n)
	}
	panic(fmt.Sprintf("dom: unknown node type %T", n))
}

// Accept starts a read-only traversal over a sequence of top-level nodes.
// It stops at the first error, which is returned unchanged.
func Accept(v Visitor, nodes ...Node) error {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if err := dispatch(v, n); err != nil {
			return err
		}
	}
	return nil
}

// AcceptMut starts a mutating traversal over a sequence of top-level nodes.
// The visitor's VisitChildren is called with nodes, so a pass may replace
// top-level nodes as well.
func AcceptMut(v MutVisitor, nodes *[]Node) error {
	return v.VisitChildren(nodes)
}

// --- Function adapters -----------------------------------------------------

// VisitorFuncs adapts a set of functions to the Visitor interface. A nil
// field selects the default behaviour. Element, if set, is called before
// the default walk of an element; returning SkipChildren omits the walk.
//
//	links := 0
//	v := &dom.VisitorFuncs{
//		Element: func(e *dom.Element) error {
//			if e.Tag() == "a" {
//				links++
//			}
//			return nil
//		},
//	}
//	err := dom.Accept(v, tree)
type VisitorFuncs struct {
	Element  func(e *Element) error
	Text     func(text string, safe bool) error
	Attr     func(name, value string) error
	Children func(children []Node) error
}

// SkipChildren may be returned by element hooks of VisitorFuncs and
// MutVisitorFuncs to skip the sub-tree of an element. It is never
// returned from a walk.
var SkipChildren = errors.New("skip children")

var _ Visitor = &VisitorFuncs{}

func (vf *VisitorFuncs) VisitElement(e *Element) error {
	if vf.Element != nil {
		if err := vf.Element(e); err == SkipChildren {
			return nil
		} else if err != nil {
			return err
		}
	}
	return WalkElement(vf, e)
}

func (vf *VisitorFuncs) VisitText(text string, safe bool) error {
	if vf.Text != nil {
		return vf.Text(text, safe)
	}
	return nil
}

func (vf *VisitorFuncs) VisitAttr(name, value string) error {
	if vf.Attr != nil {
		return vf.Attr(name, value)
	}
	return nil
}

func (vf *VisitorFuncs) VisitChildren(children []Node) error {
	if vf.Children != nil {
		if err := vf.Children(children); err != nil {
			return err
		}
	}
	return WalkChildren(vf, children)
}

// MutVisitorFuncs adapts a set of functions to the MutVisitor interface.
// Semantics of the fields are the same as for VisitorFuncs.
// Children, if set, is called before the children are walked and may
// replace them.
type MutVisitorFuncs struct {
	Element  func(e *Element) error
	Text     func(t *Text) error
	Attr     func(name string, value *string) error
	Children func(children *[]Node) error
}

var _ MutVisitor = &MutVisitorFuncs{}

func (vf *MutVisitorFuncs) VisitElement(e *Element) error {
	if vf.Element != nil {
		if err := vf.Element(e); err == SkipChildren {
			return nil
		} else if err != nil {
			return err
		}
	}
	return WalkElementMut(vf, e)
}

func (vf *MutVisitorFuncs) VisitText(t *Text) error {
	if vf.Text != nil {
		return vf.Text(t)
	}
	return nil
}

func (vf *MutVisitorFuncs) VisitAttr(name string, value *string) error {
	if vf.Attr != nil {
		return vf.Attr(name, value)
	}
	return nil
}

func (vf *MutVisitorFuncs) VisitChildren(children *[]Node) error {
	if vf.Children != nil {
		if err := vf.Children(children); err != nil {
			return err
		}
	}
	return WalkChildrenMut(vf, children)
}
