package dom

// Predicate is a test on nodes of a document tree.
type Predicate func(Node) bool

// IsText is a predicate to match text nodes.
func IsText(n Node) bool {
	_, ok := n.(*Text)
	return ok
}

// IsElement is a predicate to match element nodes.
func IsElement(n Node) bool {
	_, ok := n.(*Element)
	return ok
}

// HasTag returns a predicate matching elements with one of the given tag
// names.
func HasTag(tags ...string) Predicate {
	return func(n Node) bool {
		if e, ok := n.(*Element); ok {
			for _, t := range tags {
				if e.tag == t {
					return true
				}
			}
		}
		return false
	}
}

// HasAttr returns a predicate matching elements carrying attribute name.
func HasAttr(name string) Predicate {
	return func(n Node) bool {
		if e, ok := n.(*Element); ok {
			return e.attrIndex(name) >= 0
		}
		return false
	}
}

// FindAll collects all nodes of the trees rooted at nodes which match pred,
// in document order.
func FindAll(pred Predicate, nodes ...Node) []Node {
	f := &finder{pred: pred}
	f.visitNodes(nodes)
	tracer().Debugf("found %d nodes", len(f.found))
	return f.found
}

type finder struct {
	pred  Predicate
	found []Node
}

func (f *finder) visitNodes(nodes []Node) {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if f.pred(n) {
			f.found = append(f.found, n)
		}
		if e, ok := n.(*Element); ok {
			f.visitNodes(e.children)
		}
	}
}
