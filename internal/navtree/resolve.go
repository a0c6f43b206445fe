package navtree

// WalkFunc is called for every node in pre-order. Returning false stops the
// walk. The path is a fresh copy owned by the callee.
type WalkFunc func(p Path, n *Node) bool

// Walk visits every node of t in pre-order: a node before its children,
// siblings in index order. Nodes deeper than MaxDepth are visited like any
// other; nil entries are skipped.
func Walk(t *Tree, fn WalkFunc) {
	if t == nil {
		return
	}
	walkNodes(t.Sections, Path{}, fn)
}

func walkNodes(nodes []*Node, parent Path, fn WalkFunc) bool {
	for i, n := range nodes {
		if n == nil {
			continue
		}
		p := parent.Child(i)
		if !fn(p.Clone(), n) {
			return false
		}
		if !walkNodes(n.Children, p, fn) {
			return false
		}
	}

	return true
}

// FindActive returns the path of the first node marked active in pre-order.
// A tree with several active nodes is a configuration error; the first one
// wins and the others are ignored here (Validate reports them).
func FindActive(t *Tree) (Path, bool) {
	var found Path
	Walk(t, func(p Path, n *Node) bool {
		if n.Active {
			found = p
			return false
		}
		return true
	})

	return found, found != nil
}

// ResolveInitialExpansion returns the paths that must be open for the active
// node to be visible: every proper ancestor of the first active node. The
// active node itself is not included even when it is a branch. A tree with
// no active node yields an empty set.
func ResolveInitialExpansion(t *Tree) PathSet {
	active, ok := FindActive(t)
	if !ok {
		return NewPathSet()
	}

	return NewPathSet(active.Ancestors()...)
}

// Branches returns the paths of every node that has children.
func Branches(t *Tree) PathSet {
	s := NewPathSet()
	Walk(t, func(p Path, n *Node) bool {
		if n.IsBranch() {
			s.Add(p)
		}
		return true
	})

	return s
}
