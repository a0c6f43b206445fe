// Package navtree models a side navigation hierarchy and resolves which of
// its branches must be expanded so that the active page is visible.
//
// A Tree is plain data supplied by the caller, usually decoded from a static
// navigation file. Nothing in this package mutates a Tree it is handed; the
// functions that produce a different tree (WithCurrent, Clone) return copies.
//
// Depth numbering follows the KRDS side navigation: the title is depth 1,
// sections are depth 2, their links depth 3 and sub-links depth 4.
package navtree

// MaxDepth is the deepest level a well-formed tree may use.
const MaxDepth = 4

// Node is one entry in the navigation hierarchy: a section, a link or a
// sub-link. A node without children is a leaf link; a node with children is
// an expandable branch whose Href, if set, stays navigable on its own.
type Node struct {
	Label    string  `yaml:"label" json:"label"`
	Href     string  `yaml:"href,omitempty" json:"href,omitempty"`
	Active   bool    `yaml:"active,omitempty" json:"active,omitempty"`
	Children []*Node `yaml:"children,omitempty" json:"children,omitempty"`
}

// IsBranch reports whether the node has children.
func (n *Node) IsBranch() bool {
	return n != nil && len(n.Children) > 0
}

// Navigable reports whether the node has somewhere to go.
func (n *Node) Navigable() bool {
	return n != nil && n.Href != ""
}

// Clone deep-copies the node and its descendants.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}

	c := &Node{
		Label:  n.Label,
		Href:   n.Href,
		Active: n.Active,
	}
	if len(n.Children) > 0 {
		c.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			c.Children[i] = child.Clone()
		}
	}

	return c
}

// Tree is a complete side navigation: the depth-1 title and its sections.
type Tree struct {
	Title    string  `yaml:"title" json:"title"`
	Href     string  `yaml:"href,omitempty" json:"href,omitempty"`
	Sections []*Node `yaml:"sections" json:"sections"`
}

// Clone deep-copies the tree.
func (t *Tree) Clone() *Tree {
	if t == nil {
		return nil
	}

	c := &Tree{Title: t.Title, Href: t.Href}
	if t.Sections != nil {
		c.Sections = make([]*Node, len(t.Sections))
		for i, s := range t.Sections {
			c.Sections[i] = s.Clone()
		}
	}

	return c
}

// At returns the node addressed by p. The empty path addresses no node.
func (t *Tree) At(p Path) (*Node, bool) {
	if t == nil || len(p) == 0 {
		return nil, false
	}

	nodes := t.Sections
	var n *Node
	for _, idx := range p {
		if idx < 0 || idx >= len(nodes) || nodes[idx] == nil {
			return nil, false
		}
		n = nodes[idx]
		nodes = n.Children
	}

	return n, true
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	count := 0
	Walk(t, func(Path, *Node) bool {
		count++
		return true
	})

	return count
}
