package navtree

import "golang.org/x/text/unicode/norm"

// WithCurrent returns a copy of t in which exactly the first node (in
// pre-order) whose Href equals href is active and every other node is not.
// When no node matches, the copy has no active node and ok is false.
// Hrefs are compared after NFC normalisation.
func WithCurrent(t *Tree, href string) (out *Tree, ok bool) {
	out = t.Clone()
	if out == nil {
		return nil, false
	}

	want := norm.NFC.String(href)
	matched := false
	Walk(out, func(_ Path, n *Node) bool {
		n.Active = false
		if !matched && href != "" && norm.NFC.String(n.Href) == want {
			n.Active = true
			matched = true
		}
		return true
	})

	return out, matched
}

// FindHref returns the path of the first node whose Href equals href.
func FindHref(t *Tree, href string) (Path, bool) {
	if href == "" {
		return nil, false
	}

	want := norm.NFC.String(href)
	var found Path
	Walk(t, func(p Path, n *Node) bool {
		if norm.NFC.String(n.Href) == want {
			found = p
			return false
		}
		return true
	})

	return found, found != nil
}
