package navstate

import "github.com/conneroisu/krds/internal/navtree"

// OpenState is the read side of a Store.
type OpenState interface {
	IsOpen(p navtree.Path) bool
}

// Row is the view-model of one node, everything a navigation component
// needs to draw it.
type Row struct {
	Path  navtree.Path `json:"path"`
	Depth int          `json:"depth"`
	Label string       `json:"label"`
	Href  string       `json:"href,omitempty"`
	// Branch rows get an expand control; Open is meaningful only for them.
	Branch bool `json:"branch"`
	Open   bool `json:"open"`
	// Visible is false when some ancestor is collapsed.
	Visible bool `json:"visible"`
	// Current marks the page being shown.
	Current bool `json:"current"`
	// ActiveTrail marks the ancestors of the current row.
	ActiveTrail bool `json:"active_trail"`
	// Navigable is false for rows without an href; a hrefless leaf is shown
	// but goes nowhere.
	Navigable bool `json:"navigable"`
}

// Highlight returns the path of the node that receives current-page
// emphasis: the first node marked active, if any.
func Highlight(t *navtree.Tree) (navtree.Path, bool) {
	return navtree.FindActive(t)
}

// View flattens t into rows in pre-order, taking open flags from state.
// Every node is listed, hidden or not, so callers can animate collapses.
func View(t *navtree.Tree, state OpenState) []Row {
	current, hasCurrent := Highlight(t)
	return buildRows(t, state, current, hasCurrent)
}

func buildRows(t *navtree.Tree, state OpenState, current navtree.Path, hasCurrent bool) []Row {
	var rows []Row
	// hidden holds the shortest collapsed-or-hidden prefix seen so far.
	var hidden navtree.Path

	navtree.Walk(t, func(p navtree.Path, n *navtree.Node) bool {
		if hidden != nil && !hidden.IsAncestorOf(p) {
			hidden = nil
		}

		branch := n.IsBranch()
		open := branch && state.IsOpen(p)
		row := Row{
			Path:      p,
			Depth:     p.Depth(),
			Label:     n.Label,
			Href:      n.Href,
			Branch:    branch,
			Open:      open,
			Visible:   hidden == nil,
			Navigable: n.Navigable(),
		}
		if hasCurrent {
			row.Current = p.Equal(current)
			row.ActiveTrail = p.IsAncestorOf(current)
		}
		rows = append(rows, row)

		if hidden == nil && !open {
			hidden = p
		}

		return true
	})

	return rows
}

// VisibleRows filters rows down to the ones currently shown.
func VisibleRows(rows []Row) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if r.Visible {
			out = append(out, r)
		}
	}

	return out
}
