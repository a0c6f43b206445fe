package navtree

// Crumb is one breadcrumb entry.
type Crumb struct {
	Label string `json:"label"`
	Href  string `json:"href,omitempty"`
	// Path is nil for the title crumb and the ellipsis.
	Path     Path `json:"path,omitempty"`
	Current  bool `json:"current,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// Trail returns the breadcrumb for the node at p: the title followed by every
// node from the section down to p, the last one marked current. An empty
// title is omitted. A path that does not resolve yields only the title.
func Trail(t *Tree, p Path) []Crumb {
	if t == nil {
		return nil
	}

	var crumbs []Crumb
	if t.Title != "" {
		crumbs = append(crumbs, Crumb{Label: t.Title, Href: t.Href})
	}

	if _, ok := t.At(p); !ok {
		return crumbs
	}

	for n := 1; n <= len(p); n++ {
		node, _ := t.At(p[:n])
		crumbs = append(crumbs, Crumb{
			Label: node.Label,
			Href:  node.Href,
			Path:  p[:n].Clone(),
		})
	}
	crumbs[len(crumbs)-1].Current = true

	return crumbs
}

// CollapseOptions controls how a long trail is shortened.
type CollapseOptions struct {
	// MaxItems is the number of entries shown, ellipsis included, once the
	// trail is longer than MaxItems. Zero disables collapsing.
	MaxItems int
	// Before is the number of leading crumbs kept. Zero means one.
	Before int
}

// CollapseTrail shortens a trail longer than MaxItems to Before leading
// crumbs, one ellipsis crumb and as many trailing crumbs as the remaining
// slots allow (at least one). The input is returned unchanged when no
// collapsing applies.
func CollapseTrail(crumbs []Crumb, opts CollapseOptions) []Crumb {
	if opts.MaxItems <= 0 || len(crumbs) <= opts.MaxItems {
		return crumbs
	}

	before := opts.Before
	if before <= 0 {
		before = 1
	}
	after := max(1, opts.MaxItems-1-before)
	if before+after >= len(crumbs) {
		return crumbs
	}

	out := make([]Crumb, 0, before+after+1)
	out = append(out, crumbs[:before]...)
	out = append(out, Crumb{Label: "...", Ellipsis: true})
	out = append(out, crumbs[len(crumbs)-after:]...)

	return out
}
