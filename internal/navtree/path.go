package navtree

import (
	"sort"
	"strconv"
	"strings"

	"github.com/conneroisu/krds/internal/errors"
)

// Path identifies a node by its child indices from the section list.
// Path{0} is the first section, Path{0, 2} that section's third child.
// Nodes carry no ids, so position is the only stable identity.
type Path []int

// ParsePath parses the dot-joined form produced by Path.String.
// The empty string is the root (empty) path.
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Path{}, nil
	}

	parts := strings.Split(s, ".")
	p := make(Path, 0, len(parts))
	for _, part := range parts {
		i, err := strconv.Atoi(part)
		if err != nil || i < 0 {
			return nil, errors.ErrInvalidPath(s)
		}
		p = append(p, i)
	}

	return p, nil
}

// String returns the dot-joined form, e.g. "0.2.1".
func (p Path) String() string {
	if len(p) == 0 {
		return ""
	}

	var b strings.Builder
	for i, idx := range p {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(idx))
	}

	return b.String()
}

// Depth returns the navigation depth of the node at p. Sections are depth 2
// because the title occupies depth 1.
func (p Path) Depth() int {
	return len(p) + 1
}

// Clone returns a copy that does not alias p.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	c := make(Path, len(p))
	copy(c, p)

	return c
}

// Child returns the path of the i-th child of p.
func (p Path) Child(i int) Path {
	c := make(Path, len(p), len(p)+1)
	copy(c, p)

	return append(c, i)
}

// Parent returns p without its last index. The parent of a section is the
// empty path.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return Path{}
	}

	return p[:len(p)-1].Clone()
}

// Equal reports whether p and q address the same node.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}

	return true
}

// IsAncestorOf reports whether p is a proper ancestor of q.
func (p Path) IsAncestorOf(q Path) bool {
	if len(p) == 0 || len(p) >= len(q) {
		return false
	}

	return p.Equal(q[:len(p)])
}

// Ancestors returns every proper ancestor of p from the section downwards,
// excluding p itself and the empty root path.
func (p Path) Ancestors() []Path {
	if len(p) < 2 {
		return nil
	}

	out := make([]Path, 0, len(p)-1)
	for n := 1; n < len(p); n++ {
		out = append(out, p[:n].Clone())
	}

	return out
}

// Compare orders paths in tree pre-order: a parent sorts before its
// children, siblings sort by index.
func (p Path) Compare(q Path) int {
	for i := 0; i < len(p) && i < len(q); i++ {
		switch {
		case p[i] < q[i]:
			return -1
		case p[i] > q[i]:
			return 1
		}
	}

	switch {
	case len(p) < len(q):
		return -1
	case len(p) > len(q):
		return 1
	default:
		return 0
	}
}

// PathSet is a set of node paths keyed by their string form.
// The zero value is not usable; use NewPathSet.
type PathSet struct {
	paths map[string]Path
}

// NewPathSet returns a set containing paths.
func NewPathSet(paths ...Path) PathSet {
	s := PathSet{paths: make(map[string]Path, len(paths))}
	for _, p := range paths {
		s.Add(p)
	}

	return s
}

// Add inserts p and reports whether it was absent.
func (s PathSet) Add(p Path) bool {
	key := p.String()
	if _, ok := s.paths[key]; ok {
		return false
	}
	s.paths[key] = p.Clone()

	return true
}

// Remove deletes p and reports whether it was present.
func (s PathSet) Remove(p Path) bool {
	key := p.String()
	if _, ok := s.paths[key]; !ok {
		return false
	}
	delete(s.paths, key)

	return true
}

// Has reports whether p is in the set.
func (s PathSet) Has(p Path) bool {
	_, ok := s.paths[p.String()]

	return ok
}

// Len returns the number of paths in the set.
func (s PathSet) Len() int {
	return len(s.paths)
}

// Paths returns the members in tree pre-order.
func (s PathSet) Paths() []Path {
	out := make([]Path, 0, len(s.paths))
	for _, p := range s.paths {
		out = append(out, p.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Compare(out[j]) < 0
	})

	return out
}

// Strings returns the members' string forms in tree pre-order.
func (s PathSet) Strings() []string {
	paths := s.Paths()
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = p.String()
	}

	return out
}

// Clone returns an independent copy of the set.
func (s PathSet) Clone() PathSet {
	c := PathSet{paths: make(map[string]Path, len(s.paths))}
	for k, p := range s.paths {
		c.paths[k] = p.Clone()
	}

	return c
}

// Union returns a new set holding the members of s and o.
func (s PathSet) Union(o PathSet) PathSet {
	c := s.Clone()
	for k, p := range o.paths {
		c.paths[k] = p.Clone()
	}

	return c
}

// Equal reports whether both sets hold the same paths.
func (s PathSet) Equal(o PathSet) bool {
	if len(s.paths) != len(o.paths) {
		return false
	}
	for k := range s.paths {
		if _, ok := o.paths[k]; !ok {
			return false
		}
	}

	return true
}

// IsSupersetOf reports whether every member of o is in s.
func (s PathSet) IsSupersetOf(o PathSet) bool {
	for k := range o.paths {
		if _, ok := s.paths[k]; !ok {
			return false
		}
	}

	return true
}
