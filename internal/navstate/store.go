// Package navstate holds the per-instance expansion state of a side
// navigation and the controller that keeps it consistent with the active
// page.
//
// A Store or Controller belongs to one mounted navigation component. They
// are synchronous and carry no locks: the host UI drives them from its
// event loop, one interaction at a time.
package navstate

import "github.com/conneroisu/krds/internal/navtree"

// ChangeKind says which operation produced a Change.
type ChangeKind int

const (
	// ChangeToggled is emitted by Toggle.
	ChangeToggled ChangeKind = iota
	// ChangeExpanded is emitted by EnsureExpanded when it opened something.
	ChangeExpanded
)

// String returns the string representation of the ChangeKind
func (k ChangeKind) String() string {
	switch k {
	case ChangeToggled:
		return "toggled"
	case ChangeExpanded:
		return "expanded"
	default:
		return "unknown"
	}
}

// Change describes one state transition, delivered to subscribers so the
// view can re-render.
type Change struct {
	Kind ChangeKind
	// Paths lists the paths whose state changed, in tree pre-order.
	Paths []navtree.Path
	// Open is the new state of every path in Paths.
	Open bool
}

// Store is the open/closed flag per branch path. Each path is either closed
// or open; Toggle flips one path and EnsureExpanded only ever opens.
type Store struct {
	open        navtree.PathSet
	subscribers []subscriber
	nextID      int
}

type subscriber struct {
	id int
	fn func(Change)
}

// NewStore returns a store whose open set is a copy of initial, normally the
// result of navtree.ResolveInitialExpansion.
func NewStore(initial navtree.PathSet) *Store {
	open := navtree.NewPathSet()
	for _, p := range initial.Paths() {
		open.Add(p)
	}

	return &Store{open: open}
}

// IsOpen reports whether the branch at p is expanded. Paths the store has
// never seen are closed.
func (s *Store) IsOpen(p navtree.Path) bool {
	return s.open.Has(p)
}

// Toggle flips the state of p and returns the new state. No other path is
// affected, including p's ancestors and descendants.
func (s *Store) Toggle(p navtree.Path) bool {
	open := !s.open.Has(p)
	if open {
		s.open.Add(p)
	} else {
		s.open.Remove(p)
	}

	s.emit(Change{Kind: ChangeToggled, Paths: []navtree.Path{p.Clone()}, Open: open})

	return open
}

// EnsureExpanded opens every path in paths and leaves all other state alone.
// It never closes anything. It returns the paths that were newly opened.
func (s *Store) EnsureExpanded(paths navtree.PathSet) []navtree.Path {
	var opened []navtree.Path
	for _, p := range paths.Paths() {
		if s.open.Add(p) {
			opened = append(opened, p)
		}
	}

	if len(opened) > 0 {
		s.emit(Change{Kind: ChangeExpanded, Paths: opened, Open: true})
	}

	return opened
}

// OpenPaths returns a copy of the current open set.
func (s *Store) OpenPaths() navtree.PathSet {
	return s.open.Clone()
}

// Subscribe registers fn to be called after every state change, in
// subscription order. The returned function removes the subscription.
func (s *Store) Subscribe(fn func(Change)) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})

	return func() {
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) emit(c Change) {
	subs := append([]subscriber(nil), s.subscribers...)
	for _, sub := range subs {
		sub.fn(c)
	}
}
