package navstate

import (
	"context"

	"github.com/conneroisu/krds/internal/logging"
	"github.com/conneroisu/krds/internal/navtree"
)

// Controller owns the tree and expansion state of one mounted navigation
// instance. Create it on mount with the first tree, feed it every new tree
// or route change, and drop it on unmount.
type Controller struct {
	tree   *navtree.Tree
	store  *Store
	active navtree.Path
	logger logging.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger logging.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger.WithComponent("navstate")
		}
	}
}

// NewController seeds a store from the resolver for tree.
func NewController(tree *navtree.Tree, opts ...Option) *Controller {
	c := &Controller{
		tree:   tree,
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.store = NewStore(navtree.ResolveInitialExpansion(tree))
	c.active, _ = navtree.FindActive(tree)

	c.logger.Debug(context.Background(), "navigation mounted",
		"active", c.active.String(),
		"open", c.store.OpenPaths().Strings())

	return c
}

// Tree returns the tree currently rendered. It must not be modified.
func (c *Controller) Tree() *navtree.Tree {
	return c.tree
}

// Store exposes the underlying expansion state, e.g. to subscribe to it.
func (c *Controller) Store() *Store {
	return c.store
}

// Active returns the path of the active node, if any.
func (c *Controller) Active() (navtree.Path, bool) {
	return c.active.Clone(), c.active != nil
}

// IsOpen reports whether the branch at p is expanded.
func (c *Controller) IsOpen(p navtree.Path) bool {
	return c.store.IsOpen(p)
}

// OpenPaths returns the current open set.
func (c *Controller) OpenPaths() navtree.PathSet {
	return c.store.OpenPaths()
}

// Toggle flips the branch at p. Leaves and paths that do not exist in the
// current tree are ignored and false is returned.
func (c *Controller) Toggle(p navtree.Path) bool {
	n, ok := c.tree.At(p)
	if !ok || !n.IsBranch() {
		c.logger.Debug(context.Background(), "toggle ignored", "path", p.String(), "found", ok)
		return false
	}

	open := c.store.Toggle(p)
	c.logger.Debug(context.Background(), "branch toggled", "path", p.String(), "open", open)

	return true
}

// SetTree replaces the rendered tree. When the active node's path differs
// from the previous one its ancestors are forced open; manual expansions
// are kept either way. A tree with no active node forces nothing open.
func (c *Controller) SetTree(tree *navtree.Tree) {
	c.tree = tree

	active, ok := navtree.FindActive(tree)
	if !ok {
		if c.active != nil {
			c.logger.Debug(context.Background(), "active node gone", "previous", c.active.String())
		}
		c.active = nil
		return
	}

	if active.Equal(c.active) {
		return
	}

	c.active = active
	opened := c.store.EnsureExpanded(navtree.NewPathSet(active.Ancestors()...))
	c.logger.Debug(context.Background(), "active node changed",
		"active", active.String(),
		"opened", len(opened))
}

// Navigate handles a client-side route change: the node whose href equals
// href becomes active and the tree is re-synced. It reports whether any
// node matched; when none does, no node is active afterwards.
func (c *Controller) Navigate(href string) bool {
	tree, ok := navtree.WithCurrent(c.tree, href)
	if !ok {
		c.logger.Debug(context.Background(), "route not in navigation", "href", href)
	}
	c.SetTree(tree)

	return ok
}

// View returns the render view-model for the current tree and state.
func (c *Controller) View() []Row {
	return buildRows(c.tree, c.store, c.active, c.active != nil)
}

// Breadcrumb returns the trail down to the active node, or just the title
// when nothing is active.
func (c *Controller) Breadcrumb() []navtree.Crumb {
	return navtree.Trail(c.tree, c.active)
}
