package navstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/krds/internal/navtree"
)

func TestNewStore_SeedsFromInitial(t *testing.T) {
	initial := navtree.NewPathSet(navtree.Path{1}, navtree.Path{1, 1})
	store := NewStore(initial)

	assert.True(t, store.IsOpen(navtree.Path{1}))
	assert.True(t, store.IsOpen(navtree.Path{1, 1}))
	assert.False(t, store.IsOpen(navtree.Path{0}))
	assert.False(t, store.IsOpen(navtree.Path{9, 9}))

	initial.Add(navtree.Path{0})
	assert.False(t, store.IsOpen(navtree.Path{0}), "store must not alias the initial set")
}

func TestNewStore_ZeroInitial(t *testing.T) {
	store := NewStore(navtree.PathSet{})
	assert.Equal(t, 0, store.OpenPaths().Len())
	store.Toggle(navtree.Path{0})
	assert.True(t, store.IsOpen(navtree.Path{0}))
}

func TestStore_Toggle(t *testing.T) {
	store := NewStore(navtree.NewPathSet(navtree.Path{0}))

	assert.False(t, store.Toggle(navtree.Path{0}))
	assert.False(t, store.IsOpen(navtree.Path{0}))

	assert.True(t, store.Toggle(navtree.Path{1, 2}))
	assert.True(t, store.IsOpen(navtree.Path{1, 2}))
	assert.False(t, store.IsOpen(navtree.Path{1}), "toggling a child must not open its parent")

	assert.True(t, store.Toggle(navtree.Path{0}))
	assert.Equal(t, []string{"0", "1.2"}, store.OpenPaths().Strings())
}

func TestStore_EnsureExpanded(t *testing.T) {
	store := NewStore(navtree.NewPathSet(navtree.Path{0}))
	store.Toggle(navtree.Path{2})

	opened := store.EnsureExpanded(navtree.NewPathSet(navtree.Path{0}, navtree.Path{1}, navtree.Path{1, 0}))

	assert.Equal(t, []navtree.Path{{1}, {1, 0}}, opened)
	assert.Equal(t, []string{"0", "1", "1.0", "2"}, store.OpenPaths().Strings())

	assert.Empty(t, store.EnsureExpanded(navtree.NewPathSet(navtree.Path{1})))
}

func TestStore_OpenPathsIsCopy(t *testing.T) {
	store := NewStore(navtree.NewPathSet(navtree.Path{0}))

	open := store.OpenPaths()
	open.Remove(navtree.Path{0})

	assert.True(t, store.IsOpen(navtree.Path{0}))
}

func TestStore_Subscribe(t *testing.T) {
	store := NewStore(navtree.NewPathSet())

	var changes []Change
	unsubscribe := store.Subscribe(func(c Change) {
		changes = append(changes, c)
	})

	var order []int
	store.Subscribe(func(Change) { order = append(order, 1) })
	store.Subscribe(func(Change) { order = append(order, 2) })

	store.Toggle(navtree.Path{0})
	store.EnsureExpanded(navtree.NewPathSet(navtree.Path{0}))
	store.EnsureExpanded(navtree.NewPathSet(navtree.Path{1}))

	require.Len(t, changes, 2, "no-op EnsureExpanded must not notify")
	assert.Equal(t, ChangeToggled, changes[0].Kind)
	assert.True(t, changes[0].Open)
	assert.Equal(t, []navtree.Path{{0}}, changes[0].Paths)
	assert.Equal(t, ChangeExpanded, changes[1].Kind)
	assert.Equal(t, []navtree.Path{{1}}, changes[1].Paths)
	assert.Equal(t, []int{1, 2, 1, 2}, order)

	unsubscribe()
	store.Toggle(navtree.Path{0})
	assert.Len(t, changes, 2)
	assert.Len(t, order, 6)
}

func TestChangeKind_String(t *testing.T) {
	assert.Equal(t, "toggled", ChangeToggled.String())
	assert.Equal(t, "expanded", ChangeExpanded.String())
	assert.Equal(t, "unknown", ChangeKind(99).String())
}
