package navstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/krds/internal/navtree"
	"github.com/conneroisu/krds/internal/testutils"
)

func rowByPath(t *testing.T, rows []Row, path string) Row {
	t.Helper()
	for _, r := range rows {
		if r.Path.String() == path {
			return r
		}
	}
	require.Failf(t, "row not found", "path %s", path)

	return Row{}
}

func TestView_InitialState(t *testing.T) {
	c := NewController(testutils.ServicesTree())
	rows := c.View()

	require.Len(t, rows, 9)

	notice := rowByPath(t, rows, "0")
	assert.Equal(t, 2, notice.Depth)
	assert.False(t, notice.Branch)
	assert.True(t, notice.Visible)
	assert.True(t, notice.Navigable)

	insurance := rowByPath(t, rows, "1")
	assert.True(t, insurance.Branch)
	assert.True(t, insurance.Open)
	assert.True(t, insurance.ActiveTrail)
	assert.False(t, insurance.Navigable)

	current := rowByPath(t, rows, "1.1.0")
	assert.Equal(t, 4, current.Depth)
	assert.True(t, current.Current)
	assert.True(t, current.Visible)
	assert.False(t, current.ActiveTrail)

	pension := rowByPath(t, rows, "2")
	assert.False(t, pension.Open)
	assert.True(t, pension.Visible)
	assert.False(t, rowByPath(t, rows, "2.0").Visible)

	var currentCount int
	for _, r := range rows {
		if r.Current {
			currentCount++
		}
	}
	assert.Equal(t, 1, currentCount)
}

func TestView_CollapsedAncestorHidesDescendants(t *testing.T) {
	c := NewController(testutils.ServicesTree())
	c.Toggle(navtree.Path{1})

	rows := c.View()

	assert.True(t, rowByPath(t, rows, "1").Visible)
	assert.False(t, rowByPath(t, rows, "1.1").Visible)
	assert.False(t, rowByPath(t, rows, "1.1.0").Visible)
	assert.True(t, rowByPath(t, rows, "1.1").Open, "inner state survives a collapsed parent")

	visible := VisibleRows(rows)
	var paths []string
	for _, r := range visible {
		paths = append(paths, r.Path.String())
	}
	assert.Equal(t, []string{"0", "1", "2"}, paths)
}

func TestView_FirstActiveIsTheOnlyCurrent(t *testing.T) {
	tree := &navtree.Tree{Sections: []*navtree.Node{
		testutils.ActiveLink("A", "/a"),
		testutils.ActiveLink("B", "/b"),
	}}

	rows := View(tree, NewStore(navtree.ResolveInitialExpansion(tree)))

	assert.True(t, rows[0].Current)
	assert.False(t, rows[1].Current)

	p, ok := Highlight(tree)
	require.True(t, ok)
	assert.Equal(t, "0", p.String())
}

func TestView_HreflessLeafAndExtraDepth(t *testing.T) {
	tree := &navtree.Tree{Sections: []*navtree.Node{
		testutils.Section("d2",
			testutils.Section("d3",
				testutils.Section("d4",
					testutils.ActiveLink("d5", "/d5"),
				),
			),
		),
		{Label: "dangling"},
	}}

	c := NewController(tree)
	rows := c.View()

	deep := rowByPath(t, rows, "0.0.0.0")
	assert.Equal(t, 5, deep.Depth)
	assert.True(t, deep.Visible)
	assert.True(t, deep.Current)

	dangling := rowByPath(t, rows, "1")
	assert.False(t, dangling.Navigable)
	assert.False(t, dangling.Branch)
}

func TestView_LeafOpenFlagIsFalse(t *testing.T) {
	// A store may hold a leaf path; the row still reports it closed.
	tree := &navtree.Tree{Sections: []*navtree.Node{testutils.Link("a", "/a")}}
	rows := View(tree, NewStore(navtree.NewPathSet(navtree.Path{0})))

	assert.False(t, rows[0].Open)
}
