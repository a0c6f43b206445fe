package navtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/krds/internal/navtree"
	"github.com/conneroisu/krds/internal/testutils"
)

func TestWalk_PreOrder(t *testing.T) {
	tree := testutils.ServicesTree()

	var visited []string
	navtree.Walk(tree, func(p navtree.Path, _ *navtree.Node) bool {
		visited = append(visited, p.String())
		return true
	})

	assert.Equal(t, []string{"0", "1", "1.0", "1.1", "1.1.0", "1.1.1", "2", "2.0", "2.1"}, visited)
}

func TestWalk_StopsEarly(t *testing.T) {
	tree := testutils.ServicesTree()

	count := 0
	navtree.Walk(tree, func(p navtree.Path, _ *navtree.Node) bool {
		count++
		return p.String() != "1.0"
	})

	assert.Equal(t, 3, count)
}

func TestWalk_SkipsNilNodes(t *testing.T) {
	tree := &navtree.Tree{Sections: []*navtree.Node{nil, testutils.Link("a", "/a")}}

	var visited []string
	navtree.Walk(tree, func(p navtree.Path, _ *navtree.Node) bool {
		visited = append(visited, p.String())
		return true
	})

	assert.Equal(t, []string{"1"}, visited)
	navtree.Walk(nil, func(navtree.Path, *navtree.Node) bool {
		t.Fatal("nil tree must not be walked")
		return false
	})
}

func TestFindActive(t *testing.T) {
	t.Run("single active", func(t *testing.T) {
		p, ok := navtree.FindActive(testutils.ServicesTree())
		require.True(t, ok)
		assert.Equal(t, "1.1.0", p.String())
	})

	t.Run("no active", func(t *testing.T) {
		tree := &navtree.Tree{Sections: []*navtree.Node{testutils.Link("a", "/a")}}
		_, ok := navtree.FindActive(tree)
		assert.False(t, ok)
	})

	t.Run("first active in pre-order wins", func(t *testing.T) {
		tree := &navtree.Tree{Sections: []*navtree.Node{
			testutils.Section("S1", testutils.Link("L1", "/l1"), testutils.ActiveLink("L2", "/l2")),
			testutils.ActiveLink("S2", "/s2"),
		}}
		p, ok := navtree.FindActive(tree)
		require.True(t, ok)
		assert.Equal(t, "0.1", p.String())
	})

	t.Run("active parent before active child", func(t *testing.T) {
		tree := &navtree.Tree{Sections: []*navtree.Node{
			{Label: "S1", Href: "/s1", Active: true, Children: []*navtree.Node{
				testutils.ActiveLink("L1", "/l1"),
			}},
		}}
		p, ok := navtree.FindActive(tree)
		require.True(t, ok)
		assert.Equal(t, "0", p.String())
	})
}

func TestResolveInitialExpansion(t *testing.T) {
	tests := []struct {
		name     string
		tree     *navtree.Tree
		expected []string
	}{
		{
			name: "active link under one section",
			tree: &navtree.Tree{Sections: []*navtree.Node{
				testutils.Section("S1", testutils.ActiveLink("L1", "/l1")),
			}},
			expected: []string{"0"},
		},
		{
			name: "active section leaf needs no expansion",
			tree: &navtree.Tree{Sections: []*navtree.Node{
				testutils.ActiveLink("S1", "/s1"),
				testutils.Section("S2", testutils.Link("L1", "/l1")),
			}},
			expected: []string{},
		},
		{
			name:     "depth four active opens depth two and three only",
			tree:     testutils.ServicesTree(),
			expected: []string{"1", "1.1"},
		},
		{
			name: "active branch is not itself expanded",
			tree: &navtree.Tree{Sections: []*navtree.Node{
				testutils.Section("S1",
					&navtree.Node{Label: "L1", Href: "/l1", Active: true, Children: []*navtree.Node{
						testutils.Link("SL1", "/sl1"),
					}},
				),
			}},
			expected: []string{"0"},
		},
		{
			name: "no active node",
			tree: &navtree.Tree{Sections: []*navtree.Node{
				testutils.Section("S1", testutils.Link("L1", "/l1")),
			}},
			expected: []string{},
		},
		{
			name:     "nil tree",
			tree:     nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := navtree.ResolveInitialExpansion(tt.tree)
			assert.Equal(t, tt.expected, got.Strings())
		})
	}
}

func TestResolveInitialExpansion_DoesNotMutate(t *testing.T) {
	tree := testutils.ServicesTree()
	before := tree.Clone()

	_ = navtree.ResolveInitialExpansion(tree)

	assert.Equal(t, before, tree)
}

func TestBranches(t *testing.T) {
	got := navtree.Branches(testutils.ServicesTree())
	assert.Equal(t, []string{"1", "1.1", "2"}, got.Strings())
}

func TestTree_At(t *testing.T) {
	tree := testutils.ServicesTree()

	n, ok := tree.At(navtree.Path{1, 1, 0})
	require.True(t, ok)
	assert.Equal(t, "지역가입자", n.Label)

	_, ok = tree.At(navtree.Path{})
	assert.False(t, ok)
	_, ok = tree.At(navtree.Path{9})
	assert.False(t, ok)
	_, ok = tree.At(navtree.Path{0, 0})
	assert.False(t, ok)
	_, ok = tree.At(navtree.Path{-1})
	assert.False(t, ok)

	assert.Equal(t, 9, tree.Len())
}

func TestTree_CloneIsDeep(t *testing.T) {
	tree := testutils.ServicesTree()
	c := tree.Clone()

	c.Sections[1].Children[0].Label = "changed"
	c.Sections[1].Children = append(c.Sections[1].Children, testutils.Link("x", "/x"))

	assert.Equal(t, "자격 득실 확인", tree.Sections[1].Children[0].Label)
	assert.Len(t, tree.Sections[1].Children, 2)
	assert.Nil(t, (*navtree.Tree)(nil).Clone())
}
