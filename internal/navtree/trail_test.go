package navtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/krds/internal/navtree"
	"github.com/conneroisu/krds/internal/testutils"
)

func labels(crumbs []navtree.Crumb) []string {
	out := make([]string, len(crumbs))
	for i, c := range crumbs {
		out[i] = c.Label
	}

	return out
}

func TestTrail(t *testing.T) {
	tree := testutils.ServicesTree()

	crumbs := navtree.Trail(tree, navtree.Path{1, 1, 0})
	require.Len(t, crumbs, 4)
	assert.Equal(t, []string{"주요 서비스", "건강보험", "보험료 조회", "지역가입자"}, labels(crumbs))
	assert.Equal(t, "/services", crumbs[0].Href)
	assert.Nil(t, crumbs[0].Path)
	assert.Equal(t, navtree.Path{1, 1}, crumbs[2].Path)
	assert.True(t, crumbs[3].Current)
	assert.False(t, crumbs[2].Current)
}

func TestTrail_UnknownPath(t *testing.T) {
	crumbs := navtree.Trail(testutils.ServicesTree(), navtree.Path{7})
	assert.Equal(t, []string{"주요 서비스"}, labels(crumbs))
	assert.False(t, crumbs[0].Current)

	assert.Nil(t, navtree.Trail(nil, navtree.Path{0}))
}

func TestTrail_NoTitle(t *testing.T) {
	tree := &navtree.Tree{Sections: []*navtree.Node{testutils.Link("a", "/a")}}

	crumbs := navtree.Trail(tree, navtree.Path{0})
	assert.Equal(t, []string{"a"}, labels(crumbs))
	assert.True(t, crumbs[0].Current)
}

func TestCollapseTrail(t *testing.T) {
	crumbs := []navtree.Crumb{
		{Label: "Home"}, {Label: "Products"}, {Label: "Electronics"},
		{Label: "Computers"}, {Label: "Laptops"}, {Label: "Gaming", Current: true},
	}

	tests := []struct {
		name     string
		opts     navtree.CollapseOptions
		expected []string
	}{
		{
			name:     "disabled",
			opts:     navtree.CollapseOptions{},
			expected: []string{"Home", "Products", "Electronics", "Computers", "Laptops", "Gaming"},
		},
		{
			name:     "fits",
			opts:     navtree.CollapseOptions{MaxItems: 6},
			expected: []string{"Home", "Products", "Electronics", "Computers", "Laptops", "Gaming"},
		},
		{
			name:     "max four keeps two trailing",
			opts:     navtree.CollapseOptions{MaxItems: 4},
			expected: []string{"Home", "...", "Laptops", "Gaming"},
		},
		{
			name:     "two leading",
			opts:     navtree.CollapseOptions{MaxItems: 4, Before: 2},
			expected: []string{"Home", "Products", "...", "Gaming"},
		},
		{
			name:     "at least one trailing",
			opts:     navtree.CollapseOptions{MaxItems: 2},
			expected: []string{"Home", "...", "Gaming"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := navtree.CollapseTrail(crumbs, tt.opts)
			assert.Equal(t, tt.expected, labels(got))
		})
	}

	collapsed := navtree.CollapseTrail(crumbs, navtree.CollapseOptions{MaxItems: 4})
	assert.True(t, collapsed[1].Ellipsis)
	assert.True(t, collapsed[3].Current)
}
