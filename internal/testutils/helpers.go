// Package testutils holds navigation fixtures shared by the package tests.
package testutils

import (
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conneroisu/krds/internal/navtree"
)

// Link returns a leaf node.
func Link(label, href string) *navtree.Node {
	return &navtree.Node{Label: label, Href: href}
}

// ActiveLink returns a leaf node marked active.
func ActiveLink(label, href string) *navtree.Node {
	return &navtree.Node{Label: label, Href: href, Active: true}
}

// Section returns a branch node without an href.
func Section(label string, children ...*navtree.Node) *navtree.Node {
	return &navtree.Node{Label: label, Children: children}
}

// ServicesYAML is ServicesTree in navigation file form.
const ServicesYAML = `
title: 주요 서비스
href: /services
sections:
  - label: 공지사항
    href: /notice
  - label: 건강보험
    children:
      - label: 자격 득실 확인
        href: /insurance/status
      - label: 보험료 조회
        children:
          - label: 지역가입자
            href: /insurance/fee/local
            active: true
          - label: 직장가입자
            href: /insurance/fee/work
  - label: 국민연금
    children:
      - label: 가입 내역
        href: /pension/history
      - label: 예상 연금액
        href: /pension/estimate
`

// ServicesTree is a four-level navigation with a single active sub-link at
// path 1.1.0 ("보험료 조회 > 지역가입자").
func ServicesTree() *navtree.Tree {
	return &navtree.Tree{
		Title: "주요 서비스",
		Href:  "/services",
		Sections: []*navtree.Node{
			Link("공지사항", "/notice"),
			Section("건강보험",
				Link("자격 득실 확인", "/insurance/status"),
				Section("보험료 조회",
					ActiveLink("지역가입자", "/insurance/fee/local"),
					Link("직장가입자", "/insurance/fee/work"),
				),
			),
			Section("국민연금",
				Link("가입 내역", "/pension/history"),
				Link("예상 연금액", "/pension/estimate"),
			),
		},
	}
}

// WriteNavFile writes content to name under dir and returns the full path.
func WriteNavFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// RandomTree builds a navigation tree from seed. Sections may nest down to
// depth 4 and at most `active` nodes are marked active, chosen uniformly
// among all nodes.
func RandomTree(seed int64, active int) *navtree.Tree {
	r := rand.New(rand.NewSource(seed))

	t := &navtree.Tree{Title: "root"}
	sections := 1 + r.Intn(5)
	for i := 0; i < sections; i++ {
		t.Sections = append(t.Sections, randomNode(r, navtree.Path{i}))
	}

	var all []*navtree.Node
	navtree.Walk(t, func(_ navtree.Path, n *navtree.Node) bool {
		all = append(all, n)
		return true
	})
	r.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	for i := 0; i < active && i < len(all); i++ {
		all[i].Active = true
	}

	return t
}

func randomNode(r *rand.Rand, p navtree.Path) *navtree.Node {
	n := &navtree.Node{Label: "node " + p.String()}
	if p.Depth() < navtree.MaxDepth && r.Intn(3) > 0 {
		children := 1 + r.Intn(4)
		for i := 0; i < children; i++ {
			n.Children = append(n.Children, randomNode(r, p.Child(i)))
		}
		if r.Intn(2) == 0 {
			n.Href = "/" + p.String()
		}
		return n
	}
	n.Href = "/" + p.String() + "/" + strconv.Itoa(r.Intn(100))

	return n
}

// AllPaths returns every node path of t in pre-order.
func AllPaths(t *navtree.Tree) []navtree.Path {
	var out []navtree.Path
	navtree.Walk(t, func(p navtree.Path, _ *navtree.Node) bool {
		out = append(out, p)
		return true
	})

	return out
}
