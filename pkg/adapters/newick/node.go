package newick

import (
	"github.com/aretw0/orthology/pkg/ports"
	"github.com/evolbioinfo/gotree/tree"
)

// node is an immutable snapshot of a gotree node, rooted the way the input
// was written.
type node struct {
	label    string
	children []ports.Node
}

func (n *node) Children() []ports.Node { return n.children }
func (n *node) IsLeaf() bool           { return len(n.children) == 0 }
func (n *node) Label() string          { return n.label }

// convert walks the gotree neighbourhood graph from cur, treating every
// neighbour except parent as a child. quoted holds the labels masked out of
// the text before parsing.
func convert(cur, parent *tree.Node, quoted []string) *node {
	n := &node{label: restoreLabel(cur.Name(), quoted)}
	for _, nb := range cur.Neigh() {
		if nb == parent {
			continue
		}
		n.children = append(n.children, convert(nb, cur, quoted))
	}
	return n
}
