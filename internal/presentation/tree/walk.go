package tree

import "github.com/aretw0/orthology/pkg/ports"

// visit is one node of a postorder walk, numbered the same way the
// traversal numbers clades: leaves and internal nodes share one counter.
type visit struct {
	id       int
	node     ports.Node
	children []int
}

// postorder lists every node of the tree with its postorder ID.
func postorder(root ports.Node) []visit {
	var out []visit
	var walk func(n ports.Node) int
	walk = func(n ports.Node) int {
		var kids []int
		for _, c := range n.Children() {
			kids = append(kids, walk(c))
		}
		id := len(out)
		out = append(out, visit{id: id, node: n, children: kids})
		return id
	}
	if root != nil {
		walk(root)
	}
	return out
}
