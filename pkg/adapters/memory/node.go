package memory

import "github.com/aretw0/orthology/pkg/ports"

// Node is an immutable in-memory tree node implementing ports.Node.
type Node struct {
	label    string
	children []ports.Node
}

// Leaf creates a leaf node with the given OTU label.
func Leaf(label string) *Node {
	return &Node{label: label}
}

// Inner creates an unlabeled internal node.
func Inner(children ...*Node) *Node {
	return Named("", children...)
}

// Named creates an internal node carrying a label, such as a support value
// or clade name.
func Named(label string, children ...*Node) *Node {
	n := &Node{label: label, children: make([]ports.Node, len(children))}
	for i, c := range children {
		n.children[i] = c
	}
	return n
}

// Leaves is shorthand for an internal node whose children are all leaves.
func Leaves(labels ...string) *Node {
	children := make([]*Node, len(labels))
	for i, l := range labels {
		children[i] = Leaf(l)
	}
	return Inner(children...)
}

// Children returns the direct descendants of the node.
func (n *Node) Children() []ports.Node { return n.children }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// Label returns the node label.
func (n *Node) Label() string { return n.label }
