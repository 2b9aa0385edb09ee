package ports

import (
	"context"
	"io"
)

// Node is the capability set the traversal needs from a rooted tree.
// Leaves and internal nodes share the type and are told apart by IsLeaf.
// Implementations must return the same children, in the same order, on every
// call for the duration of a traversal.
type Node interface {
	// Children returns the direct descendants of the node.
	Children() []Node

	// IsLeaf reports whether the node has no children.
	IsLeaf() bool

	// Label returns the node name; for leaves this is the OTU label.
	Label() string
}

// TreeLoader parses serialized trees.
type TreeLoader interface {
	// Load reads every tree in r, in input order.
	// Parse failures are reported as *domain.MalformedInputError.
	Load(ctx context.Context, r io.Reader) ([]Node, error)
}
