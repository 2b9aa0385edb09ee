package memory

import (
	"context"
	"io"

	"github.com/aretw0/orthology/pkg/ports"
)

// Loader implements ports.TreeLoader over trees built in memory.
// The reader passed to Load is ignored, which makes the Loader handy for
// injecting fixed trees into an engine under test.
type Loader struct {
	trees []ports.Node
}

// NewLoader creates a Loader that always returns the given trees.
func NewLoader(trees ...*Node) *Loader {
	l := &Loader{trees: make([]ports.Node, len(trees))}
	for i, t := range trees {
		l.trees[i] = t
	}
	return l
}

// Load returns the configured trees.
func (l *Loader) Load(ctx context.Context, _ io.Reader) ([]ports.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]ports.Node(nil), l.trees...), nil
}
