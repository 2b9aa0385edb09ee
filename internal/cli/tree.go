package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/orthology/internal/presentation/tree"
	"github.com/aretw0/orthology/pkg/domain"
)

// RunTree draws every tree of the input with its inferred events, as ASCII
// art or, with opts.Mermaid, as a Mermaid flowchart highlighting targets.
func RunTree(ctx context.Context, opts Options, streams Streams) error {
	s, err := newSession(opts, streams, domain.LifecycleHooks{})
	if err != nil {
		return err
	}
	if !opts.Mermaid {
		return s.displayTrees(ctx, streams.Out)
	}

	trees, err := s.trees(ctx)
	if err != nil {
		return err
	}
	var overlay *tree.Overlay
	if len(opts.Targets) > 0 {
		overlay = &tree.Overlay{Targets: opts.Targets}
	}
	for _, t := range trees {
		events, err := s.engine.Events(ctx, t)
		if err != nil {
			return err
		}
		fmt.Fprint(streams.Out, tree.GenerateMermaid(t, events, overlay))
	}
	return nil
}
