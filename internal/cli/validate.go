package cli

import (
	"context"
	"fmt"

	"github.com/aretw0/orthology/pkg/domain"
)

// RunValidate checks every tree of the input without classifying it and
// reports all structural problems at once.
func RunValidate(ctx context.Context, opts Options, streams Streams) error {
	s, err := newSession(opts, streams, domain.LifecycleHooks{})
	if err != nil {
		return err
	}
	trees, err := s.trees(ctx)
	if err != nil {
		return err
	}

	mode := domain.ModePairwise
	if opts.Compact {
		mode = domain.ModeCompact
	}
	for i, t := range trees {
		if err := s.engine.Validate(t, mode); err != nil {
			return fmt.Errorf("tree %d: %w", i+1, err)
		}
	}
	printSystemMessage(streams.Out, "%d tree(s) valid for %s classification.", len(trees), mode)
	return nil
}
