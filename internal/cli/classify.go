package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/orthology"
	"github.com/aretw0/orthology/internal/presentation/tree"
	"github.com/aretw0/orthology/pkg/adapters/console"
	"github.com/aretw0/orthology/pkg/adapters/file"
	"github.com/aretw0/orthology/pkg/domain"
	"github.com/aretw0/orthology/pkg/ports"
)

// session bundles what every command builds before touching the input.
type session struct {
	opts   Options
	logger *slog.Logger
	engine *orthology.Engine
	raw    []byte
}

// newSession resolves the separator, builds the engine and reads the input.
func newSession(opts Options, streams Streams, hooks domain.LifecycleHooks) (*session, error) {
	logger, err := createLogger(opts.LogLevel, streams.Err)
	if err != nil {
		return nil, err
	}
	if err := ResolveSeparator(&opts, streams); err != nil {
		return nil, err
	}
	engine, err := createEngine(opts, logger, hooks)
	if err != nil {
		return nil, err
	}

	in, err := openInput(opts.Input, streams.In)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	raw, err := io.ReadAll(in)
	if err != nil {
		return nil, &domain.MalformedInputError{Source: opts.Input, Err: err}
	}
	return &session{opts: opts, logger: logger, engine: engine, raw: raw}, nil
}

func (s *session) trees(ctx context.Context) ([]ports.Node, error) {
	return s.engine.Load(ctx, bytes.NewReader(s.raw))
}

// RunClassify classifies every tree of the input and writes the records of
// each target: CSV files when opts.Output names a directory, the console
// otherwise.
func RunClassify(ctx context.Context, opts Options, streams Streams) error {
	if opts.Compact {
		return RunCompact(ctx, opts, streams)
	}

	s, err := newSession(opts, streams, domain.LifecycleHooks{})
	if err != nil {
		return err
	}

	if opts.DisplayTree {
		if err := s.displayTrees(ctx, streams.Out); err != nil {
			return err
		}
	}

	manager, closeCache, err := setupCache(ctx, s.opts, s.logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeCache(); err != nil {
			s.logger.Warn("Cache Close Failed", "error", err)
		}
	}()

	r := &orthology.Runner{
		Input:   bytes.NewReader(s.raw),
		Writer:  createWriter(s.opts, streams.Out),
		Targets: s.opts.Targets,
		Jobs:    s.opts.Jobs,
		Cache:   manager,
		Logger:  s.logger,
	}
	res, err := r.Run(ctx, s.engine)
	if res != nil {
		hits := 0
		for _, hit := range res.Hits {
			if hit {
				hits++
			}
		}
		s.logger.Info("Classification Finished", "trees", len(res.Tables), "cache_hits", hits)
	}
	return err
}

// createWriter picks the record sink for opts.
func createWriter(opts Options, out io.Writer) ports.RecordWriter {
	if opts.Output != "" {
		return file.NewCSVWriter(opts.Output, opts.Separator)
	}
	return console.NewWriter(out,
		console.WithJSON(opts.Format == "json"),
		console.WithColor(isTerminal(out)),
	)
}

func (s *session) displayTrees(ctx context.Context, out io.Writer) error {
	trees, err := s.trees(ctx)
	if err != nil {
		return err
	}
	for i, t := range trees {
		events, err := s.engine.Events(ctx, t)
		if err != nil {
			return err
		}
		if len(trees) > 1 {
			fmt.Fprintf(out, "[tree %d]\n", i+1)
		}
		fmt.Fprintln(out, tree.RenderASCII(t, events))
	}
	return nil
}
