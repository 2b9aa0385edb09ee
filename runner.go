package orthology

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/orthology/pkg/cache"
	"github.com/aretw0/orthology/pkg/domain"
	"github.com/aretw0/orthology/pkg/ports"
)

// Runner drives a full classification run: load the input, classify every
// tree, then hand the records of each target to a writer.
// This allows for easy testing and integration with different frontends
// (CLI, HTTP, MCP).
type Runner struct {
	Input  io.Reader
	Writer ports.RecordWriter

	// Targets restricts output to these taxa; empty means every taxon.
	Targets []string

	// Jobs bounds how many trees are classified at once (<= 0: unbounded).
	Jobs int

	// Cache, when set, serves tables computed by earlier runs.
	Cache *cache.Manager

	Logger *slog.Logger
}

// Result holds what a run computed, even when writing it failed.
type Result struct {
	Tables []*domain.Table
	// Hits reports, per tree, whether the table came from the cache.
	Hits []bool
}

// Run executes the pipeline. Configuration, topology and input errors abort
// before anything is written. Output errors do not stop the run: every write
// is attempted and the failures are joined into the returned error, next to
// a complete Result.
func (r *Runner) Run(ctx context.Context, engine *Engine) (*Result, error) {
	if r.Input == nil {
		return nil, fmt.Errorf("input reader must be set")
	}
	if r.Writer == nil {
		return nil, fmt.Errorf("record writer must be set")
	}
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	raw, err := io.ReadAll(r.Input)
	if err != nil {
		return nil, &domain.MalformedInputError{Err: fmt.Errorf("read input: %w", err)}
	}

	trees, err := engine.Load(ctx, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	logger.Debug("input loaded", "trees", len(trees))

	res := &Result{Hits: make([]bool, len(trees))}
	if r.Cache == nil {
		res.Tables, err = engine.ClassifyAll(ctx, trees, r.Jobs)
	} else {
		res.Tables, err = r.classifyCached(ctx, engine, raw, trees, res.Hits)
	}
	if err != nil {
		return nil, err
	}

	// Resolve every target up front so a typo aborts before any output.
	outputs := make([][]targetRecords, len(res.Tables))
	for i, table := range res.Tables {
		outputs[i], err = r.collect(table)
		if err != nil {
			return nil, err
		}
	}

	var errs []error
	for i, out := range outputs {
		for _, tr := range out {
			if err := r.Writer.Write(ctx, i, tr.target, tr.records); err != nil {
				logger.Error("write failed", "tree", i, "target", tr.target, "err", err)
				errs = append(errs, err)
			}
		}
	}
	return res, errors.Join(errs...)
}

func (r *Runner) classifyCached(ctx context.Context, engine *Engine, raw []byte, trees []ports.Node, hits []bool) ([]*domain.Table, error) {
	tables := make([]*domain.Table, len(trees))
	for i, tree := range trees {
		key := cache.Key(raw, i, engine.Separator(), engine.IDFirst())
		table, hit, err := r.Cache.GetOrCompute(ctx, key, func(ctx context.Context) (*domain.Table, error) {
			return engine.Classify(ctx, tree)
		})
		if err != nil {
			return nil, err
		}
		tables[i], hits[i] = table, hit
	}
	return tables, nil
}

type targetRecords struct {
	target  string
	records []domain.Record
}

func (r *Runner) collect(table *domain.Table) ([]targetRecords, error) {
	targets := r.Targets
	if len(targets) == 0 {
		targets = table.Taxa
	}
	out := make([]targetRecords, 0, len(targets))
	for _, target := range targets {
		records, err := table.Records(target)
		if err != nil {
			return nil, err
		}
		out = append(out, targetRecords{target: target, records: records})
	}
	return out, nil
}
