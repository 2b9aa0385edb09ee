package orthology

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/orthology/internal/runtime"
	"github.com/aretw0/orthology/internal/validator"
	"github.com/aretw0/orthology/pkg/adapters/newick"
	"github.com/aretw0/orthology/pkg/domain"
	"github.com/aretw0/orthology/pkg/ports"
	"github.com/aretw0/orthology/pkg/species"
	"golang.org/x/sync/errgroup"
)

// Engine is the high-level entry point of the library.
// It wraps the internal traversal and is safe for concurrent use.
type Engine struct {
	annotator *runtime.Annotator
	extractor *species.Extractor
	loader    ports.TreeLoader
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	separator string
	idFirst   bool
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithSeparator sets the string joining species and identifier in leaf labels.
func WithSeparator(sep string) Option {
	return func(e *Engine) {
		e.separator = sep
	}
}

// WithIDFirst selects labels written as "<id><sep><species>".
func WithIDFirst(idFirst bool) Option {
	return func(e *Engine) {
		e.idFirst = idFirst
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLoader injects a custom TreeLoader, bypassing the default Newick loader.
func WithLoader(l ports.TreeLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes a new Engine. A separator is required.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	ext, err := species.New(eng.separator, eng.idFirst)
	if err != nil {
		return nil, err
	}
	eng.extractor = ext

	if eng.loader == nil {
		eng.loader = newick.NewLoader()
	}

	// Ensure logger is initialized (so we don't pass nil to runtime, which would overwrite its default)
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	eng.logger = eng.logger.With("separator", eng.separator)

	eng.annotator = runtime.NewAnnotator(ext,
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(eng.hooks),
	)
	return eng, nil
}

// Separator returns the configured label separator.
func (e *Engine) Separator() string { return e.separator }

// IDFirst reports whether labels carry the identifier before the species.
func (e *Engine) IDFirst() bool { return e.idFirst }

// Species returns the species of a leaf label.
func (e *Engine) Species(label string) (string, error) {
	return e.extractor.Species(label)
}

// Load reads every tree in r with the configured loader.
func (e *Engine) Load(ctx context.Context, r io.Reader) ([]ports.Node, error) {
	return e.loader.Load(ctx, r)
}

// Classify builds the exhaustive pairwise relationship table of a tree.
func (e *Engine) Classify(ctx context.Context, root ports.Node) (*domain.Table, error) {
	rec := runtime.NewPairwiseRecorder()
	if _, err := e.annotator.Run(ctx, root, rec); err != nil {
		return nil, err
	}
	return rec.Table()
}

// Compact produces the node-level statements of a binary tree.
func (e *Engine) Compact(ctx context.Context, root ports.Node) ([]domain.Statement, error) {
	rec := runtime.NewCompactRecorder()
	if _, err := e.annotator.Run(ctx, root, rec); err != nil {
		return nil, err
	}
	return rec.Statements()
}

// Events returns the event inferred at every internal node, keyed by the
// node's postorder index (leaves included in the numbering).
func (e *Engine) Events(ctx context.Context, root ports.Node) (map[int]domain.Event, error) {
	rec := runtime.NewEventRecorder()
	if _, err := e.annotator.Run(ctx, root, rec); err != nil {
		return nil, err
	}
	return rec.Events()
}

// Validate reports every structural problem of a tree at once.
func (e *Engine) Validate(root ports.Node, mode domain.TraversalMode) error {
	return validator.ValidateTree(root, mode, e.extractor)
}

// ClassifyAll classifies independent trees concurrently, at most jobs at a
// time (jobs <= 0 means one per tree). Tables are returned in input order.
// The first failure cancels the remaining work.
func (e *Engine) ClassifyAll(ctx context.Context, roots []ports.Node, jobs int) ([]*domain.Table, error) {
	tables := make([]*domain.Table, len(roots))

	g, gctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, root := range roots {
		g.Go(func() error {
			table, err := e.Classify(gctx, root)
			if err != nil {
				return err
			}
			tables[i] = table
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}

// Records flattens a table into sink records for the given targets, or for
// every taxon when targets is empty. An unknown target is a
// *domain.ConfigurationError.
func Records(table *domain.Table, targets []string) ([]domain.Record, error) {
	if len(targets) == 0 {
		targets = table.Taxa
	}
	var records []domain.Record
	for _, target := range targets {
		rs, err := table.Records(target)
		if err != nil {
			return nil, err
		}
		records = append(records, rs...)
	}
	return records, nil
}
