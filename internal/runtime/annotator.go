package runtime

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/orthology/internal/classify"
	"github.com/aretw0/orthology/pkg/domain"
	"github.com/aretw0/orthology/pkg/ports"
	"github.com/aretw0/orthology/pkg/species"
)

// Annotator runs the postorder traversal shared by every recorder.
// It keeps no state between runs and is safe for concurrent use.
type Annotator struct {
	extractor *species.Extractor
	logger    *slog.Logger
	hooks     domain.LifecycleHooks
}

// Option configures the Annotator.
type Option func(*Annotator)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Annotator) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(a *Annotator) {
		a.hooks = hooks
	}
}

// NewAnnotator creates an Annotator that derives species with extractor.
func NewAnnotator(extractor *species.Extractor, opts ...Option) *Annotator {
	a := &Annotator{
		extractor: extractor,
		logger:    slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Summary describes a finished traversal.
type Summary struct {
	// Taxa lists the leaf labels in postorder.
	Taxa []string
	// Nodes counts the internal nodes.
	Nodes    int
	Duration time.Duration
}

// Run traverses the tree rooted at root and feeds every node to rec.
// On error rec.End is not called, so recorders never expose partial results.
func (a *Annotator) Run(ctx context.Context, root ports.Node, rec Recorder) (*Summary, error) {
	if root == nil {
		return nil, &domain.MalformedInputError{Err: errors.New("empty tree")}
	}

	start := time.Now()
	w := &walker{
		ctx:  ctx,
		a:    a,
		ann:  classify.NewAnnotations(),
		rec:  rec,
		mode: rec.Mode(),
	}

	rec.Begin(w.ann)
	if _, err := w.traverse(root); err != nil {
		return nil, err
	}
	if err := rec.End(); err != nil {
		return nil, err
	}

	summary := &Summary{
		Taxa:     w.ann.Labels(),
		Nodes:    w.internal,
		Duration: time.Since(start),
	}

	a.logger.Info("traversal complete",
		"mode", w.mode,
		"taxa", len(summary.Taxa),
		"nodes", summary.Nodes,
		"duration", summary.Duration,
	)
	if a.hooks.OnTraversalComplete != nil {
		a.hooks.OnTraversalComplete(ctx, &domain.TraversalEvent{
			Timestamp:     time.Now(),
			Mode:          w.mode,
			Taxa:          len(summary.Taxa),
			Nodes:         summary.Nodes,
			Duration:      summary.Duration,
			Relationships: rec.Counts(),
		})
	}
	return summary, nil
}

// walker holds the state of one traversal.
type walker struct {
	ctx      context.Context
	a        *Annotator
	ann      *classify.Annotations
	rec      Recorder
	mode     domain.TraversalMode
	nextID   int
	internal int
}

func (w *walker) traverse(n ports.Node) (*Clade, error) {
	if err := w.ctx.Err(); err != nil {
		return nil, err
	}

	if n.IsLeaf() {
		return w.leaf(n)
	}

	kids := n.Children()
	children := make([]*Clade, 0, len(kids))
	for _, kid := range kids {
		c, err := w.traverse(kid)
		if err != nil {
			return nil, err
		}
		children = append(children, c)
	}

	// The rejected node still takes its postorder ID so the error points at it.
	if len(children) < 2 {
		return nil, &domain.UnsupportedTopologyError{
			NodeID:   w.next(),
			Label:    n.Label(),
			Children: len(children),
			Reason:   "internal nodes need at least two children",
		}
	}

	sets := make([]classify.SpeciesSet, len(children))
	size := 0
	for i, c := range children {
		sets[i] = c.Species
		size += len(c.Leaves)
	}
	leaves := make([]int, 0, size)
	for _, c := range children {
		leaves = append(leaves, c.Leaves...)
	}

	event := classify.NodeEvent(sets)
	clade := &Clade{
		ID:      w.next(),
		Label:   n.Label(),
		Leaves:  leaves,
		Species: classify.Union(sets...),
	}
	w.internal++

	if err := w.rec.Internal(clade, children, event); err != nil {
		return nil, err
	}

	w.a.logger.Debug("node classified",
		"node_id", clade.ID,
		"event", event,
		"children", len(children),
		"leaves", len(leaves),
	)
	if w.a.hooks.OnNodeClassified != nil {
		w.a.hooks.OnNodeClassified(w.ctx, &domain.NodeEvent{
			Timestamp: time.Now(),
			Mode:      w.mode,
			NodeID:    clade.ID,
			Label:     clade.Label,
			Event:     event,
			Children:  len(children),
			Leaves:    len(leaves),
		})
	}
	return clade, nil
}

func (w *walker) leaf(n ports.Node) (*Clade, error) {
	label := n.Label()
	if label == "" {
		return nil, &domain.MalformedInputError{Err: fmt.Errorf("leaf #%d has an empty label", w.nextID)}
	}
	if _, dup := w.ann.Lookup(label); dup {
		return nil, &domain.MalformedInputError{Err: fmt.Errorf("duplicate leaf label %q", label)}
	}

	sp, err := w.a.extractor.Species(label)
	if err != nil {
		return nil, err
	}

	idx := w.ann.Add(label, sp)
	clade := &Clade{
		ID:      w.next(),
		Label:   label,
		Leaves:  []int{idx},
		Species: classify.NewSpeciesSet(sp),
	}
	if err := w.rec.Leaf(clade); err != nil {
		return nil, err
	}
	return clade, nil
}

func (w *walker) next() int {
	id := w.nextID
	w.nextID++
	return id
}
