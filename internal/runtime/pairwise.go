package runtime

import (
	"github.com/aretw0/orthology/internal/classify"
	"github.com/aretw0/orthology/pkg/domain"
)

// PairwiseRecorder builds the exhaustive relationship table. Every unordered
// leaf pair is written exactly once, at its lowest common ancestor.
type PairwiseRecorder struct {
	ann      *classify.Annotations
	resolver *classify.Resolver
	table    *domain.Table
	counts   map[domain.Relationship]int
	done     bool
}

// NewPairwiseRecorder creates an empty pairwise recorder.
func NewPairwiseRecorder() *PairwiseRecorder {
	return &PairwiseRecorder{}
}

func (r *PairwiseRecorder) Mode() domain.TraversalMode { return domain.ModePairwise }

func (r *PairwiseRecorder) Begin(ann *classify.Annotations) {
	r.ann = ann
	r.table = domain.NewTable(nil)
	r.counts = make(map[domain.Relationship]int)
	r.resolver = classify.NewResolver(ann, r.Record)
	r.done = false
}

func (r *PairwiseRecorder) Leaf(*Clade) error { return nil }

// Internal resolves every child pair i < j under the node-level event.
func (r *PairwiseRecorder) Internal(_ *Clade, children []*Clade, event domain.Event) error {
	for i := 0; i < len(children); i++ {
		for j := i + 1; j < len(children); j++ {
			r.resolver.Resolve(event, children[i].Group(), children[j].Group())
		}
	}
	return nil
}

// Record stores rel for the leaf pair (a, b) in both directions.
func (r *PairwiseRecorder) Record(a, b int, rel domain.Relationship) {
	r.table.Set(r.ann.Label(a), r.ann.Label(b), rel)
	r.counts[rel]++
}

func (r *PairwiseRecorder) End() error {
	r.table.Taxa = r.ann.Labels()
	for _, label := range r.table.Taxa {
		if _, ok := r.table.Relations[label]; !ok {
			r.table.Relations[label] = make(map[string]domain.Relationship)
		}
	}
	r.done = true
	return nil
}

func (r *PairwiseRecorder) Counts() map[domain.Relationship]int {
	out := make(map[domain.Relationship]int, len(r.counts))
	for k, v := range r.counts {
		out[k] = v
	}
	return out
}

// Table returns the completed table, or domain.ErrTraversalIncomplete if
// the traversal has not finished.
func (r *PairwiseRecorder) Table() (*domain.Table, error) {
	if !r.done {
		return nil, domain.ErrTraversalIncomplete
	}
	return r.table, nil
}
