package classify

import "github.com/aretw0/orthology/pkg/domain"

// Group is one side of a pairwise classification: the leaves of a child
// clade and the species they cover.
type Group struct {
	Leaves  []int
	Species SpeciesSet
}

// EmitFunc receives the relationship of leaf pair (a, b).
type EmitFunc func(a, b int, rel domain.Relationship)

// Resolver applies the pairwise-leaf rules of an event to two leaf groups.
// It mutates the speciation flags of the Annotations it wraps, so pairings
// at one node must be resolved one after another.
type Resolver struct {
	ann  *Annotations
	emit EmitFunc
}

// NewResolver creates a Resolver over ann that reports every pair to emit.
func NewResolver(ann *Annotations, emit EmitFunc) *Resolver {
	if emit == nil {
		emit = func(int, int, domain.Relationship) {}
	}
	return &Resolver{ann: ann, emit: emit}
}

// Resolve classifies every pair of left x right under event.
func (r *Resolver) Resolve(event domain.Event, left, right Group) {
	switch event {
	case domain.EventSpeciation:
		r.Speciation(left.Leaves, right.Leaves)
	case domain.EventDuplication:
		r.Duplication(left.Leaves, right.Leaves)
	case domain.EventAmbiguous:
		r.Ambiguous(left, right)
	}
}

// Speciation marks every pair orthologous and records the speciation on
// both leaves.
func (r *Resolver) Speciation(left, right []int) {
	for _, x := range left {
		for _, y := range right {
			r.ann.markOccurred(x)
			r.ann.markOccurred(y)
			r.emit(x, y, domain.Orthologous)
		}
	}
}

// Duplication classifies every pair by the speciation flags of its leaves.
func (r *Resolver) Duplication(left, right []int) {
	for _, x := range left {
		for _, y := range right {
			r.emit(x, y, r.duplicationPair(x, y))
		}
	}
}

func (r *Resolver) duplicationPair(x, y int) domain.Relationship {
	fx, fy := r.ann.Flag(x), r.ann.Flag(y)
	switch {
	case fx == domain.FlagOccurred || fy == domain.FlagOccurred:
		return domain.OutParalogous
	case fx == domain.FlagNotYet && fy == domain.FlagNotYet:
		return domain.InParalogous
	case r.ann.Species(x) == r.ann.Species(y):
		return domain.Paralogous
	}
	return domain.OutParalogous
}

// Ambiguous resolves a pair of children of an ambiguous polytomy. Whether
// the two children share a species decides between a paralogy verdict and a
// plain ambiguous one.
func (r *Resolver) Ambiguous(left, right Group) {
	shared := left.Species.Intersects(right.Species)

	for _, x := range left.Leaves {
		for _, y := range right.Leaves {
			r.ann.markUnknown(x)
			r.ann.markUnknown(y)

			if !shared {
				r.emit(x, y, domain.Ambiguous)
				continue
			}

			occurred := r.ann.Flag(x) == domain.FlagOccurred || r.ann.Flag(y) == domain.FlagOccurred
			if !occurred && r.ann.Species(x) == r.ann.Species(y) {
				r.emit(x, y, domain.Paralogous)
			} else {
				r.emit(x, y, domain.OutParalogous)
			}
		}
	}
}
