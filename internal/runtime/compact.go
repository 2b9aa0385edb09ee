package runtime

import (
	"sort"

	"github.com/aretw0/orthology/internal/classify"
	"github.com/aretw0/orthology/pkg/domain"
)

// labelSet is a set of leaf labels.
type labelSet map[string]struct{}

func unionLabels(sets ...labelSet) labelSet {
	out := make(labelSet)
	for _, s := range sets {
		for l := range s {
			out[l] = struct{}{}
		}
	}
	return out
}

func (s labelSet) sorted() []string {
	out := make([]string, 0, len(s))
	for l := range s {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// compactState is what the compact traversal remembers about a clade:
// which leaves already crossed a speciation and which did not.
type compactState struct {
	occurred    labelSet
	notOccurred labelSet
}

func (s compactState) all() labelSet {
	return unionLabels(s.occurred, s.notOccurred)
}

// CompactRecorder produces node-level statements instead of a full table.
// It only supports strictly binary trees.
type CompactRecorder struct {
	ann        *classify.Annotations
	states     map[int]compactState
	statements []domain.Statement
	counts     map[domain.Relationship]int
	done       bool
}

// NewCompactRecorder creates an empty compact recorder.
func NewCompactRecorder() *CompactRecorder {
	return &CompactRecorder{}
}

func (r *CompactRecorder) Mode() domain.TraversalMode { return domain.ModeCompact }

func (r *CompactRecorder) Begin(ann *classify.Annotations) {
	r.ann = ann
	r.states = make(map[int]compactState)
	r.statements = nil
	r.counts = make(map[domain.Relationship]int)
	r.done = false
}

func (r *CompactRecorder) Leaf(leaf *Clade) error {
	r.states[leaf.ID] = compactState{
		occurred:    labelSet{},
		notOccurred: labelSet{leaf.Label: {}},
	}
	return nil
}

func (r *CompactRecorder) Internal(node *Clade, children []*Clade, event domain.Event) error {
	if len(children) != 2 {
		return &domain.UnsupportedTopologyError{
			NodeID:   node.ID,
			Label:    node.Label,
			Children: len(children),
			Reason:   "compact output requires a binary tree",
		}
	}

	c0, c1 := r.states[children[0].ID], r.states[children[1].ID]
	delete(r.states, children[0].ID)
	delete(r.states, children[1].ID)

	var state compactState
	switch event {
	case domain.EventSpeciation:
		state = compactState{
			occurred:    unionLabels(c0.occurred, c0.notOccurred, c1.occurred, c1.notOccurred),
			notOccurred: labelSet{},
		}
		r.emit(domain.StatementOrthologous, node.ID, c0.all(), c1.all())
	default:
		state = compactState{
			occurred:    unionLabels(c0.occurred, c1.occurred),
			notOccurred: unionLabels(c0.notOccurred, c1.notOccurred),
		}
		if len(c0.notOccurred) > 0 && len(c1.notOccurred) > 0 {
			r.emit(domain.StatementInParalogous, node.ID, c0.notOccurred, c1.notOccurred)
		}
		if len(c0.occurred) > 0 && (len(c0.notOccurred) > 0 || len(c1.notOccurred) > 0) {
			r.emit(domain.StatementOutParalogous, node.ID, c0.occurred, c1.all())
		}
		if len(c1.occurred) > 0 {
			r.emit(domain.StatementOutParalogous, node.ID, c0.all(), c1.occurred)
		}
	}
	r.states[node.ID] = state
	return nil
}

func (r *CompactRecorder) emit(kind domain.StatementKind, nodeID int, left, right labelSet) {
	s := domain.Statement{
		Kind:   kind,
		NodeID: nodeID,
		Left:   left.sorted(),
		Right:  right.sorted(),
	}
	r.statements = append(r.statements, s)
	r.counts[kind.Relationship()] += s.Pairs()
}

func (r *CompactRecorder) End() error {
	r.done = true
	return nil
}

func (r *CompactRecorder) Counts() map[domain.Relationship]int {
	out := make(map[domain.Relationship]int, len(r.counts))
	for k, v := range r.counts {
		out[k] = v
	}
	return out
}

// Statements returns the statements in postorder of their nodes, or
// domain.ErrTraversalIncomplete if the traversal has not finished.
func (r *CompactRecorder) Statements() ([]domain.Statement, error) {
	if !r.done {
		return nil, domain.ErrTraversalIncomplete
	}
	return r.statements, nil
}
