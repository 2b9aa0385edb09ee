package runtime

import (
	"github.com/aretw0/orthology/internal/classify"
	"github.com/aretw0/orthology/pkg/domain"
)

// EventRecorder only keeps the event inferred at each internal node, keyed
// by postorder node ID. Tree renderers use it to annotate their output.
type EventRecorder struct {
	events map[int]domain.Event
	done   bool
}

// NewEventRecorder creates an empty event recorder.
func NewEventRecorder() *EventRecorder {
	return &EventRecorder{}
}

func (r *EventRecorder) Mode() domain.TraversalMode { return domain.ModeEvents }

func (r *EventRecorder) Begin(*classify.Annotations) {
	r.events = make(map[int]domain.Event)
	r.done = false
}

func (r *EventRecorder) Leaf(*Clade) error { return nil }

func (r *EventRecorder) Internal(node *Clade, _ []*Clade, event domain.Event) error {
	r.events[node.ID] = event
	return nil
}

func (r *EventRecorder) End() error {
	r.done = true
	return nil
}

func (r *EventRecorder) Counts() map[domain.Relationship]int { return nil }

// Events returns the node events, or domain.ErrTraversalIncomplete if the
// traversal has not finished.
func (r *EventRecorder) Events() (map[int]domain.Event, error) {
	if !r.done {
		return nil, domain.ErrTraversalIncomplete
	}
	return r.events, nil
}
