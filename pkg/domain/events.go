package domain

import (
	"context"
	"time"
)

// TraversalMode names the recorder a traversal feeds.
type TraversalMode string

const (
	ModePairwise TraversalMode = "pairwise"
	ModeCompact  TraversalMode = "compact"
	ModeEvents   TraversalMode = "events"
)

// NodeEvent describes one classified internal node.
type NodeEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Mode      TraversalMode `json:"mode"`
	NodeID    int           `json:"node_id"`
	Label     string        `json:"label,omitempty"`
	Event     Event         `json:"event"`
	Children  int           `json:"children"`
	Leaves    int           `json:"leaves"`
}

// TraversalEvent summarises a completed traversal.
type TraversalEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Mode      TraversalMode `json:"mode"`
	Taxa      int           `json:"taxa"`
	Nodes     int           `json:"nodes"`
	Duration  time.Duration `json:"duration"`
	// Relationships counts the pairs produced per relationship. Compact
	// traversals count the pairs covered by their statements.
	Relationships map[Relationship]int `json:"relationships,omitempty"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnNodeClassified    func(context.Context, *NodeEvent)
	OnTraversalComplete func(context.Context, *TraversalEvent)
}
