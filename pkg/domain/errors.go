package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is the sentinel behind every ConfigurationError.
	ErrConfiguration = errors.New("configuration error")

	// ErrUnsupportedTopology is the sentinel behind every UnsupportedTopologyError.
	ErrUnsupportedTopology = errors.New("unsupported topology")

	// ErrMalformedInput is the sentinel behind every MalformedInputError.
	ErrMalformedInput = errors.New("malformed input")

	// ErrOutputTarget is the sentinel behind every OutputTargetError.
	ErrOutputTarget = errors.New("output target error")

	// ErrTraversalIncomplete is returned when results are requested before the
	// traversal that produces them has finished.
	ErrTraversalIncomplete = errors.New("traversal incomplete")

	// ErrTableNotFound is returned when a table key cannot be found in the store.
	ErrTableNotFound = errors.New("table not found")
)

// ConfigurationError reports a setting that does not fit the input, such as a
// separator missing from a leaf label. It aborts the whole run.
type ConfigurationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("configuration error: %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// UnsupportedTopologyError reports a node shape the selected traversal cannot
// handle (a single-child node, or a polytomy in compact mode).
type UnsupportedTopologyError struct {
	NodeID   int
	Label    string
	Children int
	Reason   string
}

func (e *UnsupportedTopologyError) Error() string {
	name := e.Label
	if name == "" {
		name = fmt.Sprintf("#%d", e.NodeID)
	}
	return fmt.Sprintf("unsupported topology at node %s (%d children): %s", name, e.Children, e.Reason)
}

func (e *UnsupportedTopologyError) Unwrap() error { return ErrUnsupportedTopology }

// MalformedInputError reports a tree that cannot be parsed or that violates
// the input invariants (empty or duplicated leaf labels).
type MalformedInputError struct {
	Source string
	Err    error
}

func (e *MalformedInputError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("malformed input: %v", e.Err)
	}
	return fmt.Sprintf("malformed input (%s): %v", e.Source, e.Err)
}

func (e *MalformedInputError) Unwrap() []error { return []error{ErrMalformedInput, e.Err} }

// OutputTargetError reports a failed write to an output destination. It does
// not invalidate results already computed in memory.
type OutputTargetError struct {
	Path string
	Err  error
}

func (e *OutputTargetError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

func (e *OutputTargetError) Unwrap() []error { return []error{ErrOutputTarget, e.Err} }
