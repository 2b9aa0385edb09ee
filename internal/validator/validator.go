package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/orthology/pkg/domain"
	"github.com/aretw0/orthology/pkg/ports"
	"github.com/aretw0/orthology/pkg/species"
)

// Problem is one structural defect found in a tree.
type Problem struct {
	// Path locates the node as child indexes from the root, e.g. "0.2.1".
	Path    string
	Message string
	Kind    error
}

// Error collects every problem found by ValidateTree.
type Error struct {
	Problems []Problem
}

func (e *Error) Error() string {
	lines := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		lines[i] = fmt.Sprintf("%s: %s", p.Path, p.Message)
	}
	return fmt.Sprintf("found %d errors:\n- %s", len(e.Problems), strings.Join(lines, "\n- "))
}

// Unwrap exposes the sentinel of every kind of problem found, so callers can
// test the error with errors.Is.
func (e *Error) Unwrap() []error {
	seen := make(map[error]bool)
	var kinds []error
	for _, p := range e.Problems {
		if !seen[p.Kind] {
			seen[p.Kind] = true
			kinds = append(kinds, p.Kind)
		}
	}
	return kinds
}

type pending struct {
	node ports.Node
	path string
}

// ValidateTree crawls the tree and reports every problem at once instead of
// stopping at the first one like the traversal does. Compact mode also
// rejects polytomies. When extractor is not nil every leaf label is checked
// against it.
func ValidateTree(root ports.Node, mode domain.TraversalMode, extractor *species.Extractor) error {
	if root == nil {
		return &domain.MalformedInputError{Err: fmt.Errorf("empty tree")}
	}

	var problems []Problem
	report := func(path string, kind error, format string, args ...any) {
		problems = append(problems, Problem{Path: path, Message: fmt.Sprintf(format, args...), Kind: kind})
	}

	seen := make(map[string]string)
	queue := []pending{{node: root, path: "root"}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		n := current.node

		if n.IsLeaf() {
			label := n.Label()
			switch {
			case label == "":
				report(current.path, domain.ErrMalformedInput, "leaf without label")
				continue
			case seen[label] != "":
				report(current.path, domain.ErrMalformedInput, "duplicate leaf label %q (first at %s)", label, seen[label])
				continue
			}
			seen[label] = current.path

			if extractor != nil {
				if _, err := extractor.Species(label); err != nil {
					report(current.path, domain.ErrConfiguration, "%v", err)
				}
			}
			continue
		}

		children := n.Children()
		switch {
		case len(children) < 2:
			report(current.path, domain.ErrUnsupportedTopology, "internal node with %d child", len(children))
		case mode == domain.ModeCompact && len(children) > 2:
			report(current.path, domain.ErrUnsupportedTopology, "polytomy with %d children is not supported in compact mode", len(children))
		}

		for i, c := range children {
			queue = append(queue, pending{node: c, path: fmt.Sprintf("%s.%d", current.path, i)})
		}
	}

	if len(problems) > 0 {
		return &Error{Problems: problems}
	}
	return nil
}
