// Package species derives species identifiers from OTU labels.
//
// A label is expected to hold two tokens, a species and a sequence
// identifier, joined by a separator (for example "human_BRCA1" with "_").
// Labels that already contain blanks, as produced by Newick readers that turn
// underscores into spaces, are split on whitespace instead.
package species

import (
	"strings"

	"github.com/aretw0/orthology/pkg/domain"
)

// Extractor maps leaf labels to species identifiers.
// It is immutable and safe for concurrent use.
type Extractor struct {
	separator string
	idFirst   bool
}

// New creates an Extractor. idFirst selects labels written as
// "<id><sep><species>" instead of the default "<species><sep><id>".
func New(separator string, idFirst bool) (*Extractor, error) {
	if separator == "" {
		return nil, &domain.ConfigurationError{Field: "separator", Reason: "must not be empty"}
	}
	return &Extractor{separator: separator, idFirst: idFirst}, nil
}

// Separator returns the configured separator.
func (e *Extractor) Separator() string {
	return e.separator
}

// IDFirst reports whether the identifier precedes the species in labels.
func (e *Extractor) IDFirst() bool {
	return e.idFirst
}

// Species returns the species identifier of label.
// A label without the separator is a *domain.ConfigurationError: every label
// of a tree must follow the same format.
func (e *Extractor) Species(label string) (string, error) {
	idx := 0
	if e.idFirst {
		idx = 1
	}

	var parts []string
	switch {
	case strings.ContainsAny(label, " \t"):
		parts = strings.Fields(label)
	case strings.Contains(label, e.separator):
		parts = strings.Split(label, e.separator)
	default:
		return "", &domain.ConfigurationError{
			Field:  "separator",
			Value:  e.separator,
			Reason: "does not occur in label " + quote(label),
		}
	}

	if idx >= len(parts) || parts[idx] == "" {
		return "", &domain.ConfigurationError{
			Field:  "separator",
			Value:  e.separator,
			Reason: "label " + quote(label) + " has no species token",
		}
	}
	return parts[idx], nil
}

func quote(s string) string {
	return `"` + s + `"`
}
