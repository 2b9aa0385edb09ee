package domain

import "fmt"

// Table is the exhaustive pairwise relationship matrix of one tree.
// It is symmetric: Get(a, b) and Get(b, a) always agree.
type Table struct {
	// Taxa lists the leaf labels in postorder, the order used for output.
	Taxa []string `json:"taxa"`

	// Relations maps a label to the relationship it holds with every other label.
	Relations map[string]map[string]Relationship `json:"relations"`
}

// NewTable creates an empty table for the given labels.
func NewTable(taxa []string) *Table {
	t := &Table{
		Taxa:      append([]string(nil), taxa...),
		Relations: make(map[string]map[string]Relationship, len(taxa)),
	}
	for _, label := range taxa {
		t.Relations[label] = make(map[string]Relationship, len(taxa)-1)
	}
	return t
}

// Set stores rel for the unordered pair (a, b).
func (t *Table) Set(a, b string, rel Relationship) {
	t.row(a)[b] = rel
	t.row(b)[a] = rel
}

// Get returns the relationship between a and b.
func (t *Table) Get(a, b string) (Relationship, bool) {
	row, ok := t.Relations[a]
	if !ok {
		return "", false
	}
	rel, ok := row[b]
	return rel, ok
}

// Has reports whether label is a taxon of the table.
func (t *Table) Has(label string) bool {
	_, ok := t.Relations[label]
	return ok
}

// Pairs returns the number of unordered pairs stored in the table.
func (t *Table) Pairs() int {
	n := 0
	for _, row := range t.Relations {
		n += len(row)
	}
	return n / 2
}

// Records flattens the relationships of target against every other taxon,
// in table order.
func (t *Table) Records(target string) ([]Record, error) {
	row, ok := t.Relations[target]
	if !ok {
		return nil, &ConfigurationError{Field: "targets", Value: target, Reason: "not a taxon of the tree"}
	}
	records := make([]Record, 0, len(row))
	for _, other := range t.Taxa {
		if other == target {
			continue
		}
		rel, ok := row[other]
		if !ok {
			return nil, fmt.Errorf("relationship %s/%s missing: %w", target, other, ErrTraversalIncomplete)
		}
		records = append(records, Record{Target: target, Other: other, Relationship: rel})
	}
	return records, nil
}

func (t *Table) row(label string) map[string]Relationship {
	row, ok := t.Relations[label]
	if !ok {
		row = make(map[string]Relationship)
		t.Relations[label] = row
	}
	return row
}
