package domain

// Record is one relationship row handed to an output sink.
type Record struct {
	Target       string       `json:"target"`
	Other        string       `json:"other"`
	Relationship Relationship `json:"relationship"`
	// ExtraInfo carries the specific paralogy kind when a sink collapses
	// in-/out-paralogous into the generic paralogous relationship.
	ExtraInfo string `json:"extra_info,omitempty"`
}

// Collapsed returns the record as written by tabular sinks: in-paralogous and
// out-paralogous become paralogous, with the specific kind moved to ExtraInfo.
func (r Record) Collapsed() Record {
	if r.Relationship == InParalogous || r.Relationship == OutParalogous {
		r.ExtraInfo = string(r.Relationship)
		r.Relationship = Paralogous
	}
	return r
}
