package domain

// Relationship is the evolutionary relationship between two OTUs.
type Relationship string

const (
	// Orthologous pairs meet at a speciation event.
	Orthologous Relationship = "orthologous"
	// InParalogous pairs meet at a duplication that precedes any speciation on
	// either lineage.
	InParalogous Relationship = "in-paralogous"
	// OutParalogous pairs meet at a duplication after at least one lineage
	// already crossed a speciation.
	OutParalogous Relationship = "out-paralogous"
	// Paralogous is used for same-species pairs under a duplication whose
	// relative order to speciation cannot be established.
	Paralogous Relationship = "paralogous"
	// Ambiguous pairs meet at a polytomy where the event cannot be determined.
	Ambiguous Relationship = "ambiguous"
)

// Relationships lists every relationship in a stable order.
var Relationships = []Relationship{Orthologous, InParalogous, OutParalogous, Paralogous, Ambiguous}

// IsParalogy reports whether r is one of the paralogous kinds.
func (r Relationship) IsParalogy() bool {
	switch r {
	case InParalogous, OutParalogous, Paralogous:
		return true
	}
	return false
}

// Valid reports whether r is a known relationship.
func (r Relationship) Valid() bool {
	for _, known := range Relationships {
		if r == known {
			return true
		}
	}
	return false
}

func (r Relationship) String() string {
	return string(r)
}
