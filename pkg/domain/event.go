package domain

// Event is the evolutionary event inferred at an internal node.
type Event int

const (
	// EventSpeciation marks a node whose children carry disjoint species sets.
	EventSpeciation Event = iota
	// EventDuplication marks a node whose children share species.
	EventDuplication
	// EventAmbiguous marks a polytomy with evidence for both speciation and
	// duplication among its children.
	EventAmbiguous
)

func (e Event) String() string {
	switch e {
	case EventSpeciation:
		return "speciation"
	case EventDuplication:
		return "duplication"
	case EventAmbiguous:
		return "ambiguous"
	}
	return "unknown"
}

// MarshalText encodes the event by name so JSON payloads stay readable.
func (e Event) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// SpeciationFlag tracks whether a leaf's lineage has crossed a speciation
// boundary on the way up to the node currently being processed.
type SpeciationFlag int

const (
	// FlagNotYet is the initial state of every leaf.
	FlagNotYet SpeciationFlag = iota
	// FlagOccurred is set once the leaf takes part in a speciation pairing.
	FlagOccurred
	// FlagUnknown is set when the leaf passes through an ambiguous polytomy
	// before any speciation was established.
	FlagUnknown
)

func (f SpeciationFlag) String() string {
	switch f {
	case FlagNotYet:
		return "not_yet"
	case FlagOccurred:
		return "occurred"
	case FlagUnknown:
		return "unknown"
	}
	return "invalid"
}
