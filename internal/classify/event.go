package classify

import "github.com/aretw0/orthology/pkg/domain"

// BinaryEvent classifies a node with exactly two children.
func BinaryEvent(a, b SpeciesSet) domain.Event {
	if a.Intersects(b) {
		return domain.EventDuplication
	}
	return domain.EventSpeciation
}

// PolytomyEvent classifies a node with any number of children by scanning
// every unordered pair of children. Disjoint pairs are evidence of speciation,
// overlapping pairs of duplication. The scan stops once both kinds are seen.
//
// With fewer than two children there is no evidence at all and the node is
// reported as a duplication, the neutral outcome for pairwise classification.
func PolytomyEvent(children []SpeciesSet) domain.Event {
	speciation, duplication := false, false

SCAN:
	for i := 0; i < len(children); i++ {
		for j := i + 1; j < len(children); j++ {
			if children[i].Intersects(children[j]) {
				duplication = true
			} else {
				speciation = true
			}
			if speciation && duplication {
				break SCAN
			}
		}
	}

	switch {
	case speciation && duplication:
		return domain.EventAmbiguous
	case speciation:
		return domain.EventSpeciation
	}
	return domain.EventDuplication
}

// NodeEvent picks the binary rule for two children and the polytomy rule
// otherwise.
func NodeEvent(children []SpeciesSet) domain.Event {
	if len(children) == 2 {
		return BinaryEvent(children[0], children[1])
	}
	return PolytomyEvent(children)
}
