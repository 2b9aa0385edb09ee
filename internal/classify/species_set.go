package classify

import "sort"

// SpeciesSet is the set of distinct species subtended by a clade.
type SpeciesSet map[string]struct{}

// NewSpeciesSet returns a set holding the given species.
func NewSpeciesSet(species ...string) SpeciesSet {
	s := make(SpeciesSet, len(species))
	for _, sp := range species {
		s[sp] = struct{}{}
	}
	return s
}

// Contains reports whether sp is in the set.
func (s SpeciesSet) Contains(sp string) bool {
	_, ok := s[sp]
	return ok
}

// Intersects reports whether s and o share at least one species.
func (s SpeciesSet) Intersects(o SpeciesSet) bool {
	small, large := s, o
	if len(small) > len(large) {
		small, large = large, small
	}
	for sp := range small {
		if _, ok := large[sp]; ok {
			return true
		}
	}
	return false
}

// Union returns a new set with the species of every given set.
func Union(sets ...SpeciesSet) SpeciesSet {
	n := 0
	for _, s := range sets {
		n += len(s)
	}
	out := make(SpeciesSet, n)
	for _, s := range sets {
		for sp := range s {
			out[sp] = struct{}{}
		}
	}
	return out
}

// Sorted returns the species in lexical order.
func (s SpeciesSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for sp := range s {
		out = append(out, sp)
	}
	sort.Strings(out)
	return out
}
