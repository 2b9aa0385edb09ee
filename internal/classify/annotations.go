package classify

import "github.com/aretw0/orthology/pkg/domain"

// Annotations is the per-leaf state of one traversal, keyed by leaf index.
// Leaf indexes are assigned in postorder by Add. A fresh Annotations value
// must be used for every traversal.
type Annotations struct {
	labels  []string
	species []string
	flags   []domain.SpeciationFlag
	index   map[string]int
}

// NewAnnotations creates an empty annotation map.
func NewAnnotations() *Annotations {
	return &Annotations{index: make(map[string]int)}
}

// Add registers a leaf with its species and returns its index. The leaf
// starts with FlagNotYet.
func (a *Annotations) Add(label, species string) int {
	idx := len(a.labels)
	a.labels = append(a.labels, label)
	a.species = append(a.species, species)
	a.flags = append(a.flags, domain.FlagNotYet)
	a.index[label] = idx
	return idx
}

// Len returns the number of registered leaves.
func (a *Annotations) Len() int { return len(a.labels) }

// Label returns the label of leaf i.
func (a *Annotations) Label(i int) string { return a.labels[i] }

// Labels returns every leaf label in registration order.
func (a *Annotations) Labels() []string { return append([]string(nil), a.labels...) }

// Species returns the species of leaf i.
func (a *Annotations) Species(i int) string { return a.species[i] }

// Flag returns the speciation flag of leaf i.
func (a *Annotations) Flag(i int) domain.SpeciationFlag { return a.flags[i] }

// Lookup returns the index of the leaf called label.
func (a *Annotations) Lookup(label string) (int, bool) {
	idx, ok := a.index[label]
	return idx, ok
}

// markOccurred records a speciation crossing. UNKNOWN is upgraded too: a
// speciation pairing is stronger information than an unresolved polytomy.
func (a *Annotations) markOccurred(i int) {
	a.flags[i] = domain.FlagOccurred
}

// markUnknown only moves NOT_YET leaves; OCCURRED and UNKNOWN are kept.
func (a *Annotations) markUnknown(i int) {
	if a.flags[i] == domain.FlagNotYet {
		a.flags[i] = domain.FlagUnknown
	}
}
