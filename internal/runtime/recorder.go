package runtime

import (
	"github.com/aretw0/orthology/internal/classify"
	"github.com/aretw0/orthology/pkg/domain"
)

// Clade is the merged view of a subtree once it has been visited.
// IDs are postorder indexes over every node of the tree, leaves included.
type Clade struct {
	ID      int
	Label   string
	Leaves  []int
	Species classify.SpeciesSet
}

// Group returns the clade as one side of a pairwise classification.
func (c *Clade) Group() classify.Group {
	return classify.Group{Leaves: c.Leaves, Species: c.Species}
}

// Recorder consumes the nodes of one traversal in postorder.
// A Recorder is single use: Begin is called once before the first node and
// End once after the root, only if the traversal succeeded.
type Recorder interface {
	// Mode names the output the recorder produces.
	Mode() domain.TraversalMode

	// Begin hands over the annotation state of the traversal.
	Begin(ann *classify.Annotations)

	// Leaf is called for every leaf after it has been annotated.
	Leaf(leaf *Clade) error

	// Internal is called for every internal node once all its children have
	// been visited. children are in tree order.
	Internal(node *Clade, children []*Clade, event domain.Event) error

	// End closes the traversal.
	End() error

	// Counts reports the pairs produced so far per relationship.
	Counts() map[domain.Relationship]int
}
