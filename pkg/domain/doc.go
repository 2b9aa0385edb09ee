/*
Package domain contains the core domain models of the orthology classifier.

It defines the vocabulary shared by the traversal engine, the recorders and the
adapters: the evolutionary events inferred at internal nodes, the pairwise
relationships between OTUs, the per-leaf speciation flag, and the two output
shapes (the exhaustive relationship table and the compact node statements).
This package is kept pure and free of I/O, following the same hexagonal split
as the rest of the module.

# Key Entities

  - Event: what happened at an internal node (speciation, duplication, or
    ambiguous when a polytomy hides the order of events).
  - Relationship: the pairwise verdict for two leaves (orthologous,
    in-paralogous, out-paralogous, paralogous, ambiguous).
  - SpeciationFlag: whether a speciation boundary has been crossed on the path
    from a leaf up to the node being processed.
  - Table: the symmetric label x label relationship matrix.
  - Statement: a compact, node-level relationship between two label sets.
  - Record: one (target, other, relationship) row handed to output sinks.
*/
package domain
