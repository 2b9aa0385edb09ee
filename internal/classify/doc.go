// Package classify holds the event classifier and the pairwise-leaf
// classification rules shared by every recorder.
//
// An internal node is a speciation when its children carry disjoint species
// sets and a duplication when they share species. Polytomies are scanned pair
// by pair; mixed evidence makes the node ambiguous.
//
// The Resolver turns a node's event into pairwise relationships for the
// cross product of two leaf groups, reading and upgrading the per-leaf
// speciation flags kept in Annotations:
//
//   - speciation: every pair is orthologous, both leaves become OCCURRED.
//   - duplication: out-paralogous if either leaf is OCCURRED, in-paralogous
//     if both are NOT_YET, otherwise paralogous for same-species pairs and
//     out-paralogous for the rest.
//   - ambiguous: NOT_YET leaves become UNKNOWN; if the two children share a
//     species the pair is out-paralogous, or paralogous for same-species
//     pairs with no OCCURRED leaf; otherwise the pair is ambiguous.
package classify
