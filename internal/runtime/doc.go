// Package runtime drives the single postorder traversal that annotates a
// gene tree and feeds the classified nodes to a Recorder.
//
// The Annotator owns the per-traversal state (leaf indexes, species and
// speciation flags). Recorders decide what the traversal produces: the
// exhaustive pairwise table, the compact node statements, or just the event
// of every node.
package runtime
