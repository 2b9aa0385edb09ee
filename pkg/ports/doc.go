/*
Package ports defines the driven ports (interfaces) of the orthology engine.

These interfaces decouple the classification core from tree sources, output
sinks and result storage, so the same traversal can run behind the CLI, the
HTTP API or the MCP server.

# Key Interfaces

  - Node: the minimal tree capability set (children, leafness, label) the
    traversal depends on. Any parsed tree representation can satisfy it.
  - TreeLoader: turns Newick input into one or more rooted trees.
  - RecordWriter: receives the relationship records of one target taxon.
  - TableStore: caches completed relationship tables.
  - DistributedLocker: serialises the computation of one cache key across
    processes sharing a store.
*/
package ports
