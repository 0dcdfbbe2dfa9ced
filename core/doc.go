// Package core provides the in-memory graph arena used by every other
// package: a dense slice of nodes addressed by integer handles, symmetric
// weighted adjacency lists, and per-node scratch state for path search and
// maze carving.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Node ids are dense and equal to their insertion index, so lookup by id is O(1).
//   - Edges are undirected at the API level: Connect(a, b, w) stores a→b in a's
//     list and b→a in b's list with the same cost. There is no way to add a
//     single direction, and no removal.
//   - Edge costs must be non-negative (Dijkstra precondition).
//   - Topology is fixed after construction; only the start/end endpoints and
//     the derived scratch/path state change afterwards.
//
// Scratch state:
//
//	– Cost    best known distance from the last search's start (+Inf when unknown)
//	– Prev    predecessor index on that best path (NoNode when unset)
//	– OnPath  membership in the current path
//	– Visited maze-carving flag, independent of path state
//
// Search algorithms stay pure and return explicit results; Graph.ApplySearch
// is the single place that writes a result back into the nodes, after
// resetting all previous marks.
//
// Renderers read a Graph only through Snapshot, which returns a Frame value
// (positions, roles, on-path flags) with no references back into the graph.
//
// Concurrency:
//
//	A Graph has a single owner. It performs no locking; do not share one
//	Graph between goroutines.
//
// Complexity:
//
//	– AddNode, Node, Connect: O(1) amortized
//	– NumEdges, ResetScratch, CloneNodes: O(V)
//	– Snapshot: O(V + E)
//
// Errors:
//
//	ErrNodeNotFound, ErrSelfLoop, ErrNegativeCost, ErrScratchSize.
package core
