// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links, and visit order, plus the reachability and
// connectivity checks used to validate maze sources.
//
// What
//
//   - Explore nodes in non-decreasing hop count from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: node → distance in edges from start (-1 when unreached)
//   - Parent: node → predecessor in the BFS tree (core.NoNode at the root)
//   - PathTo rebuilds the fewest-hop route to any reached node.
//   - Reachable, CountReachable, Components and IsConnected answer
//     connectivity queries.
//
// Edge costs are ignored: BFS counts hops.
//
// Determinism
//
//	Neighbours are enqueued in adjacency insertion order, so the visit
//	sequence is fully reproducible.
//
// Complexity (V = nodes, E = adjacency entries)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil           if the graph pointer is nil.
//   - ErrStartNodeNotFound  if the start index is out of range.
//   - ctx.Err()             when the WithContext context is cancelled.
//   - ErrNoPath             from BFSResult.PathTo for unreached nodes.
package bfs
