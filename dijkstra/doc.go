// Package dijkstra provides shortest-path search between two nodes of a
// core.Graph with non-negative edge costs.
//
// Overview:
//
//   - ShortestPath computes the minimum-cost path from a source to a target in
//     O((V + E) log V) time using a container/heap min-queue.
//   - FindPath does the same between the graph's current start and end nodes.
//   - Recompute runs FindPath and writes the outcome into the graph's scratch
//     state (costs, predecessors, on-path flags) for renderers.
//
// The search itself is side-effect free. It returns an explicit Result:
//
//	type Result struct {
//	    Source, Target int
//	    Path           []int     // Source … Target, nil when unreachable
//	    Cost           float64   // +Inf when unreachable
//	    Reachable      bool
//	    Dist           []float64 // per node id
//	    Prev           []int     // per node id, core.NoNode when unset
//	}
//
// Algorithm:
//
//  1. dist[v] = +Inf, prev[v] = NoNode for every node; dist[source] = 0.
//  2. Push (source, 0). Pop the minimum entry; stop early when it is the target.
//  3. For every adjacency entry (u, v, w): if dist[u] + w < dist[v], update
//     dist[v], prev[v] = u, and push (v, dist[v]). Old entries stay in the heap
//     and are skipped when popped (lazy decrease-key).
//  4. Backtrack prev from the target to the source and reverse.
//
// Unreachable target:
//
//   - Reachable=false, Path=nil, and the error wraps ErrNoPath. No direct
//     start→end segment is ever fabricated.
//
// Error handling (sentinel):
//
//   - ErrNilGraph, ErrNodeNotFound, ErrNegativeWeight: invalid input.
//   - ErrNoStart, ErrNoEnd: FindPath/Recompute before endpoints are selected.
//   - ErrNoPath: target unreachable.
//
// Options:
//
//   - WithoutEarlyExit(): explore the whole reachable component so Result.Dist
//     holds final distances to every node.
//
// Thread safety:
//
//   - ShortestPath only reads the graph. Recompute writes scratch state and
//     must run on the graph's owner goroutine.
package dijkstra
