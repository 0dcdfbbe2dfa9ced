// Package dijkstra defines the result type, configuration options, and
// sentinel errors for shortest-path search on core.Graph.
//
// Options:
//
//	– WithoutEarlyExit(): keep relaxing after the target has been popped, so
//	  Result.Dist holds final distances to every reachable node.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrNodeNotFound    if the source or target index is out of range.
//	– ErrNegativeWeight  if a negative edge cost is detected in the graph.
//	– ErrNoStart         if FindPath runs on a graph without a start node.
//	– ErrNoEnd           if FindPath runs on a graph without an end node.
//	– ErrNoPath          if the target is unreachable from the source.
package dijkstra

import (
	"errors"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed in.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates that the source or target index does not
	// address a node of the graph.
	ErrNodeNotFound = errors.New("dijkstra: node not found in graph")

	// ErrNegativeWeight indicates that a negative edge cost was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoStart indicates that no start node has been selected.
	ErrNoStart = errors.New("dijkstra: no start node selected")

	// ErrNoEnd indicates that no end node has been selected.
	ErrNoEnd = errors.New("dijkstra: no end node selected")

	// ErrNoPath indicates that the target cannot be reached from the source.
	ErrNoPath = errors.New("dijkstra: no path found")
)

// Result is the explicit outcome of one search.
//
// Path lists node indices from Source to Target inclusive; it is nil when
// the target is unreachable. Cost is the sum of edge costs along Path
// (+Inf when unreachable). Dist and Prev are indexed by node id and expose
// the search tree: Dist[v] is the best known distance (+Inf if never
// reached) and Prev[v] the predecessor (core.NoNode for the source and for
// unreached nodes).
type Result struct {
	Source    int
	Target    int
	Path      []int
	Cost      float64
	Reachable bool
	Dist      []float64
	Prev      []int
}

// Hops returns the number of edges on the path, or -1 when unreachable.
func (r Result) Hops() int {
	if !r.Reachable {
		return -1
	}

	return len(r.Path) - 1
}

// Options configures the search.
//
// EarlyExit – stop as soon as the target is popped from the queue. Costs are
// non-negative, so the target's distance is final at that point.
//
//	Default is true.
type Options struct {
	EarlyExit bool
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithoutEarlyExit disables the early stop at the target.
func WithoutEarlyExit() Option {
	return func(o *Options) {
		o.EarlyExit = false
	}
}

// DefaultOptions returns the default configuration: EarlyExit enabled.
func DefaultOptions() Options {
	return Options{
		EarlyExit: true,
	}
}
