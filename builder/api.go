// SPDX-License-Identifier: MIT
// Package: pathgrid/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(cons, opts...). Creates g, resolves cfg, runs cons.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same constructor, options and seed ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathgrid/core"
	"github.com/katalvlaran/pathgrid/dijkstra"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add nodes in a stable, documented order (ids are insertion indices).
//   - Preserve determinism for the same config.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from opts, and applies cons.
//
// Unless WithoutInitialPath is given, a non-empty result is left ready for
// display: start = node 0, end = the last node, and the path between them
// computed with dijkstra.Recompute. An unreachable end is not an error here;
// the graph simply has no current path.
//
// Complexity:
//   - Resolving options: O(len(opts)).
//   - Construction: cost of cons.
//   - Initial path: O((V + E) log V).
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrTooFewVertices, ErrNeedRandSource, ...).
func BuildGraph(cons Constructor, opts ...BuilderOption) (*core.Graph, error) {
	// 1) Reject a nil constructor (programmer error) without panicking.
	if cons == nil {
		return nil, fmt.Errorf("%s: nil constructor: %w", MethodBuildGraph, ErrConstructFailed)
	}

	// 2) Resolve configuration, then build.
	g := core.NewGraph()
	cfg := newBuilderConfig(opts...)
	if err := cons(g, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildGraph, err)
	}

	// 3) Initial endpoints and path.
	if !cfg.initialPath || g.NumNodes() == 0 {
		return g, nil
	}
	if err := SelectDefaultEndpoints(g); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildGraph, err)
	}

	return g, nil
}

// SelectDefaultEndpoints sets start to node 0 and end to the last node of a
// non-empty g, then recomputes the path. ErrNoPath is swallowed: the graph
// keeps an empty current path.
func SelectDefaultEndpoints(g *core.Graph) error {
	n := g.NumNodes()
	if n == 0 {
		return nil
	}
	if err := g.SetStart(0); err != nil {
		return fmt.Errorf("SetStart(0): %w", err)
	}
	if err := g.SetEnd(n - 1); err != nil {
		return fmt.Errorf("SetEnd(%d): %w", n-1, err)
	}
	if _, err := dijkstra.Recompute(g); err != nil && !errors.Is(err, dijkstra.ErrNoPath) {
		return fmt.Errorf("initial path: %v: %w", err, ErrConstructFailed)
	}

	return nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure MUST:
//   - Add nodes with AddNode so ids equal insertion order.
//   - Emit edges in a stable, documented order.
//   - Return only sentinel errors; NEVER panic at runtime.

// Simple builds SimpleNodes nodes on the x axis (x = -2 … 2) joined in a line.
// Complexity: O(n) nodes + O(n-1) edges.
//func Simple() Constructor

// Grid builds a Cols×Rows 4-neighbourhood grid positioned by layout.
// Complexity: O(R*C) nodes + O(R*C) edges.
//func Grid(layout gridgraph.Layout) Constructor

// Empty builds nothing; the result is a valid zero-node graph.
// Complexity: O(1).
//func Empty() Constructor
