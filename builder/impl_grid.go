// SPDX-License-Identifier: MIT
// Package: pathgrid/builder
//
// impl_grid.go — implementation of Grid(layout) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   • Node ids follow row-major order: id = row*Cols + col.
//   • Positions come from gridgraph.Layout.Position (row 0 on top).
//
// Contract:
//   • Cols ≥ 1 and Rows ≥ 1 (else ErrTooFewVertices); spacing and origin
//     finite (else ErrBadLayout).
//   • Random weight policies need cfg.rng (else ErrNeedRandSource). The check
//     runs before any node is added.
//   • Edges: for each cell, Right then Bottom neighbour where it exists.
//     Each call draws exactly one weight from cfg.weightFn.
//
// Complexity:
//   • Time: O(rows*cols) nodes + O(rows*cols) edges (linear in grid size).
//   • Space: O(1) extra.
//
// Determinism:
//   • Stable node order: row-major (r asc, then c asc).
//   • Stable edge order: for each cell emit Right then Bottom if present.
//   • Deterministic weights for a fixed cfg.rng/weightFn.

package builder

import (
	"github.com/katalvlaran/pathgrid/core"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

// Grid returns a Constructor that builds the grid described by layout.
func Grid(layout gridgraph.Layout) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast; no partial work).
		if err := validateLayout(MethodGrid, layout); err != nil {
			return err
		}
		if cfg.weightRandom && cfg.rng == nil {
			return builderErrorf(MethodGrid, "random weight policy: %w", ErrNeedRandSource)
		}

		// 2) Add all nodes in row-major order.
		n := layout.Size()
		for i := 0; i < n; i++ {
			g.AddNode(layout.Position(layout.Coordinate(i)))
		}

		// 3) Emit edges: Right then Bottom per cell.
		for u := 0; u < n; u++ {
			for _, v := range layout.ForwardNeighbors(u) {
				w, err := cfg.weight(MethodGrid)
				if err != nil {
					return err
				}
				if err = g.Connect(u, v, w); err != nil {
					return builderErrorf(MethodGrid, "Connect(%d→%d, w=%g): %w", u, v, w, err)
				}
			}
		}

		return nil
	}
}
