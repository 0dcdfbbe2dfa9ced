// SPDX-License-Identifier: MIT
// Package: pathgrid/builder
//
// impl_simple.go — Simple() and Empty() constructors.
//
// Simple:
//   • SimpleNodes nodes at x = -2, -1, 0, 1, 2 on y = 0, ids 0..4 left to right.
//   • Edges i—(i+1) with SimpleEdgeCost; no randomness, weight policy ignored.
//
// Empty:
//   • Adds nothing. Serves as the destination of a maze carve.

package builder

import (
	"github.com/katalvlaran/pathgrid/core"
)

// Simple returns a Constructor for the five-node line fixture.
func Simple() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		// 1) Nodes centred on the origin.
		half := SimpleNodes / 2
		for i := 0; i < SimpleNodes; i++ {
			g.AddNode(float64(i-half), 0)
		}

		// 2) Consecutive links.
		for i := 0; i+1 < SimpleNodes; i++ {
			if err := g.Connect(i, i+1, SimpleEdgeCost); err != nil {
				return builderErrorf(MethodSimple, "Connect(%d→%d): %w", i, i+1, err)
			}
		}

		return nil
	}
}

// Empty returns a Constructor that adds no nodes.
func Empty() Constructor {
	return func(*core.Graph, builderConfig) error { return nil }
}
