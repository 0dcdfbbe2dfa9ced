package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/core"
)

// Recompute runs FindPath on g and applies the outcome to the graph's
// scratch state.
//
// Scratch is always reset first (Cost=+Inf, Prev=NoNode, OnPath=false, no
// current path). On success the search tree is copied into the nodes and the
// path nodes, start and end included, are marked on-path. On failure the
// graph is left reset and the error is returned; for an unreachable end the
// search tree is still copied so costs remain inspectable, but no node is
// marked and the current path stays empty.
func Recompute(g *core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	g.ResetScratch()

	res, err := FindPath(g, opts...)
	if err != nil {
		if res.Dist != nil {
			// Unreachable target: keep the explored tree, mark nothing.
			if aerr := g.ApplySearch(res.Dist, res.Prev, nil); aerr != nil {
				return res, fmt.Errorf("dijkstra: apply: %w", aerr)
			}
		}

		return res, err
	}

	if err = g.ApplySearch(res.Dist, res.Prev, res.Path); err != nil {
		return res, fmt.Errorf("dijkstra: apply: %w", err)
	}

	return res, nil
}
