// Package gridgraph provides the row-major arithmetic used to lay out graph
// nodes on a rectangular grid:
//
//   - index ↔ (column,row) conversion
//   - world positions of cells
//   - forward neighbours (right, bottom) used by grid construction
package gridgraph

import (
	"fmt"
	"math"
)

// Validate checks dimensions, spacing, and origin.
// Returns ErrEmptyGrid, ErrBadSpacing, or ErrBadOrigin wrapped with context.
// Complexity: O(1).
func (l Layout) Validate() error {
	if l.Cols < 1 || l.Rows < 1 {
		return fmt.Errorf("cols=%d, rows=%d: %w", l.Cols, l.Rows, ErrEmptyGrid)
	}
	if !positiveFinite(l.DispX) || !positiveFinite(l.DispY) {
		return fmt.Errorf("dispX=%g, dispY=%g: %w", l.DispX, l.DispY, ErrBadSpacing)
	}
	if !finite(l.StartX) || !finite(l.StartY) || !finite(l.ViewportHeight) {
		return fmt.Errorf("start=(%g,%g), height=%g: %w", l.StartX, l.StartY, l.ViewportHeight, ErrBadOrigin)
	}

	return nil
}

// Size returns the number of cells, Cols*Rows.
func (l Layout) Size() int { return l.Cols * l.Rows }

// InBounds reports whether (col,row) lies within the grid.
// Complexity: O(1).
func (l Layout) InBounds(col, row int) bool {
	return col >= 0 && col < l.Cols && row >= 0 && row < l.Rows
}

// Index returns the row-major index of (col,row). The caller checks bounds.
func (l Layout) Index(col, row int) int { return row*l.Cols + col }

// Coordinate converts a row-major index back to (col,row).
func (l Layout) Coordinate(idx int) (col, row int) {
	return idx % l.Cols, idx / l.Cols
}

// Position returns the world position of (col,row).
func (l Layout) Position(col, row int) (x, y float64) {
	x = l.StartX + float64(col)*l.DispX
	y = (l.ViewportHeight - l.StartY) - float64(row)*l.DispY

	return x, y
}

// ForwardNeighbors returns the indices of the right and then the bottom
// neighbour of idx, skipping those outside the grid. Visiting every cell's
// forward neighbours enumerates each orthogonal adjacency exactly once.
// Complexity: O(1).
func (l Layout) ForwardNeighbors(idx int) []int {
	col, row := l.Coordinate(idx)
	out := make([]int, 0, 2)
	if l.InBounds(col+1, row) {
		out = append(out, l.Index(col+1, row))
	}
	if l.InBounds(col, row+1) {
		out = append(out, l.Index(col, row+1))
	}

	return out
}

// Degree returns the number of orthogonal neighbours of idx: 2 for corners,
// 3 for border cells, 4 for interior cells (fewer on 1-wide grids).
func (l Layout) Degree(idx int) int {
	col, row := l.Coordinate(idx)
	d := 0
	for _, off := range [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
		if l.InBounds(col+off[0], row+off[1]) {
			d++
		}
	}

	return d
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func positiveFinite(v float64) bool { return finite(v) && v > 0 }
