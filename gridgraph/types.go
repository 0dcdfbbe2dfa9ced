// Package gridgraph defines the Layout type and sentinel errors for laying
// out graph nodes on a rectangular, row-major grid.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates a layout with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: layout must have at least one row and one column")
	// ErrBadSpacing indicates a non-positive or non-finite node displacement.
	ErrBadSpacing = errors.New("gridgraph: node displacement must be positive and finite")
	// ErrBadOrigin indicates a non-finite origin or reference height.
	ErrBadOrigin = errors.New("gridgraph: origin and viewport height must be finite")
)

// Default layout of the demo scene: an 18×14 grid with half-unit spacing that
// fills a view of roughly (-5.33,-4)..(5.33,4) at zoom 0.25.
const (
	DefaultCols           = 18
	DefaultRows           = 14
	DefaultDisp           = 0.5
	DefaultStartX         = -4.25
	DefaultStartY         = 0.75
	DefaultViewportHeight = 4.0
)

// Layout places Cols×Rows nodes in row-major order.
//
// Node (row r, column c) has index r*Cols + c and world position
//
//	x = StartX + c*DispX
//	y = (ViewportHeight - StartY) - r*DispY
//
// so row 0 is the top row and rows grow downwards.
type Layout struct {
	Cols, Rows     int
	DispX, DispY   float64
	StartX, StartY float64
	ViewportHeight float64
}

// DefaultLayout returns the layout of the demo scene.
func DefaultLayout() Layout {
	return Layout{
		Cols:           DefaultCols,
		Rows:           DefaultRows,
		DispX:          DefaultDisp,
		DispY:          DefaultDisp,
		StartX:         DefaultStartX,
		StartY:         DefaultStartY,
		ViewportHeight: DefaultViewportHeight,
	}
}

// UnitLayout returns a cols×rows layout with unit spacing whose top-left node
// sits at (0,0). Handy for tests and small fixtures.
func UnitLayout(cols, rows int) Layout {
	return Layout{Cols: cols, Rows: rows, DispX: 1, DispY: 1}
}
