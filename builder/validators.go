// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns an error wrapping a builder sentinel
// when its precondition is violated.
package builder

import "github.com/katalvlaran/pathgrid/gridgraph"

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns "<Method>: <name> must be ≥ <min>, got <got>: ErrTooFewVertices" otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return builderErrorf(method, "%s must be ≥ %d, got %d: %w", name, min, got, ErrTooFewVertices)
	}

	return nil
}

// validateLayout checks sizes first, then spacing and origin.
func validateLayout(method string, l gridgraph.Layout) error {
	if err := validateMin(method, "cols", l.Cols, MinGridDim); err != nil {
		return err
	}
	if err := validateMin(method, "rows", l.Rows, MinGridDim); err != nil {
		return err
	}
	if err := l.Validate(); err != nil {
		return builderErrorf(method, "%w: %w", ErrBadLayout, err)
	}

	return nil
}
