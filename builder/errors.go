// SPDX-License-Identifier: MIT
// Package: pathgrid/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w` and the constructor name.
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (cols, rows) is smaller
// than the allowed minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a random weight policy is active but no
// *rand.Rand was supplied (WithSeed/WithRand must be set).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply seeded RNG */ }.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadLayout indicates a grid layout with invalid spacing or origin.
// The underlying gridgraph sentinel stays reachable through errors.Is.
var ErrBadLayout = errors.New("builder: invalid grid layout")

// ErrConstructFailed indicates that BuildGraph could not finish: a nil
// constructor, a core insertion failure, or a failed initial path search.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps an inner error message with the given method context.
// It returns an error of the form "<Method>: <formatted message>".
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}

// --- Implementation Notes ----------------------------------------------------
//
// 1) Wrapping style (required):
//      return builderErrorf(MethodGrid, "weights: %w", ErrNeedRandSource)
//    This preserves the sentinel for errors.Is while adding a deterministic
//    context prefix "Grid: weights: builder: rng is required".
//
// 2) Priority (tie-break guidance when multiple validations fail):
//    • ErrTooFewVertices  — size checks first (cols, rows).
//    • ErrBadLayout       — then spacing and origin.
//    • ErrNeedRandSource  — then RNG presence for random weight policies.
//    • ErrConstructFailed — only for failures after validation passed.
