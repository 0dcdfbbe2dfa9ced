// SPDX-License-Identifier: MIT
// Package: pathgrid/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • rng          = nil                    (seed explicitly for random weights)
//   • weightFn     = DefaultWeightFn()      (integers in [10,15])
//   • weightRandom = true                   (Grid requires an rng)
//   • initialPath  = true                   (start=first, end=last, path computed)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for grid edges.
	weightFn WeightFn
	// weightRandom reports whether weightFn consumes rng.
	weightRandom bool
	// initialPath selects endpoints and computes a path after construction.
	initialPath bool
}

// newBuilderConfig constructs a config with defaults and applies all
// options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:          nil,
		weightFn:     DefaultWeightFn(),
		weightRandom: true,
		initialPath:  true,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight, failing when the policy needs an rng
// that was never supplied.
func (c builderConfig) weight(method string) (float64, error) {
	if c.weightRandom && c.rng == nil {
		return 0, builderErrorf(method, "random weight policy: %w", ErrNeedRandSource)
	}

	return c.weightFn(c.rng), nil
}
