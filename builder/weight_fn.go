// Package builder provides internal helper functions and types
// for configuring edge‐weight distributions in graph constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed; panics in constructors
// indicate programmer error in configuration.
type WeightFn func(rng *rand.Rand) float64

// ConstantWeightFn returns a WeightFn that always yields the provided value.
// Panics if value < 0.
// Complexity: O(1) time, O(1) space.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// IntRangeWeightFn returns a WeightFn sampling a uniform integer in
// [min, max] inclusive. Panics if min < 0 or max < min.
// If rng is nil, yields DefaultEdgeWeight.
// Complexity: O(1) time, O(1) space.
func IntRangeWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("IntRangeWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return float64(min + rng.Intn(max-min+1))
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if min < 0 or max < min.
// If rng is nil, yields DefaultEdgeWeight to maintain deterministic fallback.
// Complexity: O(1) time, O(1) space.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			// Degenerate interval: constant
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// DefaultWeightFn draws from [DefaultMinWeight, DefaultMaxWeight], the
// weight range of the demo grid.
func DefaultWeightFn() WeightFn {
	return IntRangeWeightFn(DefaultMinWeight, DefaultMaxWeight)
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
// No random source is needed.
// Complexity: O(1).
func WithConstantWeight(w float64) BuilderOption {
	fn := ConstantWeightFn(w)

	return func(c *builderConfig) {
		c.weightFn = fn
		c.weightRandom = false
	}
}

// WithIntWeightRange sets weights to uniform integers in [min, max].
// A degenerate range (min == max) needs no random source.
// Complexity: O(1).
func WithIntWeightRange(min, max int) BuilderOption {
	fn := IntRangeWeightFn(min, max)

	return func(c *builderConfig) {
		c.weightFn = fn
		c.weightRandom = min != max
	}
}

// WithUniformWeight sets weights ∼ U[min,max) via UniformWeightFn.
// Complexity: O(1).
func WithUniformWeight(min, max float64) BuilderOption {
	fn := UniformWeightFn(min, max)

	return func(c *builderConfig) {
		c.weightFn = fn
		c.weightRandom = min != max
	}
}
