// Package builder_test contains unit tests for the WeightFn implementations
// in the builder package, covering both correct behavior and panic conditions.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathgrid/builder"
)

// assertPanics fails the test when fn does not panic.
func assertPanics(t *testing.T, fn func(), name string) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

// TestWeightFnConstructors verifies that WeightFn constructors and options
// panic on invalid parameters according to their documented contracts.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
	}{
		{"ConstantWeightFn_negative", func() { builder.ConstantWeightFn(-1) }},
		{"IntRangeWeightFn_minNegative", func() { builder.IntRangeWeightFn(-1, 5) }},
		{"IntRangeWeightFn_maxLessThanMin", func() { builder.IntRangeWeightFn(5, 4) }},
		{"UniformWeightFn_minNegative", func() { builder.UniformWeightFn(-1, 5) }},
		{"UniformWeightFn_maxLessThanMin", func() { builder.UniformWeightFn(5, 4) }},
		{"WithIntWeightRange_inverted", func() { builder.WithIntWeightRange(3, 1) }},
		{"WithConstantWeight_negative", func() { builder.WithConstantWeight(-2) }},
		{"WithWeightFn_nil", func() { builder.WithWeightFn(nil) }},
		{"WithRand_nil", func() { builder.WithRand(nil) }},
	}

	for _, tc := range tests {
		tc := tc // capture range variable
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assertPanics(t, tc.fn, tc.name)
		})
	}
}

// TestWeightFnBehavior covers the runtime behavior of each WeightFn:
//   - ConstantWeightFn returns the fixed value with or without RNG.
//   - IntRangeWeightFn returns DefaultEdgeWeight on nil RNG, integers in [min,max] otherwise.
//   - UniformWeightFn returns DefaultEdgeWeight on nil RNG, min on a degenerate range.
//   - DefaultWeightFn stays within [DefaultMinWeight, DefaultMaxWeight].
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	const seed = 42
	rng := rand.New(rand.NewSource(seed))

	const constVal = 7.0
	wfnConst := builder.ConstantWeightFn(constVal)
	if w := wfnConst(nil); w != constVal {
		t.Errorf("ConstantWeightFn(nil): expected %g, got %g", constVal, w)
	}
	if w := wfnConst(rng); w != constVal {
		t.Errorf("ConstantWeightFn(rng): expected %g, got %g", constVal, w)
	}

	wfnInt := builder.IntRangeWeightFn(2, 4)
	if w := wfnInt(nil); w != builder.DefaultEdgeWeight {
		t.Errorf("IntRangeWeightFn(nil RNG): expected default %g, got %g", builder.DefaultEdgeWeight, w)
	}
	seen := map[float64]bool{}
	for i := 0; i < 200; i++ {
		w := wfnInt(rng)
		if w < 2 || w > 4 || w != float64(int(w)) {
			t.Fatalf("IntRangeWeightFn(2,4): got %g", w)
		}
		seen[w] = true
	}
	if len(seen) != 3 {
		t.Errorf("IntRangeWeightFn(2,4): expected all of 2,3,4 in 200 draws, saw %v", seen)
	}

	wfnUni := builder.UniformWeightFn(3, 3)
	if w := wfnUni(nil); w != builder.DefaultEdgeWeight {
		t.Errorf("UniformWeightFn(nil RNG): expected default %g, got %g", builder.DefaultEdgeWeight, w)
	}
	if w := wfnUni(rng); w != 3 {
		t.Errorf("UniformWeightFn(3,3): expected 3, got %g", w)
	}

	def := builder.DefaultWeightFn()
	for i := 0; i < 100; i++ {
		w := def(rng)
		if w < builder.DefaultMinWeight || w > builder.DefaultMaxWeight {
			t.Fatalf("DefaultWeightFn: %g outside [%d,%d]", w, builder.DefaultMinWeight, builder.DefaultMaxWeight)
		}
	}
}
