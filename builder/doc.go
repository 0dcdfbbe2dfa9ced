// Package builder constructs the graphs the path-finding engine works on,
// using a small “functional-options” API.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(cons, opts...): creates a core.Graph, runs one Constructor,
//     then selects start = first node, end = last node and computes the path.
//     – SelectDefaultEndpoints: the endpoint step on its own, for derived graphs.
//   - Constructors:
//     – Simple():       five nodes on a line, unit costs.
//     – Grid(layout):   Cols×Rows orthogonal grid placed by gridgraph.Layout.
//     – Empty():        zero nodes (maze destination).
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – WithSeed / WithRand: random source for weight draws.
//     – WithoutInitialPath: skip endpoint selection and path computation.
//   - Edge-weight policies (WeightFn implementations):
//     – DefaultWeightFn:   integers in [DefaultMinWeight, DefaultMaxWeight].
//     – ConstantWeightFn:  fixed user-provided value (no rng needed).
//     – IntRangeWeightFn:  integers ∼U{min..max}.
//     – UniformWeightFn:   reals ∼U[min,max).
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Constructors never panic; they return errors wrapping the sentinels
//     ErrTooFewVertices, ErrBadLayout, ErrNeedRandSource, ErrConstructFailed.
//   - The default weight policy is random, so Grid without WithSeed/WithRand
//     fails with ErrNeedRandSource instead of silently picking a seed.
//   - Deterministic output for a fixed seed.
package builder
