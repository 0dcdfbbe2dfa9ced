// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuildGraph is the canonical name for the BuildGraph orchestrator.
	MethodBuildGraph = "BuildGraph"
	// MethodSimple is the canonical name for the Simple constructor.
	MethodSimple = "Simple"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
)

//-----------------------------------------------------------------------------
// Fixture sizes
//-----------------------------------------------------------------------------

// SimpleNodes is the number of nodes laid on a line by Simple.
const SimpleNodes = 5

// SimpleEdgeCost is the cost of every edge emitted by Simple.
const SimpleEdgeCost = 1.0

// MinGridDim is the smallest allowed dimension (rows or cols) for a Grid.
// A grid of size 1×1 has no edges, but is considered valid.
const MinGridDim = 1

//-----------------------------------------------------------------------------
// Default Weights
//-----------------------------------------------------------------------------

// DefaultMinWeight and DefaultMaxWeight bound the default grid weight policy:
// a uniform integer drawn from [DefaultMinWeight, DefaultMaxWeight].
const (
	DefaultMinWeight = 10
	DefaultMaxWeight = 15
)

// DefaultEdgeWeight is returned by random weight functions invoked without a
// random source, keeping direct calls deterministic.
const DefaultEdgeWeight float64 = 1
