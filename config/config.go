// Package config loads the path-finding configuration from TOML.
//
// A Config starts from Default: an 18×14 grid with random integer weights
// in [10, 15], viewed at zoom 0.25 in a 1024×768 window. Load and Parse
// decode a TOML document over those defaults, so a file only needs the keys
// it changes:
//
//	topology = "maze"
//	seed = 7
//
//	[grid]
//	cols = 30
//	rows = 20
//
//	[weights]
//	min = 0.5
//	max = 2
//	uniform = true
//
//	[maze]
//	method = "kruskal"
//
// Unknown keys are rejected with ErrUnknownKey; out-of-range values with
// ErrInvalidConfig.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/pathgrid/builder"
	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/maze"
	"github.com/katalvlaran/pathgrid/pick"
)

// Graph topologies.
const (
	TopologySimple = "simple"
	TopologyGrid   = "grid"
	TopologyMaze   = "maze"
)

// Default window size in pixels, and the default seed.
const (
	DefaultWidth  = 1024
	DefaultHeight = 768
	DefaultSeed   = 1
)

var (
	// ErrUnknownKey indicates a TOML key that maps to no Config field.
	ErrUnknownKey = errors.New("config: unknown key")
	// ErrInvalidConfig indicates a value outside its valid range.
	ErrInvalidConfig = errors.New("config: invalid value")
)

// Config is the full configuration shared by every command.
type Config struct {
	Topology string       `toml:"topology"`
	Seed     int64        `toml:"seed"`
	Grid     GridConfig   `toml:"grid"`
	Weights  WeightConfig `toml:"weights"`
	Maze     MazeConfig   `toml:"maze"`
	View     ViewConfig   `toml:"view"`
}

// GridConfig mirrors gridgraph.Layout.
type GridConfig struct {
	Cols           int     `toml:"cols"`
	Rows           int     `toml:"rows"`
	DispX          float64 `toml:"disp_x"`
	DispY          float64 `toml:"disp_y"`
	StartX         float64 `toml:"start_x"`
	StartY         float64 `toml:"start_y"`
	ViewportHeight float64 `toml:"viewport_height"`
}

// WeightConfig is the range edge weights are drawn from. By default weights
// are integers in [Min, Max]; with Uniform they are reals in [Min, Max).
// Min == Max gives constant weights either way.
type WeightConfig struct {
	Min     float64 `toml:"min"`
	Max     float64 `toml:"max"`
	Uniform bool    `toml:"uniform"`
}

// MazeConfig selects the maze carving algorithm (maze.MethodDFS or
// maze.MethodKruskal).
type MazeConfig struct {
	Method string `toml:"method"`
}

// ViewConfig describes the screen the graph is shown on.
type ViewConfig struct {
	Width     int     `toml:"width"`
	Height    int     `toml:"height"`
	Zoom      float64 `toml:"zoom"`
	Tolerance float64 `toml:"tolerance"`
}

// Default returns the 18×14 grid seeded with DefaultSeed, DFS mazes and a
// 1024×768 view at pick.DefaultZoom.
func Default() Config {
	l := gridgraph.DefaultLayout()

	return Config{
		Topology: TopologyGrid,
		Seed:     DefaultSeed,
		Grid: GridConfig{
			Cols:           l.Cols,
			Rows:           l.Rows,
			DispX:          l.DispX,
			DispY:          l.DispY,
			StartX:         l.StartX,
			StartY:         l.StartY,
			ViewportHeight: l.ViewportHeight,
		},
		Weights: WeightConfig{Min: builder.DefaultMinWeight, Max: builder.DefaultMaxWeight},
		Maze:    MazeConfig{Method: maze.MethodDFS},
		View: ViewConfig{
			Width:     DefaultWidth,
			Height:    DefaultHeight,
			Zoom:      pick.DefaultZoom,
			Tolerance: pick.DefaultTolerance,
		},
	}
}

// Load reads the TOML file at path over Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes a TOML document over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Validate checks every section of c.
func (c Config) Validate() error {
	switch c.Topology {
	case TopologySimple, TopologyGrid, TopologyMaze:
	default:
		return fmt.Errorf("%w: topology %q (want %s, %s or %s)",
			ErrInvalidConfig, c.Topology, TopologySimple, TopologyGrid, TopologyMaze)
	}
	if err := c.Layout().Validate(); err != nil {
		return fmt.Errorf("%w: grid: %w", ErrInvalidConfig, err)
	}
	if !(c.Weights.Min >= 0) || !(c.Weights.Max >= c.Weights.Min) || math.IsInf(c.Weights.Max, 0) {
		return fmt.Errorf("%w: weights: require 0 ≤ min ≤ max, got [%g, %g]",
			ErrInvalidConfig, c.Weights.Min, c.Weights.Max)
	}
	if !c.Weights.Uniform && (c.Weights.Min != math.Trunc(c.Weights.Min) || c.Weights.Max != math.Trunc(c.Weights.Max)) {
		return fmt.Errorf("%w: weights: integer range needs whole bounds, got [%g, %g] (set uniform = true)",
			ErrInvalidConfig, c.Weights.Min, c.Weights.Max)
	}
	if c.Maze.Method != maze.MethodDFS && c.Maze.Method != maze.MethodKruskal {
		return fmt.Errorf("%w: maze: method %q (want %s or %s)",
			ErrInvalidConfig, c.Maze.Method, maze.MethodDFS, maze.MethodKruskal)
	}
	if err := c.Viewport().Validate(); err != nil {
		return fmt.Errorf("%w: view: %w", ErrInvalidConfig, err)
	}
	if !(c.View.Tolerance > 0) || math.IsInf(c.View.Tolerance, 0) {
		return fmt.Errorf("%w: view: tolerance must be positive, got %g", ErrInvalidConfig, c.View.Tolerance)
	}

	return nil
}

// Layout returns the grid section as a gridgraph.Layout.
func (c Config) Layout() gridgraph.Layout {
	return gridgraph.Layout{
		Cols:           c.Grid.Cols,
		Rows:           c.Grid.Rows,
		DispX:          c.Grid.DispX,
		DispY:          c.Grid.DispY,
		StartX:         c.Grid.StartX,
		StartY:         c.Grid.StartY,
		ViewportHeight: c.Grid.ViewportHeight,
	}
}

// Viewport returns the view section as a pick.Viewport.
func (c Config) Viewport() pick.Viewport {
	return pick.Viewport{Width: c.View.Width, Height: c.View.Height, Zoom: c.View.Zoom}
}

// BuilderOptions returns the builder options for the seed and weight policy.
// Validate c first: an invalid weight range panics in the builder.
func (c Config) BuilderOptions() []builder.BuilderOption {
	return []builder.BuilderOption{builder.WithSeed(c.Seed), c.weightOption()}
}

func (c Config) weightOption() builder.BuilderOption {
	w := c.Weights
	switch {
	case w.Min == w.Max:
		return builder.WithConstantWeight(w.Min)
	case w.Uniform:
		return builder.WithUniformWeight(w.Min, w.Max)
	default:
		return builder.WithIntWeightRange(int(w.Min), int(w.Max))
	}
}
