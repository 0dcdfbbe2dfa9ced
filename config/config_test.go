package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/builder"
	"github.com/katalvlaran/pathgrid/config"
	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/pick"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, config.TopologyGrid, cfg.Topology)
	assert.Equal(t, gridgraph.DefaultLayout(), cfg.Layout())
	assert.Equal(t, pick.Viewport{Width: 1024, Height: 768, Zoom: 0.25}, cfg.Viewport())
	assert.Equal(t, 0.25, cfg.View.Tolerance)
	assert.Equal(t, config.WeightConfig{Min: 10, Max: 15}, cfg.Weights)
	assert.Equal(t, "dfs", cfg.Maze.Method)
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(`
topology = "maze"
seed = 7

[grid]
cols = 30
rows = 20

[weights]
min = 1
max = 1
`))
	require.NoError(t, err)

	assert.Equal(t, config.TopologyMaze, cfg.Topology)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 30, cfg.Grid.Cols)
	assert.Equal(t, 20, cfg.Grid.Rows)
	assert.Equal(t, 0.5, cfg.Grid.DispX, "untouched keys keep defaults")
	assert.Equal(t, config.WeightConfig{Min: 1, Max: 1}, cfg.Weights)
	assert.Equal(t, 1024, cfg.View.Width)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"unknown top-level key", `colour = "red"`, config.ErrUnknownKey},
		{"unknown nested key", "[grid]\ncolumns = 3", config.ErrUnknownKey},
		{"bad topology", `topology = "torus"`, config.ErrInvalidConfig},
		{"empty grid", "[grid]\ncols = 0", config.ErrInvalidConfig},
		{"bad spacing", "[grid]\ndisp_x = -1.0", config.ErrInvalidConfig},
		{"bad maze method", "[maze]\nmethod = \"prim\"", config.ErrInvalidConfig},
		{"inverted weights", "[weights]\nmin = 5\nmax = 4", config.ErrInvalidConfig},
		{"negative weights", "[weights]\nmin = -1", config.ErrInvalidConfig},
		{"fractional integer weights", "[weights]\nmin = 0.5\nmax = 2", config.ErrInvalidConfig},
		{"zero zoom", "[view]\nzoom = 0.0", config.ErrInvalidConfig},
		{"zero width", "[view]\nwidth = 0", config.ErrInvalidConfig},
		{"zero tolerance", "[view]\ntolerance = 0.0", config.ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := config.Parse([]byte("topology = "))
	assert.Error(t, err, "malformed TOML")
}

func TestParse_GridErrorKeepsCause(t *testing.T) {
	_, err := config.Parse([]byte("[grid]\nrows = 0"))
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pathgrid.toml")
	require.NoError(t, os.WriteFile(path, []byte("topology = \"simple\"\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.TopologySimple, cfg.Topology)

	_, err = config.Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEncode_RoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Topology = config.TopologyMaze
	cfg.Grid.Cols = 5

	var buf bytes.Buffer
	require.NoError(t, cfg.Encode(&buf))
	assert.Contains(t, buf.String(), `topology = "maze"`)

	back, err := config.Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestBuilderOptions(t *testing.T) {
	cfg := config.Default()
	cfg.Weights = config.WeightConfig{Min: 3, Max: 3}

	opts := append([]builder.BuilderOption{builder.WithoutInitialPath()}, cfg.BuilderOptions()...)
	g, err := builder.BuildGraph(builder.Grid(gridgraph.UnitLayout(2, 2)), opts...)
	require.NoError(t, err)
	c, ok := g.EdgeCost(0, 1)
	require.True(t, ok)
	assert.Equal(t, 3.0, c)
}

func TestBuilderOptions_Uniform(t *testing.T) {
	cfg, err := config.Parse([]byte("[weights]\nmin = 0.5\nmax = 2\nuniform = true\n"))
	require.NoError(t, err)
	assert.Equal(t, config.WeightConfig{Min: 0.5, Max: 2, Uniform: true}, cfg.Weights)

	opts := append([]builder.BuilderOption{builder.WithoutInitialPath()}, cfg.BuilderOptions()...)
	g, err := builder.BuildGraph(builder.Grid(gridgraph.UnitLayout(6, 6)), opts...)
	require.NoError(t, err)

	fractional := false
	for _, n := range g.Nodes() {
		for _, e := range n.Edges() {
			assert.GreaterOrEqual(t, e.Cost, 0.5)
			assert.Less(t, e.Cost, 2.0)
			if e.Cost != float64(int(e.Cost)) {
				fractional = true
			}
		}
	}
	assert.True(t, fractional, "uniform weights are not rounded")
}

func TestBuilderOptions_IntegerRange(t *testing.T) {
	cfg := config.Default()
	opts := append([]builder.BuilderOption{builder.WithoutInitialPath()}, cfg.BuilderOptions()...)
	g, err := builder.BuildGraph(builder.Grid(gridgraph.UnitLayout(4, 4)), opts...)
	require.NoError(t, err)
	for _, n := range g.Nodes() {
		for _, e := range n.Edges() {
			assert.Equal(t, float64(int(e.Cost)), e.Cost)
			assert.GreaterOrEqual(t, e.Cost, 10.0)
			assert.LessOrEqual(t, e.Cost, 15.0)
		}
	}
}
