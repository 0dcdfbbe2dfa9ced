package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/bfs"
	"github.com/katalvlaran/pathgrid/config"
	"github.com/katalvlaran/pathgrid/core"
	"github.com/katalvlaran/pathgrid/dijkstra"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

// writeConfig writes a TOML file into a temp dir and returns its path.
func writeConfig(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pathgrid.toml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	return path
}

const smallGrid = `
[grid]
cols = 4
rows = 3
`

func TestPath_SimpleDefaults(t *testing.T) {
	out, _, err := run(t, "path", "--topology", "simple")
	require.NoError(t, err)
	assert.Equal(t, "path: 0 1 2 3 4\ncost: 4\nhops: 4\n", out)
}

func TestPath_Endpoints(t *testing.T) {
	out, _, err := run(t, "path", "-t", "simple", "--start", "3", "--end", "1")
	require.NoError(t, err)
	assert.Equal(t, "path: 3 2 1\ncost: 2\nhops: 2\n", out)
}

func TestPath_Hops(t *testing.T) {
	out, _, err := run(t, "path", "-c", writeConfig(t, smallGrid), "--hops")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "path: 0 "))
	assert.Contains(t, out, " 11\n")
	assert.Contains(t, out, "hops: 5\n", "3 columns and 2 rows to cross")

	out, _, err = run(t, "path", "-t", "simple", "--hops", "--start", "4", "--end", "1")
	require.NoError(t, err)
	assert.Equal(t, "path: 4 3 2 1\ncost: 3\nhops: 3\n", out)

	_, _, err = run(t, "path", "-t", "simple", "--hops", "--start", "-1")
	assert.ErrorIs(t, err, bfs.ErrStartNodeNotFound)
}

func TestPath_Errors(t *testing.T) {
	_, _, err := run(t, "path", "-t", "simple", "--start", "99")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	_, _, err = run(t, "path", "-t", "simple", "--end", "-1")
	assert.ErrorIs(t, err, dijkstra.ErrNoEnd)

	_, _, err = run(t, "path", "-t", "torus")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestPath_GridIsSeeded(t *testing.T) {
	cfg := writeConfig(t, smallGrid)
	a, _, err := run(t, "path", "-c", cfg, "--seed", "5")
	require.NoError(t, err)
	b, _, err := run(t, "path", "-c", cfg, "--seed", "5")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, "path: 0 "))
	assert.Contains(t, a, " 11\n")
}

func TestMaze(t *testing.T) {
	out, _, err := run(t, "maze", "-c", writeConfig(t, smallGrid))
	require.NoError(t, err)
	assert.Contains(t, out, "nodes: 12\n")
	assert.Contains(t, out, "edges: 11\n")
	assert.Contains(t, out, "connected: true\n")
	assert.Contains(t, out, "components: 1\n")
	assert.Contains(t, out, "reachable: 12\n")
	assert.Contains(t, out, "path: 0 ")
}

func TestMaze_Kruskal(t *testing.T) {
	out, _, err := run(t, "maze", "-c", writeConfig(t, smallGrid+"\n[maze]\nmethod = \"kruskal\"\n"))
	require.NoError(t, err)
	assert.Contains(t, out, "edges: 11\n")
	assert.Contains(t, out, "connected: true\n")
}

func TestDescribe(t *testing.T) {
	out, _, err := run(t, "describe", "-t", "simple")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Node 0: id: 0, x: -2, y: 0, number of neighbors: 1", lines[0])
	assert.Equal(t, "Node 2: id: 2, x: 0, y: 0, number of neighbors: 2", lines[2])
}

func TestRender_DOTToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.dot")
	_, _, err := run(t, "render", "-t", "simple", "-f", "dot", "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "graph G {"))

	_, _, err = run(t, "render", "-f", "png")
	assert.Error(t, err)
}

func TestRender_SVGToStdout(t *testing.T) {
	out, _, err := run(t, "render", "-t", "simple")
	require.NoError(t, err)
	assert.Contains(t, out, "<svg")
}

func TestConfig_PrintsEffective(t *testing.T) {
	out, _, err := run(t, "config", "-t", "maze", "--seed", "9")
	require.NoError(t, err)

	cfg, err := config.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, config.TopologyMaze, cfg.Topology)
	assert.Equal(t, int64(9), cfg.Seed)
}

func TestConfig_UnknownKey(t *testing.T) {
	_, _, err := run(t, "config", "-c", writeConfig(t, "colour = \"red\"\n"))
	assert.ErrorIs(t, err, config.ErrUnknownKey)
}

func TestSweep(t *testing.T) {
	out, _, err := run(t, "sweep", "-c", writeConfig(t, smallGrid), "--seed", "3", "-n", "4", "--workers", "2")
	require.NoError(t, err)
	for _, seed := range []string{"seed 3:", "seed 4:", "seed 5:", "seed 6:"} {
		assert.Contains(t, out, seed)
	}
	assert.Contains(t, out, "mazes: 4 reached: 4 spanning: 4\n")
	assert.Contains(t, out, "hops: min ")

	_, _, err = run(t, "sweep", "-n", "0")
	assert.Error(t, err)
}

func TestVerboseLogsToStderr(t *testing.T) {
	_, errOut, err := run(t, "path", "-t", "simple", "-v")
	require.NoError(t, err)
	assert.Contains(t, errOut, "graph built")
	assert.Contains(t, errOut, "path found")
}

func TestWriteSweep_NoPath(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeSweep(&buf, []sweepResult{{seed: 1}}))
	assert.Equal(t, "seed 1: no path\nmazes: 1 reached: 0 spanning: 0\n", buf.String())
}
