package dot_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/builder"
	"github.com/katalvlaran/pathgrid/core"
	"github.com/katalvlaran/pathgrid/dijkstra"
	"github.com/katalvlaran/pathgrid/render/dot"
)

func simpleFrame(t *testing.T) core.Frame {
	t.Helper()
	g, err := builder.BuildGraph(builder.Simple())
	require.NoError(t, err)
	require.NoError(t, g.SetEnd(2))
	_, err = dijkstra.Recompute(g)
	require.NoError(t, err)
	return g.Snapshot(4)
}

func TestToDOT(t *testing.T) {
	out := dot.ToDOT(simpleFrame(t))

	assert.True(t, strings.HasPrefix(out, "graph G {\n"))
	assert.True(t, strings.HasSuffix(out, "}\n"))
	assert.Contains(t, out, `0 [pos="-2,0!", fillcolor=red, tooltip="start"];`)
	assert.Contains(t, out, `1 [pos="-1,0!", fillcolor=palegreen, tooltip="path"];`)
	assert.Contains(t, out, `2 [pos="0,0!", fillcolor=royalblue, tooltip="end"];`)
	assert.Contains(t, out, `4 [pos="2,0!", fillcolor=pink, tooltip="hover"];`)
	assert.Contains(t, out, `0 -- 1 [label="1", color=forestgreen, penwidth=3];`)
	assert.Contains(t, out, `3 -- 4 [label="1"];`)

	// Each undirected edge appears once.
	assert.Equal(t, 4, strings.Count(out, " -- "))
}

func TestRenderSVG(t *testing.T) {
	svg, err := dot.RenderSVG(context.Background(), dot.ToDOT(simpleFrame(t)))
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}

func TestRenderSVG_BadInput(t *testing.T) {
	_, err := dot.RenderSVG(context.Background(), "graph {")
	assert.Error(t, err)
}
