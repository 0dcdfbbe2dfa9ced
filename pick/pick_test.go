package pick_test

import (
	"math/rand"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/builder"
	"github.com/katalvlaran/pathgrid/core"
	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/pick"
)

var demoView = pick.Viewport{Width: 800, Height: 600, Zoom: pick.DefaultZoom}

func TestScreenToWorld(t *testing.T) {
	p, ok := demoView.ScreenToWorld(400, 300)
	require.True(t, ok)
	assert.InDelta(t, 0, p.X(), 1e-12)
	assert.InDelta(t, 0, p.Y(), 1e-12)

	// Right edge: aspect-stretched x extent 1/zoom * 4/3.
	p, ok = demoView.ScreenToWorld(800, 300)
	require.True(t, ok)
	assert.InDelta(t, 16.0/3.0, p.X(), 1e-9)

	// Top edge: y extent 1/zoom.
	p, ok = demoView.ScreenToWorld(400, 0)
	require.True(t, ok)
	assert.InDelta(t, 4, p.Y(), 1e-9)

	// Portrait window stretches y instead.
	tall := pick.Viewport{Width: 300, Height: 600, Zoom: 1}
	p, ok = tall.ScreenToWorld(300, 0)
	require.True(t, ok)
	assert.InDelta(t, 1, p.X(), 1e-12)
	assert.InDelta(t, 2, p.Y(), 1e-12)
}

func TestScreenToWorld_Outside(t *testing.T) {
	for _, c := range [][2]float64{{-1, 10}, {801, 10}, {10, -0.5}, {10, 601}} {
		_, ok := demoView.ScreenToWorld(c[0], c[1])
		assert.False(t, ok, "%v", c)
	}
	_, ok := pick.Viewport{Width: 0, Height: 10, Zoom: 1}.ScreenToWorld(0, 0)
	assert.False(t, ok, "invalid viewport")
	assert.ErrorIs(t, pick.Viewport{Width: 10, Height: 10}.Validate(), pick.ErrBadViewport)
}

func TestWorldToScreen_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, vp := range []pick.Viewport{demoView, {Width: 300, Height: 700, Zoom: 0.6}, {Width: 500, Height: 500, Zoom: 2}} {
		for i := 0; i < 50; i++ {
			sx := rng.Float64() * float64(vp.Width)
			sy := rng.Float64() * float64(vp.Height)
			p, ok := vp.ScreenToWorld(sx, sy)
			require.True(t, ok)
			bx, by := vp.WorldToScreen(p)
			assert.InDelta(t, sx, bx, 1e-9)
			assert.InDelta(t, sy, by, 1e-9)
		}
	}
}

func TestZoom(t *testing.T) {
	in := demoView.ZoomIn()
	assert.InDelta(t, 0.375, in.Zoom, 1e-12)
	assert.InDelta(t, demoView.Zoom, in.ZoomOut().Zoom, 1e-12)

	b := demoView.WorldBounds()
	assert.InDelta(t, -16.0/3.0, b.Min.X(), 1e-9)
	assert.InDelta(t, 4, b.Max.Y(), 1e-9)
}

func line() *core.Graph {
	g, _ := builder.BuildGraph(builder.Simple())
	return g
}

func TestPickers_ExactHitAndMiss(t *testing.T) {
	g := line()
	for name, p := range map[string]pick.Picker{
		"linear":  pick.NewLinear(g, 0),
		"indexed": pick.NewIndexed(g, 0),
	} {
		t.Run(name, func(t *testing.T) {
			id, ok := p.Pick(orb.Point{1, 0})
			assert.True(t, ok)
			assert.Equal(t, 3, id)

			id, ok = p.Pick(orb.Point{-2.1, 0.1})
			assert.True(t, ok)
			assert.Equal(t, 0, id)

			id, ok = p.Pick(orb.Point{0.5, 0})
			assert.False(t, ok, "midway between nodes is outside the radius")
			assert.Equal(t, core.NoNode, id)

			_, ok = p.Pick(orb.Point{100, 100})
			assert.False(t, ok)
		})
	}
}

func TestPickers_Agree(t *testing.T) {
	g, err := builder.BuildGraph(builder.Grid(gridgraph.DefaultLayout()), builder.WithSeed(1))
	require.NoError(t, err)

	for _, tol := range []float64{0.1, pick.DefaultTolerance, 0.6} {
		lin, idx := pick.NewLinear(g, tol), pick.NewIndexed(g, tol)
		assert.Equal(t, g.NumNodes(), idx.Size())

		rng := rand.New(rand.NewSource(int64(tol * 100)))
		for i := 0; i < 500; i++ {
			p := orb.Point{rng.Float64()*12 - 6, rng.Float64()*10 - 5}
			a, aok := lin.Pick(p)
			b, bok := idx.Pick(p)
			require.Equal(t, aok, bok, "tol %g at %v", tol, p)
			require.Equal(t, a, b, "tol %g at %v", tol, p)
		}
	}
}

func TestSelectNode(t *testing.T) {
	g := line()

	// Centre of the window is the world origin: node 2.
	id, ok := pick.SelectNode(g, nil, 400, 300, demoView)
	assert.True(t, ok)
	assert.Equal(t, 2, id)

	// Screen position of node 4 via the inverse transform.
	sx, sy := demoView.WorldToScreen(orb.Point{2, 0})
	id, ok = pick.SelectNode(g, pick.NewIndexed(g, 0), sx, sy, demoView)
	assert.True(t, ok)
	assert.Equal(t, 4, id)

	// Outside the window: nothing, not an error.
	id, ok = pick.SelectNode(g, nil, -5, 300, demoView)
	assert.False(t, ok)
	assert.Equal(t, core.NoNode, id)

	// Empty graph.
	_, ok = pick.SelectNode(core.NewGraph(), nil, 400, 300, demoView)
	assert.False(t, ok)
}
