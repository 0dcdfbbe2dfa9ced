package cli

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/builder"
	"github.com/katalvlaran/pathgrid/core"
	"github.com/katalvlaran/pathgrid/dijkstra"
	"github.com/katalvlaran/pathgrid/pick"
	"github.com/katalvlaran/pathgrid/scene"
)

// fakeClock advances only when told to.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

// newTestPlay returns a play model over the five-node line on a 40×10 cell
// canvas, where the nodes sit on row 5 at columns 10, 15, 20, 25 and 30.
func newTestPlay(t *testing.T) (playModel, *fakeClock) {
	t.Helper()
	g, err := builder.BuildGraph(builder.Simple())
	require.NoError(t, err)

	clock := &fakeClock{t: time.Unix(0, 0)}
	m := newPlayModel(scene.New(g), pick.Viewport{Width: 40, Height: 10, Zoom: 1})
	m.now = clock.now
	m.last = clock.now()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10 + statusLines})
	return next.(playModel), clock
}

func send(t *testing.T, m playModel, msg tea.Msg) (playModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(playModel), cmd
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPlay_ClicksSelectEndpoints(t *testing.T) {
	m, _ := newTestPlay(t)

	m, _ = send(t, m, tea.MouseMsg{X: 20, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	g := m.scene.Graph()
	assert.Equal(t, 2, g.End())
	assert.Equal(t, []int{0, 1, 2}, g.Path())
	assert.Equal(t, 2, m.scene.Result().Hops())

	m, _ = send(t, m, tea.MouseMsg{X: 15, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, 1, g.Start())
	assert.Equal(t, []int{1, 2}, g.Path())
	assert.NoError(t, m.err)

	// Motion only hovers.
	m, _ = send(t, m, tea.MouseMsg{X: 30, Y: 5, Action: tea.MouseActionMotion})
	assert.Equal(t, 4, m.scene.Hover())
	assert.Equal(t, 1, g.Start())
	assert.Equal(t, 2, g.End())

	// A click on empty space changes nothing but still recomputes.
	m, _ = send(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, 1, g.Start())
	assert.Equal(t, []int{1, 2}, g.Path())
}

func TestPlay_FailedRecomputeClearsResult(t *testing.T) {
	m, _ := newTestPlay(t)
	assert.Equal(t, 4, m.scene.Result().Hops())

	require.NoError(t, m.scene.SetStart(core.NoNode))
	m, _ = send(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.ErrorIs(t, m.err, dijkstra.ErrNoStart)
	assert.Equal(t, -1, m.scene.Result().Hops())
	assert.NotContains(t, m.View(), "hops")
}

func TestPlay_ZoomIsThrottled(t *testing.T) {
	m, clock := newTestPlay(t)

	m, _ = send(t, m, key("="))
	assert.Equal(t, 1.5, m.camera.Viewport().Zoom)

	m, _ = send(t, m, key("="))
	assert.Equal(t, 1.5, m.camera.Viewport().Zoom, "second press within the cooldown")

	clock.t = clock.t.Add(scene.ZoomCooldown)
	m, _ = send(t, m, key("-"))
	assert.Equal(t, 1.0, m.camera.Viewport().Zoom)

	clock.t = clock.t.Add(scene.ZoomCooldown)
	m, _ = send(t, m, key("+"))
	clock.t = clock.t.Add(scene.ZoomCooldown)
	m, _ = send(t, m, key("r"))
	assert.Equal(t, 1.0, m.camera.Viewport().Zoom)
}

func TestPlay_ResizeAndView(t *testing.T) {
	m, _ := newTestPlay(t)
	assert.Equal(t, 40, m.camera.Viewport().Width)
	assert.Equal(t, 10, m.camera.Viewport().Height)

	view := m.View()
	assert.Contains(t, view, "S")
	assert.Contains(t, view, "E")
	assert.Contains(t, view, "start 0  end 4")
	assert.Contains(t, view, "hops 4")

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 20, Height: 1})
	assert.Equal(t, 1, m.camera.Viewport().Height)
}

func TestPlay_Quit(t *testing.T) {
	m, _ := newTestPlay(t)
	_, cmd := send(t, m, key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
