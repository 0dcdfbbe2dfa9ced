package scene

import (
	"time"

	"github.com/katalvlaran/pathgrid/pick"
)

// ZoomCooldown is the minimum time between two zoom steps while a zoom key
// is held.
const ZoomCooldown = 250 * time.Millisecond

// Camera holds the viewport and throttles zoom key repeats.
type Camera struct {
	vp        pick.Viewport
	initial   float64
	sinceLast time.Duration
}

// NewCamera returns a camera over vp; Reset restores vp.Zoom.
func NewCamera(vp pick.Viewport) *Camera {
	return &Camera{vp: vp, initial: vp.Zoom, sinceLast: ZoomCooldown}
}

// Viewport returns the current viewport.
func (c *Camera) Viewport() pick.Viewport { return c.vp }

// Resize changes the window size and keeps the zoom.
func (c *Camera) Resize(width, height int) {
	c.vp.Width, c.vp.Height = width, height
}

// Advance records elapsed frame time.
func (c *Camera) Advance(dt time.Duration) { c.sinceLast += dt }

// ZoomIn multiplies the zoom by pick.ZoomStep unless still cooling down.
// It reports whether the zoom changed.
func (c *Camera) ZoomIn() bool {
	return c.step(func() { c.vp = c.vp.ZoomIn() })
}

// ZoomOut divides the zoom by pick.ZoomStep unless still cooling down.
func (c *Camera) ZoomOut() bool {
	return c.step(func() { c.vp = c.vp.ZoomOut() })
}

// Reset restores the initial zoom unless still cooling down.
func (c *Camera) Reset() bool {
	return c.step(func() { c.vp.Zoom = c.initial })
}

func (c *Camera) step(apply func()) bool {
	if c.sinceLast < ZoomCooldown {
		return false
	}
	apply()
	c.sinceLast = 0

	return true
}
