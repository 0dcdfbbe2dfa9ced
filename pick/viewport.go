package pick

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
)

// Default camera zoom and the per-step zoom factor.
const (
	DefaultZoom = 0.25
	// ZoomStep is the factor applied by one zoom-in or zoom-out step.
	ZoomStep = 1.5
)

// ErrBadViewport indicates a viewport with a non-positive size or zoom.
var ErrBadViewport = errors.New("pick: viewport needs positive width, height and zoom")

// Viewport describes the window a frame is drawn into.
type Viewport struct {
	Width, Height int
	Zoom          float64
}

// Validate reports ErrBadViewport for unusable dimensions.
func (v Viewport) Validate() error {
	if v.Width <= 0 || v.Height <= 0 || !(v.Zoom > 0) {
		return fmt.Errorf("%w: %dx%d zoom %g", ErrBadViewport, v.Width, v.Height, v.Zoom)
	}

	return nil
}

// Contains reports whether (sx, sy) lies inside [0,Width]×[0,Height].
func (v Viewport) Contains(sx, sy float64) bool {
	return sx >= 0 && sx <= float64(v.Width) && sy >= 0 && sy <= float64(v.Height)
}

// ScreenToWorld converts a pixel position to world coordinates. It returns
// false when the position is outside the window or the viewport is invalid.
func (v Viewport) ScreenToWorld(sx, sy float64) (orb.Point, bool) {
	if v.Validate() != nil || !v.Contains(sx, sy) {
		return orb.Point{}, false
	}
	w, h := float64(v.Width), float64(v.Height)
	var x, y float64
	if w > h {
		a := w / h
		x = (2*sx - w) * a / (w * v.Zoom)
		y = (h - 2*sy) / (h * v.Zoom)
	} else {
		a := h / w
		x = (2*sx - w) / (w * v.Zoom)
		y = (h - 2*sy) * a / (h * v.Zoom)
	}

	return orb.Point{x, y}, true
}

// WorldToScreen is the inverse of ScreenToWorld. The result may fall
// outside the window.
func (v Viewport) WorldToScreen(p orb.Point) (sx, sy float64) {
	w, h := float64(v.Width), float64(v.Height)
	if w > h {
		a := w / h
		sx = (p.X()*w*v.Zoom/a + w) / 2
		sy = (h - p.Y()*h*v.Zoom) / 2
	} else {
		a := h / w
		sx = (p.X()*w*v.Zoom + w) / 2
		sy = (h - p.Y()*h*v.Zoom/a) / 2
	}

	return sx, sy
}

// ZoomIn returns v magnified by ZoomStep.
func (v Viewport) ZoomIn() Viewport {
	v.Zoom *= ZoomStep
	return v
}

// ZoomOut returns v shrunk by ZoomStep.
func (v Viewport) ZoomOut() Viewport {
	v.Zoom /= ZoomStep
	return v
}

// WorldBounds returns the world rectangle visible through v.
func (v Viewport) WorldBounds() orb.Bound {
	tl, _ := v.ScreenToWorld(0, 0)
	br, _ := v.ScreenToWorld(float64(v.Width), float64(v.Height))

	return orb.MultiPoint{tl, br}.Bound()
}
