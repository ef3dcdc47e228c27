package viewer

import (
	"github.com/pthm-cable/petri/evolve"
)

// maxZoom bounds magnification; past 16x individual basins fill the window
// and further zoom is just pixel soup.
const maxZoom = 16.0

// Camera is a pan/zoom viewport over the [0, bound]² landscape. Zoom 1 fits
// the whole domain; the visible region is clamped so the view never leaves it.
type Camera struct {
	// Center of the view in world coordinates
	X, Y float64

	// Zoom level (1 = whole domain visible)
	Zoom float64

	width, height float64 // viewport pixels
	bound         float64
}

// NewCamera creates a camera showing the full domain.
func NewCamera(width, height int, bound float64) *Camera {
	return &Camera{
		X:      bound / 2,
		Y:      bound / 2,
		Zoom:   1,
		width:  float64(width),
		height: float64(height),
		bound:  bound,
	}
}

// scaleX and scaleY are pixels per world unit along each axis. The square
// domain stretches to fill a non-square viewport, same as the heatmap.
func (c *Camera) scaleX() float64 { return c.width / c.bound * c.Zoom }
func (c *Camera) scaleY() float64 { return c.height / c.bound * c.Zoom }

// WorldToScreen converts world coordinates to screen pixels.
func (c *Camera) WorldToScreen(p evolve.Point) (sx, sy float64) {
	sx = c.width/2 + (p.X-c.X)*c.scaleX()
	sy = c.height/2 + (p.Y-c.Y)*c.scaleY()
	return sx, sy
}

// ScreenToWorld converts screen pixels to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) evolve.Point {
	return evolve.Point{
		X: c.X + (sx-c.width/2)/c.scaleX(),
		Y: c.Y + (sy-c.height/2)/c.scaleY(),
	}
}

// Pan shifts the view by a screen-pixel delta, dragging the landscape with
// the cursor.
func (c *Camera) Pan(dx, dy float64) {
	c.X -= dx / c.scaleX()
	c.Y -= dy / c.scaleY()
	c.clampCenter()
}

// ZoomBy scales the zoom by factor, keeping the world point under the given
// screen position fixed so zooming follows the cursor.
func (c *Camera) ZoomBy(factor, sx, sy float64) {
	anchor := c.ScreenToWorld(sx, sy)
	c.Zoom = clampF(c.Zoom*factor, 1, maxZoom)
	moved := c.ScreenToWorld(sx, sy)
	c.X += anchor.X - moved.X
	c.Y += anchor.Y - moved.Y
	c.clampCenter()
}

// Reset returns to the full-domain view.
func (c *Camera) Reset() {
	c.X = c.bound / 2
	c.Y = c.bound / 2
	c.Zoom = 1
}

// Visible returns the world-coordinate square currently on screen: its
// minimum corner and side length.
func (c *Camera) Visible() (minX, minY, size float64) {
	size = c.bound / c.Zoom
	return c.X - size/2, c.Y - size/2, size
}

// clampCenter keeps the visible square inside the domain. At zoom 1 the only
// legal center is the domain middle.
func (c *Camera) clampCenter() {
	half := c.bound / (2 * c.Zoom)
	c.X = clampF(c.X, half, c.bound-half)
	c.Y = clampF(c.Y, half, c.bound-half)
}

func clampF(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
