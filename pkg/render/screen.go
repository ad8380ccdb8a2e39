package render

import (
	"math"

	"github.com/taigrr/projectile/pkg/math3d"
)

// Pixel is a canvas coordinate.
type Pixel struct {
	X, Y int
}

// WorldToScreen maps a world-space point onto the canvas. X and Y are
// rounded half away from zero; screen X is the rounded world X and screen Y
// is Height minus the rounded world Y, so increasing world Y moves up the
// image. ok is false when the point falls off the canvas; the result is
// never clamped. Every accepted pixel is writable.
func (c *Canvas) WorldToScreen(p math3d.Tuple) (px Pixel, ok bool) {
	rx := math.Round(p.X)
	ry := math.Round(p.Y)
	if math.IsNaN(rx) || math.IsNaN(ry) || rx < 0 || ry < 0 {
		return Pixel{}, false
	}
	// Compare in float space so huge coordinates cannot overflow int.
	if rx >= float64(c.Width) || ry > float64(c.Height) {
		return Pixel{}, false
	}
	px = Pixel{X: int(rx), Y: c.Height - int(ry)}
	if !c.InBounds(px.X, px.Y) {
		return Pixel{}, false
	}
	return px, true
}

// Plot maps p onto the canvas and paints it with col. It reports whether a
// pixel was written.
func (c *Canvas) Plot(p math3d.Tuple, col math3d.Color) bool {
	px, ok := c.WorldToScreen(p)
	if !ok {
		return false
	}
	c.WritePixel(px.X, px.Y, col)
	return true
}
