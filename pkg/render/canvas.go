// Package render provides the pixel canvas, world-to-screen mapping and the
// PPM and PNG encoders.
package render

import (
	"fmt"

	"github.com/taigrr/projectile/pkg/math3d"
)

// Canvas is a fixed-size grid of colors, row-major with the origin at the
// top-left corner.
type Canvas struct {
	Width  int
	Height int
	Pixels []math3d.Color
}

// NewCanvas creates a width×height canvas with every pixel black.
func NewCanvas(width, height int) *Canvas {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("render: invalid canvas size %dx%d", width, height))
	}
	return &Canvas{
		Width:  width,
		Height: height,
		Pixels: make([]math3d.Color, width*height),
	}
}

// InBounds reports whether (x, y) addresses a pixel of the canvas.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.Width && y >= 0 && y < c.Height
}

// WritePixel sets the pixel at (x, y). Coordinates outside the canvas are a
// programming error and panic.
func (c *Canvas) WritePixel(x, y int, col math3d.Color) {
	c.Pixels[c.index(x, y)] = col
}

// PixelAt returns the pixel at (x, y), with the same bounds contract as
// WritePixel.
func (c *Canvas) PixelAt(x, y int) math3d.Color {
	return c.Pixels[c.index(x, y)]
}

// Fill sets every pixel to col.
func (c *Canvas) Fill(col math3d.Color) {
	for i := range c.Pixels {
		c.Pixels[i] = col
	}
}

// Clear resets the canvas to black.
func (c *Canvas) Clear() {
	clear(c.Pixels)
}

// index checks both axes so an x overflow cannot wrap into the next row.
func (c *Canvas) index(x, y int) int {
	if !c.InBounds(x, y) {
		panic(fmt.Sprintf("render: pixel (%d, %d) out of range for %dx%d canvas", x, y, c.Width, c.Height))
	}
	return y*c.Width + x
}
