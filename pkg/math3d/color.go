package math3d

import "math"

// Color is an RGB triple. Channels are nominally in [0, 1] but are not
// clamped until they are quantized with Bytes.
type Color struct {
	R, G, B float64
}

// Common colors.
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
	Red   = Color{1, 0, 0}
	Green = Color{0, 1, 0}
	Blue  = Color{0, 0, 1}
)

// RGB creates a new Color.
func RGB(r, g, b float64) Color {
	return Color{r, g, b}
}

// Add returns the channel-wise sum.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

// Sub returns the channel-wise difference.
func (c Color) Sub(o Color) Color {
	return Color{c.R - o.R, c.G - o.G, c.B - o.B}
}

// Scale multiplies every channel by s.
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Hadamard returns the channel-wise product, used to blend two colors.
func (c Color) Hadamard(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Equals compares every channel within Epsilon.
func (c Color) Equals(o Color) bool {
	return math.Abs(c.R-o.R) < Epsilon &&
		math.Abs(c.G-o.G) < Epsilon &&
		math.Abs(c.B-o.B) < Epsilon
}

// Clamped returns the color with every channel limited to [0, 1].
func (c Color) Clamped() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

// Bytes quantizes the color to 8 bits per channel: clamp to [0, 1], scale
// to 255, round half away from zero.
func (c Color) Bytes() (r, g, b uint8) {
	return toByte(c.R), toByte(c.G), toByte(c.B)
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

func toByte(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}
