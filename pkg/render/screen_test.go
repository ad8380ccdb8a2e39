package render

import (
	"math"
	"testing"

	"github.com/taigrr/projectile/pkg/math3d"
)

func TestWorldToScreen(t *testing.T) {
	c := NewCanvas(10, 5)
	tests := []struct {
		name   string
		p      math3d.Tuple
		want   Pixel
		wantOK bool
	}{
		{"origin row is off canvas", math3d.Point(0, 0, 0), Pixel{}, false},
		{"bottom row", math3d.Point(0, 1, 0), Pixel{0, 4}, true},
		{"top row", math3d.Point(3, 5, 0), Pixel{3, 0}, true},
		{"rounds half away from zero", math3d.Point(2.5, 1.5, 0), Pixel{3, 3}, true},
		{"rounds down", math3d.Point(2.49, 1.49, 0), Pixel{2, 4}, true},
		{"last column", math3d.Point(9.4, 2, 0), Pixel{9, 3}, true},
		{"x == width", math3d.Point(10, 2, 0), Pixel{}, false},
		{"above canvas", math3d.Point(1, 6, 0), Pixel{}, false},
		{"negative x", math3d.Point(-1, 2, 0), Pixel{}, false},
		{"negative y", math3d.Point(1, -1, 0), Pixel{}, false},
		{"small negative rounds to zero", math3d.Point(-0.4, 1, 0), Pixel{0, 4}, true},
		{"z ignored", math3d.Point(1, 1, 99), Pixel{1, 4}, true},
		{"nan", math3d.Point(math.NaN(), 1, 0), Pixel{}, false},
		{"huge", math3d.Point(1e300, 1, 0), Pixel{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.WorldToScreen(tt.p)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("WorldToScreen(%v) = %v, %v; want %v, %v", tt.p, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestWorldToScreenAlwaysWritable(t *testing.T) {
	c := NewCanvas(6, 4)
	for x := -2.0; x <= 8; x += 0.25 {
		for y := -2.0; y <= 6; y += 0.25 {
			px, ok := c.WorldToScreen(math3d.Point(x, y, 0))
			if ok && !c.InBounds(px.X, px.Y) {
				t.Fatalf("accepted (%g, %g) as %v, which is not writable", x, y, px)
			}
		}
	}
}

func TestCanvasPlot(t *testing.T) {
	c := NewCanvas(10, 5)
	if !c.Plot(math3d.Point(4, 2, 0), math3d.Green) {
		t.Fatal("Plot in bounds returned false")
	}
	if c.PixelAt(4, 3) != math3d.Green {
		t.Errorf("PixelAt(4, 3) = %v, want green", c.PixelAt(4, 3))
	}
	if c.Plot(math3d.Point(40, 2, 0), math3d.Green) {
		t.Error("Plot out of bounds returned true")
	}
}
