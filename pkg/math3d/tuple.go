// Package math3d provides the tuple and color primitives used by the
// projectile simulation and the canvas.
package math3d

import (
	"fmt"
	"math"
)

// Epsilon is the machine epsilon for float64, used by Equals.
const Epsilon = 0x1p-52

// Tuple represents a homogeneous 3D point (W=1) or direction vector (W=0).
type Tuple struct {
	X, Y, Z, W float64
}

// T creates a new Tuple with every component given explicitly.
func T(x, y, z, w float64) Tuple {
	return Tuple{x, y, z, w}
}

// Point creates a point (W=1).
func Point(x, y, z float64) Tuple {
	return Tuple{x, y, z, 1}
}

// Vector creates a direction vector (W=0).
func Vector(x, y, z float64) Tuple {
	return Tuple{x, y, z, 0}
}

// IsPoint reports whether W is exactly 1.
func (a Tuple) IsPoint() bool {
	return a.W == 1
}

// IsVector reports whether W is exactly 0.
func (a Tuple) IsVector() bool {
	return a.W == 0
}

// Add returns the component-wise sum a + b, W included.
// point+vector is a point, vector+vector is a vector.
func (a Tuple) Add(b Tuple) Tuple {
	return Tuple{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

// Sub returns the component-wise difference a - b, W included.
// point-point is a vector, point-vector is a point.
func (a Tuple) Sub(b Tuple) Tuple {
	return Tuple{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

// Negate returns the tuple with all four components negated.
func (a Tuple) Negate() Tuple {
	return Tuple{-a.X, -a.Y, -a.Z, -a.W}
}

// Mul scales X, Y and Z by s. W is left unchanged.
func (a Tuple) Mul(s float64) Tuple {
	return Tuple{a.X * s, a.Y * s, a.Z * s, a.W}
}

// Div divides X, Y and Z by s. W is left unchanged, matching Mul.
func (a Tuple) Div(s float64) Tuple {
	return Tuple{a.X / s, a.Y / s, a.Z / s, a.W}
}

// Len returns the Euclidean norm over all four components.
func (a Tuple) Len() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z + a.W*a.W)
}

// Normalize divides every component, W included, by Len.
// A zero tuple yields NaN components.
func (a Tuple) Normalize() Tuple {
	l := a.Len()
	return Tuple{a.X / l, a.Y / l, a.Z / l, a.W / l}
}

// Dot returns the dot product over all four components.
func (a Tuple) Dot(b Tuple) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Cross returns the 3D cross product a × b. The result is always a vector;
// the W of both inputs is ignored.
func (a Tuple) Cross(b Tuple) Tuple {
	return Vector(
		a.Y*b.Z-a.Z*b.Y,
		a.Z*b.X-a.X*b.Z,
		a.X*b.Y-a.Y*b.X,
	)
}

// Equals compares X, Y and Z within Epsilon and W exactly.
func (a Tuple) Equals(b Tuple) bool {
	return math.Abs(a.X-b.X) < Epsilon &&
		math.Abs(a.Y-b.Y) < Epsilon &&
		math.Abs(a.Z-b.Z) < Epsilon &&
		a.W == b.W
}

// ApproxEqual compares all four components within eps.
func (a Tuple) ApproxEqual(b Tuple, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps &&
		math.Abs(a.Y-b.Y) <= eps &&
		math.Abs(a.Z-b.Z) <= eps &&
		math.Abs(a.W-b.W) <= eps
}

func (a Tuple) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", a.X, a.Y, a.Z, a.W)
}
