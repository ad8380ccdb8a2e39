// Package sim advances a projectile through an environment of constant
// gravity and wind and paints its path onto a canvas.
package sim

import (
	"fmt"

	"github.com/taigrr/projectile/pkg/math3d"
)

// Projectile is a position (point) moving with a velocity (vector).
type Projectile struct {
	Position math3d.Tuple
	Velocity math3d.Tuple
}

// Environment holds the constant forces applied on every tick.
type Environment struct {
	Gravity math3d.Tuple
	Wind    math3d.Tuple
}

// Acceleration returns the combined per-tick change in velocity.
func (e Environment) Acceleration() math3d.Tuple {
	return e.Gravity.Add(e.Wind)
}

func (p Projectile) String() string {
	return fmt.Sprintf("pos=%v vel=%v", p.Position, p.Velocity)
}

func (e Environment) String() string {
	return fmt.Sprintf("gravity=%v wind=%v", e.Gravity, e.Wind)
}

// Tick advances p by one step: the position moves by the current velocity,
// then the velocity picks up gravity and wind. p is not modified.
func Tick(env Environment, p Projectile) Projectile {
	return Projectile{
		Position: p.Position.Add(p.Velocity),
		Velocity: p.Velocity.Add(env.Gravity).Add(env.Wind),
	}
}
