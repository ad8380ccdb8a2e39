package sim

import (
	"errors"
	"fmt"
	"math"

	"github.com/taigrr/projectile/pkg/math3d"
	"github.com/taigrr/projectile/pkg/render"
)

var (
	ErrInvalidConfig = errors.New("invalid simulation config")
	ErrNoLanding     = errors.New("projectile did not land")
)

// Config describes one simulation run.
type Config struct {
	Width  int // canvas width in pixels
	Height int // canvas height in pixels

	Start    math3d.Tuple // launch point
	Velocity math3d.Tuple // launch direction, normalized before use
	Speed    float64      // launch speed applied to the normalized direction

	Env   Environment
	Color math3d.Color // trail color

	// MaxTicks stops a run that never lands. Zero means unlimited.
	MaxTicks int
	// Integrator is IntegratorTick (default) or IntegratorHarmonica.
	Integrator string
}

// DefaultConfig returns the classic launch: 900x550 canvas, start at
// (0, 1, 0), direction (1, 1.8, 0) at speed 11.25, gravity -0.1, wind -0.02.
func DefaultConfig() Config {
	return Config{
		Width:      900,
		Height:     550,
		Start:      math3d.Point(0, 1, 0),
		Velocity:   math3d.Vector(1, 1.8, 0),
		Speed:      11.25,
		Env:        Environment{Gravity: math3d.Vector(0, -0.1, 0), Wind: math3d.Vector(-0.02, 0, 0)},
		Color:      math3d.RGB(1, 0.8, 0.6),
		MaxTicks:   100000,
		Integrator: IntegratorTick,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case !c.Start.IsPoint():
		return fmt.Errorf("%w: start %v is not a point", ErrInvalidConfig, c.Start)
	case !c.Velocity.IsVector():
		return fmt.Errorf("%w: velocity %v is not a vector", ErrInvalidConfig, c.Velocity)
	case c.Velocity.Len() == 0:
		return fmt.Errorf("%w: velocity must be non-zero", ErrInvalidConfig)
	case math.IsNaN(c.Speed) || math.IsInf(c.Speed, 0):
		return fmt.Errorf("%w: speed %v", ErrInvalidConfig, c.Speed)
	case !c.Env.Gravity.IsVector() || !c.Env.Wind.IsVector():
		return fmt.Errorf("%w: gravity and wind must be vectors", ErrInvalidConfig)
	case c.MaxTicks < 0:
		return fmt.Errorf("%w: max ticks %d", ErrInvalidConfig, c.MaxTicks)
	}
	_, err := NewIntegrator(c.Integrator, c.Env)
	return err
}

// Launch returns the projectile at tick zero.
func (c Config) Launch() Projectile {
	return Projectile{
		Position: c.Start,
		Velocity: c.Velocity.Normalize().Mul(c.Speed),
	}
}

// Result is the outcome of Run.
type Result struct {
	Canvas     *render.Canvas
	Ticks      int
	Final      Projectile
	Trajectory []math3d.Tuple // launch point followed by every ticked position
	Painted    int            // positions that landed on the canvas
	Clipped    int            // positions that fell outside it
}

// Run simulates cfg until the projectile's Y drops to zero or below,
// painting each new position onto a fresh canvas. observe, if non-nil, is
// called after every tick with the 1-based tick number. When MaxTicks is
// exceeded the partial result is returned along with ErrNoLanding.
func Run(cfg Config, observe func(tick int, p Projectile)) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	integrator, err := NewIntegrator(cfg.Integrator, cfg.Env)
	if err != nil {
		return nil, err
	}

	p := cfg.Launch()
	res := &Result{
		Canvas:     render.NewCanvas(cfg.Width, cfg.Height),
		Trajectory: []math3d.Tuple{p.Position},
	}
	for p.Position.Y > 0 {
		if cfg.MaxTicks > 0 && res.Ticks >= cfg.MaxTicks {
			res.Final = p
			return res, fmt.Errorf("%w after %d ticks (y=%g)", ErrNoLanding, res.Ticks, p.Position.Y)
		}
		p = integrator.Step(p)
		res.Ticks++
		res.Trajectory = append(res.Trajectory, p.Position)
		if res.Canvas.Plot(p.Position, cfg.Color) {
			res.Painted++
		} else {
			res.Clipped++
		}
		if observe != nil {
			observe(res.Ticks, p)
		}
	}
	res.Final = p
	return res, nil
}
