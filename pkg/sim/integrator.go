package sim

import (
	"fmt"

	"github.com/charmbracelet/harmonica"
	"github.com/taigrr/projectile/pkg/math3d"
)

// Integrator names accepted by NewIntegrator and Config.Integrator.
const (
	IntegratorTick      = "tick"
	IntegratorHarmonica = "harmonica"
)

// Integrator advances a projectile by one tick.
type Integrator interface {
	Step(p Projectile) Projectile
}

// TickIntegrator steps with Tick.
type TickIntegrator struct {
	Env Environment
}

// Step implements Integrator.
func (t TickIntegrator) Step(p Projectile) Projectile {
	return Tick(t.Env, p)
}

// HarmonicaIntegrator steps with harmonica's projectile motion at one frame
// per tick, so the time step is exactly 1 and every step matches Tick up to
// floating point rounding of gravity+wind.
type HarmonicaIntegrator struct {
	Env Environment
	dt  float64
}

// NewHarmonicaIntegrator creates a harmonica-backed integrator for env.
func NewHarmonicaIntegrator(env Environment) *HarmonicaIntegrator {
	return &HarmonicaIntegrator{
		Env: env,
		dt:  harmonica.FPS(1),
	}
}

// Step implements Integrator. W components are carried through unchanged.
func (h *HarmonicaIntegrator) Step(p Projectile) Projectile {
	acc := h.Env.Acceleration()
	hp := harmonica.NewProjectile(
		h.dt,
		harmonica.Point{X: p.Position.X, Y: p.Position.Y, Z: p.Position.Z},
		harmonica.Vector{X: p.Velocity.X, Y: p.Velocity.Y, Z: p.Velocity.Z},
		harmonica.Vector{X: acc.X, Y: acc.Y, Z: acc.Z},
	)
	pos := hp.Update()
	vel := hp.Velocity()
	return Projectile{
		Position: math3d.T(pos.X, pos.Y, pos.Z, p.Position.W),
		Velocity: math3d.T(vel.X, vel.Y, vel.Z, p.Velocity.W),
	}
}

// NewIntegrator returns the integrator registered under name. An empty name
// selects the tick integrator.
func NewIntegrator(name string, env Environment) (Integrator, error) {
	switch name {
	case "", IntegratorTick:
		return TickIntegrator{Env: env}, nil
	case IntegratorHarmonica:
		return NewHarmonicaIntegrator(env), nil
	default:
		return nil, fmt.Errorf("%w: unknown integrator %q (use %s or %s)",
			ErrInvalidConfig, name, IntegratorTick, IntegratorHarmonica)
	}
}
