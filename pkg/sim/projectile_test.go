package sim

import (
	"testing"

	"github.com/taigrr/projectile/pkg/math3d"
)

func TestTick(t *testing.T) {
	env := Environment{Gravity: math3d.Vector(0, -0.1, 0), Wind: math3d.Vector(-0.01, 0, 0)}
	p := Projectile{Position: math3d.Point(0, 1, 0), Velocity: math3d.Vector(1, 1, 0)}

	next := Tick(env, p)

	if !next.Position.Equals(math3d.Point(1, 2, 0)) {
		t.Errorf("Position = %v, want (1, 2, 0, 1)", next.Position)
	}
	if !next.Velocity.Equals(math3d.Vector(0.99, 0.9, 0)) {
		t.Errorf("Velocity = %v, want (0.99, 0.9, 0, 0)", next.Velocity)
	}
	if !next.Position.IsPoint() || !next.Velocity.IsVector() {
		t.Errorf("tick broke point/vector tags: %v", next)
	}
	// Tick is pure.
	if p.Position != math3d.Point(0, 1, 0) || p.Velocity != math3d.Vector(1, 1, 0) {
		t.Errorf("input projectile modified: %v", p)
	}
}

func TestIntegratorsAgree(t *testing.T) {
	env := Environment{Gravity: math3d.Vector(0, -0.1, 0), Wind: math3d.Vector(-0.02, 0, 0)}
	start := Projectile{
		Position: math3d.Point(0, 1, 0),
		Velocity: math3d.Vector(1, 1.8, 0).Normalize().Mul(11.25),
	}

	tick := TickIntegrator{Env: env}
	harm := NewHarmonicaIntegrator(env)

	a, b := start, start
	for i := 0; i < 250; i++ {
		a = tick.Step(a)
		b = harm.Step(b)
		if !a.Position.ApproxEqual(b.Position, 1e-9) || !a.Velocity.ApproxEqual(b.Velocity, 1e-9) {
			t.Fatalf("step %d: tick %v, harmonica %v", i+1, a, b)
		}
	}
	if !b.Position.IsPoint() || !b.Velocity.IsVector() {
		t.Errorf("harmonica step lost W: %v", b)
	}
}

func TestNewIntegrator(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"", false},
		{IntegratorTick, false},
		{IntegratorHarmonica, false},
		{"verlet", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewIntegrator(tt.name, Environment{})
			if (err != nil) != tt.wantErr {
				t.Errorf("NewIntegrator(%q) err = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
		})
	}
}
