package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/taigrr/projectile/pkg/math3d"
	"github.com/taigrr/projectile/pkg/sim"
)

// options mirrors the command line flags.
type options struct {
	width, height int
	start         string
	velocity      string
	speed         float64
	gravity       string
	wind          string
	color         string
	integrator    string
	maxTicks      int

	out     string
	pngPath string
	glbPath string
	quiet   bool
	verbose bool
}

func defaultOptions() *options {
	d := sim.DefaultConfig()
	return &options{
		width:      d.Width,
		height:     d.Height,
		start:      formatTriple(d.Start.X, d.Start.Y, d.Start.Z),
		velocity:   formatTriple(d.Velocity.X, d.Velocity.Y, d.Velocity.Z),
		speed:      d.Speed,
		gravity:    formatTriple(d.Env.Gravity.X, d.Env.Gravity.Y, d.Env.Gravity.Z),
		wind:       formatTriple(d.Env.Wind.X, d.Env.Wind.Y, d.Env.Wind.Z),
		color:      formatTriple(d.Color.R, d.Color.G, d.Color.B),
		integrator: d.Integrator,
		maxTicks:   d.MaxTicks,
		out:        "./output.ppm",
	}
}

// config converts the flags into a validated simulation config.
func (o *options) config() (sim.Config, error) {
	cfg := sim.Config{
		Width:      o.width,
		Height:     o.height,
		Speed:      o.speed,
		MaxTicks:   o.maxTicks,
		Integrator: o.integrator,
	}

	triples := []struct {
		flag  string
		value string
		set   func(x, y, z float64)
	}{
		{"start", o.start, func(x, y, z float64) { cfg.Start = math3d.Point(x, y, z) }},
		{"velocity", o.velocity, func(x, y, z float64) { cfg.Velocity = math3d.Vector(x, y, z) }},
		{"gravity", o.gravity, func(x, y, z float64) { cfg.Env.Gravity = math3d.Vector(x, y, z) }},
		{"wind", o.wind, func(x, y, z float64) { cfg.Env.Wind = math3d.Vector(x, y, z) }},
		{"color", o.color, func(r, g, b float64) { cfg.Color = math3d.RGB(r, g, b) }},
	}
	for _, t := range triples {
		x, y, z, err := parseTriple(t.value)
		if err != nil {
			return sim.Config{}, fmt.Errorf("--%s: %w", t.flag, err)
		}
		t.set(x, y, z)
	}

	if err := cfg.Validate(); err != nil {
		return sim.Config{}, err
	}
	return cfg, nil
}

// parseTriple parses "x,y,z". Spaces around each value are allowed; any
// other trailing input is an error.
func parseTriple(s string) (x, y, z float64, err error) {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("want x,y,z, got %q", s)
	}
	var v [3]float64
	for i, f := range fields {
		v[i], err = strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("parse %q: %w", s, err)
		}
	}
	return v[0], v[1], v[2], nil
}

func formatTriple(x, y, z float64) string {
	return fmt.Sprintf("%g,%g,%g", x, y, z)
}
