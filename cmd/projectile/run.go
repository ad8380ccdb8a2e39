package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"fortio.org/log"
	"github.com/spf13/cobra"
	"github.com/taigrr/projectile/pkg/models"
	"github.com/taigrr/projectile/pkg/sim"
)

// simulate runs the configured launch, echoing the environment and every
// tick to w unless quiet is set.
func simulate(w io.Writer, opts *options) (*sim.Result, error) {
	cfg, err := opts.config()
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(w, "Environment: %v\n", cfg.Env)
	fmt.Fprintf(w, "Projectile:  %v\n", cfg.Launch())
	log.Debugf("Canvas %dx%d, integrator %q, max ticks %d", cfg.Width, cfg.Height, cfg.Integrator, cfg.MaxTicks)

	res, err := sim.Run(cfg, func(tick int, p sim.Projectile) {
		if !opts.quiet {
			fmt.Fprintf(w, "%d: %v\n", tick, p)
		}
	})
	if err != nil {
		return res, fmt.Errorf("simulate: %w", err)
	}
	log.Infof("Landed after %d ticks at (%.3f, %.3f, %.3f)",
		res.Ticks, res.Final.Position.X, res.Final.Position.Y, res.Final.Position.Z)
	if res.Clipped > 0 {
		log.Warnf("%d of %d positions fell outside the %dx%d canvas", res.Clipped, res.Ticks, cfg.Width, cfg.Height)
	}
	return res, nil
}

func runSimulate(cmd *cobra.Command, opts *options) error {
	res, err := simulate(cmd.OutOrStdout(), opts)
	if err != nil {
		return err
	}

	if err := res.Canvas.SavePPM(opts.out); err != nil {
		return fmt.Errorf("write %s: %w", opts.out, err)
	}
	log.Infof("Wrote %s (%dx%d, %d pixels painted)", opts.out, res.Canvas.Width, res.Canvas.Height, res.Painted)

	if opts.pngPath != "" {
		if err := res.Canvas.SavePNG(opts.pngPath); err != nil {
			return fmt.Errorf("write %s: %w", opts.pngPath, err)
		}
		log.Infof("Wrote %s", opts.pngPath)
	}

	if opts.glbPath != "" {
		name := strings.TrimSuffix(filepath.Base(opts.glbPath), filepath.Ext(opts.glbPath))
		if err := models.SaveTrajectoryGLB(opts.glbPath, name, res.Trajectory); err != nil {
			return fmt.Errorf("write %s: %w", opts.glbPath, err)
		}
		log.Infof("Wrote %s (%d points)", opts.glbPath, len(res.Trajectory))
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Done.")
	return nil
}
