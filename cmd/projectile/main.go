// projectile - launch a projectile under gravity and wind and plot its path.
//
// The trail is written as a plain PPM image (and optionally PNG and GLB).
//
// Commands:
//
//	projectile            Run the simulation and write ./output.ppm
//	projectile info F     Describe a PPM image or GLB trajectory
//	projectile preview    Show the plot (or a PPM file) in the terminal
package main

import (
	"context"
	"os"

	"fortio.org/log"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/taigrr/projectile/pkg/sim"
)

var version = "dev"

func main() {
	log.SetDefaultsForClientTools()
	if err := fang.Execute(context.Background(), newRootCmd(), fang.WithVersion(version)); err != nil {
		log.Errf("projectile: %v", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := defaultOptions()

	cmd := &cobra.Command{
		Use:   "projectile",
		Short: "Plot a projectile trajectory to a PPM image",
		Long: `projectile - plot a projectile trajectory

Launches a projectile from --start along --velocity scaled to --speed, applies
--gravity and --wind every tick until it lands (y <= 0), and paints each
position onto a --width x --height canvas written as plain PPM to --out.

Vectors are given as x,y,z.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				log.SetLogLevel(log.Debug)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, opts)
		},
	}

	f := cmd.PersistentFlags()
	f.IntVar(&opts.width, "width", opts.width, "Canvas width in pixels")
	f.IntVar(&opts.height, "height", opts.height, "Canvas height in pixels")
	f.StringVar(&opts.start, "start", opts.start, "Launch point (x,y,z)")
	f.StringVar(&opts.velocity, "velocity", opts.velocity, "Launch direction (x,y,z), normalized")
	f.Float64Var(&opts.speed, "speed", opts.speed, "Launch speed")
	f.StringVar(&opts.gravity, "gravity", opts.gravity, "Gravity per tick (x,y,z)")
	f.StringVar(&opts.wind, "wind", opts.wind, "Wind per tick (x,y,z)")
	f.StringVar(&opts.color, "color", opts.color, "Trail color (r,g,b in 0..1)")
	f.StringVar(&opts.integrator, "integrator", opts.integrator, "Integrator: "+sim.IntegratorTick+" or "+sim.IntegratorHarmonica)
	f.IntVar(&opts.maxTicks, "max-ticks", opts.maxTicks, "Give up after this many ticks (0 = unlimited)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Debug logging")

	cmd.Flags().StringVarP(&opts.out, "out", "o", opts.out, "Output PPM path")
	cmd.Flags().StringVar(&opts.pngPath, "png", "", "Also write a PNG image to this path")
	cmd.Flags().StringVar(&opts.glbPath, "glb", "", "Also write the trajectory as binary glTF to this path")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Do not print every tick")

	cmd.AddCommand(newInfoCmd(), newPreviewCmd(opts))
	return cmd
}
