package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/taigrr/projectile/pkg/math3d"
	"github.com/taigrr/projectile/pkg/models"
	"github.com/taigrr/projectile/pkg/render"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <image.ppm|trajectory.glb>",
		Short: "Display image or trajectory information",
		Long:  "Display details about a PPM image (size, painted pixels and their bounding box) or a GLB trajectory (point count and bounds).",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.OutOrStdout(), args[0])
		},
	}
}

func runInfo(w io.Writer, path string) error {
	ext := strings.ToLower(filepath.Ext(path))

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}

	fmt.Fprintf(w, "File:       %s\n", filepath.Base(path))
	fmt.Fprintf(w, "Format:     %s\n", strings.ToUpper(strings.TrimPrefix(ext, ".")))
	fmt.Fprintf(w, "Size:       %.2f KB\n", float64(info.Size())/1024)
	fmt.Fprintln(w)

	switch ext {
	case ".ppm":
		canvas, err := render.LoadPPM(path)
		if err != nil {
			return fmt.Errorf("load image: %w", err)
		}
		describeCanvas(w, canvas)
	case ".glb", ".gltf":
		points, err := models.LoadTrajectory(path)
		if err != nil {
			return fmt.Errorf("load trajectory: %w", err)
		}
		describeTrajectory(w, points)
	default:
		return fmt.Errorf("unsupported format: %s (use .ppm or .glb)", ext)
	}
	return nil
}

func describeCanvas(w io.Writer, c *render.Canvas) {
	minX, minY, maxX, maxY := c.Width, c.Height, -1, -1
	painted := 0
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			if c.PixelAt(x, y) == math3d.Black {
				continue
			}
			painted++
			minX, minY = min(minX, x), min(minY, y)
			maxX, maxY = max(maxX, x), max(maxY, y)
		}
	}

	fmt.Fprintf(w, "Dimensions: %d x %d\n", c.Width, c.Height)
	fmt.Fprintf(w, "Painted:    %d pixels\n", painted)
	if painted > 0 {
		fmt.Fprintf(w, "Extent:     (%d, %d) - (%d, %d)\n", minX, minY, maxX, maxY)
	}
}

func describeTrajectory(w io.Writer, points []math3d.Tuple) {
	lo := math3d.Point(math.Inf(1), math.Inf(1), math.Inf(1))
	hi := math3d.Point(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	for _, p := range points {
		lo = math3d.Point(math.Min(lo.X, p.X), math.Min(lo.Y, p.Y), math.Min(lo.Z, p.Z))
		hi = math3d.Point(math.Max(hi.X, p.X), math.Max(hi.Y, p.Y), math.Max(hi.Z, p.Z))
	}

	fmt.Fprintf(w, "Points:     %d\n", len(points))
	if len(points) == 0 {
		return
	}
	fmt.Fprintf(w, "Bounds Min: (%.3f, %.3f, %.3f)\n", lo.X, lo.Y, lo.Z)
	fmt.Fprintf(w, "Bounds Max: (%.3f, %.3f, %.3f)\n", hi.X, hi.Y, hi.Z)
	fmt.Fprintf(w, "Apex:       %.3f\n", hi.Y)
	fmt.Fprintf(w, "Range:      %.3f\n", points[len(points)-1].X-points[0].X)
}
