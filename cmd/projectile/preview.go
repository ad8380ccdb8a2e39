package main

import (
	"fmt"
	"image"
	"io"

	"fortio.org/log"
	"fortio.org/terminal/ansipixels"
	"github.com/spf13/cobra"
	"github.com/taigrr/projectile/pkg/render"
)

func newPreviewCmd(opts *options) *cobra.Command {
	var fps float64
	cmd := &cobra.Command{
		Use:   "preview [image.ppm]",
		Short: "Show the plot in the terminal",
		Long:  "Render a PPM image in the terminal. Without a file, runs the simulation with the root flags and shows the result. Any key quits.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				canvas *render.Canvas
				title  string
			)
			if len(args) == 1 {
				c, err := render.LoadPPM(args[0])
				if err != nil {
					return fmt.Errorf("load image: %w", err)
				}
				canvas, title = c, args[0]
			} else {
				res, err := simulate(io.Discard, opts)
				if err != nil {
					return err
				}
				canvas = res.Canvas
				title = fmt.Sprintf("%d ticks, %d painted", res.Ticks, res.Painted)
			}
			return runPreview(canvas.ToImage(), title, fps)
		},
	}
	cmd.Flags().Float64Var(&fps, "fps", 30, "Terminal refresh rate")
	return cmd
}

func runPreview(img image.Image, title string, fps float64) error {
	ap := ansipixels.NewAnsiPixels(fps)
	if err := ap.Open(); err != nil {
		return fmt.Errorf("open ansipixels: %w", err)
	}
	defer func() {
		ap.ShowCursor()
		ap.Out.Flush()
		ap.Restore()
	}()
	ap.SyncBackgroundColor()
	ap.HideCursor()

	for {
		if ap.W <= 0 || ap.H <= 0 {
			return fmt.Errorf("invalid terminal size: %dx%d", ap.W, ap.H)
		}
		ap.StartSyncMode()
		ap.ClearScreen()
		if err := ap.ShowScaledImage(img); err != nil {
			return fmt.Errorf("show image: %w", err)
		}
		ap.WriteAtStr(0, ap.H-1, title+" - press any key to quit")
		ap.EndSyncMode()

		if _, err := ap.ReadOrResizeOrSignalOnce(); err != nil {
			log.Debugf("preview input: %v", err)
			return nil
		}
		if len(ap.Data) > 0 {
			return nil
		}
	}
}
