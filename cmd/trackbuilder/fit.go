package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"track-builder/internal/editor"
	"track-builder/internal/track"
	"track-builder/internal/view"
)

func newFitCmd() *cobra.Command {
	var (
		in       string
		viewport string
		margin   float64
	)
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Print the zoom and offset that frame a track file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			cfg.Fit.Margin = margin

			ed := editor.New(cfg, track.NewStore(), nil, nil, logger)
			if viewport != "" {
				vp, err := parseViewport(viewport)
				if err != nil {
					return err
				}
				ed.Resize(vp)
			}
			if err := ed.Load(in); err != nil {
				return err
			}

			t := ed.View()
			out := cmd.OutOrStdout()
			if lower, upper, ok := ed.Store().Bounds(); ok {
				fmt.Fprintf(out, "bounds: [%g, %g] x [%g, %g]\n", lower.X, upper.X, lower.Y, upper.Y)
			}
			fmt.Fprintf(out, "zoom:   %g (%d%%)\n", t.Zoom(), t.ZoomPercent())
			fmt.Fprintf(out, "offset: %g, %g\n", t.Offset().X, t.Offset().Y)
			return nil
		},
	}
	cmd.Flags().StringVar(&in, "in", "", "track file to frame")
	cmd.Flags().StringVar(&viewport, "viewport", "", "viewport size as WIDTHxHEIGHT (default is the window size)")
	cmd.Flags().Float64Var(&margin, "fit-margin", 500, "margin around the cones in logical units")
	cobra.CheckErr(cmd.MarkFlagRequired("in"))
	return cmd
}

// parseViewport parses sizes such as "1920x1080".
func parseViewport(s string) (view.Viewport, error) {
	w, h, found := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !found {
		return view.Viewport{}, fmt.Errorf("invalid viewport %q, expected WIDTHxHEIGHT", s)
	}
	width, errW := strconv.Atoi(w)
	height, errH := strconv.Atoi(h)
	if errW != nil || errH != nil || width <= 0 || height <= 0 {
		return view.Viewport{}, fmt.Errorf("invalid viewport %q, expected WIDTHxHEIGHT", s)
	}
	return view.Viewport{Width: float64(width), Height: float64(height)}, nil
}
