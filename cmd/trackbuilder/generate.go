package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"track-builder/internal/contour"
	"track-builder/internal/editor"
	"track-builder/internal/track"
)

func newGenerateCmd() *cobra.Command {
	var (
		image string
		out   string
		width float64
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a cone layout from a track image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			cfg.Track.Width = width
			if err := cfg.Validate(); err != nil {
				return err
			}

			ed := editor.New(cfg, track.NewStore(), contour.NewGocvExtractor(cfg, logger), nil, logger)
			n, err := ed.Generate(image)
			if err != nil {
				return err
			}
			if err := ed.SaveAs(out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d cone pairs written to %s\n", n, out)
			return nil
		},
	}
	cmd.Flags().StringVar(&image, "image", "", "track image to trace")
	cmd.Flags().StringVar(&out, "out", editor.DefaultSaveName, "track file to write")
	cmd.Flags().Float64Var(&width, "track-width", editor.DefaultWidth, "track width in meters")
	cobra.CheckErr(cmd.MarkFlagRequired("image"))
	return cmd
}
