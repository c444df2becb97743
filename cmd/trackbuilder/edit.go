package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"track-builder/internal/contour"
	"track-builder/internal/editor"
	"track-builder/internal/track"
)

func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit [track.yaml]",
		Short: "Open the interactive track editor",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}

			ed := editor.New(cfg, track.NewStore(),
				contour.NewGocvExtractor(cfg, logger),
				nativeDialogs{log: logger},
				logger)
			if len(args) == 1 {
				if err := ed.Load(args[0]); err != nil {
					return err
				}
			}

			ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
			ebiten.SetWindowTitle("Track Builder")
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

			return ebiten.RunGame(NewGame(ed))
		},
	}
}
