// debug-contour runs the contour extractor on an image, draws the traced
// outline and its vertices on top of it and prints the centerline in meters.
package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/spf13/pflag"
	"gocv.io/x/gocv"

	"track-builder/internal/config"
	"track-builder/internal/contour"
	"track-builder/internal/logging"
)

func main() {
	in := pflag.StringP("image", "i", "assets/track.png", "track image to trace")
	out := pflag.StringP("out", "o", "output_contour.png", "debug image to write")
	pflag.Parse()

	logger := logging.NewConsole("debug")
	cfg := config.Default()
	ex := contour.NewGocvExtractor(cfg, logger)

	pixels, size, err := ex.Trace(*in)
	if err != nil {
		logger.Fatal().Err(err).Str("image", *in).Msg("contour extraction failed")
	}

	img := gocv.IMRead(*in, gocv.IMReadColor)
	defer img.Close()

	outline := gocv.NewPointsVectorFromPoints([][]image.Point{pixels})
	defer outline.Close()
	gocv.Polylines(&img, outline, true, color.RGBA{255, 0, 0, 0}, 2)
	for _, p := range pixels {
		gocv.Circle(&img, p, 4, color.RGBA{0, 200, 0, 0}, -1)
	}

	if ok := gocv.IMWrite(*out, img); !ok {
		logger.Fatal().Str("path", *out).Msg("failed to write debug image")
	}

	scale := cfg.Grid.Scale()
	for i, p := range contour.ToLogical(pixels, size.X, size.Y, ex.Scale, ex.Shrink) {
		fmt.Printf("%3d  %9.4f %9.4f\n", i, p.X/scale, p.Y/scale)
	}
	logger.Info().Int("vertices", len(pixels)).Str("out", *out).Msg("contour written")
}
