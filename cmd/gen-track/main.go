// gen-track writes a synthetic oval track drawing that the contour extractor
// can trace, for trying out image generation without a real track image.
package main

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/spf13/pflag"

	"track-builder/internal/logging"
)

func main() {
	out := pflag.StringP("out", "o", "assets/track.png", "image file to write")
	width := pflag.Int("width", 800, "image width in pixels")
	height := pflag.Int("height", 600, "image height in pixels")
	radiusX := pflag.Float64("radius-x", 300, "outer horizontal radius in pixels")
	radiusY := pflag.Float64("radius-y", 200, "outer vertical radius in pixels")
	inner := pflag.Float64("inner", 0.6, "inner edge as a fraction of the outer ellipse equation")
	pflag.Parse()

	logger := logging.NewConsole("info")

	img := image.NewRGBA(image.Rect(0, 0, *width, *height))

	// Fill with white (background)
	white := color.RGBA{255, 255, 255, 255}
	for y := 0; y < *height; y++ {
		for x := 0; x < *width; x++ {
			img.Set(x, y, white)
		}
	}

	// Draw tarmac (black) as an oval ring
	black := color.RGBA{0, 0, 0, 255}
	centerX, centerY := *width/2, *height/2
	rx, ry := *radiusX, *radiusY
	for y := 0; y < *height; y++ {
		for x := 0; x < *width; x++ {
			dx := float64(x - centerX)
			dy := float64(y - centerY)

			// Ellipse equation: (x/a)^2 + (y/b)^2 = 1
			dist := (dx*dx)/(rx*rx) + (dy*dy)/(ry*ry)
			if dist <= 1.0 && dist >= *inner {
				img.Set(x, y, black)
			}
		}
	}

	f, err := os.Create(*out)
	if err != nil {
		logger.Fatal().Err(err).Str("path", *out).Msg("failed to create image")
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		logger.Fatal().Err(err).Str("path", *out).Msg("failed to encode image")
	}
	logger.Info().Str("path", *out).Int("width", *width).Int("height", *height).Msg("track image written")
}
