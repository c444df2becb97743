package contour

import (
	"fmt"
	"image"

	"github.com/rs/zerolog"
	"gocv.io/x/gocv"

	"track-builder/internal/common"
	"track-builder/internal/config"
)

// GocvExtractor finds the largest outer contour of a track image with OpenCV.
type GocvExtractor struct {
	MinArea float64 // smallest accepted contour area in square pixels
	Epsilon float64 // simplification tolerance as a fraction of the perimeter
	Scale   float64 // logical units per meter
	Shrink  float64

	Logger zerolog.Logger
}

// NewGocvExtractor configures an extractor from the contour and grid settings.
func NewGocvExtractor(cfg config.Config, logger zerolog.Logger) *GocvExtractor {
	return &GocvExtractor{
		MinArea: cfg.Contour.MinArea,
		Epsilon: cfg.Contour.Epsilon,
		Scale:   cfg.Grid.Scale(),
		Shrink:  cfg.Contour.Shrink,
		Logger:  logger.With().Str("component", "contour").Logger(),
	}
}

// Extract reads the image at path and returns its simplified, closed outline.
func (e *GocvExtractor) Extract(path string) ([]common.Vec2, error) {
	pixels, size, err := e.Trace(path)
	if err != nil {
		return nil, err
	}
	return ToLogical(pixels, size.X, size.Y, e.Scale, e.Shrink), nil
}

// Trace returns the simplified outline of the image at path in pixel
// coordinates, together with the image size.
func (e *GocvExtractor) Trace(path string) ([]image.Point, image.Point, error) {
	img := gocv.IMRead(path, gocv.IMReadColor)
	defer img.Close()
	if img.Empty() {
		return nil, image.Point{}, fmt.Errorf("failed to read image %s", path)
	}

	pixels, err := e.outline(img)
	if err != nil {
		return nil, image.Point{}, err
	}
	e.Logger.Debug().Str("path", path).Int("vertices", len(pixels)).Msg("contour extracted")
	return pixels, image.Point{X: img.Cols(), Y: img.Rows()}, nil
}

// outline runs grayscale, blur, Otsu threshold and Canny, then keeps the
// largest external contour and simplifies it.
func (e *GocvExtractor) outline(img gocv.Mat) ([]image.Point, error) {
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(img, &gray, gocv.ColorBGRToGray)

	blurred := gocv.NewMat()
	defer blurred.Close()
	gocv.GaussianBlur(gray, &blurred, image.Point{5, 5}, 0, 0, gocv.BorderDefault)

	binary := gocv.NewMat()
	defer binary.Close()
	gocv.Threshold(blurred, &binary, 0, 255, gocv.ThresholdBinary+gocv.ThresholdOtsu)

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(binary, &edges, 50, 150)

	contours := gocv.FindContours(edges, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()
	if contours.Size() == 0 {
		return nil, ErrNoContour
	}

	best, bestArea := -1, 0.0
	for i := 0; i < contours.Size(); i++ {
		if area := gocv.ContourArea(contours.At(i)); best < 0 || area > bestArea {
			best, bestArea = i, area
		}
	}
	if bestArea < e.MinArea {
		return nil, fmt.Errorf("%w: largest contour area %.0f below %.0f", ErrNoContour, bestArea, e.MinArea)
	}

	contour := contours.At(best)
	approx := gocv.ApproxPolyDP(contour, e.Epsilon*gocv.ArcLength(contour, true), true)
	defer approx.Close()

	return approx.ToPoints(), nil
}
