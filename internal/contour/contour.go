// Package contour traces the outline of a track drawing and turns it into a
// closed centerline in logical units.
package contour

import (
	"errors"
	"image"

	"github.com/samber/lo"

	"track-builder/internal/common"
)

// ErrNoContour is returned when an image holds no usable outline.
var ErrNoContour = errors.New("no track contour found")

// Extractor produces an ordered, closed centerline from an image file.
// An empty result means nothing was found.
type Extractor interface {
	Extract(path string) ([]common.Vec2, error)
}

// ToLogical maps pixel points of an imgW x imgH image to logical units,
// centered on the image center. Every pixel offset is multiplied by
// scale/shrink. The result is closed: the first point is appended again when
// the last one differs.
func ToLogical(pixels []image.Point, imgW, imgH int, scale, shrink float64) []common.Vec2 {
	if len(pixels) == 0 {
		return nil
	}
	center := common.Vec2{X: float64(imgW) / 2, Y: float64(imgH) / 2}
	factor := scale / shrink

	points := lo.Map(pixels, func(p image.Point, _ int) common.Vec2 {
		return common.Vec2{X: float64(p.X), Y: float64(p.Y)}.Sub(center).Scale(factor)
	})
	if points[0] != points[len(points)-1] {
		points = append(points, points[0])
	}
	return points
}
