package common

import (
	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
)

// Bounds returns the axis-aligned bounding box of points.
// ok is false when points is empty.
func Bounds(points []Vec2) (lower, upper Vec2, ok bool) {
	if len(points) == 0 {
		return Vec2{}, Vec2{}, false
	}
	xs := lo.Map(points, func(p Vec2, _ int) float64 { return p.X })
	ys := lo.Map(points, func(p Vec2, _ int) float64 { return p.Y })
	lower = Vec2{X: floats.Min(xs), Y: floats.Min(ys)}
	upper = Vec2{X: floats.Max(xs), Y: floats.Max(ys)}
	return lower, upper, true
}
