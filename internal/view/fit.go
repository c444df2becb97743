package view

import (
	"math"

	"track-builder/internal/common"
)

// DefaultFitPadding enlarges the framed box so the track never touches the edge.
const DefaultFitPadding = 1.1

// FitOptions parameterises FitToBounds.
type FitOptions struct {
	Margin   float64 // logical units added on every side of the box
	Padding  float64 // multiplier on the framed size, DefaultFitPadding when zero
	Viewport Viewport
	MinZoom  float64
	MaxZoom  float64
	ZoomStep float64
}

// Fit is the zoom and offset that frame a point set.
type Fit struct {
	Zoom   float64
	Offset common.Vec2
}

// FitToBounds computes the zoom and offset that show all points plus margin
// inside the viewport. The zoom is snapped down to the zoom step so the box
// never clips, then clamped. ok is false for an empty set or a box with zero
// width or height; callers fall back to the default view.
func FitToBounds(points []common.Vec2, opts FitOptions) (Fit, bool) {
	lower, upper, ok := common.Bounds(points)
	if !ok {
		return Fit{}, false
	}

	width := (upper.X - lower.X) + 2*opts.Margin
	height := (upper.Y - lower.Y) + 2*opts.Margin
	if width == 0 || height == 0 {
		return Fit{}, false
	}

	padding := opts.Padding
	if padding == 0 {
		padding = DefaultFitPadding
	}
	width *= padding
	height *= padding

	zoom := math.Min(opts.Viewport.Width/width, opts.Viewport.Height/height)
	if opts.ZoomStep > 0 {
		zoom = math.Floor(zoom/opts.ZoomStep) * opts.ZoomStep
	}
	zoom = math.Max(opts.MinZoom, math.Min(zoom, opts.MaxZoom))

	center := lower.Mid(upper)
	vc := opts.Viewport.Center()
	return Fit{
		Zoom: zoom,
		Offset: common.Vec2{
			X: vc.X - center.X*zoom,
			Y: vc.Y + center.Y*zoom,
		},
	}, true
}
