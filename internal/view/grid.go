package view

import (
	"math"

	"track-builder/internal/common"
)

// MinLineSpacing is the smallest on-screen distance between grid lines, in pixels.
const MinLineSpacing = 10.0

// LineKind tells regular grid lines from the coordinate axes.
type LineKind int

const (
	GridLine LineKind = iota
	AxisLine
)

// Line is a screen-space segment to draw.
type Line struct {
	From, To common.Vec2
	Kind     LineKind
}

// GridStepFor returns the logical spacing between drawn lines at the given
// zoom: the smallest multiple of base that stays at least MinLineSpacing
// pixels apart.
func GridStepFor(base, zoom float64) float64 {
	step := base
	if zoom > 0 && step*zoom < MinLineSpacing {
		step = math.Ceil(MinLineSpacing/zoom/base) * base
	}
	return math.Max(base, step)
}

// GridLines returns the grid segments covering the viewport. Lines sit on a
// lattice anchored at the logical origin so they do not move relative to the
// track while panning. Vertical lines come first, then horizontal ones, then
// the two axes when showAxes is set.
func GridLines(vp Viewport, t *Transform, showAxes bool) []Line {
	topLeft := t.ScreenToLogical(common.Vec2{})
	bottomRight := t.ScreenToLogical(common.Vec2{X: vp.Width, Y: vp.Height})

	pad := 2 * t.GridPixelSize
	minX := topLeft.X - pad
	maxX := bottomRight.X + pad
	minY := bottomRight.Y - pad // y is inverted
	maxY := topLeft.Y + pad

	step := GridStepFor(t.GridPixelSize, t.Zoom())

	firstX, lastX := int(math.Floor(minX/step)), int(math.Ceil(maxX/step))
	firstY, lastY := int(math.Floor(minY/step)), int(math.Ceil(maxY/step))

	lines := make([]Line, 0, (lastX-firstX+1)+(lastY-firstY+1)+2)
	for i := firstX; i <= lastX; i++ {
		x := float64(i) * step
		lines = append(lines, Line{
			From: t.LogicalToScreen(common.Vec2{X: x, Y: minY}),
			To:   t.LogicalToScreen(common.Vec2{X: x, Y: maxY}),
			Kind: GridLine,
		})
	}
	for i := firstY; i <= lastY; i++ {
		y := float64(i) * step
		lines = append(lines, Line{
			From: t.LogicalToScreen(common.Vec2{X: minX, Y: y}),
			To:   t.LogicalToScreen(common.Vec2{X: maxX, Y: y}),
			Kind: GridLine,
		})
	}

	if showAxes {
		origin := t.LogicalToScreen(common.Vec2{})
		lines = append(lines,
			Line{From: common.Vec2{X: 0, Y: origin.Y}, To: common.Vec2{X: vp.Width, Y: origin.Y}, Kind: AxisLine},
			Line{From: common.Vec2{X: origin.X, Y: 0}, To: common.Vec2{X: origin.X, Y: vp.Height}, Kind: AxisLine},
		)
	}
	return lines
}
