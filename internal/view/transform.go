// Package view maps between logical track space and screen pixels and
// computes what the canvas shows: grid lines and fitted framing.
package view

import (
	"math"
	"strconv"
	"strings"

	"track-builder/internal/common"
)

// Default view limits.
const (
	DefaultMinZoom       = 0.25
	DefaultMaxZoom       = 7.5
	DefaultZoomStep      = 0.025
	DefaultGridStep      = 0.25
	DefaultGridPixelSize = 5.0
)

// Viewport is the canvas size in pixels.
type Viewport struct {
	Width, Height float64
}

// Center returns the pixel center of the viewport.
func (v Viewport) Center() common.Vec2 {
	return common.Vec2{X: v.Width / 2, Y: v.Height / 2}
}

// Contains reports whether a screen point lies inside the viewport (edges included).
func (v Viewport) Contains(p common.Vec2) bool {
	return p.X >= 0 && p.X <= v.Width && p.Y >= 0 && p.Y <= v.Height
}

// Options configures a Transform.
type Options struct {
	MinZoom       float64
	MaxZoom       float64
	ZoomStep      float64
	GridStep      float64 // logical snap step
	GridPixelSize float64 // base grid cell in logical units
}

// DefaultOptions returns the stock editor limits.
func DefaultOptions() Options {
	return Options{
		MinZoom:       DefaultMinZoom,
		MaxZoom:       DefaultMaxZoom,
		ZoomStep:      DefaultZoomStep,
		GridStep:      DefaultGridStep,
		GridPixelSize: DefaultGridPixelSize,
	}
}

// Transform is the pan/zoom state of one canvas.
// Zoom always lies in [MinZoom, MaxZoom].
type Transform struct {
	Options

	zoom   float64
	offset common.Vec2
}

// NewTransform returns a transform at zoom 1.0 centred on the given viewport.
func NewTransform(opts Options, vp Viewport) *Transform {
	t := &Transform{Options: opts}
	t.Reset(vp)
	return t
}

// Zoom returns the current zoom factor.
func (t *Transform) Zoom() float64 { return t.zoom }

// Offset returns the screen-space pan offset.
func (t *Transform) Offset() common.Vec2 { return t.offset }

// ZoomPercent returns the zoom as a whole percentage for display.
func (t *Transform) ZoomPercent() int {
	return int(math.Round(t.zoom * 100))
}

// LogicalToScreen maps a logical point to pixels. Logical y grows upwards.
func (t *Transform) LogicalToScreen(p common.Vec2) common.Vec2 {
	return common.Vec2{
		X: p.X*t.zoom + t.offset.X,
		Y: -p.Y*t.zoom + t.offset.Y,
	}
}

// ScreenToLogical is the inverse of LogicalToScreen.
func (t *Transform) ScreenToLogical(p common.Vec2) common.Vec2 {
	return common.Vec2{
		X: (p.X - t.offset.X) / t.zoom,
		Y: -(p.Y - t.offset.Y) / t.zoom,
	}
}

// SnapToGrid rounds a logical value to the nearest grid step.
func (t *Transform) SnapToGrid(v float64) float64 {
	return math.Round(v/t.GridStep) * t.GridStep
}

// SnapPoint snaps both coordinates of a logical point.
func (t *Transform) SnapPoint(p common.Vec2) common.Vec2 {
	return common.Vec2{X: t.SnapToGrid(p.X), Y: t.SnapToGrid(p.Y)}
}

func (t *Transform) clamp(z float64) float64 {
	return math.Max(t.MinZoom, math.Min(z, t.MaxZoom))
}

// SetZoom stores z clamped to the zoom bounds and returns the stored value.
// The offset is left untouched.
func (t *Transform) SetZoom(z float64) float64 {
	t.zoom = t.clamp(z)
	return t.zoom
}

// SetView replaces zoom and offset. Zoom is clamped.
func (t *Transform) SetView(zoom float64, offset common.Vec2) {
	t.zoom = t.clamp(zoom)
	t.offset = offset
}

// Pan shifts the view by a pixel delta.
func (t *Transform) Pan(delta common.Vec2) {
	t.offset = t.offset.Add(delta)
}

// ZoomAt changes the zoom by one step in the given direction (>0 in, <0 out)
// keeping the logical point under cursor fixed on screen.
func (t *Transform) ZoomAt(cursor common.Vec2, direction float64) {
	if direction == 0 {
		return
	}
	step := t.ZoomStep
	if direction < 0 {
		step = -step
	}
	old := t.zoom
	next := t.clamp(old + step)

	// cursor position relative to the offset, in unzoomed units
	rel := cursor.Sub(t.offset).Scale(1 / old)
	t.offset = cursor.Sub(rel.Scale(next))
	t.zoom = next
}

// Reset restores zoom 1.0 centred on the viewport.
func (t *Transform) Reset(vp Viewport) {
	t.zoom = t.clamp(1.0)
	t.offset = vp.Center()
}

// Recenter keeps the zoom and moves the logical origin to the viewport center.
func (t *Transform) Recenter(vp Viewport) {
	t.offset = vp.Center()
}

// SetZoomFactor applies a zoom typed by the user, clamped to the zoom
// bounds, and recentres the view. It returns the stored zoom. NaN leaves the
// view untouched.
func (t *Transform) SetZoomFactor(z float64, vp Viewport) float64 {
	if math.IsNaN(z) {
		return t.zoom
	}
	t.SetZoom(z)
	t.offset = vp.Center()
	return t.zoom
}

// FitTo frames points in the viewport with the given margin. A degenerate
// box falls back to Reset. It reports whether a fit was computed.
func (t *Transform) FitTo(points []common.Vec2, margin, padding float64, vp Viewport) bool {
	fit, ok := FitToBounds(points, FitOptions{
		Margin:   margin,
		Padding:  padding,
		Viewport: vp,
		MinZoom:  t.MinZoom,
		MaxZoom:  t.MaxZoom,
		ZoomStep: t.ZoomStep,
	})
	if !ok {
		t.Reset(vp)
		return false
	}
	t.zoom = fit.Zoom
	t.offset = fit.Offset
	return true
}

// ParseZoomPercent parses a zoom entry such as "150%" or "150" and rounds it
// to the nearest step. Zero, negative, non-numeric or more than three digits
// are rejected.
func ParseZoomPercent(text string, step float64) (float64, bool) {
	s := strings.TrimSuffix(strings.TrimSpace(text), "%")
	if s == "" || len(s) > 3 {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	z := float64(n) / 100
	if step > 0 {
		z = math.Round(z/step) * step
	}
	if z == 0 {
		return 0, false
	}
	return z, true
}
