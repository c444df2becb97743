package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"track-builder/internal/common"
)

func fitOptions(margin float64) FitOptions {
	return FitOptions{
		Margin:   margin,
		Padding:  DefaultFitPadding,
		Viewport: testViewport,
		MinZoom:  DefaultMinZoom,
		MaxZoom:  DefaultMaxZoom,
		ZoomStep: DefaultZoomStep,
	}
}

func TestFitToBoundsNeverClips(t *testing.T) {
	tests := []struct {
		name   string
		points []common.Vec2
		margin float64
	}{
		{"wide", []common.Vec2{{X: 0, Y: 0}, {X: 100, Y: 50}, {X: -30, Y: 20}}, 500},
		{"tall", []common.Vec2{{X: 0, Y: -400}, {X: 10, Y: 900}}, 500},
		{"generated", []common.Vec2{{X: -600, Y: -300}, {X: 650, Y: 280}}, 1000},
		{"offset from origin", []common.Vec2{{X: 5000, Y: 5000}, {X: 5600, Y: 5200}}, 500},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fit, ok := FitToBounds(tt.points, fitOptions(tt.margin))
			require.True(t, ok)
			require.Greater(t, fit.Zoom, DefaultMinZoom, "case must not hit the zoom clamp")

			tr := NewTransform(DefaultOptions(), testViewport)
			tr.SetView(fit.Zoom, fit.Offset)

			lower, upper, _ := common.Bounds(tt.points)
			m := tt.margin
			corners := []common.Vec2{
				{X: lower.X - m, Y: lower.Y - m},
				{X: lower.X - m, Y: upper.Y + m},
				{X: upper.X + m, Y: lower.Y - m},
				{X: upper.X + m, Y: upper.Y + m},
			}
			for _, c := range corners {
				s := tr.LogicalToScreen(c)
				assert.True(t, testViewport.Contains(s), "corner %v maps to %v outside viewport", c, s)
			}
		})
	}
}

func TestFitToBoundsSnapsDownAndCenters(t *testing.T) {
	points := []common.Vec2{{X: 0, Y: 0}, {X: 0, Y: -100}}
	fit, ok := FitToBounds(points, fitOptions(500))
	require.True(t, ok)

	// 1080 / (1100 * 1.1) = 0.8925..., floored to the 0.025 step
	assert.InDelta(t, 0.875, fit.Zoom, 1e-9)

	tr := NewTransform(DefaultOptions(), testViewport)
	tr.SetView(fit.Zoom, fit.Offset)
	center := tr.LogicalToScreen(common.Vec2{X: 0, Y: -50})
	assert.InDelta(t, 960, center.X, 1e-9)
	assert.InDelta(t, 540, center.Y, 1e-9)
}

func TestFitToBoundsClamps(t *testing.T) {
	fit, ok := FitToBounds([]common.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}}, fitOptions(1))
	require.True(t, ok)
	assert.Equal(t, DefaultMaxZoom, fit.Zoom)

	fit, ok = FitToBounds([]common.Vec2{{X: -1e6, Y: -1e6}, {X: 1e6, Y: 1e6}}, fitOptions(500))
	require.True(t, ok)
	assert.Equal(t, DefaultMinZoom, fit.Zoom)
}

func TestFitToBoundsDegenerate(t *testing.T) {
	_, ok := FitToBounds(nil, fitOptions(500))
	assert.False(t, ok)

	_, ok = FitToBounds([]common.Vec2{{X: 4, Y: 4}}, fitOptions(0))
	assert.False(t, ok)

	_, ok = FitToBounds([]common.Vec2{{X: 0, Y: 4}, {X: 10, Y: 4}}, fitOptions(0))
	assert.False(t, ok)

	// a single point with a margin still has an area
	_, ok = FitToBounds([]common.Vec2{{X: 4, Y: 4}}, fitOptions(500))
	assert.True(t, ok)
}

func TestTransformFitToFallsBackToReset(t *testing.T) {
	tr := NewTransform(DefaultOptions(), testViewport)
	tr.SetView(4, common.Vec2{X: 1, Y: 2})

	assert.False(t, tr.FitTo(nil, 500, DefaultFitPadding, testViewport))
	assert.Equal(t, 1.0, tr.Zoom())
	assert.Equal(t, testViewport.Center(), tr.Offset())

	assert.True(t, tr.FitTo([]common.Vec2{{X: 0, Y: 0}, {X: 0, Y: -100}}, 500, DefaultFitPadding, testViewport))
	assert.InDelta(t, 0.875, tr.Zoom(), 1e-9)
}
