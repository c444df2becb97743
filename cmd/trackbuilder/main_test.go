package main

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"track-builder/internal/common"
	"track-builder/internal/config"
	"track-builder/internal/editor"
	"track-builder/internal/track"
	"track-builder/internal/view"
)

func TestParseViewport(t *testing.T) {
	tests := []struct {
		in      string
		want    view.Viewport
		wantErr bool
	}{
		{"1920x1080", view.Viewport{Width: 1920, Height: 1080}, false},
		{" 800X600 ", view.Viewport{Width: 800, Height: 600}, false},
		{"800", view.Viewport{}, true},
		{"0x600", view.Viewport{}, true},
		{"axb", view.Viewport{}, true},
	}
	for _, tt := range tests {
		got, err := parseViewport(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestCarCornersFollowYaw(t *testing.T) {
	ed := editor.New(config.Default(), track.NewStore(), nil, nil, zerolog.Nop())
	g := NewGame(ed)
	center := ed.View().LogicalToScreen(common.Vec2{})

	// yaw 0 points along +x
	nose := g.carCorners(track.CarPose{Yaw: 0})[0]
	assert.InDelta(t, center.X+10, nose.X, 1e-9)
	assert.InDelta(t, center.Y, nose.Y, 1e-9)

	// yaw 90 points along logical +y, which is up on screen
	nose = g.carCorners(track.CarPose{Yaw: 90})[0]
	assert.InDelta(t, center.X, nose.X, 1e-9)
	assert.InDelta(t, center.Y-10, nose.Y, 1e-9)
}

func TestOverHUD(t *testing.T) {
	assert.True(t, overHUD(10, 10))
	assert.False(t, overHUD(HUDWidth, 10))
	assert.False(t, overHUD(500, 500))
}
