package contour

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"track-builder/internal/common"
)

func TestToLogical(t *testing.T) {
	pixels := []image.Point{{100, 50}, {150, 50}, {150, 100}}
	got := ToLogical(pixels, 200, 100, 20, 4)

	require.Len(t, got, 4)
	assert.Equal(t, common.Vec2{X: 0, Y: 0}, got[0])
	assert.Equal(t, common.Vec2{X: 250, Y: 0}, got[1])
	assert.Equal(t, common.Vec2{X: 250, Y: 250}, got[2])
	assert.Equal(t, got[0], got[3])
}

func TestToLogicalAlreadyClosed(t *testing.T) {
	pixels := []image.Point{{0, 0}, {10, 0}, {10, 10}, {0, 0}}
	got := ToLogical(pixels, 10, 10, 4, 4)

	require.Len(t, got, 4)
	assert.Equal(t, common.Vec2{X: -5, Y: -5}, got[0])
	assert.Equal(t, common.Vec2{X: 5, Y: 5}, got[2])
}

func TestToLogicalEmpty(t *testing.T) {
	assert.Empty(t, ToLogical(nil, 10, 10, 20, 4))
}
