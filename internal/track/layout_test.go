package track

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"track-builder/internal/common"
)

const testScale = 20.0

func TestRound(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.23456, 1.2346},
		{-1.23456, -1.2346},
		{0.00005, 0.0001},
		{-0.00005, -0.0001},
		{2, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round(tt.in), "Round(%v)", tt.in)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	s := NewStore()
	s.AddCone(KindLeft, common.Vec2{X: 1 * testScale, Y: 2 * testScale})
	s.AddCone(KindRight, common.Vec2{X: 1 * testScale, Y: -2 * testScale})
	s.PlaceCar(common.Vec2{}, 90)

	layout := ToRecord(s, testScale)
	assert.Equal(t, [][]float64{{1, 2}}, layout.ConesLeft)
	assert.Equal(t, [][]float64{{1, -2}}, layout.ConesRight)
	assert.Equal(t, []float64{0, 0, 90}, layout.StartingPose)

	cones, car, err := FromRecord(layout, testScale)
	require.NoError(t, err)
	require.Len(t, cones, 2)
	assert.InDelta(t, 20, cones[0].Position.X, 1e-4*testScale)
	assert.InDelta(t, 40, cones[0].Position.Y, 1e-4*testScale)
	assert.Equal(t, KindLeft, cones[0].Kind)
	assert.InDelta(t, -40, cones[1].Position.Y, 1e-4*testScale)
	assert.Equal(t, KindRight, cones[1].Kind)
	require.NotNil(t, car)
	assert.Equal(t, 90.0, car.Yaw)
}

func TestToRecordPreservesInsertionOrder(t *testing.T) {
	s := NewStore()
	xs := []float64{50, -10, 30, 0}
	for _, x := range xs {
		s.AddCone(KindLeft, common.Vec2{X: x})
	}
	layout := ToRecord(s, testScale)
	require.Len(t, layout.ConesLeft, len(xs))
	for i, x := range xs {
		assert.Equal(t, x/testScale, layout.ConesLeft[i][0])
	}
	assert.Empty(t, layout.ConesRight)
	assert.NotNil(t, layout.StartingPose)
	assert.Empty(t, layout.StartingPose)
}

func TestToRecordRounds(t *testing.T) {
	s := NewStore()
	s.AddCone(KindLeft, common.Vec2{X: 1, Y: -1})
	layout := ToRecord(s, 3)
	assert.Equal(t, []float64{0.3333, -0.3333}, layout.ConesLeft[0])
}

func TestFromRecordShortPoseHasNoCar(t *testing.T) {
	cones, car, err := FromRecord(TrackLayout{StartingPose: []float64{1, 2}}, testScale)
	require.NoError(t, err)
	assert.Empty(t, cones)
	assert.Nil(t, car)
}

func TestApplyLeavesStoreOnError(t *testing.T) {
	s := NewStore()
	keep := s.AddCone(KindRight, common.Vec2{X: 3, Y: 3})

	err := s.Apply(TrackLayout{ConesLeft: [][]float64{{1}}}, testScale)
	require.Error(t, err)

	err = s.Apply(TrackLayout{StartingPose: []float64{math.NaN(), 0, math.Inf(1)}}, testScale)
	require.Error(t, err)
	_, hasCar := s.Car()
	assert.False(t, hasCar)

	assert.Equal(t, 1, s.Len())
	_, ok := s.Cone(keep.ID)
	assert.True(t, ok)
}

func TestDecodeLayout(t *testing.T) {
	l, err := DecodeLayout([]byte("starting_pose: [1, 2, 370]\ncones_left:\n  - [1.25, 0.5]\n  - [2, 3]\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1.25, 0.5}, {2, 3}}, l.ConesLeft)
	assert.Empty(t, l.ConesRight)

	_, car, err := FromRecord(l, 1)
	require.NoError(t, err)
	require.NotNil(t, car)
	assert.Equal(t, 10.0, car.Yaw)
}

func TestDecodeLayoutErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not a mapping", "- 1\n- 2\n"},
		{"unterminated flow", "cones_left: [[1, 2]\n"},
		{"non numeric", "cones_left: [[1, abc]]\n"},
		{"short pair", "cones_right: [[1]]\n"},
		{"not finite", "cones_left: [[.nan, 1]]\n"},
		{"pose not finite", "starting_pose: [.nan, 0, 0]\n"},
		{"pose yaw not finite", "cones_left: [[1, 1]]\nstarting_pose: [0, 0, .inf]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeLayout([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestEncodeLayout(t *testing.T) {
	data, err := EncodeLayout(TrackLayout{
		ConesLeft:    [][]float64{{1.25, 0.5}},
		ConesRight:   [][]float64{{2, -0.5}},
		StartingPose: []float64{},
	})
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "cones_left:\n")
	assert.Contains(t, out, "- [1.25, 0.5]\n")
	assert.Contains(t, out, "- [2.0, -0.5]\n")
	assert.Contains(t, out, "starting_pose: []\n")

	back, err := DecodeLayout(data)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1.25, 0.5}}, back.ConesLeft)
	assert.Equal(t, [][]float64{{2, -0.5}}, back.ConesRight)
	assert.Empty(t, back.StartingPose)
}

func TestLayoutFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "track.yaml")

	s := NewStore()
	s.AddCone(KindLeft, common.Vec2{X: 25, Y: 10})
	s.AddCone(KindRight, common.Vec2{X: 25, Y: -10})
	s.PlaceCar(common.Vec2{X: 5, Y: 0}, 45)

	require.NoError(t, WriteLayoutFile(path, ToRecord(s, testScale)))

	l, err := ReadLayoutFile(path)
	require.NoError(t, err)

	loaded := NewStore()
	require.NoError(t, loaded.Apply(l, testScale))
	assert.Equal(t, s.Positions(), loaded.Positions())

	car, ok := loaded.Car()
	require.True(t, ok)
	assert.Equal(t, common.Vec2{X: 5, Y: 0}, car.Position)
	assert.Equal(t, 45.0, car.Yaw)
}

func TestReadLayoutFileMissing(t *testing.T) {
	_, err := ReadLayoutFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
