package track

import (
	"errors"
	"fmt"
	"math"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"track-builder/internal/common"
)

// Decimals is the precision of coordinates written to a layout.
const Decimals = 4

// TrackLayout is the persisted form of a track, in meters.
// StartingPose is [x, y, yaw] or empty.
type TrackLayout struct {
	ConesLeft    [][]float64 `yaml:"cones_left"`
	ConesRight   [][]float64 `yaml:"cones_right"`
	StartingPose []float64   `yaml:"starting_pose"`
}

// Round rounds v half away from zero to the layout precision.
func Round(v float64) float64 {
	return decimal.NewFromFloat(v).Round(Decimals).InexactFloat64()
}

// Validate checks that every cone entry has at least an x and a y and that
// all coordinates, including a starting pose, are finite.
func (l TrackLayout) Validate() error {
	sides := []struct {
		name  string
		cones [][]float64
	}{{"cones_left", l.ConesLeft}, {"cones_right", l.ConesRight}}
	for _, side := range sides {
		for i, c := range side.cones {
			if len(c) < 2 {
				return fmt.Errorf("%s[%d]: expected [x, y], got %d values", side.name, i, len(c))
			}
			if !(common.Vec2{X: c[0], Y: c[1]}).IsFinite() {
				return fmt.Errorf("%s[%d]: coordinates must be finite", side.name, i)
			}
		}
	}
	if p := l.StartingPose; len(p) >= 3 {
		if !(common.Vec2{X: p[0], Y: p[1]}).IsFinite() || math.IsNaN(p[2]) || math.IsInf(p[2], 0) {
			return errors.New("starting_pose: values must be finite")
		}
	}
	return nil
}

// ToRecord converts the store content to meters by dividing every logical
// position by scale. Sides keep their insertion order.
func ToRecord(s *Store, scale float64) TrackLayout {
	toPair := func(c Cone, _ int) []float64 {
		return []float64{Round(c.Position.X / scale), Round(c.Position.Y / scale)}
	}
	layout := TrackLayout{
		ConesLeft:    lo.Map(s.ConesOf(KindLeft), toPair),
		ConesRight:   lo.Map(s.ConesOf(KindRight), toPair),
		StartingPose: []float64{},
	}
	if car, ok := s.Car(); ok {
		layout.StartingPose = []float64{
			Round(car.Position.X / scale),
			Round(car.Position.Y / scale),
			Round(car.Yaw),
		}
	}
	return layout
}

// FromRecord converts a layout back to logical units by multiplying with
// scale. Missing sides are empty. A starting pose with fewer than three
// values yields no car.
func FromRecord(l TrackLayout, scale float64) ([]Cone, *CarPose, error) {
	if err := l.Validate(); err != nil {
		return nil, nil, err
	}

	cones := make([]Cone, 0, len(l.ConesLeft)+len(l.ConesRight))
	for _, c := range l.ConesLeft {
		cones = append(cones, Cone{Kind: KindLeft, Position: common.Vec2{X: c[0] * scale, Y: c[1] * scale}})
	}
	for _, c := range l.ConesRight {
		cones = append(cones, Cone{Kind: KindRight, Position: common.Vec2{X: c[0] * scale, Y: c[1] * scale}})
	}

	var car *CarPose
	if len(l.StartingPose) >= 3 {
		car = &CarPose{
			Position: common.Vec2{X: l.StartingPose[0] * scale, Y: l.StartingPose[1] * scale},
			Yaw:      NormalizeYaw(l.StartingPose[2]),
		}
	}
	return cones, car, nil
}

// Apply validates l and replaces the store content with it. On error the
// store is left unchanged.
func (s *Store) Apply(l TrackLayout, scale float64) error {
	cones, car, err := FromRecord(l, scale)
	if err != nil {
		return err
	}
	s.Replace(cones, car)
	return nil
}
