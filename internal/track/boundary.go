package track

import (
	"errors"

	"track-builder/internal/common"
)

// MinSegmentLength is the shortest centerline segment that produces cones.
// Shorter segments are near-duplicate vertices and are skipped.
const MinSegmentLength = 1.0

// ErrShortCenterline is returned when a centerline has fewer than two points.
var ErrShortCenterline = errors.New("centerline needs at least 2 points")

// GenerateBoundaries places one left and one right cone per centerline
// segment, at the segment midpoint offset by halfWidth along the unit left
// normal. Consecutive segments are not deduplicated against each other, so a
// nearly closed loop can yield almost coincident cones.
func GenerateBoundaries(centerline []common.Vec2, halfWidth float64) (left, right []common.Vec2) {
	for i := 0; i+1 < len(centerline); i++ {
		p1, p2 := centerline[i], centerline[i+1]

		d := p2.Sub(p1)
		length := d.Len()
		if length < MinSegmentLength {
			continue
		}

		normal := d.Scale(1 / length).LeftNormal()
		mid := p1.Mid(p2)
		off := normal.Scale(halfWidth)

		left = append(left, mid.Add(off))
		right = append(right, mid.Sub(off))
	}
	return left, right
}

// ReplaceWithBoundaries clears the store and fills it with the boundary cones
// generated from centerline. halfWidth is in logical units. It returns the
// number of cone pairs placed. A centerline with fewer than two points leaves
// the store untouched.
func (s *Store) ReplaceWithBoundaries(centerline []common.Vec2, halfWidth float64) (int, error) {
	if len(centerline) < 2 {
		return 0, ErrShortCenterline
	}
	left, right := GenerateBoundaries(centerline, halfWidth)

	cones := make([]Cone, 0, len(left)+len(right))
	for i := range left {
		cones = append(cones,
			Cone{Kind: KindLeft, Position: left[i]},
			Cone{Kind: KindRight, Position: right[i]},
		)
	}
	s.Replace(cones, nil)
	return len(left), nil
}
