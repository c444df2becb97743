// Package track owns the placed cones and car pose of a track layout, turns
// centerlines into boundary cones and maps layouts to and from their file form.
package track

import (
	"errors"
	"math"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"track-builder/internal/common"
)

// ErrUnknownObject is returned when an id names neither a cone nor the car.
var ErrUnknownObject = errors.New("unknown track object")

// ObjectID identifies a cone or the car.
type ObjectID = uuid.UUID

// Kind is the boundary side a cone marks.
type Kind int

const (
	KindLeft Kind = iota
	KindRight
)

func (k Kind) String() string {
	switch k {
	case KindLeft:
		return "left"
	case KindRight:
		return "right"
	default:
		return "unknown"
	}
}

// Cone is a boundary marker. Kind never changes after creation.
type Cone struct {
	ID       ObjectID
	Kind     Kind
	Position common.Vec2 // logical units
}

// CarPose is the starting pose of the car. Yaw is in degrees, in [0, 360).
type CarPose struct {
	ID       ObjectID
	Position common.Vec2
	Yaw      float64
}

// NormalizeYaw wraps an angle in degrees into [0, 360).
func NormalizeYaw(deg float64) float64 {
	y := math.Mod(deg, 360)
	if y < 0 {
		y += 360
	}
	if y >= 360 {
		y = 0
	}
	return y
}

// Op is the kind of change reported to subscribers.
type Op int

const (
	OpAdded Op = iota
	OpMoved
	OpRemoved
	OpRotated
	OpCleared
)

// Event describes one store change. Car is set when the change concerns the car.
type Event struct {
	Op       Op
	ID       ObjectID
	Car      bool
	Kind     Kind
	Position common.Vec2
}

// Store holds the cones of both sides in insertion order and the optional car.
// It is not safe for concurrent use; the editor mutates it from a single goroutine.
type Store struct {
	left      []Cone
	right     []Cone
	car       *CarPose
	listeners []func(Event)
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Subscribe registers fn to be called after every change.
func (s *Store) Subscribe(fn func(Event)) {
	s.listeners = append(s.listeners, fn)
}

func (s *Store) emit(ev Event) {
	for _, fn := range s.listeners {
		fn(ev)
	}
}

func (s *Store) side(k Kind) *[]Cone {
	if k == KindRight {
		return &s.right
	}
	return &s.left
}

// AddCone appends a new cone to its side and returns it.
func (s *Store) AddCone(kind Kind, pos common.Vec2) Cone {
	c := Cone{ID: uuid.New(), Kind: kind, Position: pos}
	side := s.side(kind)
	*side = append(*side, c)
	s.emit(Event{Op: OpAdded, ID: c.ID, Kind: kind, Position: pos})
	return c
}

// find returns the side slice and index holding id, or nil.
func (s *Store) find(id ObjectID) (*[]Cone, int) {
	for _, side := range []*[]Cone{&s.left, &s.right} {
		if _, i, ok := lo.FindIndexOf(*side, func(c Cone) bool { return c.ID == id }); ok {
			return side, i
		}
	}
	return nil, -1
}

// Move sets the position of a cone or the car, keeping its order.
func (s *Store) Move(id ObjectID, pos common.Vec2) error {
	if s.car != nil && s.car.ID == id {
		s.car.Position = pos
		s.emit(Event{Op: OpMoved, ID: id, Car: true, Position: pos})
		return nil
	}
	side, i := s.find(id)
	if side == nil {
		return ErrUnknownObject
	}
	(*side)[i].Position = pos
	s.emit(Event{Op: OpMoved, ID: id, Kind: (*side)[i].Kind, Position: pos})
	return nil
}

// Delete removes a cone, or the car when id is the car's.
func (s *Store) Delete(id ObjectID) error {
	if s.car != nil && s.car.ID == id {
		s.car = nil
		s.emit(Event{Op: OpRemoved, ID: id, Car: true})
		return nil
	}
	side, i := s.find(id)
	if side == nil {
		return ErrUnknownObject
	}
	c := (*side)[i]
	*side = append((*side)[:i], (*side)[i+1:]...)
	s.emit(Event{Op: OpRemoved, ID: id, Kind: c.Kind, Position: c.Position})
	return nil
}

// PlaceCar creates the car. While a car exists it is left as is and returned
// with created set to false.
func (s *Store) PlaceCar(pos common.Vec2, yaw float64) (pose CarPose, created bool) {
	if s.car != nil {
		return *s.car, false
	}
	s.car = &CarPose{ID: uuid.New(), Position: pos, Yaw: NormalizeYaw(yaw)}
	s.emit(Event{Op: OpAdded, ID: s.car.ID, Car: true, Position: pos})
	return *s.car, true
}

// RotateCar adds delta degrees to the car yaw.
func (s *Store) RotateCar(delta float64) (CarPose, bool) {
	if s.car == nil {
		return CarPose{}, false
	}
	s.car.Yaw = NormalizeYaw(s.car.Yaw + delta)
	s.emit(Event{Op: OpRotated, ID: s.car.ID, Car: true, Position: s.car.Position})
	return *s.car, true
}

// Clear removes all cones and the car.
func (s *Store) Clear() {
	s.left = nil
	s.right = nil
	s.car = nil
	s.emit(Event{Op: OpCleared})
}

// Replace swaps the whole content for cones and car. Cones without an id get one.
func (s *Store) Replace(cones []Cone, car *CarPose) {
	s.Clear()
	for _, c := range cones {
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		side := s.side(c.Kind)
		*side = append(*side, c)
		s.emit(Event{Op: OpAdded, ID: c.ID, Kind: c.Kind, Position: c.Position})
	}
	if car != nil {
		pose := *car
		if pose.ID == uuid.Nil {
			pose.ID = uuid.New()
		}
		pose.Yaw = NormalizeYaw(pose.Yaw)
		s.car = &pose
		s.emit(Event{Op: OpAdded, ID: pose.ID, Car: true, Position: pose.Position})
	}
}

// Cones returns all cones, left side first, each side in insertion order.
func (s *Store) Cones() []Cone {
	out := make([]Cone, 0, len(s.left)+len(s.right))
	out = append(out, s.left...)
	return append(out, s.right...)
}

// ConesOf returns a copy of one side's cones in insertion order.
func (s *Store) ConesOf(kind Kind) []Cone {
	return append([]Cone(nil), *s.side(kind)...)
}

// Cone looks up a cone by id.
func (s *Store) Cone(id ObjectID) (Cone, bool) {
	side, i := s.find(id)
	if side == nil {
		return Cone{}, false
	}
	return (*side)[i], true
}

// Car returns the car pose if one is placed.
func (s *Store) Car() (CarPose, bool) {
	if s.car == nil {
		return CarPose{}, false
	}
	return *s.car, true
}

// Len returns the number of cones.
func (s *Store) Len() int {
	return len(s.left) + len(s.right)
}

// Positions returns the positions of all cones.
func (s *Store) Positions() []common.Vec2 {
	return lo.Map(s.Cones(), func(c Cone, _ int) common.Vec2 { return c.Position })
}

// Bounds returns the bounding box over all cone positions. The car is not
// included. ok is false when there are no cones.
func (s *Store) Bounds() (lower, upper common.Vec2, ok bool) {
	return common.Bounds(s.Positions())
}

// ObjectAt returns the object closest to p within radius (logical units).
// The car wins ties since it is drawn on top.
func (s *Store) ObjectAt(p common.Vec2, radius float64) (ObjectID, bool) {
	if s.car != nil && s.car.Position.Dist(p) <= radius {
		return s.car.ID, true
	}
	best, bestDist := uuid.Nil, math.Inf(1)
	for _, c := range s.Cones() {
		if d := c.Position.Dist(p); d <= radius && d < bestDist {
			best, bestDist = c.ID, d
		}
	}
	return best, best != uuid.Nil
}
