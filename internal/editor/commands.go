package editor

import (
	"math"
	"strconv"
	"strings"

	"track-builder/internal/common"
	"track-builder/internal/track"
)

// PlaceCone adds a cone of kind at the grid-snapped logical position.
func (e *Editor) PlaceCone(kind track.Kind, p common.Vec2) track.Cone {
	c := e.store.AddCone(kind, e.view.SnapPoint(p))
	e.log.Debug().Stringer("kind", kind).Float64("x", c.Position.X).Float64("y", c.Position.Y).Msg("cone placed")
	return c
}

// PlaceCar puts the car at the grid-snapped position with yaw 0. While a car
// exists nothing happens and created is false.
func (e *Editor) PlaceCar(p common.Vec2) (pose track.CarPose, created bool) {
	pose, created = e.store.PlaceCar(e.view.SnapPoint(p), 0)
	if !created {
		e.log.Debug().Msg("car already placed")
	}
	return pose, created
}

// MoveObject moves a cone or the car to a logical position.
func (e *Editor) MoveObject(id track.ObjectID, p common.Vec2) error {
	return e.store.Move(id, p)
}

// DeleteObject removes a cone or the car.
func (e *Editor) DeleteObject(id track.ObjectID) error {
	if err := e.store.Delete(id); err != nil {
		return err
	}
	if e.hasSelected && e.selected == id {
		e.ClearSelection()
	}
	return nil
}

// DeleteSelected removes the selected object. It reports whether anything was removed.
func (e *Editor) DeleteSelected() bool {
	if !e.hasSelected {
		return false
	}
	return e.DeleteObject(e.selected) == nil
}

// RotateCar turns the car by delta degrees.
func (e *Editor) RotateCar(delta float64) (track.CarPose, bool) {
	return e.store.RotateCar(delta)
}

// position returns the logical position of a cone or the car.
func (e *Editor) position(id track.ObjectID) (common.Vec2, bool) {
	if car, ok := e.store.Car(); ok && car.ID == id {
		return car.Position, true
	}
	c, ok := e.store.Cone(id)
	return c.Position, ok
}

func (e *Editor) objectAt(screen common.Vec2) (track.ObjectID, bool) {
	return e.store.ObjectAt(e.view.ScreenToLogical(screen), HitRadius/e.view.Zoom())
}

func (e *Editor) toggleSelect(id track.ObjectID) {
	if e.hasSelected && e.selected == id {
		e.ClearSelection()
		return
	}
	e.Select(id)
}

// Press starts a pointer gesture at a screen position. Placement tools place
// immediately. The drag tool grabs the object under the pointer. Everything
// else starts panning.
func (e *Editor) Press(screen common.Vec2) {
	e.pressAt, e.lastPoint = screen, screen
	logical := e.view.ScreenToLogical(screen)

	switch e.tool {
	case ToolLeftCone:
		e.PlaceCone(track.KindLeft, logical)
		return
	case ToolRightCone:
		e.PlaceCone(track.KindRight, logical)
		return
	case ToolCar:
		e.PlaceCar(logical)
		return
	case ToolDrag:
		if id, ok := e.objectAt(screen); ok {
			e.gesture = gestureDrag
			e.dragID = id
			e.toggleSelect(id)
			return
		}
	}
	e.gesture = gesturePan
}

// DragTo continues the gesture. A grabbed object follows the pointer by the
// logical delta without snapping; a pan shifts the view.
func (e *Editor) DragTo(screen common.Vec2) {
	switch e.gesture {
	case gestureDrag:
		delta := e.view.ScreenToLogical(screen).Sub(e.view.ScreenToLogical(e.lastPoint))
		if pos, ok := e.position(e.dragID); ok {
			if err := e.store.Move(e.dragID, pos.Add(delta)); err != nil {
				e.log.Warn().Err(err).Msg("drag target vanished")
				e.gesture = gestureNone
			}
		}
	case gesturePan:
		e.view.Pan(screen.Sub(e.lastPoint))
	}
	e.lastPoint = screen
}

// Release ends the gesture. A dragged object snaps to the grid. A pan that
// barely moved counts as a click and toggles selection of the object under
// the pointer.
func (e *Editor) Release(screen common.Vec2) {
	switch e.gesture {
	case gestureDrag:
		if pos, ok := e.position(e.dragID); ok {
			if err := e.store.Move(e.dragID, e.view.SnapPoint(pos)); err != nil {
				e.log.Warn().Err(err).Msg("failed to snap dragged object")
			}
		}
	case gesturePan:
		d := screen.Sub(e.pressAt)
		if math.Abs(d.X) < ClickSlop && math.Abs(d.Y) < ClickSlop {
			if id, ok := e.objectAt(screen); ok {
				e.toggleSelect(id)
			}
		}
	}
	e.gesture = gestureNone
	e.lastPoint = screen
}

// Wheel handles one wheel notch at a screen position. A selected car rotates
// by RotateStep; otherwise the view zooms around the pointer.
func (e *Editor) Wheel(screen common.Vec2, delta float64) {
	if delta == 0 {
		return
	}
	if e.CarSelected() {
		step := RotateStep
		if delta < 0 {
			step = -step
		}
		e.store.RotateCar(step)
		return
	}
	e.view.ZoomAt(screen, delta)
}

func parsePositive(text string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}
