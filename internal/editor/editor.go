// Package editor drives a track layout from discrete user commands: tool and
// panel selection, placement and dragging, view changes, and file and
// generation flows. It holds no rendering code.
package editor

import (
	"github.com/rs/zerolog"

	"track-builder/internal/common"
	"track-builder/internal/config"
	"track-builder/internal/contour"
	"track-builder/internal/track"
	"track-builder/internal/view"
)

// DefaultSaveName is the file name suggested for a track that was never saved.
const DefaultSaveName = "trackdraft.yaml"

// Editor interaction constants.
const (
	RotateStep   = 5.0 // degrees per wheel notch
	HitRadius    = 10.0
	ClickSlop    = 5.0 // max pointer travel in pixels for a press to count as a click
	CarLength    = 5.0 // meters
	CarWidth     = 3.0
	DefaultWidth = 5.0 // track width in meters
)

// Dialogs asks the user for file paths. ok is false when the user cancels.
type Dialogs interface {
	OpenFile() (path string, ok bool)
	OpenImage() (path string, ok bool)
	SaveFile(suggested string) (path string, ok bool)
}

type gesture int

const (
	gestureNone gesture = iota
	gesturePan
	gestureDrag
)

// Editor is the single-threaded controller behind the canvas.
type Editor struct {
	cfg       config.Config
	store     *track.Store
	view      *view.Transform
	viewport  view.Viewport
	extractor contour.Extractor
	dialogs   Dialogs
	log       zerolog.Logger

	tool       Tool
	panel      Panel
	showAxes   bool
	trackWidth float64
	file       string
	image      string

	selected    track.ObjectID
	hasSelected bool

	gesture   gesture
	dragID    track.ObjectID
	pressAt   common.Vec2
	lastPoint common.Vec2
}

// New returns an editor over store. extractor and dialogs may be nil when the
// caller never generates or opens dialogs.
func New(cfg config.Config, store *track.Store, extractor contour.Extractor, dialogs Dialogs, logger zerolog.Logger) *Editor {
	vp := view.Viewport{Width: float64(cfg.Window.Width), Height: float64(cfg.Window.Height)}
	width := cfg.Track.Width
	if width <= 0 {
		width = DefaultWidth
	}
	return &Editor{
		cfg:        cfg,
		store:      store,
		view:       view.NewTransform(ViewOptions(cfg), vp),
		viewport:   vp,
		extractor:  extractor,
		dialogs:    dialogs,
		log:        logger.With().Str("component", "editor").Logger(),
		showAxes:   true,
		trackWidth: width,
	}
}

// ViewOptions maps the zoom and grid settings to transform options.
func ViewOptions(cfg config.Config) view.Options {
	return view.Options{
		MinZoom:       cfg.Zoom.Min,
		MaxZoom:       cfg.Zoom.Max,
		ZoomStep:      cfg.Zoom.Step,
		GridStep:      cfg.Grid.LogicalStep,
		GridPixelSize: cfg.Grid.PixelSize,
	}
}

func (e *Editor) Store() *track.Store { return e.store }
func (e *Editor) View() *view.Transform { return e.view }
func (e *Editor) Viewport() view.Viewport { return e.viewport }
func (e *Editor) Tool() Tool { return e.tool }
func (e *Editor) Panel() Panel { return e.panel }
func (e *Editor) AxesVisible() bool { return e.showAxes }
func (e *Editor) TrackWidth() float64 { return e.trackWidth }
func (e *Editor) CurrentFile() string { return e.file }
func (e *Editor) SelectedImage() string { return e.image }
func (e *Editor) Scale() float64 { return e.cfg.Grid.Scale() }
func (e *Editor) Config() config.Config { return e.cfg }
func (e *Editor) GridLines() []view.Line { return view.GridLines(e.viewport, e.view, e.showAxes) }
func (e *Editor) Panning() bool { return e.gesture == gesturePan }
func (e *Editor) Dragging() bool { return e.gesture == gestureDrag }

// CarSize returns the car triangle length and width in logical units.
func (e *Editor) CarSize() (length, width float64) {
	return CarLength / e.cfg.Grid.LogicalStep, CarWidth / e.cfg.Grid.LogicalStep
}

// Selected returns the selected object, if any.
func (e *Editor) Selected() (track.ObjectID, bool) {
	return e.selected, e.hasSelected
}

// Select marks id as selected. Selecting the car makes the wheel rotate it.
func (e *Editor) Select(id track.ObjectID) {
	e.selected, e.hasSelected = id, true
}

// ClearSelection drops the current selection.
func (e *Editor) ClearSelection() {
	e.hasSelected = false
}

// CarSelected reports whether the car is placed and selected.
func (e *Editor) CarSelected() bool {
	car, ok := e.store.Car()
	return ok && e.hasSelected && e.selected == car.ID
}

// SetTool activates t. Any tool other than ToolNone opens the drag panel
// that holds it.
func (e *Editor) SetTool(t Tool) {
	if t != ToolNone && e.panel != DragPanel {
		e.panel = Transition(e.panel, OpenDrag)
	}
	e.tool = t
	e.log.Debug().Stringer("tool", t).Msg("tool selected")
}

// TogglePanel applies a panel button press. Opening or closing the drag
// panel deactivates every tool.
func (e *Editor) TogglePanel(ev PanelEvent) Panel {
	prev := e.panel
	e.panel = Transition(prev, ev)
	if prev == DragPanel || e.panel == DragPanel {
		if prev != e.panel {
			e.tool = ToolNone
		}
	}
	return e.panel
}

// ToggleAxes shows or hides the coordinate axes.
func (e *Editor) ToggleAxes() bool {
	e.showAxes = !e.showAxes
	return e.showAxes
}

// SetTrackWidth parses a width entry in meters. Invalid or non-positive input
// keeps the last valid width and returns false.
func (e *Editor) SetTrackWidth(text string) (float64, bool) {
	w, ok := parsePositive(text)
	if !ok {
		e.log.Warn().Str("input", text).Float64("width", e.trackWidth).Msg("invalid track width, keeping previous value")
		return e.trackWidth, false
	}
	e.trackWidth = w
	return w, true
}

// Resize records a new viewport and keeps the logical origin centred.
func (e *Editor) Resize(vp view.Viewport) {
	if vp == e.viewport {
		return
	}
	e.viewport = vp
	e.view.Recenter(vp)
}

// ResetView restores zoom 1.0 centred on the origin.
func (e *Editor) ResetView() {
	e.view.Reset(e.viewport)
}

// Fit frames all cones with the default margin.
func (e *Editor) Fit() bool {
	return e.fit(e.cfg.Fit.Margin)
}

func (e *Editor) fit(margin float64) bool {
	ok := e.view.FitTo(e.store.Positions(), margin, e.cfg.Fit.Padding, e.viewport)
	if !ok {
		e.log.Debug().Msg("nothing to fit, view reset")
	}
	return ok
}

// SetZoomEntry applies a typed zoom such as "150%" and returns the resulting
// percentage. Values outside the zoom bounds are clamped. Unparsable entries
// keep the current zoom.
func (e *Editor) SetZoomEntry(text string) int {
	z, ok := view.ParseZoomPercent(text, e.cfg.Zoom.Step)
	if !ok {
		e.log.Warn().Str("input", text).Int("zoom", e.view.ZoomPercent()).Msg("invalid zoom, keeping current value")
		return e.view.ZoomPercent()
	}
	e.view.SetZoomFactor(z, e.viewport)
	return e.view.ZoomPercent()
}
