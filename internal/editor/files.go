package editor

import (
	"errors"
	"fmt"

	"track-builder/internal/contour"
	"track-builder/internal/track"
)

var (
	errNoDialogs   = errors.New("no file dialogs available")
	errNoExtractor = errors.New("no contour extractor configured")
)

// Load reads a track file and replaces the store content with it. On any
// error the store and the current file are left as they were. A successful
// load fits the view.
func (e *Editor) Load(path string) error {
	layout, err := track.ReadLayoutFile(path)
	if err == nil {
		err = e.store.Apply(layout, e.Scale())
	}
	if err != nil {
		e.log.Error().Err(err).Str("path", path).Msg("failed to load track")
		return fmt.Errorf("load %s: %w", path, err)
	}

	e.file = path
	e.ClearSelection()
	e.gesture = gestureNone
	e.fit(e.cfg.Fit.Margin)

	_, hasCar := e.store.Car()
	e.log.Info().Str("path", path).Int("cones", e.store.Len()).Bool("car", hasCar).Msg("track loaded")
	return nil
}

// OpenAndLoad asks for a track file and loads it. A cancelled dialog returns
// false and no error.
func (e *Editor) OpenAndLoad() (bool, error) {
	if e.dialogs == nil {
		return false, errNoDialogs
	}
	path, ok := e.dialogs.OpenFile()
	if !ok {
		return false, nil
	}
	if err := e.Load(path); err != nil {
		return false, err
	}
	return true, nil
}

// Save writes the track to the current file. Without one the user is asked
// for a path; cancelling returns false and no error.
func (e *Editor) Save() (bool, error) {
	path := e.file
	if path == "" {
		if e.dialogs == nil {
			return false, errNoDialogs
		}
		var ok bool
		if path, ok = e.dialogs.SaveFile(DefaultSaveName); !ok {
			return false, nil
		}
	}
	if err := e.SaveAs(path); err != nil {
		return false, err
	}
	return true, nil
}

// SaveAs writes the track to path and makes it the current file.
func (e *Editor) SaveAs(path string) error {
	layout := track.ToRecord(e.store, e.Scale())
	if err := track.WriteLayoutFile(path, layout); err != nil {
		e.log.Error().Err(err).Str("path", path).Msg("failed to save track")
		return fmt.Errorf("save %s: %w", path, err)
	}
	e.file = path
	e.log.Info().Str("path", path).Int("left", len(layout.ConesLeft)).Int("right", len(layout.ConesRight)).Msg("track saved")
	return nil
}

// SelectImage asks for the image used by GenerateSelected.
func (e *Editor) SelectImage() bool {
	if e.dialogs == nil {
		return false
	}
	path, ok := e.dialogs.OpenImage()
	if !ok {
		return false
	}
	e.image = path
	return true
}

// GenerateSelected runs Generate on the selected image. Without one it does nothing.
func (e *Editor) GenerateSelected() (int, error) {
	if e.image == "" {
		return 0, nil
	}
	return e.Generate(e.image)
}

// Generate traces the image at path and replaces the store with boundary
// cones around the traced centerline, using the current track width. When no
// contour is found the store is left untouched. It returns the number of cone
// pairs placed.
func (e *Editor) Generate(path string) (int, error) {
	if e.extractor == nil {
		return 0, errNoExtractor
	}
	points, err := e.extractor.Extract(path)
	if err == nil && len(points) == 0 {
		err = contour.ErrNoContour
	}
	if err != nil {
		e.log.Warn().Err(err).Str("image", path).Msg("track generation aborted")
		return 0, err
	}

	halfWidth := e.trackWidth * e.Scale() / 2
	n, err := e.store.ReplaceWithBoundaries(points, halfWidth)
	if err != nil {
		e.log.Warn().Err(err).Str("image", path).Msg("track generation aborted")
		return 0, err
	}

	e.ClearSelection()
	e.gesture = gestureNone
	e.fit(e.cfg.Fit.GenerateMargin)
	e.log.Info().Str("image", path).Int("pairs", n).Float64("width", e.trackWidth).Msg("track generated")
	return n, nil
}
