package main

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/sqweek/dialog"
)

// nativeDialogs shows the platform file pickers.
type nativeDialogs struct {
	log zerolog.Logger
}

func (d nativeDialogs) OpenFile() (string, bool) {
	return d.result(dialog.File().Filter("YAML files", "yaml", "yml").Title("Select Track File").Load())
}

func (d nativeDialogs) OpenImage() (string, bool) {
	return d.result(dialog.File().Filter("Images", "png", "jpg", "jpeg").Title("Select Track Image").Load())
}

func (d nativeDialogs) SaveFile(suggested string) (string, bool) {
	return d.result(dialog.File().Filter("YAML files", "yaml").Title("Save Track File").SetStartFile(suggested).Save())
}

func (d nativeDialogs) result(path string, err error) (string, bool) {
	if err != nil {
		if !errors.Is(err, dialog.ErrCancelled) {
			d.log.Error().Err(err).Msg("file dialog failed")
		}
		return "", false
	}
	return path, path != ""
}
