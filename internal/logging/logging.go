// Package logging builds the zerolog logger shared by the editor and the CLI.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel converts a level name to a zerolog level. Unknown names map to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New returns a logger writing to w at the given level.
func New(w io.Writer, level string) zerolog.Logger {
	return zerolog.New(w).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// NewConsole returns a human readable logger on stderr.
func NewConsole(level string) zerolog.Logger {
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return New(out, level)
}
