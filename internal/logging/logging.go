// Package logging builds the zerolog logger shared by every shellbar component.
package logging

import (
	"io"

	"github.com/rs/zerolog"
)

// TimeFormat is the timestamp layout used by the console writer.
const TimeFormat = "15:04:05"

// New returns a console logger writing to w at the given level.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: TimeFormat,
		NoColor:    true,
	}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

