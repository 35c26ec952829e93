// Package logger provides a thin wrapper around zerolog.Logger used by the
// configuration loader.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, WithLevel, etc.) are available directly on
// *Logger.
package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label (e.g. "loader").
// Every entry carries a "role" field and a timestamp and is written to
// os.Stderr in JSON format.
func NewLogger(role string) *Logger {
	return NewWithWriter(role, os.Stderr)
}

// NewWithWriter is like NewLogger but writes entries to w.
func NewWithWriter(role string, w io.Writer) *Logger {
	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Logger()
	return &Logger{logger}
}

// WithField returns a child logger carrying an additional string field.
func (l *Logger) WithField(key, value string) *Logger {
	return &Logger{l.Logger.With().Str(key, value).Logger()}
}
