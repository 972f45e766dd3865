package ctext

import (
	"io"

	"golang.org/x/exp/slog"
)

// log is the package logger. Everything is discarded until a caller
// installs a handler with SetLogger.
var log = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger routes ctext's internal logging to l. ctext logs at Debug
// level only. Passing nil restores the discard logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	log = l
}
