package slogtest

import (
	"io"
	"log/slog"
)

// NullLogger returns a logger that discards everything; for tests.
func NullLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
