package fsutil

import (
	"io"
	"log/slog"
	"sync/atomic"
)

// The package logger discards everything until SetLogger installs a real
// one. Only the *OrWarn removal helpers log.
var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(discardLogger())
}

// SetLogger routes this package's warnings to l. A nil l restores the
// default discard logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discardLogger()
	}
	logger.Store(l)
}

func log() *slog.Logger {
	return logger.Load()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
