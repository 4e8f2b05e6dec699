package video

import (
	"log/slog"
	"sync/atomic"
)

// loggerPtr stores the active logger. Swapped atomically so SetLogger is
// safe to call while a driver is logging.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(slog.DiscardHandler))
}

// SetLogger configures the logger used by the bundled drivers. By default
// all output is discarded. Pass nil to restore the silent default.
//
// The runtime core itself never logs; only driver implementations do, at
// debug level for lifecycle events.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	loggerPtr.Store(l)
}

// Logger returns the active driver logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
