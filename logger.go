package gg3d

import (
	"log/slog"
	"sync/atomic"
)

// discard is the logger in effect until SetLogger installs another one.
// Its handler reports every level as disabled, so log calls return before
// formatting their attributes.
var discard = slog.New(slog.DiscardHandler)

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(discard)
}

// SetLogger configures the logger for gg3d and its sub-packages.
// By default, gg3d produces no log output. The math kernel itself never
// logs; the render package and the demo programs do.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by gg3d:
//   - [slog.LevelDebug]: buffer uploads, shader compilation sizes
//   - [slog.LevelInfo]: GPU resource creation
//   - [slog.LevelWarn]: non-finite matrices about to be uploaded
//
// Example:
//
//	gg3d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discard
	}
	current.Store(l)
}

// Logger returns the current logger used by gg3d.
// Sub-packages (render/) call this to share the same logger configuration
// without introducing import cycles.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return current.Load()
}
