// Package log holds the process-wide slog instance shared by the hub,
// the viewer and the tick loop.
package log

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	mu     sync.Mutex
	logger *slog.Logger
)

// Init builds the shared logger at the given level and installs it as the
// slog default. The first call wins; later calls are no-ops so libraries
// cannot reconfigure logging out from under main.
func Init(level string) {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = build(level)
	}
}

// L returns the shared logger, initializing it at info level if Init was
// never called.
func L() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = build("info")
	}
	return logger
}

// Component tags a logger with a component name so interleaved output from
// concurrent subsystems stays attributable.
func Component(name string) *slog.Logger {
	return L().With("component", name)
}

func build(level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var h slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if os.Getenv("GO_ENV") == "production" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	}

	l := slog.New(h)
	slog.SetDefault(l)
	return l
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
