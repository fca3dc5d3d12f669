// Package logging routes slashpad's diagnostics through log/slog.
//
// Nothing is written until Configure is called; library users that never
// configure logging get a silent widget.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const defaultLogFile = "slashpad.log"

var (
	mu           sync.Mutex
	logger       = slog.New(slog.NewTextHandler(io.Discard, nil))
	closer       io.Closer
	traceEnabled bool
)

// Configure opens path (or the default log file when empty) and installs a
// JSON handler writing to it. Parent directories are created when missing.
func Configure(path string) error {
	if strings.TrimSpace(path) == "" {
		path = defaultLogFile
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	SetOutput(f)
	mu.Lock()
	closer = f
	mu.Unlock()
	return nil
}

// SetOutput swaps the destination for log entries. Tests use it with a
// bytes.Buffer.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if closer != nil {
		_ = closer.Close()
		closer = nil
	}
	logger = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Close releases the log file opened by Configure and silences logging.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if closer != nil {
		_ = closer.Close()
		closer = nil
	}
	logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SetTraceEnabled toggles emission of trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether Trace writes anything.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Logger returns the current logger.
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Trace writes a debug entry for event when tracing is enabled.
func Trace(event string, attrs ...slog.Attr) {
	if !TraceEnabled() {
		return
	}
	Logger().LogAttrs(context.Background(), slog.LevelDebug, event, attrs...)
}

// Warn records a recoverable problem.
func Warn(msg string, args ...any) {
	Logger().Warn(msg, args...)
}

// Error records err; nil errors are ignored.
func Error(err error, args ...any) {
	if err == nil {
		return
	}
	Logger().Error(err.Error(), args...)
}
