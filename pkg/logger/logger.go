// Package logger provides the shared zerolog setup. The TUI owns the
// terminal, so interactive runs log to a file; servers log to stderr.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

var (
	base    atomic.Pointer[zerolog.Logger]
	fileMu  sync.Mutex
	logFile *os.File
)

func init() {
	nop := zerolog.Nop()
	base.Store(&nop)
}

// InitFile routes logs to dir/cli-<timestamp>.log and returns the file path.
func InitFile(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	logFileName := filepath.Join(dir, fmt.Sprintf("cli-%s.log", time.Now().Format("20060102-150405")))
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to open log file: %w", err)
	}

	fileMu.Lock()
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	fileMu.Unlock()

	SetOutput(f, zerolog.DebugLevel)
	return logFileName, nil
}

// InitConsole routes human-readable logs to stderr.
func InitConsole(level zerolog.Level) {
	SetOutput(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}, level)
}

// SetOutput replaces the base logger.
func SetOutput(w io.Writer, level zerolog.Level) {
	l := zerolog.New(w).Level(level).With().Timestamp().Logger()
	base.Store(&l)
}

// NewLogger returns a logger tagged with the given component name.
func NewLogger(component string) zerolog.Logger {
	return base.Load().With().Str("component", component).Logger()
}

// Log writes a debug log message
func Log(format string, v ...interface{}) {
	base.Load().Debug().Msgf(format, v...)
}

// LogError writes an error log message
func LogError(err error, format string, v ...interface{}) {
	base.Load().Error().Err(err).Msgf(format, v...)
}

// CloseLog closes the log file, if any
func CloseLog() {
	fileMu.Lock()
	defer fileMu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
