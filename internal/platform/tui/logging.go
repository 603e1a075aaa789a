package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// ParseLevel converts a config level name to a log level. Unknown or empty
// names mean info.
func ParseLevel(name string) log.Level {
	level, err := log.ParseLevel(strings.ToLower(name))
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// NewFileLogger logs to a rotating file. The terminal belongs to the game, so
// local play never logs to stdout or stderr.
// The returned closer flushes and closes the file.
func NewFileLogger(path string, level log.Level) (*log.Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}

	lj := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
	}

	logger := log.NewWithOptions(lj, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "t2048",
	})
	return logger, lj, nil
}

// NewServerLogger logs SSH server events to w.
func NewServerLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "t2048-ssh",
	})
}

// discardLogger is used when the caller passes no logger.
func discardLogger() *log.Logger {
	return log.New(io.Discard)
}
