// Package logging configures the process-wide zerolog logger. The manager
// logs every dispatched event at debug level and X protocol errors at error
// level; nothing in the hot path allocates beyond the event itself.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Logger is the process-wide logger. Init must run before first use.
var Logger zerolog.Logger

var logFile *os.File

// Init sets up the global logger. When stderr is a terminal, output is the
// human-readable console format; otherwise JSON. A non-empty file path adds
// a JSON file sink alongside stderr.
func Init(level, file string) error {
	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)

	var out zerolog.LevelWriter
	stderr := writerForStderr()
	if file == "" {
		out = zerolog.MultiLevelWriter(stderr)
	} else {
		if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file %s: %w", file, err)
		}
		logFile = f
		out = zerolog.MultiLevelWriter(stderr, f)
	}

	Logger = zerolog.New(out).With().Timestamp().Logger()
	return nil
}

// Close releases the file sink, if any.
func Close() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

func writerForStderr() zerolog.LevelWriter {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return zerolog.MultiLevelWriter(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return zerolog.MultiLevelWriter(os.Stderr)
}

func parseLevel(s string) (zerolog.Level, error) {
	switch s {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info", "":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}
