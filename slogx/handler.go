package slogx

import (
	"fmt"
	clog "github.com/charmbracelet/log"
	"golang.org/x/term"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// NewHandler creates a [slog.Handler] writing to w at the given level.
// Human-readable output is used when w is a terminal, and JSON otherwise.
func NewHandler(w io.Writer, level slog.Leveler) slog.Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	if IsTerminal(w) {
		return NewTextHandler(w, level)
	}
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
}

// NewTextHandler creates a human-readable handler, regardless of whether w is a terminal.
func NewTextHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return clog.NewWithOptions(w, clog.Options{
		Level:           clog.Level(level.Level()),
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
}

// OpenFileHandler appends JSON records to the file at path, creating it if necessary.
// The returned closer must be called to release the file.
func OpenFileHandler(path string, level slog.Leveler) (slog.Handler, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}), f, nil
}

// ParseLevel interprets a level name like "debug" or "WARN", or an offset like "info+2".
// The defaultVal is returned for an empty or unrecognized name.
func ParseLevel(name string, defaultVal slog.Level) slog.Level {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return defaultVal
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return defaultVal
	}
	return level
}
