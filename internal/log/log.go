// Package log configures the default slog logger with a handler that writes
// colored key=val lines meant for terminals.
package log

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Level is the level the default logger was last Setup with.
var Level = &slog.LevelVar{}

var levelNames = map[string]slog.Level{
	"error": slog.LevelError,
	"warn":  slog.LevelWarn,
	"info":  slog.LevelInfo,
	"debug": slog.LevelDebug,
}

// Setup replaces the default slog logger.
func Setup(level slog.Level, noColor bool) {
	Level.Set(level.Level())
	slog.SetDefault(slog.New(newHandler(os.Stderr, Level.Level(), noColor)))
}

// ParseLevel maps a log level flag value onto a slog level, ignoring case.
func ParseLevel(s string) (slog.Level, error) {
	level, ok := levelNames[strings.ToLower(s)]
	if !ok {
		return slog.LevelInfo, fmt.Errorf("%q is not a valid log level", s)
	}
	return level, nil
}
