// Package clog provides leveled operational logging for skip-rm.
// This is distinct from user-facing output (see internal/term).
//
// Log levels:
//   - Debug: per-argument filter decisions and compiled patterns
//   - Info: startup details such as the config file in use
//   - Warn: unexpected conditions that don't prevent operation
//   - Error: failures that abort the run
//
// Output destinations:
//   - File: all enabled levels, when log.file is configured
//   - Stderr: all enabled levels without a log file, Warn and Error only
//     when a log file is configured
package clog

import (
	"fmt"
	"strings"
)

// Level represents the severity of a log message.
type Level int

const (
	// LevelDebug is for verbose diagnostic information.
	LevelDebug Level = iota
	// LevelInfo is for normal operational events.
	LevelInfo
	// LevelWarn is for unexpected conditions that don't prevent operation.
	LevelWarn
	// LevelError is for failures that abort the run.
	LevelError
)

// String returns the uppercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a level name (case-insensitive). An empty string yields
// LevelWarn, the quiet default for a wrapper that should print nothing extra.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "", "warn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	default:
		return LevelWarn, fmt.Errorf("unknown log level %q", s)
	}
}
