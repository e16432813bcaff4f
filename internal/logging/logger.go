// =============================================================================
// Raffle Ticket Generator - Logging
// =============================================================================
//
// Console logging behind a small interface so the engine never writes to
// stdout directly and tests can capture what a run reports.
//
// =============================================================================

package logging

import (
	"fmt"
	"io"
	"os"
)

// Logger is the logging interface used throughout the application.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// Levels in increasing severity.
const (
	LevelDebug = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps a config log_level string to a level constant. Unknown
// strings map to LevelInfo.
func ParseLevel(s string) int {
	switch s {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// ConsoleLogger writes levelled, printf-style messages to a single writer.
type ConsoleLogger struct {
	// MinLevel suppresses messages below this level.
	MinLevel int

	// Out is the destination writer. Defaults to os.Stdout.
	Out io.Writer
}

// NewConsoleLogger returns a ConsoleLogger writing to stdout at the given
// minimum level.
func NewConsoleLogger(minLevel int) *ConsoleLogger {
	return &ConsoleLogger{MinLevel: minLevel, Out: os.Stdout}
}

func (l *ConsoleLogger) log(level int, prefix, msg string, args ...interface{}) {
	if level < l.MinLevel {
		return
	}
	out := l.Out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, prefix+msg+"\n", args...)
}

func (l *ConsoleLogger) Debug(msg string, args ...interface{}) {
	l.log(LevelDebug, "[DEBUG] ", msg, args...)
}

func (l *ConsoleLogger) Info(msg string, args ...interface{}) {
	l.log(LevelInfo, "[INFO] ", msg, args...)
}

func (l *ConsoleLogger) Warn(msg string, args ...interface{}) {
	l.log(LevelWarn, "[WARN] ", msg, args...)
}

func (l *ConsoleLogger) Error(msg string, args ...interface{}) {
	l.log(LevelError, "[ERROR] ", msg, args...)
}

// Nop is a Logger that discards everything. Useful in tests.
type Nop struct{}

func (Nop) Debug(msg string, args ...interface{}) {}
func (Nop) Info(msg string, args ...interface{})  {}
func (Nop) Warn(msg string, args ...interface{})  {}
func (Nop) Error(msg string, args ...interface{}) {}
