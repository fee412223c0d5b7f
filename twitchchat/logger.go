package twitchchat

import (
	"fmt"
	"log"
	"os"
)

// Logger is a minimal logging interface accepted by the runner.
type Logger interface {
	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

// noopLogger discards all logs.
type noopLogger struct{}

func (noopLogger) Debug(string, map[string]any) {}
func (noopLogger) Info(string, map[string]any)  {}
func (noopLogger) Warn(string, map[string]any)  {}
func (noopLogger) Error(string, map[string]any) {}

// StdLogger adapts the standard library's log.Logger to the Logger
// interface, for callers who don't already have a structured logger wired
// up.
type StdLogger struct {
	*log.Logger
}

// NewStdLogger returns a Logger that writes to stderr with a level prefix.
func NewStdLogger() StdLogger {
	return StdLogger{Logger: log.New(os.Stderr, "", log.LstdFlags)}
}

func (l StdLogger) Debug(msg string, fields map[string]any) { l.logf("DEBUG", msg, fields) }
func (l StdLogger) Info(msg string, fields map[string]any)  { l.logf("INFO", msg, fields) }
func (l StdLogger) Warn(msg string, fields map[string]any)  { l.logf("WARN", msg, fields) }
func (l StdLogger) Error(msg string, fields map[string]any) { l.logf("ERROR", msg, fields) }

func (l StdLogger) logf(level, msg string, fields map[string]any) {
	if len(fields) == 0 {
		l.Printf("[%s] %s", level, msg)
		return
	}
	l.Printf("[%s] %s %s", level, msg, fmt.Sprint(fields))
}
