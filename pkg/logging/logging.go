// Package logging defines the small logger seam the combo box packages use to
// report authoring problems and rejected transitions.
package logging

import (
	"context"
	"log/slog"
)

// Level classifies an event.
type Level string

const (
	LevelDebug Level = "debug"
	LevelWarn  Level = "warn"
)

// Event describes one diagnostic.
type Event struct {
	Level     Level
	Component string
	Message   string
	Args      []any
}

// Logger records diagnostics.
type Logger interface {
	Log(Event)
}

// LoggerFunc adapts a function to Logger.
type LoggerFunc func(Event)

// Log implements Logger.
func (f LoggerFunc) Log(event Event) {
	if f != nil {
		f(event)
	}
}

type nopLogger struct{}

func (nopLogger) Log(Event) {}

// Nop discards every event.
func Nop() Logger { return nopLogger{} }

// OrNop returns l, or a discarding logger when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return nopLogger{}
	}
	return l
}

// Slog forwards events to a slog.Logger; nil uses slog.Default().
func Slog(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return LoggerFunc(func(event Event) {
		level := slog.LevelDebug
		if event.Level == LevelWarn {
			level = slog.LevelWarn
		}
		args := append([]any{"component", event.Component}, event.Args...)
		logger.Log(context.Background(), level, event.Message, args...)
	})
}

// Warn logs a warning for component.
func Warn(l Logger, component, msg string, args ...any) {
	OrNop(l).Log(Event{Level: LevelWarn, Component: component, Message: msg, Args: args})
}

// Debug logs a debug event for component.
func Debug(l Logger, component, msg string, args ...any) {
	OrNop(l).Log(Event{Level: LevelDebug, Component: component, Message: msg, Args: args})
}
