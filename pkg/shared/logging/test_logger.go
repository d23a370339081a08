package logging

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

// Entry is one message captured by TestLogger
type Entry struct {
	Module  string
	Level   Level
	Message string
	Args    []interface{}
}

// String renders the entry the way SimpleLogger would, without colors
func (e Entry) String() string {
	var pairs []string
	for i := 0; i+1 < len(e.Args); i += 2 {
		pairs = append(pairs, fmt.Sprintf("%v=%v", e.Args[i], e.Args[i+1]))
	}
	if len(pairs) == 0 {
		return fmt.Sprintf("[%s] %s: %s", e.Module, e.Level, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %s %s", e.Module, e.Level, e.Message, strings.Join(pairs, " "))
}

type entrySink struct {
	mu      sync.Mutex
	entries []Entry
}

// TestLogger is a logger for tests. It records every message so tests can
// assert on what the pipeline reported, and optionally mirrors to testing.T.
// It is safe for concurrent use.
type TestLogger struct {
	module string
	t      *testing.T
	sink   *entrySink
}

// NewTestLogger creates a new test logger that records but prints nothing.
// Use NewTestLoggerVerbose to see output with -v.
func NewTestLogger() *TestLogger {
	return &TestLogger{
		module: "test",
		sink:   &entrySink{},
	}
}

// NewTestLoggerVerbose creates a test logger that also outputs to testing.T
func NewTestLoggerVerbose(t *testing.T) *TestLogger {
	return &TestLogger{
		module: "test",
		t:      t,
		sink:   &entrySink{},
	}
}

func (l *TestLogger) record(level Level, msg string, args []interface{}) {
	e := Entry{Module: l.module, Level: level, Message: msg, Args: args}
	l.sink.mu.Lock()
	l.sink.entries = append(l.sink.entries, e)
	l.sink.mu.Unlock()
	if l.t != nil {
		l.t.Log(e.String())
	}
}

// Debug logs a debug message
func (l *TestLogger) Debug(msg string, args ...interface{}) { l.record(LevelDebug, msg, args) }

// Info logs an informational message
func (l *TestLogger) Info(msg string, args ...interface{}) { l.record(LevelInfo, msg, args) }

// Warn logs a warning message
func (l *TestLogger) Warn(msg string, args ...interface{}) { l.record(LevelWarn, msg, args) }

// Error logs an error message
func (l *TestLogger) Error(msg string, args ...interface{}) { l.record(LevelError, msg, args) }

// Fatal records a fatal message. It never exits; with a testing.T attached
// it fails the test.
func (l *TestLogger) Fatal(msg string, args ...interface{}) {
	l.record(LevelFatal, msg, args)
	if l.t != nil {
		l.t.Fatalf("[%s] FATAL: %s %v", l.module, msg, args)
	}
}

// WithModule creates a child logger sharing the same recorded entries.
func (l *TestLogger) WithModule(module string) Logger {
	newModule := module
	if l.module != "" {
		newModule = l.module + "/" + module
	}
	return &TestLogger{
		module: newModule,
		t:      l.t,
		sink:   l.sink,
	}
}

// Entries returns a copy of every recorded entry in log order
func (l *TestLogger) Entries() []Entry {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	out := make([]Entry, len(l.sink.entries))
	copy(out, l.sink.entries)
	return out
}

// Messages returns the recorded messages at or above level
func (l *TestLogger) Messages(level Level) []string {
	var out []string
	for _, e := range l.Entries() {
		if e.Level >= level {
			out = append(out, e.Message)
		}
	}
	return out
}

// Contains reports whether any recorded message contains substr
func (l *TestLogger) Contains(substr string) bool {
	for _, e := range l.Entries() {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
