package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"
)

// Level represents log level
type Level int

const (
	// LevelDebug is for debug messages
	LevelDebug Level = iota
	// LevelInfo is for informational messages
	LevelInfo
	// LevelWarn is for warning messages
	LevelWarn
	// LevelError is for error messages
	LevelError
	// LevelFatal is for fatal error messages
	LevelFatal
)

// String returns the string representation of the log level
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
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a string into a Level.
// Unknown values fall back to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	default:
		return LevelInfo
	}
}

// Logger is the interface for logging
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
	WithModule(module string) Logger
}

// SimpleLogger writes "[module] LEVEL: message key=value" lines.
// A "path" argument is pulled out of the key-value list and printed as
// "@<path>" right after the module so artifact paths are easy to scan.
type SimpleLogger struct {
	module    string
	level     Level
	logger    *log.Logger
	isTTY     bool
	useColors bool
}

// NewSimpleLogger creates a SimpleLogger writing to stdout
func NewSimpleLogger(module string, level Level, useColors bool) *SimpleLogger {
	isTTY := checkTTY()
	return &SimpleLogger{
		module:    module,
		level:     level,
		logger:    log.New(os.Stdout, "", log.LstdFlags),
		isTTY:     isTTY,
		useColors: useColors && isTTY,
	}
}

// NewSimpleLoggerWithWriter creates a SimpleLogger writing to w.
// Colors are only honored when stdout is a terminal.
func NewSimpleLoggerWithWriter(module string, level Level, useColors bool, w io.Writer) *SimpleLogger {
	isTTY := checkTTY()
	return &SimpleLogger{
		module:    module,
		level:     level,
		logger:    log.New(w, "", log.LstdFlags),
		isTTY:     isTTY,
		useColors: useColors && isTTY,
	}
}

// checkTTY reports whether stdout is a terminal
func checkTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// formatMessage formats a log message with module and level
func (l *SimpleLogger) formatMessage(level Level, msg string, args ...interface{}) string {
	var path string
	var pairs []string
	for i := 0; i+1 < len(args); i += 2 {
		if key, ok := args[i].(string); ok && key == "path" {
			path = fmt.Sprint(args[i+1])
			continue
		}
		pairs = append(pairs, fmt.Sprintf("%v=%v", args[i], args[i+1]))
	}

	message := msg
	if len(pairs) > 0 {
		message = fmt.Sprintf("%s %s", msg, strings.Join(pairs, " "))
	}

	modulePart := fmt.Sprintf("[%s]", l.module)
	if l.useColors {
		modulePart = colorCyan + modulePart + colorReset
	}
	if path != "" {
		pathPart := "@" + path
		if l.useColors {
			pathPart = colorGray + pathPart + colorReset
		}
		modulePart = modulePart + " " + pathPart
	}

	levelPart := level.String()
	if l.useColors {
		levelPart = l.colorizeLevel(level, levelPart)
	}

	return fmt.Sprintf("%s %s: %s", modulePart, levelPart, message)
}

// colorizeLevel applies color to log level
func (l *SimpleLogger) colorizeLevel(level Level, text string) string {
	switch level {
	case LevelDebug:
		return colorGray + text + colorReset
	case LevelInfo:
		return colorGreen + text + colorReset
	case LevelWarn:
		return colorYellow + text + colorReset
	case LevelError:
		return colorRed + text + colorReset
	case LevelFatal:
		return colorRed + colorBold + text + colorReset
	default:
		return text
	}
}

func (l *SimpleLogger) log(level Level, msg string, args ...interface{}) {
	if level < l.level {
		return
	}

	l.logger.Println(l.formatMessage(level, msg, args...))

	if level == LevelFatal {
		os.Exit(1)
	}
}

// Debug logs a debug message
func (l *SimpleLogger) Debug(msg string, args ...interface{}) {
	l.log(LevelDebug, msg, args...)
}

// Info logs an informational message
func (l *SimpleLogger) Info(msg string, args ...interface{}) {
	l.log(LevelInfo, msg, args...)
}

// Warn logs a warning message
func (l *SimpleLogger) Warn(msg string, args ...interface{}) {
	l.log(LevelWarn, msg, args...)
}

// Error logs an error message
func (l *SimpleLogger) Error(msg string, args ...interface{}) {
	l.log(LevelError, msg, args...)
}

// Fatal logs a fatal error message and exits
func (l *SimpleLogger) Fatal(msg string, args ...interface{}) {
	l.log(LevelFatal, msg, args...)
}

// WithModule returns a child logger whose module is appended to the
// current one with "/" (e.g. "iconforge/pipeline/tsx").
func (l *SimpleLogger) WithModule(module string) Logger {
	newModule := module
	if l.module != "" {
		newModule = l.module + "/" + module
	}
	return &SimpleLogger{
		module:    newModule,
		level:     l.level,
		logger:    l.logger,
		isTTY:     l.isTTY,
		useColors: l.useColors,
	}
}

// Color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorGray   = "\033[90m"
	colorBold   = "\033[1m"
)
