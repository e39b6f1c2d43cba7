// Package optio carries the incidental IO plumbing around the parser: a
// basic leveled logger and thin filesystem passthrough wrappers.
package optio

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dzonerzy/go-optmap/optmap"
)

// LogLevel represents the severity of a log message.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarning
	LevelError
)

// String returns the bracketed tag used as the line prefix.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is a basic leveled logger. Messages below the configured level are
// dropped. Safe for concurrent use.
type Logger struct {
	mu         sync.Mutex
	out        io.Writer
	level      LogLevel
	prefix     string
	withTime   bool
	timeFormat string
}

// NewLogger returns a logger writing to out at LevelInfo. A nil out falls
// back to stderr.
func NewLogger(out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{
		out:        out,
		level:      LevelInfo,
		timeFormat: "15:04:05",
	}
}

// WithLevel sets the minimum emitted level and returns the logger for
// chaining.
func (l *Logger) WithLevel(level LogLevel) *Logger {
	l.level = level
	return l
}

// WithPrefix sets a fixed prefix printed after the level tag.
func (l *Logger) WithPrefix(prefix string) *Logger {
	l.prefix = prefix
	return l
}

// WithTime enables a timestamp on every line.
func (l *Logger) WithTime() *Logger {
	l.withTime = true
	return l
}

// Debugf logs at debug level.
func (l *Logger) Debugf(format string, args ...any) { l.log(LevelDebug, format, args...) }

// Infof logs at info level.
func (l *Logger) Infof(format string, args ...any) { l.log(LevelInfo, format, args...) }

// Warnf logs at warning level.
func (l *Logger) Warnf(format string, args ...any) { l.log(LevelWarning, format, args...) }

// Errorf logs at error level.
func (l *Logger) Errorf(format string, args ...any) { l.log(LevelError, format, args...) }

func (l *Logger) log(level LogLevel, format string, args ...any) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	line := "[" + level.String() + "] "
	if l.withTime {
		line = time.Now().Format(l.timeFormat) + " " + line
	}
	if l.prefix != "" {
		line += l.prefix + ": "
	}
	line += fmt.Sprintf(format, args...)
	fmt.Fprintln(l.out, line)
}

// DiagnosticSink adapts the logger into an optmap compile sink, reporting
// non-fatal diagnostics (duplicate triggers) at warning level.
func (l *Logger) DiagnosticSink() optmap.DiagnosticSink {
	return func(d optmap.Diagnostic) {
		l.Warnf("%s: %s", d.Code, d.Message)
	}
}
