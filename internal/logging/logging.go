// Package logging is the leveled logger used by the starfield command.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level is a log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	levelOff
)

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
		return "OFF"
	}
}

// ParseLevel parses a level name, case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelInfo, fmt.Errorf("logging: unknown level %q", s)
}

// Logger writes timestamped lines at or above its level. Loggers derived
// with With share the parent's output and level.
type Logger struct {
	core   *core
	prefix string
}

type core struct {
	mu     sync.Mutex
	level  Level
	output io.Writer
	now    func() time.Time
}

// New creates a logger writing to stderr.
func New(level Level) *Logger {
	return &Logger{core: &core{level: level, output: os.Stderr, now: time.Now}}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{core: &core{level: levelOff, output: io.Discard, now: time.Now}}
}

// With returns a logger that tags each line with component.
func (l *Logger) With(component string) *Logger {
	p := component
	if l.prefix != "" {
		p = l.prefix + "/" + component
	}
	return &Logger{core: l.core, prefix: p}
}

// SetOutput sets the destination.
func (l *Logger) SetOutput(w io.Writer) {
	l.core.mu.Lock()
	defer l.core.mu.Unlock()
	l.core.output = w
}

// SetLevel sets the minimum level.
func (l *Logger) SetLevel(level Level) {
	l.core.mu.Lock()
	defer l.core.mu.Unlock()
	l.core.level = level
}

// Enabled reports whether level would be written.
func (l *Logger) Enabled(level Level) bool {
	l.core.mu.Lock()
	defer l.core.mu.Unlock()
	return level >= l.core.level
}

// Writer returns an io.Writer that logs each write at level. It lets
// packages that print to a plain writer share this logger.
func (l *Logger) Writer(level Level) io.Writer {
	return writerFunc(func(p []byte) (int, error) {
		l.log(level, "%s", strings.TrimRight(string(p), "\n"))
		return len(p), nil
	})
}

type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }

func (l *Logger) log(level Level, format string, args ...any) {
	c := l.core
	c.mu.Lock()
	defer c.mu.Unlock()

	if level < c.level {
		return
	}

	var b strings.Builder
	b.WriteString(c.now().Format("15:04:05.000"))
	b.WriteString(" [")
	b.WriteString(level.String())
	b.WriteString("] ")
	if l.prefix != "" {
		b.WriteString(l.prefix)
		b.WriteString(": ")
	}
	fmt.Fprintf(&b, format, args...)
	b.WriteByte('\n')

	_, _ = io.WriteString(c.output, b.String())
}

// Debug logs at LevelDebug.
func (l *Logger) Debug(format string, args ...any) { l.log(LevelDebug, format, args...) }

// Info logs at LevelInfo.
func (l *Logger) Info(format string, args ...any) { l.log(LevelInfo, format, args...) }

// Warn logs at LevelWarn.
func (l *Logger) Warn(format string, args ...any) { l.log(LevelWarn, format, args...) }

// Error logs at LevelError.
func (l *Logger) Error(format string, args ...any) { l.log(LevelError, format, args...) }
