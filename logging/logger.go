// Package logging provides a tiny abstraction over slog so downstream code can
// depend on a minimal interface (Logger) while allowing users to plug any
// structured logger. It also offers a richer CouncilLogger with contextual
// helpers (component, discussion) and a domain helper for agent calls.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"
)

// LogLevel is a thin enum for user friendly level configuration decoupled from slog.
type LogLevel int

const (
	// LogLevelDebug is the debug logging level.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is the informational logging level.
	LogLevelInfo
	// LogLevelWarn is the warning logging level.
	LogLevelWarn
	// LogLevelError is the error logging level.
	LogLevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a case-insensitive level name into a LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LogLevelDebug, nil
	case "", "info":
		return LogLevelInfo, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	default:
		return LogLevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Logger defines the minimal logging interface used across the council.
// Arguments after msg are slog style key/value pairs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

// CouncilLogger wraps slog.Logger adding contextual cloning helpers and
// domain convenience methods. It is cheap to copy via the With* methods.
type CouncilLogger struct {
	logger       *slog.Logger
	level        LogLevel
	attrs        []slog.Attr
	component    string
	discussionID string
}

// LoggerConfig configures construction of a CouncilLogger.
type LoggerConfig struct {
	Level     LogLevel
	Format    string // json or text
	Output    io.Writer
	AddSource bool
	Component string
}

// DefaultLoggerConfig returns a baseline JSON info level configuration.
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{Level: LogLevelInfo, Format: "json", Output: os.Stdout}
}

// NewLogger builds a CouncilLogger from a config (or defaults if nil).
func NewLogger(cfg *LoggerConfig) *CouncilLogger {
	if cfg == nil {
		cfg = DefaultLoggerConfig()
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	opts := &slog.HandlerOptions{Level: slogLevel(cfg.Level), AddSource: cfg.AddSource}
	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(cfg.Output, opts)
	} else {
		handler = slog.NewJSONHandler(cfg.Output, opts)
	}
	return &CouncilLogger{logger: slog.New(handler), level: cfg.Level, component: cfg.Component}
}

// NewSlogLogger creates a new CouncilLogger writing to stdout.
func NewSlogLogger(level LogLevel, format string, addSource bool) *CouncilLogger {
	cfg := DefaultLoggerConfig()
	cfg.Level = level
	if format != "" {
		cfg.Format = format
	}
	cfg.AddSource = addSource
	return NewLogger(cfg)
}

func slogLevel(l LogLevel) slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *CouncilLogger) clone() *CouncilLogger {
	nl := *l
	nl.attrs = make([]slog.Attr, len(l.attrs))
	copy(nl.attrs, l.attrs)
	return &nl
}

// With implements Logger; args are slog style key/value pairs.
func (l *CouncilLogger) With(args ...any) Logger {
	nl := l.clone()
	r := slog.NewRecord(time.Time{}, slog.LevelInfo, "", 0)
	r.Add(args...)
	r.Attrs(func(a slog.Attr) bool {
		nl.attrs = append(nl.attrs, a)
		return true
	})
	return nl
}

// WithComponent sets the logical component (server, orchestrator, agent, ...).
func (l *CouncilLogger) WithComponent(c string) *CouncilLogger {
	nl := l.clone()
	nl.component = c
	return nl
}

// WithDiscussion attaches a discussion identifier to every entry.
func (l *CouncilLogger) WithDiscussion(id string) *CouncilLogger {
	nl := l.clone()
	nl.discussionID = id
	return nl
}

func (l *CouncilLogger) buildAttrs() []slog.Attr {
	attrs := make([]slog.Attr, 0, len(l.attrs)+2)
	if l.component != "" {
		attrs = append(attrs, slog.String("component", l.component))
	}
	if l.discussionID != "" {
		attrs = append(attrs, slog.String("discussion_id", l.discussionID))
	}
	return append(attrs, l.attrs...)
}

func (l *CouncilLogger) log(level slog.Level, allowed bool, msg string, args ...any) {
	if !allowed {
		return
	}
	r := slog.NewRecord(time.Now(), level, msg, 0)
	r.AddAttrs(l.buildAttrs()...)
	r.Add(args...)
	_ = l.logger.Handler().Handle(context.Background(), r)
}

// Debug logs at debug level.
func (l *CouncilLogger) Debug(msg string, args ...any) {
	l.log(slog.LevelDebug, l.level <= LogLevelDebug, msg, args...)
}

// Info logs at info level.
func (l *CouncilLogger) Info(msg string, args ...any) {
	l.log(slog.LevelInfo, l.level <= LogLevelInfo, msg, args...)
}

// Warn logs at warn level.
func (l *CouncilLogger) Warn(msg string, args ...any) {
	l.log(slog.LevelWarn, l.level <= LogLevelWarn, msg, args...)
}

// Error logs at error level.
func (l *CouncilLogger) Error(msg string, args ...any) {
	l.log(slog.LevelError, l.level <= LogLevelError, msg, args...)
}

// ErrorWithStack logs an error plus a runtime stack snapshot.
func (l *CouncilLogger) ErrorWithStack(err error, msg string, args ...any) {
	if l.level > LogLevelError {
		return
	}
	l.log(slog.LevelError, true, msg, append(args, stackArgs(err)...)...)
}

// StartTimer returns a closure that logs the elapsed duration when invoked.
func (l *CouncilLogger) StartTimer(op string, args ...any) func() {
	start := time.Now()
	return func() {
		l.Info("operation completed", append([]any{"operation", op, "duration", time.Since(start)}, args...)...)
	}
}

func stackArgs(err error) []any {
	stack := make([]byte, 4096)
	n := runtime.Stack(stack, false)
	return []any{
		"error", err.Error(),
		"error_type", fmt.Sprintf("%T", err),
		"stack_trace", string(stack[:n]),
	}
}

// WithDiscussion tags every entry of l with a discussion id.
func WithDiscussion(l Logger, id string) Logger {
	if cl, ok := l.(*CouncilLogger); ok {
		return cl.WithDiscussion(id)
	}
	return l.With("discussion_id", id)
}

// ErrorWithStack logs err together with the current goroutine's stack on any Logger.
func ErrorWithStack(l Logger, err error, msg string, args ...any) {
	if cl, ok := l.(*CouncilLogger); ok {
		cl.ErrorWithStack(err, msg, args...)
		return
	}
	l.Error(msg, append(args, stackArgs(err)...)...)
}

// StartTimer starts timing op on any Logger; call the result when op is done.
func StartTimer(l Logger, op string, args ...any) func() {
	if cl, ok := l.(*CouncilLogger); ok {
		return cl.StartTimer(op, args...)
	}
	start := time.Now()
	return func() {
		l.Info("operation completed", append([]any{"operation", op, "duration", time.Since(start)}, args...)...)
	}
}

// LogAgentCall records backend call latency, token usage and outcome on any Logger.
func LogAgentCall(l Logger, agent, model string, tokens int, dur time.Duration, err error) {
	args := []any{"agent", agent, "model", model, "token_count", tokens, "duration", dur, "success", err == nil}
	if err != nil {
		l.Warn("agent call failed", append(args, "error", err.Error())...)
		return
	}
	l.Debug("agent call completed", args...)
}

// NoOpLogger discards all log messages. Useful for testing or when logging is disabled.
type NoOpLogger struct{}

// Debug logs a debug message.
func (NoOpLogger) Debug(string, ...any) {}

// Info logs an informational message.
func (NoOpLogger) Info(string, ...any) {}

// Warn logs a warning message.
func (NoOpLogger) Warn(string, ...any) {}

// Error logs an error message.
func (NoOpLogger) Error(string, ...any) {}

// With returns the receiver.
func (n NoOpLogger) With(...any) Logger { return n }
