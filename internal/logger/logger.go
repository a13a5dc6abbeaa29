// Package logger wraps zerolog for diagnostics written to stderr.
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.
type Logger struct {
	zlog zerolog.Logger
}

// Config holds logger configuration.
type Config struct {
	Level  string // debug, info, warn, error, disabled
	Format string // console, json
	Output io.Writer
}

// DefaultConfig logs warnings and above to stderr in console form.
func DefaultConfig() *Config {
	return &Config{
		Level:  "warn",
		Format: "console",
		Output: os.Stderr,
	}
}

// New creates a logger from cfg. A nil cfg uses DefaultConfig.
func New(cfg *Config) *Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	if cfg.Format == "json" {
		zlog := zerolog.New(out).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
		return &Logger{zlog: zlog}
	}
	cw := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.TimeOnly,
		NoColor:    true,
	}
	zlog := zerolog.New(cw).Level(ParseLevel(cfg.Level)).With().Timestamp().Logger()
	return &Logger{zlog: zlog}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zlog: zerolog.Nop()}
}

// WithContext returns a copy of ctx carrying l.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.zlog.WithContext(ctx)
}

// FromContext returns the logger stored in ctx, or a disabled logger.
func FromContext(ctx context.Context) *Logger {
	return &Logger{zlog: *zerolog.Ctx(ctx)}
}

// With creates a child logger with additional fields.
func (l *Logger) With() *Context {
	return &Context{ctx: l.zlog.With()}
}

// Context wraps zerolog.Context for field chaining.
type Context struct {
	ctx zerolog.Context
}

func (c *Context) Str(key, val string) *Context {
	c.ctx = c.ctx.Str(key, val)
	return c
}

func (c *Context) Int(key string, val int) *Context {
	c.ctx = c.ctx.Int(key, val)
	return c
}

func (c *Context) Logger() *Logger {
	return &Logger{zlog: c.ctx.Logger()}
}

// Debug starts a debug event.
func (l *Logger) Debug() *zerolog.Event { return l.zlog.Debug() }

// Info starts an info event.
func (l *Logger) Info() *zerolog.Event { return l.zlog.Info() }

// Warn starts a warn event.
func (l *Logger) Warn() *zerolog.Event { return l.zlog.Warn() }

// Error starts an error event.
func (l *Logger) Error() *zerolog.Event { return l.zlog.Error() }

// Levels lists the level names accepted by ParseLevel.
func Levels() []string {
	return []string{"debug", "info", "warn", "error", "disabled"}
}

// ParseLevel maps a level name to a zerolog level. Unknown names map to warn.
func ParseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}
