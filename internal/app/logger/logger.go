package logger

import (
	"context"
	"github.com/rs/xid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"io"
	"os"
	"time"
)

func init() {
	// setup global logger
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

type Logger struct {
	zerolog.Logger
}

type Component interface {
	// LoggerComponent returns component name used in component loggers
	LoggerComponent() string
}

// New constructor, replaces the global logger
func New(verbose, pretty bool) Logger {
	logLevel := zerolog.InfoLevel
	if verbose {
		logLevel = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	var out io.Writer = os.Stdout
	if pretty {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()

	return Logger{log.Logger}
}

// Nop returns a disabled logger
func Nop() Logger {
	return Logger{zerolog.Nop()}
}

// Global returns current global logger
func Global() *Logger {
	return &Logger{log.Logger}
}

// Get returns context logger for component
func Get(ctx context.Context, c interface{}) Logger {
	return Ctx(ctx).Component(c)
}

// Ctx creates context logger, falls back to the global one
func Ctx(ctx context.Context) Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return Logger{Logger: *l}
	}
	return Logger{Logger: log.Logger}
}

// Component creates logger for specified component or returns current logger
func (l Logger) Component(c interface{}) Logger {
	switch v := c.(type) {
	case Component:
		return l.WithComponent(v.LoggerComponent())
	case string:
		return l.WithComponent(v)
	}
	return l
}

// WithComponent creates child logger for named component
func (l Logger) WithComponent(name string) Logger {
	return Logger{Logger: l.With().Str("component", name).Logger()}
}

// Operation creates child logger for a single ledger operation, tagged with a fresh id
func (l Logger) Operation(name string) Logger {
	return Logger{Logger: l.With().Str("operation", name).Str("operation_id", xid.New().String()).Logger()}
}
