package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

type options struct {
	writer io.Writer
	format string
	level  slog.Leveler
	source bool
}

func defaultOptions() options {
	return options{
		writer: os.Stderr,
		format: FormatText,
		level:  slog.LevelInfo,
		source: true,
	}
}

func (o options) handler() slog.Handler {
	ho := &slog.HandlerOptions{Level: o.level}
	if o.format == FormatJSON {
		return slog.NewJSONHandler(o.writer, ho)
	}
	return slog.NewTextHandler(o.writer, ho)
}

// Option configures a logger built by New or Init.
type Option func(*options)

// WithWriter sets the sink. Nil is ignored.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.writer = w
		}
	}
}

// WithFormat selects "text" or "json" output. Other values are ignored.
func WithFormat(format string) Option {
	return func(o *options) {
		switch f := strings.ToLower(format); f {
		case FormatText, FormatJSON:
			o.format = f
		}
	}
}

// WithLevel sets a fixed minimum level.
func WithLevel(level slog.Level) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithLevelVar binds the minimum level to v so it can change at runtime.
func WithLevelVar(v *slog.LevelVar) Option {
	return func(o *options) {
		if v != nil {
			o.level = v
		}
	}
}

// WithSource toggles the "source" field carrying the caller location.
func WithSource(enabled bool) Option {
	return func(o *options) {
		o.source = enabled
	}
}
