package logger

import (
	"io"
	"log/slog"
	"os"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for production log aggregation.
	FormatJSON Format = "json"
	// FormatText outputs human-readable logs for development.
	FormatText Format = "text"
)

type factoryConfig struct {
	level  slog.Level
	format Format
	output io.Writer
	attrs  []slog.Attr
}

// Option configures logger creation.
type Option func(*factoryConfig)

// WithLevel sets the minimum level the logger records.
func WithLevel(l slog.Level) Option {
	return func(c *factoryConfig) { c.level = l }
}

// WithJSONFormatter selects JSON output.
func WithJSONFormatter() Option {
	return func(c *factoryConfig) { c.format = FormatJSON }
}

// WithTextFormatter selects human-readable text output.
func WithTextFormatter() Option {
	return func(c *factoryConfig) { c.format = FormatText }
}

// WithOutput sets a custom output destination. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(c *factoryConfig) {
		if w != nil {
			c.output = w
		}
	}
}

// WithAttr adds static attributes to every record the logger emits.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *factoryConfig) {
		c.attrs = append(c.attrs, attrs...)
	}
}

// New creates a *slog.Logger from the provided options. Defaults: JSON format,
// info level, stdout.
func New(opts ...Option) *slog.Logger {
	cfg := &factoryConfig{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}

	var handler slog.Handler
	switch cfg.format {
	case FormatText:
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	default:
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}

	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	return slog.New(handler)
}
