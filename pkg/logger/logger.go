package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// ErrUnknownFormat is returned for a format other than json or text.
var ErrUnknownFormat = errors.New("logger: unknown format")

// Config holds logger configuration.
type Config struct {
	Level  string       `yaml:"level"  env:"DEVPORTAL_LOG_LEVEL"`
	Format string       `yaml:"format" env:"DEVPORTAL_LOG_FORMAT"`
	Sentry SentryConfig `yaml:"sentry"`
}

// New creates a logger writing to w, decorated with the given context extractors.
// Empty level and format default to info and json.
func New(cfg Config, w io.Writer, extractors ...ContextExtractor) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}

	var out slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", FormatJSON:
		out = slog.NewJSONHandler(w, opts)
	case FormatText:
		out = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Format)
	}

	if sentryHandler := newSentryHandler(cfg.Sentry, out); sentryHandler != nil {
		out = newMultiHandler(out, sentryHandler)
	}

	return slog.New(NewLogHandlerDecorator(out, extractors...)), nil
}

// ParseLevel converts a level name (debug, info, warn, error) to a slog.Level.
// An empty name means info.
func ParseLevel(name string) (slog.Level, error) {
	if name == "" {
		return slog.LevelInfo, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("logger: parse level %q: %w", name, err)
	}
	return l, nil
}

// NewNope creates a logger that discards all output.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
