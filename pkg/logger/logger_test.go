package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devportal/pkg/logger"
)

type visitorKey struct{}

func visitorExtractor(ctx context.Context) (slog.Attr, bool) {
	if v, ok := ctx.Value(visitorKey{}).(string); ok {
		return slog.String("visitor_id", v), true
	}
	return slog.Attr{}, false
}

func TestNew_JSONWithExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.New(logger.Config{}, &buf, visitorExtractor, nil)
	require.NoError(t, err)

	ctx := context.WithValue(context.Background(), visitorKey{}, "v-1")
	log.InfoContext(ctx, "session mutation", slog.String("type", "LOGIN"))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "session mutation", rec["msg"])
	require.Equal(t, "LOGIN", rec["type"])
	require.Equal(t, "v-1", rec["visitor_id"])
}

func TestNew_TextAndLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.New(logger.Config{Level: "warn", Format: "text"}, &buf)
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "msg=shown")
}

func TestNew_WithAttrsKeepsExtractors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.New(logger.Config{}, &buf, visitorExtractor)
	require.NoError(t, err)

	ctx := context.WithValue(context.Background(), visitorKey{}, "v-2")
	log.With("component", "portal").WithGroup("req").InfoContext(ctx, "x")

	require.True(t, strings.Contains(buf.String(), `"visitor_id":"v-2"`), buf.String())
	require.Contains(t, buf.String(), `"component":"portal"`)
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := logger.New(logger.Config{Format: "xml"}, &bytes.Buffer{})
	require.ErrorIs(t, err, logger.ErrUnknownFormat)

	_, err = logger.New(logger.Config{Level: "loud"}, &bytes.Buffer{})
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := logger.ParseLevel(tt.in)
		require.NoError(t, err)
		require.Equal(t, tt.want, got, tt.in)
	}
}

func TestFlushSentryWithoutInit(t *testing.T) {
	t.Parallel()

	require.NoError(t, logger.FlushSentry(0)(context.Background()))
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() { logger.NewNope().Error("dropped") })
}
