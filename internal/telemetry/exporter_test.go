package telemetry

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

func TestTracerProvider_LogsSpans(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tp := NewTracerProvider(logger, slog.LevelDebug)
	tracer := tp.Tracer(ServiceName)

	_, span := tracer.Start(context.Background(), "pass.nodes")
	span.SetAttributes(attribute.Int("nodes", 3), attribute.String("run_id", "r1"))
	span.End()

	_, failed := tracer.Start(context.Background(), "pass.generic")
	failed.RecordError(errors.New("boom"))
	failed.SetStatus(codes.Error, "boom")
	failed.End()

	require.NoError(t, tp.Shutdown(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "span=pass.nodes")
	assert.Contains(t, out, "nodes=3")
	assert.Contains(t, out, "run_id=r1")
	assert.Contains(t, out, "span=pass.generic")
	assert.Contains(t, out, "status=error")
	assert.Contains(t, out, "status_message=boom")
}

func TestLogSpanExporter_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	tp := NewTracerProvider(logger, slog.LevelDebug)
	_, span := tp.Tracer(ServiceName).Start(context.Background(), "animate")
	span.End()
	require.NoError(t, tp.Shutdown(context.Background()))

	assert.Empty(t, buf.String())
}
