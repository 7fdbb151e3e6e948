package telemetry

import (
	"context"
	"encoding/hex"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// ServiceName is reported as the service.name resource attribute and used
// as the tracer name.
const ServiceName = "digraph-animator"

// LogSpanExporter implements sdktrace.SpanExporter by logging each span.
type LogSpanExporter struct {
	logger *slog.Logger
	level  slog.Level
}

// NewLogSpanExporter creates an exporter that logs spans at level.
func NewLogSpanExporter(logger *slog.Logger, level slog.Level) *LogSpanExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSpanExporter{logger: logger, level: level}
}

// ExportSpans logs every span of the batch. It never fails.
func (e *LogSpanExporter) ExportSpans(ctx context.Context, spans []sdktrace.ReadOnlySpan) error {
	for _, span := range spans {
		sc := span.SpanContext()
		traceID := sc.TraceID()

		args := []any{
			"span", span.Name(),
			"trace_id", hex.EncodeToString(traceID[:]),
			"duration", span.EndTime().Sub(span.StartTime()),
		}
		if span.Status().Code == codes.Error {
			args = append(args, "status", "error", "status_message", span.Status().Description)
		}
		for _, kv := range span.Attributes() {
			args = append(args, string(kv.Key), attributeValue(kv.Value))
		}
		e.logger.Log(ctx, e.level, "Span finished.", args...)
	}
	return nil
}

// Shutdown is a no-op; the logger outlives the exporter.
func (e *LogSpanExporter) Shutdown(ctx context.Context) error {
	return nil
}

func attributeValue(v attribute.Value) any {
	switch v.Type() {
	case attribute.BOOL:
		return v.AsBool()
	case attribute.INT64:
		return v.AsInt64()
	case attribute.FLOAT64:
		return v.AsFloat64()
	case attribute.STRING:
		return v.AsString()
	default:
		return v.Emit()
	}
}

// NewTracerProvider creates a TracerProvider that exports spans to logger as
// soon as they end.
func NewTracerProvider(logger *slog.Logger, level slog.Level) *sdktrace.TracerProvider {
	res := resource.NewSchemaless(attribute.String("service.name", ServiceName))
	return sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(NewLogSpanExporter(logger, level))),
		sdktrace.WithResource(res),
	)
}
