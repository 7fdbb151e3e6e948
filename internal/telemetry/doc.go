// Package telemetry records the spans of an animation run and reports them
// through the structured logger.
//
// The animator only depends on the trace.Tracer interface. When tracing is
// enabled the command wires it to an SDK TracerProvider whose exporter
// writes one log line per finished span, so a run can be profiled pass by
// pass without any collector.
package telemetry
