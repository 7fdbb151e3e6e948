package app

import (
	"context"
	"io"
	"log/slog"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/swork/digraph-animator/internal/ctxlog"
	"github.com/swork/digraph-animator/internal/registry"
	"github.com/swork/digraph-animator/internal/telemetry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
	tracing  *sdktrace.TracerProvider
}

// NewApp is the constructor for the main application. Rendered output goes
// to outW and logs to logW. Each module may teach the registry extra kinds.
func NewApp(outW, logW io.Writer, cfg *Config, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	reg := registry.New(modules...)
	logger.Debug("Kind registry created.", "kinds", reg.Kinds())

	a := &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
	}
	if cfg.Trace {
		a.tracing = telemetry.NewTracerProvider(logger, slog.LevelDebug)
		logger.Debug("Tracing enabled.")
	}
	return a
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Close flushes and stops the tracer provider, if any.
func (a *App) Close(ctx context.Context) error {
	if a.tracing == nil {
		return nil
	}
	ctx = ctxlog.WithLogger(ctx, a.logger)
	ctxlog.FromContext(ctx).Debug("Shutting down tracer provider.")
	return a.tracing.Shutdown(ctx)
}
