package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/swork/digraph-animator/internal/animator"
	"github.com/swork/digraph-animator/internal/ctxlog"
	"github.com/swork/digraph-animator/internal/item"
	"github.com/swork/digraph-animator/internal/source"
	"github.com/swork/digraph-animator/internal/telemetry"
)

// Run reads the input, animates it and writes the result.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	inFormat, _ := source.ParseFormat(a.config.InputFormat)
	raws, err := source.ReadFile(ctx, a.config.InputPath, inFormat)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	a.logger.Debug("Input loaded.", "path", a.config.InputPath, "records", len(raws))

	opts := []animator.Option{
		animator.WithRules(a.config.Rules),
		animator.WithRegistry(a.registry),
	}
	if a.tracing != nil {
		opts = append(opts, animator.WithTracer(a.tracing.Tracer(telemetry.ServiceName)))
	}

	res, err := animator.Animate(ctx, raws, opts...)
	if err != nil {
		return fmt.Errorf("animation failed: %w", err)
	}
	a.logger.Info("Animation finished.",
		"run_id", res.RunID.String(),
		"items", len(res.Items),
		"nodes", len(res.Nodes),
		"edges", len(res.Edges),
		"extensions", len(res.Extensions),
	)

	if err := a.writeOutput(res); err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// writeOutput writes res to the configured output. A file output is closed
// before returning, and a failed close is reported.
func (a *App) writeOutput(res *animator.Result) (err error) {
	if a.config.OutputPath == "" {
		return a.render(a.outW, res)
	}
	f, err := os.Create(a.config.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()
	return a.render(f, res)
}

func (a *App) render(w io.Writer, res *animator.Result) error {
	if a.config.Summary {
		return writeSummary(w, res)
	}
	outFormat, _ := source.ParseFormat(a.config.OutputFormat)
	return source.Write(w, res.Render(), outFormat)
}

func writeSummary(w io.Writer, res *animator.Result) error {
	implicit := 0
	for _, id := range res.Nodes {
		if n, ok := res.Node(id); ok && n.Implicit() {
			implicit++
		}
	}
	containers, other := 0, 0
	for _, it := range res.Items {
		switch it.Kind() {
		case item.KindContainer:
			containers++
		case item.KindExtension, item.KindNode, item.KindEdge:
		default:
			other++
		}
	}

	_, err := fmt.Fprintf(w, "items: %d\nnodes: %d (%d implicit)\nedges: %d\nextensions: %d\ncontainers: %d\nother: %d\n",
		len(res.Items), len(res.Nodes), implicit, len(res.Edges), len(res.Extensions), containers, other)
	return err
}
