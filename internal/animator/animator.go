package animator

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/swork/digraph-animator/internal/animerr"
	"github.com/swork/digraph-animator/internal/compat"
	"github.com/swork/digraph-animator/internal/ctxlog"
	"github.com/swork/digraph-animator/internal/ident"
	"github.com/swork/digraph-animator/internal/inmemoryitems"
	"github.com/swork/digraph-animator/internal/item"
	"github.com/swork/digraph-animator/internal/itemstore"
	"github.com/swork/digraph-animator/internal/record"
	"github.com/swork/digraph-animator/internal/registry"
)

// ErrAlreadyRan is returned when Animate is called on an Animator that has
// already started a run.
var ErrAlreadyRan = errors.New("animator has already run")

// Animator owns the state of one animation run.
type Animator struct {
	registry *registry.Registry
	rules    compat.Rules
	matcher  compat.Matcher
	expander Expander
	tracer   trace.Tracer
	alloc    *ident.Allocator
	store    itemstore.Store

	started        bool
	state          State
	work           []entry
	extensionNames map[string]ident.ID
	nodes          []ident.ID
	edges          []ident.ID
}

// entry is one registered record of the working collection, with its input
// position for error reporting.
type entry struct {
	it    item.Item
	index int
}

// New creates an Animator ready for a single run.
func New(opts ...Option) *Animator {
	a := &Animator{
		registry:       registry.New(),
		rules:          compat.DefaultRules(),
		matcher:        compat.SemverMatcher{},
		expander:       PassThrough{},
		tracer:         noop.NewTracerProvider().Tracer("digraph-animator"),
		alloc:          ident.NewAllocator(),
		store:          inmemoryitems.New(),
		extensionNames: make(map[string]ident.ID),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Animate runs a fresh Animator configured with opts over raws.
func Animate(ctx context.Context, raws []record.Raw, opts ...Option) (*Result, error) {
	return New(opts...).Animate(ctx, raws)
}

// State reports how far the run has progressed. After a failed run it is the
// last state fully reached.
func (a *Animator) State() State {
	return a.state
}

// Animate performs the run. It can be called once per Animator.
func (a *Animator) Animate(ctx context.Context, raws []record.Raw) (*Result, error) {
	if a.started {
		return nil, ErrAlreadyRan
	}
	a.started = true

	ctx, logger := ctxlog.With(ctx, "run_id", a.alloc.Run().String())

	ctx, span := a.tracer.Start(ctx, "animate", trace.WithAttributes(
		attribute.String("run_id", a.alloc.Run().String()),
		attribute.Int("records", len(raws)),
	))
	defer span.End()

	logger.Debug("Animation run started.", "records", len(raws))

	passes := []struct {
		name string
		next State
		fn   func(context.Context) error
	}{
		{"canonicalize", Canonicalized, func(ctx context.Context) error { return a.canonicalizeAll(ctx, raws) }},
		{"extensions", ExtensionsProcessed, a.extensionPass},
		{"containers", ContainersExpanded, a.containerPass},
		{"nodes", NodesProcessed, a.nodePass},
		{"generic", FullyProcessed, a.genericPass},
	}
	for _, p := range passes {
		if err := a.runPass(ctx, p.name, p.next, p.fn); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			logger.Debug("Animation run failed.", "pass", p.name, "error", err)
			return nil, err
		}
	}

	result := a.result(ctx)
	span.SetAttributes(
		attribute.Int("items", len(result.Items)),
		attribute.Int("nodes", len(result.Nodes)),
		attribute.Int("edges", len(result.Edges)),
	)
	logger.Debug("Animation run complete.",
		"items", len(result.Items),
		"nodes", len(result.Nodes),
		"edges", len(result.Edges),
		"extensions", len(result.Extensions),
	)
	return result, nil
}

func (a *Animator) runPass(ctx context.Context, name string, next State, fn func(context.Context) error) error {
	ctx, span := a.tracer.Start(ctx, "pass."+name)
	defer span.End()

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	a.state = next
	ctxlog.FromContext(ctx).Debug("Pass complete.", "pass", name, "state", next.String(), "items", a.store.Len(ctx))
	return nil
}

// canonicalizeAll normalizes and registers every input record, in order.
func (a *Animator) canonicalizeAll(ctx context.Context, raws []record.Raw) error {
	a.work = make([]entry, 0, len(raws))
	for i, raw := range raws {
		it, err := a.register(ctx, raw, i)
		if err != nil {
			return err
		}
		a.work = append(a.work, entry{it: it, index: i})
	}
	return nil
}

// register canonicalizes raw, decodes it into a typed item and adds it to
// the store.
func (a *Animator) register(ctx context.Context, raw record.Raw, index int) (item.Item, error) {
	c, err := record.Canonicalize(raw, a.alloc)
	if err != nil {
		return nil, animerr.Locate(err, index)
	}
	it, err := a.registry.Decode(c)
	if err != nil {
		return nil, animerr.Locate(err, index)
	}
	if err := a.store.Add(ctx, it); err != nil {
		return nil, animerr.Locate(err, index)
	}
	return it, nil
}

// genericPass processes every record no earlier pass claimed: edges, and
// items of any other kind. A node's own ref is resolved here too.
func (a *Animator) genericPass(ctx context.Context) error {
	for _, e := range a.work {
		var err error
		switch it := e.it.(type) {
		case *item.Extension, *item.Container:
			continue
		case *item.Node:
			if ref, ok := it.Ref(); ok {
				err = a.resolve(ctx, ref)
			}
		case *item.Edge:
			err = a.processEdge(ctx, it)
		default:
			err = a.processGeneric(ctx, it)
		}
		if err != nil {
			return animerr.Locate(err, e.index)
		}
	}
	return nil
}

func (a *Animator) result(ctx context.Context) *Result {
	items := a.store.All(ctx)
	index := make(map[ident.ID]item.Item, len(items))
	for _, it := range items {
		index[it.ID()] = it
	}
	extensions := make(map[string]ident.ID, len(a.extensionNames))
	for name, id := range a.extensionNames {
		extensions[name] = id
	}
	return &Result{
		RunID:      a.alloc.Run(),
		Items:      items,
		Nodes:      append([]ident.ID(nil), a.nodes...),
		Edges:      append([]ident.ID(nil), a.edges...),
		Extensions: extensions,
		index:      index,
	}
}

func (a *Animator) String() string {
	return fmt.Sprintf("animator(run=%s, state=%s)", a.alloc.Run(), a.state)
}
