package animator

import (
	"go.opentelemetry.io/otel/trace"

	"github.com/swork/digraph-animator/internal/compat"
	"github.com/swork/digraph-animator/internal/ident"
	"github.com/swork/digraph-animator/internal/itemstore"
	"github.com/swork/digraph-animator/internal/registry"
)

// Option configures an Animator.
type Option func(*Animator)

// WithRegistry sets the kind registry used to decode records. Use it to
// teach a run about extension-defined kinds.
func WithRegistry(r *registry.Registry) Option {
	return func(a *Animator) { a.registry = r }
}

// WithRules replaces the version compatibility rules.
func WithRules(rules compat.Rules) Option {
	return func(a *Animator) { a.rules = rules }
}

// WithMatcher replaces the version comparator.
func WithMatcher(m compat.Matcher) Option {
	return func(a *Animator) { a.matcher = m }
}

// WithExpander installs the container expansion policy.
func WithExpander(e Expander) Option {
	return func(a *Animator) { a.expander = e }
}

// WithTracer records a span for the run and for each pass.
func WithTracer(t trace.Tracer) Option {
	return func(a *Animator) { a.tracer = t }
}

// WithAllocator sets the allocator for synthetic ids.
func WithAllocator(alloc *ident.Allocator) Option {
	return func(a *Animator) { a.alloc = alloc }
}

// WithStore sets the item store. The store must be empty.
func WithStore(s itemstore.Store) Option {
	return func(a *Animator) { a.store = s }
}
