package registry

import (
	"slices"

	"github.com/swork/digraph-animator/internal/item"
	"github.com/swork/digraph-animator/internal/record"
)

// Decoder builds a typed item from a canonical record of its kind.
type Decoder func(c *record.Canonical) (item.Item, error)

// Module is the interface for packages that contribute kinds to a Registry.
type Module interface {
	Register(r *Registry)
}

// Registry holds the decoders for a single animation run.
type Registry struct {
	decoders map[string]Decoder
}

// New creates a Registry holding the core kinds, then lets each module add
// its own.
func New(modules ...Module) *Registry {
	r := &Registry{decoders: make(map[string]Decoder)}
	r.Register(item.KindExtension, item.DecodeExtension)
	r.Register(item.KindContainer, item.DecodeContainer)
	r.Register(item.KindNode, item.DecodeNode)
	r.Register(item.KindEdge, item.DecodeEdge)
	for _, m := range modules {
		m.Register(r)
	}
	return r
}

// Decode builds the item for c using the decoder registered for its kind,
// or a Generic item when the kind is unknown.
func (r *Registry) Decode(c *record.Canonical) (item.Item, error) {
	if d, ok := r.decoders[c.Kind]; ok {
		return d(c)
	}
	return item.NewGeneric(c), nil
}

// Has reports whether a decoder is registered for kind.
func (r *Registry) Has(kind string) bool {
	_, ok := r.decoders[kind]
	return ok
}

// Kinds returns the registered kind names in sorted order.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.decoders))
	for k := range r.decoders {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}
