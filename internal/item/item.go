// Package item defines the typed items an animation run registers: the
// closed set of core kinds (Extension, Container, Node, Edge) and Generic for
// any other kind.
//
// Items only reference each other by id. Each item can re-encode itself in
// the input schema through DigraphInput.
package item

import (
	"maps"

	"github.com/swork/digraph-animator/internal/ident"
	"github.com/swork/digraph-animator/internal/record"
)

// Core kind names.
const (
	KindExtension = "Extension"
	KindContainer = "Container"
	KindNode      = "Node"
	KindEdge      = "Edge"
)

// Item is a registered record.
type Item interface {
	ID() ident.ID
	Kind() string
	// Ref returns the id the item refers to, if any.
	Ref() (ident.ID, bool)
	// DigraphInput re-encodes the item as a raw input record.
	DigraphInput() record.Raw
}

// Referencer is implemented by items that refer to other items beyond
// their ref. Every id returned must name a registered item by the time the
// item has been processed; ids that name nothing become implicit nodes.
type Referencer interface {
	References() []ident.ID
}

// base carries the canonical envelope shared by every item.
type base struct {
	id   ident.ID
	kind string
	ref  *ident.ID
}

func newBase(c *record.Canonical) base {
	return base{id: c.ID, kind: c.Kind, ref: c.Ref}
}

func (b *base) ID() ident.ID { return b.id }
func (b *base) Kind() string { return b.kind }

func (b *base) Ref() (ident.ID, bool) {
	if b.ref == nil {
		return ident.ID{}, false
	}
	return *b.ref, true
}

// envelope wraps payload under the kind key and hoists id and ref back out
// when they are user values. Synthetic ids are not representable in the
// input and are dropped.
func (b *base) envelope(payload map[string]any) record.Raw {
	raw := record.Raw{b.kind: payload}
	if v, ok := b.id.Value(); ok {
		raw[record.KeyID] = v
	}
	if b.ref != nil {
		if v, ok := b.ref.Value(); ok {
			raw[record.KeyRef] = v
		}
	}
	return raw
}

// Generic is an item of a kind the run does not interpret.
type Generic struct {
	base
	payload map[string]any
}

// NewGeneric wraps a canonical record of any kind.
func NewGeneric(c *record.Canonical) *Generic {
	return &Generic{base: newBase(c), payload: c.Payload}
}

// Payload returns a copy of the item's payload.
func (g *Generic) Payload() map[string]any { return maps.Clone(g.payload) }

func (g *Generic) DigraphInput() record.Raw {
	return g.envelope(maps.Clone(g.payload))
}
