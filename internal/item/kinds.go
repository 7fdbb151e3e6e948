package item

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"

	"github.com/swork/digraph-animator/internal/animerr"
	"github.com/swork/digraph-animator/internal/ident"
	"github.com/swork/digraph-animator/internal/record"
)

// KeyName is the payload key holding an extension's name and an edge's
// target.
const KeyName = ""

// KeyVersion is the payload key holding an extension's declared version.
const KeyVersion = "version"

// KeyDirected is the payload key holding an edge's direction flag.
const KeyDirected = "directed"

// Extension declares a named schema extension.
type Extension struct {
	base
	// Name is the extension name, empty when the payload omits it.
	Name string
	// Version is the declared version, empty when HasVersion is false.
	Version    string
	HasVersion bool
}

// DecodeExtension builds an Extension from its canonical record.
func DecodeExtension(c *record.Canonical) (Item, error) {
	e := &Extension{base: newBase(c)}

	switch v := c.Payload[KeyName].(type) {
	case nil:
	case string:
		e.Name = v
	default:
		return nil, animerr.New(animerr.ErrMalformedRecord, "extension name must be a string, got %T", v).WithID(c.ID)
	}

	switch v := c.Payload[KeyVersion].(type) {
	case nil:
	case string:
		e.Version, e.HasVersion = v, true
	case json.Number:
		e.Version, e.HasVersion = v.String(), true
	case int, int64, uint64, float64:
		e.Version, e.HasVersion = fmt.Sprint(v), true
	default:
		return nil, animerr.New(animerr.ErrMalformedRecord, "extension version must be a string, got %T", v).WithID(c.ID)
	}
	return e, nil
}

func (e *Extension) DigraphInput() record.Raw {
	payload := map[string]any{KeyName: e.Name}
	if e.HasVersion {
		payload[KeyVersion] = e.Version
	}
	return e.envelope(payload)
}

// Container is a structural item expanded into other records before nodes
// and edges are processed.
type Container struct {
	base
	payload map[string]any
}

// DecodeContainer builds a Container from its canonical record.
func DecodeContainer(c *record.Canonical) (Item, error) {
	return &Container{base: newBase(c), payload: c.Payload}, nil
}

// Payload returns a copy of the container's payload.
func (c *Container) Payload() map[string]any { return maps.Clone(c.payload) }

func (c *Container) DigraphInput() record.Raw {
	return c.envelope(maps.Clone(c.payload))
}

// Node is a graph vertex, declared in the input or synthesized when first
// referenced.
type Node struct {
	base
	payload  map[string]any
	implicit bool
}

// DecodeNode builds an explicit Node from its canonical record.
func DecodeNode(c *record.Canonical) (Item, error) {
	return &Node{base: newBase(c), payload: c.Payload}, nil
}

// NewImplicitNode synthesizes a Node for an id that was referenced but never
// declared.
func NewImplicitNode(id ident.ID) *Node {
	return &Node{
		base:     base{id: id, kind: KindNode},
		payload:  map[string]any{},
		implicit: true,
	}
}

// Implicit reports whether the node was synthesized.
func (n *Node) Implicit() bool { return n.implicit }

// Payload returns a copy of the node's payload.
func (n *Node) Payload() map[string]any { return maps.Clone(n.payload) }

func (n *Node) DigraphInput() record.Raw {
	return n.envelope(maps.Clone(n.payload))
}

// Edge connects its source (the record's ref) to its target.
type Edge struct {
	base
	// Target is the zero ID when the payload names no target.
	Target   ident.ID
	Directed bool
}

// DecodeEdge builds an Edge from its canonical record. The source must be
// present. A missing target is reported when the edge is processed, so that
// earlier passes still run over the whole input.
func DecodeEdge(c *record.Canonical) (Item, error) {
	if c.Ref == nil {
		return nil, animerr.New(animerr.ErrMissingSource, "edge has no ref").WithID(c.ID)
	}
	target, _, err := ident.FromValue(c.Payload[KeyName])
	if err != nil {
		return nil, animerr.New(animerr.ErrMalformedRecord, "invalid edge target").WithID(c.ID).WithCause(err)
	}
	return &Edge{
		base:     newBase(c),
		Target:   target,
		Directed: Truthy(c.Payload[KeyDirected]),
	}, nil
}

// Source returns the edge's source node id.
func (e *Edge) Source() ident.ID { return *e.ref }

// HasTarget reports whether the payload named a target.
func (e *Edge) HasTarget() bool { return e.Target.IsValid() }

// References returns the source and, when present, the target.
func (e *Edge) References() []ident.ID {
	if !e.HasTarget() {
		return []ident.ID{e.Source()}
	}
	return []ident.ID{e.Source(), e.Target}
}

func (e *Edge) DigraphInput() record.Raw {
	payload := map[string]any{KeyDirected: e.Directed}
	if target, ok := e.Target.Value(); ok {
		payload[KeyName] = target
	}
	return e.envelope(payload)
}

// Truthy applies JavaScript truthiness to a decoded value: nil, false, zero,
// NaN and the empty string are false, everything else is true.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		return err != nil || (f != 0 && !math.IsNaN(f))
	case int:
		return t != 0
	case int64:
		return t != 0
	case uint64:
		return t != 0
	case float64:
		return t != 0 && !math.IsNaN(t)
	default:
		return true
	}
}
