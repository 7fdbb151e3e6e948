package animator

import (
	"github.com/google/uuid"

	"github.com/swork/digraph-animator/internal/ident"
	"github.com/swork/digraph-animator/internal/item"
	"github.com/swork/digraph-animator/internal/record"
)

// Result is the completed model of a successful run.
type Result struct {
	// RunID identifies the run that produced the result.
	RunID uuid.UUID
	// Items holds every registered item in registration order.
	Items []item.Item
	// Nodes holds node ids, explicit and implicit, in the order they were
	// processed.
	Nodes []ident.ID
	// Edges holds edge ids in the order they were processed.
	Edges []ident.ID
	// Extensions maps extension names to extension ids.
	Extensions map[string]ident.ID

	index map[ident.ID]item.Item
}

// Lookup returns the item registered under id.
func (r *Result) Lookup(id ident.ID) (item.Item, bool) {
	it, ok := r.index[id]
	return it, ok
}

// Node returns the node registered under id.
func (r *Result) Node(id ident.ID) (*item.Node, bool) {
	n, ok := r.index[id].(*item.Node)
	return n, ok
}

// Edge returns the edge registered under id.
func (r *Result) Edge(id ident.ID) (*item.Edge, bool) {
	e, ok := r.index[id].(*item.Edge)
	return e, ok
}

// Render re-encodes every item in the input schema, in registration order.
func (r *Result) Render() []record.Raw {
	out := make([]record.Raw, 0, len(r.Items))
	for _, it := range r.Items {
		out = append(out, it.DigraphInput())
	}
	return out
}
