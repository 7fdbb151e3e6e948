package animator

import (
	"context"

	"github.com/swork/digraph-animator/internal/item"
)

// nodePass processes explicit nodes in working-collection order.
func (a *Animator) nodePass(ctx context.Context) error {
	for _, e := range a.work {
		if n, ok := e.it.(*item.Node); ok {
			a.processNode(ctx, n)
		}
	}
	return nil
}

// processNode marks a registered node as seen. Registration already enforced
// id uniqueness.
func (a *Animator) processNode(_ context.Context, n *item.Node) {
	a.nodes = append(a.nodes, n.ID())
}
