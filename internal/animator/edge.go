package animator

import (
	"context"

	"github.com/swork/digraph-animator/internal/animerr"
	"github.com/swork/digraph-animator/internal/item"
)

// processEdge records the edge and resolves its source, then its target.
func (a *Animator) processEdge(ctx context.Context, e *item.Edge) error {
	if !e.HasTarget() {
		return animerr.New(animerr.ErrMissingTarget, "edge has no target").WithID(e.ID())
	}
	a.edges = append(a.edges, e.ID())
	for _, id := range e.References() {
		if err := a.resolve(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

// processGeneric resolves the references of an item of any other kind. Items
// implementing item.Referencer declare their own; otherwise the ref is used.
func (a *Animator) processGeneric(ctx context.Context, it item.Item) error {
	if r, ok := it.(item.Referencer); ok {
		for _, id := range r.References() {
			if err := a.resolve(ctx, id); err != nil {
				return err
			}
		}
		return nil
	}
	if ref, ok := it.Ref(); ok {
		return a.resolve(ctx, ref)
	}
	return nil
}
