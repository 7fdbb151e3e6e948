package animator

import (
	"context"

	"github.com/swork/digraph-animator/internal/animerr"
	"github.com/swork/digraph-animator/internal/ctxlog"
	"github.com/swork/digraph-animator/internal/ident"
	"github.com/swork/digraph-animator/internal/item"
)

// resolve makes sure id names a registered item, synthesizing an implicit
// node when it does not.
func (a *Animator) resolve(ctx context.Context, id ident.ID) error {
	if a.store.Has(ctx, id) {
		return nil
	}
	return a.ensureNode(ctx, id)
}

// ensureNode synthesizes, registers and processes an implicit node for id.
// It must only be called for an id that is not registered.
func (a *Animator) ensureNode(ctx context.Context, id ident.ID) error {
	if a.store.Has(ctx, id) {
		return animerr.New(animerr.ErrNotMissing, "cannot synthesize a node over a registered item").WithID(id)
	}
	n := item.NewImplicitNode(id)
	if err := a.store.Add(ctx, n); err != nil {
		return err
	}
	a.processNode(ctx, n)
	ctxlog.FromContext(ctx).Debug("Synthesized implicit node.", "id", id.String())
	return nil
}
