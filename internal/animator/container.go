package animator

import (
	"context"
	"fmt"

	"github.com/swork/digraph-animator/internal/animerr"
	"github.com/swork/digraph-animator/internal/ctxlog"
	"github.com/swork/digraph-animator/internal/item"
	"github.com/swork/digraph-animator/internal/record"
)

// Expander turns a Container into the raw records it stands for.
//
// The returned records are canonicalized and registered like input records
// and are seen by the Node and generic passes. They may not be Extensions or
// Containers. The container itself stays registered either way.
type Expander interface {
	Expand(ctx context.Context, c *item.Container) ([]record.Raw, error)
}

// ExpanderFunc adapts a function to the Expander interface.
type ExpanderFunc func(ctx context.Context, c *item.Container) ([]record.Raw, error)

func (f ExpanderFunc) Expand(ctx context.Context, c *item.Container) ([]record.Raw, error) {
	return f(ctx, c)
}

// PassThrough leaves containers unexpanded.
type PassThrough struct{}

func (PassThrough) Expand(context.Context, *item.Container) ([]record.Raw, error) {
	return nil, nil
}

// containerPass expands every container of the working collection. Records
// produced by an expansion are appended after the input records, in the
// order of their containers.
func (a *Animator) containerPass(ctx context.Context) error {
	n := len(a.work)
	for i := 0; i < n; i++ {
		e := a.work[i]
		c, ok := e.it.(*item.Container)
		if !ok {
			continue
		}
		raws, err := a.expander.Expand(ctx, c)
		if err != nil {
			return animerr.Locate(fmt.Errorf("expanding container %s: %w", c.ID(), err), e.index)
		}
		for _, raw := range raws {
			it, err := a.register(ctx, raw, e.index)
			if err != nil {
				return err
			}
			switch it.(type) {
			case *item.Extension, *item.Container:
				return animerr.New(animerr.ErrMalformedRecord, "container %s expanded into a %s record", c.ID(), it.Kind()).
					WithIndex(e.index).WithID(it.ID())
			}
			a.work = append(a.work, entry{it: it, index: e.index})
		}
		if len(raws) > 0 {
			ctxlog.FromContext(ctx).Debug("Expanded container.", "id", c.ID().String(), "records", len(raws))
		}
	}
	return nil
}
