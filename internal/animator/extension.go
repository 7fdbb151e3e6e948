package animator

import (
	"context"

	"github.com/swork/digraph-animator/internal/animerr"
	"github.com/swork/digraph-animator/internal/ctxlog"
	"github.com/swork/digraph-animator/internal/item"
)

// extensionPass validates every Extension before any other kind is looked at.
func (a *Animator) extensionPass(ctx context.Context) error {
	for _, e := range a.work {
		ext, ok := e.it.(*item.Extension)
		if !ok {
			continue
		}
		if err := a.processExtension(ctx, ext); err != nil {
			return animerr.Locate(err, e.index)
		}
	}
	return nil
}

// processExtension checks the declared version against the rule for the
// Extension kind and indexes the extension by name.
func (a *Animator) processExtension(ctx context.Context, ext *item.Extension) error {
	if rng, ok := a.rules.Lookup(item.KindExtension); ok {
		if !ext.HasVersion {
			return animerr.New(animerr.ErrUnsupportedVersion, "extension %q declares no version, %s requires %q",
				ext.Name, item.KindExtension, rng).WithID(ext.ID())
		}
		satisfied, err := a.matcher.Satisfies(ext.Version, rng)
		if err != nil {
			return animerr.New(animerr.ErrUnsupportedVersion, "extension %q version %q", ext.Name, ext.Version).
				WithID(ext.ID()).WithCause(err)
		}
		if !satisfied {
			return animerr.New(animerr.ErrUnsupportedVersion, "extension %q version %q does not satisfy %q",
				ext.Name, ext.Version, rng).WithID(ext.ID())
		}
	}

	if prev, ok := a.extensionNames[ext.Name]; ok {
		return animerr.New(animerr.ErrDuplicateExtensionName, "extension %q already declared by %s", ext.Name, prev).
			WithID(ext.ID())
	}
	a.extensionNames[ext.Name] = ext.ID()

	ctxlog.FromContext(ctx).Debug("Registered extension.", "id", ext.ID().String(), "name", ext.Name, "version", ext.Version)
	return nil
}
