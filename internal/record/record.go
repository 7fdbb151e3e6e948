// Package record turns raw annotation records into canonical ones.
//
// A raw record is a decoded JSON or YAML object with exactly one kind key
// (Node, Edge, Extension, Container or any extension-defined kind) whose
// value is the payload object. Either the record or its payload may carry the
// reserved id and ref keys. Canonicalize hoists them onto the envelope and
// returns a fresh payload without them.
package record

import (
	"fmt"
	"maps"
	"sort"

	"github.com/swork/digraph-animator/internal/animerr"
	"github.com/swork/digraph-animator/internal/ident"
)

// Reserved keys, recognized on the record and inside its payload.
const (
	KeyID  = "id"
	KeyRef = "ref"
)

// Raw is an undecoded input record.
type Raw map[string]any

// Canonical is the normalized form of a record.
type Canonical struct {
	ID   ident.ID
	Kind string
	// Ref is nil when the record refers to nothing.
	Ref *ident.ID
	// Payload never contains the reserved keys.
	Payload map[string]any
}

// Canonicalize reshapes raw into a Canonical record. Missing ids are drawn
// from alloc. raw and its payload are not modified.
func Canonicalize(raw Raw, alloc *ident.Allocator) (*Canonical, error) {
	var (
		kind           string
		kindCount      int
		outerID        ident.ID
		hasOuterID     bool
		err            error
		extraKindNames []string
	)

	for key, value := range raw {
		switch key {
		case KeyID:
			outerID, hasOuterID, err = idValue(KeyID, value)
			if err != nil {
				return nil, err
			}
		case KeyRef:
			// Resolved against the payload ref below.
		default:
			kindCount++
			if kindCount == 1 {
				kind = key
			} else {
				extraKindNames = append(extraKindNames, key)
			}
		}
	}

	switch kindCount {
	case 0:
		return nil, animerr.New(animerr.ErrMalformedRecord, "record has no kind key")
	case 1:
	default:
		names := append([]string{kind}, extraKindNames...)
		sort.Strings(names)
		return nil, animerr.New(animerr.ErrMalformedRecord, "record has %d kind keys %q, expected exactly one", kindCount, names)
	}

	inner, ok := raw[kind].(map[string]any)
	if !ok {
		if raw[kind] == nil {
			inner = map[string]any{}
		} else {
			return nil, animerr.New(animerr.ErrMalformedRecord, "%s payload must be an object, got %T", kind, raw[kind])
		}
	}

	innerID, hasInnerID, err := idValue(KeyID, inner[KeyID])
	if err != nil {
		return nil, err
	}

	c := &Canonical{Kind: kind}
	switch {
	case hasInnerID && hasOuterID:
		return nil, animerr.New(animerr.ErrConflictingIdentifier, "%s record has id %s and payload id %s", kind, outerID, innerID)
	case hasInnerID:
		c.ID = innerID
	case hasOuterID:
		c.ID = outerID
	default:
		c.ID = alloc.Next()
	}

	// A non-null payload ref overrides the outer one, even when it is empty.
	refRaw := raw[KeyRef]
	if v := inner[KeyRef]; v != nil {
		refRaw = v
	}
	ref, hasRef, err := refValue(refRaw)
	if err != nil {
		return nil, err
	}
	if hasRef {
		c.Ref = &ref
	}

	c.Payload = maps.Clone(inner)
	delete(c.Payload, KeyID)
	delete(c.Payload, KeyRef)

	return c, nil
}

// Raw re-wraps c into raw shape: id and ref on the record, payload under the
// kind key. Canonicalize(c.Raw(), alloc) reproduces c without drawing from
// alloc.
func (c *Canonical) Raw() Raw {
	raw := Raw{
		KeyID:  c.ID,
		c.Kind: maps.Clone(c.Payload),
	}
	if c.Ref != nil {
		raw[KeyRef] = *c.Ref
	}
	return raw
}

func idValue(key string, v any) (ident.ID, bool, error) {
	id, ok, err := ident.FromValue(v)
	if err != nil {
		return ident.ID{}, false, animerr.New(animerr.ErrMalformedRecord, "invalid %s", key).WithCause(err)
	}
	return id, ok, nil
}

// refValue treats an empty string ref like an absent one.
func refValue(v any) (ident.ID, bool, error) {
	if s, isString := v.(string); isString && s == "" {
		return ident.ID{}, false, nil
	}
	return idValue(KeyRef, v)
}

// String gives a compact description for logs.
func (c *Canonical) String() string {
	if c.Ref != nil {
		return fmt.Sprintf("%s %s -> %s", c.Kind, c.ID, c.Ref)
	}
	return fmt.Sprintf("%s %s", c.Kind, c.ID)
}
