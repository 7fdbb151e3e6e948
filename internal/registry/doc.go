// Package registry maps kind names to the Go decoders that build typed items
// from canonical records.
//
// The kind key of every input record is looked up here. The four core kinds
// are always present; callers may register decoders for their own kinds.
// A kind with no decoder falls back to item.Generic, so unknown kinds are
// registered and carried through a run without being interpreted.
package registry
