package ident

import "github.com/google/uuid"

// Allocator hands out synthetic ids for a single run. It is not safe for
// concurrent use; each animation run owns its own Allocator.
type Allocator struct {
	run  uuid.UUID
	next uint64
}

// NewAllocator creates an Allocator tagged with a fresh run id.
func NewAllocator() *Allocator {
	return &Allocator{run: uuid.New()}
}

// Run returns the run id the allocator stamps into its ids.
func (a *Allocator) Run() uuid.UUID {
	return a.run
}

// Next returns a new synthetic id, distinct from every id handed out before
// by any allocator.
func (a *Allocator) Next() ID {
	id := ID{origin: Synthetic, run: a.run, seq: a.next}
	a.next++
	return id
}

// Issued reports how many ids the allocator has handed out.
func (a *Allocator) Issued() uint64 {
	return a.next
}
