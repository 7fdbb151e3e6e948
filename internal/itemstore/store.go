// Package itemstore defines the interface for the id-keyed registry of items
// built during an animation run.
//
// # Why Item Store Exists
//
// Every pass of a run reads and writes one shared registry: canonicalization
// registers every input record, the resolver registers implicit nodes, and
// edges look up their endpoints. Keeping that registry behind an interface
// separates the pipeline from how items are held, and gives the duplicate-id
// invariant one home.
//
// # Lifecycle and Usage
//
// The item store is:
//  1. **Created** once per animation run and owned by the animator
//  2. **Populated** during canonicalization and by implicit node synthesis
//  3. **Read** by every pass to resolve references
//  4. **Exposed** read-only through the run's Result once the run completes
package itemstore

import (
	"context"

	"github.com/swork/digraph-animator/internal/ident"
	"github.com/swork/digraph-animator/internal/item"
)

// Store is the interface for the item registry of a single run.
//
// # Ordering
//
// Implementations MUST remember registration order: All returns items in the
// order they were added. Output rendering depends on it.
//
// # Typical Implementation
//
// See internal/inmemoryitems for the reference in-memory implementation.
type Store interface {
	// Add registers an item under its id.
	//
	// Adding an item whose id is already registered MUST fail with an error
	// matching animerr.ErrDuplicateIdentifier and leave the store unchanged.
	Add(ctx context.Context, it item.Item) error

	// Get retrieves an item by id.
	//
	// Returns the item and true if found, or nil and false otherwise.
	Get(ctx context.Context, id ident.ID) (item.Item, bool)

	// Has reports whether an item is registered under id.
	Has(ctx context.Context, id ident.ID) bool

	// All returns a snapshot of every item in registration order.
	//
	// The returned slice is owned by the caller.
	All(ctx context.Context) []item.Item

	// Len returns the number of registered items.
	Len(ctx context.Context) int
}
