package inmemoryitems

import (
	"context"
	"sync"

	"github.com/swork/digraph-animator/internal/animerr"
	"github.com/swork/digraph-animator/internal/ident"
	"github.com/swork/digraph-animator/internal/item"
	"github.com/swork/digraph-animator/internal/itemstore"
)

// Store implements the itemstore.Store interface using a map for lookups and
// a slice for registration order. A mutex makes the finished store safe to
// read from several goroutines.
type Store struct {
	mu    sync.RWMutex
	items map[ident.ID]item.Item
	order []ident.ID
}

// New creates a new, empty in-memory item store.
func New() itemstore.Store {
	return &Store{
		items: make(map[ident.ID]item.Item),
	}
}

// Add registers an item, rejecting duplicate ids.
func (s *Store) Add(ctx context.Context, it item.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := it.ID()
	if existing, exists := s.items[id]; exists {
		return animerr.New(animerr.ErrDuplicateIdentifier, "%s conflicts with registered %s", it.Kind(), existing.Kind()).WithID(id)
	}
	s.items[id] = it
	s.order = append(s.order, id)
	return nil
}

// Get retrieves a single item by id.
func (s *Store) Get(ctx context.Context, id ident.ID) (item.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[id]
	return it, ok
}

// Has reports whether id is registered.
func (s *Store) Has(ctx context.Context, id ident.ID) bool {
	_, ok := s.Get(ctx, id)
	return ok
}

// All returns every item in registration order.
func (s *Store) All(ctx context.Context) []item.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]item.Item, 0, len(s.order))
	for _, id := range s.order {
		all = append(all, s.items[id])
	}
	return all
}

// Len returns the number of registered items.
func (s *Store) Len(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order)
}
