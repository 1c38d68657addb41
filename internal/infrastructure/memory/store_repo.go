package memory

import (
	"context"
	"sync"

	"github.com/LavaJover/shvark-expressstores-service/internal/domain"
)

// StoreRepository keeps stores in insertion order. Values are copied on the
// way in and out, so callers never share state with the repository.
type StoreRepository struct {
	mu     sync.RWMutex
	stores map[string]*domain.Store
	order  []string
}

func NewStoreRepository() *StoreRepository {
	return &StoreRepository{stores: make(map[string]*domain.Store)}
}

func (r *StoreRepository) GetStore(_ context.Context, ownerID string) (*domain.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stores[ownerID].Clone(), nil
}

func (r *StoreRepository) SaveStore(_ context.Context, store *domain.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.stores[store.ID]; !ok {
		r.order = append(r.order, store.ID)
	}
	r.stores[store.ID] = store.Clone()
	return nil
}

func (r *StoreRepository) DeleteStore(_ context.Context, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.stores[ownerID]; !ok {
		return nil
	}
	delete(r.stores, ownerID)
	for i, id := range r.order {
		if id == ownerID {
			r.order = domain.RemoveAt(r.order, i)
			break
		}
	}
	return nil
}

func (r *StoreRepository) ListStores(_ context.Context) ([]*domain.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stores := make([]*domain.Store, 0, len(r.order))
	for _, id := range r.order {
		stores = append(stores, r.stores[id].Clone())
	}
	return stores, nil
}
