package memory

import (
	"context"
	"sync"

	"github.com/LavaJover/shvark-expressstores-service/internal/domain"
)

type PurchaseRepository struct {
	mu   sync.RWMutex
	refs map[string][]domain.PurchasedReference
}

func NewPurchaseRepository() *PurchaseRepository {
	return &PurchaseRepository{refs: make(map[string][]domain.PurchasedReference)}
}

// GetReferences returns nil for a buyer that never purchased anything and
// an empty slice for one whose references were all discarded.
func (r *PurchaseRepository) GetReferences(_ context.Context, buyerID string) ([]domain.PurchasedReference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	refs, ok := r.refs[buyerID]
	if !ok {
		return nil, nil
	}
	return append([]domain.PurchasedReference{}, refs...), nil
}

func (r *PurchaseRepository) SaveReferences(_ context.Context, buyerID string, refs []domain.PurchasedReference) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refs[buyerID] = append([]domain.PurchasedReference{}, refs...)
	return nil
}
