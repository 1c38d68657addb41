package memory

import (
	"context"
	"sync"

	"github.com/LavaJover/shvark-expressstores-service/internal/domain"
)

type SuggestionRepository struct {
	mu       sync.RWMutex
	products []domain.SuggestedProduct
	set      bool
}

func NewSuggestionRepository() *SuggestionRepository {
	return &SuggestionRepository{}
}

// LoadSuggestions returns nil until the slot is first written.
func (r *SuggestionRepository) LoadSuggestions(_ context.Context) ([]domain.SuggestedProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.set {
		return nil, nil
	}
	return append([]domain.SuggestedProduct{}, r.products...), nil
}

func (r *SuggestionRepository) SaveSuggestions(_ context.Context, products []domain.SuggestedProduct) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = append([]domain.SuggestedProduct{}, products...)
	r.set = true
	return nil
}
