package usecase

import (
	"context"
	"sync"

	"github.com/LavaJover/shvark-expressstores-service/internal/domain"
	productdto "github.com/LavaJover/shvark-expressstores-service/internal/usecase/dto/product"
	storedto "github.com/LavaJover/shvark-expressstores-service/internal/usecase/dto/store"
	suggestiondto "github.com/LavaJover/shvark-expressstores-service/internal/usecase/dto/suggestion"
)

type MarketplaceUsecase interface {
	StoreUsecase
	SuggestionUsecase
	PurchaseUsecase
}

// Marketplace owns the three collections and runs one state-changing call
// at a time. Every write is a read-modify-write of a whole entity, so calls
// must not interleave.
//
// Write calls are stamped from the clock once the lock is held, so
// timestamps never decrease in commit order.
type Marketplace struct {
	mu       sync.RWMutex
	clock    domain.Clock
	lastTime uint64

	stores      StoreUsecase
	suggestions SuggestionUsecase
	purchases   PurchaseUsecase
}

func NewMarketplace(clock domain.Clock, stores StoreUsecase, suggestions SuggestionUsecase, purchases PurchaseUsecase) *Marketplace {
	if clock == nil {
		clock = domain.NewSystemClock()
	}
	return &Marketplace{
		clock:       clock,
		stores:      stores,
		suggestions: suggestions,
		purchases:   purchases,
	}
}

// stamp sets call.Timestamp. Must be called with mu held for writing.
func (m *Marketplace) stamp(call domain.CallContext) domain.CallContext {
	now := m.clock.Now()
	if now < m.lastTime {
		now = m.lastTime
	}
	m.lastTime = now
	call.Timestamp = now
	return call
}

func (m *Marketplace) CreateStore(ctx context.Context, call domain.CallContext, input *storedto.StoreInput) (*domain.Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	call = m.stamp(call)
	return m.stores.CreateStore(ctx, call, input)
}

func (m *Marketplace) UpdateStore(ctx context.Context, call domain.CallContext, input *storedto.StoreInput) (*domain.Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	call = m.stamp(call)
	return m.stores.UpdateStore(ctx, call, input)
}

func (m *Marketplace) DeleteStore(ctx context.Context, call domain.CallContext) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	call = m.stamp(call)
	return m.stores.DeleteStore(ctx, call)
}

func (m *Marketplace) AddProduct(ctx context.Context, call domain.CallContext, input *productdto.CreateProductInput) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	call = m.stamp(call)
	return m.stores.AddProduct(ctx, call, input)
}

func (m *Marketplace) UpdateProduct(ctx context.Context, call domain.CallContext, productID string, input *productdto.UpdateProductInput) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	call = m.stamp(call)
	return m.stores.UpdateProduct(ctx, call, productID, input)
}

func (m *Marketplace) AvailProduct(ctx context.Context, call domain.CallContext, productID string, amount int64) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	call = m.stamp(call)
	return m.stores.AvailProduct(ctx, call, productID, amount)
}

func (m *Marketplace) DeleteProduct(ctx context.Context, call domain.CallContext, productID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	call = m.stamp(call)
	return m.stores.DeleteProduct(ctx, call, productID)
}

func (m *Marketplace) RateStore(ctx context.Context, call domain.CallContext, storeID string, rating int64) (*domain.Store, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	call = m.stamp(call)
	return m.stores.RateStore(ctx, call, storeID, rating)
}

func (m *Marketplace) GetStores(ctx context.Context) ([]*domain.Store, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stores.GetStores(ctx)
}

func (m *Marketplace) GetStore(ctx context.Context, storeID string) (*domain.Store, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stores.GetStore(ctx, storeID)
}

func (m *Marketplace) GetStoreProducts(ctx context.Context, storeID string) ([]domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stores.GetStoreProducts(ctx, storeID)
}

func (m *Marketplace) AddSuggestedProduct(ctx context.Context, call domain.CallContext, input *suggestiondto.SuggestedProductInput) (*domain.SuggestedProduct, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	call = m.stamp(call)
	return m.suggestions.AddSuggestedProduct(ctx, call, input)
}

func (m *Marketplace) GetSuggestedProducts(ctx context.Context) ([]domain.SuggestedProduct, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.suggestions.GetSuggestedProducts(ctx)
}

func (m *Marketplace) BuyProduct(ctx context.Context, call domain.CallContext, storeID, productID string) (*domain.PurchasedReference, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	call = m.stamp(call)
	return m.purchases.BuyProduct(ctx, call, storeID, productID)
}

func (m *Marketplace) DeletePurchasedReference(ctx context.Context, call domain.CallContext, idx int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	call = m.stamp(call)
	return m.purchases.DeletePurchasedReference(ctx, call, idx)
}

func (m *Marketplace) GetPurchasedReferences(ctx context.Context, accountID string) ([]domain.PurchasedReference, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.purchases.GetPurchasedReferences(ctx, accountID)
}
