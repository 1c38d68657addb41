package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/LavaJover/shvark-expressstores-service/internal/domain"
	"github.com/LavaJover/shvark-expressstores-service/internal/infrastructure/metrics"
	productdto "github.com/LavaJover/shvark-expressstores-service/internal/usecase/dto/product"
	storedto "github.com/LavaJover/shvark-expressstores-service/internal/usecase/dto/store"
)

const (
	MinRating = 0
	MaxRating = 5
)

type StoreUsecase interface {
	CreateStore(ctx context.Context, call domain.CallContext, input *storedto.StoreInput) (*domain.Store, error)
	UpdateStore(ctx context.Context, call domain.CallContext, input *storedto.StoreInput) (*domain.Store, error)
	DeleteStore(ctx context.Context, call domain.CallContext) error

	AddProduct(ctx context.Context, call domain.CallContext, input *productdto.CreateProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, call domain.CallContext, productID string, input *productdto.UpdateProductInput) (*domain.Product, error)
	AvailProduct(ctx context.Context, call domain.CallContext, productID string, amount int64) (*domain.Product, error)
	DeleteProduct(ctx context.Context, call domain.CallContext, productID string) error

	RateStore(ctx context.Context, call domain.CallContext, storeID string, rating int64) (*domain.Store, error)

	GetStores(ctx context.Context) ([]*domain.Store, error)
	GetStore(ctx context.Context, storeID string) (*domain.Store, error)
	GetStoreProducts(ctx context.Context, storeID string) ([]domain.Product, error)
}

type DefaultStoreUsecase struct {
	StoreRepo domain.StoreRepository
	Publisher domain.EventPublisher
	Metrics   *metrics.MarketplaceMetrics
}

func NewDefaultStoreUsecase(
	storeRepo domain.StoreRepository,
	publisher domain.EventPublisher,
	marketplaceMetrics *metrics.MarketplaceMetrics,
) *DefaultStoreUsecase {
	return &DefaultStoreUsecase{
		StoreRepo: storeRepo,
		Publisher: publisher,
		Metrics:   marketplaceMetrics,
	}
}

func storeDetails(input *storedto.StoreInput) domain.StoreDetails {
	if input == nil {
		return domain.StoreDetails{}
	}
	return domain.StoreDetails{
		Name:        input.Name,
		Description: input.Description,
		Banner:      input.Banner,
		Location:    input.Location,
	}
}

func (uc *DefaultStoreUsecase) CreateStore(ctx context.Context, call domain.CallContext, input *storedto.StoreInput) (*domain.Store, error) {
	const op = "create_store"

	existing, err := uc.StoreRepo.GetStore(ctx, call.Caller)
	if err != nil {
		return nil, fmt.Errorf("failed to get store: %w", err)
	}
	if existing != nil {
		return nil, reject(uc.Metrics, op, domain.NewError(domain.KindAlreadyExists, "A store with this User already exists"))
	}

	details := storeDetails(input)
	if !details.Valid() {
		return nil, reject(uc.Metrics, op, domain.NewError(domain.KindInvalidPayload, "Invalid payload"))
	}
	if !domain.ValidAccountID(call.Caller) {
		return nil, reject(uc.Metrics, op, domain.NewError(domain.KindInvalidIdentity, "Invalid account ID"))
	}

	store := domain.NewStore(call.Caller, details)
	if err := uc.StoreRepo.SaveStore(ctx, store); err != nil {
		return nil, fmt.Errorf("failed to save store: %w", err)
	}

	uc.Metrics.RecordStoreCreated()
	publishEvent(uc.Publisher, domain.MarketplaceEvent{
		Type:    domain.EventStoreCreated,
		Account: call.Caller,
		StoreID: store.ID,
	})
	return store, nil
}

// ownStore loads the caller's store and checks it is really theirs.
func (uc *DefaultStoreUsecase) ownStore(ctx context.Context, op string, call domain.CallContext) (*domain.Store, error) {
	store, err := uc.StoreRepo.GetStore(ctx, call.Caller)
	if err != nil {
		return nil, fmt.Errorf("failed to get store: %w", err)
	}
	if store == nil {
		return nil, reject(uc.Metrics, op, domain.NewError(domain.KindNotFound, "A store with %s does not exist", call.Caller))
	}
	if store.Owner != call.Caller {
		return nil, reject(uc.Metrics, op, domain.NewError(domain.KindUnauthorized, "Only the owner of %s can modify it", store.ID))
	}
	return store, nil
}

// ownProduct resolves a product of the caller's store by id.
func (uc *DefaultStoreUsecase) ownProduct(op string, call domain.CallContext, store *domain.Store, productID string) (int, error) {
	idx := store.FindProduct(productID)
	if idx < 0 {
		return -1, reject(uc.Metrics, op, domain.NewError(domain.KindNotFound, "A product with %s does not exist on this store", productID))
	}
	if store.StoreProducts[idx].Owner != call.Caller {
		return -1, reject(uc.Metrics, op, domain.NewError(domain.KindUnauthorized, "Only the owner of product %s can modify it", productID))
	}
	return idx, nil
}

func (uc *DefaultStoreUsecase) UpdateStore(ctx context.Context, call domain.CallContext, input *storedto.StoreInput) (*domain.Store, error) {
	const op = "update_store"

	store, err := uc.ownStore(ctx, op, call)
	if err != nil {
		return nil, err
	}
	details := storeDetails(input)
	if !details.Valid() {
		return nil, reject(uc.Metrics, op, domain.NewError(domain.KindInvalidPayload, "Invalid payload"))
	}

	store.UpdateDetails(details)
	if err := uc.StoreRepo.SaveStore(ctx, store); err != nil {
		return nil, fmt.Errorf("failed to save store: %w", err)
	}

	publishEvent(uc.Publisher, domain.MarketplaceEvent{
		Type:    domain.EventStoreUpdated,
		Account: call.Caller,
		StoreID: store.ID,
	})
	return store, nil
}

func (uc *DefaultStoreUsecase) DeleteStore(ctx context.Context, call domain.CallContext) error {
	const op = "delete_store"

	store, err := uc.ownStore(ctx, op, call)
	if err != nil {
		return err
	}
	if err := uc.StoreRepo.DeleteStore(ctx, store.ID); err != nil {
		return fmt.Errorf("failed to delete store: %w", err)
	}

	uc.Metrics.RecordStoreDeleted()
	publishEvent(uc.Publisher, domain.MarketplaceEvent{
		Type:    domain.EventStoreDeleted,
		Account: call.Caller,
		StoreID: store.ID,
	})
	return nil
}

func (uc *DefaultStoreUsecase) AddProduct(ctx context.Context, call domain.CallContext, input *productdto.CreateProductInput) (*domain.Product, error) {
	const op = "add_product"

	store, err := uc.ownStore(ctx, op, call)
	if err != nil {
		return nil, err
	}
	if input == nil {
		return nil, reject(uc.Metrics, op, domain.NewError(domain.KindInvalidPayload, "Invalid payload"))
	}
	details := domain.ProductDetails{
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
		Price:       input.Price,
	}
	if input.ID == "" || !details.Valid() {
		return nil, reject(uc.Metrics, op, domain.NewError(domain.KindInvalidPayload, "Invalid payload"))
	}
	if store.FindProduct(input.ID) >= 0 {
		return nil, reject(uc.Metrics, op, domain.NewError(domain.KindAlreadyExists, "A product with %s already exists on this store", input.ID))
	}

	product := store.AddProduct(call.Caller, input.ID, details, input.Available)
	if err := uc.StoreRepo.SaveStore(ctx, store); err != nil {
		return nil, fmt.Errorf("failed to save store: %w", err)
	}

	uc.Metrics.RecordProductAdded(store.ID)
	publishEvent(uc.Publisher, domain.MarketplaceEvent{
		Type:      domain.EventProductAdded,
		Account:   call.Caller,
		StoreID:   store.ID,
		ProductID: product.ID,
	})
	return &product, nil
}

func (uc *DefaultStoreUsecase) UpdateProduct(ctx context.Context, call domain.CallContext, productID string, input *productdto.UpdateProductInput) (*domain.Product, error) {
	const op = "update_product"

	store, err := uc.ownStore(ctx, op, call)
	if err != nil {
		return nil, err
	}
	var details domain.ProductDetails
	if input != nil {
		details = domain.ProductDetails{
			Name:        input.Name,
			Description: input.Description,
			Image:       input.Image,
			Price:       input.Price,
		}
	}
	if !details.Valid() {
		return nil, reject(uc.Metrics, op, domain.NewError(domain.KindInvalidPayload, "Invalid payload"))
	}
	idx, err := uc.ownProduct(op, call, store, productID)
	if err != nil {
		return nil, err
	}

	store.UpdateProduct(idx, details)
	if err := uc.StoreRepo.SaveStore(ctx, store); err != nil {
		return nil, fmt.Errorf("failed to save store: %w", err)
	}

	product := store.StoreProducts[idx]
	publishEvent(uc.Publisher, domain.MarketplaceEvent{
		Type:      domain.EventProductUpdated,
		Account:   call.Caller,
		StoreID:   store.ID,
		ProductID: product.ID,
	})
	return &product, nil
}

func (uc *DefaultStoreUsecase) AvailProduct(ctx context.Context, call domain.CallContext, productID string, amount int64) (*domain.Product, error) {
	const op = "avail_product"

	store, err := uc.ownStore(ctx, op, call)
	if err != nil {
		return nil, err
	}
	if amount <= 0 {
		return nil, reject(uc.Metrics, op, domain.NewError(domain.KindInvalidPayload, "Invalid payload"))
	}
	idx, err := uc.ownProduct(op, call, store, productID)
	if err != nil {
		return nil, err
	}
	if uint64(amount) > uint64(math.MaxUint32-store.StoreProducts[idx].Available) {
		return nil, reject(uc.Metrics, op, domain.NewError(domain.KindInvalidPayload, "Amount %d exceeds the stock limit", amount))
	}

	store.StoreProducts[idx].Restock(uint32(amount))
	if err := uc.StoreRepo.SaveStore(ctx, store); err != nil {
		return nil, fmt.Errorf("failed to save store: %w", err)
	}

	product := store.StoreProducts[idx]
	uc.Metrics.RecordRestock(store.ID, uint32(amount))
	publishEvent(uc.Publisher, domain.MarketplaceEvent{
		Type:      domain.EventProductRestocked,
		Account:   call.Caller,
		StoreID:   store.ID,
		ProductID: product.ID,
		Amount:    uint64(amount),
	})
	return &product, nil
}

func (uc *DefaultStoreUsecase) DeleteProduct(ctx context.Context, call domain.CallContext, productID string) error {
	const op = "delete_product"

	store, err := uc.ownStore(ctx, op, call)
	if err != nil {
		return err
	}
	idx, err := uc.ownProduct(op, call, store, productID)
	if err != nil {
		return err
	}

	store.DeleteProduct(idx)
	if err := uc.StoreRepo.SaveStore(ctx, store); err != nil {
		return fmt.Errorf("failed to save store: %w", err)
	}

	publishEvent(uc.Publisher, domain.MarketplaceEvent{
		Type:      domain.EventProductDeleted,
		Account:   call.Caller,
		StoreID:   store.ID,
		ProductID: productID,
	})
	return nil
}

func (uc *DefaultStoreUsecase) RateStore(ctx context.Context, call domain.CallContext, storeID string, rating int64) (*domain.Store, error) {
	const op = "rate_store"

	store, err := uc.StoreRepo.GetStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get store: %w", err)
	}
	if store == nil {
		return nil, reject(uc.Metrics, op, domain.NewError(domain.KindNotFound, "A store with %s does not exist", storeID))
	}
	if store.Owner == call.Caller {
		return nil, reject(uc.Metrics, op, domain.NewError(domain.KindSelfRating, "Store owner is unauthorized to rate their own store"))
	}
	if rating < MinRating || rating > MaxRating {
		return nil, reject(uc.Metrics, op, domain.NewError(domain.KindOutOfRange, "The provided rating is out of range"))
	}

	store.Rate(call.Caller, int32(rating))
	if err := uc.StoreRepo.SaveStore(ctx, store); err != nil {
		return nil, fmt.Errorf("failed to save store: %w", err)
	}

	uc.Metrics.RecordRating(store.ID)
	publishEvent(uc.Publisher, domain.MarketplaceEvent{
		Type:    domain.EventStoreRated,
		Account: call.Caller,
		StoreID: store.ID,
		Amount:  uint64(rating),
	})
	return store, nil
}

func (uc *DefaultStoreUsecase) GetStores(ctx context.Context) ([]*domain.Store, error) {
	return uc.StoreRepo.ListStores(ctx)
}

func (uc *DefaultStoreUsecase) GetStore(ctx context.Context, storeID string) (*domain.Store, error) {
	return uc.StoreRepo.GetStore(ctx, storeID)
}

func (uc *DefaultStoreUsecase) GetStoreProducts(ctx context.Context, storeID string) ([]domain.Product, error) {
	store, err := uc.StoreRepo.GetStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, nil
	}
	if store.StoreProducts == nil {
		return []domain.Product{}, nil
	}
	return store.StoreProducts, nil
}
