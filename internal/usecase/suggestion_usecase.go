package usecase

import (
	"context"
	"fmt"

	"github.com/LavaJover/shvark-expressstores-service/internal/domain"
	"github.com/LavaJover/shvark-expressstores-service/internal/infrastructure/metrics"
	suggestiondto "github.com/LavaJover/shvark-expressstores-service/internal/usecase/dto/suggestion"
)

// Layout used in the capacity message, e.g. "Tue Oct 17 2026 14:05:00".
const spotAvailableLayout = "Mon Jan 02 2006 15:04:05"

type SuggestionUsecase interface {
	AddSuggestedProduct(ctx context.Context, call domain.CallContext, input *suggestiondto.SuggestedProductInput) (*domain.SuggestedProduct, error)
	GetSuggestedProducts(ctx context.Context) ([]domain.SuggestedProduct, error)
}

// DefaultSuggestionUsecase keeps at most domain.MaxSuggestedProducts
// suggestions, oldest first. When full, the oldest entry is evicted only if
// its lifespan has passed.
type DefaultSuggestionUsecase struct {
	SuggestionRepo     domain.SuggestionRepository
	AuthorizedAccounts map[string]struct{}
	Publisher          domain.EventPublisher
	Metrics            *metrics.MarketplaceMetrics
}

func NewDefaultSuggestionUsecase(
	suggestionRepo domain.SuggestionRepository,
	authorizedAccounts []string,
	publisher domain.EventPublisher,
	marketplaceMetrics *metrics.MarketplaceMetrics,
) *DefaultSuggestionUsecase {
	allowed := make(map[string]struct{}, len(authorizedAccounts))
	for _, account := range authorizedAccounts {
		allowed[account] = struct{}{}
	}
	return &DefaultSuggestionUsecase{
		SuggestionRepo:     suggestionRepo,
		AuthorizedAccounts: allowed,
		Publisher:          publisher,
		Metrics:            marketplaceMetrics,
	}
}

func (uc *DefaultSuggestionUsecase) isAuthorized(accountID string) bool {
	_, ok := uc.AuthorizedAccounts[accountID]
	return ok
}

func (uc *DefaultSuggestionUsecase) AddSuggestedProduct(ctx context.Context, call domain.CallContext, input *suggestiondto.SuggestedProductInput) (*domain.SuggestedProduct, error) {
	const op = "add_suggested_product"

	var item domain.CatalogItem
	if input != nil {
		item = domain.CatalogItem{
			ID:          input.ID,
			Name:        input.Name,
			Description: input.Description,
			Image:       input.Image,
		}
	}
	if !item.Described() {
		return nil, reject(uc.Metrics, op, domain.NewError(domain.KindInvalidPayload, "Invalid payload"))
	}
	if !uc.isAuthorized(call.Caller) {
		return nil, reject(uc.Metrics, op, domain.NewError(domain.KindUnauthorized, "Only authorized accounts or contracts can add suggested products"))
	}

	products, err := uc.SuggestionRepo.LoadSuggestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load suggested products: %w", err)
	}

	evicted := false
	if len(products) >= domain.MaxSuggestedProducts {
		oldest := products[0]
		if !oldest.Expired(call.Timestamp) {
			uc.Metrics.RecordSuggestionRejected()
			return nil, reject(uc.Metrics, op, domain.NewError(domain.KindCapacityExceeded,
				"We are out of spots for suggested products. A spot will be available by %s GMT",
				oldest.ExpiresAt().Format(spotAvailableLayout)))
		}
		products = domain.RemoveAt(products, 0)
		evicted = true
	}

	product := domain.NewSuggestedProduct(item, call.Timestamp)
	products = append(products, product)
	if err := uc.SuggestionRepo.SaveSuggestions(ctx, products); err != nil {
		return nil, fmt.Errorf("failed to save suggested products: %w", err)
	}

	uc.Metrics.RecordSuggestionAdded(evicted)
	publishEvent(uc.Publisher, domain.MarketplaceEvent{
		Type:      domain.EventSuggestionAdded,
		Account:   call.Caller,
		ProductID: product.ID,
	})
	return &product, nil
}

// GetSuggestedProducts returns the slot as stored. Expired entries stay
// visible until an add evicts them.
func (uc *DefaultSuggestionUsecase) GetSuggestedProducts(ctx context.Context) ([]domain.SuggestedProduct, error) {
	return uc.SuggestionRepo.LoadSuggestions(ctx)
}

// SlotUsage counts live, expired and free suggestion slots at now.
func (uc *DefaultSuggestionUsecase) SlotUsage(ctx context.Context, now uint64) (live, expired, free int, err error) {
	products, err := uc.SuggestionRepo.LoadSuggestions(ctx)
	if err != nil {
		return 0, 0, 0, err
	}
	for _, p := range products {
		if p.Expired(now) {
			expired++
		} else {
			live++
		}
	}
	free = domain.MaxSuggestedProducts - len(products)
	if free < 0 {
		free = 0
	}
	return live, expired, free, nil
}
