package setup

import (
	"fmt"

	"github.com/LavaJover/shvark-expressstores-service/internal/config"
	"github.com/LavaJover/shvark-expressstores-service/internal/delivery/http/handlers"
	"github.com/LavaJover/shvark-expressstores-service/internal/domain"
	"github.com/LavaJover/shvark-expressstores-service/internal/usecase"
)

type UseCases struct {
	StoreUsecase      *usecase.DefaultStoreUsecase
	SuggestionUsecase *usecase.DefaultSuggestionUsecase
	PurchaseUsecase   *usecase.DefaultPurchaseUsecase
	Marketplace       *usecase.Marketplace
	Clock             domain.Clock
}

func InitializeUseCases(deps *Dependencies) (*UseCases, error) {
	walletHandler, err := initWalletHandler(deps.Config)
	if err != nil {
		return nil, fmt.Errorf("wallet handler: %w", err)
	}

	storeUsecase := usecase.NewDefaultStoreUsecase(
		deps.Repositories.StoreRepo,
		deps.Publisher,
		deps.Metrics,
	)
	suggestionUsecase := usecase.NewDefaultSuggestionUsecase(
		deps.Repositories.SuggestionRepo,
		deps.Config.Suggestions.AuthorizedAccounts,
		deps.Publisher,
		deps.Metrics,
	)
	purchaseUsecase := usecase.NewDefaultPurchaseUsecase(
		deps.Repositories.StoreRepo,
		deps.Repositories.PurchaseRepo,
		walletHandler,
		deps.EventLogger,
		deps.Publisher,
		deps.Metrics,
	)

	clock := domain.NewSystemClock()
	return &UseCases{
		StoreUsecase:      storeUsecase,
		SuggestionUsecase: suggestionUsecase,
		PurchaseUsecase:   purchaseUsecase,
		Marketplace:       usecase.NewMarketplace(clock, storeUsecase, suggestionUsecase, purchaseUsecase),
		Clock:             clock,
	}, nil
}

func initWalletHandler(cfg *config.MarketplaceConfig) (*handlers.HTTPWalletHandler, error) {
	return handlers.NewHTTPWalletHandler(cfg.WalletAddress())
}
