package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-expressstores-service/internal/domain"
	"github.com/LavaJover/shvark-expressstores-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-expressstores-service/internal/infrastructure/metrics"
)

type PurchaseUsecase interface {
	BuyProduct(ctx context.Context, call domain.CallContext, storeID, productID string) (*domain.PurchasedReference, error)
	DeletePurchasedReference(ctx context.Context, call domain.CallContext, idx int64) error
	GetPurchasedReferences(ctx context.Context, accountID string) ([]domain.PurchasedReference, error)
}

type DefaultPurchaseUsecase struct {
	StoreRepo    domain.StoreRepository
	PurchaseRepo domain.PurchaseRepository
	Wallet       domain.WalletUsecase
	EventLogger  logger.PurchaseEventLogger
	Publisher    domain.EventPublisher
	Metrics      *metrics.MarketplaceMetrics
}

func NewDefaultPurchaseUsecase(
	storeRepo domain.StoreRepository,
	purchaseRepo domain.PurchaseRepository,
	wallet domain.WalletUsecase,
	eventLogger logger.PurchaseEventLogger,
	publisher domain.EventPublisher,
	marketplaceMetrics *metrics.MarketplaceMetrics,
) *DefaultPurchaseUsecase {
	return &DefaultPurchaseUsecase{
		StoreRepo:    storeRepo,
		PurchaseRepo: purchaseRepo,
		Wallet:       wallet,
		EventLogger:  eventLogger,
		Publisher:    publisher,
		Metrics:      marketplaceMetrics,
	}
}

// BuyProduct checks stock and the attached payment, transfers the payment
// to the product owner and then records the sale and the buyer's receipt.
// The transfer cannot be rolled back: if persisting fails afterwards the
// inconsistency is logged and returned.
func (uc *DefaultPurchaseUsecase) BuyProduct(ctx context.Context, call domain.CallContext, storeID, productID string) (*domain.PurchasedReference, error) {
	const op = "buy_product"

	store, err := uc.StoreRepo.GetStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get store: %w", err)
	}
	if store == nil {
		return nil, reject(uc.Metrics, op, domain.NewError(domain.KindNotFound, "A store with %s does not exist", storeID))
	}
	idx := store.FindProduct(productID)
	if idx < 0 {
		return nil, reject(uc.Metrics, op, domain.NewError(domain.KindNotFound, "A product with %s does not exist on this store", productID))
	}
	product := &store.StoreProducts[idx]
	if product.Available == 0 {
		return nil, reject(uc.Metrics, op, domain.NewError(domain.KindUnavailable, "Products unavailable"))
	}
	if product.Price != call.Deposit {
		return nil, reject(uc.Metrics, op, domain.NewError(domain.KindPriceMismatch, "Attached deposit should equal the product's price"))
	}

	refs, err := uc.PurchaseRepo.GetReferences(ctx, call.Caller)
	if err != nil {
		return nil, fmt.Errorf("failed to get purchased references: %w", err)
	}

	start := time.Now()
	if err := uc.Wallet.Transfer(ctx, product.Owner, call.Deposit); err != nil {
		if errors.Is(err, domain.ErrTransferUnconfirmed) {
			return nil, uc.transferStranded(ctx, call, store.ID, *product, "TRANSFER_UNCONFIRMED", err)
		}
		uc.Metrics.RecordError(op, "TRANSFER_FAILED")
		return nil, fmt.Errorf("failed to transfer payment to %s: %w", product.Owner, err)
	}
	transferSeconds := time.Since(start).Seconds()

	product.RecordSale()
	ref := domain.NewPurchasedReference(*product, store.Location)
	refs = append(refs, ref)

	if err := uc.StoreRepo.SaveStore(ctx, store); err != nil {
		return nil, uc.transferStranded(ctx, call, store.ID, *product, "PERSIST_AFTER_TRANSFER", fmt.Errorf("failed to save store: %w", err))
	}
	if err := uc.PurchaseRepo.SaveReferences(ctx, call.Caller, refs); err != nil {
		return nil, uc.transferStranded(ctx, call, store.ID, *product, "PERSIST_AFTER_TRANSFER", fmt.Errorf("failed to save purchased references: %w", err))
	}

	uc.Metrics.RecordPurchase(store.ID, call.Deposit, transferSeconds)
	if uc.EventLogger != nil {
		if err := uc.EventLogger.LogPurchaseCompleted(ctx, logger.PurchaseCompletedEvent{
			BuyerID:   call.Caller,
			StoreID:   store.ID,
			ProductID: product.ID,
			Recipient: product.Owner,
			Amount:    call.Deposit,
			Timestamp: time.Now(),
		}); err != nil {
			slog.Error("failed to log purchase", "buyer", call.Caller, "product", product.ID, "error", err.Error())
		}
	}
	publishEvent(uc.Publisher, domain.MarketplaceEvent{
		Type:      domain.EventProductPurchased,
		Account:   call.Caller,
		StoreID:   store.ID,
		ProductID: product.ID,
		Amount:    call.Deposit,
	})
	return &ref, nil
}

// transferStranded reports a purchase whose payment left, or may have left,
// without the sale being recorded.
func (uc *DefaultPurchaseUsecase) transferStranded(ctx context.Context, call domain.CallContext, storeID string, product domain.Product, reason string, cause error) error {
	uc.Metrics.RecordError("buy_product", reason)
	slog.Error("purchase left inconsistent after transfer",
		"reason", reason,
		"buyer", call.Caller,
		"store", storeID,
		"product", product.ID,
		"recipient", product.Owner,
		"amount", call.Deposit,
		"error", cause.Error(),
	)
	if uc.EventLogger != nil {
		if err := uc.EventLogger.LogPurchaseFailed(ctx, logger.PurchaseFailedEvent{
			BuyerID:   call.Caller,
			StoreID:   storeID,
			ProductID: product.ID,
			Recipient: product.Owner,
			Amount:    call.Deposit,
			Reason:    cause.Error(),
			Timestamp: time.Now(),
		}); err != nil {
			slog.Error("failed to log stranded purchase", "buyer", call.Caller, "error", err.Error())
		}
	}
	if reason == "TRANSFER_UNCONFIRMED" {
		return fmt.Errorf("payment may have been transferred, purchase not recorded: %w", cause)
	}
	return fmt.Errorf("payment transferred but purchase not recorded: %w", cause)
}

func (uc *DefaultPurchaseUsecase) DeletePurchasedReference(ctx context.Context, call domain.CallContext, idx int64) error {
	const op = "delete_purchased_reference"

	refs, err := uc.PurchaseRepo.GetReferences(ctx, call.Caller)
	if err != nil {
		return fmt.Errorf("failed to get purchased references: %w", err)
	}
	if refs == nil {
		return reject(uc.Metrics, op, domain.NewError(domain.KindNotFound, "A referenced purchase for %s does not exist", call.Caller))
	}
	if idx < 0 || idx >= int64(len(refs)) {
		return reject(uc.Metrics, op, domain.NewError(domain.KindIndexOutOfRange, "Referenced index out of range"))
	}

	removed := refs[idx]
	refs = domain.RemoveAt(refs, int(idx))
	if err := uc.PurchaseRepo.SaveReferences(ctx, call.Caller, refs); err != nil {
		return fmt.Errorf("failed to save purchased references: %w", err)
	}

	publishEvent(uc.Publisher, domain.MarketplaceEvent{
		Type:      domain.EventReferenceDiscarded,
		Account:   call.Caller,
		ProductID: removed.ID,
	})
	return nil
}

func (uc *DefaultPurchaseUsecase) GetPurchasedReferences(ctx context.Context, accountID string) ([]domain.PurchasedReference, error) {
	return uc.PurchaseRepo.GetReferences(ctx, accountID)
}
