package background

import (
	"context"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-expressstores-service/internal/domain"
	"github.com/LavaJover/shvark-expressstores-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-expressstores-service/internal/usecase"
)

const DefaultGaugeInterval = 30 * time.Second

type slotCounter interface {
	SlotUsage(ctx context.Context, now uint64) (live, expired, free int, err error)
}

// BackgroundTasks refreshes marketplace gauges. It only reads state; expired
// suggestions are evicted by AddSuggestedProduct alone.
type BackgroundTasks struct {
	StoreUsecase      usecase.StoreUsecase
	SuggestionUsecase slotCounter
	Metrics           *metrics.MarketplaceMetrics
	Clock             domain.Clock
	Interval          time.Duration
}

func NewBackgroundTasks(
	storeUC usecase.StoreUsecase,
	suggestionUC slotCounter,
	marketplaceMetrics *metrics.MarketplaceMetrics,
	clock domain.Clock,
) *BackgroundTasks {
	return &BackgroundTasks{
		StoreUsecase:      storeUC,
		SuggestionUsecase: suggestionUC,
		Metrics:           marketplaceMetrics,
		Clock:             clock,
		Interval:          DefaultGaugeInterval,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startGaugeRefresh(ctx)
}

func (bt *BackgroundTasks) startGaugeRefresh(ctx context.Context) {
	bt.RefreshGauges(ctx)

	ticker := time.NewTicker(bt.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			bt.RefreshGauges(ctx)
		}
	}
}

// RefreshGauges sets the stores count and the suggestion slot gauges.
func (bt *BackgroundTasks) RefreshGauges(ctx context.Context) {
	stores, err := bt.StoreUsecase.GetStores(ctx)
	if err != nil {
		slog.Error("stores gauge refresh failed", "error", err)
	} else {
		bt.Metrics.SetStoresCount(len(stores))
	}

	live, expired, free, err := bt.SuggestionUsecase.SlotUsage(ctx, bt.Clock.Now())
	if err != nil {
		slog.Error("suggestion slots gauge refresh failed", "error", err)
		return
	}
	bt.Metrics.SetSuggestionSlots(live, expired, free)
}
