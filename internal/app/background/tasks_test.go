package background_test

import (
	"context"
	"testing"
	"time"

	"github.com/LavaJover/shvark-expressstores-service/internal/app/background"
	"github.com/LavaJover/shvark-expressstores-service/internal/domain"
	"github.com/LavaJover/shvark-expressstores-service/internal/infrastructure/memory"
	"github.com/LavaJover/shvark-expressstores-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-expressstores-service/internal/usecase"
	storedto "github.com/LavaJover/shvark-expressstores-service/internal/usecase/dto/store"
	suggestiondto "github.com/LavaJover/shvark-expressstores-service/internal/usecase/dto/suggestion"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock uint64

func (c fixedClock) Now() uint64 { return uint64(c) }

func TestRefreshGauges(t *testing.T) {
	ctx := context.Background()
	m := metrics.NewMarketplaceMetrics(prometheus.NewRegistry())

	stores := usecase.NewDefaultStoreUsecase(memory.NewStoreRepository(), nil, nil)
	suggestionRepo := memory.NewSuggestionRepository()
	suggestions := usecase.NewDefaultSuggestionUsecase(suggestionRepo, []string{"curator.near"}, nil, nil)

	for _, owner := range []string{"alice.near", "bob.near"} {
		_, err := stores.CreateStore(ctx, domain.CallContext{Caller: owner}, &storedto.StoreInput{
			Name: "n", Description: "d", Banner: "b", Location: "l",
		})
		require.NoError(t, err)
	}
	for i, ts := range []uint64{0, domain.SuggestedProductTTL} {
		_, err := suggestions.AddSuggestedProduct(ctx, domain.CallContext{Caller: "curator.near", Timestamp: ts}, &suggestiondto.SuggestedProductInput{
			ID: string(rune('a' + i)), Name: "n", Description: "d", Image: "i",
		})
		require.NoError(t, err)
	}

	tasks := background.NewBackgroundTasks(stores, suggestions, m, fixedClock(domain.SuggestedProductTTL))
	tasks.RefreshGauges(ctx)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.StoresCount))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SuggestionSlots.WithLabelValues("live")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SuggestionSlots.WithLabelValues("expired")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.SuggestionSlots.WithLabelValues("free")))

	// refreshing never evicts
	products, err := suggestions.GetSuggestedProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestStartAllStopsWithContext(t *testing.T) {
	m := metrics.NewMarketplaceMetrics(prometheus.NewRegistry())
	stores := usecase.NewDefaultStoreUsecase(memory.NewStoreRepository(), nil, nil)
	suggestions := usecase.NewDefaultSuggestionUsecase(memory.NewSuggestionRepository(), nil, nil, nil)

	tasks := background.NewBackgroundTasks(stores, suggestions, m, fixedClock(0))
	tasks.Interval = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	tasks.StartAll(ctx)

	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(m.SuggestionSlots.WithLabelValues("free")) == float64(domain.MaxSuggestedProducts)
	}, time.Second, 5*time.Millisecond)
	cancel()
}
