package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MarketplaceMetrics holds the store, purchase and suggestion metrics.
// All methods are safe on a nil receiver so usecases can run without them.
type MarketplaceMetrics struct {
	// Stores
	StoresCreatedTotal prometheus.Counter
	StoresDeletedTotal prometheus.Counter
	StoresCount        prometheus.Gauge
	StoreRatingsTotal  prometheus.CounterVec

	// Products
	ProductsAddedTotal     prometheus.CounterVec
	ProductsRestockedTotal prometheus.CounterVec

	// Purchases
	PurchasesTotal       prometheus.CounterVec
	PurchasesAmountTotal prometheus.CounterVec
	TransferDuration     prometheus.Histogram

	// Suggestions
	SuggestionsAddedTotal    prometheus.Counter
	SuggestionsEvictedTotal  prometheus.Counter
	SuggestionsRejectedTotal prometheus.Counter
	SuggestionSlots          prometheus.GaugeVec

	// Errors
	OperationErrorsTotal prometheus.CounterVec
}

func NewMarketplaceMetrics(reg prometheus.Registerer) *MarketplaceMetrics {
	factory := promauto.With(reg)
	return &MarketplaceMetrics{
		StoresCreatedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "stores_created_total",
			Help: "Total number of created stores",
		}),
		StoresDeletedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "stores_deleted_total",
			Help: "Total number of deleted stores",
		}),
		StoresCount: factory.NewGauge(prometheus.GaugeOpts{
			Name: "stores_count",
			Help: "Current number of stores",
		}),
		StoreRatingsTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "store_ratings_total",
				Help: "Ratings submitted per store",
			},
			[]string{"store_id"},
		),

		ProductsAddedTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "products_added_total",
				Help: "Products added per store",
			},
			[]string{"store_id"},
		),
		ProductsRestockedTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "products_restocked_units_total",
				Help: "Units made available per store",
			},
			[]string{"store_id"},
		),

		PurchasesTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "purchases_total",
				Help: "Completed purchases per store",
			},
			[]string{"store_id"},
		),
		PurchasesAmountTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "purchases_amount_total",
				Help: "Sum of transferred payments per store in base units",
			},
			[]string{"store_id"},
		),
		TransferDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "purchase_transfer_duration_seconds",
			Help:    "Time spent in the value transfer of a purchase",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 10),
		}),

		SuggestionsAddedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "suggestions_added_total",
			Help: "Suggested products added to the rotation",
		}),
		SuggestionsEvictedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "suggestions_evicted_total",
			Help: "Expired suggested products evicted to make room",
		}),
		SuggestionsRejectedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "suggestions_rejected_total",
			Help: "Suggestions rejected because every slot is still live",
		}),
		SuggestionSlots: *factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "suggestion_slots",
				Help: "Suggestion slots by state",
			},
			[]string{"state"},
		),

		OperationErrorsTotal: *factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "operation_errors_total",
				Help: "Failed operations by operation and error kind",
			},
			[]string{"operation", "kind"},
		),
	}
}

func (m *MarketplaceMetrics) RecordStoreCreated() {
	if m == nil {
		return
	}
	m.StoresCreatedTotal.Inc()
	m.StoresCount.Inc()
}

func (m *MarketplaceMetrics) RecordStoreDeleted() {
	if m == nil {
		return
	}
	m.StoresDeletedTotal.Inc()
	m.StoresCount.Dec()
}

func (m *MarketplaceMetrics) SetStoresCount(n int) {
	if m == nil {
		return
	}
	m.StoresCount.Set(float64(n))
}

func (m *MarketplaceMetrics) RecordRating(storeID string) {
	if m == nil {
		return
	}
	m.StoreRatingsTotal.WithLabelValues(storeID).Inc()
}

func (m *MarketplaceMetrics) RecordProductAdded(storeID string) {
	if m == nil {
		return
	}
	m.ProductsAddedTotal.WithLabelValues(storeID).Inc()
}

func (m *MarketplaceMetrics) RecordRestock(storeID string, amount uint32) {
	if m == nil {
		return
	}
	m.ProductsRestockedTotal.WithLabelValues(storeID).Add(float64(amount))
}

// RecordPurchase records a completed purchase and the transfer latency.
func (m *MarketplaceMetrics) RecordPurchase(storeID string, amount uint64, transferSeconds float64) {
	if m == nil {
		return
	}
	m.PurchasesTotal.WithLabelValues(storeID).Inc()
	m.PurchasesAmountTotal.WithLabelValues(storeID).Add(float64(amount))
	m.TransferDuration.Observe(transferSeconds)
}

func (m *MarketplaceMetrics) RecordSuggestionAdded(evicted bool) {
	if m == nil {
		return
	}
	m.SuggestionsAddedTotal.Inc()
	if evicted {
		m.SuggestionsEvictedTotal.Inc()
	}
}

func (m *MarketplaceMetrics) RecordSuggestionRejected() {
	if m == nil {
		return
	}
	m.SuggestionsRejectedTotal.Inc()
}

// SetSuggestionSlots publishes how many slots are live, expired and free.
func (m *MarketplaceMetrics) SetSuggestionSlots(live, expired, free int) {
	if m == nil {
		return
	}
	m.SuggestionSlots.WithLabelValues("live").Set(float64(live))
	m.SuggestionSlots.WithLabelValues("expired").Set(float64(expired))
	m.SuggestionSlots.WithLabelValues("free").Set(float64(free))
}

func (m *MarketplaceMetrics) RecordError(operation, kind string) {
	if m == nil {
		return
	}
	m.OperationErrorsTotal.WithLabelValues(operation, kind).Inc()
}
