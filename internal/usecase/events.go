package usecase

import (
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-expressstores-service/internal/domain"
	"github.com/LavaJover/shvark-expressstores-service/internal/infrastructure/metrics"
	"github.com/google/uuid"
)

// publishEvent emits an event for a write that has already been persisted.
// Publishing is best effort: a failure is logged, never returned.
func publishEvent(pub domain.EventPublisher, event domain.MarketplaceEvent) {
	if pub == nil {
		return
	}
	event.ID = uuid.New().String()
	event.OccurredAt = time.Now().UTC()
	if err := pub.PublishEvent(event); err != nil {
		slog.Error("failed to publish marketplace event", "type", event.Type, "account", event.Account, "error", err.Error())
	}
}

// reject counts a rule violation and hands it back unchanged.
func reject(m *metrics.MarketplaceMetrics, operation string, err *domain.Error) error {
	m.RecordError(operation, string(err.Kind))
	return err
}
