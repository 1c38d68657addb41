package publisher

import (
	"encoding/json"
	"fmt"

	"github.com/LavaJover/shvark-expressstores-service/internal/domain"
)

// MarketplaceEventPublisher encodes marketplace events as JSON keyed by the
// acting account.
type MarketplaceEventPublisher struct {
	pub   domain.PublisherPort
	topic string
}

func NewMarketplaceEventPublisher(pub domain.PublisherPort, topic string) *MarketplaceEventPublisher {
	return &MarketplaceEventPublisher{pub: pub, topic: topic}
}

func (p *MarketplaceEventPublisher) PublishEvent(event domain.MarketplaceEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", event.Type, err)
	}
	return p.pub.Publish(p.topic, domain.Message{Key: []byte(event.Account), Value: v})
}

// NoopEventPublisher drops events; used when kafka is disabled.
type NoopEventPublisher struct{}

func (NoopEventPublisher) PublishEvent(domain.MarketplaceEvent) error {
	return nil
}

// DecodeEvent parses a message written by MarketplaceEventPublisher.
func DecodeEvent(msg domain.Message) (domain.MarketplaceEvent, error) {
	var event domain.MarketplaceEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return domain.MarketplaceEvent{}, fmt.Errorf("failed to decode event: %w", err)
	}
	return event, nil
}
