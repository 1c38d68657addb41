package domain

import (
	"context"
	"time"
)

type Message struct {
	Key   []byte
	Value []byte
}

type PublisherPort interface {
	Publish(topic string, msgs ...Message) error
}

type SubscriberPort interface {
	Subscribe(ctx context.Context, topic, groupID string) (<-chan Message, error)
}

type EventType string

const (
	EventStoreCreated       EventType = "STORE_CREATED"
	EventStoreUpdated       EventType = "STORE_UPDATED"
	EventStoreDeleted       EventType = "STORE_DELETED"
	EventStoreRated         EventType = "STORE_RATED"
	EventProductAdded       EventType = "PRODUCT_ADDED"
	EventProductUpdated     EventType = "PRODUCT_UPDATED"
	EventProductRestocked   EventType = "PRODUCT_RESTOCKED"
	EventProductDeleted     EventType = "PRODUCT_DELETED"
	EventProductPurchased   EventType = "PRODUCT_PURCHASED"
	EventSuggestionAdded    EventType = "SUGGESTION_ADDED"
	EventReferenceDiscarded EventType = "PURCHASE_REFERENCE_DISCARDED"
)

// MarketplaceEvent describes a committed state change.
type MarketplaceEvent struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	Account    string    `json:"account"`
	StoreID    string    `json:"store_id,omitempty"`
	ProductID  string    `json:"product_id,omitempty"`
	Amount     uint64    `json:"amount,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type EventPublisher interface {
	PublishEvent(event MarketplaceEvent) error
}
