package domain

import "context"

// Lookups return (nil, nil) when the key is absent.

type StoreRepository interface {
	GetStore(ctx context.Context, ownerID string) (*Store, error)
	SaveStore(ctx context.Context, store *Store) error
	DeleteStore(ctx context.Context, ownerID string) error
	ListStores(ctx context.Context) ([]*Store, error)
}

// SuggestionRepository holds the single suggestion slot.
type SuggestionRepository interface {
	LoadSuggestions(ctx context.Context) ([]SuggestedProduct, error)
	SaveSuggestions(ctx context.Context, products []SuggestedProduct) error
}

type PurchaseRepository interface {
	GetReferences(ctx context.Context, buyerID string) ([]PurchasedReference, error)
	SaveReferences(ctx context.Context, buyerID string, refs []PurchasedReference) error
}
