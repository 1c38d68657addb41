package domain

import "time"

const (
	// SuggestedProductTTL is the lifetime of a suggestion in clock units
	// (nanoseconds): 16 minutes.
	SuggestedProductTTL uint64 = 960_000_000_000
	// MaxSuggestedProducts caps the number of live suggestions.
	MaxSuggestedProducts = 6
)

// SuggestedProduct is a time-limited promotional entry independent of any
// store. LifeSpan is the absolute expiry timestamp.
type SuggestedProduct struct {
	CatalogItem
	LifeSpan uint64 `json:"life_span"`
}

func NewSuggestedProduct(item CatalogItem, now uint64) SuggestedProduct {
	return SuggestedProduct{
		CatalogItem: item,
		LifeSpan:    now + SuggestedProductTTL,
	}
}

// Expired reports whether the lifespan has been reached at now.
func (p SuggestedProduct) Expired(now uint64) bool {
	return p.LifeSpan <= now
}

func (p SuggestedProduct) ExpiresAt() time.Time {
	return time.Unix(0, int64(p.LifeSpan)).UTC()
}
