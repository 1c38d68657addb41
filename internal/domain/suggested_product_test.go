package domain_test

import (
	"testing"
	"time"

	"github.com/LavaJover/shvark-expressstores-service/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSuggestedProductLifeSpan(t *testing.T) {
	now := uint64(1_700_000_000_000_000_000)
	p := domain.NewSuggestedProduct(domain.CatalogItem{ID: "s1", Name: "n", Description: "d", Image: "i"}, now)

	assert.Equal(t, now+domain.SuggestedProductTTL, p.LifeSpan)
	assert.False(t, p.Expired(now))
	assert.False(t, p.Expired(p.LifeSpan-1))
	assert.True(t, p.Expired(p.LifeSpan))
	assert.True(t, p.Expired(p.LifeSpan+1))
}

func TestSuggestedProductExpiresAt(t *testing.T) {
	start := time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)
	p := domain.NewSuggestedProduct(domain.CatalogItem{}, uint64(start.UnixNano()))

	assert.True(t, start.Add(16*time.Minute).Equal(p.ExpiresAt()))
	assert.Equal(t, time.UTC, p.ExpiresAt().Location())
}

func TestValidAccountID(t *testing.T) {
	for _, id := range []string{"alice", "bob.near", "a-b_c.d", "12345"} {
		assert.True(t, domain.ValidAccountID(id), id)
	}
	for _, id := range []string{"", "abcd", "Alice.near", "bob near", "bob@near"} {
		assert.False(t, domain.ValidAccountID(id), id)
	}
}
