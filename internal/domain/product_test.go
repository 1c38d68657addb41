package domain_test

import (
	"testing"

	"github.com/LavaJover/shvark-expressstores-service/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestProductDetailsPriceBounds(t *testing.T) {
	d := domain.ProductDetails{Name: "n", Description: "d", Image: "i"}

	for _, tc := range []struct {
		price uint64
		valid bool
	}{
		{0, false},
		{1, true},
		{domain.MaxPrice, true},
		{domain.MaxPrice + 1, false},
	} {
		d.Price = tc.price
		assert.Equal(t, tc.valid, d.Valid(), "price %d", tc.price)
	}
}
