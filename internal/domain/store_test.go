package domain_test

import (
	"testing"

	"github.com/LavaJover/shvark-expressstores-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDetails() domain.StoreDetails {
	return domain.StoreDetails{
		Name:        "Corner shop",
		Description: "Everything you need",
		Banner:      "https://img.example/banner.png",
		Location:    "Lisbon",
	}
}

func TestNewStoreIsKeyedByOwner(t *testing.T) {
	store := domain.NewStore("alice.near", validDetails())

	assert.Equal(t, "alice.near", store.ID)
	assert.Equal(t, "alice.near", store.Owner)
	assert.Zero(t, store.Rating)
	assert.Empty(t, store.Reviewers)
	assert.Empty(t, store.Rates)
	assert.Empty(t, store.StoreProducts)
}

func TestStoreDetailsValid(t *testing.T) {
	assert.True(t, validDetails().Valid())

	missing := []func(*domain.StoreDetails){
		func(d *domain.StoreDetails) { d.Name = "" },
		func(d *domain.StoreDetails) { d.Description = "" },
		func(d *domain.StoreDetails) { d.Banner = "" },
		func(d *domain.StoreDetails) { d.Location = "" },
	}
	for _, clear := range missing {
		d := validDetails()
		clear(&d)
		assert.False(t, d.Valid())
	}
}

func TestRateTruncatesAverage(t *testing.T) {
	store := domain.NewStore("alice.near", validDetails())

	store.Rate("bob.near", 5)
	store.Rate("carol.near", 4)
	assert.EqualValues(t, 4, store.Rating) // 9/2

	store.Rate("dave.near", 0)
	assert.EqualValues(t, 3, store.Rating) // 9/3
	assert.Equal(t, []string{"bob.near", "carol.near", "dave.near"}, store.Reviewers)
}

func TestRateOverwritesPreviousRating(t *testing.T) {
	store := domain.NewStore("alice.near", validDetails())
	store.Rate("bob.near", 1)
	store.Rate("carol.near", 2)

	store.Rate("bob.near", 5)

	assert.Equal(t, []string{"bob.near", "carol.near"}, store.Reviewers)
	assert.Equal(t, []int32{5, 2}, store.Rates)
	assert.EqualValues(t, 3, store.Rating)
}

func TestFindProduct(t *testing.T) {
	store := domain.NewStore("alice.near", validDetails())
	details := domain.ProductDetails{Name: "Tea", Description: "Green", Image: "tea.png", Price: 10}
	store.AddProduct("alice.near", "p0", details, 0)
	store.AddProduct("alice.near", "p1", details, 0)

	assert.Equal(t, 0, store.FindProduct("p0"))
	assert.Equal(t, 1, store.FindProduct("p1"))
	assert.Equal(t, -1, store.FindProduct("p2"))
}

func TestUpdateProductKeepsCounters(t *testing.T) {
	store := domain.NewStore("alice.near", validDetails())
	store.AddProduct("alice.near", "p0", domain.ProductDetails{Name: "Tea", Description: "Green", Image: "tea.png", Price: 10}, 3)
	store.StoreProducts[0].RecordSale()

	store.UpdateProduct(0, domain.ProductDetails{Name: "Coffee", Description: "Dark", Image: "coffee.png", Price: 25})

	p := store.StoreProducts[0]
	assert.Equal(t, "Coffee", p.Name)
	assert.EqualValues(t, 25, p.Price)
	assert.EqualValues(t, 1, p.Sold)
	assert.EqualValues(t, 2, p.Available)
}

func TestDeleteProductPreservesOrder(t *testing.T) {
	store := domain.NewStore("alice.near", validDetails())
	details := domain.ProductDetails{Name: "n", Description: "d", Image: "i", Price: 1}
	for _, id := range []string{"a", "b", "c", "d"} {
		store.AddProduct("alice.near", id, details, 1)
	}

	store.DeleteProduct(1)

	ids := make([]string, 0, len(store.StoreProducts))
	for _, p := range store.StoreProducts {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"a", "c", "d"}, ids)
}

func TestCloneIsDeep(t *testing.T) {
	store := domain.NewStore("alice.near", validDetails())
	store.AddProduct("alice.near", "p0", domain.ProductDetails{Name: "n", Description: "d", Image: "i", Price: 1}, 1)
	store.Rate("bob.near", 4)

	clone := store.Clone()
	clone.StoreProducts[0].Available = 99
	clone.Rates[0] = 1
	clone.Reviewers[0] = "mallory.near"

	require.NotSame(t, store, clone)
	assert.EqualValues(t, 1, store.StoreProducts[0].Available)
	assert.Equal(t, []int32{4}, store.Rates)
	assert.Equal(t, []string{"bob.near"}, store.Reviewers)

	var nilStore *domain.Store
	assert.Nil(t, nilStore.Clone())
}
