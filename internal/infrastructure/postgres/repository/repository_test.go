package repository_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/LavaJover/shvark-expressstores-service/internal/domain"
	"github.com/LavaJover/shvark-expressstores-service/internal/infrastructure/postgres/models"
	"github.com/LavaJover/shvark-expressstores-service/internal/infrastructure/postgres/repository"
)

// tickingNow hands out strictly increasing timestamps so created_at
// ordering does not depend on clock resolution.
type tickingNow struct {
	mu   sync.Mutex
	next time.Time
}

func (n *tickingNow) Now() time.Time {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.next = n.next.Add(time.Second)
	return n.next
}

type RepositorySuite struct {
	suite.Suite

	ctx         context.Context
	db          *gorm.DB
	stores      *repository.DefaultStoreRepository
	suggestions *repository.DefaultSuggestionRepository
	purchases   *repository.DefaultPurchaseRepository
}

func (s *RepositorySuite) SetupTest() {
	s.ctx = context.Background()
	clock := &tickingNow{next: time.Date(2026, time.October, 17, 9, 0, 0, 0, time.UTC)}

	db, err := gorm.Open(sqlite.Open(filepath.Join(s.T().TempDir(), "marketplace.db")), &gorm.Config{
		Logger:  gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: clock.Now,
	})
	s.Require().NoError(err)
	s.Require().NoError(db.AutoMigrate(
		&models.StoreModel{},
		&models.ProductModel{},
		&models.SuggestedProductModel{},
		&models.PurchaseLedgerModel{},
		&models.PurchasedReferenceModel{},
	))

	s.db = db
	s.stores = repository.NewDefaultStoreRepository(db)
	s.suggestions = repository.NewDefaultSuggestionRepository(db)
	s.purchases = repository.NewDefaultPurchaseRepository(db)
}

func TestRepositories(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}

func newStore(owner string) *domain.Store {
	return domain.NewStore(owner, domain.StoreDetails{
		Name:        "Store of " + owner,
		Description: "Fresh goods every day",
		Banner:      "https://img.example/banner.png",
		Location:    "Porto",
	})
}

func details(price uint64) domain.ProductDetails {
	return domain.ProductDetails{Name: "n", Description: "d", Image: "i", Price: price}
}

func productIDs(products []domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func (s *RepositorySuite) TestGetMissingStore() {
	store, err := s.stores.GetStore(s.ctx, "nobody.near")
	s.Require().NoError(err)
	s.Nil(store)
}

func (s *RepositorySuite) TestProductsKeepSliceOrder() {
	store := newStore("alice.near")
	store.AddProduct("alice.near", "p3", details(30), 1)
	store.AddProduct("alice.near", "p1", details(10), 2)
	store.AddProduct("alice.near", "p2", details(20), 3)
	s.Require().NoError(s.stores.SaveStore(s.ctx, store))

	loaded, err := s.stores.GetStore(s.ctx, "alice.near")
	s.Require().NoError(err)
	s.Equal([]string{"p3", "p1", "p2"}, productIDs(loaded.StoreProducts))
	s.EqualValues(20, loaded.StoreProducts[2].Price)
	s.EqualValues(3, loaded.StoreProducts[2].Available)

	loaded.DeleteProduct(0)
	loaded.AddProduct("alice.near", "p0", details(5), 1)
	s.Require().NoError(s.stores.SaveStore(s.ctx, loaded))

	reloaded, err := s.stores.GetStore(s.ctx, "alice.near")
	s.Require().NoError(err)
	s.Equal([]string{"p1", "p2", "p0"}, productIDs(reloaded.StoreProducts))

	var rows int64
	s.Require().NoError(s.db.Model(&models.ProductModel{}).Where("store_id = ?", "alice.near").Count(&rows).Error)
	s.EqualValues(3, rows)
}

func (s *RepositorySuite) TestSaveStoreUpdatesInPlace() {
	s.Require().NoError(s.stores.SaveStore(s.ctx, newStore("zed.near")))
	s.Require().NoError(s.stores.SaveStore(s.ctx, newStore("amy.near")))

	zed, err := s.stores.GetStore(s.ctx, "zed.near")
	s.Require().NoError(err)
	zed.UpdateDetails(domain.StoreDetails{Name: "Zed's", Description: "New", Banner: "b.png", Location: "Lisbon"})
	zed.Rate("amy.near", 4)
	zed.Rate("bob.near", 1)
	s.Require().NoError(s.stores.SaveStore(s.ctx, zed))

	loaded, err := s.stores.GetStore(s.ctx, "zed.near")
	s.Require().NoError(err)
	s.Equal("Zed's", loaded.Name)
	s.Equal("Lisbon", loaded.Location)
	s.Equal([]string{"amy.near", "bob.near"}, loaded.Reviewers)
	s.Equal([]int32{4, 1}, loaded.Rates)
	s.EqualValues(2, loaded.Rating)
	s.Equal("zed.near", loaded.Owner)

	stores, err := s.stores.ListStores(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(stores, 2)
	s.Equal("zed.near", stores[0].ID)
	s.Equal("amy.near", stores[1].ID)
}

func (s *RepositorySuite) TestDeleteStoreRemovesProducts() {
	store := newStore("alice.near")
	store.AddProduct("alice.near", "p1", details(10), 1)
	s.Require().NoError(s.stores.SaveStore(s.ctx, store))

	s.Require().NoError(s.stores.DeleteStore(s.ctx, "alice.near"))

	loaded, err := s.stores.GetStore(s.ctx, "alice.near")
	s.Require().NoError(err)
	s.Nil(loaded)

	var rows int64
	s.Require().NoError(s.db.Model(&models.ProductModel{}).Count(&rows).Error)
	s.Zero(rows)
}

func (s *RepositorySuite) TestSuggestionsKeepOrder() {
	loaded, err := s.suggestions.LoadSuggestions(s.ctx)
	s.Require().NoError(err)
	s.Nil(loaded)

	now := uint64(time.Date(2026, time.October, 17, 9, 30, 0, 0, time.UTC).UnixNano())
	var products []domain.SuggestedProduct
	for i, id := range []string{"c", "a", "b"} {
		item := domain.CatalogItem{ID: id, Name: "n", Description: "d", Image: "i"}
		products = append(products, domain.NewSuggestedProduct(item, now+uint64(i)))
	}
	s.Require().NoError(s.suggestions.SaveSuggestions(s.ctx, products))

	loaded, err = s.suggestions.LoadSuggestions(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(loaded, 3)
	s.Equal("c", loaded[0].ID)
	s.Equal("b", loaded[2].ID)
	s.Equal(now+2+domain.SuggestedProductTTL, loaded[2].LifeSpan)

	s.Require().NoError(s.suggestions.SaveSuggestions(s.ctx, domain.RemoveAt(loaded, 0)))
	loaded, err = s.suggestions.LoadSuggestions(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(loaded, 2)
	s.Equal("a", loaded[0].ID)
}

func (s *RepositorySuite) TestReferencesDistinguishMissingFromEmptied() {
	refs, err := s.purchases.GetReferences(s.ctx, "bob.near")
	s.Require().NoError(err)
	s.Nil(refs)

	bought := []domain.PurchasedReference{
		{CatalogItem: domain.CatalogItem{ID: "p2", Name: "n", Description: "d", Image: "i"}, Location: "Porto", Price: 20},
		{CatalogItem: domain.CatalogItem{ID: "p1", Name: "n", Description: "d", Image: "i"}, Location: "Porto", Price: 10},
	}
	s.Require().NoError(s.purchases.SaveReferences(s.ctx, "bob.near", bought))

	refs, err = s.purchases.GetReferences(s.ctx, "bob.near")
	s.Require().NoError(err)
	s.Equal(bought, refs)

	s.Require().NoError(s.purchases.SaveReferences(s.ctx, "bob.near", nil))
	refs, err = s.purchases.GetReferences(s.ctx, "bob.near")
	s.Require().NoError(err)
	s.NotNil(refs)
	s.Empty(refs)

	other, err := s.purchases.GetReferences(s.ctx, "carol.near")
	s.Require().NoError(err)
	s.Nil(other)
}
