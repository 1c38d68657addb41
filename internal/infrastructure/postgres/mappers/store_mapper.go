package mappers

import (
	"github.com/LavaJover/shvark-expressstores-service/internal/domain"
	"github.com/LavaJover/shvark-expressstores-service/internal/infrastructure/postgres/models"
)

func ToDomainStore(model *models.StoreModel) *domain.Store {
	store := &domain.Store{
		ID:            model.ID,
		Name:          model.Name,
		Description:   model.Description,
		Banner:        model.Banner,
		Location:      model.Location,
		Owner:         model.Owner,
		Rating:        model.Rating,
		Reviewers:     append([]string{}, model.Reviewers...),
		Rates:         append([]int32{}, model.Rates...),
		StoreProducts: make([]domain.Product, 0, len(model.Products)),
	}
	for i := range model.Products {
		store.StoreProducts = append(store.StoreProducts, ToDomainProduct(&model.Products[i]))
	}
	return store
}

// ToGORMStore maps the store row; products are mapped separately with
// ToGORMProducts so they can be rewritten as a block.
func ToGORMStore(store *domain.Store) *models.StoreModel {
	return &models.StoreModel{
		ID:          store.ID,
		Name:        store.Name,
		Description: store.Description,
		Banner:      store.Banner,
		Location:    store.Location,
		Owner:       store.Owner,
		Rating:      store.Rating,
		Reviewers:   append([]string{}, store.Reviewers...),
		Rates:       append([]int32{}, store.Rates...),
	}
}

func ToDomainProduct(model *models.ProductModel) domain.Product {
	return domain.Product{
		CatalogItem: domain.CatalogItem{
			ID:          model.ID,
			Name:        model.Name,
			Description: model.Description,
			Image:       model.Image,
		},
		Price:     model.Price,
		Owner:     model.Owner,
		Sold:      model.Sold,
		Available: model.Available,
	}
}

func ToGORMProducts(storeID string, products []domain.Product) []models.ProductModel {
	rows := make([]models.ProductModel, len(products))
	for i, p := range products {
		rows[i] = models.ProductModel{
			StoreID:     storeID,
			ID:          p.ID,
			Position:    i,
			Name:        p.Name,
			Description: p.Description,
			Image:       p.Image,
			Price:       p.Price,
			Owner:       p.Owner,
			Sold:        p.Sold,
			Available:   p.Available,
		}
	}
	return rows
}
