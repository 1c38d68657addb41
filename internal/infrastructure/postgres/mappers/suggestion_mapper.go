package mappers

import (
	"github.com/LavaJover/shvark-expressstores-service/internal/domain"
	"github.com/LavaJover/shvark-expressstores-service/internal/infrastructure/postgres/models"
)

func ToDomainSuggestedProducts(rows []models.SuggestedProductModel) []domain.SuggestedProduct {
	products := make([]domain.SuggestedProduct, len(rows))
	for i, row := range rows {
		products[i] = domain.SuggestedProduct{
			CatalogItem: domain.CatalogItem{
				ID:          row.ID,
				Name:        row.Name,
				Description: row.Description,
				Image:       row.Image,
			},
			LifeSpan: row.LifeSpan,
		}
	}
	return products
}

func ToGORMSuggestedProducts(slot string, products []domain.SuggestedProduct) []models.SuggestedProductModel {
	rows := make([]models.SuggestedProductModel, len(products))
	for i, p := range products {
		rows[i] = models.SuggestedProductModel{
			Slot:        slot,
			Position:    i,
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Image:       p.Image,
			LifeSpan:    p.LifeSpan,
		}
	}
	return rows
}
