package mappers

import (
	"github.com/LavaJover/shvark-expressstores-service/internal/domain"
	"github.com/LavaJover/shvark-expressstores-service/internal/infrastructure/postgres/models"
)

func ToDomainPurchasedReferences(rows []models.PurchasedReferenceModel) []domain.PurchasedReference {
	refs := make([]domain.PurchasedReference, len(rows))
	for i, row := range rows {
		refs[i] = domain.PurchasedReference{
			CatalogItem: domain.CatalogItem{
				ID:          row.ProductID,
				Name:        row.Name,
				Description: row.Description,
				Image:       row.Image,
			},
			Location: row.Location,
			Price:    row.Price,
		}
	}
	return refs
}

func ToGORMPurchasedReferences(buyerID string, refs []domain.PurchasedReference) []models.PurchasedReferenceModel {
	rows := make([]models.PurchasedReferenceModel, len(refs))
	for i, ref := range refs {
		rows[i] = models.PurchasedReferenceModel{
			BuyerID:     buyerID,
			Position:    i,
			ProductID:   ref.ID,
			Name:        ref.Name,
			Description: ref.Description,
			Image:       ref.Image,
			Location:    ref.Location,
			Price:       ref.Price,
		}
	}
	return rows
}
