package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/LavaJover/shvark-expressstores-service/internal/domain"
	"github.com/LavaJover/shvark-expressstores-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-expressstores-service/internal/infrastructure/postgres/models"
)

type DefaultPurchaseRepository struct {
	DB *gorm.DB
}

func NewDefaultPurchaseRepository(db *gorm.DB) *DefaultPurchaseRepository {
	return &DefaultPurchaseRepository{DB: db}
}

func (r *DefaultPurchaseRepository) GetReferences(ctx context.Context, buyerID string) ([]domain.PurchasedReference, error) {
	var ledger models.PurchaseLedgerModel
	err := r.DB.WithContext(ctx).
		Preload("References", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&ledger, "buyer_id = ?", buyerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mappers.ToDomainPurchasedReferences(ledger.References), nil
}

func (r *DefaultPurchaseRepository) SaveReferences(ctx context.Context, buyerID string, refs []domain.PurchasedReference) error {
	rows := mappers.ToGORMPurchasedReferences(buyerID, refs)
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ledger := models.PurchaseLedgerModel{BuyerID: buyerID}
		err := tx.Omit("References").Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "buyer_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"updated_at"}),
		}).Create(&ledger).Error
		if err != nil {
			return err
		}

		if err := tx.Where("buyer_id = ?", buyerID).Delete(&models.PurchasedReferenceModel{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}
