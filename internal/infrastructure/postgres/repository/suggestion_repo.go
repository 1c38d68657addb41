package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/LavaJover/shvark-expressstores-service/internal/domain"
	"github.com/LavaJover/shvark-expressstores-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-expressstores-service/internal/infrastructure/postgres/models"
)

// SuggestionSlot is the well-known key of the single suggestion list.
const SuggestionSlot = "all"

type DefaultSuggestionRepository struct {
	DB *gorm.DB
}

func NewDefaultSuggestionRepository(db *gorm.DB) *DefaultSuggestionRepository {
	return &DefaultSuggestionRepository{DB: db}
}

func (r *DefaultSuggestionRepository) LoadSuggestions(ctx context.Context) ([]domain.SuggestedProduct, error) {
	var rows []models.SuggestedProductModel
	err := r.DB.WithContext(ctx).
		Where("slot = ?", SuggestionSlot).
		Order("position ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return mappers.ToDomainSuggestedProducts(rows), nil
}

func (r *DefaultSuggestionRepository) SaveSuggestions(ctx context.Context, products []domain.SuggestedProduct) error {
	rows := mappers.ToGORMSuggestedProducts(SuggestionSlot, products)
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("slot = ?", SuggestionSlot).Delete(&models.SuggestedProductModel{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}
