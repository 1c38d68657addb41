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

type DefaultStoreRepository struct {
	DB *gorm.DB
}

func NewDefaultStoreRepository(db *gorm.DB) *DefaultStoreRepository {
	return &DefaultStoreRepository{DB: db}
}

func orderedProducts(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func (r *DefaultStoreRepository) GetStore(ctx context.Context, ownerID string) (*domain.Store, error) {
	var model models.StoreModel
	err := r.DB.WithContext(ctx).
		Preload("Products", orderedProducts).
		First(&model, "id = ?", ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mappers.ToDomainStore(&model), nil
}

// SaveStore upserts the store row and rewrites its products so that their
// stored positions match the slice order.
func (r *DefaultStoreRepository) SaveStore(ctx context.Context, store *domain.Store) error {
	model := mappers.ToGORMStore(store)
	products := mappers.ToGORMProducts(store.ID, store.StoreProducts)

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Omit("Products").Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "description", "banner", "location", "rating", "reviewers", "rates", "updated_at",
			}),
		}).Create(model).Error
		if err != nil {
			return err
		}

		if err := tx.Where("store_id = ?", store.ID).Delete(&models.ProductModel{}).Error; err != nil {
			return err
		}
		if len(products) == 0 {
			return nil
		}
		return tx.Create(&products).Error
	})
}

func (r *DefaultStoreRepository) DeleteStore(ctx context.Context, ownerID string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("store_id = ?", ownerID).Delete(&models.ProductModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.StoreModel{}, "id = ?", ownerID).Error
	})
}

func (r *DefaultStoreRepository) ListStores(ctx context.Context) ([]*domain.Store, error) {
	var storeModels []models.StoreModel
	err := r.DB.WithContext(ctx).
		Preload("Products", orderedProducts).
		Order("created_at ASC").Order("id ASC").
		Find(&storeModels).Error
	if err != nil {
		return nil, err
	}

	stores := make([]*domain.Store, len(storeModels))
	for i := range storeModels {
		stores[i] = mappers.ToDomainStore(&storeModels[i])
	}
	return stores, nil
}
