package models

import "time"

type StoreModel struct {
	ID          string         `gorm:"primaryKey"`
	Name        string         `gorm:"not null"`
	Description string         `gorm:"not null"`
	Banner      string         `gorm:"not null"`
	Location    string         `gorm:"not null"`
	Owner       string         `gorm:"not null;index:idx_stores_owner"`
	Rating      uint32         `gorm:"not null;default:0"`
	Reviewers   []string       `gorm:"type:jsonb;serializer:json;not null"`
	Rates       []int32        `gorm:"type:jsonb;serializer:json;not null"`
	Products    []ProductModel `gorm:"foreignKey:StoreID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time      `gorm:"index:idx_stores_created_at"`
	UpdatedAt   time.Time
}

func (StoreModel) TableName() string {
	return "stores"
}

// ProductModel rows are ordered within their store by Position.
type ProductModel struct {
	StoreID     string `gorm:"primaryKey"`
	ID          string `gorm:"primaryKey"`
	Position    int    `gorm:"not null"`
	Name        string `gorm:"not null"`
	Description string `gorm:"not null"`
	Image       string `gorm:"not null"`
	Price       uint64 `gorm:"not null"`
	Owner       string `gorm:"not null"`
	Sold        uint32 `gorm:"not null;default:0"`
	Available   uint32 `gorm:"not null;default:0"`
}

func (ProductModel) TableName() string {
	return "store_products"
}
