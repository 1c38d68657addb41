package models

import "time"

// PurchaseLedgerModel marks that a buyer has a reference list, even when
// every reference in it was discarded.
type PurchaseLedgerModel struct {
	BuyerID    string                    `gorm:"primaryKey"`
	References []PurchasedReferenceModel `gorm:"foreignKey:BuyerID;references:BuyerID;constraint:OnDelete:CASCADE;"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (PurchaseLedgerModel) TableName() string {
	return "purchase_ledgers"
}

type PurchasedReferenceModel struct {
	BuyerID     string `gorm:"primaryKey"`
	Position    int    `gorm:"primaryKey"`
	ProductID   string `gorm:"not null"`
	Name        string `gorm:"not null"`
	Description string `gorm:"not null"`
	Image       string `gorm:"not null"`
	Location    string `gorm:"not null"`
	Price       uint64 `gorm:"not null"`
}

func (PurchasedReferenceModel) TableName() string {
	return "purchased_references"
}
