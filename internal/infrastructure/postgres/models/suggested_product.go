package models

type SuggestedProductModel struct {
	Slot        string `gorm:"primaryKey"`
	Position    int    `gorm:"primaryKey"`
	ID          string
	Name        string `gorm:"not null"`
	Description string `gorm:"not null"`
	Image       string `gorm:"not null"`
	LifeSpan    uint64 `gorm:"not null"`
}

func (SuggestedProductModel) TableName() string {
	return "suggested_products"
}
