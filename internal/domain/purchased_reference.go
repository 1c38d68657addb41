package domain

// PurchasedReference is an immutable receipt of a completed purchase. Price
// and location are copied at purchase time.
type PurchasedReference struct {
	CatalogItem
	Location string `json:"location"`
	Price    uint64 `json:"price"`
}

func NewPurchasedReference(p Product, location string) PurchasedReference {
	return PurchasedReference{
		CatalogItem: p.CatalogItem,
		Location:    location,
		Price:       p.Price,
	}
}
