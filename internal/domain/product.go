package domain

import "math"

// MaxPrice is the largest price a product may carry. Prices and payments
// are persisted as signed 64-bit integers.
const MaxPrice uint64 = math.MaxInt64

// Product is a sellable item that belongs to exactly one store.
type Product struct {
	CatalogItem
	Price     uint64 `json:"price"`
	Owner     string `json:"owner"`
	Sold      uint32 `json:"sold"`
	Available uint32 `json:"available"`
}

// ProductDetails are the owner-editable fields of a product.
type ProductDetails struct {
	Name        string
	Description string
	Image       string
	Price       uint64
}

func (d ProductDetails) Valid() bool {
	return d.Name != "" && d.Description != "" && d.Image != "" && d.Price > 0 && d.Price <= MaxPrice
}

// RecordSale moves one unit from available to sold.
func (p *Product) RecordSale() {
	p.Sold++
	p.Available--
}

func (p *Product) Restock(amount uint32) {
	p.Available += amount
}

func (p *Product) apply(d ProductDetails) {
	p.Name = d.Name
	p.Description = d.Description
	p.Image = d.Image
	p.Price = d.Price
}
