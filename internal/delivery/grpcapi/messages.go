package grpcapi

import (
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type Empty struct{}

type StoreMessage struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Banner      string           `json:"banner"`
	Location    string           `json:"location"`
	Owner       string           `json:"owner"`
	Rating      uint32           `json:"rating"`
	Reviewers   []string         `json:"reviewers"`
	Rates       []int32          `json:"rates"`
	Products    []ProductMessage `json:"store_products"`
}

type ProductMessage struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Price       uint64 `json:"price,string"`
	Owner       string `json:"owner"`
	Sold        uint32 `json:"sold"`
	Available   uint32 `json:"available"`
}

type SuggestedProductMessage struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Image       string                 `json:"image"`
	LifeSpan    uint64                 `json:"life_span,string"`
	ExpiresAt   *timestamppb.Timestamp `json:"expires_at"`
}

type PurchasedReferenceMessage struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Location    string `json:"location"`
	Price       uint64 `json:"price,string"`
}

// Stores

type StoreRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Banner      string `json:"banner"`
	Location    string `json:"location"`
}

type StoreResponse struct {
	Store *StoreMessage `json:"store"`
}

type RateStoreRequest struct {
	StoreID string `json:"store_id"`
	Rating  int64  `json:"rating"`
}

type GetStoresResponse struct {
	Stores []StoreMessage `json:"stores"`
}

type GetStoreRequest struct {
	StoreID string `json:"store_id"`
}

// GetStoreResponse has a nil Store when none exists.
type GetStoreResponse struct {
	Store *StoreMessage `json:"store"`
}

// Products

type AddProductRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Price       uint64 `json:"price,string"`
	Available   uint32 `json:"available"`
}

type UpdateProductRequest struct {
	ProductID   string `json:"product_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Price       uint64 `json:"price,string"`
}

type AvailProductRequest struct {
	ProductID string `json:"product_id"`
	Amount    int64  `json:"amount"`
}

type DeleteProductRequest struct {
	ProductID string `json:"product_id"`
}

type ProductResponse struct {
	Product *ProductMessage `json:"product"`
}

type GetStoreProductsRequest struct {
	StoreID string `json:"store_id"`
}

type GetStoreProductsResponse struct {
	Found    bool             `json:"found"`
	Products []ProductMessage `json:"products"`
}

// Suggestions

type AddSuggestedProductRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type SuggestedProductResponse struct {
	Product *SuggestedProductMessage `json:"product"`
}

type GetSuggestedProductsResponse struct {
	Products []SuggestedProductMessage `json:"products"`
	Capacity int                       `json:"capacity"`
	TTL      *durationpb.Duration      `json:"ttl"`
}

// Purchases

type BuyProductRequest struct {
	StoreID   string `json:"store_id"`
	ProductID string `json:"product_id"`
}

type PurchaseResponse struct {
	Reference *PurchasedReferenceMessage `json:"reference"`
}

type DeletePurchasedReferenceRequest struct {
	Index int64 `json:"index"`
}

type GetPurchasedReferencesRequest struct {
	AccountID string `json:"account_id"`
}

type GetPurchasedReferencesResponse struct {
	Found      bool                        `json:"found"`
	References []PurchasedReferenceMessage `json:"references"`
}
