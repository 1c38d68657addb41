package grpcapi

import (
	"github.com/LavaJover/shvark-expressstores-service/internal/domain"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func toStoreMessage(store *domain.Store) *StoreMessage {
	if store == nil {
		return nil
	}
	return &StoreMessage{
		ID:          store.ID,
		Name:        store.Name,
		Description: store.Description,
		Banner:      store.Banner,
		Location:    store.Location,
		Owner:       store.Owner,
		Rating:      store.Rating,
		Reviewers:   store.Reviewers,
		Rates:       store.Rates,
		Products:    toProductMessages(store.StoreProducts),
	}
}

func toProductMessage(product domain.Product) ProductMessage {
	return ProductMessage{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Image:       product.Image,
		Price:       product.Price,
		Owner:       product.Owner,
		Sold:        product.Sold,
		Available:   product.Available,
	}
}

func toProductMessages(products []domain.Product) []ProductMessage {
	messages := make([]ProductMessage, 0, len(products))
	for _, product := range products {
		messages = append(messages, toProductMessage(product))
	}
	return messages
}

func toSuggestedProductMessage(product domain.SuggestedProduct) SuggestedProductMessage {
	return SuggestedProductMessage{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Image:       product.Image,
		LifeSpan:    product.LifeSpan,
		ExpiresAt:   timestamppb.New(product.ExpiresAt()),
	}
}

func toPurchasedReferenceMessage(reference domain.PurchasedReference) PurchasedReferenceMessage {
	return PurchasedReferenceMessage{
		ID:          reference.ID,
		Name:        reference.Name,
		Description: reference.Description,
		Image:       reference.Image,
		Location:    reference.Location,
		Price:       reference.Price,
	}
}
