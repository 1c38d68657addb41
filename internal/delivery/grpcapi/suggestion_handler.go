package grpcapi

import (
	"context"
	"time"

	"github.com/LavaJover/shvark-expressstores-service/internal/domain"
	suggestiondto "github.com/LavaJover/shvark-expressstores-service/internal/usecase/dto/suggestion"
	"google.golang.org/protobuf/types/known/durationpb"
)

func (h *MarketplaceHandler) AddSuggestedProduct(ctx context.Context, req *AddSuggestedProductRequest) (*SuggestedProductResponse, error) {
	call, err := callFromContext(ctx)
	if err != nil {
		return nil, err
	}
	product, err := h.uc.AddSuggestedProduct(ctx, call, &suggestiondto.SuggestedProductInput{
		ID:          h.idOrNew(req.ID),
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		return nil, toStatus("AddSuggestedProduct", err)
	}
	message := toSuggestedProductMessage(*product)
	return &SuggestedProductResponse{Product: &message}, nil
}

func (h *MarketplaceHandler) GetSuggestedProducts(ctx context.Context, _ *Empty) (*GetSuggestedProductsResponse, error) {
	products, err := h.uc.GetSuggestedProducts(ctx)
	if err != nil {
		return nil, toStatus("GetSuggestedProducts", err)
	}
	response := &GetSuggestedProductsResponse{
		Products: make([]SuggestedProductMessage, 0, len(products)),
		Capacity: domain.MaxSuggestedProducts,
		TTL:      durationpb.New(time.Duration(domain.SuggestedProductTTL)),
	}
	for _, product := range products {
		response.Products = append(response.Products, toSuggestedProductMessage(product))
	}
	return response, nil
}
