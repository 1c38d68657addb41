package grpcapi

import (
	"context"

	productdto "github.com/LavaJover/shvark-expressstores-service/internal/usecase/dto/product"
)

func (h *MarketplaceHandler) AddProduct(ctx context.Context, req *AddProductRequest) (*ProductResponse, error) {
	call, err := callFromContext(ctx)
	if err != nil {
		return nil, err
	}
	product, err := h.uc.AddProduct(ctx, call, &productdto.CreateProductInput{
		ID:          h.idOrNew(req.ID),
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Price:       req.Price,
		Available:   req.Available,
	})
	if err != nil {
		return nil, toStatus("AddProduct", err)
	}
	message := toProductMessage(*product)
	return &ProductResponse{Product: &message}, nil
}

func (h *MarketplaceHandler) UpdateProduct(ctx context.Context, req *UpdateProductRequest) (*ProductResponse, error) {
	call, err := callFromContext(ctx)
	if err != nil {
		return nil, err
	}
	product, err := h.uc.UpdateProduct(ctx, call, req.ProductID, &productdto.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Price:       req.Price,
	})
	if err != nil {
		return nil, toStatus("UpdateProduct", err)
	}
	message := toProductMessage(*product)
	return &ProductResponse{Product: &message}, nil
}

func (h *MarketplaceHandler) AvailProduct(ctx context.Context, req *AvailProductRequest) (*ProductResponse, error) {
	call, err := callFromContext(ctx)
	if err != nil {
		return nil, err
	}
	product, err := h.uc.AvailProduct(ctx, call, req.ProductID, req.Amount)
	if err != nil {
		return nil, toStatus("AvailProduct", err)
	}
	message := toProductMessage(*product)
	return &ProductResponse{Product: &message}, nil
}

func (h *MarketplaceHandler) DeleteProduct(ctx context.Context, req *DeleteProductRequest) (*Empty, error) {
	call, err := callFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.uc.DeleteProduct(ctx, call, req.ProductID); err != nil {
		return nil, toStatus("DeleteProduct", err)
	}
	return &Empty{}, nil
}

func (h *MarketplaceHandler) GetStoreProducts(ctx context.Context, req *GetStoreProductsRequest) (*GetStoreProductsResponse, error) {
	products, err := h.uc.GetStoreProducts(ctx, req.StoreID)
	if err != nil {
		return nil, toStatus("GetStoreProducts", err)
	}
	if products == nil {
		return &GetStoreProductsResponse{}, nil
	}
	return &GetStoreProductsResponse{Found: true, Products: toProductMessages(products)}, nil
}
