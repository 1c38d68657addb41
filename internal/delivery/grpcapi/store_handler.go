package grpcapi

import (
	"context"

	storedto "github.com/LavaJover/shvark-expressstores-service/internal/usecase/dto/store"
)

func storeInput(req *StoreRequest) *storedto.StoreInput {
	return &storedto.StoreInput{
		Name:        req.Name,
		Description: req.Description,
		Banner:      req.Banner,
		Location:    req.Location,
	}
}

func (h *MarketplaceHandler) CreateStore(ctx context.Context, req *StoreRequest) (*StoreResponse, error) {
	call, err := callFromContext(ctx)
	if err != nil {
		return nil, err
	}
	store, err := h.uc.CreateStore(ctx, call, storeInput(req))
	if err != nil {
		return nil, toStatus("CreateStore", err)
	}
	return &StoreResponse{Store: toStoreMessage(store)}, nil
}

func (h *MarketplaceHandler) UpdateStore(ctx context.Context, req *StoreRequest) (*StoreResponse, error) {
	call, err := callFromContext(ctx)
	if err != nil {
		return nil, err
	}
	store, err := h.uc.UpdateStore(ctx, call, storeInput(req))
	if err != nil {
		return nil, toStatus("UpdateStore", err)
	}
	return &StoreResponse{Store: toStoreMessage(store)}, nil
}

func (h *MarketplaceHandler) DeleteStore(ctx context.Context, _ *Empty) (*Empty, error) {
	call, err := callFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.uc.DeleteStore(ctx, call); err != nil {
		return nil, toStatus("DeleteStore", err)
	}
	return &Empty{}, nil
}

func (h *MarketplaceHandler) RateStore(ctx context.Context, req *RateStoreRequest) (*StoreResponse, error) {
	call, err := callFromContext(ctx)
	if err != nil {
		return nil, err
	}
	store, err := h.uc.RateStore(ctx, call, req.StoreID, req.Rating)
	if err != nil {
		return nil, toStatus("RateStore", err)
	}
	return &StoreResponse{Store: toStoreMessage(store)}, nil
}

func (h *MarketplaceHandler) GetStores(ctx context.Context, _ *Empty) (*GetStoresResponse, error) {
	stores, err := h.uc.GetStores(ctx)
	if err != nil {
		return nil, toStatus("GetStores", err)
	}
	response := &GetStoresResponse{Stores: make([]StoreMessage, 0, len(stores))}
	for _, store := range stores {
		response.Stores = append(response.Stores, *toStoreMessage(store))
	}
	return response, nil
}

func (h *MarketplaceHandler) GetStore(ctx context.Context, req *GetStoreRequest) (*GetStoreResponse, error) {
	store, err := h.uc.GetStore(ctx, req.StoreID)
	if err != nil {
		return nil, toStatus("GetStore", err)
	}
	return &GetStoreResponse{Store: toStoreMessage(store)}, nil
}
