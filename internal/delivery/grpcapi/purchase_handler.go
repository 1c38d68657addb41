package grpcapi

import "context"

func (h *MarketplaceHandler) BuyProduct(ctx context.Context, req *BuyProductRequest) (*PurchaseResponse, error) {
	call, err := callFromContext(ctx)
	if err != nil {
		return nil, err
	}
	reference, err := h.uc.BuyProduct(ctx, call, req.StoreID, req.ProductID)
	if err != nil {
		return nil, toStatus("BuyProduct", err)
	}
	message := toPurchasedReferenceMessage(*reference)
	return &PurchaseResponse{Reference: &message}, nil
}

func (h *MarketplaceHandler) DeletePurchasedReference(ctx context.Context, req *DeletePurchasedReferenceRequest) (*Empty, error) {
	call, err := callFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := h.uc.DeletePurchasedReference(ctx, call, req.Index); err != nil {
		return nil, toStatus("DeletePurchasedReference", err)
	}
	return &Empty{}, nil
}

func (h *MarketplaceHandler) GetPurchasedReferences(ctx context.Context, req *GetPurchasedReferencesRequest) (*GetPurchasedReferencesResponse, error) {
	references, err := h.uc.GetPurchasedReferences(ctx, req.AccountID)
	if err != nil {
		return nil, toStatus("GetPurchasedReferences", err)
	}
	if references == nil {
		return &GetPurchasedReferencesResponse{}, nil
	}
	response := &GetPurchasedReferencesResponse{
		Found:      true,
		References: make([]PurchasedReferenceMessage, 0, len(references)),
	}
	for _, reference := range references {
		response.References = append(response.References, toPurchasedReferenceMessage(reference))
	}
	return response, nil
}
