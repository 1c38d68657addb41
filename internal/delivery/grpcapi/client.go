package grpcapi

import (
	"context"

	"google.golang.org/grpc"
)

// MarketplaceClient calls the Marketplace service with the JSON codec.
// Use WithCaller to attach the caller identity to state-changing calls.
type MarketplaceClient struct {
	cc grpc.ClientConnInterface
}

func NewMarketplaceClient(cc grpc.ClientConnInterface) *MarketplaceClient {
	return &MarketplaceClient{cc: cc}
}

func (c *MarketplaceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, FullMethod(method), in, out, opts...)
}

func (c *MarketplaceClient) CreateStore(ctx context.Context, in *StoreRequest, opts ...grpc.CallOption) (*StoreResponse, error) {
	out := new(StoreResponse)
	if err := c.invoke(ctx, "CreateStore", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *MarketplaceClient) UpdateStore(ctx context.Context, in *StoreRequest, opts ...grpc.CallOption) (*StoreResponse, error) {
	out := new(StoreResponse)
	if err := c.invoke(ctx, "UpdateStore", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *MarketplaceClient) DeleteStore(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.invoke(ctx, "DeleteStore", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *MarketplaceClient) AddProduct(ctx context.Context, in *AddProductRequest, opts ...grpc.CallOption) (*ProductResponse, error) {
	out := new(ProductResponse)
	if err := c.invoke(ctx, "AddProduct", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *MarketplaceClient) UpdateProduct(ctx context.Context, in *UpdateProductRequest, opts ...grpc.CallOption) (*ProductResponse, error) {
	out := new(ProductResponse)
	if err := c.invoke(ctx, "UpdateProduct", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *MarketplaceClient) AvailProduct(ctx context.Context, in *AvailProductRequest, opts ...grpc.CallOption) (*ProductResponse, error) {
	out := new(ProductResponse)
	if err := c.invoke(ctx, "AvailProduct", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *MarketplaceClient) DeleteProduct(ctx context.Context, in *DeleteProductRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.invoke(ctx, "DeleteProduct", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *MarketplaceClient) RateStore(ctx context.Context, in *RateStoreRequest, opts ...grpc.CallOption) (*StoreResponse, error) {
	out := new(StoreResponse)
	if err := c.invoke(ctx, "RateStore", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *MarketplaceClient) GetStores(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*GetStoresResponse, error) {
	out := new(GetStoresResponse)
	if err := c.invoke(ctx, "GetStores", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *MarketplaceClient) GetStore(ctx context.Context, in *GetStoreRequest, opts ...grpc.CallOption) (*GetStoreResponse, error) {
	out := new(GetStoreResponse)
	if err := c.invoke(ctx, "GetStore", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *MarketplaceClient) GetStoreProducts(ctx context.Context, in *GetStoreProductsRequest, opts ...grpc.CallOption) (*GetStoreProductsResponse, error) {
	out := new(GetStoreProductsResponse)
	if err := c.invoke(ctx, "GetStoreProducts", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *MarketplaceClient) AddSuggestedProduct(ctx context.Context, in *AddSuggestedProductRequest, opts ...grpc.CallOption) (*SuggestedProductResponse, error) {
	out := new(SuggestedProductResponse)
	if err := c.invoke(ctx, "AddSuggestedProduct", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *MarketplaceClient) GetSuggestedProducts(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*GetSuggestedProductsResponse, error) {
	out := new(GetSuggestedProductsResponse)
	if err := c.invoke(ctx, "GetSuggestedProducts", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *MarketplaceClient) BuyProduct(ctx context.Context, in *BuyProductRequest, opts ...grpc.CallOption) (*PurchaseResponse, error) {
	out := new(PurchaseResponse)
	if err := c.invoke(ctx, "BuyProduct", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *MarketplaceClient) DeletePurchasedReference(ctx context.Context, in *DeletePurchasedReferenceRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	if err := c.invoke(ctx, "DeletePurchasedReference", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *MarketplaceClient) GetPurchasedReferences(ctx context.Context, in *GetPurchasedReferencesRequest, opts ...grpc.CallOption) (*GetPurchasedReferencesResponse, error) {
	out := new(GetPurchasedReferencesResponse)
	if err := c.invoke(ctx, "GetPurchasedReferences", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
