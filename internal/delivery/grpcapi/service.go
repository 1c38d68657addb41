package grpcapi

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "expressstores.v1.Marketplace"

type MarketplaceServer interface {
	CreateStore(context.Context, *StoreRequest) (*StoreResponse, error)
	UpdateStore(context.Context, *StoreRequest) (*StoreResponse, error)
	DeleteStore(context.Context, *Empty) (*Empty, error)
	AddProduct(context.Context, *AddProductRequest) (*ProductResponse, error)
	UpdateProduct(context.Context, *UpdateProductRequest) (*ProductResponse, error)
	AvailProduct(context.Context, *AvailProductRequest) (*ProductResponse, error)
	DeleteProduct(context.Context, *DeleteProductRequest) (*Empty, error)
	RateStore(context.Context, *RateStoreRequest) (*StoreResponse, error)
	GetStores(context.Context, *Empty) (*GetStoresResponse, error)
	GetStore(context.Context, *GetStoreRequest) (*GetStoreResponse, error)
	GetStoreProducts(context.Context, *GetStoreProductsRequest) (*GetStoreProductsResponse, error)
	AddSuggestedProduct(context.Context, *AddSuggestedProductRequest) (*SuggestedProductResponse, error)
	GetSuggestedProducts(context.Context, *Empty) (*GetSuggestedProductsResponse, error)
	BuyProduct(context.Context, *BuyProductRequest) (*PurchaseResponse, error)
	DeletePurchasedReference(context.Context, *DeletePurchasedReferenceRequest) (*Empty, error)
	GetPurchasedReferences(context.Context, *GetPurchasedReferencesRequest) (*GetPurchasedReferencesResponse, error)
}

func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

func unary[Req, Resp any](method string, call func(MarketplaceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(MarketplaceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: FullMethod(method),
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(MarketplaceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

var marketplaceServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MarketplaceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("CreateStore", MarketplaceServer.CreateStore),
		unary("UpdateStore", MarketplaceServer.UpdateStore),
		unary("DeleteStore", MarketplaceServer.DeleteStore),
		unary("AddProduct", MarketplaceServer.AddProduct),
		unary("UpdateProduct", MarketplaceServer.UpdateProduct),
		unary("AvailProduct", MarketplaceServer.AvailProduct),
		unary("DeleteProduct", MarketplaceServer.DeleteProduct),
		unary("RateStore", MarketplaceServer.RateStore),
		unary("GetStores", MarketplaceServer.GetStores),
		unary("GetStore", MarketplaceServer.GetStore),
		unary("GetStoreProducts", MarketplaceServer.GetStoreProducts),
		unary("AddSuggestedProduct", MarketplaceServer.AddSuggestedProduct),
		unary("GetSuggestedProducts", MarketplaceServer.GetSuggestedProducts),
		unary("BuyProduct", MarketplaceServer.BuyProduct),
		unary("DeletePurchasedReference", MarketplaceServer.DeletePurchasedReference),
		unary("GetPurchasedReferences", MarketplaceServer.GetPurchasedReferences),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "expressstores/v1/marketplace",
}

func RegisterMarketplaceServer(s grpc.ServiceRegistrar, srv MarketplaceServer) {
	s.RegisterService(&marketplaceServiceDesc, srv)
}
