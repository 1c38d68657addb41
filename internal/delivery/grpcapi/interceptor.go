package grpcapi

import (
	"context"
	"strconv"

	"github.com/LavaJover/shvark-expressstores-service/internal/domain"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	AccountIDHeader       = "x-account-id"
	AttachedDepositHeader = "x-attached-deposit"
)

type callContextKey struct{}

// CallContextInterceptor turns request metadata into a domain.CallContext.
// The timestamp is left for the marketplace to stamp when the call runs.
func CallContextInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		var call domain.CallContext
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get(AccountIDHeader); len(values) > 0 {
				call.Caller = values[0]
			}
			if values := md.Get(AttachedDepositHeader); len(values) > 0 && values[0] != "" {
				deposit, err := strconv.ParseUint(values[0], 10, 64)
				if err != nil {
					return nil, status.Errorf(codes.InvalidArgument, "invalid %s: %q", AttachedDepositHeader, values[0])
				}
				call.Deposit = deposit
			}
		}
		return handler(context.WithValue(ctx, callContextKey{}, call), req)
	}
}

// callFromContext returns the call context of a state-changing request.
func callFromContext(ctx context.Context) (domain.CallContext, error) {
	call, ok := ctx.Value(callContextKey{}).(domain.CallContext)
	if !ok || call.Caller == "" {
		return domain.CallContext{}, status.Errorf(codes.Unauthenticated, "%s is required", AccountIDHeader)
	}
	return call, nil
}

// WithCaller attaches the caller identity and payment to an outgoing context.
func WithCaller(ctx context.Context, accountID string, deposit uint64) context.Context {
	return metadata.AppendToOutgoingContext(ctx,
		AccountIDHeader, accountID,
		AttachedDepositHeader, strconv.FormatUint(deposit, 10),
	)
}
