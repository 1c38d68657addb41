package grpcapi

import (
	"errors"
	"fmt"
	"testing"

	"github.com/LavaJover/shvark-expressstores-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestCodeOf(t *testing.T) {
	tests := map[domain.ErrorKind]codes.Code{
		domain.KindInvalidPayload:   codes.InvalidArgument,
		domain.KindOutOfRange:       codes.InvalidArgument,
		domain.KindIndexOutOfRange:  codes.InvalidArgument,
		domain.KindInvalidIdentity:  codes.InvalidArgument,
		domain.KindAlreadyExists:    codes.AlreadyExists,
		domain.KindNotFound:         codes.NotFound,
		domain.KindUnauthorized:     codes.PermissionDenied,
		domain.KindSelfRating:       codes.PermissionDenied,
		domain.KindUnavailable:      codes.FailedPrecondition,
		domain.KindPriceMismatch:    codes.FailedPrecondition,
		domain.KindCapacityExceeded: codes.FailedPrecondition,
		domain.ErrorKind("OTHER"):   codes.Internal,
	}
	for kind, want := range tests {
		assert.Equal(t, want, codeOf(kind), kind)
	}
}

func TestToStatus(t *testing.T) {
	assert.NoError(t, toStatus("Op", nil))

	wrapped := fmt.Errorf("outer: %w", domain.NewError(domain.KindNotFound, "A store with x does not exist"))
	err := toStatus("Op", wrapped)
	st, _ := status.FromError(err)
	assert.Equal(t, codes.NotFound, st.Code())
	assert.Equal(t, "A store with x does not exist", st.Message())
	assert.Equal(t, domain.KindNotFound, KindFromError(err))

	err = toStatus("Op", errors.New("disk on fire"))
	st, _ = status.FromError(err)
	assert.Equal(t, codes.Internal, st.Code())
	assert.Equal(t, domain.ErrorKind(""), KindFromError(err))

	passthrough := status.Error(codes.Unauthenticated, "no caller")
	assert.Equal(t, passthrough, toStatus("Op", passthrough))
}
