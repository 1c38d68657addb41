package grpcapi

import (
	"errors"
	"log/slog"

	"github.com/LavaJover/shvark-expressstores-service/internal/domain"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorDomain tags the ErrorInfo detail attached to every rule violation.
const ErrorDomain = "expressstores"

func codeOf(kind domain.ErrorKind) codes.Code {
	switch kind {
	case domain.KindInvalidPayload, domain.KindOutOfRange, domain.KindIndexOutOfRange, domain.KindInvalidIdentity:
		return codes.InvalidArgument
	case domain.KindAlreadyExists:
		return codes.AlreadyExists
	case domain.KindNotFound:
		return codes.NotFound
	case domain.KindUnauthorized, domain.KindSelfRating:
		return codes.PermissionDenied
	case domain.KindUnavailable, domain.KindPriceMismatch, domain.KindCapacityExceeded:
		return codes.FailedPrecondition
	default:
		return codes.Internal
	}
}

// toStatus converts a usecase error into a gRPC status. Domain errors keep
// their message and carry the kind as an ErrorInfo reason.
func toStatus(method string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	var de *domain.Error
	if !errors.As(err, &de) {
		slog.Error("marketplace call failed", "method", method, "error", err)
		return status.Error(codes.Internal, err.Error())
	}
	st := status.New(codeOf(de.Kind), de.Error())
	detailed, detailErr := st.WithDetails(&errdetails.ErrorInfo{
		Reason: string(de.Kind),
		Domain: ErrorDomain,
	})
	if detailErr != nil {
		return st.Err()
	}
	return detailed.Err()
}

// KindFromError recovers the domain kind from a status returned by the
// marketplace service. It returns "" for transport or internal failures.
func KindFromError(err error) domain.ErrorKind {
	st, ok := status.FromError(err)
	if !ok {
		return ""
	}
	for _, detail := range st.Details() {
		if info, ok := detail.(*errdetails.ErrorInfo); ok && info.Domain == ErrorDomain {
			return domain.ErrorKind(info.Reason)
		}
	}
	return ""
}
