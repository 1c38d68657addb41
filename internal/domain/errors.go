package domain

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindInvalidPayload   ErrorKind = "INVALID_PAYLOAD"
	KindAlreadyExists    ErrorKind = "ALREADY_EXISTS"
	KindNotFound         ErrorKind = "NOT_FOUND"
	KindUnauthorized     ErrorKind = "UNAUTHORIZED"
	KindSelfRating       ErrorKind = "SELF_RATING"
	KindOutOfRange       ErrorKind = "OUT_OF_RANGE"
	KindUnavailable      ErrorKind = "UNAVAILABLE"
	KindPriceMismatch    ErrorKind = "PRICE_MISMATCH"
	KindCapacityExceeded ErrorKind = "CAPACITY_EXCEEDED"
	KindIndexOutOfRange  ErrorKind = "INDEX_OUT_OF_RANGE"
	KindInvalidIdentity  ErrorKind = "INVALID_IDENTITY"
)

// Error is a rule violation reported to the caller. Two errors match under
// errors.Is when their kinds are equal.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return e.Message
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

var (
	ErrInvalidPayload   = &Error{Kind: KindInvalidPayload}
	ErrAlreadyExists    = &Error{Kind: KindAlreadyExists}
	ErrNotFound         = &Error{Kind: KindNotFound}
	ErrUnauthorized     = &Error{Kind: KindUnauthorized}
	ErrSelfRating       = &Error{Kind: KindSelfRating}
	ErrOutOfRange       = &Error{Kind: KindOutOfRange}
	ErrUnavailable      = &Error{Kind: KindUnavailable}
	ErrPriceMismatch    = &Error{Kind: KindPriceMismatch}
	ErrCapacityExceeded = &Error{Kind: KindCapacityExceeded}
	ErrIndexOutOfRange  = &Error{Kind: KindIndexOutOfRange}
	ErrInvalidIdentity  = &Error{Kind: KindInvalidIdentity}
)

// KindOf extracts the kind of a domain error, or "" for anything else.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}
