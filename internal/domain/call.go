package domain

import (
	"regexp"
	"time"
)

var accountIDPattern = regexp.MustCompile(`^[a-z0-9._-]{5,64}$`)

// CallContext is what the execution environment supplies with every
// state-changing call.
type CallContext struct {
	// Caller is the authenticated account id.
	Caller string
	// Timestamp is the logical clock reading in nanoseconds.
	Timestamp uint64
	// Deposit is the payment attached to the call, in base units.
	Deposit uint64
}

func ValidAccountID(accountID string) bool {
	return accountIDPattern.MatchString(accountID)
}

type Clock interface {
	Now() uint64
}

// SystemClock reads nanoseconds since the epoch. Readings advance with the
// monotonic clock from the moment it was created, so wall clock steps do
// not move them backwards.
type SystemClock struct {
	origin time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{origin: time.Now()}
}

func (c *SystemClock) Now() uint64 {
	return uint64(c.origin.UnixNano()) + uint64(time.Since(c.origin))
}
