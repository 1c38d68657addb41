package domain

import (
	"context"
	"errors"
)

// ErrTransferUnconfirmed is returned when the wallet accepted a request but
// its answer does not prove which transfer ran. The payment may have moved.
var ErrTransferUnconfirmed = errors.New("transfer outcome unconfirmed")

// WalletUsecase moves attached payments to their recipient. A nil error
// means the transfer was accepted and cannot be undone.
type WalletUsecase interface {
	Transfer(ctx context.Context, recipientID string, amount uint64) error
}
