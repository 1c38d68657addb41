package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	walletRequest "github.com/LavaJover/shvark-expressstores-service/internal/delivery/http/dto/wallet/request"
	walletResponse "github.com/LavaJover/shvark-expressstores-service/internal/delivery/http/dto/wallet/response"
	"github.com/LavaJover/shvark-expressstores-service/internal/domain"
	"github.com/google/uuid"
)

const defaultWalletTimeout = 15 * time.Second

// HTTPWalletHandler is the client of the wallet service that executes
// value transfers.
type HTTPWalletHandler struct {
	Address string
	Client  *http.Client
}

func NewHTTPWalletHandler(address string) (*HTTPWalletHandler, error) {
	if address == "" {
		return nil, errors.New("wallet service address is empty")
	}
	return &HTTPWalletHandler{
		Address: address,
		Client:  &http.Client{Timeout: defaultWalletTimeout},
	}, nil
}

// Transfer sends amount to recipientID. Each call carries a fresh transfer
// id, also sent as the Idempotency-Key header.
func (h *HTTPWalletHandler) Transfer(ctx context.Context, recipientID string, amount uint64) error {
	transferID := uuid.New().String()
	requestBodyBytes, err := json.Marshal(walletRequest.TransferRequest{
		TransferID: transferID,
		Recipient:  recipientID,
		Amount:     amount,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/wallets/transfer", h.Address), bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", transferID)

	response, err := h.Client.Do(req)
	if err != nil {
		return err
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		var transferResponse walletResponse.TransferResponse
		if len(responseBodyBytes) > 0 && json.Unmarshal(responseBodyBytes, &transferResponse) == nil &&
			transferResponse.TransferID != "" && transferResponse.TransferID != transferID {
			return fmt.Errorf("%w: wallet service acknowledged transfer %s, expected %s",
				domain.ErrTransferUnconfirmed, transferResponse.TransferID, transferID)
		}
		return nil
	}
	var errorResponse walletResponse.ErrorResponse
	if err := json.Unmarshal(responseBodyBytes, &errorResponse); err != nil || errorResponse.Error == "" {
		return fmt.Errorf("wallet service responded with status %d", response.StatusCode)
	}
	return errors.New(errorResponse.Error)
}
