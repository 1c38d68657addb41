package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	walletRequest "github.com/LavaJover/shvark-expressstores-service/internal/delivery/http/dto/wallet/request"
	walletResponse "github.com/LavaJover/shvark-expressstores-service/internal/delivery/http/dto/wallet/response"
	"github.com/LavaJover/shvark-expressstores-service/internal/delivery/http/handlers"
	"github.com/LavaJover/shvark-expressstores-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPWalletHandlerRequiresAddress(t *testing.T) {
	_, err := handlers.NewHTTPWalletHandler("")
	assert.Error(t, err)
}

func TestTransferPostsIdempotentRequest(t *testing.T) {
	var received walletRequest.TransferRequest
	var idempotencyKey string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/wallets/transfer", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		idempotencyKey = r.Header.Get("Idempotency-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		_ = json.NewEncoder(w).Encode(walletResponse.TransferResponse{Success: true, TransferID: received.TransferID})
	}))
	defer server.Close()

	wallet, err := handlers.NewHTTPWalletHandler(server.URL)
	require.NoError(t, err)

	require.NoError(t, wallet.Transfer(context.Background(), "alice.near", 100))
	assert.Equal(t, "alice.near", received.Recipient)
	assert.EqualValues(t, 100, received.Amount)
	assert.NotEmpty(t, received.TransferID)
	assert.Equal(t, received.TransferID, idempotencyKey)
}

func TestTransferRejectsForeignAcknowledgement(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(walletResponse.TransferResponse{Success: true, TransferID: "someone-else"})
	}))
	defer server.Close()

	wallet, err := handlers.NewHTTPWalletHandler(server.URL)
	require.NoError(t, err)

	err = wallet.Transfer(context.Background(), "alice.near", 1)
	assert.ErrorIs(t, err, domain.ErrTransferUnconfirmed)
	assert.ErrorContains(t, err, "someone-else")
}

func TestTransferSurfacesWalletErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{name: "error body", status: http.StatusPaymentRequired, body: `{"success":false,"error":"insufficient funds"}`, wantErr: "insufficient funds"},
		{name: "plain body", status: http.StatusBadGateway, body: "upstream down", wantErr: "wallet service responded with status 502"},
		{name: "empty error", status: http.StatusInternalServerError, body: `{"success":false}`, wantErr: "wallet service responded with status 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			wallet, err := handlers.NewHTTPWalletHandler(server.URL)
			require.NoError(t, err)

			assert.EqualError(t, wallet.Transfer(context.Background(), "alice.near", 1), tt.wantErr)
		})
	}
}

func TestTransferHonoursContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	wallet, err := handlers.NewHTTPWalletHandler(server.URL)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, wallet.Transfer(ctx, "alice.near", 1), context.Canceled)
}
