package grpcapi

import (
	"fmt"

	"github.com/LavaJover/shvark-expressstores-service/internal/usecase"
	gonanoid "github.com/jaevor/go-nanoid"
)

// MarketplaceHandler serves the Marketplace gRPC service on top of the
// serialized marketplace usecase.
type MarketplaceHandler struct {
	uc    usecase.MarketplaceUsecase
	newID func() string
}

var _ MarketplaceServer = (*MarketplaceHandler)(nil)

func NewMarketplaceHandler(uc usecase.MarketplaceUsecase) (*MarketplaceHandler, error) {
	newID, err := gonanoid.Standard(21)
	if err != nil {
		return nil, fmt.Errorf("failed to create id generator: %w", err)
	}
	return &MarketplaceHandler{uc: uc, newID: newID}, nil
}

// idOrNew keeps a client-supplied id and generates one otherwise.
func (h *MarketplaceHandler) idOrNew(id string) string {
	if id != "" {
		return id
	}
	return h.newID()
}
