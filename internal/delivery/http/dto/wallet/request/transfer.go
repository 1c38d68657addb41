package request

type TransferRequest struct {
	TransferID string `json:"transfer_id"`
	Recipient  string `json:"recipient"`
	Amount     uint64 `json:"amount"`
}
