package response

type TransferResponse struct {
	Success    bool   `json:"success"`
	TransferID string `json:"transfer_id"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
