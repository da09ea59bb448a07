package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/rewipay-ledger/internal/services"
)

//go:generate mockgen -source=transfer.go -destination=transfer_mock.go -package=handlers

// Transferer defines the interface that the service must implement.
type Transferer interface {
	Transfer(ctx context.Context, fromAddress, toAddress string, amount decimal.Decimal, note string) (*services.Receipt, error)
}

// TransferRequest represents the JSON body for a wallet-to-wallet transfer
// swagger:model TransferRequest
type TransferRequest struct {
	// Recipient wallet
	// required: true
	ToWalletAddress string `json:"toWalletAddress" validate:"required"`

	// Amount to send
	// required: true
	// default: 100
	Amount decimal.Decimal `json:"amount" validate:"gt=0" swaggertype:"number"`

	// Free-form note added to both ledger entries
	Note string `json:"note"`
}

// TransferResponse represents a successful transfer
// swagger:model TransferResponse
type TransferResponse struct {
	// default: true
	Success bool `json:"success"`

	// Sender's ledger entry
	TransactionID int64 `json:"transactionId"`

	// Sender's balance after the transfer
	NewBalance decimal.Decimal `json:"newBalance" swaggertype:"number"`
}

// NewTransferHandler returns an HTTP handler moving funds between wallets.
// @Summary Transfer funds
// @Description Debits the sender and credits the recipient in one step. The recipient is created if unknown.
// @Tags user
// @Accept json
// @Produce json
// @Param walletAddress path string true "Sender wallet address"
// @Param request body handlers.TransferRequest true "Transfer Request"
// @Success 200 {object} handlers.TransferResponse
// @Failure 400 {object} handlers.InsufficientBalanceResponse "Insufficient balance or invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /user/{walletAddress}/transfer [post]
func NewTransferHandler(svc Transferer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		walletAddress := chi.URLParam(r, "walletAddress")

		var req TransferRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		receipt, err := svc.Transfer(r.Context(), walletAddress, req.ToWalletAddress, req.Amount, req.Note)
		if err != nil {
			writeServiceError(w, err, "failed to transfer",
				"from", walletAddress, "to", req.ToWalletAddress, "amount", req.Amount)
			return
		}

		writeJSON(w, http.StatusOK, TransferResponse{
			Success:       true,
			TransactionID: receipt.Transaction.ID,
			NewBalance:    receipt.User.Balance,
		})
	}
}
