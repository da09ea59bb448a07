package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/rewipay-ledger/internal/models"
)

//go:generate mockgen -source=balance.go -destination=balance_mock.go -package=handlers

// BalanceGetter defines the interface that the service must implement.
type BalanceGetter interface {
	GetBalance(ctx context.Context, walletAddress string) (decimal.Decimal, error)
}

// BalanceSetter defines the interface that the service must implement.
type BalanceSetter interface {
	SetBalance(ctx context.Context, walletAddress string, balance decimal.Decimal) (*models.User, error)
}

// BalanceResponse represents the balance of a wallet
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Current balance
	// default: 10000
	Balance decimal.Decimal `json:"balance" swaggertype:"number"`
}

// SetBalanceRequest represents the JSON body for overwriting a balance
// swagger:model SetBalanceRequest
type SetBalanceRequest struct {
	// New balance
	// required: true
	// default: 10000
	Amount *decimal.Decimal `json:"amount" validate:"required" swaggertype:"number"`
}

// SetBalanceResponse represents a successful balance update
// swagger:model SetBalanceResponse
type SetBalanceResponse struct {
	// default: true
	Success bool `json:"success"`

	// Balance after the update
	Balance decimal.Decimal `json:"balance" swaggertype:"number"`
}

// NewGetBalanceHandler returns an HTTP handler for fetching a wallet balance.
// @Summary Get wallet balance
// @Description Returns the balance of a wallet. Unknown wallets are created with the initial balance.
// @Tags user
// @Produce json
// @Param walletAddress path string true "Wallet address"
// @Success 200 {object} handlers.BalanceResponse
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /user/{walletAddress}/balance [get]
func NewGetBalanceHandler(svc BalanceGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		walletAddress := chi.URLParam(r, "walletAddress")

		balance, err := svc.GetBalance(r.Context(), walletAddress)
		if err != nil {
			writeServiceError(w, err, "failed to get balance", "wallet_address", walletAddress)
			return
		}

		writeJSON(w, http.StatusOK, BalanceResponse{Balance: balance})
	}
}

// NewSetBalanceHandler returns an HTTP handler for overwriting a wallet balance.
// @Summary Set wallet balance
// @Description Overwrites the balance. The difference is recorded as a balance_adjustment transaction.
// @Tags user
// @Accept json
// @Produce json
// @Param walletAddress path string true "Wallet address"
// @Param request body handlers.SetBalanceRequest true "New balance"
// @Success 200 {object} handlers.SetBalanceResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /user/{walletAddress}/balance [post]
func NewSetBalanceHandler(svc BalanceSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		walletAddress := chi.URLParam(r, "walletAddress")

		var req SetBalanceRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		user, err := svc.SetBalance(r.Context(), walletAddress, *req.Amount)
		if err != nil {
			writeServiceError(w, err, "failed to set balance", "wallet_address", walletAddress, "amount", req.Amount)
			return
		}

		writeJSON(w, http.StatusOK, SetBalanceResponse{Success: true, Balance: user.Balance})
	}
}
