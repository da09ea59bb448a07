package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/rewipay-ledger/internal/models"
)

//go:generate mockgen -source=transactions.go -destination=transactions_mock.go -package=handlers

// TransactionLister defines the interface that the service must implement.
type TransactionLister interface {
	ListTransactions(ctx context.Context, walletAddress string, limit int) ([]models.Transaction, error)
}

// NewListTransactionsHandler returns an HTTP handler listing a wallet's ledger entries, newest first.
// @Summary List transactions
// @Description Returns at most limit transactions of the wallet, newest first. Defaults to 50.
// @Tags user
// @Produce json
// @Param walletAddress path string true "Wallet address"
// @Param limit query int false "Maximum number of transactions"
// @Success 200 {array} models.Transaction
// @Failure 400 {object} handlers.ErrorResponse "Invalid limit"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /user/{walletAddress}/transactions [get]
func NewListTransactionsHandler(svc TransactionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		walletAddress := chi.URLParam(r, "walletAddress")

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid limit"})
				return
			}
			limit = n
		}

		txns, err := svc.ListTransactions(r.Context(), walletAddress, limit)
		if err != nil {
			writeServiceError(w, err, "failed to list transactions", "wallet_address", walletAddress)
			return
		}

		writeJSON(w, http.StatusOK, txns)
	}
}
