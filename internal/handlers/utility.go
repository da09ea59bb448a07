package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/rewipay-ledger/internal/models"
)

//go:generate mockgen -source=utility.go -destination=utility_mock.go -package=handlers

// BillQuoter defines the interface that the service must implement.
type BillQuoter interface {
	QuoteBill(billerID, customerID string) (models.BillQuote, error)
}

// BillPayer defines the interface that the service must implement.
type BillPayer interface {
	PayBill(ctx context.Context, walletAddress string, bill models.UtilityBill) (*models.UtilityBill, decimal.Decimal, error)
}

// BillLister defines the interface that the service must implement.
type BillLister interface {
	ListBills(ctx context.Context, walletAddress string) ([]models.UtilityBill, error)
}

// FetchBillRequest represents the JSON body for a bill lookup
// swagger:model FetchBillRequest
type FetchBillRequest struct {
	// Requesting wallet, informational only
	WalletAddress string `json:"walletAddress"`

	// required: true
	// default: electricity
	BillerID string `json:"billerId" validate:"required"`

	// required: true
	CustomerID string `json:"customerId" validate:"required"`
}

// FetchBillResponse represents the amount currently due
// swagger:model FetchBillResponse
type FetchBillResponse struct {
	// default: true
	Success bool `json:"success"`

	// Amount with two decimals
	// default: 140.00
	Amount string `json:"amount"`

	// default: 2025-07-05
	DueDate string `json:"dueDate"`
}

// PayBillRequest represents the JSON body for paying a bill
// swagger:model PayBillRequest
type PayBillRequest struct {
	// required: true
	WalletAddress string `json:"walletAddress" validate:"required"`

	// required: true
	BillerID string `json:"billerId" validate:"required"`

	BillerName string `json:"billerName"`

	// required: true
	CustomerID string `json:"customerId" validate:"required"`

	// required: true
	Amount decimal.Decimal `json:"amount" validate:"gt=0" swaggertype:"number"`
}

// PayBillResponse represents a successful bill payment
// swagger:model PayBillResponse
type PayBillResponse struct {
	// default: true
	Success bool `json:"success"`

	PaymentID int64 `json:"paymentId"`

	NewBalance decimal.Decimal `json:"newBalance" swaggertype:"number"`
}

// BillsResponse lists paid bills
// swagger:model BillsResponse
type BillsResponse struct {
	Bills []models.UtilityBill `json:"bills"`
}

// NewFetchBillHandler returns an HTTP handler quoting the amount due on a bill.
// @Summary Fetch a bill
// @Description Quotes the amount due. The quote is deterministic for a biller and customer.
// @Tags utility
// @Accept json
// @Produce json
// @Param request body handlers.FetchBillRequest true "Bill Request"
// @Success 200 {object} handlers.FetchBillResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Router /utility/fetch-bill [post]
func NewFetchBillHandler(svc BillQuoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FetchBillRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		quote, err := svc.QuoteBill(req.BillerID, req.CustomerID)
		if err != nil {
			writeServiceError(w, err, "failed to fetch bill", "biller_id", req.BillerID)
			return
		}

		writeJSON(w, http.StatusOK, FetchBillResponse{Success: true, Amount: quote.Amount, DueDate: quote.DueDate})
	}
}

// NewPayBillHandler returns an HTTP handler paying a utility bill.
// @Summary Pay a bill
// @Tags utility
// @Accept json
// @Produce json
// @Param request body handlers.PayBillRequest true "Payment Request"
// @Success 200 {object} handlers.PayBillResponse
// @Failure 400 {object} handlers.InsufficientBalanceResponse "Insufficient balance or invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /utility/pay-bill [post]
func NewPayBillHandler(svc BillPayer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PayBillRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		saved, balance, err := svc.PayBill(r.Context(), req.WalletAddress, models.UtilityBill{
			BillerID:   req.BillerID,
			BillerName: req.BillerName,
			CustomerID: req.CustomerID,
			Amount:     req.Amount,
		})
		if err != nil {
			writeServiceError(w, err, "failed to pay bill",
				"wallet_address", req.WalletAddress, "biller_id", req.BillerID)
			return
		}

		writeJSON(w, http.StatusOK, PayBillResponse{Success: true, PaymentID: saved.ID, NewBalance: balance})
	}
}

// NewListBillsHandler returns an HTTP handler listing a wallet's paid bills.
// @Summary List bills
// @Tags utility
// @Produce json
// @Param walletAddress path string true "Wallet address"
// @Success 200 {object} handlers.BillsResponse
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /utility/bills/{walletAddress} [get]
func NewListBillsHandler(svc BillLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		walletAddress := chi.URLParam(r, "walletAddress")

		bills, err := svc.ListBills(r.Context(), walletAddress)
		if err != nil {
			writeServiceError(w, err, "failed to list bills", "wallet_address", walletAddress)
			return
		}

		writeJSON(w, http.StatusOK, BillsResponse{Bills: bills})
	}
}
