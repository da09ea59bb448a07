package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/rewipay-ledger/internal/logger"
	"github.com/sbilibin2017/rewipay-ledger/internal/models"
)

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`

	// Per-field validation messages
	Details map[string]string `json:"details,omitempty"`
}

// InsufficientBalanceResponse is returned when a charge exceeds the balance
// swagger:model InsufficientBalanceResponse
type InsufficientBalanceResponse struct {
	// Error message
	// default: Insufficient balance
	Error string `json:"error"`

	// Price of the rejected action
	Required decimal.Decimal `json:"required" swaggertype:"number"`

	// Balance at the time of the request
	Available decimal.Decimal `json:"available" swaggertype:"number"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeServiceError maps errors returned by services to HTTP responses.
func writeServiceError(w http.ResponseWriter, err error, msg string, keysAndValues ...any) {
	var insufficient *models.InsufficientBalanceError

	switch {
	case errors.As(err, &insufficient):
		logger.Log.Warnw(msg, append(keysAndValues, "error", err)...)
		writeJSON(w, http.StatusBadRequest, InsufficientBalanceResponse{
			Error:     "Insufficient balance",
			Required:  insufficient.Required,
			Available: insufficient.Available,
		})
	case errors.Is(err, models.ErrInvalidAmount):
		logger.Log.Warnw(msg, append(keysAndValues, "error", err)...)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid amount"})
	case errors.Is(err, models.ErrMalformedInput):
		logger.Log.Warnw(msg, append(keysAndValues, "error", err)...)
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrAccountNotFound):
		logger.Log.Warnw(msg, append(keysAndValues, "error", err)...)
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Account not found"})
	default:
		logger.Log.Errorw(msg, append(keysAndValues, "error", err)...)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
