package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/rewipay-ledger/internal/models"
)

//go:generate mockgen -source=flight.go -destination=flight_mock.go -package=handlers

// FlightBooker defines the interface that the service must implement.
type FlightBooker interface {
	Book(ctx context.Context, walletAddress string, booking models.FlightBooking) (*models.FlightBooking, decimal.Decimal, error)
}

// FlightBookingLister defines the interface that the service must implement.
type FlightBookingLister interface {
	ListBookings(ctx context.Context, walletAddress string) ([]models.FlightBooking, error)
}

// BookFlightRequest represents the JSON body for booking a flight
// swagger:model BookFlightRequest
type BookFlightRequest struct {
	// Paying wallet
	// required: true
	WalletAddress string `json:"walletAddress" validate:"required"`

	// Offer id from the search results
	// required: true
	FlightID string `json:"flightId" validate:"required"`

	// required: true
	// default: DEL
	From string `json:"from" validate:"required"`

	// required: true
	// default: BOM
	To string `json:"to" validate:"required"`

	// required: true
	// default: 2025-07-01
	DepartureDate string `json:"departureDate" validate:"required"`

	// Empty for one-way trips
	ReturnDate string `json:"returnDate"`

	// default: 1
	Passengers int `json:"passengers" validate:"gte=1"`

	// Amount charged to the wallet
	// required: true
	TotalPrice decimal.Decimal `json:"totalPrice" validate:"gt=0" swaggertype:"number"`
}

// BookingResponse represents a successful booking
// swagger:model BookingResponse
type BookingResponse struct {
	// default: true
	Success bool `json:"success"`

	BookingID int64 `json:"bookingId"`

	// Balance left after the charge
	NewBalance decimal.Decimal `json:"newBalance" swaggertype:"number"`
}

// FlightBookingsResponse lists flight bookings
// swagger:model FlightBookingsResponse
type FlightBookingsResponse struct {
	Bookings []models.FlightBooking `json:"bookings"`
}

// NewBookFlightHandler returns an HTTP handler booking a flight.
// @Summary Book a flight
// @Description Charges totalPrice to the wallet and stores a confirmed booking.
// @Tags flights
// @Accept json
// @Produce json
// @Param request body handlers.BookFlightRequest true "Booking Request"
// @Success 200 {object} handlers.BookingResponse
// @Failure 400 {object} handlers.InsufficientBalanceResponse "Insufficient balance or invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /flights/book [post]
func NewBookFlightHandler(svc FlightBooker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BookFlightRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		booking := models.FlightBooking{
			FlightID:      req.FlightID,
			FromAirport:   req.From,
			ToAirport:     req.To,
			DepartureDate: req.DepartureDate,
			Passengers:    req.Passengers,
			TotalPrice:    req.TotalPrice,
		}
		if req.ReturnDate != "" {
			booking.ReturnDate = &req.ReturnDate
		}

		saved, balance, err := svc.Book(r.Context(), req.WalletAddress, booking)
		if err != nil {
			writeServiceError(w, err, "failed to book flight",
				"wallet_address", req.WalletAddress, "flight_id", req.FlightID)
			return
		}

		writeJSON(w, http.StatusOK, BookingResponse{Success: true, BookingID: saved.ID, NewBalance: balance})
	}
}

// NewListFlightBookingsHandler returns an HTTP handler listing a wallet's flight bookings.
// @Summary List flight bookings
// @Tags flights
// @Produce json
// @Param walletAddress path string true "Wallet address"
// @Success 200 {object} handlers.FlightBookingsResponse
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /flights/bookings/{walletAddress} [get]
func NewListFlightBookingsHandler(svc FlightBookingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		walletAddress := chi.URLParam(r, "walletAddress")

		bookings, err := svc.ListBookings(r.Context(), walletAddress)
		if err != nil {
			writeServiceError(w, err, "failed to list flight bookings", "wallet_address", walletAddress)
			return
		}

		writeJSON(w, http.StatusOK, FlightBookingsResponse{Bookings: bookings})
	}
}
