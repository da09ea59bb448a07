package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/rewipay-ledger/internal/models"
)

//go:generate mockgen -source=hotel.go -destination=hotel_mock.go -package=handlers

// HotelBooker defines the interface that the service must implement.
type HotelBooker interface {
	Book(ctx context.Context, walletAddress string, booking models.HotelBooking) (*models.HotelBooking, decimal.Decimal, error)
}

// HotelBookingLister defines the interface that the service must implement.
type HotelBookingLister interface {
	ListBookings(ctx context.Context, walletAddress string) ([]models.HotelBooking, error)
}

// BookHotelRequest represents the JSON body for booking a hotel
// swagger:model BookHotelRequest
type BookHotelRequest struct {
	// required: true
	WalletAddress string `json:"walletAddress" validate:"required"`

	// required: true
	HotelID string `json:"hotelId" validate:"required"`

	HotelName string `json:"hotelName"`

	// required: true
	City string `json:"city" validate:"required"`

	// required: true
	CheckIn string `json:"checkIn" validate:"required"`

	// required: true
	CheckOut string `json:"checkOut" validate:"required"`

	// default: 1
	Rooms int `json:"rooms" validate:"gte=0"`

	// default: 2
	Guests int `json:"guests" validate:"gte=0"`

	RoomType string `json:"roomType"`

	// required: true
	TotalPrice decimal.Decimal `json:"totalPrice" validate:"gt=0" swaggertype:"number"`
}

// HotelBookingsResponse lists hotel bookings
// swagger:model HotelBookingsResponse
type HotelBookingsResponse struct {
	Bookings []models.HotelBooking `json:"bookings"`
}

// NewBookHotelHandler returns an HTTP handler booking a hotel stay.
// @Summary Book a hotel
// @Description Charges totalPrice to the wallet and stores a confirmed booking.
// @Tags hotels
// @Accept json
// @Produce json
// @Param request body handlers.BookHotelRequest true "Booking Request"
// @Success 200 {object} handlers.BookingResponse
// @Failure 400 {object} handlers.InsufficientBalanceResponse "Insufficient balance or invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /hotels/book [post]
func NewBookHotelHandler(svc HotelBooker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BookHotelRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		booking := models.HotelBooking{
			HotelID:    req.HotelID,
			HotelName:  req.HotelName,
			City:       req.City,
			CheckIn:    req.CheckIn,
			CheckOut:   req.CheckOut,
			Rooms:      req.Rooms,
			Guests:     req.Guests,
			TotalPrice: req.TotalPrice,
		}
		if req.RoomType != "" {
			booking.RoomType = &req.RoomType
		}

		saved, balance, err := svc.Book(r.Context(), req.WalletAddress, booking)
		if err != nil {
			writeServiceError(w, err, "failed to book hotel",
				"wallet_address", req.WalletAddress, "hotel_id", req.HotelID)
			return
		}

		writeJSON(w, http.StatusOK, BookingResponse{Success: true, BookingID: saved.ID, NewBalance: balance})
	}
}

// NewListHotelBookingsHandler returns an HTTP handler listing a wallet's hotel bookings.
// @Summary List hotel bookings
// @Tags hotels
// @Produce json
// @Param walletAddress path string true "Wallet address"
// @Success 200 {object} handlers.HotelBookingsResponse
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /hotels/bookings/{walletAddress} [get]
func NewListHotelBookingsHandler(svc HotelBookingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		walletAddress := chi.URLParam(r, "walletAddress")

		bookings, err := svc.ListBookings(r.Context(), walletAddress)
		if err != nil {
			writeServiceError(w, err, "failed to list hotel bookings", "wallet_address", walletAddress)
			return
		}

		writeJSON(w, http.StatusOK, HotelBookingsResponse{Bookings: bookings})
	}
}
