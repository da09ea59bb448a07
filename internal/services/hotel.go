package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/rewipay-ledger/internal/models"
)

// HotelBookingRepository stores hotel bookings.
type HotelBookingRepository interface {
	Save(ctx context.Context, booking *models.HotelBooking) (*models.HotelBooking, error)
	ListByUserID(ctx context.Context, userID int64, limit int) ([]models.HotelBooking, error)
}

// HotelService books hotel stays against the wallet balance.
type HotelService struct {
	ledger   Charger
	bookings HotelBookingRepository
}

func NewHotelService(ledger Charger, bookings HotelBookingRepository) *HotelService {
	return &HotelService{ledger: ledger, bookings: bookings}
}

// Book charges booking.TotalPrice and stores a confirmed booking.
func (s *HotelService) Book(ctx context.Context, walletAddress string, booking models.HotelBooking) (*models.HotelBooking, decimal.Decimal, error) {
	if booking.HotelID == "" || booking.City == "" || booking.CheckIn == "" || booking.CheckOut == "" {
		return nil, decimal.Zero, fmt.Errorf("%w: hotel, city and stay dates are required", models.ErrMalformedInput)
	}

	description := fmt.Sprintf("Hotel booking: %s, %s", booking.HotelName, booking.City)
	if booking.RoomType != nil && *booking.RoomType != "" {
		description += " - " + *booking.RoomType
	}

	var saved *models.HotelBooking
	receipt, err := s.ledger.Charge(ctx, walletAddress, booking.TotalPrice, models.TransactionTypeHotelBooking, description,
		func(ctx context.Context, payer *models.User) error {
			booking.UserID = payer.ID
			booking.Status = models.StatusConfirmed
			var err error
			saved, err = s.bookings.Save(ctx, &booking)
			return err
		})
	if err != nil {
		return nil, decimal.Zero, err
	}
	return saved, receipt.User.Balance, nil
}

// ListBookings returns the newest hotel bookings of walletAddress.
func (s *HotelService) ListBookings(ctx context.Context, walletAddress string) ([]models.HotelBooking, error) {
	user, err := s.ledger.GetOrCreateAccount(ctx, walletAddress)
	if err != nil {
		return nil, err
	}
	return s.bookings.ListByUserID(ctx, user.ID, s.ledger.ListLimit())
}
