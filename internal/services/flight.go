package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/rewipay-ledger/internal/models"
)

// FlightBookingRepository stores flight bookings.
type FlightBookingRepository interface {
	Save(ctx context.Context, booking *models.FlightBooking) (*models.FlightBooking, error)
	ListByUserID(ctx context.Context, userID int64, limit int) ([]models.FlightBooking, error)
}

// FlightService books flights against the wallet balance.
type FlightService struct {
	ledger   Charger
	bookings FlightBookingRepository
}

func NewFlightService(ledger Charger, bookings FlightBookingRepository) *FlightService {
	return &FlightService{ledger: ledger, bookings: bookings}
}

// Book charges booking.TotalPrice and stores a confirmed booking. It
// returns the booking and the balance left after the charge.
func (s *FlightService) Book(ctx context.Context, walletAddress string, booking models.FlightBooking) (*models.FlightBooking, decimal.Decimal, error) {
	if booking.FlightID == "" || booking.FromAirport == "" || booking.ToAirport == "" || booking.DepartureDate == "" {
		return nil, decimal.Zero, fmt.Errorf("%w: flight, route and departure date are required", models.ErrMalformedInput)
	}
	if booking.Passengers < 1 {
		return nil, decimal.Zero, fmt.Errorf("%w: at least one passenger is required", models.ErrMalformedInput)
	}

	var saved *models.FlightBooking
	receipt, err := s.ledger.Charge(ctx, walletAddress, booking.TotalPrice, models.TransactionTypeFlightBooking,
		fmt.Sprintf("Flight booking: %s to %s", booking.FromAirport, booking.ToAirport),
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

// ListBookings returns the newest flight bookings of walletAddress.
func (s *FlightService) ListBookings(ctx context.Context, walletAddress string) ([]models.FlightBooking, error) {
	user, err := s.ledger.GetOrCreateAccount(ctx, walletAddress)
	if err != nil {
		return nil, err
	}
	return s.bookings.ListByUserID(ctx, user.ID, s.ledger.ListLimit())
}
