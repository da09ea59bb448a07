package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FlightBooking records a booked flight. Bookings are confirmed on creation.
type FlightBooking struct {
	ID            int64           `json:"id"`
	UserID        int64           `json:"user_id"`
	FlightID      string          `json:"flight_id"`
	FromAirport   string          `json:"from_airport"`
	ToAirport     string          `json:"to_airport"`
	DepartureDate string          `json:"departure_date"`
	ReturnDate    *string         `json:"return_date"`
	Passengers    int             `json:"passengers"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	Status        RecordStatus    `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (b FlightBooking) GetID() int64            { return b.ID }
func (b FlightBooking) GetUserID() int64        { return b.UserID }
func (b FlightBooking) GetCreatedAt() time.Time { return b.CreatedAt }

func (b *FlightBooking) Stamp(id int64, createdAt time.Time) {
	b.ID = id
	b.CreatedAt = createdAt
}

// HotelBooking records a booked hotel stay.
type HotelBooking struct {
	ID         int64           `json:"id"`
	UserID     int64           `json:"user_id"`
	HotelID    string          `json:"hotel_id"`
	HotelName  string          `json:"hotel_name"`
	City       string          `json:"city"`
	CheckIn    string          `json:"check_in"`
	CheckOut   string          `json:"check_out"`
	Rooms      int             `json:"rooms"`
	Guests     int             `json:"guests"`
	RoomType   *string         `json:"room_type"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Status     RecordStatus    `json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
}

func (b HotelBooking) GetID() int64            { return b.ID }
func (b HotelBooking) GetUserID() int64        { return b.UserID }
func (b HotelBooking) GetCreatedAt() time.Time { return b.CreatedAt }

func (b *HotelBooking) Stamp(id int64, createdAt time.Time) {
	b.ID = id
	b.CreatedAt = createdAt
}
