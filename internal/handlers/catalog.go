package handlers

import (
	"net/http"

	"github.com/sbilibin2017/rewipay-ledger/internal/models"
)

//go:generate mockgen -source=catalog.go -destination=catalog_mock.go -package=handlers

// AirportLister defines the interface that the service must implement.
type AirportLister interface {
	Airports() []models.Airport
}

// FlightSearcher defines the interface that the service must implement.
type FlightSearcher interface {
	SearchFlights(from, to, date string, passengers int) []models.Flight
}

// HotelSearcher defines the interface that the service must implement.
type HotelSearcher interface {
	SearchHotels(city, checkIn, checkOut string, rooms, guests int) ([]models.Hotel, error)
}

// SearchFlightsRequest represents the JSON body for a flight search
// swagger:model SearchFlightsRequest
type SearchFlightsRequest struct {
	// Departure airport code
	// required: true
	// default: DEL
	From string `json:"from" validate:"required"`

	// Arrival airport code
	// required: true
	// default: BOM
	To string `json:"to" validate:"required"`

	// Travel date
	// default: 2025-07-01
	Date string `json:"date"`

	// Number of passengers, 1 when omitted
	// default: 1
	Passengers int `json:"passengers" validate:"gte=0"`
}

// SearchFlightsResponse wraps flight search results
// swagger:model SearchFlightsResponse
type SearchFlightsResponse struct {
	Flights []models.Flight `json:"flights"`
}

// SearchHotelsRequest represents the JSON body for a hotel search
// swagger:model SearchHotelsRequest
type SearchHotelsRequest struct {
	// required: true
	// default: Mumbai
	City string `json:"city" validate:"required"`

	// required: true
	// default: 2025-07-01
	CheckIn string `json:"checkIn" validate:"required"`

	// required: true
	// default: 2025-07-03
	CheckOut string `json:"checkOut" validate:"required"`

	// default: 1
	Rooms int `json:"rooms" validate:"gte=0"`

	// default: 2
	Guests int `json:"guests" validate:"gte=0"`
}

// SearchHotelsResponse wraps hotel search results
// swagger:model SearchHotelsResponse
type SearchHotelsResponse struct {
	Hotels []models.Hotel `json:"hotels"`
}

// NewListAirportsHandler returns an HTTP handler listing bookable airports.
// @Summary List airports
// @Tags flights
// @Produce json
// @Success 200 {array} models.Airport
// @Router /airports/india [get]
func NewListAirportsHandler(svc AirportLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, svc.Airports())
	}
}

// NewSearchFlightsHandler returns an HTTP handler generating flight offers.
// @Summary Search flights
// @Description Returns generated offers sorted by price. Prices scale with the number of passengers.
// @Tags flights
// @Accept json
// @Produce json
// @Param request body handlers.SearchFlightsRequest true "Search Request"
// @Success 200 {object} handlers.SearchFlightsResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Router /flights/search [post]
func NewSearchFlightsHandler(svc FlightSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SearchFlightsRequest
		if !decodeRequest(w, r, &req) {
			return
		}
		if req.Passengers == 0 {
			req.Passengers = 1
		}

		flights := svc.SearchFlights(req.From, req.To, req.Date, req.Passengers)
		writeJSON(w, http.StatusOK, SearchFlightsResponse{Flights: flights})
	}
}

// NewSearchHotelsHandler returns an HTTP handler generating hotel offers.
// @Summary Search hotels
// @Description Returns generated hotels in the city sorted by nightly price.
// @Tags hotels
// @Accept json
// @Produce json
// @Param request body handlers.SearchHotelsRequest true "Search Request"
// @Success 200 {object} handlers.SearchHotelsResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /hotels/search [post]
func NewSearchHotelsHandler(svc HotelSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SearchHotelsRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		hotels, err := svc.SearchHotels(req.City, req.CheckIn, req.CheckOut, req.Rooms, req.Guests)
		if err != nil {
			writeServiceError(w, err, "failed to search hotels", "city", req.City)
			return
		}

		writeJSON(w, http.StatusOK, SearchHotelsResponse{Hotels: hotels})
	}
}
