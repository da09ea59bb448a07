package services

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/rewipay-ledger/internal/models"
)

const (
	flightResults = 8
	hotelResults  = 10
)

var airports = []models.Airport{
	{Code: "DEL", Name: "Indira Gandhi International Airport", City: "New Delhi"},
	{Code: "BOM", Name: "Chhatrapati Shivaji Maharaj International Airport", City: "Mumbai"},
	{Code: "BLR", Name: "Kempegowda International Airport", City: "Bangalore"},
	{Code: "CCU", Name: "Netaji Subhas Chandra Bose International Airport", City: "Kolkata"},
	{Code: "MAA", Name: "Chennai International Airport", City: "Chennai"},
	{Code: "HYD", Name: "Rajiv Gandhi International Airport", City: "Hyderabad"},
	{Code: "PNQ", Name: "Pune Airport", City: "Pune"},
	{Code: "GOI", Name: "Dabolim Airport", City: "Goa"},
	{Code: "COK", Name: "Cochin International Airport", City: "Kochi"},
	{Code: "JAI", Name: "Jaipur International Airport", City: "Jaipur"},
	{Code: "AMD", Name: "Sardar Vallabhbhai Patel International Airport", City: "Ahmedabad"},
	{Code: "IXC", Name: "Chandigarh Airport", City: "Chandigarh"},
}

// billBaseAmounts maps biller ids to their typical bill.
var billBaseAmounts = map[string]int64{
	"1":  10,   // Mobile recharge
	"2":  150,  // Electricity
	"3":  50,   // Water
	"4":  800,  // Gas
	"5":  60,   // Broadband
	"6":  30,   // Cable TV
	"7":  25,   // DTH
	"8":  500,  // Credit card
	"9":  2000, // Education
	"10": 300,  // Insurance
	"11": 20,   // Landline
	"12": 100,  // Fastag
	"13": 200,  // Municipal
	"14": 15,   // Subscription
	"15": 500,  // Hospital
	"16": 100,  // Club
}

const (
	defaultBillAmount = 100
	minBillAmount     = 10
)

var (
	airlines      = []string{"IndiGo", "Air India", "SpiceJet", "Vistara", "GoAir", "AirAsia India"}
	flightTimes   = []string{"06:00", "09:30", "12:15", "15:45", "18:20", "21:00"}
	seatClasses   = []string{"Economy", "Business", "Premium Economy"}
	baggage       = []string{"15 kg", "20 kg", "25 kg", "30 kg"}
	meals         = []string{"Meal included", "No meal", "Vegetarian meal", "Non-vegetarian meal"}
	cancellations = []string{"Free cancellation", "Cancellation charges apply", "Non-refundable"}
	aircraft      = []string{"Boeing 737", "Airbus A320", "Airbus A321"}
	layoverCities = []string{"Delhi", "Mumbai", "Bangalore"}

	hotelNames = []string{
		"Grand Hotel", "Luxury Resort", "Business Hotel", "Beach Resort", "City Center Hotel",
		"Heritage Palace", "Modern Suites", "Garden View Hotel", "Mountain Resort", "Riverside Inn",
		"Plaza Hotel", "Sunset Resort", "Royal Palace", "Executive Hotel", "Paradise Resort",
	}
	hotelLocations = []string{
		"City Center", "Airport Road", "Beach Front", "Downtown", "Business District",
		"Shopping Area", "Near Railway Station", "Lakeside", "Hill Station", "Riverside",
	}
	hotelAmenities = [][]string{
		{"Free WiFi", "Parking", "Restaurant", "Room Service"},
		{"Free WiFi", "Swimming Pool", "Gym", "Spa"},
		{"Free WiFi", "Parking", "Restaurant", "Business Center"},
		{"Free WiFi", "Beach Access", "Restaurant", "Bar"},
		{"Free WiFi", "Parking", "Restaurant", "Room Service", "Gym"},
	}
	hotelRoomTypes = []models.HotelRoom{
		{Type: "Standard Room", Description: "Comfortable room with basic amenities, perfect for solo travelers or couples."},
		{Type: "Deluxe Room", Description: "Spacious room with premium furnishings and city views."},
		{Type: "Suite", Description: "Luxurious suite with separate living area and premium amenities."},
		{Type: "Executive Room", Description: "Business-friendly room with work desk and high-speed internet."},
	}
	hotelFacilities = []string{
		"Swimming Pool", "Fitness Center", "Spa", "Business Center", "Conference Room", "Laundry Service",
		"24/7 Front Desk", "Concierge Service", "Airport Shuttle", "Valet Parking",
	}
	hotelNearby = []string{
		"Shopping Mall - 0.5 km", "Restaurant - 0.3 km", "Metro Station - 1 km", "Tourist Attraction - 2 km",
		"Hospital - 1.5 km", "Airport - 10 km", "Beach - 3 km", "Park - 0.8 km",
	}
	hotelImages = []string{"🏨", "🏩", "🏪", "🏫", "🏬", "🏭", "🏯", "🏰"}
)

// CatalogService generates demo search results and bill quotes. Nothing
// it returns is persisted.
type CatalogService struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

// NewCatalogService creates a catalog drawing from rnd. A nil rnd uses a
// randomly seeded source.
func NewCatalogService(rnd *rand.Rand) *CatalogService {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &CatalogService{rnd: rnd, now: time.Now}
}

// Airports returns the bookable Indian airports.
func (s *CatalogService) Airports() []models.Airport {
	return slices.Clone(airports)
}

// SearchFlights returns generated flights between two airports, cheapest
// first. Prices are per booking: the fare times the passenger count.
func (s *CatalogService) SearchFlights(from, to, date string, passengers int) []models.Flight {
	if passengers < 1 {
		passengers = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stamp := s.now().UnixMilli()
	flights := make([]models.Flight, 0, flightResults)
	for i := range flightResults {
		airline := pick(s.rnd, airlines)
		departure := pick(s.rnd, flightTimes)
		hours := s.rnd.IntN(3) + 1
		fare := int64(s.rnd.IntN(15000) + 3000)

		stops := 0
		if s.rnd.Float64() > 0.7 {
			stops = s.rnd.IntN(2)
		}
		var layover *string
		routing := "non-stop"
		if stops > 0 {
			l := fmt.Sprintf("Layover at %s airport for %d hours", pick(s.rnd, layoverCities), s.rnd.IntN(3)+1)
			layover = &l
			routing = fmt.Sprintf("%d stop", stops)
		}

		flights = append(flights, models.Flight{
			ID:             fmt.Sprintf("FL%d%d", stamp, i),
			Airline:        airline,
			FlightNumber:   fmt.Sprintf("%s%d", strings.ToUpper(airline[:2]), s.rnd.IntN(9000)+1000),
			From:           from,
			To:             to,
			DepartureTime:  departure,
			ArrivalTime:    addHours(departure, hours),
			Duration:       fmt.Sprintf("%dh %dm", hours, s.rnd.IntN(60)),
			Price:          fare * int64(passengers),
			SeatsAvailable: s.rnd.IntN(20) + 5,
			Aircraft:       pick(s.rnd, aircraft),
			SeatClass:      pick(s.rnd, seatClasses),
			Baggage:        pick(s.rnd, baggage),
			Meal:           pick(s.rnd, meals),
			Cancellation:   pick(s.rnd, cancellations),
			Description:    fmt.Sprintf("Enjoy a comfortable journey with %s. This %s flight offers excellent service and modern amenities.", airline, routing),
			Stops:          stops,
			Layover:        layover,
			Terminal:       fmt.Sprintf("T%d", s.rnd.IntN(3)+1),
			Gate:           fmt.Sprintf("Gate %c%d", 'A'+rune(s.rnd.IntN(5)), s.rnd.IntN(20)+1),
			CheckIn:        fmt.Sprintf("Check-in opens %d hours before departure", s.rnd.IntN(2)+2),
			Boarding:       fmt.Sprintf("Boarding starts %d minutes before departure", s.rnd.IntN(30)+30),
		})
	}

	slices.SortStableFunc(flights, func(a, b models.Flight) int {
		return int(a.Price - b.Price)
	})
	return flights
}

// SearchHotels returns generated hotels in city, cheapest first.
func (s *CatalogService) SearchHotels(city, checkIn, checkOut string, rooms, guests int) ([]models.Hotel, error) {
	if city == "" || checkIn == "" || checkOut == "" {
		return nil, fmt.Errorf("%w: city, check-in and check-out dates are required", models.ErrMalformedInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stamp := s.now().UnixMilli()
	hotels := make([]models.Hotel, 0, hotelResults)
	for i := range hotelResults {
		originalPrice := int64(s.rnd.IntN(200) + 100)
		discount := int64(s.rnd.IntN(40) + 10)
		price := originalPrice * (100 - discount) / 100

		roomCount := s.rnd.IntN(3) + 2
		roomTypes := make([]models.HotelRoom, 0, roomCount)
		for _, rt := range hotelRoomTypes[:roomCount] {
			rt.Price = int64(float64(price) * (0.8 + s.rnd.Float64()*0.4))
			roomTypes = append(roomTypes, rt)
		}

		cancellation := "Cancellation charges apply"
		if s.rnd.Float64() > 0.5 {
			cancellation = "Free cancellation until 24 hours before check-in"
		}
		pets := "No pets allowed"
		if s.rnd.Float64() > 0.5 {
			pets = "Pets allowed"
		}

		hotels = append(hotels, models.Hotel{
			ID:            fmt.Sprintf("hotel_%d_%d", stamp, i),
			Name:          pick(s.rnd, hotelNames),
			City:          city,
			Location:      pick(s.rnd, hotelLocations),
			Rating:        fmt.Sprintf("%.1f", s.rnd.Float64()*2+3),
			Price:         price,
			OriginalPrice: originalPrice,
			Discount:      discount,
			Image:         pick(s.rnd, hotelImages),
			Amenities:     slices.Clone(pick(s.rnd, hotelAmenities)),
			Description: fmt.Sprintf("Experience luxury and comfort at this %s hotel. Located in the heart of %s, "+
				"our hotel offers modern amenities, exceptional service, and a perfect blend of comfort and convenience. "+
				"Whether you're traveling for business or leisure, our hotel provides an ideal base for exploring %s.",
				city, pick(s.rnd, hotelLocations), city),
			Distance:  fmt.Sprintf("%d km", s.rnd.IntN(10)+1),
			RoomTypes: roomTypes,
			Policies: models.HotelPolicies{
				CheckIn:      "2:00 PM",
				CheckOut:     "11:00 AM",
				Cancellation: cancellation,
				Pets:         pets,
			},
			Facilities: slices.Clone(hotelFacilities[:s.rnd.IntN(5)+5]),
			Nearby:     slices.Clone(hotelNearby[:s.rnd.IntN(4)+3]),
			Reviews: []models.HotelReview{
				{Rating: s.rnd.IntN(2) + 4, Comment: "Excellent stay! Great location and friendly staff.", Author: "John D."},
				{Rating: s.rnd.IntN(2) + 4, Comment: "Comfortable rooms and good amenities. Would recommend.", Author: "Sarah M."},
			},
		})
	}

	slices.SortStableFunc(hotels, func(a, b models.Hotel) int {
		return int(a.Price - b.Price)
	})
	return hotels, nil
}

// QuoteBill returns the amount due for a biller and customer. The amount
// is the biller's base amount shifted by -25..24 derived from the first
// character of the customer id, and never below 10.
func (s *CatalogService) QuoteBill(billerID, customerID string) (models.BillQuote, error) {
	if billerID == "" || customerID == "" {
		return models.BillQuote{}, fmt.Errorf("%w: biller id and customer id are required", models.ErrMalformedInput)
	}

	base, ok := billBaseAmounts[billerID]
	if !ok {
		base = defaultBillAmount
	}
	first, _ := utf8.DecodeRuneInString(customerID)
	amount := max(minBillAmount, base+int64(first)%50-25)

	return models.BillQuote{
		Amount:  decimal.NewFromInt(amount).StringFixed(2),
		DueDate: models.DueDateFrom(s.now()),
	}, nil
}

func pick[T any](rnd *rand.Rand, items []T) T {
	return items[rnd.IntN(len(items))]
}

// addHours shifts an "HH:MM" clock time, wrapping past midnight.
func addHours(clock string, hours int) string {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return clock
	}
	return t.Add(time.Duration(hours) * time.Hour).Format("15:04")
}
