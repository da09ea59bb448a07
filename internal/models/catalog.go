package models

// Airport is a bookable departure or arrival airport.
type Airport struct {
	Code string `json:"code"`
	Name string `json:"name"`
	City string `json:"city"`
}

// Flight is a generated flight search result.
type Flight struct {
	ID             string  `json:"id"`
	Airline        string  `json:"airline"`
	FlightNumber   string  `json:"flightNumber"`
	From           string  `json:"from"`
	To             string  `json:"to"`
	DepartureTime  string  `json:"departureTime"`
	ArrivalTime    string  `json:"arrivalTime"`
	Duration       string  `json:"duration"`
	Price          int64   `json:"price"`
	SeatsAvailable int     `json:"seatsAvailable"`
	Aircraft       string  `json:"aircraft"`
	SeatClass      string  `json:"seatClass"`
	Baggage        string  `json:"baggage"`
	Meal           string  `json:"meal"`
	Cancellation   string  `json:"cancellation"`
	Description    string  `json:"description"`
	Stops          int     `json:"stops"`
	Layover        *string `json:"layover"`
	Terminal       string  `json:"terminal"`
	Gate           string  `json:"gate"`
	CheckIn        string  `json:"checkIn"`
	Boarding       string  `json:"boarding"`
}

// HotelRoom is one room type offered by a hotel.
type HotelRoom struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
}

// HotelPolicies lists a hotel's house rules.
type HotelPolicies struct {
	CheckIn      string `json:"checkIn"`
	CheckOut     string `json:"checkOut"`
	Cancellation string `json:"cancellation"`
	Pets         string `json:"pets"`
}

// HotelReview is a guest review.
type HotelReview struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Author  string `json:"author"`
}

// Hotel is a generated hotel search result.
type Hotel struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	City          string        `json:"city"`
	Location      string        `json:"location"`
	Rating        string        `json:"rating"`
	Price         int64         `json:"price"`
	OriginalPrice int64         `json:"originalPrice"`
	Discount      int64         `json:"discount"`
	Image         string        `json:"image"`
	Amenities     []string      `json:"amenities"`
	Description   string        `json:"description"`
	Distance      string        `json:"distance"`
	RoomTypes     []HotelRoom   `json:"roomTypes"`
	Policies      HotelPolicies `json:"policies"`
	Facilities    []string      `json:"facilities"`
	Nearby        []string      `json:"nearby"`
	Reviews       []HotelReview `json:"reviews"`
}

// BillQuote is the amount currently due for a biller/customer pair.
type BillQuote struct {
	Amount  string `json:"amount"`
	DueDate string `json:"dueDate"`
}
