package models

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are stored as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Collection names as they appear at the top level of the document.
const (
	CollectionUsers                = "users"
	CollectionTransactions         = "transactions"
	CollectionMarketplacePurchases = "marketplace_purchases"
	CollectionMarketplaceOrders    = "marketplace_orders"
	CollectionFlightBookings       = "flight_bookings"
	CollectionHotelBookings        = "hotel_bookings"
	CollectionUtilityBills         = "utility_bills"
)

// Document is the whole persisted state: every collection plus the id counters.
type Document struct {
	Users                []User                `json:"users"`                 // Registered wallets
	Transactions         []Transaction         `json:"transactions"`          // Append-only ledger
	MarketplacePurchases []MarketplacePurchase `json:"marketplace_purchases"` // Single-product purchases
	MarketplaceOrders    []MarketplaceOrder    `json:"marketplace_orders"`    // Cart orders
	FlightBookings       []FlightBooking       `json:"flight_bookings"`       // Flight bookings
	HotelBookings        []HotelBooking        `json:"hotel_bookings"`        // Hotel bookings
	UtilityBills         []UtilityBill         `json:"utility_bills"`         // Paid utility bills
	Sequences            map[string]int64      `json:"sequences,omitempty"`   // Last id handed out per collection
}

// NewDocument returns a document with every collection present and empty.
func NewDocument() *Document {
	doc := &Document{}
	doc.Normalize()
	return doc
}

// Normalize fills in collections missing from documents written by older
// versions of the server. It is applied once on every load.
func (d *Document) Normalize() {
	if d.Users == nil {
		d.Users = []User{}
	}
	if d.Transactions == nil {
		d.Transactions = []Transaction{}
	}
	if d.MarketplacePurchases == nil {
		d.MarketplacePurchases = []MarketplacePurchase{}
	}
	if d.MarketplaceOrders == nil {
		d.MarketplaceOrders = []MarketplaceOrder{}
	}
	if d.FlightBookings == nil {
		d.FlightBookings = []FlightBooking{}
	}
	if d.HotelBookings == nil {
		d.HotelBookings = []HotelBooking{}
	}
	if d.UtilityBills == nil {
		d.UtilityBills = []UtilityBill{}
	}
	if d.Sequences == nil {
		d.Sequences = map[string]int64{}
	}
}

// NextID reserves the next id for a collection. existingMax is the largest id
// currently stored, so documents without counters continue where they left off.
func (d *Document) NextID(collection string, existingMax int64) int64 {
	if d.Sequences == nil {
		d.Sequences = map[string]int64{}
	}
	next := max(d.Sequences[collection], existingMax) + 1
	d.Sequences[collection] = next
	return next
}

// EncodeDocument serializes a document with two-space indentation.
func EncodeDocument(doc *Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// DecodeDocument parses a document and normalizes it. Empty input yields a
// fresh document.
func DecodeDocument(data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return NewDocument(), nil
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	doc.Normalize()
	return &doc, nil
}
