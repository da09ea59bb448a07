package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType labels what caused a ledger entry.
type TransactionType string

const (
	TransactionTypeFlightBooking       TransactionType = "flight_booking"
	TransactionTypeHotelBooking        TransactionType = "hotel_booking"
	TransactionTypeMarketplacePurchase TransactionType = "marketplace_purchase"
	TransactionTypeMarketplaceOrder    TransactionType = "marketplace_order"
	TransactionTypeUtilityPayment      TransactionType = "utility_payment"
	TransactionTypeTransferOut         TransactionType = "transfer_out"
	TransactionTypeTransferIn          TransactionType = "transfer_in"
	TransactionTypeBalanceAdjustment   TransactionType = "balance_adjustment"
)

// Transaction is an immutable ledger entry. Debits are negative.
type Transaction struct {
	ID          int64           `json:"id"`          // Sequential identifier
	UserID      int64           `json:"user_id"`     // Owner account
	Type        TransactionType `json:"type"`        // Cause of the entry
	Amount      decimal.Decimal `json:"amount"`      // Signed amount
	Description string          `json:"description"` // Human readable summary
	CreatedAt   time.Time       `json:"created_at"`  // Creation timestamp
}

func (t Transaction) GetID() int64            { return t.ID }
func (t Transaction) GetUserID() int64        { return t.UserID }
func (t Transaction) GetCreatedAt() time.Time { return t.CreatedAt }

func (t *Transaction) Stamp(id int64, createdAt time.Time) {
	t.ID = id
	t.CreatedAt = createdAt
}

// TransactionEvent is the message published for every committed transaction.
type TransactionEvent struct {
	EventID       string          `json:"event_id"`       // Unique message id
	TransactionID int64           `json:"transaction_id"` // Ledger entry id
	WalletAddress string          `json:"wallet_address"` // Owner wallet
	Type          TransactionType `json:"type"`           // Cause of the entry
	Amount        decimal.Decimal `json:"amount"`         // Signed amount
	Balance       decimal.Decimal `json:"balance"`        // Balance after the entry
	Timestamp     int64           `json:"timestamp"`      // Unix seconds
}
