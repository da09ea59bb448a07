package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultInitialBalance is the demo faucet amount credited to new wallets.
var DefaultInitialBalance = decimal.NewFromInt(10000)

// User is an account keyed by its wallet address.
type User struct {
	ID            int64           `json:"id"`             // Sequential identifier
	WalletAddress string          `json:"wallet_address"` // Lookup key, matched literally
	Balance       decimal.Decimal `json:"balance"`        // Current spendable balance
	CreatedAt     time.Time       `json:"created_at"`     // Creation timestamp
}

func (u User) GetID() int64            { return u.ID }
func (u User) GetUserID() int64        { return u.ID }
func (u User) GetCreatedAt() time.Time { return u.CreatedAt }

func (u *User) Stamp(id int64, createdAt time.Time) {
	u.ID = id
	u.CreatedAt = createdAt
}
