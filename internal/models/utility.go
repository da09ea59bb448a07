package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillDueDays is how far after payment a bill's due date is set.
const BillDueDays = 7

// UtilityBill is a paid utility bill. Payment is instantaneous.
type UtilityBill struct {
	ID         int64           `json:"id"`
	UserID     int64           `json:"user_id"`
	BillerID   string          `json:"biller_id"`
	BillerName string          `json:"biller_name"`
	CustomerID string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Status     RecordStatus    `json:"status"`
	DueDate    string          `json:"due_date"`
	CreatedAt  time.Time       `json:"created_at"`
}

func (b UtilityBill) GetID() int64            { return b.ID }
func (b UtilityBill) GetUserID() int64        { return b.UserID }
func (b UtilityBill) GetCreatedAt() time.Time { return b.CreatedAt }

func (b *UtilityBill) Stamp(id int64, createdAt time.Time) {
	b.ID = id
	b.CreatedAt = createdAt
}

// DueDateFrom formats the due date for a bill paid at t.
func DueDateFrom(t time.Time) string {
	return t.UTC().AddDate(0, 0, BillDueDays).Format(time.DateOnly)
}
