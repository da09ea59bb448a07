package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/rewipay-ledger/internal/models"
)

// BillRepository stores paid utility bills.
type BillRepository interface {
	Save(ctx context.Context, bill *models.UtilityBill) (*models.UtilityBill, error)
	ListByUserID(ctx context.Context, userID int64, limit int) ([]models.UtilityBill, error)
}

// UtilityService pays utility bills from the wallet balance.
type UtilityService struct {
	ledger Charger
	bills  BillRepository
	now    func() time.Time
}

func NewUtilityService(ledger Charger, bills BillRepository) *UtilityService {
	return &UtilityService{ledger: ledger, bills: bills, now: time.Now}
}

// PayBill charges bill.Amount and stores the bill as paid, due a week
// after payment.
func (s *UtilityService) PayBill(ctx context.Context, walletAddress string, bill models.UtilityBill) (*models.UtilityBill, decimal.Decimal, error) {
	if bill.BillerID == "" || bill.CustomerID == "" {
		return nil, decimal.Zero, fmt.Errorf("%w: biller and customer are required", models.ErrMalformedInput)
	}

	var saved *models.UtilityBill
	receipt, err := s.ledger.Charge(ctx, walletAddress, bill.Amount, models.TransactionTypeUtilityPayment,
		"Bill payment: "+bill.BillerName,
		func(ctx context.Context, payer *models.User) error {
			bill.UserID = payer.ID
			bill.Status = models.StatusPaid
			bill.DueDate = models.DueDateFrom(s.now())
			var err error
			saved, err = s.bills.Save(ctx, &bill)
			return err
		})
	if err != nil {
		return nil, decimal.Zero, err
	}
	return saved, receipt.User.Balance, nil
}

// ListBills returns the newest paid bills of walletAddress.
func (s *UtilityService) ListBills(ctx context.Context, walletAddress string) ([]models.UtilityBill, error) {
	user, err := s.ledger.GetOrCreateAccount(ctx, walletAddress)
	if err != nil {
		return nil, err
	}
	return s.bills.ListByUserID(ctx, user.ID, s.ledger.ListLimit())
}
