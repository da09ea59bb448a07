package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/rewipay-ledger/internal/logger"
	"github.com/sbilibin2017/rewipay-ledger/internal/models"
)

// GetBalance returns the balance of walletAddress, creating the account
// with the initial balance on first reference.
func (s *LedgerService) GetBalance(ctx context.Context, walletAddress string) (decimal.Decimal, error) {
	user, err := s.GetOrCreateAccount(ctx, walletAddress)
	if err != nil {
		return decimal.Zero, err
	}
	return user.Balance, nil
}

// SetBalance overwrites the balance of walletAddress. The difference is
// recorded in the ledger as a balance_adjustment.
func (s *LedgerService) SetBalance(ctx context.Context, walletAddress string, balance decimal.Decimal) (*models.User, error) {
	if balance.IsNegative() {
		return nil, fmt.Errorf("%w: balance %s", models.ErrInvalidAmount, balance)
	}
	if _, err := s.GetOrCreateAccount(ctx, walletAddress); err != nil {
		return nil, err
	}

	receipt, err := s.Adjust(ctx, walletAddress, balance)
	if err != nil {
		logger.Log.Errorw("failed to set balance", "wallet_address", walletAddress, "balance", balance, "error", err)
		return nil, err
	}
	return receipt.User, nil
}
