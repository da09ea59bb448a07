package services

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/rewipay-ledger/internal/logger"
	"github.com/sbilibin2017/rewipay-ledger/internal/models"
)

// Transfer moves amount from one wallet to another. The sender is debited
// with a transfer_out entry and the recipient credited with a transfer_in
// entry in the same unit. The recipient account is created on first use.
// It returns the sender's ledger entry and remaining balance.
func (s *LedgerService) Transfer(
	ctx context.Context,
	fromAddress, toAddress string,
	amount decimal.Decimal,
	note string,
) (*Receipt, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: transfer amount %s", models.ErrInvalidAmount, amount)
	}
	if toAddress == "" {
		return nil, fmt.Errorf("%w: recipient is required", models.ErrMalformedInput)
	}
	if fromAddress == toAddress {
		return nil, fmt.Errorf("%w: cannot transfer to the same wallet", models.ErrMalformedInput)
	}

	if _, err := s.GetOrCreateAccount(ctx, fromAddress); err != nil {
		return nil, err
	}
	if _, err := s.GetOrCreateAccount(ctx, toAddress); err != nil {
		return nil, err
	}

	outDescription, inDescription := "Transfer to "+toAddress, "Transfer from "+fromAddress
	if note != "" {
		outDescription += ": " + note
		inDescription += ": " + note
	}

	var receipt *Receipt
	err := s.atomically(ctx, func(ctx context.Context) error {
		var err error
		receipt, err = s.Debit(ctx, fromAddress, amount, models.TransactionTypeTransferOut, outDescription)
		if err != nil {
			return err
		}
		_, err = s.Credit(ctx, toAddress, amount, models.TransactionTypeTransferIn, inDescription)
		return err
	})
	if err != nil {
		logger.Log.Errorw("transfer failed",
			"from", fromAddress,
			"to", toAddress,
			"amount", amount,
			"error", err,
		)
		return nil, err
	}
	return receipt, nil
}
