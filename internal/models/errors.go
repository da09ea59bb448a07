package models

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound is returned when a wallet address has no account.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountExists is returned when creating an address that is already registered.
	ErrAccountExists = errors.New("account already exists")
	// ErrInsufficientBalance is matched by *InsufficientBalanceError.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrInvalidAmount is returned for non-positive prices and transfer amounts.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrMalformedInput is returned when a request is missing required fields.
	ErrMalformedInput = errors.New("malformed input")
	// ErrStoreIO wraps failures reading or writing the persisted document.
	ErrStoreIO = errors.New("store i/o error")
)

// InsufficientBalanceError reports a rejected debit with the amounts involved.
type InsufficientBalanceError struct {
	Required  decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: required %s, available %s", e.Required, e.Available)
}

func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}
