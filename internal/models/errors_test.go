package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInsufficientBalanceError(t *testing.T) {
	err := fmt.Errorf("charge: %w", &InsufficientBalanceError{
		Required:  decimal.NewFromInt(500),
		Available: decimal.NewFromInt(120),
	})

	assert.True(t, errors.Is(err, ErrInsufficientBalance))
	assert.False(t, errors.Is(err, ErrInvalidAmount))

	var target *InsufficientBalanceError
	if assert.True(t, errors.As(err, &target)) {
		assert.Equal(t, "500", target.Required.String())
		assert.Equal(t, "120", target.Available.String())
	}
	assert.EqualError(t, err, "charge: insufficient balance: required 500, available 120")
}
