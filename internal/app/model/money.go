package model

import (
	"fmt"
	"github.com/shopspring/decimal"
	"ledger/internal/app/apperr"
)

const (
	// AmountScale is the number of fractional digits of every monetary column
	AmountScale = 2
	// DefaultMaxDigits is the default total digit count of monetary values
	DefaultMaxDigits = 12
	// ColumnDigits is the precision of the NUMERIC monetary columns, no digit limit may exceed it
	ColumnDigits = 12
	// DefaultMaxItemPrice catches item prices entered by mistake
	DefaultMaxItemPrice = 10000
)

// ValidateAmount rejects amounts that cannot be stored as NUMERIC(maxDigits, 2) without rounding.
// Amounts are never clamped or rounded.
func ValidateAmount(amount decimal.Decimal, maxDigits int32) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: should be positive value, got %s", apperr.ErrInvalidAmount, amount)
	}

	if !amount.Equal(amount.Truncate(AmountScale)) {
		return fmt.Errorf("%w: at most %d decimal places allowed, got %s", apperr.ErrInvalidAmount, AmountScale, amount)
	}

	if limit := decimal.New(1, maxDigits-AmountScale); amount.GreaterThanOrEqual(limit) {
		return fmt.Errorf("%w: should be less than %s, got %s", apperr.ErrInvalidAmount, limit, amount)
	}

	return nil
}

// ValidateItemPrice checks the amount and the item price ceiling
func ValidateItemPrice(price decimal.Decimal, maxPrice decimal.Decimal, maxDigits int32) error {
	if err := ValidateAmount(price, maxDigits); err != nil {
		return err
	}

	if price.GreaterThan(maxPrice) {
		return fmt.Errorf("%w: should be not greater than %s, got %s", apperr.ErrInvalidAmount, maxPrice, price)
	}

	return nil
}
