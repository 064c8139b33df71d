package money

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrTooPrecise = errors.New("amount has more than two decimal places")
	ErrOutOfRange = errors.New("amount is out of range")
)

// FromCents converts minor units to a decimal amount.
func FromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// ToCents converts a decimal amount to minor units. Sub-cent amounts and amounts that do
// not fit int64 cents are rejected.
func ToCents(d decimal.Decimal) (int64, error) {
	cents := d.Shift(2)
	if !cents.Equal(cents.Truncate(0)) {
		return 0, ErrTooPrecise
	}
	if !cents.BigInt().IsInt64() {
		return 0, ErrOutOfRange
	}
	return cents.IntPart(), nil
}

// Parse reads a string like "12.50" into cents.
func Parse(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	return ToCents(d)
}

func Format(cents int64) string {
	return FromCents(cents).StringFixed(2)
}
