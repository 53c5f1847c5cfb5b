// Package money provides a Money value object that stores amounts as
// integers in the smallest currency unit (thebe for BWP), avoiding
// floating-point rounding error in balance arithmetic.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pulabank/corebank/pkg/currency"
)

var (
	// ErrInvalidCurrencyCode is returned when a currency code is malformed.
	ErrInvalidCurrencyCode = errors.New("invalid currency code")

	// ErrInvalidDecimalPlaces is returned when an amount carries more
	// decimal places than the currency allows.
	ErrInvalidDecimalPlaces = errors.New("amount has more decimal places than allowed by the currency")

	// ErrCurrencyMismatch is returned when arithmetic is attempted across
	// two different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

// Amount is a monetary amount in the smallest currency unit.
type Amount = int64

// Money represents a monetary value in a specific currency.
// Invariants:
//   - Amount is always stored in the smallest currency unit.
//   - Currency code must be a registered ISO 4217 code.
//   - All arithmetic operations require matching currencies.
type Money struct {
	amount   Amount
	currency currency.Code
}

// New creates a Money value from a decimal string such as "500.00".
// The currency's decimal precision is enforced; "0.005" in a
// two-decimal currency is rejected rather than rounded.
func New(amount string, code currency.Code) (Money, error) {
	if code == "" {
		code = currency.DefaultCurrency
	}
	if !currency.IsValidFormat(string(code)) {
		return Money{}, ErrInvalidCurrencyCode
	}
	meta, err := currency.Get(code)
	if err != nil {
		return Money{}, err
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	minor := d.Shift(int32(meta.Decimals))
	if !minor.IsInteger() {
		return Money{}, ErrInvalidDecimalPlaces
	}
	return Money{amount: minor.IntPart(), currency: code}, nil
}

// NewFromFloat creates a Money value from a float64 in major units.
// Intended for API boundaries; precision checks match New.
func NewFromFloat(amount float64, code currency.Code) (Money, error) {
	return New(decimal.NewFromFloat(amount).String(), code)
}

// NewFromMinorUnit creates a Money value directly from the smallest
// currency unit, for repository hydration and test fixtures.
func NewFromMinorUnit(amount int64, code currency.Code) (Money, error) {
	if code == "" {
		code = currency.DefaultCurrency
	}
	if !currency.IsValidFormat(string(code)) {
		return Money{}, ErrInvalidCurrencyCode
	}
	if !currency.IsSupported(code) {
		return Money{}, currency.ErrUnsupportedCurrency
	}
	return Money{amount: amount, currency: code}, nil
}

// Zero returns a zero-valued Money in the given currency.
func Zero(code currency.Code) Money {
	if code == "" {
		code = currency.DefaultCurrency
	}
	return Money{amount: 0, currency: code}
}

// Amount returns the amount in the smallest currency unit.
func (m Money) Amount() Amount {
	return m.amount
}

// Currency returns the currency code.
func (m Money) Currency() currency.Code {
	return m.currency
}

// Decimal returns the amount in major units as an exact decimal.
func (m Money) Decimal() decimal.Decimal {
	meta, err := currency.Get(m.currency)
	if err != nil {
		return decimal.NewFromInt(m.amount)
	}
	return decimal.NewFromInt(m.amount).Shift(-int32(meta.Decimals))
}

// Float64 returns the amount in major units. Only for display and API
// serialization; never feed the result back into arithmetic.
func (m Money) Float64() float64 {
	f, _ := m.Decimal().Float64()
	return f
}

// Add returns the sum of two Money values of the same currency.
func (m Money) Add(other Money) (Money, error) {
	if !m.IsSameCurrency(other) {
		return Money{}, ErrCurrencyMismatch
	}
	return Money{amount: m.amount + other.amount, currency: m.currency}, nil
}

// Subtract returns the difference of two Money values of the same currency.
func (m Money) Subtract(other Money) (Money, error) {
	if !m.IsSameCurrency(other) {
		return Money{}, ErrCurrencyMismatch
	}
	return Money{amount: m.amount - other.amount, currency: m.currency}, nil
}

// MultiplyRate multiplies the amount by an exact decimal rate, rounding
// half-up to the nearest smallest unit. Used for interest accrual.
func (m Money) MultiplyRate(rate decimal.Decimal) Money {
	scaled := decimal.NewFromInt(m.amount).Mul(rate).Round(0)
	return Money{amount: scaled.IntPart(), currency: m.currency}
}

// Negate returns the Money value with its sign flipped.
func (m Money) Negate() Money {
	return Money{amount: -m.amount, currency: m.currency}
}

// Equals reports whether two Money values have the same currency and amount.
func (m Money) Equals(other Money) bool {
	return m.IsSameCurrency(other) && m.amount == other.amount
}

// GreaterThan reports whether m exceeds other.
func (m Money) GreaterThan(other Money) (bool, error) {
	if !m.IsSameCurrency(other) {
		return false, ErrCurrencyMismatch
	}
	return m.amount > other.amount, nil
}

// LessThan reports whether m is below other.
func (m Money) LessThan(other Money) (bool, error) {
	if !m.IsSameCurrency(other) {
		return false, ErrCurrencyMismatch
	}
	return m.amount < other.amount, nil
}

// IsSameCurrency reports whether both values share a currency.
func (m Money) IsSameCurrency(other Money) bool {
	return m.currency == other.currency
}

// IsPositive reports whether the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount > 0
}

// IsNegative reports whether the amount is less than zero.
func (m Money) IsNegative() bool {
	return m.amount < 0
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// String formats the value with the currency's precision, e.g. "500.00 BWP".
func (m Money) String() string {
	meta, err := currency.Get(m.currency)
	if err != nil {
		return fmt.Sprintf("%d %s", m.amount, m.currency)
	}
	return fmt.Sprintf("%s %s", m.Decimal().StringFixed(int32(meta.Decimals)), m.currency)
}
