package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulabank/corebank/pkg/currency"
	"github.com/pulabank/corebank/pkg/money"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("converts to smallest unit", func(t *testing.T) {
		m, err := money.New("500.00", "BWP")
		require.NoError(t, err)
		assert.Equal(t, int64(50000), m.Amount())
		assert.Equal(t, currency.Code("BWP"), m.Currency())
	})

	t.Run("defaults to BWP", func(t *testing.T) {
		m, err := money.New("1.50", "")
		require.NoError(t, err)
		assert.Equal(t, currency.Code("BWP"), m.Currency())
		assert.Equal(t, int64(150), m.Amount())
	})

	t.Run("rejects excess decimals", func(t *testing.T) {
		_, err := money.New("1.005", "BWP")
		assert.ErrorIs(t, err, money.ErrInvalidDecimalPlaces)
	})

	t.Run("rejects malformed code", func(t *testing.T) {
		_, err := money.New("1.00", "bw")
		assert.ErrorIs(t, err, money.ErrInvalidCurrencyCode)
	})

	t.Run("rejects unregistered code", func(t *testing.T) {
		_, err := money.New("1.00", "XXX")
		assert.ErrorIs(t, err, currency.ErrUnsupportedCurrency)
	})
}

func TestArithmetic(t *testing.T) {
	t.Parallel()

	a, err := money.New("100.00", "BWP")
	require.NoError(t, err)
	b, err := money.New("40.25", "BWP")
	require.NoError(t, err)

	t.Run("add", func(t *testing.T) {
		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.Equal(t, int64(14025), sum.Amount())
	})

	t.Run("subtract", func(t *testing.T) {
		diff, err := a.Subtract(b)
		require.NoError(t, err)
		assert.Equal(t, int64(5975), diff.Amount())
	})

	t.Run("currency mismatch", func(t *testing.T) {
		usd, err := money.New("1.00", "USD")
		require.NoError(t, err)
		_, err = a.Add(usd)
		assert.ErrorIs(t, err, money.ErrCurrencyMismatch)
	})

	t.Run("comparisons", func(t *testing.T) {
		gt, err := a.GreaterThan(b)
		require.NoError(t, err)
		assert.True(t, gt)
		lt, err := b.LessThan(a)
		require.NoError(t, err)
		assert.True(t, lt)
	})
}

func TestMultiplyRate(t *testing.T) {
	t.Parallel()

	balance, err := money.New("1000.00", "BWP")
	require.NoError(t, err)

	interest := balance.MultiplyRate(decimal.RequireFromString("0.025"))
	assert.Equal(t, int64(2500), interest.Amount())
	assert.Equal(t, "25.00 BWP", interest.String())

	// Half-up rounding at the smallest unit.
	odd, err := money.New("0.33", "BWP")
	require.NoError(t, err)
	assert.Equal(t, int64(2), odd.MultiplyRate(decimal.RequireFromString("0.05")).Amount())
}

func TestString(t *testing.T) {
	t.Parallel()

	m, err := money.New("75.50", "BWP")
	require.NoError(t, err)
	assert.Equal(t, "75.50 BWP", m.String())
	assert.InDelta(t, 75.50, m.Float64(), 1e-9)
}
