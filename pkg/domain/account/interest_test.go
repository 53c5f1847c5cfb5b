package account_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulabank/corebank/pkg/domain/account"
)

func TestSavingsInterestRates(t *testing.T) {
	t.Parallel()

	t.Run("individual owner accrues 2.5%", func(t *testing.T) {
		owner := newIndividual(t)
		acc, err := account.NewSavings("SAV-100", owner, "Gaborone Main")
		require.NoError(t, err)
		require.NoError(t, acc.Deposit(bwp(t, "1000.00")))

		assert.Equal(t, int64(2500), acc.CalculateMonthlyInterest(owner).Amount())
	})

	t.Run("company owner accrues 7.5%", func(t *testing.T) {
		owner := newCompany(t)
		acc, err := account.NewSavings("SAV-101", owner, "Gaborone Main")
		require.NoError(t, err)
		require.NoError(t, acc.Deposit(bwp(t, "1000.00")))

		assert.Equal(t, int64(7500), acc.CalculateMonthlyInterest(owner).Amount())
	})
}

func TestInvestmentInterestFlatRate(t *testing.T) {
	t.Parallel()

	individual := newIndividual(t)
	companyOwner := newCompany(t)

	acc, err := account.NewInvestment("INV-100", individual, "Gaborone Main", bwp(t, "1000.00"))
	require.NoError(t, err)
	assert.Equal(t, int64(5000), acc.CalculateMonthlyInterest(individual).Amount())
	// Rate does not depend on the owner variant.
	assert.Equal(t, int64(5000), acc.CalculateMonthlyInterest(companyOwner).Amount())
}

func TestApplyMonthlyInterest(t *testing.T) {
	t.Parallel()

	owner := newCompany(t)
	acc, err := account.NewSavings("SAV-102", owner, "Gaborone Main")
	require.NoError(t, err)
	require.NoError(t, acc.Deposit(bwp(t, "1000.00")))

	applied := acc.ApplyMonthlyInterest(owner)
	assert.Equal(t, int64(7500), applied.Amount())
	assert.Equal(t, int64(107500), acc.Balance().Amount())
}

func TestInterestRoundsToMinorUnit(t *testing.T) {
	t.Parallel()

	owner := newIndividual(t)
	acc, err := account.NewSavings("SAV-103", owner, "Gaborone Main")
	require.NoError(t, err)
	// 0.33 * 2.5% = 0.00825 -> rounds half-up to 0.01
	require.NoError(t, acc.Deposit(bwp(t, "0.33")))

	assert.Equal(t, int64(1), acc.CalculateMonthlyInterest(owner).Amount())
}
