package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulabank/corebank/infra/repository/memory"
	"github.com/pulabank/corebank/pkg/domain/account"
	"github.com/pulabank/corebank/pkg/domain/customer"
	"github.com/pulabank/corebank/pkg/money"
	"github.com/pulabank/corebank/pkg/repository"
)

func seed(t *testing.T, uow repository.UnitOfWork) (customer.Customer, account.Account) {
	t.Helper()
	ctx := context.Background()

	c, err := customer.NewIndividual("Plot 5", "Kabo", "Molefe",
		time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, uow.CustomerRepository().Create(ctx, c))

	a, err := account.NewSavings("SAV-001", c, "Gaborone Main")
	require.NoError(t, err)
	require.NoError(t, uow.AccountRepository().Create(ctx, a))
	return c, a
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	uow := memory.NewStore().UnitOfWork()
	ctx := context.Background()
	c, _ := seed(t, uow)

	got, err := uow.CustomerRepository().Get(ctx, c.ID())
	require.NoError(t, err)
	ind, ok := got.(*customer.Individual)
	require.True(t, ok)
	assert.Equal(t, "Kabo Molefe", ind.FullName())

	a, err := uow.AccountRepository().Get(ctx, "SAV-001")
	require.NoError(t, err)
	assert.IsType(t, &account.Savings{}, a)
	assert.True(t, a.Balance().IsZero())
}

func TestGetReturnsIndependentCopy(t *testing.T) {
	t.Parallel()
	uow := memory.NewStore().UnitOfWork()
	ctx := context.Background()
	seed(t, uow)

	a, err := uow.AccountRepository().Get(ctx, "SAV-001")
	require.NoError(t, err)
	amount, err := money.New("10.00", "BWP")
	require.NoError(t, err)
	require.NoError(t, a.Deposit(amount))

	// Mutation is invisible until Update is called.
	again, err := uow.AccountRepository().Get(ctx, "SAV-001")
	require.NoError(t, err)
	assert.True(t, again.Balance().IsZero())
}

func TestDuplicateCreate(t *testing.T) {
	t.Parallel()
	uow := memory.NewStore().UnitOfWork()
	ctx := context.Background()
	c, _ := seed(t, uow)

	dup, err := account.NewSavings("SAV-001", c, "Francistown")
	require.NoError(t, err)
	err = uow.AccountRepository().Create(ctx, dup)
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestDoRollsBackAllWrites(t *testing.T) {
	t.Parallel()
	uow := memory.NewStore().UnitOfWork()
	ctx := context.Background()
	c, _ := seed(t, uow)

	amount, err := money.New("40.00", "BWP")
	require.NoError(t, err)

	sentinel := errors.New("boom")
	err = uow.Do(ctx, func(u repository.UnitOfWork) error {
		a, err := u.AccountRepository().Get(ctx, "SAV-001")
		require.NoError(t, err)
		require.NoError(t, a.Deposit(amount))
		require.NoError(t, u.AccountRepository().Update(ctx, a))

		rec := account.NewTransaction("SAV-001", account.KindDeposit, amount, a.Balance(), "Deposit")
		require.NoError(t, u.TransactionRepository().Create(ctx, rec))

		c.AddAccount("SAV-001")
		require.NoError(t, u.CustomerRepository().Update(ctx, c))
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)

	a, err := uow.AccountRepository().Get(ctx, "SAV-001")
	require.NoError(t, err)
	assert.True(t, a.Balance().IsZero(), "balance write rolled back")

	txs, err := uow.TransactionRepository().List(ctx, "SAV-001")
	require.NoError(t, err)
	assert.Empty(t, txs, "ledger write rolled back")

	got, err := uow.CustomerRepository().Get(ctx, c.ID())
	require.NoError(t, err)
	assert.Empty(t, got.AccountNumbers(), "ownership write rolled back")
}

func TestConcurrentCreates(t *testing.T) {
	t.Parallel()
	uow := memory.NewStore().UnitOfWork()
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c, err := customer.NewCompany("addr", "Debswana", "reg")
			if err != nil {
				t.Error(err)
				return
			}
			if err := uow.CustomerRepository().Create(ctx, c); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()
}
