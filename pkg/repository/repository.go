// Package repository defines the data-access contracts the core depends
// on. The core holds no database handle; persistence is an adapter
// behind these interfaces (see infra/repository).
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/pulabank/corebank/pkg/domain/account"
	"github.com/pulabank/corebank/pkg/domain/customer"
)

// CustomerRepository provides access to customer records.
type CustomerRepository interface {
	Get(ctx context.Context, id uuid.UUID) (customer.Customer, error)
	Create(ctx context.Context, c customer.Customer) error
	Update(ctx context.Context, c customer.Customer) error
}

// AccountRepository provides access to account records, keyed by the
// externally generated account number.
type AccountRepository interface {
	Get(ctx context.Context, number string) (account.Account, error)
	Create(ctx context.Context, a account.Account) error
	Update(ctx context.Context, a account.Account) error
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]account.Account, error)
}

// TransactionRepository provides access to the transaction ledger.
type TransactionRepository interface {
	Create(ctx context.Context, tx *account.Transaction) error
	List(ctx context.Context, accountNumber string) ([]*account.Transaction, error)
}

// UnitOfWork runs a function against a consistent set of repositories.
// If the function returns an error, none of its writes are kept.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	CustomerRepository() CustomerRepository
	AccountRepository() AccountRepository
	TransactionRepository() TransactionRepository
}
