package gormrepo

import (
	"context"

	"gorm.io/gorm"

	"github.com/pulabank/corebank/pkg/repository"
)

// UoW implements repository.UnitOfWork over a GORM connection. Do runs
// its function inside a database transaction so that compound
// operations (a transfer's two legs, an opening's account + ownership +
// ledger writes) commit or roll back together.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a unit of work over the given connection.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

// Do executes fn inside a transaction. Nested Do calls reuse the
// enclosing transaction.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if u.tx != nil {
		return fn(u)
	}
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

func (u *UoW) CustomerRepository() repository.CustomerRepository {
	return NewCustomerRepository(u.session())
}

func (u *UoW) AccountRepository() repository.AccountRepository {
	return NewAccountRepository(u.session())
}

func (u *UoW) TransactionRepository() repository.TransactionRepository {
	return NewTransactionRepository(u.session())
}
