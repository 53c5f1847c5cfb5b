package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/pulabank/corebank/pkg/domain/account"
	"github.com/pulabank/corebank/pkg/domain/customer"
	"github.com/pulabank/corebank/pkg/repository"
)

type customerRepository struct {
	store *Store
	// locked is set when the enclosing unit of work already holds the
	// store lock.
	locked bool
}

func (r *customerRepository) rlock() func() {
	if r.locked {
		return func() {}
	}
	r.store.mu.RLock()
	return r.store.mu.RUnlock
}

func (r *customerRepository) lock() func() {
	if r.locked {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *customerRepository) Get(ctx context.Context, id uuid.UUID) (customer.Customer, error) {
	defer r.rlock()()
	rec, ok := r.store.customers[id]
	if !ok {
		return nil, fmt.Errorf("%w: customer %s", repository.ErrNotFound, id)
	}
	return hydrateCustomer(rec), nil
}

func (r *customerRepository) Create(ctx context.Context, c customer.Customer) error {
	defer r.lock()()
	if _, exists := r.store.customers[c.ID()]; exists {
		return fmt.Errorf("%w: customer %s", repository.ErrDuplicate, c.ID())
	}
	r.store.customers[c.ID()] = snapshotCustomer(c)
	return nil
}

func (r *customerRepository) Update(ctx context.Context, c customer.Customer) error {
	defer r.lock()()
	if _, exists := r.store.customers[c.ID()]; !exists {
		return fmt.Errorf("%w: customer %s", repository.ErrNotFound, c.ID())
	}
	r.store.customers[c.ID()] = snapshotCustomer(c)
	return nil
}

type accountRepository struct {
	store  *Store
	locked bool
}

func (r *accountRepository) rlock() func() {
	if r.locked {
		return func() {}
	}
	r.store.mu.RLock()
	return r.store.mu.RUnlock
}

func (r *accountRepository) lock() func() {
	if r.locked {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

func (r *accountRepository) Get(ctx context.Context, number string) (account.Account, error) {
	defer r.rlock()()
	rec, ok := r.store.accounts[number]
	if !ok {
		return nil, fmt.Errorf("%w: account %s", repository.ErrNotFound, number)
	}
	return hydrateAccount(rec)
}

func (r *accountRepository) Create(ctx context.Context, a account.Account) error {
	defer r.lock()()
	if _, exists := r.store.accounts[a.Number()]; exists {
		return fmt.Errorf("%w: account %s", repository.ErrDuplicate, a.Number())
	}
	r.store.accounts[a.Number()] = snapshotAccount(a)
	return nil
}

func (r *accountRepository) Update(ctx context.Context, a account.Account) error {
	defer r.lock()()
	if _, exists := r.store.accounts[a.Number()]; !exists {
		return fmt.Errorf("%w: account %s", repository.ErrNotFound, a.Number())
	}
	r.store.accounts[a.Number()] = snapshotAccount(a)
	return nil
}

func (r *accountRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]account.Account, error) {
	defer r.rlock()()
	var out []account.Account
	for _, rec := range r.store.accounts {
		if rec.ownerID != ownerID {
			continue
		}
		a, err := hydrateAccount(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	slices.SortFunc(out, func(a, b account.Account) int {
		switch {
		case a.Number() < b.Number():
			return -1
		case a.Number() > b.Number():
			return 1
		default:
			return 0
		}
	})
	return out, nil
}

type transactionRepository struct {
	store  *Store
	locked bool
}

func (r *transactionRepository) Create(ctx context.Context, tx *account.Transaction) error {
	if !r.locked {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}
	cp := *tx
	r.store.transactions[tx.AccountNumber] = append(r.store.transactions[tx.AccountNumber], &cp)
	return nil
}

func (r *transactionRepository) List(ctx context.Context, accountNumber string) ([]*account.Transaction, error) {
	if !r.locked {
		r.store.mu.RLock()
		defer r.store.mu.RUnlock()
	}
	recs := r.store.transactions[accountNumber]
	out := make([]*account.Transaction, 0, len(recs))
	for _, tx := range recs {
		cp := *tx
		out = append(out, &cp)
	}
	return out, nil
}
