// Package registry maintains the customer–account relationship.
// Ownership is stored one-directionally: a customer holds its account
// numbers in opening order, and an account's owner is resolved by
// lookup, so there is no cyclic reference between the two aggregates.
package registry

import (
	"context"

	"github.com/pulabank/corebank/pkg/domain/account"
	"github.com/pulabank/corebank/pkg/domain/customer"
	"github.com/pulabank/corebank/pkg/repository"
)

// Registry resolves customers and accounts across the ownership link.
type Registry struct {
	customers repository.CustomerRepository
	accounts  repository.AccountRepository
}

// New creates a Registry over the given repositories.
func New(customers repository.CustomerRepository, accounts repository.AccountRepository) *Registry {
	return &Registry{customers: customers, accounts: accounts}
}

// Link records that the customer owns the account and persists the
// updated ownership list. Linking an already-linked account is a no-op.
func (r *Registry) Link(ctx context.Context, c customer.Customer, a account.Account) error {
	c.AddAccount(a.Number())
	return r.customers.Update(ctx, c)
}

// Owner resolves the customer that owns the given account.
func (r *Registry) Owner(ctx context.Context, a account.Account) (customer.Customer, error) {
	return r.customers.Get(ctx, a.OwnerID())
}

// AccountsOf returns the customer's accounts in opening order.
func (r *Registry) AccountsOf(ctx context.Context, c customer.Customer) ([]account.Account, error) {
	numbers := c.AccountNumbers()
	out := make([]account.Account, 0, len(numbers))
	for _, n := range numbers {
		a, err := r.accounts.Get(ctx, n)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
