// Package account implements the operation engine: it validates and
// applies deposits, withdrawals, transfers and interest accrual against
// the account model, records a ledger entry for every applied mutation,
// and keeps multi-account operations atomic.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/pulabank/corebank/pkg/domain/account"
	"github.com/pulabank/corebank/pkg/domain/common"
	"github.com/pulabank/corebank/pkg/domain/customer"
	"github.com/pulabank/corebank/pkg/money"
	"github.com/pulabank/corebank/pkg/registry"
	"github.com/pulabank/corebank/pkg/repository"
)

// Service is the operation engine. Operations are request–response
// units; concurrent operations touching the same account are serialized
// by a per-account lock, lock-ordered for account pairs.
type Service struct {
	uow    repository.UnitOfWork
	locks  *lockManager
	logger *slog.Logger
}

// New creates an operation engine over the given unit of work.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, locks: newLockManager(), logger: logger}
}

// OpenAccountRequest carries the fields of an open-account operation.
// AccountNumber is externally generated; uniqueness is a caller
// precondition. Employer is only consulted when a cheque account is
// opened for an unemployed individual.
type OpenAccountRequest struct {
	CustomerID     uuid.UUID
	Variant        account.Variant
	Branch         string
	AccountNumber  string
	InitialDeposit money.Money
	Employer       string
}

// OpenAccount resolves the customer, constructs the account under the
// variant's opening rules, links ownership, and records the initial
// deposit as the account's first ledger entry. For investment accounts
// the construction already consumed the deposit, so only the record is
// emitted; other variants run the amount through the deposit path.
func (s *Service) OpenAccount(ctx context.Context, req OpenAccountRequest) (account.Account, error) {
	if !req.Variant.Valid() {
		return nil, common.ErrTypeMismatch
	}

	var opened account.Account
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		customers := uow.CustomerRepository()
		owner, err := customers.Get(ctx, req.CustomerID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return customer.ErrCustomerNotFound
			}
			return err
		}

		// Cheque opening may employ the individual first, using the
		// caller-supplied employer, before eligibility is re-checked.
		if req.Variant == account.VariantCheque {
			if ind, ok := owner.(*customer.Individual); ok && !ind.Employed() &&
				strings.TrimSpace(req.Employer) != "" {
				ind.SetEmployer(req.Employer)
				if err := customers.Update(ctx, ind); err != nil {
					return err
				}
			}
		}

		a, err := s.construct(req, owner)
		if err != nil {
			return err
		}

		accounts := uow.AccountRepository()
		if err := accounts.Create(ctx, a); err != nil {
			return err
		}
		reg := registry.New(customers, accounts)
		if err := reg.Link(ctx, owner, a); err != nil {
			return err
		}

		if req.Variant != account.VariantInvestment {
			if err := a.Deposit(req.InitialDeposit); err != nil {
				return err
			}
			if err := accounts.Update(ctx, a); err != nil {
				return err
			}
		}
		rec := account.NewTransaction(a.Number(), account.KindDeposit,
			req.InitialDeposit, a.Balance(), "Initial deposit")
		if err := uow.TransactionRepository().Create(ctx, rec); err != nil {
			return err
		}

		opened = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("account opened",
		"account", opened.Number(), "variant", req.Variant, "balance", opened.Balance().String())
	return opened, nil
}

func (s *Service) construct(req OpenAccountRequest, owner customer.Customer) (account.Account, error) {
	switch req.Variant {
	case account.VariantSavings:
		return account.NewSavings(req.AccountNumber, owner, req.Branch)
	case account.VariantInvestment:
		return account.NewInvestment(req.AccountNumber, owner, req.Branch, req.InitialDeposit)
	case account.VariantCheque:
		return account.NewCheque(req.AccountNumber, owner, req.Branch)
	default:
		return nil, common.ErrTypeMismatch
	}
}

// Deposit adds funds to an account and records the ledger entry.
func (s *Service) Deposit(ctx context.Context, number string, amount money.Money, description string) (*account.Transaction, error) {
	if description == "" {
		description = "Deposit"
	}
	release := s.locks.acquire(number)
	defer release()

	var rec *account.Transaction
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		a, err := s.getAccount(ctx, uow, number)
		if err != nil {
			return err
		}
		if err := a.Deposit(amount); err != nil {
			return err
		}
		if err := uow.AccountRepository().Update(ctx, a); err != nil {
			return err
		}
		rec = account.NewTransaction(number, account.KindDeposit, amount, a.Balance(), description)
		return uow.TransactionRepository().Create(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("deposit applied", "account", number, "amount", amount.String())
	return rec, nil
}

// Withdraw removes funds from a withdrawable account and records the
// ledger entry. Accounts without the capability fail with a type
// mismatch; the balance floor is enforced by the variant.
func (s *Service) Withdraw(ctx context.Context, number string, amount money.Money) (*account.Transaction, error) {
	release := s.locks.acquire(number)
	defer release()

	var rec *account.Transaction
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		a, err := s.getAccount(ctx, uow, number)
		if err != nil {
			return err
		}
		w, ok := a.(account.Withdrawable)
		if !ok {
			return common.ErrTypeMismatch
		}
		if err := w.Withdraw(amount); err != nil {
			return err
		}
		if err := uow.AccountRepository().Update(ctx, a); err != nil {
			return err
		}
		rec = account.NewTransaction(number, account.KindWithdrawal, amount.Negate(), a.Balance(), "Withdrawal")
		return uow.TransactionRepository().Create(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("withdrawal applied", "account", number, "amount", amount.String())
	return rec, nil
}

// Transfer moves funds between two accounts as a single atomic unit:
// either both balances change and both ledger entries are recorded, or
// nothing is. The debit leg enforces the balance floor but does not
// require the withdraw capability, so a savings account can fund a
// transfer.
func (s *Service) Transfer(ctx context.Context, fromNumber, toNumber string, amount money.Money) (debit, credit *account.Transaction, err error) {
	if fromNumber == toNumber {
		return nil, nil, account.ErrSameAccount
	}
	release := s.locks.acquire(fromNumber, toNumber)
	defer release()

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		src, err := s.getAccount(ctx, uow, fromNumber)
		if err != nil {
			return err
		}
		dst, err := s.getAccount(ctx, uow, toNumber)
		if err != nil {
			return err
		}
		if err := src.Debit(amount); err != nil {
			return err
		}
		if err := dst.Deposit(amount); err != nil {
			return err
		}
		accounts := uow.AccountRepository()
		if err := accounts.Update(ctx, src); err != nil {
			return err
		}
		if err := accounts.Update(ctx, dst); err != nil {
			return err
		}

		transactions := uow.TransactionRepository()
		debit = account.NewTransaction(fromNumber, account.KindTransfer,
			amount.Negate(), src.Balance(), fmt.Sprintf("Transfer to %s", toNumber))
		if err := transactions.Create(ctx, debit); err != nil {
			return err
		}
		credit = account.NewTransaction(toNumber, account.KindTransfer,
			amount, dst.Balance(), fmt.Sprintf("Transfer from %s", fromNumber))
		return transactions.Create(ctx, credit)
	})
	if err != nil {
		return nil, nil, err
	}
	s.logger.Info("transfer applied",
		"from", fromNumber, "to", toNumber, "amount", amount.String())
	return debit, credit, nil
}

// ApplyMonthlyInterest accrues one period's interest on an
// interest-bearing account and records the ledger entry. Other variants
// fail with a type mismatch.
func (s *Service) ApplyMonthlyInterest(ctx context.Context, number string) (*account.Transaction, error) {
	release := s.locks.acquire(number)
	defer release()

	var rec *account.Transaction
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		a, err := s.getAccount(ctx, uow, number)
		if err != nil {
			return err
		}
		ib, ok := a.(account.InterestBearing)
		if !ok {
			return common.ErrTypeMismatch
		}
		owner, err := uow.CustomerRepository().Get(ctx, a.OwnerID())
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return customer.ErrCustomerNotFound
			}
			return err
		}
		applied := ib.ApplyMonthlyInterest(owner)
		if err := uow.AccountRepository().Update(ctx, a); err != nil {
			return err
		}
		rec = account.NewTransaction(number, account.KindInterest, applied, a.Balance(), "Interest")
		return uow.TransactionRepository().Create(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("interest applied", "account", number, "amount", rec.Amount.String())
	return rec, nil
}

// CalculateMonthlyInterest returns one period's interest for an
// interest-bearing account without applying it.
func (s *Service) CalculateMonthlyInterest(ctx context.Context, number string) (money.Money, error) {
	a, err := s.getAccount(ctx, s.uow, number)
	if err != nil {
		return money.Money{}, err
	}
	ib, ok := a.(account.InterestBearing)
	if !ok {
		return money.Money{}, common.ErrTypeMismatch
	}
	owner, err := s.uow.CustomerRepository().Get(ctx, a.OwnerID())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return money.Money{}, customer.ErrCustomerNotFound
		}
		return money.Money{}, err
	}
	return ib.CalculateMonthlyInterest(owner), nil
}

// GetAccount resolves an account by number.
func (s *Service) GetAccount(ctx context.Context, number string) (account.Account, error) {
	return s.getAccount(ctx, s.uow, number)
}

// GetBalance returns the current balance of an account.
func (s *Service) GetBalance(ctx context.Context, number string) (money.Money, error) {
	a, err := s.getAccount(ctx, s.uow, number)
	if err != nil {
		return money.Money{}, err
	}
	return a.Balance(), nil
}

// GetTransactions lists an account's ledger entries in applied order.
// A non-empty kind narrows the listing to that entry kind.
func (s *Service) GetTransactions(ctx context.Context, number string, kind account.Kind) ([]*account.Transaction, error) {
	if _, err := s.getAccount(ctx, s.uow, number); err != nil {
		return nil, err
	}
	all, err := s.uow.TransactionRepository().List(ctx, number)
	if err != nil {
		return nil, err
	}
	if kind == "" {
		return all, nil
	}
	filtered := make([]*account.Transaction, 0, len(all))
	for _, tx := range all {
		if tx.Kind == kind {
			filtered = append(filtered, tx)
		}
	}
	return filtered, nil
}

func (s *Service) getAccount(ctx context.Context, uow repository.UnitOfWork, number string) (account.Account, error) {
	a, err := uow.AccountRepository().Get(ctx, number)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, account.ErrAccountNotFound
		}
		return nil, err
	}
	return a, nil
}
