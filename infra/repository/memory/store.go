// Package memory implements the repository contracts in process memory.
// Records are stored as plain value snapshots, so a unit of work can
// roll back by restoring the map state captured at its start.
package memory

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pulabank/corebank/pkg/currency"
	"github.com/pulabank/corebank/pkg/domain/account"
	"github.com/pulabank/corebank/pkg/domain/customer"
	"github.com/pulabank/corebank/pkg/money"
	"github.com/pulabank/corebank/pkg/repository"
)

type customerKind string

const (
	kindIndividual customerKind = "individual"
	kindCompany    customerKind = "company"
)

type customerRecord struct {
	kind      customerKind
	id        uuid.UUID
	address   string
	firstName string
	lastName  string
	dob       time.Time
	employed  bool
	employer  string
	company   string
	regNumber string
	accounts  []string
}

type accountKind string

const (
	kindSavings    accountKind = "savings"
	kindInvestment accountKind = "investment"
	kindCheque     accountKind = "cheque"
)

type accountRecord struct {
	kind     accountKind
	number   string
	ownerID  uuid.UUID
	branch   string
	balance  int64
	currency string
}

// Store holds all records behind a single mutex so that a unit of work
// sees and mutates a consistent snapshot.
type Store struct {
	mu           sync.RWMutex
	customers    map[uuid.UUID]customerRecord
	accounts     map[string]accountRecord
	transactions map[string][]*account.Transaction
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		customers:    make(map[uuid.UUID]customerRecord),
		accounts:     make(map[string]accountRecord),
		transactions: make(map[string][]*account.Transaction),
	}
}

// UnitOfWork returns a repository.UnitOfWork over the store.
func (s *Store) UnitOfWork() repository.UnitOfWork {
	return &unitOfWork{store: s}
}

type unitOfWork struct {
	store *Store
	// inTx marks a UoW bound inside Do; its repositories skip locking
	// because Do already holds the store lock.
	inTx bool
}

// Do runs fn while holding the store lock exclusively. On error the map
// state captured at entry is restored, so partial writes never survive.
func (u *unitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if u.inTx {
		return fn(u)
	}
	s := u.store
	s.mu.Lock()
	defer s.mu.Unlock()

	customers := maps.Clone(s.customers)
	accounts := maps.Clone(s.accounts)
	transactions := make(map[string][]*account.Transaction, len(s.transactions))
	for k, v := range s.transactions {
		transactions[k] = v[:len(v):len(v)]
	}

	if err := fn(&unitOfWork{store: s, inTx: true}); err != nil {
		s.customers = customers
		s.accounts = accounts
		s.transactions = transactions
		return err
	}
	return nil
}

func (u *unitOfWork) CustomerRepository() repository.CustomerRepository {
	return &customerRepository{store: u.store, locked: u.inTx}
}

func (u *unitOfWork) AccountRepository() repository.AccountRepository {
	return &accountRepository{store: u.store, locked: u.inTx}
}

func (u *unitOfWork) TransactionRepository() repository.TransactionRepository {
	return &transactionRepository{store: u.store, locked: u.inTx}
}

func hydrateCustomer(rec customerRecord) customer.Customer {
	switch rec.kind {
	case kindIndividual:
		return customer.NewIndividualFromData(
			rec.id, rec.address, rec.firstName, rec.lastName,
			rec.dob, rec.employed, rec.employer, rec.accounts)
	default:
		return customer.NewCompanyFromData(rec.id, rec.address, rec.company, rec.regNumber, rec.accounts)
	}
}

func snapshotCustomer(c customer.Customer) customerRecord {
	rec := customerRecord{
		id:       c.ID(),
		address:  c.Address(),
		accounts: c.AccountNumbers(),
	}
	switch v := c.(type) {
	case *customer.Individual:
		rec.kind = kindIndividual
		rec.firstName = v.FirstName
		rec.lastName = v.LastName
		rec.dob = v.DateOfBirth
		rec.employed = v.Employed()
		rec.employer = v.Employer()
	case *customer.Company:
		rec.kind = kindCompany
		rec.company = v.Name
		rec.regNumber = v.RegistrationNumber
	}
	return rec
}

func hydrateAccount(rec accountRecord) (account.Account, error) {
	balance, err := money.NewFromMinorUnit(rec.balance, currency.Code(rec.currency))
	if err != nil {
		return nil, err
	}
	switch rec.kind {
	case kindSavings:
		return account.NewSavingsFromData(rec.number, rec.ownerID, rec.branch, balance), nil
	case kindInvestment:
		return account.NewInvestmentFromData(rec.number, rec.ownerID, rec.branch, balance), nil
	default:
		return account.NewChequeFromData(rec.number, rec.ownerID, rec.branch, balance), nil
	}
}

func snapshotAccount(a account.Account) accountRecord {
	rec := accountRecord{
		number:   a.Number(),
		ownerID:  a.OwnerID(),
		branch:   a.Branch(),
		balance:  a.Balance().Amount(),
		currency: string(a.Balance().Currency()),
	}
	switch a.(type) {
	case *account.Savings:
		rec.kind = kindSavings
	case *account.Investment:
		rec.kind = kindInvestment
	case *account.Cheque:
		rec.kind = kindCheque
	}
	return rec
}
