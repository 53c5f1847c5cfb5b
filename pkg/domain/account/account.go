// Package account models the bank's account variants. Savings,
// Investment and Cheque form a closed union over the Account interface;
// withdrawal and interest accrual are expressed as capability
// interfaces so that unsupported operations are rejected at the type
// level wherever the caller holds a concrete variant.
//
// Invariants:
//   - An account has exactly one owner, set at construction, immutable.
//   - The balance is a Money value in minor units and never goes negative.
//   - All mutation goes through Deposit and Debit; direct balance writes
//     exist only on construction and repository hydration.
package account

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pulabank/corebank/pkg/domain/customer"
	"github.com/pulabank/corebank/pkg/money"
)

// Monthly interest rates per variant. Savings rates depend on the owner
// variant; the investment rate is flat.
var (
	SavingsIndividualRate = decimal.RequireFromString("0.025")
	SavingsCompanyRate    = decimal.RequireFromString("0.075")
	InvestmentRate        = decimal.RequireFromString("0.05")
)

// MinOpeningBalance is the minimum initial deposit for an investment
// account, in major units of the account currency.
var MinOpeningBalance = decimal.RequireFromString("500.00")

// Account is the closed set of account variants.
type Account interface {
	// Number returns the externally generated, unique account number.
	Number() string
	// OwnerID returns the owning customer's identifier. The full owner is
	// resolved through the registry.
	OwnerID() uuid.UUID
	// Branch returns the administrative branch the account was opened under.
	Branch() string
	// Balance returns the current balance.
	Balance() money.Money

	// Deposit adds a positive amount to the balance.
	Deposit(amount money.Money) error

	// Debit removes a positive amount, enforcing the non-negative balance
	// floor. Transfer legs may debit any variant; the customer-facing
	// withdraw operation additionally requires the Withdrawable capability.
	Debit(amount money.Money) error

	// Info returns a one-line display summary for the presentation layer.
	Info() string

	isAccount()
}

// Withdrawable marks variants that support the customer-facing withdraw
// operation (Investment and Cheque).
type Withdrawable interface {
	Account
	Withdraw(amount money.Money) error
}

// InterestBearing marks variants that accrue monthly interest (Savings
// and Investment). The owner is passed in because savings rates depend
// on the owner variant.
type InterestBearing interface {
	Account
	// MonthlyRate returns the accrual rate for the given owner.
	MonthlyRate(owner customer.Customer) decimal.Decimal
	// CalculateMonthlyInterest returns one period's interest on the
	// current balance without applying it.
	CalculateMonthlyInterest(owner customer.Customer) money.Money
	// ApplyMonthlyInterest accrues one period's interest into the balance
	// and returns the applied amount.
	ApplyMonthlyInterest(owner customer.Customer) money.Money
}

type base struct {
	number  string
	ownerID uuid.UUID
	branch  string
	balance money.Money
	kind    string
}

func newBase(number string, owner customer.Customer, branch, kind string) (base, error) {
	if owner == nil {
		return base{}, ErrNilOwner
	}
	return base{
		number:  number,
		ownerID: owner.ID(),
		branch:  branch,
		balance: money.Zero(""),
		kind:    kind,
	}, nil
}

func (b *base) Number() string       { return b.number }
func (b *base) OwnerID() uuid.UUID   { return b.ownerID }
func (b *base) Branch() string       { return b.branch }
func (b *base) Balance() money.Money { return b.balance }

func (b *base) Deposit(amount money.Money) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	next, err := b.balance.Add(amount)
	if err != nil {
		return err
	}
	b.balance = next
	return nil
}

func (b *base) Debit(amount money.Money) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	over, err := amount.GreaterThan(b.balance)
	if err != nil {
		return err
	}
	if over {
		return ErrInsufficientFunds
	}
	next, err := b.balance.Subtract(amount)
	if err != nil {
		return err
	}
	b.balance = next
	return nil
}

func (b *base) Info() string {
	return fmt.Sprintf("Account: %s, Balance: %s, Branch: %s, Type: %s",
		b.number, b.balance, b.branch, b.kind)
}

// applyInterest accrues balance*rate into the balance, rounding half-up
// to the nearest minor unit, and returns the applied amount.
func (b *base) applyInterest(rate decimal.Decimal) money.Money {
	interest := b.balance.MultiplyRate(rate)
	next, err := b.balance.Add(interest)
	if err != nil {
		// interest shares the balance currency by construction
		return money.Zero(b.balance.Currency())
	}
	b.balance = next
	return interest
}

// Savings is interest-bearing and has no withdrawal capability. The
// accrual rate depends on the owner variant.
type Savings struct {
	base
}

// NewSavings opens a savings account with a zero balance.
func NewSavings(number string, owner customer.Customer, branch string) (*Savings, error) {
	b, err := newBase(number, owner, branch, "Savings")
	if err != nil {
		return nil, err
	}
	return &Savings{base: b}, nil
}

// NewSavingsFromData hydrates a Savings account from stored data. For
// repository use only.
func NewSavingsFromData(number string, ownerID uuid.UUID, branch string, balance money.Money) *Savings {
	return &Savings{base: base{number: number, ownerID: ownerID, branch: branch, balance: balance, kind: "Savings"}}
}

// MonthlyRate is 2.5% for individuals and 7.5% for companies.
func (a *Savings) MonthlyRate(owner customer.Customer) decimal.Decimal {
	switch owner.(type) {
	case *customer.Individual:
		return SavingsIndividualRate
	default:
		return SavingsCompanyRate
	}
}

// CalculateMonthlyInterest returns one period's interest without applying it.
func (a *Savings) CalculateMonthlyInterest(owner customer.Customer) money.Money {
	return a.balance.MultiplyRate(a.MonthlyRate(owner))
}

// ApplyMonthlyInterest accrues one period's interest and returns the amount.
func (a *Savings) ApplyMonthlyInterest(owner customer.Customer) money.Money {
	return a.applyInterest(a.MonthlyRate(owner))
}

func (a *Savings) isAccount() {}

// Investment is interest-bearing and withdrawable, and must be opened
// with an initial deposit of at least MinOpeningBalance.
type Investment struct {
	base
}

// NewInvestment opens an investment account. The initial deposit becomes
// the opening balance directly; it does not pass through the deposit
// path, so the caller records the "Initial deposit" ledger entry.
func NewInvestment(number string, owner customer.Customer, branch string, initialDeposit money.Money) (*Investment, error) {
	b, err := newBase(number, owner, branch, "Investment")
	if err != nil {
		return nil, err
	}
	if initialDeposit.Decimal().LessThan(MinOpeningBalance) {
		return nil, ErrInsufficientOpeningBalance
	}
	b.balance = initialDeposit
	return &Investment{base: b}, nil
}

// NewInvestmentFromData hydrates an Investment account from stored data.
// For repository use only.
func NewInvestmentFromData(number string, ownerID uuid.UUID, branch string, balance money.Money) *Investment {
	return &Investment{base: base{number: number, ownerID: ownerID, branch: branch, balance: balance, kind: "Investment"}}
}

// MonthlyRate is a flat 5% regardless of owner variant.
func (a *Investment) MonthlyRate(customer.Customer) decimal.Decimal {
	return InvestmentRate
}

// CalculateMonthlyInterest returns one period's interest without applying it.
func (a *Investment) CalculateMonthlyInterest(owner customer.Customer) money.Money {
	return a.balance.MultiplyRate(a.MonthlyRate(owner))
}

// ApplyMonthlyInterest accrues one period's interest and returns the amount.
func (a *Investment) ApplyMonthlyInterest(owner customer.Customer) money.Money {
	return a.applyInterest(a.MonthlyRate(owner))
}

// Withdraw removes funds, enforcing the non-negative balance floor.
func (a *Investment) Withdraw(amount money.Money) error {
	return a.Debit(amount)
}

func (a *Investment) isAccount() {}

// Cheque is withdrawable and bears no interest. Individual owners must
// be employed at construction time; companies open without restriction.
type Cheque struct {
	base
}

// NewCheque opens a cheque account with a zero balance.
func NewCheque(number string, owner customer.Customer, branch string) (*Cheque, error) {
	b, err := newBase(number, owner, branch, "Cheque")
	if err != nil {
		return nil, err
	}
	if ind, ok := owner.(*customer.Individual); ok && !ind.Employed() {
		return nil, ErrEmploymentRequired
	}
	return &Cheque{base: b}, nil
}

// NewChequeFromData hydrates a Cheque account from stored data. For
// repository use only.
func NewChequeFromData(number string, ownerID uuid.UUID, branch string, balance money.Money) *Cheque {
	return &Cheque{base: base{number: number, ownerID: ownerID, branch: branch, balance: balance, kind: "Cheque"}}
}

// Withdraw removes funds, enforcing the non-negative balance floor.
// Cheque accounts do not overdraw.
func (a *Cheque) Withdraw(amount money.Money) error {
	return a.Debit(amount)
}

func (a *Cheque) isAccount() {}
