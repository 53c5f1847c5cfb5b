package account

import (
	"time"

	"github.com/google/uuid"

	"github.com/pulabank/corebank/pkg/money"
)

// Kind classifies a ledger entry for history filtering.
type Kind string

const (
	KindDeposit    Kind = "Deposit"
	KindWithdrawal Kind = "Withdrawal"
	KindTransfer   Kind = "Transfer"
	KindInterest   Kind = "Interest"
)

// Transaction is one applied balance mutation: the signed amount, the
// resulting balance, and a free-text description. Every successful
// deposit, withdrawal, transfer leg and interest accrual produces one.
type Transaction struct {
	ID            uuid.UUID
	AccountNumber string
	Kind          Kind
	Amount        money.Money // signed: negative for debits
	Balance       money.Money // balance after the mutation
	Description   string
	CreatedAt     time.Time
}

// NewTransaction records a ledger entry for an applied mutation.
func NewTransaction(accountNumber string, kind Kind, amount, balance money.Money, description string) *Transaction {
	return &Transaction{
		ID:            uuid.New(),
		AccountNumber: accountNumber,
		Kind:          kind,
		Amount:        amount,
		Balance:       balance,
		Description:   description,
		CreatedAt:     time.Now().UTC(),
	}
}

// NewTransactionFromData hydrates a Transaction from stored data. For
// repository use only.
func NewTransactionFromData(
	id uuid.UUID,
	accountNumber string,
	kind Kind,
	amount, balance money.Money,
	description string,
	created time.Time,
) *Transaction {
	return &Transaction{
		ID:            id,
		AccountNumber: accountNumber,
		Kind:          kind,
		Amount:        amount,
		Balance:       balance,
		Description:   description,
		CreatedAt:     created,
	}
}
