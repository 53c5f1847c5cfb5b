package account

import (
	"time"

	"github.com/pulabank/corebank/pkg/domain/account"
)

// OpenAccountRequest opens a new account for an existing customer.
// Employer is only consulted for cheque accounts, where it updates the
// owner's employment details before the account is opened.
type OpenAccountRequest struct {
	CustomerID     string  `json:"customer_id" validate:"required,uuid4"`
	Variant        string  `json:"variant" validate:"required,oneof=savings investment cheque"`
	AccountNumber  string  `json:"account_number" validate:"required"`
	Branch         string  `json:"branch"`
	InitialDeposit float64 `json:"initial_deposit" validate:"required,gt=0"`
	Employer       string  `json:"employer"`
}

// DepositRequest credits an account.
type DepositRequest struct {
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	Description string  `json:"description"`
}

// WithdrawRequest debits an account that supports withdrawals.
type WithdrawRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// TransferRequest moves funds between two accounts atomically.
type TransferRequest struct {
	From   string  `json:"from" validate:"required"`
	To     string  `json:"to" validate:"required"`
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// AccountDTO is the API representation of an account.
type AccountDTO struct {
	Number  string  `json:"number"`
	OwnerID string  `json:"owner_id"`
	Branch  string  `json:"branch"`
	Balance float64 `json:"balance"`
	Info    string  `json:"info"`
}

// TransactionDTO is the API representation of a ledger entry.
type TransactionDTO struct {
	ID            string    `json:"id"`
	AccountNumber string    `json:"account_number"`
	Kind          string    `json:"kind"`
	Amount        float64   `json:"amount"`
	Balance       float64   `json:"balance"`
	Description   string    `json:"description,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// BalanceDTO reports an account balance.
type BalanceDTO struct {
	Number   string  `json:"number"`
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency"`
}

func toAccountDTO(a account.Account) AccountDTO {
	return AccountDTO{
		Number:  a.Number(),
		OwnerID: a.OwnerID().String(),
		Branch:  a.Branch(),
		Balance: a.Balance().Float64(),
		Info:    a.Info(),
	}
}

func toTransactionDTO(tx *account.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:            tx.ID.String(),
		AccountNumber: tx.AccountNumber,
		Kind:          string(tx.Kind),
		Amount:        tx.Amount.Float64(),
		Balance:       tx.Balance.Float64(),
		Description:   tx.Description,
		CreatedAt:     tx.CreatedAt,
	}
}
