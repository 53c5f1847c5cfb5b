// Package account exposes HTTP endpoints for account and ledger operations.
package account

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/pulabank/corebank/pkg/config"
	"github.com/pulabank/corebank/pkg/currency"
	"github.com/pulabank/corebank/pkg/domain/account"
	"github.com/pulabank/corebank/pkg/money"
	accountsvc "github.com/pulabank/corebank/pkg/service/account"
	"github.com/pulabank/corebank/webapi/common"
)

// Routes registers HTTP routes for account operations.
//
// Routes:
//   - POST /accounts                        : Open a new account with an initial deposit.
//   - GET  /accounts/:number                : Retrieve an account.
//   - POST /accounts/:number/deposit        : Deposit funds.
//   - POST /accounts/:number/withdraw       : Withdraw funds.
//   - POST /accounts/:number/interest       : Apply one month of interest.
//   - GET  /accounts/:number/balance        : Retrieve the balance.
//   - GET  /accounts/:number/transactions   : List ledger entries, optionally filtered by kind.
//   - POST /transfer                        : Move funds between two accounts.
func Routes(app *fiber.App, svc *accountsvc.Service, cfg *config.App) {
	app.Post("/accounts", Open(svc, cfg))
	app.Get("/accounts/:number", Get(svc))
	app.Post("/accounts/:number/deposit", Deposit(svc))
	app.Post("/accounts/:number/withdraw", Withdraw(svc))
	app.Post("/accounts/:number/interest", ApplyInterest(svc))
	app.Get("/accounts/:number/balance", GetBalance(svc))
	app.Get("/accounts/:number/transactions", GetTransactions(svc))
	app.Post("/transfer", Transfer(svc))
}

// Open returns a handler that opens a new account. The branch defaults to
// the configured branch when the request omits it.
func Open(svc *accountsvc.Service, cfg *config.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[OpenAccountRequest](c)
		if input == nil {
			return err // error response already written
		}
		customerID, err := uuid.Parse(input.CustomerID)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid customer ID", err.Error())
		}
		variant, err := account.ParseVariant(input.Variant)
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid account variant", err.Error())
		}
		deposit, err := money.NewFromFloat(input.InitialDeposit, currency.DefaultCurrency)
		if err != nil {
			return common.ProblemFromError(c, "Invalid initial deposit", err)
		}
		branch := input.Branch
		if branch == "" {
			branch = cfg.Bank.DefaultBranch
		}
		opened, err := svc.OpenAccount(c.Context(), accountsvc.OpenAccountRequest{
			CustomerID:     customerID,
			Variant:        variant,
			Branch:         branch,
			AccountNumber:  input.AccountNumber,
			InitialDeposit: deposit,
			Employer:       input.Employer,
		})
		if err != nil {
			log.Errorf("Failed to open account: %v", err)
			return common.ProblemFromError(c, "Failed to open account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account opened", toAccountDTO(opened))
	}
}

// Get returns a handler that fetches a single account.
func Get(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		found, err := svc.GetAccount(c.Context(), c.Params("number"))
		if err != nil {
			return common.ProblemFromError(c, "Failed to fetch account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account fetched", toAccountDTO(found))
	}
}

// Deposit returns a handler that credits an account.
func Deposit(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[DepositRequest](c)
		if input == nil {
			return err
		}
		amount, err := money.NewFromFloat(input.Amount, currency.DefaultCurrency)
		if err != nil {
			return common.ProblemFromError(c, "Invalid amount", err)
		}
		tx, err := svc.Deposit(c.Context(), c.Params("number"), amount, input.Description)
		if err != nil {
			log.Errorf("Failed to deposit: %v", err)
			return common.ProblemFromError(c, "Failed to deposit", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Deposit successful", toTransactionDTO(tx))
	}
}

// Withdraw returns a handler that debits an account. Savings accounts
// reject withdrawals with a conflict response.
func Withdraw(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[WithdrawRequest](c)
		if input == nil {
			return err
		}
		amount, err := money.NewFromFloat(input.Amount, currency.DefaultCurrency)
		if err != nil {
			return common.ProblemFromError(c, "Invalid amount", err)
		}
		tx, err := svc.Withdraw(c.Context(), c.Params("number"), amount)
		if err != nil {
			log.Errorf("Failed to withdraw: %v", err)
			return common.ProblemFromError(c, "Failed to withdraw", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Withdrawal successful", toTransactionDTO(tx))
	}
}

// Transfer returns a handler that moves funds between two accounts. Both
// ledger entries are returned on success.
func Transfer(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TransferRequest](c)
		if input == nil {
			return err
		}
		amount, err := money.NewFromFloat(input.Amount, currency.DefaultCurrency)
		if err != nil {
			return common.ProblemFromError(c, "Invalid amount", err)
		}
		debit, credit, err := svc.Transfer(c.Context(), input.From, input.To, amount)
		if err != nil {
			log.Errorf("Failed to transfer: %v", err)
			return common.ProblemFromError(c, "Failed to transfer", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transfer successful", fiber.Map{
			"debit":  toTransactionDTO(debit),
			"credit": toTransactionDTO(credit),
		})
	}
}

// ApplyInterest returns a handler that credits one month of interest to an
// interest-bearing account.
func ApplyInterest(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tx, err := svc.ApplyMonthlyInterest(c.Context(), c.Params("number"))
		if err != nil {
			log.Errorf("Failed to apply interest: %v", err)
			return common.ProblemFromError(c, "Failed to apply interest", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Interest applied", toTransactionDTO(tx))
	}
}

// GetBalance returns a handler that reports an account balance.
func GetBalance(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		number := c.Params("number")
		balance, err := svc.GetBalance(c.Context(), number)
		if err != nil {
			return common.ProblemFromError(c, "Failed to fetch balance", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Balance fetched", BalanceDTO{
			Number:   number,
			Balance:  balance.Float64(),
			Currency: string(balance.Currency()),
		})
	}
}

// GetTransactions returns a handler that lists ledger entries for an
// account in applied order. The optional "kind" query parameter filters
// by entry kind.
func GetTransactions(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		kind := account.Kind(c.Query("kind"))
		txs, err := svc.GetTransactions(c.Context(), c.Params("number"), kind)
		if err != nil {
			return common.ProblemFromError(c, "Failed to fetch transactions", err)
		}
		dtos := make([]TransactionDTO, 0, len(txs))
		for _, tx := range txs {
			dtos = append(dtos, toTransactionDTO(tx))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions fetched", dtos)
	}
}
