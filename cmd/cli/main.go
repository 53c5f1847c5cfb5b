package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/pulabank/corebank/infra/initializer"
	"github.com/pulabank/corebank/pkg/config"
	"github.com/pulabank/corebank/pkg/currency"
	"github.com/pulabank/corebank/pkg/domain/account"
	"github.com/pulabank/corebank/pkg/money"
	accountsvc "github.com/pulabank/corebank/pkg/service/account"
	customersvc "github.com/pulabank/corebank/pkg/service/customer"
)

func usage() {
	fmt.Println("Usage: cli <command> [arguments]")
	fmt.Println("Commands:")
	fmt.Println("  register <first> <last> <address>")
	fmt.Println("  register-company <name> <reg_number> <address>")
	fmt.Println("  open <customer_id> <savings|investment|cheque> <number> <amount> [employer]")
	fmt.Println("  deposit <number> <amount>")
	fmt.Println("  withdraw <number> <amount>")
	fmt.Println("  transfer <from> <to> <amount>")
	fmt.Println("  interest <number>")
	fmt.Println("  balance <number>")
	fmt.Println("  statement <number>")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load configuration:", err)
		os.Exit(1)
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		fmt.Println("Failed to initialize:", err)
		os.Exit(1)
	}

	ctx := context.Background()
	customers := customersvc.New(deps.UoW, deps.Logger)
	accounts := accountsvc.New(deps.UoW, deps.Logger)

	if err := dispatch(ctx, cfg, customers, accounts); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

func dispatch(ctx context.Context, cfg *config.App, customers *customersvc.Service, accounts *accountsvc.Service) error {
	cmd := os.Args[1]

	// every command after this point needs at least one argument
	minArgs := map[string]int{
		"register": 5, "register-company": 5, "open": 6, "deposit": 4, "withdraw": 4,
		"transfer": 5, "interest": 3, "balance": 3, "statement": 3,
	}
	if want, ok := minArgs[cmd]; ok && len(os.Args) < want {
		usage()
		return fmt.Errorf("%s: missing arguments", cmd)
	}

	switch cmd {
	case "register":
		c, err := customers.RegisterIndividual(ctx, os.Args[4], os.Args[2], os.Args[3], time.Time{})
		if err != nil {
			return err
		}
		fmt.Printf("Customer registered: %s (%s)\n", c.ID(), c.Info())
		return nil
	case "register-company":
		c, err := customers.RegisterCompany(ctx, os.Args[4], os.Args[2], os.Args[3])
		if err != nil {
			return err
		}
		fmt.Printf("Customer registered: %s (%s)\n", c.ID(), c.Info())
		return nil
	case "open":
		customerID, err := uuid.Parse(os.Args[2])
		if err != nil {
			return err
		}
		variant, err := account.ParseVariant(os.Args[3])
		if err != nil {
			return err
		}
		amount, err := parseAmount(os.Args[5])
		if err != nil {
			return err
		}
		employer := ""
		if len(os.Args) > 6 {
			employer = os.Args[6]
		}
		a, err := accounts.OpenAccount(ctx, accountsvc.OpenAccountRequest{
			CustomerID:     customerID,
			Variant:        variant,
			Branch:         cfg.Bank.DefaultBranch,
			AccountNumber:  os.Args[4],
			InitialDeposit: amount,
			Employer:       employer,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Account opened: %s\n", a.Info())
		return nil
	case "deposit":
		amount, err := parseAmount(os.Args[3])
		if err != nil {
			return err
		}
		tx, err := accounts.Deposit(ctx, os.Args[2], amount, "")
		if err != nil {
			return err
		}
		fmt.Printf("Deposited %s, balance %s\n", tx.Amount, tx.Balance)
		return nil
	case "withdraw":
		amount, err := parseAmount(os.Args[3])
		if err != nil {
			return err
		}
		tx, err := accounts.Withdraw(ctx, os.Args[2], amount)
		if err != nil {
			return err
		}
		fmt.Printf("Withdrew %s, balance %s\n", tx.Amount.Negate(), tx.Balance)
		return nil
	case "transfer":
		amount, err := parseAmount(os.Args[4])
		if err != nil {
			return err
		}
		debit, credit, err := accounts.Transfer(ctx, os.Args[2], os.Args[3], amount)
		if err != nil {
			return err
		}
		fmt.Printf("Transferred %s: %s now %s, %s now %s\n",
			credit.Amount, debit.AccountNumber, debit.Balance, credit.AccountNumber, credit.Balance)
		return nil
	case "interest":
		tx, err := accounts.ApplyMonthlyInterest(ctx, os.Args[2])
		if err != nil {
			return err
		}
		fmt.Printf("Interest %s credited, balance %s\n", tx.Amount, tx.Balance)
		return nil
	case "balance":
		balance, err := accounts.GetBalance(ctx, os.Args[2])
		if err != nil {
			return err
		}
		fmt.Printf("Balance: %s\n", balance)
		return nil
	case "statement":
		txs, err := accounts.GetTransactions(ctx, os.Args[2], "")
		if err != nil {
			return err
		}
		for _, tx := range txs {
			fmt.Printf("%s  %-10s  %12s  %12s  %s\n",
				tx.CreatedAt.Format("2006-01-02 15:04"), tx.Kind, tx.Amount, tx.Balance, tx.Description)
		}
		return nil
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func parseAmount(s string) (money.Money, error) {
	if _, err := strconv.ParseFloat(s, 64); err != nil {
		return money.Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return money.New(s, currency.DefaultCurrency)
}
