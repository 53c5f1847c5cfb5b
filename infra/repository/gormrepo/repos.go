package gormrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pulabank/corebank/pkg/currency"
	"github.com/pulabank/corebank/pkg/domain/account"
	"github.com/pulabank/corebank/pkg/domain/customer"
	"github.com/pulabank/corebank/pkg/money"
	"github.com/pulabank/corebank/pkg/repository"
)

const (
	kindIndividual = "individual"
	kindCompany    = "company"

	kindSavings    = "savings"
	kindInvestment = "investment"
	kindCheque     = "cheque"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a customer repository over the given DB
// session.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Get(ctx context.Context, id uuid.UUID) (customer.Customer, error) {
	var m customerModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: customer %s", repository.ErrNotFound, id)
		}
		return nil, err
	}
	return mapModelToCustomer(&m), nil
}

func (r *customerRepository) Create(ctx context.Context, c customer.Customer) error {
	m := mapCustomerToModel(c)
	return mapError(r.db.WithContext(ctx).Create(&m).Error)
}

func (r *customerRepository) Update(ctx context.Context, c customer.Customer) error {
	m := mapCustomerToModel(c)
	res := r.db.WithContext(ctx).Model(&customerModel{}).Where("id = ?", m.ID).Updates(map[string]any{
		"address":         m.Address,
		"employed":        m.Employed,
		"employer":        m.Employer,
		"account_numbers": m.AccountNumbers,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: customer %s", repository.ErrNotFound, m.ID)
	}
	return nil
}

func mapCustomerToModel(c customer.Customer) customerModel {
	m := customerModel{
		ID:             c.ID(),
		Address:        c.Address(),
		AccountNumbers: strings.Join(c.AccountNumbers(), ","),
	}
	switch v := c.(type) {
	case *customer.Individual:
		m.Kind = kindIndividual
		m.FirstName = v.FirstName
		m.LastName = v.LastName
		m.DateOfBirth = v.DateOfBirth
		m.Employed = v.Employed()
		m.Employer = v.Employer()
	case *customer.Company:
		m.Kind = kindCompany
		m.CompanyName = v.Name
		m.RegistrationNumber = v.RegistrationNumber
	}
	return m
}

func mapModelToCustomer(m *customerModel) customer.Customer {
	var numbers []string
	if m.AccountNumbers != "" {
		numbers = strings.Split(m.AccountNumbers, ",")
	}
	if m.Kind == kindIndividual {
		return customer.NewIndividualFromData(
			m.ID, m.Address, m.FirstName, m.LastName,
			m.DateOfBirth, m.Employed, m.Employer, numbers)
	}
	return customer.NewCompanyFromData(m.ID, m.Address, m.CompanyName, m.RegistrationNumber, numbers)
}

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates an account repository over the given DB
// session.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Get(ctx context.Context, number string) (account.Account, error) {
	var m accountModel
	if err := r.db.WithContext(ctx).First(&m, "number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: account %s", repository.ErrNotFound, number)
		}
		return nil, err
	}
	return mapModelToAccount(&m)
}

func (r *accountRepository) Create(ctx context.Context, a account.Account) error {
	m := mapAccountToModel(a)
	return mapError(r.db.WithContext(ctx).Create(&m).Error)
}

func (r *accountRepository) Update(ctx context.Context, a account.Account) error {
	m := mapAccountToModel(a)
	res := r.db.WithContext(ctx).Model(&accountModel{}).Where("number = ?", m.Number).
		Update("balance", m.Balance)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: account %s", repository.ErrNotFound, m.Number)
	}
	return nil
}

func (r *accountRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]account.Account, error) {
	var models []accountModel
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).
		Order("created_at").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]account.Account, 0, len(models))
	for i := range models {
		a, err := mapModelToAccount(&models[i])
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func mapAccountToModel(a account.Account) accountModel {
	m := accountModel{
		Number:   a.Number(),
		OwnerID:  a.OwnerID(),
		Branch:   a.Branch(),
		Balance:  a.Balance().Amount(),
		Currency: string(a.Balance().Currency()),
	}
	switch a.(type) {
	case *account.Savings:
		m.Kind = kindSavings
	case *account.Investment:
		m.Kind = kindInvestment
	case *account.Cheque:
		m.Kind = kindCheque
	}
	return m
}

func mapModelToAccount(m *accountModel) (account.Account, error) {
	balance, err := money.NewFromMinorUnit(m.Balance, currency.Code(m.Currency))
	if err != nil {
		return nil, err
	}
	switch m.Kind {
	case kindSavings:
		return account.NewSavingsFromData(m.Number, m.OwnerID, m.Branch, balance), nil
	case kindInvestment:
		return account.NewInvestmentFromData(m.Number, m.OwnerID, m.Branch, balance), nil
	case kindCheque:
		return account.NewChequeFromData(m.Number, m.OwnerID, m.Branch, balance), nil
	default:
		return nil, fmt.Errorf("unknown account kind %q", m.Kind)
	}
}

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a transaction repository over the
// given DB session.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, tx *account.Transaction) error {
	m := transactionModel{
		ID:            tx.ID,
		AccountNumber: tx.AccountNumber,
		Kind:          string(tx.Kind),
		Amount:        tx.Amount.Amount(),
		Balance:       tx.Balance.Amount(),
		Currency:      string(tx.Amount.Currency()),
		Description:   tx.Description,
		CreatedAt:     tx.CreatedAt,
	}
	return mapError(r.db.WithContext(ctx).Create(&m).Error)
}

func (r *transactionRepository) List(ctx context.Context, accountNumber string) ([]*account.Transaction, error) {
	var models []transactionModel
	if err := r.db.WithContext(ctx).Where("account_number = ?", accountNumber).
		Order("created_at").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*account.Transaction, 0, len(models))
	for i := range models {
		m := &models[i]
		amount, err := money.NewFromMinorUnit(m.Amount, currency.Code(m.Currency))
		if err != nil {
			return nil, err
		}
		balance, err := money.NewFromMinorUnit(m.Balance, currency.Code(m.Currency))
		if err != nil {
			return nil, err
		}
		out = append(out, account.NewTransactionFromData(
			m.ID, m.AccountNumber, account.Kind(m.Kind),
			amount, balance, m.Description, m.CreatedAt))
	}
	return out, nil
}
