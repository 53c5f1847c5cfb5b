// Package customer provides the registration and customer-maintenance
// operations exposed to the presentation layer.
package customer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pulabank/corebank/pkg/domain/account"
	"github.com/pulabank/corebank/pkg/domain/common"
	"github.com/pulabank/corebank/pkg/domain/customer"
	"github.com/pulabank/corebank/pkg/registry"
	"github.com/pulabank/corebank/pkg/repository"
)

// Service implements customer registration and maintenance.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a customer Service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{uow: uow, logger: logger}
}

// RegisterIndividual registers a natural-person customer.
func (s *Service) RegisterIndividual(ctx context.Context, address, firstName, lastName string, dob time.Time) (*customer.Individual, error) {
	c, err := customer.NewIndividual(address, firstName, lastName, dob)
	if err != nil {
		return nil, err
	}
	if err := s.uow.CustomerRepository().Create(ctx, c); err != nil {
		s.logger.Error("failed to register individual", "error", err)
		return nil, err
	}
	s.logger.Info("registered individual customer", "customer_id", c.ID(), "name", c.FullName())
	return c, nil
}

// RegisterCompany registers a corporate customer.
func (s *Service) RegisterCompany(ctx context.Context, address, name, registrationNumber string) (*customer.Company, error) {
	c, err := customer.NewCompany(address, name, registrationNumber)
	if err != nil {
		return nil, err
	}
	if err := s.uow.CustomerRepository().Create(ctx, c); err != nil {
		s.logger.Error("failed to register company", "error", err)
		return nil, err
	}
	s.logger.Info("registered company customer", "customer_id", c.ID(), "name", c.Name)
	return c, nil
}

// SetEmployer updates an individual's employer; a non-empty employer
// marks the individual employed. Targeting a company customer fails
// with a type mismatch.
func (s *Service) SetEmployer(ctx context.Context, customerID uuid.UUID, employer string) (*customer.Individual, error) {
	repo := s.uow.CustomerRepository()
	c, err := repo.Get(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, err
	}
	ind, ok := c.(*customer.Individual)
	if !ok {
		return nil, common.ErrTypeMismatch
	}
	ind.SetEmployer(employer)
	if err := repo.Update(ctx, ind); err != nil {
		return nil, err
	}
	s.logger.Info("updated employer", "customer_id", customerID, "employed", ind.Employed())
	return ind, nil
}

// Get resolves a customer by identifier.
func (s *Service) Get(ctx context.Context, customerID uuid.UUID) (customer.Customer, error) {
	c, err := s.uow.CustomerRepository().Get(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, err
	}
	return c, nil
}

// Accounts returns the customer's accounts in opening order.
func (s *Service) Accounts(ctx context.Context, customerID uuid.UUID) ([]account.Account, error) {
	c, err := s.Get(ctx, customerID)
	if err != nil {
		return nil, err
	}
	reg := registry.New(s.uow.CustomerRepository(), s.uow.AccountRepository())
	return reg.AccountsOf(ctx, c)
}
