// Package customer models account holders. A customer is either an
// Individual or a Company; the two variants form a closed union so that
// variant-specific rules (savings rates, cheque eligibility) can be
// switched over exhaustively.
package customer

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrCustomerNotFound is returned when a customer cannot be resolved.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrEmptyName is returned when a registration is missing a required name.
	ErrEmptyName = errors.New("name cannot be empty")
)

// Customer is the closed set of account-holder variants. Only Individual
// and Company implement it; the unexported marker keeps the set closed.
type Customer interface {
	ID() uuid.UUID
	Address() string
	SetAddress(string)

	// AccountNumbers returns the customer's owned account numbers in
	// account-opening order.
	AccountNumbers() []string

	// AddAccount records ownership of an account number. Adding a number
	// already present is a no-op, preserving opening order.
	AddAccount(number string)

	// Info returns a one-line display summary for the presentation layer.
	Info() string

	isCustomer()
}

// base carries the attributes shared by both variants. Ownership is
// one-directional: the customer holds account numbers only, and an
// account's owner is resolved through the registry.
type base struct {
	id       uuid.UUID
	address  string
	accounts []string
}

func (b *base) ID() uuid.UUID       { return b.id }
func (b *base) Address() string     { return b.address }
func (b *base) SetAddress(a string) { b.address = a }

func (b *base) AccountNumbers() []string {
	return slices.Clone(b.accounts)
}

func (b *base) AddAccount(number string) {
	if slices.Contains(b.accounts, number) {
		return
	}
	b.accounts = append(b.accounts, number)
}

// Individual is a natural-person customer.
type Individual struct {
	base
	FirstName   string
	LastName    string
	DateOfBirth time.Time
	employed    bool
	employer    string
}

// NewIndividual registers an individual customer. New individuals start
// unemployed with no employer on record.
func NewIndividual(address, firstName, lastName string, dob time.Time) (*Individual, error) {
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return nil, ErrEmptyName
	}
	return &Individual{
		base:        base{id: uuid.New(), address: address},
		FirstName:   firstName,
		LastName:    lastName,
		DateOfBirth: dob,
	}, nil
}

// NewIndividualFromData hydrates an Individual from stored data,
// bypassing registration checks. For repository use only.
func NewIndividualFromData(
	id uuid.UUID,
	address, firstName, lastName string,
	dob time.Time,
	employed bool,
	employer string,
	accounts []string,
) *Individual {
	return &Individual{
		base:        base{id: id, address: address, accounts: slices.Clone(accounts)},
		FirstName:   firstName,
		LastName:    lastName,
		DateOfBirth: dob,
		employed:    employed,
		employer:    employer,
	}
}

// Employed reports whether the individual is currently employed.
func (c *Individual) Employed() bool { return c.employed }

// Employer returns the name of the individual's employer, if any.
func (c *Individual) Employer() string { return c.employer }

// SetEmployer updates the employer and derives the employed flag: a
// non-empty employer marks the individual employed. Clearing the
// employer does NOT clear the flag; this mirrors long-standing upstream
// behavior that callers may depend on.
func (c *Individual) SetEmployer(employer string) {
	c.employer = employer
	if strings.TrimSpace(employer) != "" {
		c.employed = true
	}
}

// FullName returns the individual's display name.
func (c *Individual) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Info returns a one-line display summary.
func (c *Individual) Info() string {
	employment := "No"
	if c.employed {
		employment = "Yes at " + c.employer
	}
	return fmt.Sprintf("Individual Customer: %s, Address: %s, Employed: %s",
		c.FullName(), c.address, employment)
}

func (c *Individual) isCustomer() {}

// Company is a corporate customer.
type Company struct {
	base
	Name               string
	RegistrationNumber string
}

// NewCompany registers a company customer.
func NewCompany(address, name, registrationNumber string) (*Company, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	return &Company{
		base:               base{id: uuid.New(), address: address},
		Name:               name,
		RegistrationNumber: registrationNumber,
	}, nil
}

// NewCompanyFromData hydrates a Company from stored data. For repository
// use only.
func NewCompanyFromData(id uuid.UUID, address, name, registrationNumber string, accounts []string) *Company {
	return &Company{
		base:               base{id: id, address: address, accounts: slices.Clone(accounts)},
		Name:               name,
		RegistrationNumber: registrationNumber,
	}
}

// Info returns a one-line display summary.
func (c *Company) Info() string {
	return fmt.Sprintf("Company Customer: %s, Reg No: %s, Address: %s",
		c.Name, c.RegistrationNumber, c.address)
}

func (c *Company) isCustomer() {}
