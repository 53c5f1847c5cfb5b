package customer

import (
	"time"

	"github.com/pulabank/corebank/pkg/domain/customer"
)

// RegisterRequest registers a new customer of either variant.
// Individual fields are required for type "individual", company fields
// for type "company".
type RegisterRequest struct {
	Type        string `json:"type" validate:"required,oneof=individual company"`
	Address     string `json:"address" validate:"required"`
	FirstName   string `json:"first_name" validate:"required_if=Type individual"`
	LastName    string `json:"last_name" validate:"required_if=Type individual"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	CompanyName string `json:"company_name" validate:"required_if=Type company"`
	RegNumber   string `json:"registration_number" validate:"required_if=Type company"`
}

// AccountSummaryDTO is the compact account view returned when listing a
// customer's accounts.
type AccountSummaryDTO struct {
	Number  string  `json:"number"`
	Branch  string  `json:"branch"`
	Balance float64 `json:"balance"`
	Info    string  `json:"info"`
}

// SetEmployerRequest updates an individual's employer.
type SetEmployerRequest struct {
	Employer string `json:"employer"`
}

// CustomerDTO is the API representation of a customer.
type CustomerDTO struct {
	ID             string   `json:"id"`
	Type           string   `json:"type"`
	Address        string   `json:"address"`
	Info           string   `json:"info"`
	AccountNumbers []string `json:"account_numbers"`

	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Employed    *bool  `json:"employed,omitempty"`
	Employer    string `json:"employer,omitempty"`

	CompanyName string `json:"company_name,omitempty"`
	RegNumber   string `json:"registration_number,omitempty"`
}

func toDTO(c customer.Customer) CustomerDTO {
	dto := CustomerDTO{
		ID:             c.ID().String(),
		Address:        c.Address(),
		Info:           c.Info(),
		AccountNumbers: c.AccountNumbers(),
	}
	switch v := c.(type) {
	case *customer.Individual:
		dto.Type = "individual"
		dto.FirstName = v.FirstName
		dto.LastName = v.LastName
		if !v.DateOfBirth.IsZero() {
			dto.DateOfBirth = v.DateOfBirth.Format(time.DateOnly)
		}
		employed := v.Employed()
		dto.Employed = &employed
		dto.Employer = v.Employer()
	case *customer.Company:
		dto.Type = "company"
		dto.CompanyName = v.Name
		dto.RegNumber = v.RegistrationNumber
	}
	return dto
}
