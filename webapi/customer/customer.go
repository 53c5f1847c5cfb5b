// Package customer exposes HTTP endpoints for customer registration and lookup.
package customer

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/pulabank/corebank/pkg/domain/customer"
	customersvc "github.com/pulabank/corebank/pkg/service/customer"
	"github.com/pulabank/corebank/webapi/common"
)

// Routes registers HTTP routes for customer operations.
//
// Routes:
//   - POST /customers                : Register a new individual or company customer.
//   - GET  /customers/:id            : Retrieve a customer by ID.
//   - POST /customers/:id/employer   : Update an individual's employer.
//   - GET  /customers/:id/accounts   : List the customer's accounts, oldest first.
func Routes(app *fiber.App, svc *customersvc.Service) {
	app.Post("/customers", Register(svc))
	app.Get("/customers/:id", Get(svc))
	app.Post("/customers/:id/employer", SetEmployer(svc))
	app.Get("/customers/:id/accounts", Accounts(svc))
}

// Register returns a handler that creates a customer of the requested type.
func Register(svc *customersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RegisterRequest](c)
		if input == nil {
			return err // error response already written
		}
		var created customer.Customer
		switch input.Type {
		case "company":
			created, err = svc.RegisterCompany(c.Context(), input.Address, input.CompanyName, input.RegNumber)
		default:
			var dob time.Time
			if input.DateOfBirth != "" {
				dob, err = time.Parse(time.DateOnly, input.DateOfBirth)
				if err != nil {
					return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid date of birth", err.Error())
				}
			}
			created, err = svc.RegisterIndividual(c.Context(), input.Address, input.FirstName, input.LastName, dob)
		}
		if err != nil {
			log.Errorf("Failed to register customer: %v", err)
			return common.ProblemFromError(c, "Failed to register customer", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Customer registered", toDTO(created))
	}
}

// Get returns a handler that fetches a single customer.
func Get(svc *customersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid customer ID", err.Error())
		}
		found, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.ProblemFromError(c, "Failed to fetch customer", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Customer fetched", toDTO(found))
	}
}

// SetEmployer returns a handler that updates an individual's employer.
// Setting a non-empty employer also marks the individual as employed.
func SetEmployer(svc *customersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid customer ID", err.Error())
		}
		input, err := common.BindAndValidate[SetEmployerRequest](c)
		if input == nil {
			return err
		}
		updated, err := svc.SetEmployer(c.Context(), id, input.Employer)
		if err != nil {
			log.Errorf("Failed to update employer: %v", err)
			return common.ProblemFromError(c, "Failed to update employer", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Employer updated", toDTO(updated))
	}
}

// Accounts returns a handler that lists the customer's accounts in opening order.
func Accounts(svc *customersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid customer ID", err.Error())
		}
		accounts, err := svc.Accounts(c.Context(), id)
		if err != nil {
			return common.ProblemFromError(c, "Failed to list accounts", err)
		}
		dtos := make([]AccountSummaryDTO, 0, len(accounts))
		for _, a := range accounts {
			dtos = append(dtos, AccountSummaryDTO{
				Number:  a.Number(),
				Branch:  a.Branch(),
				Balance: a.Balance().Float64(),
				Info:    a.Info(),
			})
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts fetched", dtos)
	}
}
