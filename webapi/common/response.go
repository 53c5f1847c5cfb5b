// Package common holds the response envelope and request-binding
// helpers shared by the web handlers.
package common

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/pulabank/corebank/pkg/domain/account"
	domaincommon "github.com/pulabank/corebank/pkg/domain/common"
	"github.com/pulabank/corebank/pkg/domain/customer"
	"github.com/pulabank/corebank/pkg/money"
	"github.com/pulabank/corebank/pkg/repository"
)

// Response is the standard success envelope.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
	Errors   any    `json:"errors,omitempty"`
}

// SuccessResponseJSON writes the success envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{Status: status, Message: message, Data: data})
}

// ErrorResponseJSON writes an RFC 9457 problem response.
func ErrorResponseJSON(c *fiber.Ctx, status int, title string, detail any) error {
	pd := ProblemDetails{
		Type:   "about:blank",
		Title:  title,
		Status: status,
	}
	if detail != nil {
		if s, ok := detail.(string); ok {
			pd.Detail = s
		} else {
			pd.Errors = detail
		}
	}
	pd.Instance = c.OriginalURL()
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return c.Status(status).JSON(pd)
}

// ProblemFromError writes a problem response with the status implied by
// the domain error kind.
func ProblemFromError(c *fiber.Ctx, title string, err error) error {
	return ErrorResponseJSON(c, ErrorToStatusCode(err), title, err.Error())
}

// ErrorToStatusCode maps domain errors to HTTP status codes. The
// failure kind is surfaced verbatim in the problem detail.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, account.ErrAccountNotFound),
		errors.Is(err, customer.ErrCustomerNotFound),
		errors.Is(err, repository.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, account.ErrInvalidAmount),
		errors.Is(err, account.ErrSameAccount),
		errors.Is(err, customer.ErrEmptyName),
		errors.Is(err, money.ErrInvalidCurrencyCode),
		errors.Is(err, money.ErrInvalidDecimalPlaces),
		errors.Is(err, money.ErrCurrencyMismatch):
		return fiber.StatusBadRequest
	case errors.Is(err, account.ErrInsufficientFunds),
		errors.Is(err, account.ErrInsufficientOpeningBalance),
		errors.Is(err, account.ErrEmploymentRequired):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domaincommon.ErrTypeMismatch),
		errors.Is(err, repository.ErrDuplicate):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

var validate = validator.New()

// BindAndValidate parses the request body into T and validates it.
// On failure the error response is already written and nil is returned.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	if err := validate.Struct(input); err != nil {
		return nil, ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", err.Error())
	}
	return &input, nil
}
