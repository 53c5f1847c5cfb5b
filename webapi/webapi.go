// Package webapi provides the HTTP surface of the bank.
// It is organized into sub-packages per domain:
// - customer: customer registration and lookup endpoints
// - account: account, ledger and transfer endpoints
package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/pulabank/corebank/pkg/config"
	accountsvc "github.com/pulabank/corebank/pkg/service/account"
	customersvc "github.com/pulabank/corebank/pkg/service/customer"
	accountweb "github.com/pulabank/corebank/webapi/account"
	"github.com/pulabank/corebank/webapi/common"
	customerweb "github.com/pulabank/corebank/webapi/customer"
)

// SetupApp initializes Fiber with custom configuration and registers all
// routes.
func SetupApp(cfg *config.App, customerSvc *customersvc.Service, accountSvc *accountsvc.Service) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "pulabank",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())

	// Health check endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Pula Bank API is running! 🚀")
	})

	customerweb.Routes(app, customerSvc)
	accountweb.Routes(app, accountSvc, cfg)
	return app
}
