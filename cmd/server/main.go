package main

import (
	"fmt"

	log "github.com/charmbracelet/log"

	"github.com/pulabank/corebank/infra/initializer"
	"github.com/pulabank/corebank/pkg/config"
	accountsvc "github.com/pulabank/corebank/pkg/service/account"
	customersvc "github.com/pulabank/corebank/pkg/service/customer"
	"github.com/pulabank/corebank/webapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	customerSvc := customersvc.New(deps.UoW, deps.Logger)
	accountSvc := accountsvc.New(deps.UoW, deps.Logger)

	app := webapi.SetupApp(cfg, customerSvc, accountSvc)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	deps.Logger.Info("starting server",
		"env", cfg.Env,
		"address", addr,
	)
	return app.Listen(addr)
}
