package main

import (
	"fmt"

	log "github.com/charmbracelet/log"
	"github.com/fige/storefront/infra/initializer"
	"github.com/fige/storefront/pkg/app"
	"github.com/fige/storefront/pkg/config"
	"github.com/fige/storefront/webapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	app := app.New(deps, cfg)
	fiberApp := webapi.SetupApp(app)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	deps.Logger.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"base_url", cfg.Checkout.BaseURL,
	)

	return fiberApp.Listen(addr)
}
