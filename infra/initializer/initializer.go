// Package initializer builds the application dependency graph: logger,
// payment provider, and the cookie sealbox, each constructed once at
// process start.
package initializer

import (
	"fmt"

	"github.com/fige/storefront/infra/provider/stripecheckout"
	"github.com/fige/storefront/pkg/app"
	"github.com/fige/storefront/pkg/config"
	"github.com/fige/storefront/pkg/sealbox"
)

// InitializeDependencies initializes all the application dependencies.
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	deps := &app.Deps{}
	logger := setupLogger(cfg.Log)
	deps.Logger = logger

	deps.PaymentProvider = stripecheckout.New(cfg.Stripe, logger)

	key, err := cfg.Checkout.Key()
	if err != nil {
		return nil, fmt.Errorf("failed to read cookie encryption key: %w", err)
	}
	if key == nil {
		// Cookies sealed with an ephemeral key become unreadable after a
		// restart; verification then falls back to the URL identifier.
		logger.Warn("No cookie encryption key configured, using an ephemeral key")
		deps.Sealbox, err = sealbox.NewRandom()
	} else {
		deps.Sealbox, err = sealbox.New(key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cookie sealbox: %w", err)
	}

	return deps, nil
}
