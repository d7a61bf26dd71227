package app

import (
	"log/slog"

	"github.com/fige/storefront/pkg/config"
	"github.com/fige/storefront/pkg/provider/payment"
	"github.com/fige/storefront/pkg/sealbox"
	"github.com/fige/storefront/pkg/service/checkout"
)

// Deps contains the externally constructed dependencies the app is built
// from: the payment provider, the cookie sealbox, and the logger.
type Deps struct {
	PaymentProvider payment.CheckoutProvider
	Sealbox         *sealbox.Box
	Logger          *slog.Logger
}

// App wires the dependencies into the storefront's services.
type App struct {
	Deps            *Deps
	Config          *config.App
	CheckoutService *checkout.Service
}

func New(deps *Deps, cfg *config.App) *App {
	return &App{
		Deps:            deps,
		Config:          cfg,
		CheckoutService: checkout.New(deps.PaymentProvider, cfg.Checkout, deps.Logger),
	}
}
