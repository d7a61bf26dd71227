// Package pages serves the server-rendered storefront pages: the landing
// page with the pre-order grid and the post-payment confirmation page.
package pages

import (
	"embed"
	"net/http"

	"github.com/fige/storefront/pkg/config"
	"github.com/fige/storefront/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/template/html/v2"
)

//go:embed views/*.html
var viewsFS embed.FS

//go:embed static
var staticFS embed.FS

// Engine returns the Fiber views engine backed by the embedded templates.
func Engine() *html.Engine {
	return html.NewFileSystem(http.FS(viewsFS), ".html")
}

// Routes registers the page routes and the embedded static assets the
// templates reference.
func Routes(app *fiber.App, cfg *config.App) {
	app.Use("/css", filesystem.New(filesystem.Config{
		Root:       http.FS(staticFS),
		PathPrefix: "static/css",
		MaxAge:     3600,
	}))
	app.Use("/images", filesystem.New(filesystem.Config{
		Root:       http.FS(staticFS),
		PathPrefix: "static/images",
		MaxAge:     3600,
	}))
	app.Get("/", Landing(cfg))
	app.Get("/payment-success", PaymentSuccess())
}

// Landing renders the pre-order grid. A "payment-cancelled" marker in the
// query string, set by the provider's cancel redirect, shows a banner and
// never triggers verification.
func Landing(cfg *config.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render("views/index", fiber.Map{
			"Units":          domain.Units(),
			"Cancelled":      c.Query("payment-cancelled") == "true",
			"PublishableKey": cfg.Stripe.PublishableKey,
		})
	}
}

// PaymentSuccess renders the confirmation shell; the page calls the verify
// endpoint with the identifier from its URL and renders the outcome.
func PaymentSuccess() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Render("views/payment-success", fiber.Map{})
	}
}
