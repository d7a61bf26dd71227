// Package webapi provides the HTTP surface of the storefront. It is
// organized into sub-packages:
// - checkout: the checkout-session creation and verification endpoints
// - pages: the server-rendered landing and confirmation pages
// - common: shared response envelope and request-binding helpers
package webapi

import (
	"errors"
	"strings"

	"github.com/fige/storefront/pkg/app"
	checkoutweb "github.com/fige/storefront/webapi/checkout"
	"github.com/fige/storefront/webapi/common"
	"github.com/fige/storefront/webapi/pages"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupApp initializes Fiber with the storefront's middleware and routes.
func SetupApp(app *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		Views: pages.Engine(),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", err, status)
		},
	})

	// Configure rate limiting middleware.
	// Uses X-Forwarded-For header when behind a proxy,
	// falls back to X-Real-IP or direct IP if needed.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        app.Config.RateLimit.MaxRequests,
		Expiration: app.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Health check endpoint
	fiberApp.Get("/healthz", func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Figé storefront is running 🚀", nil)
	})

	pages.Routes(fiberApp, app.Config)
	checkoutweb.Routes(fiberApp, app.CheckoutService, app.Deps.Sealbox, app.Config)

	return fiberApp
}
