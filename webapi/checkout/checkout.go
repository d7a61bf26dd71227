package checkout

import (
	"errors"
	"time"

	"github.com/fige/storefront/pkg/config"
	"github.com/fige/storefront/pkg/domain"
	"github.com/fige/storefront/pkg/sealbox"
	checkoutsvc "github.com/fige/storefront/pkg/service/checkout"
	"github.com/fige/storefront/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// CookieName is the cookie holding the encrypted checkout session handle.
const CookieName = "stripe_session"

const supportMessage = "There was a problem verifying your payment. " +
	"Please contact support if the charge appears on your statement."

// Routes registers HTTP routes for checkout-related operations.
func Routes(
	app *fiber.App,
	checkoutSvc *checkoutsvc.Service,
	box *sealbox.Box,
	cfg *config.App,
) {
	app.Post("/api/checkout_sessions", CreateCheckoutSession(checkoutSvc, box, cfg))
	app.Get("/api/checkout_sessions/verify", VerifyCheckoutSession(checkoutSvc, box, cfg))
}

// CreateCheckoutSession returns a Fiber handler that creates a checkout
// session for the requested unit.
// @Summary Create a checkout session
// @Description Creates a hosted checkout session for a pre-order unit and returns its id.
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body CreateSessionRequest true "Unit to pre-order"
// @Success 200 {object} CreateSessionResponse "Session created"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 500 {object} CreateSessionError "Provider failure"
// @Router /api/checkout_sessions [post]
func CreateCheckoutSession(
	checkoutSvc *checkoutsvc.Service,
	box *sealbox.Box,
	cfg *config.App,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req, err := common.BindAndValidate[CreateSessionRequest](c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid request body", err, fiber.StatusBadRequest)
		}

		created, err := checkoutSvc.Create(c.Context(), req.UnitID)
		if err != nil {
			if common.ErrorToStatusCode(err) == fiber.StatusBadRequest {
				return common.ProblemDetailsJSON(c, "Invalid unit", err)
			}
			log.Errorf("Failed to create checkout session: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(CreateSessionError{
				Error:   "Failed to create checkout session",
				Details: "Please try again later.",
			})
		}

		// Best effort: a cookie-write failure must not fail the checkout.
		if sealed, err := box.Seal(created.ID); err != nil {
			log.Warnf("Failed to seal session cookie: %v", err)
		} else {
			c.Cookie(sessionCookie(cfg, sealed, int(cfg.Checkout.CookieMaxAge.Seconds())))
		}

		return c.JSON(CreateSessionResponse{SessionID: created.ID})
	}
}

// VerifyCheckoutSession returns a Fiber handler that resolves a returned
// identifier to a completed session and renders sanitized order data.
// @Summary Verify a checkout session
// @Description Resolves a session id, client reference, or session cookie to sanitized order details.
// @Tags checkout
// @Produce json
// @Param session_id query string false "Checkout session handle"
// @Param ref query string false "Client reference string"
// @Success 200 {object} VerifyResponse "Order verified"
// @Failure 400 {object} VerifyResponse "Missing identifier"
// @Failure 404 {object} VerifyResponse "Session not found"
// @Failure 500 {object} VerifyResponse "Provider failure"
// @Router /api/checkout_sessions/verify [get]
func VerifyCheckoutSession(
	checkoutSvc *checkoutsvc.Service,
	box *sealbox.Box,
	cfg *config.App,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lookup := checkoutsvc.Lookup{
			SessionID: c.Query("session_id"),
			Ref:       c.Query("ref"),
		}

		// Last resort: recover the handle from the encrypted cookie. A
		// cookie that fails to open is treated as absent.
		if lookup.SessionID == "" && lookup.Ref == "" {
			if sealed := c.Cookies(CookieName); sealed != "" {
				id, err := box.Open(sealed)
				if err != nil {
					log.Warnf("Failed to open session cookie: %v", err)
				} else {
					lookup.SessionID = id
				}
			}
		}
		if lookup.SessionID == "" && lookup.Ref == "" {
			return c.Status(fiber.StatusBadRequest).JSON(VerifyResponse{
				Success: false,
				Message: "Missing session ID.",
			})
		}

		order, err := checkoutSvc.Verify(c.Context(), lookup)
		if err != nil {
			log.Errorf("Checkout session verification failed: %v", err)
			status := fiber.StatusInternalServerError
			if errors.Is(err, domain.ErrSessionNotFound) {
				status = fiber.StatusNotFound
			}
			return c.Status(status).JSON(VerifyResponse{
				Success: false,
				Message: supportMessage,
			})
		}

		// The handle has served its purpose; drop the cookie.
		c.Cookie(sessionCookie(cfg, "", -1))

		return c.JSON(VerifyResponse{
			Success: true,
			Order: &OrderDTO{
				Email:   order.Email,
				Amount:  order.Amount,
				Product: order.Product,
			},
		})
	}
}

func sessionCookie(cfg *config.App, value string, maxAge int) *fiber.Cookie {
	cookie := &fiber.Cookie{
		Name:     CookieName,
		Value:    value,
		MaxAge:   maxAge,
		HTTPOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	}
	if maxAge < 0 {
		cookie.Expires = time.Unix(0, 0)
	}
	return cookie
}
