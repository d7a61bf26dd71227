// Package checkout implements the two core storefront operations: creating a
// hosted checkout session for a pre-order unit, and verifying a completed
// session into sanitized order details.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fige/storefront/pkg/config"
	"github.com/fige/storefront/pkg/domain"
	"github.com/fige/storefront/pkg/provider/payment"
	"github.com/google/uuid"
)

const (
	// UnitPriceCents is the fixed pre-order price: $500.00.
	UnitPriceCents = 50000
	// Currency is the only supported currency.
	Currency = "usd"

	productDescription = "Limited run, numbered unit. Carbon-fiber PLA, brass bearings, brass inlay."
	fallbackProduct    = "Figé Spinner"

	// referenceScanLimit bounds the recent-session scan used for reverse
	// lookup by client reference.
	referenceScanLimit = 100
)

// CreatedSession is returned by Create: the opaque provider handle plus the
// redirect URL and the reference generated for reverse lookup.
type CreatedSession struct {
	ID              string
	URL             string
	ClientReference string
}

// Lookup identifies the session to verify. Exactly one resolution strategy
// is applied per call, in strict precedence: SessionID, then Ref. The two
// are never combined; a failed resolution fails the call.
type Lookup struct {
	SessionID string
	Ref       string
}

// Service provides checkout session creation and verification on top of a
// configuration-injected payment provider.
type Service struct {
	provider payment.CheckoutProvider
	cfg      *config.Checkout
	logger   *slog.Logger
}

// New creates a checkout service.
func New(provider payment.CheckoutProvider, cfg *config.Checkout, logger *slog.Logger) *Service {
	return &Service{
		provider: provider,
		cfg:      cfg,
		logger:   logger,
	}
}

// Create builds a single-line-item checkout session for the given unit and
// returns the provider's session handle verbatim.
func (s *Service) Create(ctx context.Context, unitID string) (*CreatedSession, error) {
	log := s.logger.With("handler", "checkout.Create", "unit_id", unitID)

	unit, ok := domain.UnitByID(unitID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownUnit, unitID)
	}
	if unit.Sold() {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnitSold, unitID)
	}

	ref := newClientReference()
	session, err := s.provider.CreateSession(ctx, &payment.CreateSessionParams{
		UnitAmount:         UnitPriceCents,
		Currency:           Currency,
		Quantity:           1,
		ProductName:        fmt.Sprintf("Figé Luxury Fidget Spinner %s (Pre-Order)", unitID),
		ProductDescription: productDescription,
		SuccessURL:         s.cfg.BaseURL + "/payment-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:          s.cfg.BaseURL + "/?payment-cancelled=true",
		ClientReference:    ref,
		Metadata:           map[string]string{"unitId": unitID},
	})
	if err != nil {
		log.Error("failed to create checkout session", "error", err)
		return nil, fmt.Errorf("%w: creating session", domain.ErrPaymentProvider)
	}

	log.Info("🛒 Checkout session created", "session_id", session.ID, "ref", ref)
	return &CreatedSession{
		ID:              session.ID,
		URL:             session.URL,
		ClientReference: ref,
	}, nil
}

// Verify resolves the lookup to a provider session and projects it onto the
// sanitized order details. It fails closed: any resolution failure yields an
// error, never fabricated order data.
func (s *Service) Verify(ctx context.Context, lookup Lookup) (*domain.OrderDetails, error) {
	log := s.logger.With("handler", "checkout.Verify")

	var (
		session *payment.Session
		err     error
	)
	switch {
	case lookup.SessionID != "":
		session, err = s.provider.RetrieveSession(ctx, lookup.SessionID)
	case lookup.Ref != "":
		session, err = s.provider.FindSessionByReference(ctx, lookup.Ref, referenceScanLimit)
	default:
		return nil, domain.ErrMissingSessionID
	}
	if err != nil {
		if errors.Is(err, payment.ErrSessionNotFound) {
			return nil, domain.ErrSessionNotFound
		}
		log.Error("failed to resolve checkout session", "error", err)
		return nil, fmt.Errorf("%w: resolving session", domain.ErrPaymentProvider)
	}

	return &domain.OrderDetails{
		Email:    session.CustomerEmail,
		Amount:   session.AmountTotal,
		Currency: session.Currency,
		Product:  formatProductName(session.ProductName),
	}, nil
}

// formatProductName collapses the first doubled hash left behind by naming
// the product with a "#NN" unit id, and substitutes a fallback display name
// when the stored name is absent.
func formatProductName(name string) string {
	if name == "" {
		return fallbackProduct
	}
	return strings.Replace(name, "##", "#", 1)
}

// newClientReference generates a timestamp-plus-random-suffix reference
// attached to the session for later reverse lookup.
func newClientReference() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
