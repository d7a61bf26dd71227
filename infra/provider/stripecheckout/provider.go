// Package stripecheckout implements the payment.CheckoutProvider interface
// on top of Stripe Checkout. All Stripe SDK types stay inside this package.
package stripecheckout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fige/storefront/pkg/config"
	"github.com/fige/storefront/pkg/provider/payment"
	"github.com/stripe/stripe-go/v82"
)

// Provider wraps a Stripe client constructed once at process start and
// shared by reference. It holds no other state.
type Provider struct {
	client *stripe.Client
	logger *slog.Logger
}

// New creates a Provider from the configured API key.
func New(cfg *config.Stripe, logger *slog.Logger) *Provider {
	return &Provider{
		client: stripe.NewClient(cfg.ApiKey),
		logger: logger,
	}
}

// CreateSession creates a Stripe Checkout Session in payment mode with a
// single card line item.
func (p *Provider) CreateSession(
	ctx context.Context,
	params *payment.CreateSessionParams,
) (*payment.Session, error) {
	log := p.logger.With("handler", "stripe.CreateSession")

	createParams := &stripe.CheckoutSessionCreateParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(params.SuccessURL),
		CancelURL:          stripe.String(params.CancelURL),
		ClientReferenceID:  stripe.String(params.ClientReference),
		Metadata:           params.Metadata,
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{{
			PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
				Currency: stripe.String(params.Currency),
				ProductData: &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
					Name:        stripe.String(params.ProductName),
					Description: stripe.String(params.ProductDescription),
				},
				UnitAmount: stripe.Int64(params.UnitAmount),
			},
			Quantity: stripe.Int64(params.Quantity),
		}},
	}

	session, err := p.client.V1CheckoutSessions.Create(ctx, createParams)
	if err != nil {
		log.Error("failed to create checkout session", "error", err)
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	log.Info(
		"✅ Created checkout session",
		"session_id", session.ID,
		"client_reference", params.ClientReference,
	)

	return toSession(session), nil
}

// RetrieveSession fetches a session by handle with line items and customer
// details expanded.
func (p *Provider) RetrieveSession(
	ctx context.Context,
	sessionID string,
) (*payment.Session, error) {
	log := p.logger.With("handler", "stripe.RetrieveSession")

	session, err := p.client.V1CheckoutSessions.Retrieve(
		ctx,
		sessionID,
		&stripe.CheckoutSessionRetrieveParams{
			Params: stripe.Params{
				Expand: stripe.StringSlice([]string{
					"line_items.data.price.product",
					"customer_details",
				}),
			},
		},
	)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Code == stripe.ErrorCodeResourceMissing {
			log.Warn("checkout session not found", "session_id", sessionID)
			return nil, payment.ErrSessionNotFound
		}
		log.Error("failed to retrieve checkout session", "error", err)
		return nil, fmt.Errorf("failed to retrieve checkout session: %w", err)
	}

	return toSession(session), nil
}

// FindSessionByReference scans up to limit recent sessions for a matching
// client reference, then retrieves the match in full. The scan is not
// provider-indexed; Checkout Sessions cannot be listed by reference.
func (p *Provider) FindSessionByReference(
	ctx context.Context,
	ref string,
	limit int64,
) (*payment.Session, error) {
	log := p.logger.With("handler", "stripe.FindSessionByReference")

	listParams := &stripe.CheckoutSessionListParams{}
	listParams.Limit = stripe.Int64(limit)

	sessionID, err := scanForReference(p.client.V1CheckoutSessions.List(ctx, listParams), ref, limit)
	if err != nil {
		if errors.Is(err, payment.ErrSessionNotFound) {
			log.Warn("no checkout session matches reference", "ref", ref)
			return nil, err
		}
		log.Error("failed to list checkout sessions", "error", err)
		return nil, err
	}

	return p.RetrieveSession(ctx, sessionID)
}

// scanForReference walks the session stream until a client reference
// matches, examining at most limit sessions. The stream paginates on its
// own and Limit on the list params only sizes each page, so the cap must be
// enforced here or a miss would walk the account's entire session history.
func scanForReference(
	sessions stripe.Seq2[*stripe.CheckoutSession, error],
	ref string,
	limit int64,
) (string, error) {
	var scanned int64
	for session, err := range sessions {
		if err != nil {
			return "", fmt.Errorf("failed to list checkout sessions: %w", err)
		}
		if session.ClientReferenceID == ref {
			return session.ID, nil
		}
		if scanned++; scanned >= limit {
			break
		}
	}
	return "", payment.ErrSessionNotFound
}

// toSession projects the Stripe session onto the provider-agnostic view.
func toSession(s *stripe.CheckoutSession) *payment.Session {
	out := &payment.Session{
		ID:              s.ID,
		URL:             s.URL,
		ClientReference: s.ClientReferenceID,
		AmountTotal:     s.AmountTotal,
		Currency:        string(s.Currency),
	}
	if s.CustomerDetails != nil {
		out.CustomerEmail = s.CustomerDetails.Email
	}
	if s.LineItems != nil && len(s.LineItems.Data) > 0 {
		item := s.LineItems.Data[0]
		if item.Price != nil && item.Price.Product != nil {
			out.ProductName = item.Price.Product.Name
		}
	}
	return out
}
