package payment

import (
	"context"
)

// CheckoutProvider is the payment-provider surface the checkout services
// depend on. Implementations own all provider SDK types; nothing
// provider-specific crosses this boundary.
type CheckoutProvider interface {
	// CreateSession creates a hosted checkout session and returns its
	// opaque handle and redirect URL.
	CreateSession(
		ctx context.Context,
		params *CreateSessionParams,
	) (*Session, error)

	// RetrieveSession fetches a session by its handle, with line items and
	// customer details resolved. Returns ErrSessionNotFound when the
	// provider does not recognize the handle.
	RetrieveSession(
		ctx context.Context,
		sessionID string,
	) (*Session, error)

	// FindSessionByReference scans up to limit recent sessions for one whose
	// client reference matches ref. Returns ErrSessionNotFound when no
	// session matches.
	FindSessionByReference(
		ctx context.Context,
		ref string,
		limit int64,
	) (*Session, error)
}
