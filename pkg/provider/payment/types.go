package payment

import "errors"

// ErrSessionNotFound is returned when the provider has no session for the
// given handle or reference.
var ErrSessionNotFound = errors.New("payment: session not found")

// CreateSessionParams holds the parameters for CreateSession. Amounts are in
// minor currency units.
type CreateSessionParams struct {
	UnitAmount         int64
	Currency           string
	Quantity           int64
	ProductName        string
	ProductDescription string
	SuccessURL         string
	CancelURL          string
	// ClientReference is a locally generated identifier attached to the
	// session for later reverse lookup.
	ClientReference string
	Metadata        map[string]string
}

// Session is the provider-agnostic view of a checkout session.
type Session struct {
	ID              string
	URL             string
	ClientReference string
	CustomerEmail   string
	AmountTotal     int64
	Currency        string
	ProductName     string
}
