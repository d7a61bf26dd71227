package domain

// OrderDetails is the sanitized projection of a completed checkout session:
// the minimal set of fields safe to hand back to the buyer's browser.
// It exists only in HTTP responses and is never persisted.
type OrderDetails struct {
	Email    string
	Amount   int64  // minor currency units (cents)
	Currency string // lowercase ISO 4217 code as the provider reports it
	Product  string
}
