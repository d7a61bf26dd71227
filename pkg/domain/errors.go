package domain

import "errors"

// ErrMissingSessionID is returned when a verification request carries no
// usable identifier at all.
var ErrMissingSessionID = errors.New("missing session identifier")

// ErrUnknownUnit is returned when a checkout is requested for a unit id
// outside the limited run.
var ErrUnknownUnit = errors.New("unknown unit")

// ErrUnitSold is returned when a checkout is requested for a unit that has
// already sold.
var ErrUnitSold = errors.New("unit already sold")

// ErrSessionNotFound is returned when no provider session matches the given
// handle or reference.
var ErrSessionNotFound = errors.New("checkout session not found")

// ErrPaymentProvider wraps upstream payment-provider failures. The wrapped
// detail is for logs only and must never reach a client response.
var ErrPaymentProvider = errors.New("payment provider error")
