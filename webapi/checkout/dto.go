package checkout

// CreateSessionRequest is the body of POST /api/checkout_sessions.
type CreateSessionRequest struct {
	UnitID string `json:"unitId" validate:"required"`
}

// CreateSessionResponse carries the opaque provider session handle back to
// the browser for the hosted-checkout redirect.
type CreateSessionResponse struct {
	SessionID string `json:"sessionId"`
}

// CreateSessionError is the error shape of POST /api/checkout_sessions.
type CreateSessionError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// OrderDTO is the sanitized order projection returned after verification.
type OrderDTO struct {
	Email   string `json:"email"`
	Amount  int64  `json:"amount"`
	Product string `json:"product"`
}

// VerifyResponse is the body of GET /api/checkout_sessions/verify, for both
// outcomes.
type VerifyResponse struct {
	Success bool      `json:"success"`
	Order   *OrderDTO `json:"order,omitempty"`
	Message string    `json:"message,omitempty"`
}
