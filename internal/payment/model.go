package payment

// PaymentStatus is the authoritative payment state for an order,
// always fetched fresh and never cached beyond one reconciliation
// attempt.
type PaymentStatus struct {
	Status      string `json:"status"`
	IsConfirmed bool   `json:"isConfirmed"`
}

// ConfirmResult is the gateway-confirmation endpoint's verdict.
type ConfirmResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ReturnParams are the query parameters the external payment gateway
// appends when it sends the browser back. The cancel path reuses the
// same route without PaymentID and PayerID.
type ReturnParams struct {
	OrderID   string
	PaymentID string
	PayerID   string
}
