package models

// Quote response actions accepted by the backend.
const (
	QuoteActionAccept = "accept"
	QuoteActionReject = "reject"
)

// DefaultQuoteCurrency is used when a quote is submitted without one.
const DefaultQuoteCurrency = "EUR"

// QuoteInput is the request body for submitting a quote on a booking.
type QuoteInput struct {
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Description string  `json:"description"`
}

// QuoteResponseInput is the request body for accepting or rejecting a quote.
type QuoteResponseInput struct {
	Action string `json:"action"`
}

// StatusUpdateInput is the request body for a booking status transition.
type StatusUpdateInput struct {
	Status string `json:"status"`
}
