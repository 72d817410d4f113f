package bookingview

import "errors"

// Local validation failures. These are raised before any backend request is
// sent; the user re-acts, nothing is retried.
var (
	ErrInvalidQuoteAmount    = errors.New("quote amount must be a positive number")
	ErrInvalidQuoteAction    = errors.New("quote response must be accept or reject")
	ErrConfirmationRequired  = errors.New("transition requires explicit confirmation")
	ErrUnsupportedTransition = errors.New("viewer role cannot request this transition")
)
