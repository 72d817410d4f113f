package models

// AccountStatus summarizes the professional's payment-processor sub-account
// as reported by the backend. Read-only; its zero value is the "needs setup"
// default the dashboard falls back to when the status fetch fails.
type AccountStatus struct {
	HasAccount          bool   `json:"hasAccount,omitempty"`
	IsFullyOnboarded    bool   `json:"isFullyOnboarded,omitempty"`
	AccountStatus       string `json:"accountStatus,omitempty"`
	ChargesEnabled      bool   `json:"chargesEnabled,omitempty"`
	PayoutsEnabled      bool   `json:"payoutsEnabled,omitempty"`
	OnboardingCompleted bool   `json:"onboardingCompleted,omitempty"`
	DetailsSubmitted    bool   `json:"detailsSubmitted,omitempty"`
}

// PaymentStats aggregates the professional's earnings.
type PaymentStats struct {
	TotalEarnings     float64 `json:"totalEarnings"`
	PendingEarnings   float64 `json:"pendingEarnings"`
	CompletedBookings int     `json:"completedBookings"`
	Currency          string  `json:"currency"`
}

// Transaction is one itemized earnings record.
type Transaction struct {
	ID            string  `json:"_id"`
	Date          string  `json:"date"`
	BookingNumber string  `json:"bookingNumber"`
	Status        string  `json:"status"` // e.g. "completed", "pending"
	Currency      string  `json:"currency"`
	Amount        float64 `json:"amount"`
}
