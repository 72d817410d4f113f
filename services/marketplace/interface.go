package marketplace

import (
	"context"

	"promarket/models"
)

// Session identifies the browser session on outbound backend calls. The
// backend authenticates most endpoints through its session cookie; the
// dashboard-link endpoint expects the same token as a bearer header.
// RequestID, when set, is forwarded so backend logs correlate with ours.
type Session struct {
	Token     string
	RequestID string
}

// API is the typed surface of the marketplace backend consumed by the
// gateway. The backend is the sole source of truth: every mutation here is
// fire-and-refetch, never applied locally.
type API interface {
	FetchBooking(ctx context.Context, sess Session, bookingID string) (*models.BookingDetail, error)
	SubmitQuote(ctx context.Context, sess Session, bookingID string, in models.QuoteInput) error
	RespondToQuote(ctx context.Context, sess Session, bookingID string, action string) error
	UpdateBookingStatus(ctx context.Context, sess Session, bookingID string, status string) error

	AccountStatus(ctx context.Context, sess Session) (*models.AccountStatus, error)
	PaymentStats(ctx context.Context, sess Session) (*models.PaymentStats, error)
	Transactions(ctx context.Context, sess Session, limit int) ([]models.Transaction, error)
	DashboardLink(ctx context.Context, sess Session) (string, error)
}
