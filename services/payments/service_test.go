package payments

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"promarket/models"
	"promarket/services/marketplace"
)

type fakeAPI struct {
	account    *models.AccountStatus
	accountErr error

	stats    *models.PaymentStats
	statsErr error

	txns    []models.Transaction
	txnsErr error

	link    string
	linkErr error

	txnLimit int
}

func (f *fakeAPI) FetchBooking(ctx context.Context, sess marketplace.Session, bookingID string) (*models.BookingDetail, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeAPI) SubmitQuote(ctx context.Context, sess marketplace.Session, bookingID string, in models.QuoteInput) error {
	return errors.New("not implemented")
}

func (f *fakeAPI) RespondToQuote(ctx context.Context, sess marketplace.Session, bookingID, action string) error {
	return errors.New("not implemented")
}

func (f *fakeAPI) UpdateBookingStatus(ctx context.Context, sess marketplace.Session, bookingID, status string) error {
	return errors.New("not implemented")
}

func (f *fakeAPI) AccountStatus(ctx context.Context, sess marketplace.Session) (*models.AccountStatus, error) {
	return f.account, f.accountErr
}

func (f *fakeAPI) PaymentStats(ctx context.Context, sess marketplace.Session) (*models.PaymentStats, error) {
	return f.stats, f.statsErr
}

func (f *fakeAPI) Transactions(ctx context.Context, sess marketplace.Session, limit int) ([]models.Transaction, error) {
	f.txnLimit = limit
	return f.txns, f.txnsErr
}

func (f *fakeAPI) DashboardLink(ctx context.Context, sess marketplace.Session) (string, error) {
	return f.link, f.linkErr
}

func newTestService(api marketplace.API) *DefaultPaymentsService {
	return &DefaultPaymentsService{API: api, Logger: zap.NewNop()}
}

func TestLoad_AllCallsFail_RendersNeedsSetup(t *testing.T) {
	api := &fakeAPI{
		accountErr: errors.New("backend down"),
		statsErr:   errors.New("backend down"),
		txnsErr:    errors.New("backend down"),
	}
	dash := newTestService(api).Load(context.Background(), marketplace.Session{})

	assert.False(t, dash.HasAccount)
	assert.False(t, dash.IsFullyOnboarded)
	assert.True(t, dash.NeedsSetup)
	assert.Equal(t, models.DefaultQuoteCurrency, dash.Stats.Currency)
	assert.Empty(t, dash.Transactions)
}

func TestLoad_FullyOnboarded(t *testing.T) {
	api := &fakeAPI{
		account: &models.AccountStatus{
			HasAccount:       true,
			IsFullyOnboarded: true,
			AccountStatus:    "active",
			ChargesEnabled:   true,
			PayoutsEnabled:   true,
		},
		stats: &models.PaymentStats{
			TotalEarnings:     1250.50,
			PendingEarnings:   300,
			CompletedBookings: 8,
			Currency:          "EUR",
		},
		txns: []models.Transaction{
			{ID: "t1", BookingNumber: "BK-1001", Status: "completed", Currency: "EUR", Amount: 150},
		},
	}
	dash := newTestService(api).Load(context.Background(), marketplace.Session{})

	assert.True(t, dash.HasAccount)
	assert.True(t, dash.IsFullyOnboarded)
	assert.False(t, dash.NeedsSetup)
	assert.Equal(t, 1250.50, dash.Stats.TotalEarnings)
	require.Len(t, dash.Transactions, 1)
	assert.Equal(t, "BK-1001", dash.Transactions[0].BookingNumber)
	assert.Equal(t, DefaultTransactionLimit, api.txnLimit)
}

func TestLoad_OnboardingIncompleteStillNeedsSetup(t *testing.T) {
	api := &fakeAPI{
		account: &models.AccountStatus{HasAccount: true, IsFullyOnboarded: false, AccountStatus: "pending"},
	}
	dash := newTestService(api).Load(context.Background(), marketplace.Session{})

	assert.True(t, dash.HasAccount)
	assert.True(t, dash.NeedsSetup)
}

func TestLoad_SecondaryFailuresDegradeSilently(t *testing.T) {
	api := &fakeAPI{
		account:  &models.AccountStatus{HasAccount: true, IsFullyOnboarded: true},
		statsErr: errors.New("timeout"),
		txnsErr:  errors.New("timeout"),
	}
	dash := newTestService(api).Load(context.Background(), marketplace.Session{})

	assert.False(t, dash.NeedsSetup)
	assert.Equal(t, models.DefaultQuoteCurrency, dash.Stats.Currency)
	assert.Zero(t, dash.Stats.TotalEarnings)
	assert.Empty(t, dash.Transactions)
}

func TestLoad_CustomTransactionLimit(t *testing.T) {
	api := &fakeAPI{account: &models.AccountStatus{HasAccount: true, IsFullyOnboarded: true}}
	svc := newTestService(api)
	svc.TransactionLimit = 25
	svc.Load(context.Background(), marketplace.Session{})

	assert.Equal(t, 25, api.txnLimit)
}

func TestDashboardLink(t *testing.T) {
	api := &fakeAPI{link: "https://connect.stripe.com/express/acct_123"}
	url, err := newTestService(api).DashboardLink(context.Background(), marketplace.Session{})
	require.NoError(t, err)
	assert.Equal(t, "https://connect.stripe.com/express/acct_123", url)

	api.linkErr = &marketplace.APIError{Status: 400, Message: "No connected account"}
	_, err = newTestService(api).DashboardLink(context.Background(), marketplace.Session{})
	var apiErr *marketplace.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "No connected account", apiErr.Message)
}
