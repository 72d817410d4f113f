package payments

import (
	"context"

	"go.uber.org/zap"

	"promarket/models"
	"promarket/services/marketplace"
)

// DefaultTransactionLimit caps the recent-transactions panel.
const DefaultTransactionLimit = 10

// Dashboard is the payments page view model: account-connection state plus
// the earnings panels that render only for fully onboarded professionals.
type Dashboard struct {
	Account          models.AccountStatus
	HasAccount       bool
	IsFullyOnboarded bool
	NeedsSetup       bool

	Stats        models.PaymentStats
	Transactions []models.Transaction
}

// Service loads the payments dashboard and resolves the processor-hosted
// dashboard link.
type Service interface {
	Load(ctx context.Context, sess marketplace.Session) *Dashboard
	DashboardLink(ctx context.Context, sess marketplace.Session) (string, error)
}

// DefaultPaymentsService is the standard implementation backed by the
// marketplace API client.
type DefaultPaymentsService struct {
	API              marketplace.API
	Logger           *zap.Logger
	TransactionLimit int
}

// Load assembles the dashboard. The account-status fetch is primary: its
// failure leaves the zero-value account, which renders as "needs setup".
// Stats and transactions are secondary and degrade silently; their failures
// are logged, never surfaced.
func (s *DefaultPaymentsService) Load(ctx context.Context, sess marketplace.Session) *Dashboard {
	dash := &Dashboard{
		Stats: models.PaymentStats{Currency: models.DefaultQuoteCurrency},
	}

	account, err := s.API.AccountStatus(ctx, sess)
	if err != nil {
		s.Logger.Error("failed to load account status", zap.Error(err))
	} else {
		dash.Account = *account
	}
	dash.HasAccount = dash.Account.HasAccount
	dash.IsFullyOnboarded = dash.Account.IsFullyOnboarded
	dash.NeedsSetup = !dash.HasAccount || !dash.IsFullyOnboarded

	limit := s.TransactionLimit
	if limit <= 0 {
		limit = DefaultTransactionLimit
	}

	if stats, err := s.API.PaymentStats(ctx, sess); err != nil {
		s.Logger.Warn("payment stats unavailable", zap.Error(err))
	} else {
		dash.Stats = *stats
	}

	if txns, err := s.API.Transactions(ctx, sess, limit); err != nil {
		s.Logger.Warn("transactions unavailable", zap.Error(err))
	} else {
		dash.Transactions = txns
	}

	return dash
}

// DashboardLink returns the processor-hosted dashboard URL for the
// professional's connected account.
func (s *DefaultPaymentsService) DashboardLink(ctx context.Context, sess marketplace.Session) (string, error) {
	url, err := s.API.DashboardLink(ctx, sess)
	if err != nil {
		s.Logger.Error("failed to fetch dashboard link", zap.Error(err))
		return "", err
	}
	return url, nil
}
