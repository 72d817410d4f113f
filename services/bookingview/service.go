package bookingview

import (
	"context"
	"time"

	"go.uber.org/zap"

	"promarket/models"
	"promarket/services/marketplace"
)

// RespondOutcome tells the handler where to send the customer after a quote
// response: accepting routes to the payment page, rejecting reloads the
// booking.
type RespondOutcome struct {
	Accepted          bool
	RedirectToPayment bool
}

// Service drives the booking lifecycle page: loading the view model and
// issuing the role-gated transitions against the backend.
type Service interface {
	Load(ctx context.Context, sess marketplace.Session, viewer models.Viewer, bookingID string) (*BookingView, error)
	SubmitQuote(ctx context.Context, sess marketplace.Session, bookingID string, amount float64, description string) error
	RespondToQuote(ctx context.Context, sess marketplace.Session, bookingID, action string) (*RespondOutcome, error)
	UpdateStatus(ctx context.Context, sess marketplace.Session, viewer models.Viewer, bookingID, target string, confirmed bool) (string, error)
}

// DefaultBookingViewService is the standard implementation backed by the
// marketplace API client.
type DefaultBookingViewService struct {
	API      marketplace.API
	Logger   *zap.Logger
	Location *time.Location
}

// Load fetches the booking and assembles the view model for the viewer.
func (s *DefaultBookingViewService) Load(ctx context.Context, sess marketplace.Session, viewer models.Viewer, bookingID string) (*BookingView, error) {
	booking, err := s.API.FetchBooking(ctx, sess, bookingID)
	if err != nil {
		s.Logger.Error("failed to fetch booking",
			zap.String("bookingID", bookingID), zap.Error(err))
		return nil, err
	}
	return s.buildView(booking, viewer), nil
}

// SubmitQuote validates the quote locally and submits it. A non-positive
// amount never reaches the network.
func (s *DefaultBookingViewService) SubmitQuote(ctx context.Context, sess marketplace.Session, bookingID string, amount float64, description string) error {
	if amount <= 0 {
		return ErrInvalidQuoteAmount
	}
	if description == "" {
		description = "Quote for your booking request"
	}
	in := models.QuoteInput{
		Amount:      amount,
		Currency:    models.DefaultQuoteCurrency,
		Description: description,
	}
	if err := s.API.SubmitQuote(ctx, sess, bookingID, in); err != nil {
		s.Logger.Error("failed to submit quote",
			zap.String("bookingID", bookingID), zap.Error(err))
		return err
	}
	return nil
}

// RespondToQuote forwards an accept or reject decision.
func (s *DefaultBookingViewService) RespondToQuote(ctx context.Context, sess marketplace.Session, bookingID, action string) (*RespondOutcome, error) {
	if action != models.QuoteActionAccept && action != models.QuoteActionReject {
		return nil, ErrInvalidQuoteAction
	}
	if err := s.API.RespondToQuote(ctx, sess, bookingID, action); err != nil {
		s.Logger.Error("failed to respond to quote",
			zap.String("bookingID", bookingID),
			zap.String("action", action), zap.Error(err))
		return nil, err
	}
	accepted := action == models.QuoteActionAccept
	return &RespondOutcome{Accepted: accepted, RedirectToPayment: accepted}, nil
}

// UpdateStatus requests a lifecycle transition on the viewer's behalf. When
// the transition requires confirmation and none was given, it is aborted
// before any request is sent. On success the contextual note for the target
// status is returned.
func (s *DefaultBookingViewService) UpdateStatus(ctx context.Context, sess marketplace.Session, viewer models.Viewer, bookingID, target string, confirmed bool) (string, error) {
	action, ok := TransitionFor(viewer.Role, target)
	if !ok {
		return "", ErrUnsupportedTransition
	}
	if action.RequiresConfirmation() && !confirmed {
		return "", ErrConfirmationRequired
	}
	if err := s.API.UpdateBookingStatus(ctx, sess, bookingID, target); err != nil {
		s.Logger.Error("failed to update booking status",
			zap.String("bookingID", bookingID),
			zap.String("target", target), zap.Error(err))
		return "", err
	}
	return action.SuccessNote, nil
}
