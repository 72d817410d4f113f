package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"promarket/middleware"
	"promarket/models"
	"promarket/services/bookingview"
	"promarket/services/marketplace"
	"promarket/utils"
)

// BookingHandler serves the booking lifecycle page and its transition
// actions. Every mutation follows POST -> redirect -> GET so the page always
// re-fetches authoritative state from the backend.
type BookingHandler struct {
	Svc   bookingview.Service
	Flash *utils.FlashCodec
}

func NewBookingHandler(svc bookingview.Service, flash *utils.FlashCodec) *BookingHandler {
	return &BookingHandler{Svc: svc, Flash: flash}
}

// Show renders the booking detail page for the current viewer.
func (h *BookingHandler) Show(c *gin.Context) {
	logger := getLogger(c)
	viewer, ok := middleware.CurrentViewer(c)
	if !ok {
		utils.RenderError(c, http.StatusUnauthorized, "Please sign in to view this booking.")
		return
	}

	bookingID := c.Param("id")
	view, err := h.Svc.Load(c.Request.Context(), sessionFrom(c), viewer, bookingID)
	if err != nil {
		logger.Error("booking page load failed",
			zap.String("bookingID", bookingID), zap.Error(err))
		c.HTML(http.StatusOK, "booking_detail.html", gin.H{
			"Error":  marketplace.UserMessage(err, "Failed to load booking details."),
			"Viewer": viewer,
		})
		return
	}

	c.HTML(http.StatusOK, "booking_detail.html", gin.H{
		"View":   view,
		"Viewer": viewer,
		"Flash":  middleware.GetFlash(c),
	})
}

// SubmitQuote handles the professional's quote form. Invalid amounts are
// rejected locally; no backend request is made for them.
func (h *BookingHandler) SubmitQuote(c *gin.Context) {
	logger := getLogger(c)
	bookingID := c.Param("id")
	bookingPath := "/bookings/" + bookingID

	amount, parseErr := strconv.ParseFloat(c.PostForm("amount"), 64)
	if parseErr != nil {
		amount = 0 // falls to the service's positive-amount check
	}
	description := c.PostForm("description")

	err := h.Svc.SubmitQuote(c.Request.Context(), sessionFrom(c), bookingID, amount, description)
	switch {
	case errors.Is(err, bookingview.ErrInvalidQuoteAmount):
		middleware.SetFlash(c, h.Flash, utils.Flash{
			Level:   utils.FlashError,
			Message: "Please enter a valid quote amount",
		})
	case err != nil:
		logger.Error("quote submission failed",
			zap.String("bookingID", bookingID), zap.Error(err))
		middleware.SetFlash(c, h.Flash, utils.Flash{
			Level:   utils.FlashError,
			Message: marketplace.UserMessage(err, "Failed to submit quote. Please try again."),
		})
	default:
		middleware.SetFlash(c, h.Flash, utils.Flash{
			Level:   utils.FlashSuccess,
			Message: "Quote submitted successfully!",
		})
	}
	c.Redirect(http.StatusSeeOther, bookingPath)
}

// Respond handles the customer's accept or reject decision on a quote.
// Accepting routes to the payment page; rejecting reloads the booking.
func (h *BookingHandler) Respond(c *gin.Context) {
	logger := getLogger(c)
	bookingID := c.Param("id")
	bookingPath := "/bookings/" + bookingID
	action := c.PostForm("action")

	outcome, err := h.Svc.RespondToQuote(c.Request.Context(), sessionFrom(c), bookingID, action)
	if err != nil {
		logger.Error("quote response failed",
			zap.String("bookingID", bookingID),
			zap.String("action", action), zap.Error(err))
		fallback := "Failed to respond to quote. Please try again."
		if action == models.QuoteActionAccept || action == models.QuoteActionReject {
			fallback = "Failed to " + action + " quote. Please try again."
		}
		middleware.SetFlash(c, h.Flash, utils.Flash{
			Level:   utils.FlashError,
			Message: marketplace.UserMessage(err, fallback),
		})
		c.Redirect(http.StatusSeeOther, bookingPath)
		return
	}

	if outcome.RedirectToPayment {
		middleware.SetFlash(c, h.Flash, utils.Flash{
			Level:   utils.FlashSuccess,
			Message: "Quote accepted! Redirecting to payment...",
		})
		c.Redirect(http.StatusSeeOther, bookingPath+"/payment")
		return
	}

	middleware.SetFlash(c, h.Flash, utils.Flash{
		Level:   utils.FlashSuccess,
		Message: "Quote rejected",
	})
	c.Redirect(http.StatusSeeOther, bookingPath)
}

// UpdateStatus handles lifecycle transitions (start work, confirm
// completion). Transitions that require confirmation are aborted unless the
// form carries the explicit confirmed flag; nothing is sent to the backend
// in that case.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	logger := getLogger(c)
	viewer, _ := middleware.CurrentViewer(c)
	bookingID := c.Param("id")
	bookingPath := "/bookings/" + bookingID

	target := c.PostForm("status")
	confirmed := c.PostForm("confirmed") == "true"

	note, err := h.Svc.UpdateStatus(c.Request.Context(), sessionFrom(c), viewer, bookingID, target, confirmed)
	switch {
	case errors.Is(err, bookingview.ErrConfirmationRequired):
		middleware.SetFlash(c, h.Flash, utils.Flash{
			Level:   utils.FlashWarning,
			Message: "Please confirm before completing this booking.",
		})
	case errors.Is(err, bookingview.ErrUnsupportedTransition):
		middleware.SetFlash(c, h.Flash, utils.Flash{
			Level:   utils.FlashError,
			Message: "Failed to update booking status",
		})
	case err != nil:
		logger.Error("status update failed",
			zap.String("bookingID", bookingID),
			zap.String("target", target), zap.Error(err))
		middleware.SetFlash(c, h.Flash, utils.Flash{
			Level:   utils.FlashError,
			Message: marketplace.UserMessage(err, "Failed to update booking status. Please try again."),
		})
	default:
		if note == "" {
			note = "Booking updated."
		}
		middleware.SetFlash(c, h.Flash, utils.Flash{
			Level:   utils.FlashSuccess,
			Message: note,
		})
	}
	c.Redirect(http.StatusSeeOther, bookingPath)
}
