package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"promarket/config"
)

// DefaultPaymentFailureMessage is shown when the redirect carried no error
// detail.
const DefaultPaymentFailureMessage = "Payment failed. Please try again."

// PaymentFailed renders the static payment-failure page. The message comes
// from the error query parameter; the page itself makes no backend calls.
func PaymentFailed(c *gin.Context) {
	bookingID := c.Param("id")
	message := c.Query("error")
	if message == "" {
		message = DefaultPaymentFailureMessage
	}

	c.HTML(http.StatusOK, "payment_failed.html", gin.H{
		"BookingID":  bookingID,
		"Message":    message,
		"RetryURL":   "/bookings/" + bookingID + "/payment",
		"BookingURL": "/bookings/" + bookingID,
		"SupportURL": config.AppConfig.SupportURL,
	})
}
