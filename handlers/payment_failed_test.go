package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promarket/config"
)

func paymentFailedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.AppConfig.SupportURL = "/support"

	r := gin.New()
	r.LoadHTMLGlob("../templates/*.html")
	r.GET("/bookings/:id/payment/failed", PaymentFailed)
	return r
}

func TestPaymentFailed_DefaultMessage(t *testing.T) {
	r := paymentFailedRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings/b1/payment/failed", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, DefaultPaymentFailureMessage)
	assert.Contains(t, body, `href="/bookings/b1/payment"`)
	assert.Contains(t, body, `href="/bookings/b1"`)
	assert.Contains(t, body, `href="/support"`)
}

func TestPaymentFailed_MessageFromQuery(t *testing.T) {
	r := paymentFailedRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings/b1/payment/failed?error=Card+declined+by+your+bank", nil)
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Card declined by your bank")
}
