package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"promarket/middleware"
	"promarket/models"
	"promarket/services/payments"
	"promarket/utils"
)

// PaymentsHandler serves the professional's payments dashboard.
type PaymentsHandler struct {
	Svc    payments.Service
	Stripe payments.StripeContext
	Flash  *utils.FlashCodec
}

func NewPaymentsHandler(svc payments.Service, stripe payments.StripeContext, flash *utils.FlashCodec) *PaymentsHandler {
	return &PaymentsHandler{Svc: svc, Stripe: stripe, Flash: flash}
}

// Dashboard renders account-connection status plus, for fully onboarded
// accounts, the earnings and transactions panels.
func (h *PaymentsHandler) Dashboard(c *gin.Context) {
	viewer, ok := middleware.CurrentViewer(c)
	if !ok || viewer.Role != models.RoleProfessional {
		utils.RenderError(c, http.StatusForbidden, "The payments dashboard is only available to professionals.")
		return
	}

	dash := h.Svc.Load(c.Request.Context(), sessionFrom(c))
	c.HTML(http.StatusOK, "payments_dashboard.html", gin.H{
		"Viewer":    viewer,
		"Dashboard": dash,
		"Stripe":    h.Stripe,
		"Flash":     middleware.GetFlash(c),
	})
}

// OpenDashboard resolves the processor-hosted dashboard link and redirects
// to it. The template opens this route in a new browsing context.
func (h *PaymentsHandler) OpenDashboard(c *gin.Context) {
	logger := getLogger(c)

	url, err := h.Svc.DashboardLink(c.Request.Context(), sessionFrom(c))
	if err != nil || url == "" {
		logger.Warn("dashboard link unavailable")
		middleware.SetFlash(c, h.Flash, utils.Flash{
			Level:   utils.FlashError,
			Message: "Could not open the Stripe dashboard. Please try again.",
		})
		c.Redirect(http.StatusSeeOther, "/dashboard/payments")
		return
	}
	c.Redirect(http.StatusFound, url)
}
