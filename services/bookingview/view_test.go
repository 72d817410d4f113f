package bookingview

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"promarket/models"
)

func f64(v float64) *float64 { return &v }

func TestBookingTitle_FallbackChain(t *testing.T) {
	b := &models.BookingDetail{
		Project:      &models.ProjectRef{Title: "Bathroom renovation"},
		Professional: &models.ProfessionalRef{BusinessInfo: &models.BusinessInfo{CompanyName: "Muller Plumbing"}},
		RFQData:      &models.RFQData{ServiceType: "plumbing"},
	}
	assert.Equal(t, "Bathroom renovation", bookingTitle(b))

	b.Project = nil
	assert.Equal(t, "Muller Plumbing", bookingTitle(b))

	b.Professional.BusinessInfo = nil
	assert.Equal(t, "plumbing", bookingTitle(b))

	b.RFQData = nil
	assert.Equal(t, "Booking", bookingTitle(b))
}

func TestFormatBudgetRange(t *testing.T) {
	b := &models.BookingDetail{RFQData: &models.RFQData{
		Budget: &models.Budget{Min: f64(100), Max: f64(250), Currency: "EUR"},
	}}
	assert.Equal(t, "€100 - €250", FormatBudgetRange(b))

	b.RFQData.Budget = &models.Budget{Min: f64(100), Max: f64(100), Currency: "EUR"}
	assert.Equal(t, "€100", FormatBudgetRange(b))

	b.RFQData.Budget = &models.Budget{Max: f64(500), Currency: "USD"}
	assert.Equal(t, "$500", FormatBudgetRange(b))

	b.RFQData.Budget = &models.Budget{}
	assert.Equal(t, "", FormatBudgetRange(b))

	b.RFQData = nil
	assert.Equal(t, "", FormatBudgetRange(b))
}

func TestStatusLabelAndBadge(t *testing.T) {
	assert.Equal(t, "payment pending", statusLabel(models.StatusPaymentPending))
	assert.Equal(t, "rfq", statusLabel(models.StatusRFQ))

	assert.Equal(t, "badge-progress", statusBadge(models.StatusInProgress))
	assert.Equal(t, "badge-neutral", statusBadge("archived"))
}

func TestBuildView_QuoteFormInputs(t *testing.T) {
	svc := newTestService(&fakeAPI{})
	booking := &models.BookingDetail{
		ID:          "b1",
		BookingType: models.BookingTypeProject,
		Status:      models.StatusRFQ,
		RFQData: &models.RFQData{
			ServiceType:        "electrical",
			PreferredStartDate: "2024-03-10T12:00:00Z",
		},
	}
	view := svc.buildView(booking, models.Viewer{ID: "p1", Role: models.RoleProfessional})

	assert.Equal(t, "Project booking", view.TypeLabel)
	assert.Equal(t, ActionSubmitQuote, view.Action.Kind)
	assert.Equal(t, "2024-03-10T12:00", view.PreferredStartInput)
	assert.Equal(t, "2024-03-11", view.EarliestEndDate)
	assert.Equal(t, "Mar 10, 2024", view.PreferredStartDisplay)
}
