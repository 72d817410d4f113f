package bookingview

import (
	"fmt"
	"time"

	"promarket/models"
	"promarket/utils"
)

// statusBadges maps lifecycle statuses to the badge style rendered next to
// the booking title. Unknown statuses get the neutral badge.
var statusBadges = map[string]string{
	models.StatusRFQ:            "badge-rfq",
	models.StatusQuoted:         "badge-quoted",
	models.StatusQuoteAccepted:  "badge-accepted",
	models.StatusPaymentPending: "badge-pending",
	models.StatusBooked:         "badge-booked",
	models.StatusInProgress:     "badge-progress",
	models.StatusCompleted:      "badge-completed",
	models.StatusCancelled:      "badge-cancelled",
	models.StatusRefunded:       "badge-refunded",
	models.StatusDispute:        "badge-dispute",
}

// BookingView is everything the booking detail template needs, precomputed
// so the template stays logic-free.
type BookingView struct {
	Booking *models.BookingDetail
	Viewer  models.Viewer
	Action  Action

	Title       string
	TypeLabel   string
	StatusLabel string
	StatusBadge string

	CreatedAtDisplay      string
	PreferredStartDisplay string
	ScheduledStartDisplay string
	ScheduledEndDisplay   string
	QuoteSubmittedDisplay string

	QuoteAmountDisplay string
	BudgetRange        string

	// Form input values for the quote form's proposed schedule.
	PreferredStartInput string
	EarliestEndDate     string
}

func (s *DefaultBookingViewService) buildView(booking *models.BookingDetail, viewer models.Viewer) *BookingView {
	v := &BookingView{
		Booking:     booking,
		Viewer:      viewer,
		Action:      ActionFor(viewer.Role, booking.Status),
		Title:       bookingTitle(booking),
		TypeLabel:   bookingTypeLabel(booking),
		StatusLabel: statusLabel(booking.Status),
		StatusBadge: statusBadge(booking.Status),
		BudgetRange: FormatBudgetRange(booking),
	}

	v.CreatedAtDisplay = s.displayDateTime(booking.CreatedAt)
	v.ScheduledStartDisplay = s.displayDate(booking.ScheduledStartDate)
	v.ScheduledEndDisplay = s.displayDate(booking.ScheduledEndDate)
	if booking.RFQData != nil {
		v.PreferredStartDisplay = s.displayDate(booking.RFQData.PreferredStartDate)
		v.PreferredStartInput = utils.ToLocalInputValue(booking.RFQData.PreferredStartDate, s.Location)
		v.EarliestEndDate = utils.NextDateValue(booking.RFQData.PreferredStartDate)
	}
	if booking.Quote != nil {
		v.QuoteAmountDisplay = utils.FormatMoney(booking.Quote.Currency, booking.Quote.Amount)
		v.QuoteSubmittedDisplay = s.displayDate(booking.Quote.SubmittedAt)
	}
	return v
}

// bookingTitle picks the most specific name available for the heading.
func bookingTitle(b *models.BookingDetail) string {
	if b.Project != nil && b.Project.Title != "" {
		return b.Project.Title
	}
	if b.Professional != nil && b.Professional.BusinessInfo != nil && b.Professional.BusinessInfo.CompanyName != "" {
		return b.Professional.BusinessInfo.CompanyName
	}
	if b.RFQData != nil && b.RFQData.ServiceType != "" {
		return b.RFQData.ServiceType
	}
	return "Booking"
}

func bookingTypeLabel(b *models.BookingDetail) string {
	if b.BookingType == models.BookingTypeProject {
		return "Project booking"
	}
	return "Professional booking"
}

// statusLabel renders the raw status for display, e.g. "payment_pending"
// becomes "payment pending".
func statusLabel(status string) string {
	out := []rune(status)
	for i, r := range out {
		if r == '_' {
			out[i] = ' '
		}
	}
	return string(out)
}

func statusBadge(status string) string {
	if badge, ok := statusBadges[status]; ok {
		return badge
	}
	return "badge-neutral"
}

// FormatBudgetRange renders the RFQ budget as a display string, or "" when
// no budget was given.
func FormatBudgetRange(b *models.BookingDetail) string {
	if b.RFQData == nil || b.RFQData.Budget == nil {
		return ""
	}
	budget := b.RFQData.Budget
	if budget.Min == nil && budget.Max == nil {
		return ""
	}
	sym := utils.CurrencySymbol(budget.Currency)
	if budget.Min != nil && budget.Max != nil && *budget.Min != *budget.Max {
		return fmt.Sprintf("%s%.0f - %s%.0f", sym, *budget.Min, sym, *budget.Max)
	}
	value := budget.Min
	if value == nil {
		value = budget.Max
	}
	return fmt.Sprintf("%s%.0f", sym, *value)
}

func (s *DefaultBookingViewService) displayDate(value string) string {
	return formatInLocation(value, s.Location, "Jan 2, 2006")
}

func (s *DefaultBookingViewService) displayDateTime(value string) string {
	return formatInLocation(value, s.Location, "Jan 2, 2006 15:04")
}

func formatInLocation(value string, loc *time.Location, layout string) string {
	if value == "" {
		return ""
	}
	input := utils.ToLocalInputValue(value, loc)
	if input == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02T15:04", input)
	if err != nil {
		return ""
	}
	return t.Format(layout)
}
