package models

// Booking lifecycle statuses as reported by the marketplace backend. The
// backend owns the state machine; the gateway treats Status as an open-ended
// string and only enumerates the values it renders actions for.
const (
	StatusRFQ            = "rfq"
	StatusQuoted         = "quoted"
	StatusQuoteAccepted  = "quote_accepted"
	StatusQuoteRejected  = "quote_rejected"
	StatusPaymentPending = "payment_pending"
	StatusBooked         = "booked"
	StatusInProgress     = "in_progress"
	StatusCompleted      = "completed"
	StatusCancelled      = "cancelled"
	StatusDispute        = "dispute"
	StatusRefunded       = "refunded"
)

// Booking types.
const (
	BookingTypeProfessional = "professional"
	BookingTypeProject      = "project"
)

// Budget is the customer's indicated budget range on a request for quote.
type Budget struct {
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Currency string   `json:"currency,omitempty"`
}

// RFQData holds the request-for-quote payload attached to a booking.
type RFQData struct {
	ServiceType        string  `json:"serviceType,omitempty"`
	Description        string  `json:"description,omitempty"`
	PreferredStartDate string  `json:"preferredStartDate,omitempty"`
	Urgency            string  `json:"urgency,omitempty"` // "low", "medium", "high", "urgent"
	Budget             *Budget `json:"budget,omitempty"`
}

// QuoteLine is one itemized entry in a quote breakdown.
type QuoteLine struct {
	Item   string  `json:"item"`
	Amount float64 `json:"amount"`
}

// Quote is the professional's priced offer attached to exactly one booking.
type Quote struct {
	Amount             float64     `json:"amount,omitempty"`
	Currency           string      `json:"currency,omitempty"`
	Description        string      `json:"description,omitempty"`
	Breakdown          []QuoteLine `json:"breakdown,omitempty"`
	ValidUntil         string      `json:"validUntil,omitempty"`
	TermsAndConditions string      `json:"termsAndConditions,omitempty"`
	EstimatedDuration  string      `json:"estimatedDuration,omitempty"`
	SubmittedAt        string      `json:"submittedAt,omitempty"`
}

// ProjectRef identifies the project a project-type booking is linked to.
type ProjectRef struct {
	ID          string `json:"_id"`
	Title       string `json:"title,omitempty"`
	Category    string `json:"category,omitempty"`
	Service     string `json:"service,omitempty"`
	Description string `json:"description,omitempty"`
}

// BusinessInfo carries the professional's public business details.
type BusinessInfo struct {
	CompanyName string `json:"companyName,omitempty"`
}

// ProfessionalRef identifies the professional counterparty on a booking.
type ProfessionalRef struct {
	ID           string        `json:"_id"`
	Name         string        `json:"name,omitempty"`
	Email        string        `json:"email,omitempty"`
	Phone        string        `json:"phone,omitempty"`
	BusinessInfo *BusinessInfo `json:"businessInfo,omitempty"`
}

// CustomerRef identifies the customer counterparty on a booking.
type CustomerRef struct {
	ID           string `json:"_id"`
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	CustomerType string `json:"customerType,omitempty"`
}

// BookingDetail mirrors the backend's booking document. The gateway never
// mutates it; Status together with the viewer's role determines which
// actions are rendered, and nothing else gates action visibility.
type BookingDetail struct {
	ID                 string           `json:"_id"`
	BookingType        string           `json:"bookingType"`
	Status             string           `json:"status"`
	RFQData            *RFQData         `json:"rfqData,omitempty"`
	Quote              *Quote           `json:"quote,omitempty"`
	ScheduledStartDate string           `json:"scheduledStartDate,omitempty"`
	ScheduledEndDate   string           `json:"scheduledEndDate,omitempty"`
	CreatedAt          string           `json:"createdAt,omitempty"`
	UpdatedAt          string           `json:"updatedAt,omitempty"`
	Project            *ProjectRef      `json:"project,omitempty"`
	Professional       *ProfessionalRef `json:"professional,omitempty"`
	Customer           *CustomerRef     `json:"customer,omitempty"`
}
