package bookingview

import "promarket/models"

// Action kinds a booking page can render for the viewer.
const (
	ActionNone            = "none"
	ActionSubmitQuote     = "submit_quote"
	ActionRespondQuote    = "respond_quote"
	ActionPayNow          = "pay_now"
	ActionStartWork       = "start_work"
	ActionConfirmComplete = "confirm_completion"
	ActionInfo            = "info"
)

// Action describes what the current viewer may do on a booking in its
// current status: the control to render, the transition it requests, whether
// it needs an explicit confirmation, and the note shown on success.
type Action struct {
	Kind          string
	Label         string
	Heading       string
	Detail        string
	Note          string
	TargetStatus  string
	ConfirmPrompt string
	SuccessNote   string
}

// RequiresConfirmation reports whether the action must not be issued without
// the user explicitly confirming the prompt.
func (a Action) RequiresConfirmation() bool {
	return a.ConfirmPrompt != ""
}

// Actionable reports whether the action renders an interactive control.
func (a Action) Actionable() bool {
	switch a.Kind {
	case ActionSubmitQuote, ActionRespondQuote, ActionPayNow, ActionStartWork, ActionConfirmComplete:
		return true
	}
	return false
}

// lifecycleActions maps (viewer role, booking status) to the permitted
// action. Statuses absent for a role render nothing actionable; the backend
// remains the authority on whether a transition is actually legal.
var lifecycleActions = map[string]map[string]Action{
	models.RoleProfessional: {
		models.StatusRFQ: {
			Kind:    ActionSubmitQuote,
			Label:   "Submit Quote",
			Heading: "Quote Requested",
			Detail:  "The customer is waiting for your quote. Please review the requirements and submit your quote.",
		},
		models.StatusQuoteAccepted: {
			Kind:    ActionInfo,
			Heading: "Quote Accepted - Awaiting Payment",
			Detail:  "The customer has accepted your quote. Once they complete payment, you'll be notified to begin work.",
		},
		models.StatusPaymentPending: {
			Kind:    ActionInfo,
			Heading: "Quote Accepted - Awaiting Payment",
			Detail:  "The customer has accepted your quote. Once they complete payment, you'll be notified to begin work.",
		},
		models.StatusBooked: {
			Kind:         ActionStartWork,
			Label:        "Start Work",
			Heading:      "Ready to Start Work",
			Detail:       "Payment has been authorized and is held in escrow. Click below to mark the work as started.",
			TargetStatus: models.StatusInProgress,
			SuccessNote:  "Work started! Good luck with the project.",
		},
		models.StatusInProgress: {
			Kind:    ActionInfo,
			Heading: "Waiting for customer confirmation",
			Detail:  "Finish the work and notify your customer. Only they can confirm completion and release the payment from escrow.",
			Note:    "Funds stay protected until the customer marks the booking as completed.",
		},
		models.StatusCompleted: {
			Kind:    ActionInfo,
			Heading: "Work Completed",
			Detail:  "This booking has been marked as completed. Payment has been transferred to the professional.",
			Note:    "Funds will arrive in your bank account within 2-7 business days.",
		},
	},
	models.RoleCustomer: {
		models.StatusQuoted: {
			Kind:    ActionRespondQuote,
			Label:   "Accept & Pay",
			Heading: "Quote Received",
		},
		models.StatusQuoteAccepted: {
			Kind:    ActionPayNow,
			Label:   "Pay Now",
			Heading: "Payment Required",
			Detail:  "Your quote has been accepted. Please proceed with payment to confirm your booking.",
		},
		models.StatusPaymentPending: {
			Kind:    ActionPayNow,
			Label:   "Pay Now",
			Heading: "Payment Required",
			Detail:  "Your quote has been accepted. Please proceed with payment to confirm your booking.",
		},
		models.StatusInProgress: {
			Kind:          ActionConfirmComplete,
			Label:         "Confirm Complete",
			Heading:       "Work In Progress",
			Detail:        "The professional is currently working on your request. Once they complete the work, you can confirm completion.",
			Note:          "Payment will be released from escrow when you confirm completion.",
			TargetStatus:  models.StatusCompleted,
			ConfirmPrompt: "Are you satisfied with the work? This will release the payment from escrow to the professional.",
			SuccessNote:   "Booking marked as completed! Payment has been transferred to the professional. Funds will arrive in the professional's bank account within 2-7 business days.",
		},
		models.StatusCompleted: {
			Kind:    ActionInfo,
			Heading: "Work Completed",
			Detail:  "This booking has been marked as completed. Payment has been transferred to the professional.",
		},
	},
}

// ActionFor returns the action the viewer role may take on a booking in the
// given status. Unknown roles, statuses, or combinations yield a
// non-actionable zero entry.
func ActionFor(role, status string) Action {
	byStatus, ok := lifecycleActions[role]
	if !ok {
		return Action{Kind: ActionNone}
	}
	action, ok := byStatus[status]
	if !ok {
		return Action{Kind: ActionNone}
	}
	return action
}

// TransitionFor finds the action for the role whose control requests the
// given target status. It is how a POSTed transition recovers its
// confirmation requirement and success note without trusting the form.
func TransitionFor(role, target string) (Action, bool) {
	for _, action := range lifecycleActions[role] {
		if action.TargetStatus == target {
			return action, true
		}
	}
	return Action{}, false
}
