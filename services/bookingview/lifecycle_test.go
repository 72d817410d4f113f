package bookingview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promarket/models"
)

func TestActionFor_ProfessionalLifecycle(t *testing.T) {
	action := ActionFor(models.RoleProfessional, models.StatusRFQ)
	assert.Equal(t, ActionSubmitQuote, action.Kind)
	assert.Equal(t, "Submit Quote", action.Label)
	assert.True(t, action.Actionable())

	action = ActionFor(models.RoleProfessional, models.StatusQuoted)
	assert.Equal(t, ActionNone, action.Kind)
	assert.False(t, action.Actionable())

	action = ActionFor(models.RoleProfessional, models.StatusBooked)
	assert.Equal(t, ActionStartWork, action.Kind)
	assert.Equal(t, models.StatusInProgress, action.TargetStatus)
	assert.False(t, action.RequiresConfirmation())

	action = ActionFor(models.RoleProfessional, models.StatusInProgress)
	assert.Equal(t, ActionInfo, action.Kind)
	assert.False(t, action.Actionable())
}

func TestActionFor_CustomerLifecycle(t *testing.T) {
	action := ActionFor(models.RoleCustomer, models.StatusRFQ)
	assert.Equal(t, ActionNone, action.Kind)

	action = ActionFor(models.RoleCustomer, models.StatusQuoted)
	assert.Equal(t, ActionRespondQuote, action.Kind)
	assert.True(t, action.Actionable())

	action = ActionFor(models.RoleCustomer, models.StatusQuoteAccepted)
	assert.Equal(t, ActionPayNow, action.Kind)

	action = ActionFor(models.RoleCustomer, models.StatusPaymentPending)
	assert.Equal(t, ActionPayNow, action.Kind)

	action = ActionFor(models.RoleCustomer, models.StatusInProgress)
	assert.Equal(t, ActionConfirmComplete, action.Kind)
	assert.Equal(t, models.StatusCompleted, action.TargetStatus)
	assert.True(t, action.RequiresConfirmation())
}

func TestActionFor_UnknownInputs(t *testing.T) {
	assert.Equal(t, ActionNone, ActionFor("admin", models.StatusRFQ).Kind)
	assert.Equal(t, ActionNone, ActionFor(models.RoleCustomer, "archived").Kind)
	assert.Equal(t, ActionNone, ActionFor("", "").Kind)
}

func TestTransitionFor(t *testing.T) {
	action, ok := TransitionFor(models.RoleProfessional, models.StatusInProgress)
	require.True(t, ok)
	assert.Equal(t, ActionStartWork, action.Kind)
	assert.False(t, action.RequiresConfirmation())
	assert.Equal(t, "Work started! Good luck with the project.", action.SuccessNote)

	action, ok = TransitionFor(models.RoleCustomer, models.StatusCompleted)
	require.True(t, ok)
	assert.Equal(t, ActionConfirmComplete, action.Kind)
	assert.True(t, action.RequiresConfirmation())

	_, ok = TransitionFor(models.RoleCustomer, models.StatusInProgress)
	assert.False(t, ok)

	_, ok = TransitionFor(models.RoleProfessional, models.StatusCompleted)
	assert.False(t, ok)
}
