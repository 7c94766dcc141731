package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AutoServeHQ/service-scheduler/internal/httperr"
	"github.com/AutoServeHQ/service-scheduler/internal/models"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "in_progress", "completed", "cancelled"} {
		parsed, err := ParseStatus(s)
		assert.NoError(t, err)
		assert.Equal(t, Status(s), parsed)
	}

	_, err := ParseStatus("scheduled")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidStatus))

	_, err = ParseStatus("")
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidStatus))
}

func TestStatusClassification(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())

	assert.True(t, StatusPending.IsActive())
	assert.True(t, StatusConfirmed.IsActive())
	assert.True(t, StatusInProgress.IsActive())
	assert.False(t, StatusCompleted.IsActive())
	assert.False(t, StatusCancelled.IsActive())
}

func TestCanCancel(t *testing.T) {
	assert.NoError(t, CanCancel(StatusConfirmed))
	assert.NoError(t, CanCancel(StatusPending))
	assert.NoError(t, CanCancel(StatusInProgress))

	err := CanCancel(StatusCancelled)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAlreadyCancelled))

	err = CanCancel(StatusCompleted)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAlreadyCompleted))
}

func TestCanTransition(t *testing.T) {
	assert.NoError(t, CanTransition(StatusConfirmed, StatusInProgress))
	assert.NoError(t, CanTransition(StatusInProgress, StatusCompleted))
	assert.NoError(t, CanTransition(StatusConfirmed, StatusCancelled))

	// Terminal states never move again, not even to another terminal state.
	err := CanTransition(StatusCompleted, StatusInProgress)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))

	err = CanTransition(StatusCancelled, StatusConfirmed)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))

	err = CanTransition(StatusCompleted, StatusCancelled)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
}

func TestCancelAction(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusConfirmed)}
	err := Cancel(ap, "customer request", now)

	assert.NoError(t, err)
	assert.Equal(t, string(StatusCancelled), ap.Status)
	assert.Equal(t, "customer request", ap.CancellationReason)
	assert.Equal(t, now, *ap.CancelledAt)

	err = Cancel(ap, "again", now)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeAlreadyCancelled))
}

func TestApplyStatusStampsCompletion(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusInProgress)}
	err := ApplyStatus(ap, StatusCompleted, "replaced brake pads", now)

	assert.NoError(t, err)
	assert.Equal(t, string(StatusCompleted), ap.Status)
	assert.Equal(t, now, *ap.CompletedAt)
	assert.Equal(t, "replaced brake pads", ap.CompletionNotes)
}

func TestApplyStatusNonCompletedLeavesTimestamps(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusConfirmed)}
	err := ApplyStatus(ap, StatusInProgress, "", now)

	assert.NoError(t, err)
	assert.Equal(t, string(StatusInProgress), ap.Status)
	assert.Nil(t, ap.CompletedAt)
	assert.Empty(t, ap.CompletionNotes)
}

func TestServiceTypes(t *testing.T) {
	assert.True(t, IsValidServiceType("oil_change"))
	assert.True(t, IsValidServiceType("brake_service"))
	assert.False(t, IsValidServiceType("time_travel_tune_up"))
	assert.False(t, IsValidServiceType(""))
}
