package booking

import (
	"time"

	"github.com/AutoServeHQ/service-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, reason string, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancellationReason = reason
	ap.CancelledAt = &now
	return nil
}

// ApplyStatus moves an appointment to a new status. Only the completed
// transition stamps a timestamp here; booking and cancellation stamp their own.
func ApplyStatus(ap *models.Appointment, to Status, completionNotes string, now time.Time) error {
	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)

	if to == StatusCompleted {
		ap.CompletedAt = &now
		if completionNotes != "" {
			ap.CompletionNotes = completionNotes
		}
	}

	return nil
}
