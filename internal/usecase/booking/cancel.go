package booking

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	domain "github.com/AutoServeHQ/service-scheduler/internal/domain/booking"
	"github.com/AutoServeHQ/service-scheduler/internal/models"
	"github.com/AutoServeHQ/service-scheduler/internal/timezone"
)

type CancelAppointmentInput struct {
	AppointmentID uint
	CustomerID    uuid.UUID
	Reason        string
}

type CancelAppointment struct {
	repo      domain.Repository
	notifier  Notifier
	broadcast Broadcaster
}

func NewCancelAppointment(
	repo domain.Repository,
	notifier Notifier,
	broadcast Broadcaster,
) *CancelAppointment {
	return &CancelAppointment{
		repo:      repo,
		notifier:  notifier,
		broadcast: broadcast,
	}
}

// Execute cancels a customer's own appointment and reopens its slot in the
// same transaction. Ownership failures and absent rows share one error code
// so callers cannot probe for other customers' appointments.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	in CancelAppointmentInput,
) error {

	now := timezone.Now()

	var cancelled *models.Appointment

	err := uc.repo.WithinTx(ctx, func(tx domain.Repository) error {

		ap, err := tx.GetAppointmentForCustomerForUpdate(ctx, in.AppointmentID, in.CustomerID)
		if err != nil {
			return err
		}

		if err := domain.Cancel(ap, in.Reason, now); err != nil {
			return err
		}

		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		if err := tx.SetSlotAvailability(ctx, ap.SlotID, true); err != nil {
			return err
		}

		cancelled = ap
		return nil
	})

	if err != nil {
		return err
	}

	detail, err := uc.repo.GetAppointmentDetail(ctx, cancelled.ID)
	if err != nil {
		// Cancellation is committed; only the side effects are lost.
		log.Warn().Err(err).Uint("appointment_id", cancelled.ID).
			Msg("cancelled appointment detail lookup failed, skipping notifications")
		return nil
	}

	uc.notifier.AppointmentCancelled(*detail)
	uc.broadcast.Publish(EventSlotUpdate, map[string]any{
		"action":  "cancelled",
		"slot_id": detail.SlotID,
		"date":    detail.Date.Format("2006-01-02"),
	})

	return nil
}
