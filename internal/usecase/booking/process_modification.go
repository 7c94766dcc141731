package booking

import (
	"context"

	domain "github.com/AutoServeHQ/service-scheduler/internal/domain/booking"
	"github.com/AutoServeHQ/service-scheduler/internal/dto"
	"github.com/AutoServeHQ/service-scheduler/internal/httperr"
	"github.com/AutoServeHQ/service-scheduler/internal/models"
	"github.com/AutoServeHQ/service-scheduler/internal/timezone"
)

// ======================================================
// APPROVE
// ======================================================

type ApproveModification struct {
	repo      domain.Repository
	broadcast Broadcaster
}

func NewApproveModification(
	repo domain.Repository,
	broadcast Broadcaster,
) *ApproveModification {
	return &ApproveModification{
		repo:      repo,
		broadcast: broadcast,
	}
}

// Execute applies a pending slot swap: free the old slot, consume the new
// one, repoint the appointment, mark the record approved. One transaction,
// same exchange protocol as book/cancel.
func (uc *ApproveModification) Execute(
	ctx context.Context,
	modificationID uint,
) (*dto.AppointmentDetail, error) {

	now := timezone.Now()

	var (
		appointmentID uint
		oldSlotID     uint
		newSlotID     uint
	)

	err := uc.repo.WithinTx(ctx, func(tx domain.Repository) error {

		mod, err := tx.GetPendingModificationForUpdate(ctx, modificationID)
		if err != nil {
			return err
		}

		ap, err := tx.GetAppointmentForUpdate(ctx, mod.AppointmentID)
		if err != nil {
			return err
		}

		// The appointment may have been cancelled or completed since the
		// request was filed; approving then would consume the new slot for
		// a dead appointment.
		if !domain.Status(ap.Status).IsActive() {
			return httperr.ErrBusiness(httperr.CodeNotModifiable)
		}

		newSlot, err := tx.GetSlotForUpdate(ctx, mod.NewSlotID)
		if err != nil {
			return err
		}
		if !newSlot.IsAvailable {
			return httperr.ErrBusiness(httperr.CodeSlotUnavailable)
		}

		if _, err := tx.GetSlotForUpdate(ctx, mod.OldSlotID); err != nil {
			return err
		}
		if err := tx.SetSlotAvailability(ctx, mod.OldSlotID, true); err != nil {
			return err
		}
		if err := tx.SetSlotAvailability(ctx, mod.NewSlotID, false); err != nil {
			return err
		}

		ap.SlotID = mod.NewSlotID
		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		mod.Status = models.ModificationApproved
		mod.ProcessedAt = &now
		if err := tx.UpdateModification(ctx, mod); err != nil {
			return err
		}

		appointmentID = ap.ID
		oldSlotID = mod.OldSlotID
		newSlotID = mod.NewSlotID
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.broadcast.Publish(EventSlotUpdate, map[string]any{
		"action":  "reopened",
		"slot_id": oldSlotID,
	})
	uc.broadcast.Publish(EventSlotUpdate, map[string]any{
		"action":  "booked",
		"slot_id": newSlotID,
	})

	return uc.repo.GetAppointmentDetail(ctx, appointmentID)
}

// ======================================================
// REJECT
// ======================================================

type RejectModification struct {
	repo domain.Repository
}

func NewRejectModification(repo domain.Repository) *RejectModification {
	return &RejectModification{repo: repo}
}

func (uc *RejectModification) Execute(
	ctx context.Context,
	modificationID uint,
	reason string,
) (*models.AppointmentModification, error) {

	now := timezone.Now()

	var rejected *models.AppointmentModification

	err := uc.repo.WithinTx(ctx, func(tx domain.Repository) error {

		mod, err := tx.GetPendingModificationForUpdate(ctx, modificationID)
		if err != nil {
			return err
		}

		mod.Status = models.ModificationRejected
		mod.RejectionReason = reason
		mod.ProcessedAt = &now

		if err := tx.UpdateModification(ctx, mod); err != nil {
			return err
		}

		rejected = mod
		return nil
	})

	if err != nil {
		return nil, err
	}

	return rejected, nil
}
