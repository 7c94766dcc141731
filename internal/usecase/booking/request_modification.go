package booking

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/AutoServeHQ/service-scheduler/internal/domain/booking"
	"github.com/AutoServeHQ/service-scheduler/internal/httperr"
	"github.com/AutoServeHQ/service-scheduler/internal/models"
)

type RequestModificationInput struct {
	AppointmentID uint
	CustomerID    uuid.UUID
	NewSlotID     uint
	Reason        string
}

// RequestSlotModification records a customer's proposed slot swap. Nothing is
// allocated yet; an admin approves or rejects the pending record.
type RequestSlotModification struct {
	repo domain.Repository
}

func NewRequestSlotModification(repo domain.Repository) *RequestSlotModification {
	return &RequestSlotModification{repo: repo}
}

func (uc *RequestSlotModification) Execute(
	ctx context.Context,
	in RequestModificationInput,
) (*models.AppointmentModification, error) {

	var created *models.AppointmentModification

	err := uc.repo.WithinTx(ctx, func(tx domain.Repository) error {

		ap, err := tx.GetAppointmentForCustomerForUpdate(ctx, in.AppointmentID, in.CustomerID)
		if err != nil {
			if httperr.IsBusiness(err, httperr.CodeNotFoundOrForbidden) {
				return httperr.ErrBusiness(httperr.CodeNotModifiable)
			}
			return err
		}

		if domain.Status(ap.Status) != domain.StatusConfirmed {
			return httperr.ErrBusiness(httperr.CodeNotModifiable)
		}

		if in.NewSlotID == ap.SlotID {
			return httperr.ErrBusiness(httperr.CodeNotModifiable)
		}

		slot, err := tx.GetSlotByID(ctx, in.NewSlotID)
		if err != nil {
			return err
		}
		if !slot.IsAvailable {
			return httperr.ErrBusiness(httperr.CodeSlotUnavailable)
		}

		mod := &models.AppointmentModification{
			AppointmentID: ap.ID,
			CustomerID:    in.CustomerID,
			OldSlotID:     ap.SlotID,
			NewSlotID:     in.NewSlotID,
			Reason:        in.Reason,
			Status:        models.ModificationPending,
		}

		if err := tx.CreateModification(ctx, mod); err != nil {
			return err
		}

		created = mod
		return nil
	})

	if err != nil {
		return nil, err
	}

	return created, nil
}
