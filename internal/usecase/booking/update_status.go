package booking

import (
	"context"

	domain "github.com/AutoServeHQ/service-scheduler/internal/domain/booking"
	"github.com/AutoServeHQ/service-scheduler/internal/dto"
	"github.com/AutoServeHQ/service-scheduler/internal/timezone"
)

type UpdateStatusInput struct {
	AppointmentID   uint
	Status          string
	CompletionNotes string
}

type UpdateAppointmentStatus struct {
	repo      domain.Repository
	broadcast Broadcaster
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	broadcast Broadcaster,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:      repo,
		broadcast: broadcast,
	}
}

// Execute advances an appointment's status on behalf of employees/admins.
// The row is locked for the transition check so a racing cancel cannot be
// overwritten after it commits. Ordering stays permissive except that
// terminal states are immutable. No email goes out here; only booking and
// cancellation notify.
func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*dto.AppointmentDetail, error) {

	status, err := domain.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}

	now := timezone.Now()

	var appointmentID uint

	err = uc.repo.WithinTx(ctx, func(tx domain.Repository) error {

		ap, err := tx.GetAppointmentForUpdate(ctx, in.AppointmentID)
		if err != nil {
			return err
		}

		if err := domain.ApplyStatus(ap, status, in.CompletionNotes, now); err != nil {
			return err
		}

		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		appointmentID = ap.ID
		return nil
	})

	if err != nil {
		return nil, err
	}

	detail, err := uc.repo.GetAppointmentDetail(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	uc.broadcast.Publish(EventAppointmentUpdate, map[string]any{
		"action":         "status_changed",
		"appointment_id": detail.ID,
		"status":         detail.Status,
	})

	return detail, nil
}
