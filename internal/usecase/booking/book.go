package booking

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	domain "github.com/AutoServeHQ/service-scheduler/internal/domain/booking"
	"github.com/AutoServeHQ/service-scheduler/internal/dto"
	"github.com/AutoServeHQ/service-scheduler/internal/httperr"
	"github.com/AutoServeHQ/service-scheduler/internal/models"
	"github.com/AutoServeHQ/service-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	CustomerID  uuid.UUID
	VehicleID   uint
	SlotID      uint
	ServiceType string
	Notes       string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo      domain.Repository
	notifier  Notifier
	broadcast Broadcaster
}

func NewBookAppointment(
	repo domain.Repository,
	notifier Notifier,
	broadcast Broadcaster,
) *BookAppointment {
	return &BookAppointment{
		repo:      repo,
		notifier:  notifier,
		broadcast: broadcast,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute allocates a slot to a new appointment. The slot row is locked
// FOR UPDATE before any check so that of two concurrent bookers exactly one
// observes "available"; everything up to the commit is one transaction.
func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*dto.AppointmentDetail, error) {

	now := timezone.Now()

	var created *models.Appointment

	err := uc.repo.WithinTx(ctx, func(tx domain.Repository) error {

		slot, err := tx.GetSlotForUpdate(ctx, in.SlotID)
		if err != nil {
			return err
		}

		if !slot.IsAvailable {
			return httperr.ErrBusiness(httperr.CodeSlotUnavailable)
		}

		if !slot.StartsAt(now.Location()).After(now) {
			return httperr.ErrBusiness(httperr.CodePastSlot)
		}

		// Belt and suspenders: the flag and the active-appointment
		// predicate must agree.
		active, err := tx.CountActiveAppointmentsForSlot(ctx, slot.ID)
		if err != nil {
			return err
		}
		if active > 0 {
			return httperr.ErrBusiness(httperr.CodeSlotConflict)
		}

		vehicle, err := tx.GetVehicleForCustomer(ctx, in.VehicleID, in.CustomerID)
		if err != nil {
			return err
		}

		ap := &models.Appointment{
			CustomerID:  in.CustomerID,
			VehicleID:   vehicle.ID,
			SlotID:      slot.ID,
			ServiceType: in.ServiceType,
			Notes:       in.Notes,
			Status:      string(domain.InitialStatus()),
			ConfirmedAt: &now,
		}

		if err := tx.CreateAppointment(ctx, ap); err != nil {
			if httperr.IsUniqueViolation(err) || httperr.IsExclusionConflict(err) {
				return httperr.ErrBusiness(httperr.CodeSlotConflict)
			}
			return err
		}

		if err := tx.SetSlotAvailability(ctx, slot.ID, false); err != nil {
			return err
		}

		created = ap
		return nil
	})

	if err != nil {
		return nil, err
	}

	detail, err := uc.repo.GetAppointmentDetail(ctx, created.ID)
	if err != nil {
		// Booking is committed; only the side effects are lost.
		log.Warn().Err(err).Uint("appointment_id", created.ID).
			Msg("booked appointment detail lookup failed, skipping notifications")
		fallback := dto.AppointmentDetail{
			ID:          created.ID,
			CustomerID:  created.CustomerID,
			VehicleID:   created.VehicleID,
			SlotID:      created.SlotID,
			ServiceType: created.ServiceType,
			Notes:       created.Notes,
			Status:      created.Status,
			ConfirmedAt: created.ConfirmedAt,
		}
		return &fallback, nil
	}

	// Best effort after commit; neither failure reaches the caller.
	uc.notifier.AppointmentBooked(*detail)
	uc.broadcast.Publish(EventSlotUpdate, map[string]any{
		"action":  "booked",
		"slot_id": detail.SlotID,
		"date":    detail.Date.Format("2006-01-02"),
	})

	return detail, nil
}
