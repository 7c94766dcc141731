package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/AutoServeHQ/service-scheduler/internal/dto"
	"github.com/AutoServeHQ/service-scheduler/internal/models"
)

// Repository is the booking engine's storage port. All slot and appointment
// mutation goes through it; nothing else writes to those tables.
type Repository interface {
	// WithinTx runs fn against a transaction-scoped repository. Any error
	// returned by fn rolls the whole transaction back.
	WithinTx(ctx context.Context, fn func(tx Repository) error) error

	// -------- Slots --------
	GetSlotForUpdate(
		ctx context.Context,
		slotID uint,
	) (*models.TimeSlot, error)

	GetSlotByID(
		ctx context.Context,
		slotID uint,
	) (*models.TimeSlot, error)

	SetSlotAvailability(
		ctx context.Context,
		slotID uint,
		available bool,
	) error

	ListAvailableSlots(
		ctx context.Context,
		date time.Time,
		now time.Time,
	) ([]models.TimeSlot, error)

	CountActiveAppointmentsForSlot(
		ctx context.Context,
		slotID uint,
	) (int64, error)

	// -------- Vehicles --------
	GetVehicleForCustomer(
		ctx context.Context,
		vehicleID uint,
		customerID uuid.UUID,
	) (*models.Vehicle, error)

	// -------- Appointments --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentForUpdate(
		ctx context.Context,
		appointmentID uint,
	) (*models.Appointment, error)

	GetAppointmentForCustomerForUpdate(
		ctx context.Context,
		appointmentID uint,
		customerID uuid.UUID,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointmentDetail(
		ctx context.Context,
		appointmentID uint,
	) (*dto.AppointmentDetail, error)

	ListAppointmentsForCustomer(
		ctx context.Context,
		customerID uuid.UUID,
		status string,
	) ([]dto.AppointmentDetail, error)

	ListUpcomingAppointments(
		ctx context.Context,
		employeeID *uuid.UUID,
		today time.Time,
	) ([]dto.AppointmentDetail, error)

	// -------- Modifications --------
	CreateModification(
		ctx context.Context,
		mod *models.AppointmentModification,
	) error

	GetPendingModificationForUpdate(
		ctx context.Context,
		modificationID uint,
	) (*models.AppointmentModification, error)

	UpdateModification(
		ctx context.Context,
		mod *models.AppointmentModification,
	) error
}
