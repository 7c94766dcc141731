package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/AutoServeHQ/service-scheduler/internal/domain/booking"
	"github.com/AutoServeHQ/service-scheduler/internal/dto"
	"github.com/AutoServeHQ/service-scheduler/internal/httperr"
	"github.com/AutoServeHQ/service-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// WithinTx hands fn a repository bound to a single transaction. gorm rolls
// back when fn returns an error and commits otherwise.
func (r *BookingGormRepository) WithinTx(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Slots
// --------------------------------------------------

func (r *BookingGormRepository) GetSlotForUpdate(
	ctx context.Context,
	slotID uint,
) (*models.TimeSlot, error) {

	var slot models.TimeSlot
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&slot, slotID).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeSlotNotFound)
		}
		return nil, err
	}

	return &slot, nil
}

func (r *BookingGormRepository) GetSlotByID(
	ctx context.Context,
	slotID uint,
) (*models.TimeSlot, error) {

	var slot models.TimeSlot
	if err := r.db.WithContext(ctx).First(&slot, slotID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeSlotNotFound)
		}
		return nil, err
	}

	return &slot, nil
}

func (r *BookingGormRepository) SetSlotAvailability(
	ctx context.Context,
	slotID uint,
	available bool,
) error {
	return r.db.WithContext(ctx).
		Model(&models.TimeSlot{}).
		Where("id = ?", slotID).
		Update("is_available", available).Error
}

func (r *BookingGormRepository) ListAvailableSlots(
	ctx context.Context,
	date time.Time,
	now time.Time,
) ([]models.TimeSlot, error) {

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	currentTime := now.Format("15:04")

	var slots []models.TimeSlot
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Where("is_available = ?", true).
		Where(
			"NOT EXISTS (SELECT 1 FROM appointments a WHERE a.slot_id = time_slots.id AND a.status IN ?)",
			domain.ActiveStatuses,
		).
		Where("(date > ? OR (date = ? AND start_time > ?))", today, today, currentTime).
		Order("start_time ASC").
		Find(&slots).Error
	if err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *BookingGormRepository) CountActiveAppointmentsForSlot(
	ctx context.Context,
	slotID uint,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("slot_id = ? AND status IN ?", slotID, domain.ActiveStatuses).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// --------------------------------------------------
// Vehicles
// --------------------------------------------------

func (r *BookingGormRepository) GetVehicleForCustomer(
	ctx context.Context,
	vehicleID uint,
	customerID uuid.UUID,
) (*models.Vehicle, error) {

	var vehicle models.Vehicle
	if err := r.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", vehicleID, customerID).
		First(&vehicle).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeVehicleNotFound)
		}
		return nil, err
	}

	return &vehicle, nil
}

// --------------------------------------------------
// Appointments
// --------------------------------------------------

func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *BookingGormRepository) GetAppointmentForUpdate(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&ap, appointmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
		}
		return nil, err
	}

	return &ap, nil
}

// GetAppointmentForCustomerForUpdate loads an appointment only when it belongs
// to the customer. Absent and foreign rows are indistinguishable on purpose.
func (r *BookingGormRepository) GetAppointmentForCustomerForUpdate(
	ctx context.Context,
	appointmentID uint,
	customerID uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND customer_id = ?", appointmentID, customerID).
		First(&ap).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFoundOrForbidden)
		}
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *BookingGormRepository) GetAppointmentDetail(
	ctx context.Context,
	appointmentID uint,
) (*dto.AppointmentDetail, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Vehicle").
		Preload("Slot").
		Preload("AssignedEmployee").
		First(&ap, appointmentID).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
		}
		return nil, err
	}

	detail := toDetail(&ap)
	return &detail, nil
}

func (r *BookingGormRepository) ListAppointmentsForCustomer(
	ctx context.Context,
	customerID uuid.UUID,
	status string,
) ([]dto.AppointmentDetail, error) {

	q := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Vehicle").
		Preload("Slot").
		Preload("AssignedEmployee").
		Joins("JOIN time_slots ON time_slots.id = appointments.slot_id").
		Where("appointments.customer_id = ?", customerID)

	if status != "" {
		q = q.Where("appointments.status = ?", status)
	}

	var aps []models.Appointment
	if err := q.
		Order("time_slots.date DESC, time_slots.start_time DESC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return toDetails(aps), nil
}

func (r *BookingGormRepository) ListUpcomingAppointments(
	ctx context.Context,
	employeeID *uuid.UUID,
	today time.Time,
) ([]dto.AppointmentDetail, error) {

	q := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Vehicle").
		Preload("Slot").
		Preload("AssignedEmployee").
		Joins("JOIN time_slots ON time_slots.id = appointments.slot_id").
		Where("appointments.status IN ?", domain.ActiveStatuses).
		Where("time_slots.date >= ?", today)

	if employeeID != nil {
		q = q.Where("appointments.assigned_employee_id = ?", *employeeID)
	}

	var aps []models.Appointment
	if err := q.
		Order("time_slots.date ASC, time_slots.start_time ASC").
		Limit(50).
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return toDetails(aps), nil
}

// --------------------------------------------------
// Modifications
// --------------------------------------------------

func (r *BookingGormRepository) CreateModification(
	ctx context.Context,
	mod *models.AppointmentModification,
) error {
	return r.db.WithContext(ctx).Create(mod).Error
}

func (r *BookingGormRepository) GetPendingModificationForUpdate(
	ctx context.Context,
	modificationID uint,
) (*models.AppointmentModification, error) {

	var mod models.AppointmentModification
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND status = ?", modificationID, models.ModificationPending).
		First(&mod).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeModificationNotFound)
		}
		return nil, err
	}

	return &mod, nil
}

func (r *BookingGormRepository) UpdateModification(
	ctx context.Context,
	mod *models.AppointmentModification,
) error {
	return r.db.WithContext(ctx).Save(mod).Error
}

// --------------------------------------------------
// Mapping
// --------------------------------------------------

func toDetail(ap *models.Appointment) dto.AppointmentDetail {
	d := dto.AppointmentDetail{
		ID:          ap.ID,
		CustomerID:  ap.CustomerID,
		VehicleID:   ap.VehicleID,
		SlotID:      ap.SlotID,
		ServiceType: ap.ServiceType,
		Notes:       ap.Notes,
		Status:      ap.Status,

		CustomerName:  ap.Customer.FullName,
		CustomerEmail: ap.Customer.Email,
		CustomerPhone: ap.Customer.Phone,

		VehicleMake:  ap.Vehicle.Make,
		VehicleModel: ap.Vehicle.Model,
		VehicleYear:  ap.Vehicle.Year,
		LicensePlate: ap.Vehicle.LicensePlate,

		Date:      ap.Slot.Date,
		StartTime: ap.Slot.StartTime,
		EndTime:   ap.Slot.EndTime,

		AssignedEmployeeID: ap.AssignedEmployeeID,

		CancellationReason: ap.CancellationReason,
		CompletionNotes:    ap.CompletionNotes,
		ConfirmedAt:        ap.ConfirmedAt,
		CompletedAt:        ap.CompletedAt,
		CancelledAt:        ap.CancelledAt,

		CreatedAt: ap.CreatedAt,
	}

	if ap.AssignedEmployee != nil {
		d.AssignedEmployeeName = ap.AssignedEmployee.FullName
	}

	return d
}

func toDetails(aps []models.Appointment) []dto.AppointmentDetail {
	out := make([]dto.AppointmentDetail, 0, len(aps))
	for i := range aps {
		out = append(out, toDetail(&aps[i]))
	}
	return out
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
