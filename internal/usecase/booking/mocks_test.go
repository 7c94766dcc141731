package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	domain "github.com/AutoServeHQ/service-scheduler/internal/domain/booking"
	"github.com/AutoServeHQ/service-scheduler/internal/dto"
	"github.com/AutoServeHQ/service-scheduler/internal/models"
)

// ---------------- Repository ----------------

type mockRepo struct {
	mock.Mock
}

// WithinTx runs fn against the mock itself; a configured error short-circuits
// the transaction without invoking fn.
func (m *mockRepo) WithinTx(ctx context.Context, fn func(tx domain.Repository) error) error {
	args := m.Called(ctx)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	return fn(m)
}

func (m *mockRepo) GetSlotForUpdate(ctx context.Context, slotID uint) (*models.TimeSlot, error) {
	args := m.Called(ctx, slotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TimeSlot), args.Error(1)
}

func (m *mockRepo) GetSlotByID(ctx context.Context, slotID uint) (*models.TimeSlot, error) {
	args := m.Called(ctx, slotID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TimeSlot), args.Error(1)
}

func (m *mockRepo) SetSlotAvailability(ctx context.Context, slotID uint, available bool) error {
	return m.Called(ctx, slotID, available).Error(0)
}

func (m *mockRepo) ListAvailableSlots(ctx context.Context, date time.Time, now time.Time) ([]models.TimeSlot, error) {
	args := m.Called(ctx, date, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TimeSlot), args.Error(1)
}

func (m *mockRepo) CountActiveAppointmentsForSlot(ctx context.Context, slotID uint) (int64, error) {
	args := m.Called(ctx, slotID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepo) GetVehicleForCustomer(ctx context.Context, vehicleID uint, customerID uuid.UUID) (*models.Vehicle, error) {
	args := m.Called(ctx, vehicleID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *mockRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	if args.Error(0) == nil && ap.ID == 0 {
		ap.ID = 1
	}
	return args.Error(0)
}

func (m *mockRepo) GetAppointmentForUpdate(ctx context.Context, appointmentID uint) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *mockRepo) GetAppointmentForCustomerForUpdate(ctx context.Context, appointmentID uint, customerID uuid.UUID) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *mockRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	return m.Called(ctx, ap).Error(0)
}

func (m *mockRepo) GetAppointmentDetail(ctx context.Context, appointmentID uint) (*dto.AppointmentDetail, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AppointmentDetail), args.Error(1)
}

func (m *mockRepo) ListAppointmentsForCustomer(ctx context.Context, customerID uuid.UUID, status string) ([]dto.AppointmentDetail, error) {
	args := m.Called(ctx, customerID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.AppointmentDetail), args.Error(1)
}

func (m *mockRepo) ListUpcomingAppointments(ctx context.Context, employeeID *uuid.UUID, today time.Time) ([]dto.AppointmentDetail, error) {
	args := m.Called(ctx, employeeID, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.AppointmentDetail), args.Error(1)
}

func (m *mockRepo) CreateModification(ctx context.Context, mod *models.AppointmentModification) error {
	args := m.Called(ctx, mod)
	if args.Error(0) == nil && mod.ID == 0 {
		mod.ID = 1
	}
	return args.Error(0)
}

func (m *mockRepo) GetPendingModificationForUpdate(ctx context.Context, modificationID uint) (*models.AppointmentModification, error) {
	args := m.Called(ctx, modificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AppointmentModification), args.Error(1)
}

func (m *mockRepo) UpdateModification(ctx context.Context, mod *models.AppointmentModification) error {
	return m.Called(ctx, mod).Error(0)
}

// ---------------- Sinks ----------------

type recordingNotifier struct {
	booked    []dto.AppointmentDetail
	cancelled []dto.AppointmentDetail
}

func (n *recordingNotifier) AppointmentBooked(detail dto.AppointmentDetail) {
	n.booked = append(n.booked, detail)
}

func (n *recordingNotifier) AppointmentCancelled(detail dto.AppointmentDetail) {
	n.cancelled = append(n.cancelled, detail)
}

type recordedEvent struct {
	event   string
	payload map[string]any
}

type recordingBroadcaster struct {
	events []recordedEvent
}

func (b *recordingBroadcaster) Publish(event string, payload map[string]any) {
	b.events = append(b.events, recordedEvent{event: event, payload: payload})
}
