package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	domain "github.com/AutoServeHQ/service-scheduler/internal/domain/booking"
	"github.com/AutoServeHQ/service-scheduler/internal/dto"
	"github.com/AutoServeHQ/service-scheduler/internal/timezone"
)

// ======================================================
// MY APPOINTMENTS (customer)
// ======================================================

type ListMyAppointments struct {
	repo domain.Repository
}

func NewListMyAppointments(repo domain.Repository) *ListMyAppointments {
	return &ListMyAppointments{repo: repo}
}

func (uc *ListMyAppointments) Execute(
	ctx context.Context,
	customerID uuid.UUID,
	status string,
) ([]dto.AppointmentDetail, error) {

	if status != "" {
		if _, err := domain.ParseStatus(status); err != nil {
			return nil, err
		}
	}

	return uc.repo.ListAppointmentsForCustomer(ctx, customerID, status)
}

// ======================================================
// UPCOMING (employee / admin)
// ======================================================

type ListUpcomingAppointments struct {
	repo domain.Repository
}

func NewListUpcomingAppointments(repo domain.Repository) *ListUpcomingAppointments {
	return &ListUpcomingAppointments{repo: repo}
}

// Execute returns active-status appointments from today onward, capped at 50.
// A non-nil employeeID scopes the list to that employee's assignments.
func (uc *ListUpcomingAppointments) Execute(
	ctx context.Context,
	employeeID *uuid.UUID,
) ([]dto.AppointmentDetail, error) {

	now := timezone.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	return uc.repo.ListUpcomingAppointments(ctx, employeeID, today)
}
