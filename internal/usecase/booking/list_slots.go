package booking

import (
	"context"
	"time"

	domain "github.com/AutoServeHQ/service-scheduler/internal/domain/booking"
	"github.com/AutoServeHQ/service-scheduler/internal/models"
	"github.com/AutoServeHQ/service-scheduler/internal/timezone"
)

type ListAvailableSlots struct {
	repo domain.Repository
}

func NewListAvailableSlots(repo domain.Repository) *ListAvailableSlots {
	return &ListAvailableSlots{repo: repo}
}

// Execute lists the offerable slots for a date: flag true, no active
// appointment attached, and not already elapsed. serviceType is accepted for
// API compatibility but does not constrain slot choice; slots carry no
// per-service capacity.
func (uc *ListAvailableSlots) Execute(
	ctx context.Context,
	date time.Time,
	serviceType string,
) ([]models.TimeSlot, error) {

	_ = serviceType

	return uc.repo.ListAvailableSlots(ctx, date, timezone.Now())
}
