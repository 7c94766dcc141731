package booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	domain "github.com/AutoServeHQ/service-scheduler/internal/domain/booking"
	"github.com/AutoServeHQ/service-scheduler/internal/dto"
	"github.com/AutoServeHQ/service-scheduler/internal/httperr"
	"github.com/AutoServeHQ/service-scheduler/internal/models"
)

func TestCancelAppointmentSuccess(t *testing.T) {
	customerID := uuid.New()

	ap := &models.Appointment{
		ID:         7,
		CustomerID: customerID,
		SlotID:     5,
		Status:     string(domain.StatusConfirmed),
	}

	repo := new(mockRepo)
	notifier := &recordingNotifier{}
	broadcaster := &recordingBroadcaster{}

	repo.On("WithinTx", mock.Anything).Return(nil)
	repo.On("GetAppointmentForCustomerForUpdate", mock.Anything, uint(7), customerID).Return(ap, nil)
	repo.On("UpdateAppointment", mock.Anything, ap).Return(nil)
	repo.On("SetSlotAvailability", mock.Anything, uint(5), true).Return(nil)
	repo.On("GetAppointmentDetail", mock.Anything, uint(7)).
		Return(&dto.AppointmentDetail{ID: 7, SlotID: 5, Status: "cancelled", CustomerID: customerID}, nil)

	uc := NewCancelAppointment(repo, notifier, broadcaster)

	err := uc.Execute(context.Background(), CancelAppointmentInput{
		AppointmentID: 7,
		CustomerID:    customerID,
		Reason:        "found a closer shop",
	})

	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), ap.Status)
	assert.Equal(t, "found a closer shop", ap.CancellationReason)
	assert.NotNil(t, ap.CancelledAt)

	assert.Len(t, notifier.cancelled, 1)
	assert.Len(t, broadcaster.events, 1)
	assert.Equal(t, "cancelled", broadcaster.events[0].payload["action"])

	repo.AssertExpectations(t)
}

func TestCancelAppointmentNotOwned(t *testing.T) {
	customerID := uuid.New()

	repo := new(mockRepo)
	repo.On("WithinTx", mock.Anything).Return(nil)
	repo.On("GetAppointmentForCustomerForUpdate", mock.Anything, uint(7), customerID).
		Return(nil, httperr.ErrBusiness(httperr.CodeNotFoundOrForbidden))

	notifier := &recordingNotifier{}
	uc := NewCancelAppointment(repo, notifier, &recordingBroadcaster{})

	err := uc.Execute(context.Background(), CancelAppointmentInput{
		AppointmentID: 7,
		CustomerID:    customerID,
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeNotFoundOrForbidden))
	assert.Empty(t, notifier.cancelled)
	repo.AssertNotCalled(t, "SetSlotAvailability", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelAppointmentTerminalStates(t *testing.T) {
	customerID := uuid.New()

	tests := []struct {
		status string
		code   string
	}{
		{string(domain.StatusCancelled), httperr.CodeAlreadyCancelled},
		{string(domain.StatusCompleted), httperr.CodeAlreadyCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			ap := &models.Appointment{
				ID:         7,
				CustomerID: customerID,
				SlotID:     5,
				Status:     tt.status,
			}

			repo := new(mockRepo)
			repo.On("WithinTx", mock.Anything).Return(nil)
			repo.On("GetAppointmentForCustomerForUpdate", mock.Anything, uint(7), customerID).Return(ap, nil)

			uc := NewCancelAppointment(repo, &recordingNotifier{}, &recordingBroadcaster{})

			err := uc.Execute(context.Background(), CancelAppointmentInput{
				AppointmentID: 7,
				CustomerID:    customerID,
			})

			assert.True(t, httperr.IsBusiness(err, tt.code))
			repo.AssertNotCalled(t, "UpdateAppointment", mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "SetSlotAvailability", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCancelAppointmentDetailLookupFailureIsSwallowed(t *testing.T) {
	customerID := uuid.New()

	ap := &models.Appointment{
		ID:         7,
		CustomerID: customerID,
		SlotID:     5,
		Status:     string(domain.StatusConfirmed),
	}

	repo := new(mockRepo)
	notifier := &recordingNotifier{}
	broadcaster := &recordingBroadcaster{}

	repo.On("WithinTx", mock.Anything).Return(nil)
	repo.On("GetAppointmentForCustomerForUpdate", mock.Anything, uint(7), customerID).Return(ap, nil)
	repo.On("UpdateAppointment", mock.Anything, ap).Return(nil)
	repo.On("SetSlotAvailability", mock.Anything, uint(5), true).Return(nil)
	repo.On("GetAppointmentDetail", mock.Anything, uint(7)).
		Return(nil, assert.AnError)

	uc := NewCancelAppointment(repo, notifier, broadcaster)

	err := uc.Execute(context.Background(), CancelAppointmentInput{
		AppointmentID: 7,
		CustomerID:    customerID,
		Reason:        "",
	})

	// The cancellation committed; the caller never sees the lookup failure.
	assert.NoError(t, err)
	assert.Empty(t, notifier.cancelled)
	assert.Empty(t, broadcaster.events)
}

func TestCancelReopensSlotInSameTransaction(t *testing.T) {
	customerID := uuid.New()

	ap := &models.Appointment{
		ID:         7,
		CustomerID: customerID,
		SlotID:     5,
		Status:     string(domain.StatusInProgress),
	}

	repo := new(mockRepo)
	repo.On("WithinTx", mock.Anything).Return(nil)
	repo.On("GetAppointmentForCustomerForUpdate", mock.Anything, uint(7), customerID).Return(ap, nil)
	repo.On("UpdateAppointment", mock.Anything, ap).Return(nil)
	repo.On("SetSlotAvailability", mock.Anything, uint(5), true).Return(assert.AnError)

	uc := NewCancelAppointment(repo, &recordingNotifier{}, &recordingBroadcaster{})

	err := uc.Execute(context.Background(), CancelAppointmentInput{
		AppointmentID: 7,
		CustomerID:    customerID,
	})

	// Slot reopen failure aborts the whole cancellation.
	assert.Error(t, err)
	repo.AssertNotCalled(t, "GetAppointmentDetail", mock.Anything, mock.Anything)
}

func TestCancelStampsCancelledAtWithCurrentTime(t *testing.T) {
	customerID := uuid.New()

	ap := &models.Appointment{
		ID:         7,
		CustomerID: customerID,
		SlotID:     5,
		Status:     string(domain.StatusConfirmed),
	}

	repo := new(mockRepo)
	repo.On("WithinTx", mock.Anything).Return(nil)
	repo.On("GetAppointmentForCustomerForUpdate", mock.Anything, uint(7), customerID).Return(ap, nil)
	repo.On("UpdateAppointment", mock.Anything, ap).Return(nil)
	repo.On("SetSlotAvailability", mock.Anything, uint(5), true).Return(nil)
	repo.On("GetAppointmentDetail", mock.Anything, uint(7)).
		Return(&dto.AppointmentDetail{ID: 7, SlotID: 5}, nil)

	before := time.Now().Add(-time.Minute)

	uc := NewCancelAppointment(repo, &recordingNotifier{}, &recordingBroadcaster{})
	err := uc.Execute(context.Background(), CancelAppointmentInput{
		AppointmentID: 7,
		CustomerID:    customerID,
	})

	assert.NoError(t, err)
	assert.True(t, ap.CancelledAt.After(before))
}
