package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	domain "github.com/AutoServeHQ/service-scheduler/internal/domain/booking"
	"github.com/AutoServeHQ/service-scheduler/internal/dto"
	"github.com/AutoServeHQ/service-scheduler/internal/httperr"
	"github.com/AutoServeHQ/service-scheduler/internal/models"
)

func TestUpdateStatusSuccess(t *testing.T) {
	ap := &models.Appointment{ID: 7, Status: string(domain.StatusConfirmed)}

	repo := new(mockRepo)
	broadcaster := &recordingBroadcaster{}

	repo.On("WithinTx", mock.Anything).Return(nil)
	repo.On("GetAppointmentForUpdate", mock.Anything, uint(7)).Return(ap, nil)
	repo.On("UpdateAppointment", mock.Anything, ap).Return(nil)
	repo.On("GetAppointmentDetail", mock.Anything, uint(7)).
		Return(&dto.AppointmentDetail{ID: 7, Status: "in_progress"}, nil)

	uc := NewUpdateAppointmentStatus(repo, broadcaster)

	detail, err := uc.Execute(context.Background(), UpdateStatusInput{
		AppointmentID: 7,
		Status:        "in_progress",
	})

	assert.NoError(t, err)
	assert.Equal(t, "in_progress", detail.Status)
	assert.Equal(t, string(domain.StatusInProgress), ap.Status)

	assert.Len(t, broadcaster.events, 1)
	assert.Equal(t, EventAppointmentUpdate, broadcaster.events[0].event)
	assert.Equal(t, "status_changed", broadcaster.events[0].payload["action"])
}

func TestUpdateStatusInvalidValue(t *testing.T) {
	repo := new(mockRepo)

	uc := NewUpdateAppointmentStatus(repo, &recordingBroadcaster{})

	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		AppointmentID: 7,
		Status:        "scheduled",
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidStatus))
	repo.AssertNotCalled(t, "WithinTx", mock.Anything)
}

func TestUpdateStatusCompletedStampsNotes(t *testing.T) {
	ap := &models.Appointment{ID: 7, Status: string(domain.StatusInProgress)}

	repo := new(mockRepo)
	repo.On("WithinTx", mock.Anything).Return(nil)
	repo.On("GetAppointmentForUpdate", mock.Anything, uint(7)).Return(ap, nil)
	repo.On("UpdateAppointment", mock.Anything, ap).Return(nil)
	repo.On("GetAppointmentDetail", mock.Anything, uint(7)).
		Return(&dto.AppointmentDetail{ID: 7, Status: "completed"}, nil)

	uc := NewUpdateAppointmentStatus(repo, &recordingBroadcaster{})

	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		AppointmentID:   7,
		Status:          "completed",
		CompletionNotes: "rotated tires, replaced filter",
	})

	assert.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), ap.Status)
	assert.NotNil(t, ap.CompletedAt)
	assert.Equal(t, "rotated tires, replaced filter", ap.CompletionNotes)
}

func TestUpdateStatusTerminalIsImmutable(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
	}{
		{"completed to in_progress", string(domain.StatusCompleted), "in_progress"},
		{"completed to cancelled", string(domain.StatusCompleted), "cancelled"},
		{"cancelled to confirmed", string(domain.StatusCancelled), "confirmed"},
		{"cancelled to completed", string(domain.StatusCancelled), "completed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ap := &models.Appointment{ID: 7, Status: tt.from}

			repo := new(mockRepo)
			repo.On("WithinTx", mock.Anything).Return(nil)
			repo.On("GetAppointmentForUpdate", mock.Anything, uint(7)).Return(ap, nil)

			uc := NewUpdateAppointmentStatus(repo, &recordingBroadcaster{})

			_, err := uc.Execute(context.Background(), UpdateStatusInput{
				AppointmentID: 7,
				Status:        tt.to,
			})

			assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidTransition))
			assert.Equal(t, tt.from, ap.Status)
			repo.AssertNotCalled(t, "UpdateAppointment", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateStatusAppointmentNotFound(t *testing.T) {
	repo := new(mockRepo)
	repo.On("WithinTx", mock.Anything).Return(nil)
	repo.On("GetAppointmentForUpdate", mock.Anything, uint(7)).
		Return(nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound))

	broadcaster := &recordingBroadcaster{}
	uc := NewUpdateAppointmentStatus(repo, broadcaster)

	_, err := uc.Execute(context.Background(), UpdateStatusInput{
		AppointmentID: 7,
		Status:        "in_progress",
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeAppointmentNotFound))
	assert.Empty(t, broadcaster.events)
}
