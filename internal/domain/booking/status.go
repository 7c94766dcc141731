package booking

import "github.com/AutoServeHQ/service-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// ActiveStatuses are the statuses that still hold claim to a slot.
var ActiveStatuses = []string{
	string(StatusPending),
	string(StatusConfirmed),
	string(StatusInProgress),
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness(httperr.CodeInvalidStatus)
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusInProgress
}

// ===============================
// Validations
// ===============================

// CanCancel rejects cancellation of appointments already in a terminal state.
func CanCancel(current Status) error {
	switch current {
	case StatusCancelled:
		return httperr.ErrBusiness(httperr.CodeAlreadyCancelled)
	case StatusCompleted:
		return httperr.ErrBusiness(httperr.CodeAlreadyCompleted)
	}
	return nil
}

// CanTransition keeps transition ordering permissive except that terminal
// states are immutable.
func CanTransition(from, to Status) error {
	if from.IsTerminal() {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}
	return nil
}

func InitialStatus() Status {
	return StatusConfirmed
}
